package server

import (
	"io"
	"net/http"
	"strconv"

	"github.com/jonathan/ats-resume/internal/ingestion"
	"github.com/jonathan/ats-resume/internal/pipeline"
	"github.com/jonathan/ats-resume/internal/types"
)

const requestSource = "request body"

// handleRender renders the records in the request body and returns the PDF.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	records, err := s.readRecords(w, r)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	pdf, result, err := pipeline.RenderBytes(records, s.pipelineOptions())
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	s.pdfResponse(w, pdf, result.Stats.Pages, len(result.Resume.Warnings))
}

// readRecords decodes the body using ?format=, then Content-Type, then sniffing.
func (s *Server) readRecords(w http.ResponseWriter, r *http.Request) ([]types.Record, error) {
	format, err := ingestion.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		return nil, &ErrValidation{Field: "format", Message: err.Error()}
	}
	if format == ingestion.FormatAuto {
		format = ingestion.FormatFromContentType(r.Header.Get("Content-Type"))
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBodyBytes))
	if err != nil {
		return nil, &ingestion.InputReadError{Source: requestSource, Message: "failed to read body", Cause: err}
	}

	return ingestion.Parse(requestSource, data, format)
}

func (s *Server) pipelineOptions() pipeline.Options {
	return pipeline.Options{Layout: s.layout, Logger: s.logger}
}

// pdfResponse writes pdf as an attachment with the page and warning counts as headers.
func (s *Server) pdfResponse(w http.ResponseWriter, pdf []byte, pages, warnings int) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+pipeline.DefaultOutput+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.Header().Set("X-Resume-Pages", strconv.Itoa(pages))
	w.Header().Set("X-Resume-Warnings", strconv.Itoa(warnings))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		s.logger.Error("writing PDF response", "err", err)
	}
}
