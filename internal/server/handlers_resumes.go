package server

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/ats-resume/internal/db"
	"github.com/jonathan/ats-resume/internal/pipeline"
	"github.com/jonathan/ats-resume/internal/server/middleware"
)

// handleCreateResume stores the records in the body. Records that cannot be grouped are
// rejected so every stored resume renders.
func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	records, err := s.readRecords(w, r)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	resume, err := pipeline.Group(records, s.pipelineOptions())
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	label := r.URL.Query().Get("label")
	if label == "" {
		label = resume.PersonalInfo.Name
	}

	id, err := s.store.CreateResume(r.Context(), label, records)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	if subject, ok := middleware.Subject(r.Context()); ok {
		s.logger.Info("resume imported", "id", id, "subject", subject)
	}

	warnings := resume.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"id":       id,
		"label":    label,
		"records":  len(records),
		"warnings": warnings,
	})
}

func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	limit := db.DefaultListLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			s.handleError(w, r, &ErrValidation{Field: "limit", Message: "must be a positive integer"})
			return
		}
		limit = n
	}

	resumes, err := s.store.ListResumes(r.Context(), limit)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	if resumes == nil {
		resumes = []db.Resume{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"resumes": resumes,
		"count":   len(resumes),
	})
}

func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	id, ok := s.resumeID(w, r)
	if !ok {
		return
	}

	resume, err := s.store.GetResume(r.Context(), id)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, db.ErrResumeNotFound.Error())
		return
	}

	records, err := s.store.GetRecords(r.Context(), id)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"resume":  resume,
		"records": records,
	})
}

func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	id, ok := s.resumeID(w, r)
	if !ok {
		return
	}

	if err := s.store.DeleteResume(r.Context(), id); err != nil {
		s.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleResumePDF renders a stored resume and saves the render. With ?cached=true the
// latest saved render is returned when one exists.
func (s *Server) handleResumePDF(w http.ResponseWriter, r *http.Request) {
	id, ok := s.resumeID(w, r)
	if !ok {
		return
	}
	ctx := r.Context()

	if cached, _ := strconv.ParseBool(r.URL.Query().Get("cached")); cached {
		render, err := s.store.GetLatestRender(ctx, id)
		if err != nil {
			s.handleError(w, r, err)
			return
		}
		if render != nil {
			w.Header().Set("X-Render-ID", render.ID.String())
			s.pdfResponse(w, render.PDF, render.Pages, 0)
			return
		}
	}

	resume, err := s.store.GetResume(ctx, id)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, db.ErrResumeNotFound.Error())
		return
	}

	records, err := s.store.GetRecords(ctx, id)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	pdf, result, err := pipeline.RenderBytes(records, s.pipelineOptions())
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	renderID, err := s.store.SaveRender(ctx, id, pdf, result.Stats)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	w.Header().Set("X-Render-ID", renderID.String())
	s.pdfResponse(w, pdf, result.Stats.Pages, len(result.Resume.Warnings))
}

func (s *Server) resumeID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.handleError(w, r, &ErrValidation{Field: "id", Message: "must be a UUID"})
		return uuid.Nil, false
	}
	return id, true
}
