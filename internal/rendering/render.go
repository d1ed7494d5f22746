package rendering

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/jonathan/ats-resume/internal/layout"
	"github.com/jonathan/ats-resume/internal/types"
)

// Render lays out resume on a fresh PDF surface and returns the surface unfinalized.
func Render(resume *types.Resume, cfg layout.Config, opts ...Option) (*PDFSurface, layout.Stats, error) {
	if err := cfg.Validate(); err != nil {
		return nil, layout.Stats{}, err
	}
	surface := NewPDFSurface(cfg, opts...)

	engine, err := layout.New(cfg, surface)
	if err != nil {
		return nil, layout.Stats{}, err
	}

	stats, err := engine.Render(resume)
	if err != nil {
		return nil, layout.Stats{}, &RenderError{Message: "layout failed", Cause: err}
	}
	if err := surface.Err(); err != nil {
		return nil, layout.Stats{}, &RenderError{Message: "PDF surface failed", Cause: err}
	}

	return surface, stats, nil
}

// RenderBytes renders resume and returns the finished PDF.
func RenderBytes(resume *types.Resume, cfg layout.Config, opts ...Option) ([]byte, layout.Stats, error) {
	surface, stats, err := Render(resume, cfg, opts...)
	if err != nil {
		return nil, layout.Stats{}, err
	}

	var buf bytes.Buffer
	if err := surface.Output(&buf); err != nil {
		return nil, layout.Stats{}, err
	}
	return buf.Bytes(), stats, nil
}

// RenderFile renders resume to path. The PDF is written to a temporary file in the
// same directory and renamed into place, so path is either complete or untouched.
func RenderFile(resume *types.Resume, cfg layout.Config, path string, opts ...Option) (layout.Stats, error) {
	surface, stats, err := Render(resume, cfg, opts...)
	if err != nil {
		return layout.Stats{}, err
	}

	if err := writeAtomic(path, surface.Output); err != nil {
		return layout.Stats{}, err
	}
	return stats, nil
}

func writeAtomic(path string, write func(io.Writer) error) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".ats-resume-*.pdf.tmp")
	if err != nil {
		return &RenderError{Message: "failed to create temp file", Cause: err}
	}
	tmpPath := tmpFile.Name()

	writeErr := write(tmpFile)
	closeErr := tmpFile.Close()
	if writeErr != nil {
		_ = os.Remove(tmpPath)
		return writeErr
	}
	if closeErr != nil {
		_ = os.Remove(tmpPath)
		return &RenderError{Message: "failed to close temp file", Cause: closeErr}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return &RenderError{Message: "failed to move PDF into place", Cause: err}
	}
	return nil
}
