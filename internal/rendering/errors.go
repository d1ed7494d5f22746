// Package rendering draws laid-out resumes to PDF using fpdf.
package rendering

import "fmt"

// RenderError represents a failure of the PDF surface or of writing its output
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
