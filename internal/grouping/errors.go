// Package grouping partitions resume records into ordered sections.
package grouping

import "fmt"

// MissingRequiredFieldError is returned when a required personal_info subsection is absent.
type MissingRequiredFieldError struct {
	Field string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("missing required field: personal_info/%s", e.Field)
}
