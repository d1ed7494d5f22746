// Package types provides type definitions for structured data used throughout the ats-resume system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Section names a resume section as it appears in the input data.
type Section string

// Known sections, in display order.
const (
	SectionPersonalInfo           Section = "personal_info"
	SectionProfessionalSummary    Section = "professional_summary"
	SectionTechnicalSkills        Section = "technical_skills"
	SectionProfessionalExperience Section = "professional_experience"
	SectionCertifications         Section = "certifications"
	SectionProjects               Section = "projects"
)

// Distinguished personal_info subsections.
const (
	SubsectionName        = "name"
	SubsectionTargetRoles = "target_roles"
)

// SectionOrder is the fixed order sections are rendered in.
var SectionOrder = []Section{
	SectionPersonalInfo,
	SectionProfessionalSummary,
	SectionTechnicalSkills,
	SectionProfessionalExperience,
	SectionCertifications,
	SectionProjects,
}

// Title returns the display title, e.g. "professional_experience" -> "Professional Experience".
func (s Section) Title() string {
	// A Caser is stateful, so each call gets its own.
	return cases.Title(language.English).String(strings.ReplaceAll(string(s), "_", " "))
}

// Known reports whether s is part of SectionOrder.
func (s Section) Known() bool {
	for _, known := range SectionOrder {
		if s == known {
			return true
		}
	}
	return false
}

// Record is a single row of resume input data.
type Record struct {
	Section    Section `json:"section" yaml:"section" validate:"required"`
	Subsection string  `json:"subsection" yaml:"subsection"`
	Content    string  `json:"content" yaml:"content"`
}

var recordValidator = validator.New()

// Validate validates the Record using the validator.
func (r *Record) Validate() error {
	return recordValidator.Struct(r)
}

// IsPersonalInfo reports whether the record belongs to the personal_info section.
func (r Record) IsPersonalInfo() bool {
	return r.Section == SectionPersonalInfo
}
