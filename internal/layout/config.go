// Package layout implements the single-column pagination engine that streams a grouped
// resume to a drawing surface.
package layout

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Font identifies a face and size on the drawing surface.
// Style follows the PDF core-font convention: "", "B", "I" or "BI".
type Font struct {
	Family string  `json:"family" toml:"family" yaml:"family" validate:"required"`
	Style  string  `json:"style" toml:"style" yaml:"style" validate:"omitempty,oneof=B I BI"`
	Size   float64 `json:"size" toml:"size" yaml:"size" validate:"gt=0"`
}

func (f Font) String() string {
	if f.Style == "" {
		return fmt.Sprintf("%s %gpt", f.Family, f.Size)
	}
	return fmt.Sprintf("%s-%s %gpt", f.Family, f.Style, f.Size)
}

// Fonts holds the font for each text role.
type Fonts struct {
	Header    Font `json:"header" toml:"header" yaml:"header"`
	Subheader Font `json:"subheader" toml:"subheader" yaml:"subheader"`
	Normal    Font `json:"normal" toml:"normal" yaml:"normal"`
	Italic    Font `json:"italic" toml:"italic" yaml:"italic"`
	// Bold is used for emphasized runs inside content blocks.
	Bold Font `json:"bold" toml:"bold" yaml:"bold"`
}

// Config holds page geometry, spacing and fonts. Units are PDF points.
type Config struct {
	PageWidth  float64 `json:"page_width" toml:"page_width" yaml:"page_width" validate:"gt=0"`
	PageHeight float64 `json:"page_height" toml:"page_height" yaml:"page_height" validate:"gt=0"`
	LeftMargin float64 `json:"left_margin" toml:"left_margin" yaml:"left_margin" validate:"gte=0"`
	TopMargin  float64 `json:"top_margin" toml:"top_margin" yaml:"top_margin" validate:"gte=0"`
	LineHeight float64 `json:"line_height" toml:"line_height" yaml:"line_height" validate:"gt=0"`

	// RuleOffset is the gap between a section title and its horizontal rule.
	RuleOffset float64 `json:"rule_offset" toml:"rule_offset" yaml:"rule_offset" validate:"gte=0"`
	BlockGap   float64 `json:"block_gap" toml:"block_gap" yaml:"block_gap" validate:"gte=0"`
	SectionGap float64 `json:"section_gap" toml:"section_gap" yaml:"section_gap" validate:"gte=0"`

	// RuleGapFactor scales LineHeight for the gap below a section rule.
	RuleGapFactor float64 `json:"rule_gap_factor" toml:"rule_gap_factor" yaml:"rule_gap_factor" validate:"gte=0"`
	// RolesGapFactor scales LineHeight for the gap below the target roles line.
	RolesGapFactor float64 `json:"roles_gap_factor" toml:"roles_gap_factor" yaml:"roles_gap_factor" validate:"gte=0"`

	EmphasisMarker string `json:"emphasis_marker" toml:"emphasis_marker" yaml:"emphasis_marker" validate:"required"`

	Fonts Fonts `json:"fonts" toml:"fonts" yaml:"fonts"`
}

// US Letter in points.
const (
	LetterWidth  = 612.0
	LetterHeight = 792.0
)

// DefaultConfig returns the standard ATS layout on US Letter paper.
func DefaultConfig() Config {
	return Config{
		PageWidth:      LetterWidth,
		PageHeight:     LetterHeight,
		LeftMargin:     50,
		TopMargin:      50,
		LineHeight:     14,
		RuleOffset:     8,
		BlockGap:       3,
		SectionGap:     8,
		RuleGapFactor:  1.1,
		RolesGapFactor: 1.25,
		EmphasisMarker: "**",
		Fonts: Fonts{
			Header:    Font{Family: "Helvetica", Style: "B", Size: 12},
			Subheader: Font{Family: "Helvetica", Style: "B", Size: 10},
			Normal:    Font{Family: "Helvetica", Size: 8},
			Italic:    Font{Family: "Helvetica", Style: "I", Size: 8},
			Bold:      Font{Family: "Helvetica", Style: "B", Size: 8},
		},
	}
}

var configValidator = validator.New()

// Validate checks field ranges and that the margins leave room for text.
func (c Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		return &ConfigError{Message: "invalid layout config", Cause: err}
	}
	if c.TextWidth() <= 0 {
		return &ConfigError{Message: fmt.Sprintf("left margin %g leaves no text width on a %g wide page", c.LeftMargin, c.PageWidth)}
	}
	if c.PageHeight-c.TopMargin < 2*c.LineHeight {
		return &ConfigError{Message: fmt.Sprintf("page height %g cannot fit two lines below a %g top margin", c.PageHeight, c.TopMargin)}
	}
	return nil
}

// TextWidth is the usable width between the left and right margins.
func (c Config) TextWidth() float64 {
	return c.PageWidth - 2*c.LeftMargin
}

// Top is the y coordinate of the first line on a page.
func (c Config) Top() float64 {
	return c.PageHeight - c.TopMargin
}
