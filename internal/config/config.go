// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"go.yaml.in/yaml/v3"

	"github.com/jonathan/ats-resume/internal/layout"
)

// Config represents the CLI configuration that can be loaded from a JSON, TOML or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Output is the PDF path for single renders.
	Output string `json:"output,omitempty" toml:"output" yaml:"output,omitempty"`
	// Format is the input format; empty means auto-detect.
	Format string `json:"format,omitempty" toml:"format" yaml:"format,omitempty" validate:"omitempty,oneof=auto csv json yaml yml html htm"`
	// OutDir receives batch renders.
	OutDir string `json:"out_dir,omitempty" toml:"out_dir" yaml:"out_dir,omitempty"`
	// Jobs caps concurrent batch renders.
	Jobs int `json:"jobs,omitempty" toml:"jobs" yaml:"jobs,omitempty" validate:"gte=0"`
	// Author is written to the PDF metadata. Defaults to the resume name.
	Author      string `json:"author,omitempty" toml:"author" yaml:"author,omitempty"`
	DatabaseURL string `json:"database_url,omitempty" toml:"database_url" yaml:"database_url,omitempty"`
	Verbose     bool   `json:"verbose,omitempty" toml:"verbose" yaml:"verbose,omitempty"`

	Layout LayoutOverrides `json:"layout,omitempty" toml:"layout" yaml:"layout,omitempty"`
}

// LayoutOverrides holds optional replacements for layout.DefaultConfig values.
// Zero values leave the default in place.
type LayoutOverrides struct {
	PageWidth      float64 `json:"page_width,omitempty" toml:"page_width" yaml:"page_width,omitempty" validate:"gte=0"`
	PageHeight     float64 `json:"page_height,omitempty" toml:"page_height" yaml:"page_height,omitempty" validate:"gte=0"`
	LeftMargin     float64 `json:"left_margin,omitempty" toml:"left_margin" yaml:"left_margin,omitempty" validate:"gte=0"`
	TopMargin      float64 `json:"top_margin,omitempty" toml:"top_margin" yaml:"top_margin,omitempty" validate:"gte=0"`
	LineHeight     float64 `json:"line_height,omitempty" toml:"line_height" yaml:"line_height,omitempty" validate:"gte=0"`
	RuleOffset     float64 `json:"rule_offset,omitempty" toml:"rule_offset" yaml:"rule_offset,omitempty" validate:"gte=0"`
	BlockGap       float64 `json:"block_gap,omitempty" toml:"block_gap" yaml:"block_gap,omitempty" validate:"gte=0"`
	SectionGap     float64 `json:"section_gap,omitempty" toml:"section_gap" yaml:"section_gap,omitempty" validate:"gte=0"`
	RuleGapFactor  float64 `json:"rule_gap_factor,omitempty" toml:"rule_gap_factor" yaml:"rule_gap_factor,omitempty" validate:"gte=0"`
	RolesGapFactor float64 `json:"roles_gap_factor,omitempty" toml:"roles_gap_factor" yaml:"roles_gap_factor,omitempty" validate:"gte=0"`
	EmphasisMarker string  `json:"emphasis_marker,omitempty" toml:"emphasis_marker" yaml:"emphasis_marker,omitempty"`

	Fonts FontOverrides `json:"fonts,omitempty" toml:"fonts" yaml:"fonts,omitempty"`
}

// FontOverrides holds optional replacements for each font role.
type FontOverrides struct {
	Header    FontOverride `json:"header,omitempty" toml:"header" yaml:"header,omitempty"`
	Subheader FontOverride `json:"subheader,omitempty" toml:"subheader" yaml:"subheader,omitempty"`
	Normal    FontOverride `json:"normal,omitempty" toml:"normal" yaml:"normal,omitempty"`
	Italic    FontOverride `json:"italic,omitempty" toml:"italic" yaml:"italic,omitempty"`
	Bold      FontOverride `json:"bold,omitempty" toml:"bold" yaml:"bold,omitempty"`
}

// FontOverride replaces parts of a font. Style is a pointer so "" (regular) can be set explicitly.
type FontOverride struct {
	Family string  `json:"family,omitempty" toml:"family" yaml:"family,omitempty"`
	Style  *string `json:"style,omitempty" toml:"style" yaml:"style,omitempty" validate:"omitempty,oneof=B I BI"`
	Size   float64 `json:"size,omitempty" toml:"size" yaml:"size,omitempty" validate:"gte=0"`
}

var configValidator = validator.New()

// LoadConfig loads configuration from a file. The format is chosen by extension:
// .json, .toml, .yaml or .yml.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config TOML: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file extension %q", ext)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values, including the layout
// that results from applying the overrides to the defaults.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if err := c.LayoutConfig().Validate(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}
	if result.OutDir == "" {
		result.OutDir = defaults.OutDir
	}
	if result.Author == "" {
		result.Author = defaults.Author
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.Jobs == 0 {
		result.Jobs = defaults.Jobs
	}

	// Layout overrides are only ever set in files, so the receiver's block is kept
	// unless it is empty.
	if result.Layout == (LayoutOverrides{}) {
		result.Layout = defaults.Layout
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// LayoutConfig returns layout.DefaultConfig with the non-zero overrides applied.
func (c *Config) LayoutConfig() layout.Config {
	cfg := layout.DefaultConfig()
	o := c.Layout

	setFloat(&cfg.PageWidth, o.PageWidth)
	setFloat(&cfg.PageHeight, o.PageHeight)
	setFloat(&cfg.LeftMargin, o.LeftMargin)
	setFloat(&cfg.TopMargin, o.TopMargin)
	setFloat(&cfg.LineHeight, o.LineHeight)
	setFloat(&cfg.RuleOffset, o.RuleOffset)
	setFloat(&cfg.BlockGap, o.BlockGap)
	setFloat(&cfg.SectionGap, o.SectionGap)
	setFloat(&cfg.RuleGapFactor, o.RuleGapFactor)
	setFloat(&cfg.RolesGapFactor, o.RolesGapFactor)
	if o.EmphasisMarker != "" {
		cfg.EmphasisMarker = o.EmphasisMarker
	}

	o.Fonts.Header.apply(&cfg.Fonts.Header)
	o.Fonts.Subheader.apply(&cfg.Fonts.Subheader)
	o.Fonts.Normal.apply(&cfg.Fonts.Normal)
	o.Fonts.Italic.apply(&cfg.Fonts.Italic)
	o.Fonts.Bold.apply(&cfg.Fonts.Bold)

	return cfg
}

func (o FontOverride) apply(f *layout.Font) {
	if o.Family != "" {
		f.Family = o.Family
	}
	if o.Style != nil {
		f.Style = *o.Style
	}
	setFloat(&f.Size, o.Size)
}

func setFloat(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}
