package layout

import (
	"errors"
	"math"

	"github.com/jonathan/ats-resume/internal/types"
)

// Cursor is the vertical position on the current page.
type Cursor struct {
	Y          float64
	PageHeight float64
	Page       int
}

// Stats summarizes a finished render.
type Stats struct {
	Pages    int `json:"pages"`
	Lines    int `json:"lines"`
	Sections int `json:"sections"`
	Blocks   int `json:"blocks"`
}

// Engine lays out one resume onto a Surface. An Engine is single use and not safe for
// concurrent use.
type Engine struct {
	cfg     Config
	surface Surface
	cursor  Cursor
	active  Font
	stats   Stats
	used    bool
}

// New creates an engine after validating cfg.
func New(cfg Config, surface Surface) (*Engine, error) {
	if surface == nil {
		return nil, errors.New("layout: nil surface")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg, surface: surface}, nil
}

// Cursor returns the current cursor state.
func (e *Engine) Cursor() Cursor {
	return e.cursor
}

// Render draws the whole resume: header, personal line, target roles, then every
// section in order. The surface owner finalizes the document afterwards.
func (e *Engine) Render(resume *types.Resume) (Stats, error) {
	if resume == nil {
		return Stats{}, errors.New("layout: nil resume")
	}
	if e.used {
		return Stats{}, errors.New("layout: engine already rendered a document")
	}
	e.used = true

	fonts := e.cfg.Fonts
	e.active = fonts.Header
	e.surface.NewPage(e.active)
	e.cursor = Cursor{Y: e.cfg.Top(), PageHeight: e.cfg.PageHeight, Page: 1}
	e.stats = Stats{Pages: 1}

	e.drawLine(resume.PersonalInfo.Name, fonts.Header)
	e.advanceLine()

	e.drawLine(resume.PersonalInfo.Line, fonts.Normal)
	e.advanceLine()

	e.drawLine(resume.PersonalInfo.TargetRoles, fonts.Italic)
	e.advance(math.Floor(e.cfg.LineHeight * e.cfg.RolesGapFactor))

	for _, section := range resume.Sections {
		e.drawSectionHeader(section.Section)
		for _, block := range section.Blocks {
			e.drawBlock(block)
		}
		e.advance(e.cfg.SectionGap)
		e.stats.Sections++
	}

	return e.stats, nil
}

func (e *Engine) drawSectionHeader(section types.Section) {
	e.drawLine(section.Title(), e.cfg.Fonts.Subheader)
	e.cursor.Y -= e.cfg.RuleOffset
	e.surface.Line(e.cfg.LeftMargin, e.cursor.Y, e.cfg.PageWidth-e.cfg.LeftMargin, e.cursor.Y)
	e.advance(math.Floor(e.cfg.LineHeight * e.cfg.RuleGapFactor))
}

func (e *Engine) drawBlock(block types.ContentBlock) {
	normal := e.cfg.Fonts.Normal
	measure := func(s string) float64 { return e.surface.StringWidth(s, normal) }

	for _, line := range Wrap(block.Content, e.cfg.TextWidth(), measure) {
		x := e.cfg.LeftMargin
		for _, run := range SplitEmphasis(line, e.cfg.EmphasisMarker) {
			font := normal
			if run.Bold {
				font = e.cfg.Fonts.Bold
			}
			e.text(x, run.Text, font)
			x += e.surface.StringWidth(run.Text, font)
		}
		e.stats.Lines++
		e.advanceLine()
	}

	e.advance(e.cfg.BlockGap)
	e.stats.Blocks++
}

// drawLine draws s at the left margin and counts it as one line.
func (e *Engine) drawLine(s string, f Font) {
	e.text(e.cfg.LeftMargin, s, f)
	e.stats.Lines++
}

func (e *Engine) text(x float64, s string, f Font) {
	e.active = f
	e.surface.Text(x, e.cursor.Y, s, f)
}

func (e *Engine) advanceLine() {
	e.advance(e.cfg.LineHeight)
}

// advance moves the cursor down by dy and breaks the page when fewer than two
// line heights remain.
func (e *Engine) advance(dy float64) {
	e.cursor.Y -= dy
	if e.cursor.Y < 2*e.cfg.LineHeight {
		e.surface.NewPage(e.active)
		e.cursor.Y = e.cfg.Top()
		e.cursor.Page++
		e.stats.Pages++
	}
}
