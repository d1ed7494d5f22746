package rendering

import (
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/jonathan/ats-resume/internal/layout"
)

// Option configures a PDFSurface.
type Option func(*pdfOptions)

type pdfOptions struct {
	title       string
	author      string
	subject     string
	creator     string
	compression bool
}

// WithTitle sets the document title metadata.
func WithTitle(title string) Option {
	return func(o *pdfOptions) { o.title = title }
}

// WithAuthor sets the document author metadata.
func WithAuthor(author string) Option {
	return func(o *pdfOptions) { o.author = author }
}

// WithSubject sets the document subject metadata.
func WithSubject(subject string) Option {
	return func(o *pdfOptions) { o.subject = subject }
}

// WithCreator overrides the creator metadata.
func WithCreator(creator string) Option {
	return func(o *pdfOptions) { o.creator = creator }
}

// WithCompression toggles stream compression. Compression is on by default.
func WithCompression(on bool) Option {
	return func(o *pdfOptions) { o.compression = on }
}

// ruleWidth matches the 1pt default stroke of most PDF toolkits.
const ruleWidth = 1.0

// PDFSurface implements layout.Surface on an fpdf document.
// fpdf measures y from the top of the page; the surface flips coordinates so callers
// work with a bottom-left origin.
type PDFSurface struct {
	pdf       *fpdf.Fpdf
	height    float64
	translate func(string) string
	current   layout.Font
	fontSet   bool
}

var _ layout.Surface = (*PDFSurface)(nil)

// NewPDFSurface creates an empty document sized to cfg's page.
func NewPDFSurface(cfg layout.Config, opts ...Option) *PDFSurface {
	o := pdfOptions{creator: "ats-resume", compression: true}
	for _, opt := range opts {
		opt(&o)
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: cfg.PageWidth, Ht: cfg.PageHeight},
	})
	pdf.SetMargins(cfg.LeftMargin, cfg.TopMargin, cfg.LeftMargin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetLineWidth(ruleWidth)
	pdf.SetCompression(o.compression)
	pdf.SetCreator(o.creator, true)
	if o.title != "" {
		pdf.SetTitle(o.title, true)
	}
	if o.author != "" {
		pdf.SetAuthor(o.author, true)
	}
	if o.subject != "" {
		pdf.SetSubject(o.subject, true)
	}

	return &PDFSurface{
		pdf:       pdf,
		height:    cfg.PageHeight,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

// NewPage adds a page and re-selects restore on it.
func (s *PDFSurface) NewPage(restore layout.Font) {
	s.pdf.AddPage()
	s.fontSet = false
	s.setFont(restore)
}

// Text draws s with its baseline at (x, y).
func (s *PDFSurface) Text(x, y float64, str string, f layout.Font) {
	s.setFont(f)
	s.pdf.Text(x, s.height-y, s.encode(str))
}

// Line strokes a line between two points.
func (s *PDFSurface) Line(x1, y1, x2, y2 float64) {
	s.pdf.Line(x1, s.height-y1, x2, s.height-y2)
}

// StringWidth returns the rendered width of str in f.
func (s *PDFSurface) StringWidth(str string, f layout.Font) float64 {
	s.setFont(f)
	return s.pdf.GetStringWidth(s.encode(str))
}

// PageCount returns the number of pages added so far.
func (s *PDFSurface) PageCount() int {
	return s.pdf.PageCount()
}

// Err returns the first error fpdf recorded, if any.
func (s *PDFSurface) Err() error {
	return s.pdf.Error()
}

// Output finalizes the document into w.
func (s *PDFSurface) Output(w io.Writer) error {
	if err := s.pdf.Output(w); err != nil {
		return &RenderError{Message: "failed to write PDF", Cause: err}
	}
	return nil
}

func (s *PDFSurface) setFont(f layout.Font) {
	if s.fontSet && s.current == f {
		return
	}
	s.pdf.SetFont(f.Family, f.Style, f.Size)
	s.current = f
	s.fontSet = true
}

func (s *PDFSurface) encode(str string) string {
	return s.translate(CleanText(str))
}
