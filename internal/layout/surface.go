package layout

// Surface is the drawing target the engine renders onto.
// Coordinates use a bottom-left origin and y is the text baseline.
// Every call names its font explicitly; implementations must not depend on a
// previously selected font.
type Surface interface {
	// NewPage starts a page. restore is the font that was active before the break.
	NewPage(restore Font)
	Text(x, y float64, s string, f Font)
	Line(x1, y1, x2, y2 float64)
	StringWidth(s string, f Font) float64
}
