package layout

import "unicode/utf8"

// op is one recorded surface call.
type op struct {
	kind string // "page", "text" or "line"
	x, y float64
	x2   float64
	text string
	font Font
}

// recordingSurface records every call and measures text as a fixed advance per rune:
// half the font size, plus a little extra for bold faces.
type recordingSurface struct {
	ops []op
}

func (s *recordingSurface) NewPage(restore Font) {
	s.ops = append(s.ops, op{kind: "page", font: restore})
}

func (s *recordingSurface) Text(x, y float64, str string, f Font) {
	s.ops = append(s.ops, op{kind: "text", x: x, y: y, text: str, font: f})
}

func (s *recordingSurface) Line(x1, y1, x2, _ float64) {
	s.ops = append(s.ops, op{kind: "line", x: x1, y: y1, x2: x2})
}

func (s *recordingSurface) StringWidth(str string, f Font) float64 {
	per := f.Size / 2
	if f.Style == "B" {
		per += 0.5
	}
	return float64(utf8.RuneCountInString(str)) * per
}

func (s *recordingSurface) texts() []op {
	var out []op
	for _, o := range s.ops {
		if o.kind == "text" {
			out = append(out, o)
		}
	}
	return out
}

func (s *recordingSurface) pages() int {
	n := 0
	for _, o := range s.ops {
		if o.kind == "page" {
			n++
		}
	}
	return n
}
