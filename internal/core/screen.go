package core

import (
	"strings"
)

// Glyph is one colored character on the screen.
type Glyph struct {
	Rune  rune
	Color Color
}

var blank = Glyph{Rune: ' ', Color: ColorDefault}

// Screen is a fixed-size buffer of glyphs that games draw into.
// The platform turns it into terminal output; games never see the terminal.
type Screen struct {
	w, h  int
	cells []Glyph // row-major, len w*h
}

// NewScreen returns a blank w x h screen.
func NewScreen(w, h int) *Screen {
	s := &Screen{}
	s.Resize(w, h)
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int { return s.w }

// Height returns the screen height in characters.
func (s *Screen) Height() int { return s.h }

// Resize changes the dimensions and blanks the screen. Games redraw every
// frame, so old content is not kept.
func (s *Screen) Resize(w, h int) {
	w, h = max(0, w), max(0, h)
	if n := w * h; cap(s.cells) >= n {
		s.cells = s.cells[:n]
	} else {
		s.cells = make([]Glyph, n)
	}
	s.w, s.h = w, h
	s.Clear()
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

func (s *Screen) index(x, y int) (int, bool) {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return 0, false
	}
	return y*s.w + x, true
}

// Put writes a glyph at (x, y). Writes outside the screen are dropped.
func (s *Screen) Put(x, y int, r rune, c Color) {
	if i, ok := s.index(x, y); ok {
		s.cells[i] = Glyph{Rune: r, Color: c}
	}
}

// At returns the glyph at (x, y), or a blank glyph outside the screen.
func (s *Screen) At(x, y int) Glyph {
	if i, ok := s.index(x, y); ok {
		return s.cells[i]
	}
	return blank
}

// Text writes text left to right from (x, y), one column per rune, and
// returns the column after the last rune.
func (s *Screen) Text(x, y int, text string, c Color) int {
	for _, r := range text {
		s.Put(x, y, r, c)
		x++
	}
	return x
}

// TextCentered writes text centered on row y.
func (s *Screen) TextCentered(y int, text string, c Color) {
	s.Text((s.w-len([]rune(text)))/2, y, text, c)
}

// Fill paints every cell of r.
func (s *Screen) Fill(r Rect, fill rune, c Color) {
	for y := max(0, r.Y); y < min(s.h, r.Bottom()); y++ {
		for x := max(0, r.X); x < min(s.w, r.Right()); x++ {
			s.cells[y*s.w+x] = Glyph{Rune: fill, Color: c}
		}
	}
}

// Frame outlines r with single-line box characters.
func (s *Screen) Frame(r Rect, c Color) {
	if r.W < 2 || r.H < 2 {
		return
	}
	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < right; x++ {
		s.Put(x, r.Y, '─', c)
		s.Put(x, bottom, '─', c)
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.Put(r.X, y, '│', c)
		s.Put(right, y, '│', c)
	}
	s.Put(r.X, r.Y, '┌', c)
	s.Put(right, r.Y, '┐', c)
	s.Put(r.X, bottom, '└', c)
	s.Put(right, bottom, '┘', c)
}

// Row returns row y as plain text, or an empty string outside the screen.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.h {
		return ""
	}
	var sb strings.Builder
	for _, g := range s.cells[y*s.w : (y+1)*s.w] {
		sb.WriteRune(g.Rune)
	}
	return sb.String()
}

// String returns the screen as plain text, rows joined by newlines.
func (s *Screen) String() string {
	rows := make([]string, s.h)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
