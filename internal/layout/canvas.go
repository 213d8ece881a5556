package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Class tags a canvas cell so the renderer can pick a style for it.
type Class int

const (
	ClassBlank Class = iota
	ClassBorder
	ClassLabel
	ClassSelectedBorder
	ClassSelectedLabel
)

type glyph struct {
	text  string
	class Class
	// wide marks the second column of a double-width rune.
	wide bool
}

// Canvas is a fixed-size grid of glyphs addressed from (0,0).
type Canvas struct {
	w, h  int
	cells []glyph
}

func NewCanvas(w, h int) *Canvas {
	w, h = max(w, 0), max(h, 0)
	c := &Canvas{w: w, h: h, cells: make([]glyph, w*h)}
	for i := range c.cells {
		c.cells[i] = glyph{text: " "}
	}
	return c
}

func (c *Canvas) Width() int  { return c.w }
func (c *Canvas) Height() int { return c.h }

// Bounds is the whole canvas as a Rect.
func (c *Canvas) Bounds() Rect { return Rect{W: c.w, H: c.h} }

func (c *Canvas) set(x, y int, text string, class Class) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = glyph{text: text, class: class}
}

// At returns the text and class at (x, y). Out-of-range reads are blank.
func (c *Canvas) At(x, y int) (string, Class) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return " ", ClassBlank
	}
	g := c.cells[y*c.w+x]
	return g.text, g.class
}

// Lines renders each row, passing runs of equally classed text through
// paint. A nil paint returns plain text.
func (c *Canvas) Lines(paint func(Class, string) string) []string {
	if paint == nil {
		paint = func(_ Class, s string) string { return s }
	}
	lines := make([]string, c.h)
	var row, run strings.Builder
	for y := 0; y < c.h; y++ {
		row.Reset()
		run.Reset()
		current := ClassBlank
		for x := 0; x < c.w; x++ {
			g := c.cells[y*c.w+x]
			if g.wide {
				continue
			}
			if g.class != current && run.Len() > 0 {
				row.WriteString(paint(current, run.String()))
				run.Reset()
			}
			current = g.class
			run.WriteString(g.text)
		}
		if run.Len() > 0 {
			row.WriteString(paint(current, run.String()))
		}
		lines[y] = row.String()
	}
	return lines
}

// String renders the canvas without styling.
func (c *Canvas) String() string {
	return strings.Join(c.Lines(nil), "\n")
}

// DrawCells draws a single-line box for each cell, clipped to clip, with the
// label centred on the first interior row. Clipping is applied on each side
// independently so a partly visible box still draws its visible edges.
func DrawCells(c *Canvas, cells []Cell, clip Rect) {
	clip = clip.Intersect(c.Bounds())
	for _, cell := range cells {
		drawCell(c, cell, clip)
	}
}

func drawCell(c *Canvas, cell Cell, clip Rect) {
	if cell.W < 2 || cell.H < 1 {
		return
	}
	border, text := ClassBorder, ClassLabel
	if cell.Selected {
		border, text = ClassSelectedBorder, ClassSelectedLabel
	}
	inside := func(x, y int) bool {
		return x >= clip.X && x < clip.Right() && y >= clip.Y && y < clip.Bottom()
	}
	put := func(x, y int, s string, class Class) {
		if inside(x, y) {
			c.set(x, y, s, class)
		}
	}

	x1, y1 := cell.X, cell.Y
	x2, y2 := cell.Right()-1, cell.Bottom()-1

	put(x1, y1, "┌", border)
	put(x2, y1, "┐", border)
	for x := x1 + 1; x < x2; x++ {
		put(x, y1, "─", border)
	}
	if cell.H >= 2 {
		put(x1, y2, "└", border)
		put(x2, y2, "┘", border)
		for x := x1 + 1; x < x2; x++ {
			put(x, y2, "─", border)
		}
	}
	for y := y1 + 1; y < y2; y++ {
		put(x1, y, "│", border)
		put(x2, y, "│", border)
	}

	// The label needs an interior row between the top and bottom edges.
	if cell.H < 3 || cell.W < 3 {
		return
	}
	interior := cell.W - 2
	label := runewidth.Truncate(cell.Label, interior, "")
	x := x1 + 1 + (interior-runewidth.StringWidth(label))/2
	y := y1 + 1
	for _, r := range label {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x+rw-1 >= x2 {
			break
		}
		put(x, y, string(r), text)
		if rw == 2 && inside(x, y) && inside(x+1, y) {
			c.cells[y*c.w+x+1] = glyph{class: text, wide: true}
		}
		x += rw
	}
}
