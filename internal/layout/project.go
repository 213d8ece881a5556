// Package layout projects a tmux window's pane rectangles onto a smaller
// terminal viewport and draws the result as a box-drawing minimap.
package layout

import "fmt"

const (
	MinCellWidth  = 3
	MinCellHeight = 2
)

// Rect is an origin plus extent in terminal cells.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Intersect returns the overlap of r and o, which may be empty.
func (r Rect) Intersect(o Rect) Rect {
	x := max(r.X, o.X)
	y := max(r.Y, o.Y)
	right := min(r.Right(), o.Right())
	bottom := min(r.Bottom(), o.Bottom())
	if right <= x || bottom <= y {
		return Rect{X: x, Y: y}
	}
	return Rect{X: x, Y: y, W: right - x, H: bottom - y}
}

// PaneGeom is one pane in tmux window coordinates.
type PaneGeom struct {
	Index   int
	Top     int
	Left    int
	Width   int
	Height  int
	Active  bool
	Command string
}

// Cell is a projected pane ready to draw.
type Cell struct {
	Rect
	Label    string
	Selected bool
}

// Bounds returns the size of the smallest window that encloses every pane.
func Bounds(panes []PaneGeom) (w, h int) {
	for _, p := range panes {
		w = max(w, p.Left+p.Width)
		h = max(h, p.Top+p.Height)
	}
	return w, h
}

// Fits is the coarse feasibility gate: every pane needs MinCellWidth columns
// side by side and the viewport needs MinCellHeight rows.
func Fits(paneCount int, viewport Rect) bool {
	return viewport.W >= paneCount*MinCellWidth && viewport.H >= MinCellHeight
}

// Project scales panes into viewport. selected is the position in panes of
// the selected pane, or -1. The bool is false when the viewport is too
// small to draw a faithful minimap; an empty pane list or a degenerate
// window bound yields no cells and true.
//
// Each rectangle's corners are scaled independently and the size derived
// from their difference, so panes sharing an edge in tmux share the
// projected edge too.
func Project(panes []PaneGeom, viewport Rect, selected int) ([]Cell, bool) {
	if len(panes) == 0 {
		return nil, true
	}
	winW, winH := Bounds(panes)
	if winW <= 0 || winH <= 0 {
		return nil, true
	}
	if !Fits(len(panes), viewport) {
		return nil, false
	}

	cells := make([]Cell, 0, len(panes))
	for i, p := range panes {
		x := viewport.X + scale(p.Left, viewport.W, winW)
		y := viewport.Y + scale(p.Top, viewport.H, winH)
		right := viewport.X + scale(p.Left+p.Width, viewport.W, winW)
		bottom := viewport.Y + scale(p.Top+p.Height, viewport.H, winH)

		w := max(right-x, MinCellWidth)
		h := max(bottom-y, MinCellHeight)
		w = max(min(w, viewport.Right()-x), 0)
		h = max(min(h, viewport.Bottom()-y), 0)

		cells = append(cells, Cell{
			Rect:     Rect{X: x, Y: y, W: w, H: h},
			Label:    Label(p),
			Selected: i == selected,
		})
	}
	return cells, true
}

// Label is the text drawn inside a pane's cell: "*" when active, the pane
// index, then the running command.
func Label(p PaneGeom) string {
	prefix := ""
	if p.Active {
		prefix = "*"
	}
	return fmt.Sprintf("%s%d %s", prefix, p.Index, p.Command)
}

func scale(coord, extent, total int) int {
	return coord * extent / total
}
