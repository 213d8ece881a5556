// Package state holds per-panel rendering state that is not part of the
// selection model, such as how far each list is scrolled.
package state

// Viewport tracks the first visible row of a scrolling list.
type Viewport struct {
	Offset int
}

// Follow adjusts the offset so cursor stays within the visible rows and
// returns the new offset. A negative cursor (no selection) only clamps the
// offset to the list.
func (v *Viewport) Follow(cursor, total, visible int) int {
	if total <= 0 || visible <= 0 {
		v.Offset = 0
		return v.Offset
	}
	maxOffset := total - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.Offset > maxOffset {
		v.Offset = maxOffset
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
	if cursor < 0 {
		return v.Offset
	}
	if cursor >= total {
		cursor = total - 1
	}
	if cursor < v.Offset {
		v.Offset = cursor
	}
	if upper := v.Offset + visible - 1; cursor > upper {
		v.Offset = cursor - visible + 1
		if v.Offset > maxOffset {
			v.Offset = maxOffset
		}
	}
	return v.Offset
}

// Range returns the half-open slice bounds of the rows to draw after
// following cursor.
func (v *Viewport) Range(cursor, total, visible int) (start, end int) {
	start = v.Follow(cursor, total, visible)
	end = start + visible
	if end > total {
		end = total
	}
	if end < start {
		end = start
	}
	return start, end
}
