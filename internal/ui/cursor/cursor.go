// Package cursor tracks a highlighted row and scroll window over a list.
// The deck picker and the results report both window their rows through
// it; list length and viewport height are arguments rather than fields
// because the filter and the terminal resize both change them between
// calls.
package cursor

// Cursor is a position plus the index of the first visible row. The zero
// value is usable; New sets the scroll margin.
type Cursor struct {
	pos    int
	offset int
	margin int // rows kept visible beyond the cursor when scrolling
}

// New returns a cursor keeping margin rows visible past the highlight.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the highlighted row index.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the index of the first visible row.
func (c Cursor) Offset() int {
	return c.offset
}

// VisibleRange returns the half-open row range [start, end) currently in
// the viewport.
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, listLen)
}

// Move shifts the highlight by delta rows, clamping at the list ends and
// scrolling the window to follow. No-op on an empty list.
func (c *Cursor) Move(delta, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = min(max(c.pos+delta, 0), listLen-1)
	c.follow(listLen, height)
}

// JumpStart highlights the first row and rewinds the window.
func (c *Cursor) JumpStart() {
	c.pos, c.offset = 0, 0
}

// JumpEnd highlights the last row.
func (c *Cursor) JumpEnd(listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = listLen - 1
	c.follow(listLen, height)
}

// EnsureVisible scrolls the window so the highlight is on screen. Call it
// after setting the position from outside (e.g. restoring a selection).
func (c *Cursor) EnsureVisible(listLen, height int) {
	c.follow(listLen, height)
}

// ClampToBounds pulls the highlight back in range after the list shrank
// (a narrowed filter, typically). Reports whether anything moved.
func (c *Cursor) ClampToBounds(listLen int) bool {
	if listLen == 0 {
		moved := c.pos != 0 || c.offset != 0
		c.pos, c.offset = 0, 0
		return moved
	}
	was := c.pos
	c.pos = min(max(c.pos, 0), listLen-1)
	return c.pos != was
}

// Reset returns the cursor to the top of the list.
func (c *Cursor) Reset() {
	c.pos, c.offset = 0, 0
}

// HandleKey applies the house list navigation keys: j/k and arrows move,
// g/G and home/end jump, ctrl+d/ctrl+u move half a page. Returns false
// for keys it does not own.
func (c *Cursor) HandleKey(key string, listLen, height int) bool {
	switch key {
	case "j", "down":
		c.Move(1, listLen, height)
	case "k", "up":
		c.Move(-1, listLen, height)
	case "g", "home":
		c.JumpStart()
	case "G", "end":
		c.JumpEnd(listLen, height)
	case "ctrl+d":
		c.Move(height/2, listLen, height)
	case "ctrl+u":
		c.Move(-height/2, listLen, height)
	default:
		return false
	}
	return true
}

// follow moves the window so the highlight sits inside it with the margin
// respected, then clamps the window to the list.
func (c *Cursor) follow(listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}
	if c.pos < c.offset+c.margin {
		c.offset = max(c.pos-c.margin, 0)
	}
	if c.pos >= c.offset+height-c.margin {
		c.offset = c.pos - height + c.margin + 1
	}
	c.offset = min(max(c.offset, 0), max(listLen-height, 0))
}
