package ui

// Base carries the window dimensions every screen and popup needs. Embed
// it in a component model; the app forwards tea.WindowSizeMsg into SetSize
// and the component reads the accessors while rendering.
type Base struct {
	width, height int
}

// SetSize records the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}

// ListHeight returns the rows left for list content after overhead rows
// (headers, separators, status lines) are taken out.
func (b Base) ListHeight(overhead int) int {
	return b.height - overhead
}
