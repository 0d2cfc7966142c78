package export

// Geometry fixes the page dimensions for one document. All values are in
// points (1 point = 1/72 inch).
type Geometry struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64
	ColumnGap  float64
}

// DefaultGeometry is US Letter with a 54pt margin.
func DefaultGeometry() Geometry {
	return Geometry{
		PageWidth:  612,
		PageHeight: 792,
		Margin:     54,
		ColumnGap:  16,
	}
}

// ContentWidth is the horizontal space between the margins.
func (g Geometry) ContentWidth() float64 {
	return g.PageWidth - 2*g.Margin
}

// ColumnWidth is the width of one column in a two-column layout.
func (g Geometry) ColumnWidth() float64 {
	return (g.ContentWidth() - g.ColumnGap) / 2
}

// limit is the lowest top-based offset content may reach.
func (g Geometry) limit() float64 {
	return g.PageHeight - g.Margin
}

// cursor tracks the current page and the vertical write offset within it.
// Offsets are measured from the top of the page; the first page starts at
// the top margin. The cursor owns the page list for one export call and is
// discarded once the footer pass has read the final page count.
type cursor struct {
	geom  Geometry
	pages []*contentPage
	y     float64
}

func newCursor(geom Geometry) *cursor {
	c := &cursor{geom: geom}
	c.pages = append(c.pages, newContentPage(geom.PageHeight))
	c.y = geom.Margin
	return c
}

// page returns the page currently being drawn.
func (c *cursor) page() *contentPage {
	return c.pages[len(c.pages)-1]
}

// pageNumber returns the 1-based index of the current page.
func (c *cursor) pageNumber() int {
	return len(c.pages)
}

// reserve reports whether a block of the given height fits on the current
// page without advancing anything.
func (c *cursor) reserve(height float64) bool {
	return c.y+height <= c.geom.limit()
}

// newPage appends a page and resets the offset to the top margin.
func (c *cursor) newPage() {
	c.pages = append(c.pages, newContentPage(c.geom.PageHeight))
	c.y = c.geom.Margin
}

// checkPageBreak forces a new page if a block of the given height would
// overflow the current one. Returns whether a break occurred so callers can
// redraw repeating headers.
func (c *cursor) checkPageBreak(height float64) bool {
	if c.reserve(height) {
		return false
	}
	c.newPage()
	return true
}

// advance moves the offset down after a block has been drawn.
func (c *cursor) advance(height float64) {
	c.y += height
}
