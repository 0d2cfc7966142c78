package export

import (
	"fmt"
	"strings"
)

// contentPage accumulates the drawing operators for one page. Helper
// coordinates are measured from the top-left of the page; each helper
// converts to the PDF's bottom-left origin on emission. Text y positions
// name the baseline of the line.
type contentPage struct {
	height float64
	ops    strings.Builder
}

func newContentPage(height float64) *contentPage {
	return &contentPage{height: height}
}

// flip converts a top-based y coordinate to PDF space.
func (p *contentPage) flip(y float64) float64 {
	return p.height - y
}

// text draws a single line of text with its baseline at y.
func (p *contentPage) text(x, y, fontSize float64, style FontStyle, color Color, s string) {
	if s == "" {
		return
	}
	p.ops.WriteString("BT\n")
	fmt.Fprintf(&p.ops, "%s %.2f Tf\n", style.resource(), fontSize)
	fmt.Fprintf(&p.ops, "%s rg\n", color)
	fmt.Fprintf(&p.ops, "%.2f %.2f Td\n", x, p.flip(y))
	fmt.Fprintf(&p.ops, "(%s) Tj\n", escapeString(s))
	p.ops.WriteString("ET\n")
}

// textRight draws s with its right edge at x.
func (p *contentPage) textRight(x, y, fontSize float64, style FontStyle, color Color, s string) {
	p.text(x-StringWidth(s, fontSize, style), y, fontSize, style, color, s)
}

// fillRect fills the rectangle whose top-left corner is (x, y).
func (p *contentPage) fillRect(x, y, w, h float64, color Color) {
	fmt.Fprintf(&p.ops, "%s rg\n", color)
	fmt.Fprintf(&p.ops, "%.2f %.2f %.2f %.2f re f\n", x, p.flip(y)-h, w, h)
}

// line strokes a straight line between two top-based points.
func (p *contentPage) line(x1, y1, x2, y2, width float64, color Color) {
	fmt.Fprintf(&p.ops, "%s RG\n", color)
	fmt.Fprintf(&p.ops, "%.2f w\n", width)
	fmt.Fprintf(&p.ops, "%.2f %.2f m %.2f %.2f l S\n", x1, p.flip(y1), x2, p.flip(y2))
}

// kappa approximates a quarter circle with one cubic bezier.
const kappa = 0.5523

// roundedRectPath emits the path for a rounded rectangle with top-left
// corner (x, y) in PDF coordinates, ready for a fill or stroke operator.
func (p *contentPage) roundedRectPath(x, y, w, h, r float64) {
	// Work in PDF space: bottom-left of the box.
	bx := x
	by := p.flip(y) - h
	k := r * kappa

	fmt.Fprintf(&p.ops, "%.2f %.2f m\n", bx+r, by)
	fmt.Fprintf(&p.ops, "%.2f %.2f l\n", bx+w-r, by)
	fmt.Fprintf(&p.ops, "%.2f %.2f %.2f %.2f %.2f %.2f c\n", bx+w-r+k, by, bx+w, by+r-k, bx+w, by+r)
	fmt.Fprintf(&p.ops, "%.2f %.2f l\n", bx+w, by+h-r)
	fmt.Fprintf(&p.ops, "%.2f %.2f %.2f %.2f %.2f %.2f c\n", bx+w, by+h-r+k, bx+w-r+k, by+h, bx+w-r, by+h)
	fmt.Fprintf(&p.ops, "%.2f %.2f l\n", bx+r, by+h)
	fmt.Fprintf(&p.ops, "%.2f %.2f %.2f %.2f %.2f %.2f c\n", bx+r-k, by+h, bx, by+h-r+k, bx, by+h-r)
	fmt.Fprintf(&p.ops, "%.2f %.2f l\n", bx, by+r)
	fmt.Fprintf(&p.ops, "%.2f %.2f %.2f %.2f %.2f %.2f c\n", bx, by+r-k, bx+r-k, by, bx+r, by)
}

// fillRoundedRect fills a rounded rectangle with top-left corner (x, y).
func (p *contentPage) fillRoundedRect(x, y, w, h, r float64, color Color) {
	fmt.Fprintf(&p.ops, "%s rg\n", color)
	p.roundedRectPath(x, y, w, h, r)
	p.ops.WriteString("f\n")
}

// strokeRoundedRect strokes a rounded rectangle outline.
func (p *contentPage) strokeRoundedRect(x, y, w, h, r, width float64, color Color) {
	fmt.Fprintf(&p.ops, "%s RG\n", color)
	fmt.Fprintf(&p.ops, "%.2f w\n", width)
	p.roundedRectPath(x, y, w, h, r)
	p.ops.WriteString("S\n")
}

// content returns the accumulated operators.
func (p *contentPage) content() string {
	return p.ops.String()
}
