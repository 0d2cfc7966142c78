package export

import "strings"

// FontStyle selects one of the three embedded base-14 faces.
type FontStyle int

const (
	FontRegular FontStyle = iota
	FontBold
	FontOblique
)

// resource returns the font resource name used in content streams.
func (s FontStyle) resource() string {
	switch s {
	case FontBold:
		return "/F2"
	case FontOblique:
		return "/F3"
	default:
		return "/F1"
	}
}

// Glyph advance widths in 1/1000 em for ASCII 0x20-0x7E, taken from the
// Adobe font metrics of the base-14 faces. Helvetica-Oblique shares the
// regular widths.
var helveticaWidths = [95]int{
	278, 278, 355, 556, 556, 889, 667, 191, 333, 333, 389, 584, 278, 333,
	278, 278, 556, 556, 556, 556, 556, 556, 556, 556, 556, 556, 278, 278,
	584, 584, 584, 556, 1015, 667, 667, 722, 722, 667, 611, 778, 722, 278,
	500, 667, 556, 833, 722, 778, 667, 778, 722, 667, 611, 722, 667, 944,
	667, 667, 611, 278, 278, 278, 469, 556, 333, 556, 556, 500, 556, 556,
	278, 556, 556, 222, 222, 500, 222, 833, 556, 556, 556, 556, 333, 500,
	278, 556, 500, 722, 500, 500, 500, 334, 260, 334, 584,
}

var helveticaBoldWidths = [95]int{
	278, 333, 474, 556, 556, 889, 722, 238, 333, 333, 389, 584, 278, 333,
	278, 278, 556, 556, 556, 556, 556, 556, 556, 556, 556, 556, 333, 333,
	584, 584, 584, 611, 975, 722, 722, 722, 722, 667, 611, 778, 722, 278,
	556, 722, 611, 833, 722, 778, 667, 778, 722, 667, 611, 722, 667, 944,
	667, 667, 611, 333, 278, 333, 584, 556, 333, 556, 611, 556, 611, 556,
	333, 611, 611, 278, 278, 556, 278, 889, 611, 611, 611, 611, 389, 556,
	333, 611, 556, 778, 556, 556, 500, 389, 280, 389, 584,
}

// defaultGlyphWidth stands in for runes outside the table. 556 is the
// digit and lowercase-average width of Helvetica, so unknown glyphs cost
// roughly one typical character.
const defaultGlyphWidth = 556

func glyphWidth(r rune, style FontStyle) int {
	if r < 0x20 || r > 0x7E {
		return defaultGlyphWidth
	}
	if style == FontBold {
		return helveticaBoldWidths[r-0x20]
	}
	return helveticaWidths[r-0x20]
}

// StringWidth returns the rendered width of s in points at the given font
// size. The sum is exact for ASCII; other runes use a fixed estimate.
func StringWidth(s string, size float64, style FontStyle) float64 {
	total := 0
	for _, r := range s {
		total += glyphWidth(r, style)
	}
	return float64(total) * size / 1000.0
}

// Wrap breaks text into lines no wider than maxWidth using greedy
// whitespace wrapping. A single word wider than maxWidth occupies its own
// line rather than being split. Runs of whitespace collapse to one space.
// The result is deterministic for a given input. Empty or blank text
// yields nil.
func Wrap(text string, size float64, style FontStyle, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	spaceW := StringWidth(" ", size, style)

	var lines []string
	current := words[0]
	currentW := StringWidth(words[0], size, style)

	for _, word := range words[1:] {
		w := StringWidth(word, size, style)
		if currentW+spaceW+w <= maxWidth {
			current += " " + word
			currentW += spaceW + w
			continue
		}
		lines = append(lines, current)
		current = word
		currentW = w
	}
	return append(lines, current)
}

// lineHeight is the vertical advance per wrapped line.
func lineHeight(size float64) float64 {
	return size * 1.4
}
