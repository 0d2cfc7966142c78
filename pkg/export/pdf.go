package export

import (
	"fmt"
	"strings"
)

// PDF constants for document generation.
const (
	// pdfVersion is the PDF specification version used.
	pdfVersion = "1.4"

	// pdfProducer is the producer string embedded in PDF metadata.
	pdfProducer = "Battlecard Export"
)

// Color is an RGB color with components in [0, 1].
type Color struct {
	R, G, B float64
}

// String returns the color as a PDF operand triple.
func (c Color) String() string {
	return fmt.Sprintf("%.3f %.3f %.3f", c.R, c.G, c.B)
}

// HexColor converts a hex color string ("#336699" or "336699") to a Color.
// Invalid input yields black.
func HexColor(hex string) Color {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return Color{}
	}

	var r, g, b int
	fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	return Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
}

// Document theme colors.
var (
	colorInk       = Color{0.10, 0.12, 0.16} // primary text
	colorMuted     = Color{0.38, 0.42, 0.48} // secondary text
	colorFaint     = Color{0.55, 0.58, 0.62} // footer, timestamps
	colorAccent    = HexColor("#2563EB")     // banner, default accent bars
	colorPositive  = HexColor("#16A34A")     // strengths accent
	colorNegative  = HexColor("#DC2626")     // weaknesses accent
	colorBoxFill   = Color{0.97, 0.975, 0.985}
	colorBoxStroke = Color{0.85, 0.87, 0.90}
	colorTableHead = Color{0.92, 0.94, 0.97}
	colorRule      = Color{0.80, 0.82, 0.85}
	colorWhite     = Color{1, 1, 1}
)

// escapeString escapes characters with special meaning inside PDF literal
// strings. Runes outside Latin-1 are replaced, not encoded; the built-in
// faces carry WinAnsi only.
func escapeString(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '(':
			sb.WriteString(`\(`)
		case ')':
			sb.WriteString(`\)`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n', '\r', '\t':
			sb.WriteByte(' ')
		default:
			if r > 0xFF {
				sb.WriteByte('?')
			} else {
				sb.WriteByte(byte(r))
			}
		}
	}
	return sb.String()
}
