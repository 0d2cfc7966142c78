package export

// Layout constants shared by the block renderers. All values in points.
const (
	bodySize   = 9.5
	titleSize  = 11
	headerSize = 13
	bannerSize = 19
	footerSize = 7

	cardPad      = 12
	accentBarH   = 3.5
	titleGap     = 6
	bulletIndent = 12
	itemGap      = 3
	cellPad      = 6
	rowPad       = 5
	cornerRadius = 6
	quoteIndent  = 18

	sectionGap = 18
	headerGap  = 8
)

// bulletGlyph is the WinAnsi bullet (0x95).
const bulletGlyph = "\u0095"

// Every renderer is split into a pure measure function returning the exact
// height the block will occupy and a draw function that paints it at a known
// top offset. Heights must be final before any drawing because box fills and
// borders are emitted before the text they contain.

// ---------------------------------------------------------------------------
// Paragraph
// ---------------------------------------------------------------------------

type measuredParagraph struct {
	lines  []string
	size   float64
	style  FontStyle
	height float64
}

func measureParagraph(text string, size float64, style FontStyle, width float64) measuredParagraph {
	lines := Wrap(text, size, style, width)
	return measuredParagraph{
		lines:  lines,
		size:   size,
		style:  style,
		height: float64(len(lines)) * lineHeight(size),
	}
}

// drawParagraph paints the wrapped lines starting at yTop and returns the
// height consumed, which always equals the measured height.
func drawParagraph(pg *contentPage, x, yTop float64, m measuredParagraph, color Color) float64 {
	y := yTop
	for _, line := range m.lines {
		pg.text(x, y+m.size, m.size, m.style, color, line)
		y += lineHeight(m.size)
	}
	return m.height
}

// ---------------------------------------------------------------------------
// Bulleted list
// ---------------------------------------------------------------------------

type measuredList struct {
	items  [][]string // wrapped lines per item
	size   float64
	height float64
}

func measureList(items []string, size, width float64) measuredList {
	m := measuredList{size: size}
	for i, item := range items {
		lines := Wrap(item, size, FontRegular, width-bulletIndent)
		m.items = append(m.items, lines)
		m.height += float64(len(lines)) * lineHeight(size)
		if i > 0 {
			m.height += itemGap
		}
	}
	return m
}

func drawList(pg *contentPage, x, yTop float64, m measuredList, color Color) float64 {
	y := yTop
	for i, lines := range m.items {
		if i > 0 {
			y += itemGap
		}
		pg.text(x, y+m.size, m.size, FontRegular, colorMuted, bulletGlyph)
		for _, line := range lines {
			pg.text(x+bulletIndent, y+m.size, m.size, FontRegular, color, line)
			y += lineHeight(m.size)
		}
	}
	return y - yTop
}

// ---------------------------------------------------------------------------
// Card: rounded bordered box, accent bar, bold title, prose or bullets
// ---------------------------------------------------------------------------

type cardBlock struct {
	title  string
	accent Color
	prose  string   // either prose...
	items  []string // ...or a bulleted list
}

type measuredCardBlock struct {
	block  cardBlock
	prose  measuredParagraph
	list   measuredList
	height float64
}

func measureCardBlock(b cardBlock, width float64) measuredCardBlock {
	m := measuredCardBlock{block: b}
	inner := width - 2*cardPad

	var contentH float64
	if b.prose != "" {
		m.prose = measureParagraph(b.prose, bodySize, FontRegular, inner)
		contentH = m.prose.height
	} else {
		m.list = measureList(b.items, bodySize, inner)
		contentH = m.list.height
	}

	m.height = accentBarH + cardPad + lineHeight(titleSize) + titleGap + contentH + cardPad
	return m
}

func drawCardBlock(pg *contentPage, x, yTop, width float64, m measuredCardBlock) float64 {
	pg.fillRoundedRect(x, yTop, width, m.height, cornerRadius, colorBoxFill)
	pg.strokeRoundedRect(x, yTop, width, m.height, cornerRadius, 0.75, colorBoxStroke)
	pg.fillRect(x+cornerRadius, yTop, width-2*cornerRadius, accentBarH, m.block.accent)

	y := yTop + accentBarH + cardPad
	pg.text(x+cardPad, y+titleSize, titleSize, FontBold, colorInk, m.block.title)
	y += lineHeight(titleSize) + titleGap

	if m.block.prose != "" {
		drawParagraph(pg, x+cardPad, y, m.prose, colorInk)
	} else {
		drawList(pg, x+cardPad, y, m.list, colorInk)
	}
	return m.height
}

// ---------------------------------------------------------------------------
// Uniform grid cell (differentiators)
// ---------------------------------------------------------------------------

// gridColumns is the fixed column count of the differentiator grid.
const gridColumns = 3

type measuredGridCell struct {
	text   measuredParagraph
	height float64
}

func measureGridCell(item string, cellWidth float64) measuredGridCell {
	text := measureParagraph(item, bodySize, FontRegular, cellWidth-2*cardPad)
	return measuredGridCell{
		text:   text,
		height: accentBarH + cardPad + text.height + cardPad,
	}
}

// drawGridCell paints one cell at the shared row height, which may exceed
// the cell's own measured height so the grid reads as aligned rows.
func drawGridCell(pg *contentPage, x, yTop, width, sharedHeight float64, m measuredGridCell) {
	pg.fillRoundedRect(x, yTop, width, sharedHeight, cornerRadius, colorBoxFill)
	pg.strokeRoundedRect(x, yTop, width, sharedHeight, cornerRadius, 0.75, colorBoxStroke)
	pg.fillRect(x+cornerRadius, yTop, width-2*cornerRadius, accentBarH, colorAccent)
	drawParagraph(pg, x+cardPad, yTop+accentBarH+cardPad, m.text, colorInk)
}

// ---------------------------------------------------------------------------
// Objections table (two columns, 35%/65%)
// ---------------------------------------------------------------------------

// Column split for the objections table.
const (
	tableQuestionFrac = 0.35
	tableAnswerFrac   = 0.65
)

type measuredTableRow struct {
	question measuredParagraph
	answer   measuredParagraph
	height   float64
}

// measureObjectionRow wraps both cells and sizes the row to the taller one.
func measureObjectionRow(question, answer string, tableWidth float64) measuredTableRow {
	qw := tableWidth*tableQuestionFrac - 2*cellPad
	aw := tableWidth*tableAnswerFrac - 2*cellPad

	q := measureParagraph(question, bodySize, FontBold, qw)
	a := measureParagraph(answer, bodySize, FontRegular, aw)

	contentH := q.height
	if a.height > contentH {
		contentH = a.height
	}
	return measuredTableRow{
		question: q,
		answer:   a,
		height:   contentH + 2*rowPad,
	}
}

// tableHeaderHeight is the height of the column header row.
func tableHeaderHeight() float64 {
	return lineHeight(bodySize) + 2*rowPad
}

// drawTableHeader paints the column header row. cont marks a continuation
// after a page break.
func drawTableHeader(pg *contentPage, x, yTop, tableWidth float64, cont bool) float64 {
	h := tableHeaderHeight()
	pg.fillRect(x, yTop, tableWidth, h, colorTableHead)

	left := "Objection"
	if cont {
		left = "Objection (cont.)"
	}
	baseline := yTop + rowPad + bodySize
	pg.text(x+cellPad, baseline, bodySize, FontBold, colorInk, left)
	pg.text(x+tableWidth*tableQuestionFrac+cellPad, baseline, bodySize, FontBold, colorInk, "Recommended Response")

	pg.line(x, yTop+h, x+tableWidth, yTop+h, 0.75, colorRule)
	return h
}

func drawTableRow(pg *contentPage, x, yTop, tableWidth float64, m measuredTableRow) float64 {
	drawParagraph(pg, x+cellPad, yTop+rowPad, m.question, colorInk)
	drawParagraph(pg, x+tableWidth*tableQuestionFrac+cellPad, yTop+rowPad, m.answer, colorMuted)
	pg.line(x, yTop+m.height, x+tableWidth, yTop+m.height, 0.5, colorRule)
	return m.height
}

// ---------------------------------------------------------------------------
// Quote block (testimonials)
// ---------------------------------------------------------------------------

type measuredQuote struct {
	quote       measuredParagraph
	attribution string
	height      float64
}

func measureQuote(quote, company string, width float64) measuredQuote {
	text := measureParagraph(quote, bodySize, FontOblique, width-2*cardPad-quoteIndent)
	attribution := ""
	if company != "" {
		attribution = "- " + company
	}

	h := cardPad + text.height + cardPad
	if attribution != "" {
		h += titleGap + lineHeight(bodySize)
	}
	return measuredQuote{quote: text, attribution: attribution, height: h}
}

func drawQuote(pg *contentPage, x, yTop, width float64, m measuredQuote) float64 {
	pg.fillRoundedRect(x, yTop, width, m.height, cornerRadius, colorBoxFill)
	pg.strokeRoundedRect(x, yTop, width, m.height, cornerRadius, 0.75, colorBoxStroke)

	// Oversized opening quote mark at a fixed offset.
	pg.text(x+cardPad, yTop+cardPad+14, 20, FontBold, colorAccent, "\"")

	y := yTop + cardPad
	drawParagraph(pg, x+cardPad+quoteIndent, y, m.quote, colorInk)
	y += m.quote.height

	if m.attribution != "" {
		y += titleGap
		pg.text(x+cardPad+quoteIndent, y+bodySize, bodySize, FontBold, colorMuted, m.attribution)
	}
	return m.height
}
