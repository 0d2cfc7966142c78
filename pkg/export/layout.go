package export

import (
	"fmt"
	"os"

	"github.com/vantageworks/battlecard/pkg/card"
	apperrors "github.com/vantageworks/battlecard/pkg/errors"
)

// Config specifies options for PDF export.
type Config struct {
	// Geometry fixes the page dimensions. Defaults to US Letter.
	Geometry Geometry

	// Confidential is the footer notice stamped on every page.
	Confidential string

	// Author is embedded in the PDF Info dictionary.
	Author string

	// Compress enables FlateDecode compression of content streams.
	Compress bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Geometry:     DefaultGeometry(),
		Confidential: "CONFIDENTIAL - For internal sales use only",
		Compress:     true,
	}
}

// Render lays out the card into a complete PDF document. The card is never
// mutated; layout is recomputed from scratch on every call. A drawing-time
// panic from a malformed record is recovered into a generic export failure
// rather than yielding a partial document.
func Render(c *card.Card, cfg *Config) (out []byte, err error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = apperrors.ExportFailed(fmt.Errorf("%v", r))
		}
	}()

	e := &engine{cfg: cfg, cur: newCursor(cfg.Geometry)}

	e.banner(c)
	for _, s := range c.Sections() {
		e.section(s)
	}

	stampFooters(e.cur, cfg.Confidential)

	doc := newPDFDocument(c.Title, cfg.Author, cfg.Compress)
	for _, pg := range e.cur.pages {
		content := fmt.Sprintf("q\n1 1 1 rg\n0 0 %.2f %.2f re f\n%sQ\n",
			cfg.Geometry.PageWidth, cfg.Geometry.PageHeight, pg.content())
		doc.addPage(cfg.Geometry.PageWidth, cfg.Geometry.PageHeight, content)
	}
	return doc.build(), nil
}

// WriteFile renders the card and writes the PDF to path.
func WriteFile(path string, c *card.Card, cfg *Config) error {
	pdf, err := Render(c, cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, pdf, 0644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

// engine drives one export call: it owns the cursor and dispatches each
// section to its block renderer in the fixed emission order.
type engine struct {
	cfg *Config
	cur *cursor
}

func (e *engine) geom() Geometry {
	return e.cfg.Geometry
}

// section renders one filtered section. Sections arrive non-empty; the
// filtering in card.Sections guarantees no header is emitted over a blank
// body.
func (e *engine) section(s card.Section) {
	switch s.Kind {
	case card.SectionOverview:
		e.placeCard(cardBlock{title: "Overview", accent: colorAccent, prose: s.Prose}, e.geom().ContentWidth())

	case card.SectionComparison:
		e.placePair(
			cardBlock{title: "Strengths", accent: colorPositive, items: s.Left},
			cardBlock{title: "Weaknesses", accent: colorNegative, items: s.Right},
		)

	case card.SectionDifferentiators:
		e.placeGrid(s.Kind.String(), s.Items)

	case card.SectionObjections:
		e.placeTable(s.Kind.String(), s.Objections)

	case card.SectionPricing:
		e.placePair(
			cardBlock{title: "Pricing", accent: colorAccent, prose: s.Prose},
			cardBlock{title: "Discovery Questions", accent: colorAccent, items: s.Right},
		)

	case card.SectionTestimonials:
		e.placeQuotes(s.Kind.String(), s.Testimonials)
	}
}

// banner draws the title header on the first page.
func (e *engine) banner(c *card.Card) {
	g := e.geom()
	w := g.ContentWidth()

	title := c.Title
	if title == "" {
		title = "Competitive Battle Card"
	}

	const subSize = 8.5
	m := measureParagraph(title, bannerSize, FontBold, w-2*cardPad)
	h := cardPad + m.height + 4 + lineHeight(subSize) + cardPad

	pg := e.cur.page()
	pg.fillRoundedRect(g.Margin, e.cur.y, w, h, cornerRadius, colorAccent)

	y := e.cur.y + cardPad
	drawParagraph(pg, g.Margin+cardPad, y, m, colorWhite)
	y += m.height + 4

	sub := "Competitive Battle Card"
	if !c.GeneratedAt.IsZero() {
		sub += "  |  Generated " + c.GeneratedAt.Format("January 2, 2006")
	}
	pg.text(g.Margin+cardPad, y+subSize, subSize, FontRegular, Color{0.85, 0.89, 0.97}, sub)

	e.cur.advance(h + sectionGap)
}

// sectionHeader emits a standalone header. firstChunk is the height of the
// content that must follow on the same page, so a header is never stranded
// as the last line of a page.
func (e *engine) sectionHeader(title string, firstChunk float64) {
	h := lineHeight(headerSize)
	e.cur.checkPageBreak(h + headerGap + firstChunk)

	pg := e.cur.page()
	pg.text(e.geom().Margin, e.cur.y+headerSize, headerSize, FontBold, colorInk, title)
	pg.fillRect(e.geom().Margin, e.cur.y+h+2, 28, 2.5, colorAccent)
	e.cur.advance(h + headerGap)
}

// placeCard measures, breaks if needed, and draws one full-width card.
func (e *engine) placeCard(b cardBlock, width float64) {
	m := measureCardBlock(b, width)
	e.cur.checkPageBreak(m.height)
	drawCardBlock(e.cur.page(), e.geom().Margin, e.cur.y, width, m)
	e.cur.advance(m.height + sectionGap)
}

// placePair draws two cards side by side in equal columns. The cards keep
// independent heights and the cursor advances by the taller one, so the
// shorter column leaves trailing whitespace instead of staggering. A pair
// with one empty side degrades to a single full-width card.
func (e *engine) placePair(left, right cardBlock) {
	leftEmpty := left.prose == "" && len(left.items) == 0
	rightEmpty := right.prose == "" && len(right.items) == 0

	switch {
	case leftEmpty && rightEmpty:
		return
	case rightEmpty:
		e.placeCard(left, e.geom().ContentWidth())
		return
	case leftEmpty:
		e.placeCard(right, e.geom().ContentWidth())
		return
	}

	colW := e.geom().ColumnWidth()
	lm := measureCardBlock(left, colW)
	rm := measureCardBlock(right, colW)

	h := lm.height
	if rm.height > h {
		h = rm.height
	}

	e.cur.checkPageBreak(h)
	pg := e.cur.page()
	drawCardBlock(pg, e.geom().Margin, e.cur.y, colW, lm)
	drawCardBlock(pg, e.geom().Margin+colW+e.geom().ColumnGap, e.cur.y, colW, rm)
	e.cur.advance(h + sectionGap)
}

// gridRowGap separates grid rows.
const gridRowGap = 10

// placeGrid lays the items into a fixed three-column grid. Every cell in
// the grid shares one height, the maximum measured over all items, which is
// why all cells are measured before any row is drawn. The cursor advances
// only at row boundaries.
func (e *engine) placeGrid(header string, items []string) {
	g := e.geom()
	cellW := (g.ContentWidth() - float64(gridColumns-1)*g.ColumnGap) / gridColumns

	cells := make([]measuredGridCell, len(items))
	shared := 0.0
	for i, item := range items {
		cells[i] = measureGridCell(item, cellW)
		if cells[i].height > shared {
			shared = cells[i].height
		}
	}

	e.sectionHeader(header, shared)

	for start := 0; start < len(cells); start += gridColumns {
		if start > 0 {
			e.cur.advance(gridRowGap)
		}
		e.cur.checkPageBreak(shared)

		pg := e.cur.page()
		end := start + gridColumns
		if end > len(cells) {
			end = len(cells)
		}
		for i := start; i < end; i++ {
			x := g.Margin + float64(i-start)*(cellW+g.ColumnGap)
			drawGridCell(pg, x, e.cur.y, cellW, shared, cells[i])
		}
		e.cur.advance(shared)
	}
	e.cur.advance(sectionGap)
}

// placeTable renders the objections table. When a row forces a page break
// the column header is redrawn on the new page with a continuation marker,
// except for a row too tall to share a page with the header; no row is
// split, duplicated, or dropped.
func (e *engine) placeTable(header string, objections []card.Objection) {
	g := e.geom()
	tableW := g.ContentWidth()

	rows := make([]measuredTableRow, len(objections))
	for i, o := range objections {
		rows[i] = measureObjectionRow(o.Question, o.Answer, tableW)
	}

	firstChunk := tableHeaderHeight()
	if len(rows) > 0 {
		firstChunk += rows[0].height
	}
	e.sectionHeader(header, firstChunk)

	h := drawTableHeader(e.cur.page(), g.Margin, e.cur.y, tableW, false)
	e.cur.advance(h)

	for _, row := range rows {
		if e.cur.checkPageBreak(row.height) {
			// A row taller than the space under a redrawn header gets the
			// full page to itself; the header would push its bottom past
			// the margin.
			if e.cur.reserve(tableHeaderHeight() + row.height) {
				h := drawTableHeader(e.cur.page(), g.Margin, e.cur.y, tableW, true)
				e.cur.advance(h)
			}
		}
		drawTableRow(e.cur.page(), g.Margin, e.cur.y, tableW, row)
		e.cur.advance(row.height)
	}
	e.cur.advance(sectionGap)
}

// quoteGap separates consecutive quote blocks.
const quoteGap = 10

// placeQuotes renders testimonials sequentially at full width.
func (e *engine) placeQuotes(header string, testimonials []card.Testimonial) {
	g := e.geom()
	w := g.ContentWidth()

	first := measureQuote(testimonials[0].Quote, testimonials[0].Company, w)
	e.sectionHeader(header, first.height)

	for i, t := range testimonials {
		m := first
		if i > 0 {
			e.cur.advance(quoteGap)
			m = measureQuote(t.Quote, t.Company, w)
		}
		e.cur.checkPageBreak(m.height)
		drawQuote(e.cur.page(), g.Margin, e.cur.y, w, m)
		e.cur.advance(m.height)
	}
	e.cur.advance(sectionGap)
}
