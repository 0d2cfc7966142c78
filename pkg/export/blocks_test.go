package export

import (
	"strings"
	"testing"
)

func TestMeasureParagraphHeight(t *testing.T) {
	text := "A competitive overview long enough to wrap onto several lines when constrained to a narrow column width for measurement"
	m := measureParagraph(text, bodySize, FontRegular, 150)

	if len(m.lines) < 2 {
		t.Fatalf("expected wrapped paragraph, got %d lines", len(m.lines))
	}
	want := float64(len(m.lines)) * lineHeight(bodySize)
	if m.height != want {
		t.Errorf("height = %v, want lines*lineHeight = %v", m.height, want)
	}
}

func TestDrawParagraphReturnsMeasuredHeight(t *testing.T) {
	m := measureParagraph("short line", bodySize, FontRegular, 400)
	pg := newContentPage(792)

	if got := drawParagraph(pg, 54, 100, m, colorInk); got != m.height {
		t.Errorf("drawn height %v != measured height %v", got, m.height)
	}
	if !strings.Contains(pg.content(), "(short line) Tj") {
		t.Error("paragraph text missing from content stream")
	}
}

func TestMeasureListItemGaps(t *testing.T) {
	items := []string{"first", "second", "third"}
	m := measureList(items, bodySize, 400)

	// Three single-line items plus two inter-item gaps.
	want := 3*lineHeight(bodySize) + 2*itemGap
	if m.height != want {
		t.Errorf("height = %v, want %v", m.height, want)
	}
}

func TestMeasureCardBlockProseVsList(t *testing.T) {
	prose := measureCardBlock(cardBlock{title: "Overview", prose: "one line"}, 400)
	list := measureCardBlock(cardBlock{title: "Strengths", items: []string{"one line"}}, 400)

	// Single-line prose and a single-item list occupy the same content
	// height inside the card chrome.
	if prose.height != list.height {
		t.Errorf("prose card %v != single-item list card %v", prose.height, list.height)
	}

	base := accentBarH + cardPad + lineHeight(titleSize) + titleGap + lineHeight(bodySize) + cardPad
	if prose.height != base {
		t.Errorf("card height = %v, want %v", prose.height, base)
	}
}

func TestDrawCardBlockConsumesMeasuredHeight(t *testing.T) {
	m := measureCardBlock(cardBlock{title: "Pricing", accent: colorAccent, prose: "Usage-based tiers"}, 400)
	pg := newContentPage(792)

	if got := drawCardBlock(pg, 54, 120, 400, m); got != m.height {
		t.Errorf("drawn height %v != measured %v", got, m.height)
	}
	content := pg.content()
	if !strings.Contains(content, "(Pricing) Tj") {
		t.Error("card title missing from content stream")
	}
	if !strings.Contains(content, "(Usage-based tiers) Tj") {
		t.Error("card prose missing from content stream")
	}
}

func TestMeasureGridCellHeight(t *testing.T) {
	m := measureGridCell("one line", 200)
	want := accentBarH + cardPad + lineHeight(bodySize) + cardPad
	if m.height != want {
		t.Errorf("cell height = %v, want %v", m.height, want)
	}
}

func TestMeasureObjectionRowTakesTallerCell(t *testing.T) {
	long := "This answer is deliberately verbose so that it wraps onto several lines within the answer column and dominates the row height computation entirely"
	m := measureObjectionRow("Too expensive?", long, 504)

	if m.answer.height <= m.question.height {
		t.Fatalf("test fixture broken: answer %v not taller than question %v",
			m.answer.height, m.question.height)
	}
	want := m.answer.height + 2*rowPad
	if m.height != want {
		t.Errorf("row height = %v, want taller cell + padding = %v", m.height, want)
	}
}

func TestDrawTableHeaderContinuation(t *testing.T) {
	fresh := newContentPage(792)
	drawTableHeader(fresh, 54, 100, 504, false)
	if strings.Contains(fresh.content(), "(cont.)") {
		t.Error("fresh header should not carry continuation marker")
	}

	cont := newContentPage(792)
	drawTableHeader(cont, 54, 100, 504, true)
	if !strings.Contains(cont.content(), "(Objection \\(cont.\\)) Tj") {
		t.Error("continuation header missing marker")
	}
}

func TestMeasureQuoteAttribution(t *testing.T) {
	with := measureQuote("Cut our eval cycle in half.", "Northwind", 400)
	without := measureQuote("Cut our eval cycle in half.", "", 400)

	if with.attribution != "- Northwind" {
		t.Errorf("attribution = %q, want %q", with.attribution, "- Northwind")
	}
	if without.attribution != "" {
		t.Errorf("attribution = %q for empty company, want empty", without.attribution)
	}
	if with.height <= without.height {
		t.Error("attributed quote should be taller than bare quote")
	}
}
