package preview

import (
	"strings"
	"testing"
	"time"

	"github.com/vantageworks/battlecard/pkg/card"
)

func previewCard() *card.Card {
	return &card.Card{
		ID:          "preview-test",
		Title:       "Acme vs Us",
		GeneratedAt: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		Overview:    "Acme targets mid-market buyers.",
		Strengths:   []string{"Brand recognition"},
		Weaknesses:  []string{"Slow releases"},
		Objections: []card.Objection{
			{Question: "Why switch?", Answer: "Faster time to value."},
		},
		Testimonials: []card.Testimonial{
			{Quote: "Great fit for us.", Company: "Northwind"},
		},
	}
}

func TestRenderContainsContent(t *testing.T) {
	out := Render(previewCard(), 100)

	wants := []string{
		"Acme vs Us",
		"August 20, 2026",
		"Overview",
		"Acme targets mid-market buyers.",
		"Strengths",
		"Brand recognition",
		"Weaknesses",
		"Slow releases",
		"Objection Handling",
		"Why switch?",
		"Faster time to value.",
		"Customer Voices",
		"Northwind",
	}
	for _, w := range wants {
		if !strings.Contains(out, w) {
			t.Errorf("preview missing %q", w)
		}
	}
}

func TestRenderSkipsEmptySections(t *testing.T) {
	c := &card.Card{ID: "sparse", Title: "Sparse", Overview: "Just an overview."}
	out := Render(c, 100)

	for _, absent := range []string{"Key Differentiators", "Objection Handling", "Pricing", "Customer Voices"} {
		if strings.Contains(out, absent) {
			t.Errorf("empty section %q should not render", absent)
		}
	}
}

func TestRenderUntitledFallback(t *testing.T) {
	out := Render(&card.Card{ID: "untitled"}, 100)
	if !strings.Contains(out, "Competitive Battle Card") {
		t.Error("untitled card should fall back to generic title")
	}
}

func TestRenderNarrowWidthClamped(t *testing.T) {
	// Must not panic or produce negative panel widths.
	out := Render(previewCard(), 10)
	if out == "" {
		t.Error("narrow render produced no output")
	}
}
