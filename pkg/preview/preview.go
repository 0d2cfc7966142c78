// Package preview renders a battle card as styled terminal output so the
// wizard can show the generated result before export.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vantageworks/battlecard/pkg/card"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("27")).
			Padding(0, 1)
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	borderStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	positiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	negativeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	bulletStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	questionStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	quoteStyle    = lipgloss.NewStyle().Italic(true)
)

// minWidth keeps panels readable in narrow terminals.
const minWidth = 60

// Render returns the card formatted for a terminal of the given width.
// Sections follow the same order and filtering as the PDF export.
func Render(c *card.Card, width int) string {
	if width < minWidth {
		width = minWidth
	}
	inner := width - 4 // border and padding overhead

	var b strings.Builder

	b.WriteString(titleStyle.Render(" " + displayTitle(c) + " "))
	b.WriteString("\n")
	sub := "Competitive Battle Card"
	if !c.GeneratedAt.IsZero() {
		sub += "  |  " + c.GeneratedAt.Format("January 2, 2006")
	}
	b.WriteString(subtitleStyle.Render(sub))
	b.WriteString("\n\n")

	for _, s := range c.Sections() {
		renderSection(&b, s, width, inner)
	}

	return b.String()
}

func displayTitle(c *card.Card) string {
	if c.Title == "" {
		return "Competitive Battle Card"
	}
	return c.Title
}

func renderSection(b *strings.Builder, s card.Section, width, inner int) {
	switch s.Kind {
	case card.SectionOverview:
		b.WriteString(headerStyle.Render(s.Kind.String()))
		b.WriteString("\n")
		b.WriteString(borderStyle.Width(inner).Render(s.Prose))

	case card.SectionComparison:
		b.WriteString(headerStyle.Render(s.Kind.String()))
		b.WriteString("\n")
		halfW := (inner - 1) / 2
		left := borderStyle.Width(halfW).Render(
			positiveStyle.Render("Strengths") + "\n" + bullets(s.Left))
		right := borderStyle.Width(halfW).Render(
			negativeStyle.Render("Weaknesses") + "\n" + bullets(s.Right))
		switch {
		case len(s.Left) == 0:
			b.WriteString(borderStyle.Width(inner).Render(
				negativeStyle.Render("Weaknesses") + "\n" + bullets(s.Right)))
		case len(s.Right) == 0:
			b.WriteString(borderStyle.Width(inner).Render(
				positiveStyle.Render("Strengths") + "\n" + bullets(s.Left)))
		default:
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
		}

	case card.SectionDifferentiators:
		b.WriteString(headerStyle.Render(s.Kind.String()))
		b.WriteString("\n")
		b.WriteString(borderStyle.Width(inner).Render(bullets(s.Items)))

	case card.SectionObjections:
		b.WriteString(headerStyle.Render(s.Kind.String()))
		b.WriteString("\n")
		var rows []string
		for _, o := range s.Objections {
			rows = append(rows,
				questionStyle.Render(o.Question)+"\n"+mutedStyle.Render("  "+o.Answer))
		}
		b.WriteString(borderStyle.Width(inner).Render(strings.Join(rows, "\n")))

	case card.SectionPricing:
		b.WriteString(headerStyle.Render(s.Kind.String()))
		b.WriteString("\n")
		var parts []string
		if s.Prose != "" {
			parts = append(parts, questionStyle.Render("Pricing")+"\n"+s.Prose)
		}
		if len(s.Right) > 0 {
			parts = append(parts, questionStyle.Render("Discovery Questions")+"\n"+bullets(s.Right))
		}
		b.WriteString(borderStyle.Width(inner).Render(strings.Join(parts, "\n\n")))

	case card.SectionTestimonials:
		b.WriteString(headerStyle.Render(s.Kind.String()))
		b.WriteString("\n")
		var quotes []string
		for _, t := range s.Testimonials {
			q := quoteStyle.Render(fmt.Sprintf("%q", t.Quote))
			if t.Company != "" {
				q += "\n" + mutedStyle.Render("  - "+t.Company)
			}
			quotes = append(quotes, q)
		}
		b.WriteString(borderStyle.Width(inner).Render(strings.Join(quotes, "\n\n")))
	}
	b.WriteString("\n\n")
}

func bullets(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = bulletStyle.Render("• ") + item
	}
	return strings.Join(lines, "\n")
}
