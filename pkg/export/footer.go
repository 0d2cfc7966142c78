package export

import "fmt"

// stampFooters runs once after all content pages exist, because the total
// page count is unknowable until layout finishes. Every page receives a
// separator rule above the footer band, the confidentiality notice on the
// left, and "Page i of N" on the right.
func stampFooters(cur *cursor, notice string) {
	g := cur.geom
	total := len(cur.pages)

	ruleY := g.PageHeight - g.Margin + 8
	baseline := g.PageHeight - g.Margin + 20

	for i, pg := range cur.pages {
		pg.line(g.Margin, ruleY, g.PageWidth-g.Margin, ruleY, 0.5, colorRule)
		pg.text(g.Margin, baseline, footerSize, FontRegular, colorFaint, notice)
		pg.textRight(g.PageWidth-g.Margin, baseline, footerSize, FontRegular, colorFaint,
			fmt.Sprintf("Page %d of %d", i+1, total))
	}
}
