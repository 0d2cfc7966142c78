package card

// SectionKind identifies one renderable section of a battle card.
type SectionKind int

const (
	// SectionOverview is the prose summary card.
	SectionOverview SectionKind = iota

	// SectionComparison is the strengths-vs-weaknesses side-by-side pair.
	SectionComparison

	// SectionDifferentiators is the uniform card grid.
	SectionDifferentiators

	// SectionObjections is the question/answer table.
	SectionObjections

	// SectionPricing is the pricing-vs-discovery-questions pair.
	SectionPricing

	// SectionTestimonials is the sequence of quote blocks.
	SectionTestimonials
)

// String returns the section's display header.
func (k SectionKind) String() string {
	switch k {
	case SectionOverview:
		return "Overview"
	case SectionComparison:
		return "Strengths & Weaknesses"
	case SectionDifferentiators:
		return "Key Differentiators"
	case SectionObjections:
		return "Objection Handling"
	case SectionPricing:
		return "Pricing & Discovery"
	case SectionTestimonials:
		return "Customer Voices"
	default:
		return "Section"
	}
}

// Section is a tagged variant carrying the content for one section kind.
// Only the fields relevant to Kind are populated:
//
//	SectionOverview        Prose
//	SectionComparison      Left (strengths), Right (weaknesses)
//	SectionDifferentiators Items
//	SectionObjections      Objections
//	SectionPricing         Prose (pricing), Right (discovery questions)
//	SectionTestimonials    Testimonials
type Section struct {
	Kind SectionKind

	Prose        string
	Items        []string
	Left         []string
	Right        []string
	Objections   []Objection
	Testimonials []Testimonial
}

// Sections filters the card's fields into the ordered section list the
// export and preview layers render. Empty fields contribute no section, so
// downstream renderers never see a header with a blank body. The order here
// is the fixed emission order of the exported document.
func (c *Card) Sections() []Section {
	sections := make([]Section, 0, 6)

	if c.Overview != "" {
		sections = append(sections, Section{Kind: SectionOverview, Prose: c.Overview})
	}
	if len(c.Strengths) > 0 || len(c.Weaknesses) > 0 {
		sections = append(sections, Section{
			Kind:  SectionComparison,
			Left:  c.Strengths,
			Right: c.Weaknesses,
		})
	}
	if len(c.Differentiators) > 0 {
		sections = append(sections, Section{Kind: SectionDifferentiators, Items: c.Differentiators})
	}
	if len(c.Objections) > 0 {
		sections = append(sections, Section{Kind: SectionObjections, Objections: c.Objections})
	}
	if c.Pricing != "" || len(c.DiscoveryQuestions) > 0 {
		sections = append(sections, Section{
			Kind:  SectionPricing,
			Prose: c.Pricing,
			Right: c.DiscoveryQuestions,
		})
	}
	if len(c.Testimonials) > 0 {
		sections = append(sections, Section{Kind: SectionTestimonials, Testimonials: c.Testimonials})
	}

	return sections
}
