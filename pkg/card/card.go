// Package card defines the competitive battle card record produced by the
// generation service and consumed by the preview and export layers.
package card

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Objection is a buyer objection paired with the recommended response.
type Objection struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Testimonial is a customer quote with its attribution.
type Testimonial struct {
	Quote   string `json:"quoteText"`
	Company string `json:"companyName"`
}

// Card is a generated competitive battle card. Any field may be empty; an
// empty field simply drops its section from preview and export. The export
// engine never mutates a Card.
type Card struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	GeneratedAt time.Time `json:"generatedAt"`

	Overview           string        `json:"overview,omitempty"`
	Differentiators    []string      `json:"differentiators,omitempty"`
	Strengths          []string      `json:"strengths,omitempty"`
	Weaknesses         []string      `json:"weaknesses,omitempty"`
	Pricing            string        `json:"pricing,omitempty"`
	Objections         []Objection   `json:"objections,omitempty"`
	DiscoveryQuestions []string      `json:"discoveryQuestions,omitempty"`
	Testimonials       []Testimonial `json:"testimonials,omitempty"`
}

// New creates an empty card with a fresh ID and the given title.
func New(title string) *Card {
	return &Card{
		ID:          uuid.NewString(),
		Title:       title,
		GeneratedAt: time.Now().UTC(),
	}
}

// Parse decodes a card from JSON. Absent fields decode to their zero values,
// which the rest of the system treats as empty sections. A card without an ID
// is assigned one so share links and filenames stay derivable.
func Parse(data []byte) (*Card, error) {
	var c Card
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return &c, nil
}

// JSON returns the card serialized as indented JSON. This is the raw-data
// export mirror: Parse(c.JSON()) yields a structurally identical card.
func (c *Card) JSON() ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}

// ExportFilename derives a download filename from the card title. Runs of
// non-alphanumeric characters collapse to a single underscore.
func (c *Card) ExportFilename(ext string) string {
	var sb strings.Builder
	pendingSep := false
	for _, r := range c.Title {
		alnum := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if alnum {
			if pendingSep && sb.Len() > 0 {
				sb.WriteByte('_')
			}
			pendingSep = false
			sb.WriteRune(r)
		} else {
			pendingSep = true
		}
	}
	name := sb.String()
	if name == "" {
		name = "battlecard"
	}
	return name + "." + strings.TrimPrefix(ext, ".")
}

// ShareLink returns the shareable URL for this card. The link is derived
// from the card ID; resolution is handled by the card service, not here.
func (c *Card) ShareLink() string {
	id := c.ID
	if id == "" {
		id = uuid.NewString()
	}
	return "https://cards.battlecard.dev/c/" + id
}
