package export

import (
	"fmt"
	"os"

	"github.com/vantageworks/battlecard/pkg/card"
)

// WriteJSONFile writes the raw-data JSON mirror of the card for
// programmatic reuse. The output round-trips through card.Parse.
func WriteJSONFile(path string, c *card.Card) error {
	data, err := c.JSON()
	if err != nil {
		return fmt.Errorf("failed to serialize card: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}
