package intel

import (
	"context"
	"fmt"

	apperrors "github.com/vantageworks/battlecard/pkg/errors"
)

// Warning records a non-fatal per-item failure during a batch.
type Warning struct {
	Item   string
	Reason string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Item, w.Reason)
}

// AnalyzeAll analyzes competitor URLs sequentially, one at a time, awaiting
// each before the next. Individual failures are collected as warnings and
// the batch continues; zero successful analyses is fatal. onItem, when
// non-nil, is called after each item finishes, success or warning, so a
// progress display never runs ahead of the work.
func (c *Client) AnalyzeAll(ctx context.Context, urls []string, onItem func(i int, url string)) ([]CompetitorAnalysis, []Warning, error) {
	analyses := make([]CompetitorAnalysis, 0, len(urls))
	var warnings []Warning

	for i, url := range urls {
		if err := ctx.Err(); err != nil {
			return nil, warnings, err
		}

		result, err := c.AnalyzeCompetitor(ctx, url)
		if err != nil {
			warnings = append(warnings, Warning{Item: url, Reason: err.Error()})
		} else {
			analyses = append(analyses, *result)
		}
		if onItem != nil {
			onItem(i, url)
		}
	}

	if len(analyses) == 0 {
		return nil, warnings, apperrors.Analysisf(apperrors.ErrNoCompetitorsAnalyzed,
			"all %d competitor analyses failed", len(urls))
	}
	return analyses, warnings, nil
}

// DocumentInput is one document queued for processing.
type DocumentInput struct {
	Name    string
	Content []byte
}

// ProcessAll processes supporting documents sequentially. Documents are
// optional, so every failure is a warning and none is fatal.
func (c *Client) ProcessAll(ctx context.Context, docs []DocumentInput, onItem func(i int, name string)) ([]ProcessedDocument, []Warning) {
	processed := make([]ProcessedDocument, 0, len(docs))
	var warnings []Warning

	for i, doc := range docs {
		if ctx.Err() != nil {
			return processed, warnings
		}

		result, err := c.ProcessDocument(ctx, doc.Name, doc.Content)
		if err != nil {
			warnings = append(warnings, Warning{Item: doc.Name, Reason: err.Error()})
		} else {
			processed = append(processed, *result)
		}
		if onItem != nil {
			onItem(i, doc.Name)
		}
	}
	return processed, warnings
}
