// Package wizard implements the interactive battle card builder: a
// step-by-step terminal flow that gathers competitor URLs, a use case,
// supporting documents, and layout choices, then drives generation,
// preview, and export.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"github.com/vantageworks/battlecard/pkg/card"
	"github.com/vantageworks/battlecard/pkg/config"
	apperrors "github.com/vantageworks/battlecard/pkg/errors"
	"github.com/vantageworks/battlecard/pkg/export"
	"github.com/vantageworks/battlecard/pkg/intel"
	"github.com/vantageworks/battlecard/pkg/preview"
	"github.com/vantageworks/battlecard/pkg/spinner"
)

// Sentinel flow-control errors internal to the wizard loop.
var (
	errQuit    = errors.New("quit")
	errRestart = errors.New("restart")
)

// Wizard drives the interactive card-building session.
type Wizard struct {
	cfg    *config.Config
	client *intel.Client
	rl     *readline.Instance
	out    io.Writer
}

// New creates a wizard bound to the given configuration.
func New(cfg *config.Config) (*Wizard, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[34mbattlecard>\033[0m ",
		HistoryFile:     cfg.Wizard.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &Wizard{
		cfg:    cfg,
		client: intel.NewClient(cfg.Service.URL, cfg.Service.APIKey, cfg.Service.Timeout),
		rl:     rl,
		out:    os.Stdout,
	}, nil
}

// Run starts the wizard loop. Each pass builds and reviews one card; the
// user can restart from step one after a failure or from the review menu.
func (w *Wizard) Run(ctx context.Context) error {
	defer w.rl.Close()

	fmt.Fprintln(w.out, "Welcome to battlecard. Answer each step; a blank line finishes list steps.")
	fmt.Fprintln(w.out)

	if !w.client.IsAvailable(ctx) {
		fmt.Fprintf(w.out, "\033[33mwarning:\033[0m card service at %s is not responding\n\n", w.cfg.Service.URL)
	}

	for {
		err := w.runOnce(ctx)
		switch {
		case err == nil, errors.Is(err, errQuit), errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, errRestart):
			fmt.Fprintln(w.out, "\nStarting over.")
			continue
		case errors.Is(err, readline.ErrInterrupt):
			return nil
		default:
			return err
		}
	}
}

// runOnce walks all steps for a single card.
func (w *Wizard) runOnce(ctx context.Context) error {
	f := &form{in: w, out: w.out}

	urls, err := f.collectCompetitors()
	if err != nil {
		return err
	}
	useCase, err := f.collectUseCase()
	if err != nil {
		return err
	}
	docs, err := f.collectDocuments()
	if err != nil {
		return err
	}
	sections, err := f.collectSections(w.cfg.Wizard.DefaultSections)
	if err != nil {
		return err
	}
	template, err := f.collectTemplate(w.cfg.Wizard.DefaultTemplate)
	if err != nil {
		return err
	}

	generated, err := w.generate(ctx, intel.GenerationRequest{
		UseCase:  useCase,
		Template: template,
		Sections: sections,
	}, urls, docs)
	if err != nil {
		apperrors.DefaultFormatter().Print(err)
		retry, rerr := f.confirm("Start over from step one?")
		if rerr != nil {
			return rerr
		}
		if retry {
			return errRestart
		}
		// The error was already shown; the user chose to stop.
		return errQuit
	}

	return w.review(f, generated)
}

// generate runs the analysis batch, optional document processing, and the
// generation call, with terminal progress throughout.
func (w *Wizard) generate(ctx context.Context, req intel.GenerationRequest, urls []string, docs []intel.DocumentInput) (*card.Card, error) {
	bar := spinner.NewProgress(len(urls), "Analyzing competitors")
	bar.Start()
	analyses, warnings, err := w.client.AnalyzeAll(ctx, urls, func(i int, url string) {
		bar.Increment()
	})
	if err != nil {
		bar.Fail("Competitor analysis failed")
		return nil, err
	}
	bar.Complete(fmt.Sprintf("Analyzed %d competitor(s)", len(analyses)))
	printWarnings(w.out, warnings)
	req.Competitors = analyses

	if len(docs) > 0 {
		docBar := spinner.NewProgress(len(docs), "Processing documents")
		docBar.Start()
		processed, docWarnings := w.client.ProcessAll(ctx, docs, func(i int, name string) {
			docBar.Increment()
		})
		docBar.Complete(fmt.Sprintf("Processed %d document(s)", len(processed)))
		printWarnings(w.out, docWarnings)
		req.Documents = processed
	}

	spin := spinner.New("Generating battle card")
	spin.Start()
	defer spin.Stop()

	// Progress events update the spinner message while Generate blocks.
	if stream, serr := w.client.Events(ctx); serr == nil {
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				ev, err := stream.Next()
				if err != nil {
					return
				}
				spin.Update(fmt.Sprintf("Generating battle card: %s (%d%%)", ev.Message, ev.Percent))
			}
		}()
		// Closing the stream unblocks Next, so the reader cannot outlive
		// the generation call.
		defer func() {
			stream.Close()
			<-done
		}()
	}

	generated, err := w.client.Generate(ctx, req)
	if err != nil {
		spin.Fail("Generation failed")
		return nil, err
	}
	spin.Success("Battle card generated")
	return generated, nil
}

func printWarnings(out io.Writer, warnings []intel.Warning) {
	for _, warn := range warnings {
		fmt.Fprintf(out, "\033[33mwarning:\033[0m %s\n", warn)
	}
}

// review shows the generated card and handles the post-generation menu.
func (w *Wizard) review(f *form, c *card.Card) error {
	fmt.Fprintln(w.out)
	fmt.Fprintln(w.out, preview.Render(c, terminalWidth()))

	for {
		choice, err := f.reviewChoice()
		if err != nil {
			return err
		}
		switch choice {
		case reviewExport:
			if err := w.export(c); err != nil {
				apperrors.DefaultFormatter().Print(err)
			}
		case reviewShare:
			link := c.ShareLink()
			copyToClipboard(w.out, link)
			fmt.Fprintf(w.out, "Share link: %s (copied to clipboard)\n", link)
		case reviewRestart:
			return errRestart
		case reviewQuit:
			return nil
		}
	}
}

// export writes the PDF and its JSON mirror into the configured directory.
func (w *Wizard) export(c *card.Card) error {
	dir := w.cfg.Export.Path
	if err := os.MkdirAll(dir, 0755); err != nil {
		return apperrors.Wrap(err, apperrors.ErrExportWriteFailed,
			apperrors.CategoryExport, "cannot create export directory")
	}

	pdfPath := filepath.Join(dir, c.ExportFilename("pdf"))
	cfg := &export.Config{
		Geometry:     export.DefaultGeometry(),
		Confidential: w.cfg.Export.Confidential,
		Author:       w.cfg.Export.Author,
		Compress:     w.cfg.Export.Compress,
	}
	if err := export.WriteFile(pdfPath, c, cfg); err != nil {
		return err
	}

	jsonPath := filepath.Join(dir, c.ExportFilename("json"))
	if err := export.WriteJSONFile(jsonPath, c); err != nil {
		return err
	}

	fmt.Fprintf(w.out, "Exported %s and %s\n", pdfPath, jsonPath)
	return nil
}

// ReadLine satisfies the form's line source using the readline instance.
func (w *Wizard) ReadLine() (string, error) {
	line, err := w.rl.Readline()
	if err == readline.ErrInterrupt {
		return "", errQuit
	}
	return line, err
}

// terminalWidth returns the stdout width, or a default when not a TTY.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 100
}
