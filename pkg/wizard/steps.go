package wizard

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"
	"strings"

	apperrors "github.com/vantageworks/battlecard/pkg/errors"
	"github.com/vantageworks/battlecard/pkg/intel"
)

// lineSource abstracts interactive input so the step logic is testable
// without a terminal.
type lineSource interface {
	ReadLine() (string, error)
}

// form runs the individual wizard steps over a line source.
type form struct {
	in  lineSource
	out io.Writer
}

// ask prints a prompt and reads one trimmed line.
func (f *form) ask(prompt string) (string, error) {
	fmt.Fprint(f.out, prompt)
	line, err := f.in.ReadLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// confirm asks a yes/no question; only "y" or "yes" confirms.
func (f *form) confirm(question string) (bool, error) {
	answer, err := f.ask(question + " [y/N]: ")
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}

// collectCompetitors reads competitor URLs until a blank line. At least
// one valid URL is required; invalid entries are rejected and re-prompted.
func (f *form) collectCompetitors() ([]string, error) {
	fmt.Fprintln(f.out, "Step 1: competitor URLs (one per line, blank line to finish)")

	var urls []string
	for {
		line, err := f.ask(fmt.Sprintf("  url %d> ", len(urls)+1))
		if err != nil {
			return nil, err
		}
		if line == "" {
			if len(urls) == 0 {
				fmt.Fprintln(f.out, "  at least one competitor URL is required")
				continue
			}
			return urls, nil
		}
		if err := validateURL(line); err != nil {
			fmt.Fprintf(f.out, "  %v\n", err)
			continue
		}
		urls = append(urls, line)
	}
}

// collectUseCase reads the required use-case description.
func (f *form) collectUseCase() (string, error) {
	fmt.Fprintln(f.out, "Step 2: describe the sales use case")
	for {
		line, err := f.ask("  use case> ")
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
		fmt.Fprintln(f.out, "  the use case cannot be empty")
	}
}

// collectDocuments reads optional supporting document paths. Unreadable
// files are reported and skipped; the step never fails the wizard.
func (f *form) collectDocuments() ([]intel.DocumentInput, error) {
	fmt.Fprintln(f.out, "Step 3: supporting documents (file paths, blank line to skip)")

	var docs []intel.DocumentInput
	for {
		line, err := f.ask(fmt.Sprintf("  file %d> ", len(docs)+1))
		if err != nil {
			return nil, err
		}
		if line == "" {
			return docs, nil
		}
		content, err := os.ReadFile(line)
		if err != nil {
			fmt.Fprintf(f.out, "  cannot read %s: %v\n", line, err)
			continue
		}
		docs = append(docs, intel.DocumentInput{Name: line, Content: content})
	}
}

// collectSections lets the user keep the default section set or pick a
// subset by number.
func (f *form) collectSections(defaults []string) ([]string, error) {
	fmt.Fprintln(f.out, "Step 4: sections to include (enter for all, or numbers like 1,3,5)")
	for i, s := range defaults {
		fmt.Fprintf(f.out, "  %d. %s\n", i+1, s)
	}

	for {
		line, err := f.ask("  sections> ")
		if err != nil {
			return nil, err
		}
		selected, serr := parseSectionSelection(line, defaults)
		if serr != nil {
			fmt.Fprintf(f.out, "  %v\n", serr)
			continue
		}
		return selected, nil
	}
}

// parseSectionSelection resolves a comma-separated list of 1-based indices
// against the available sections. Empty input or "all" selects everything.
func parseSectionSelection(input string, available []string) ([]string, error) {
	input = strings.TrimSpace(strings.ToLower(input))
	if input == "" || input == "all" {
		return available, nil
	}

	seen := make(map[int]bool)
	var selected []string
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, apperrors.Validationf(apperrors.ErrInvalidSelection,
				"%q is not a section number", part)
		}
		if n < 1 || n > len(available) {
			return nil, apperrors.Validationf(apperrors.ErrInvalidSelection,
				"section %d is out of range (1-%d)", n, len(available))
		}
		if !seen[n] {
			seen[n] = true
			selected = append(selected, available[n-1])
		}
	}
	return selected, nil
}

// templates are the layout variants the generation service understands.
var templates = []string{"standard", "concise", "detailed"}

// collectTemplate picks a template tag, defaulting on empty input.
func (f *form) collectTemplate(fallback string) (string, error) {
	fmt.Fprintf(f.out, "Step 5: template %v (enter for %q)\n", templates, fallback)
	for {
		line, err := f.ask("  template> ")
		if err != nil {
			return "", err
		}
		if line == "" {
			return fallback, nil
		}
		line = strings.ToLower(line)
		for _, t := range templates {
			if line == t {
				return t, nil
			}
		}
		fmt.Fprintf(f.out, "  unknown template %q\n", line)
	}
}

// reviewChoice is one action from the post-generation menu.
type reviewChoice int

const (
	reviewExport reviewChoice = iota
	reviewShare
	reviewRestart
	reviewQuit
)

// reviewChoice reads the post-generation menu selection.
func (f *form) reviewChoice() (reviewChoice, error) {
	for {
		line, err := f.ask("[e]xport  [s]hare link  [r]estart  [q]uit> ")
		if err != nil {
			return reviewQuit, err
		}
		switch strings.ToLower(line) {
		case "e", "export":
			return reviewExport, nil
		case "s", "share":
			return reviewShare, nil
		case "r", "restart":
			return reviewRestart, nil
		case "q", "quit", "exit":
			return reviewQuit, nil
		default:
			fmt.Fprintf(f.out, "unknown choice %q\n", line)
		}
	}
}

// validateURL accepts absolute http(s) URLs only.
func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return apperrors.Validationf(apperrors.ErrInvalidURL, "cannot parse %q", raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return apperrors.Validationf(apperrors.ErrInvalidURL,
			"%q must use http or https", raw)
	}
	if u.Host == "" {
		return apperrors.Validationf(apperrors.ErrInvalidURL, "%q has no host", raw)
	}
	return nil
}
