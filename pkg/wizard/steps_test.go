package wizard

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	apperrors "github.com/vantageworks/battlecard/pkg/errors"
)

// scriptedSource feeds predefined lines to the form.
type scriptedSource struct {
	lines []string
	next  int
}

func (s *scriptedSource) ReadLine() (string, error) {
	if s.next >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.next]
	s.next++
	return line, nil
}

func newForm(lines ...string) (*form, *bytes.Buffer) {
	var buf bytes.Buffer
	return &form{in: &scriptedSource{lines: lines}, out: &buf}, &buf
}

func TestCollectCompetitors(t *testing.T) {
	f, _ := newForm("https://acme.example", "https://rival.example", "")
	urls, err := f.collectCompetitors()
	if err != nil {
		t.Fatalf("collectCompetitors failed: %v", err)
	}
	want := []string{"https://acme.example", "https://rival.example"}
	if !reflect.DeepEqual(urls, want) {
		t.Errorf("urls = %v, want %v", urls, want)
	}
}

func TestCollectCompetitorsRejectsInvalid(t *testing.T) {
	f, out := newForm("not a url", "ftp://files.example", "https://acme.example", "")
	urls, err := f.collectCompetitors()
	if err != nil {
		t.Fatalf("collectCompetitors failed: %v", err)
	}
	if len(urls) != 1 || urls[0] != "https://acme.example" {
		t.Errorf("urls = %v, want only the valid one", urls)
	}
	if !strings.Contains(out.String(), "http or https") {
		t.Error("scheme rejection message missing")
	}
}

func TestCollectCompetitorsRequiresOne(t *testing.T) {
	// Blank first, then a valid URL, then finish.
	f, out := newForm("", "https://acme.example", "")
	urls, err := f.collectCompetitors()
	if err != nil {
		t.Fatalf("collectCompetitors failed: %v", err)
	}
	if len(urls) != 1 {
		t.Errorf("urls = %v, want one entry", urls)
	}
	if !strings.Contains(out.String(), "at least one") {
		t.Error("empty-submit message missing")
	}
}

func TestCollectUseCaseRetriesOnEmpty(t *testing.T) {
	f, _ := newForm("", "Displace incumbent in mid-market deals")
	useCase, err := f.collectUseCase()
	if err != nil {
		t.Fatalf("collectUseCase failed: %v", err)
	}
	if useCase != "Displace incumbent in mid-market deals" {
		t.Errorf("useCase = %q", useCase)
	}
}

func TestCollectDocumentsSkipsUnreadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("pricing notes"), 0644); err != nil {
		t.Fatal(err)
	}

	f, out := newForm("/nonexistent/file.txt", path, "")
	docs, err := f.collectDocuments()
	if err != nil {
		t.Fatalf("collectDocuments failed: %v", err)
	}
	if len(docs) != 1 || docs[0].Name != path || string(docs[0].Content) != "pricing notes" {
		t.Errorf("docs = %+v", docs)
	}
	if !strings.Contains(out.String(), "cannot read") {
		t.Error("unreadable-file message missing")
	}
}

func TestParseSectionSelection(t *testing.T) {
	available := []string{"overview", "strengths", "weaknesses", "pricing"}

	tests := []struct {
		input   string
		want    []string
		wantErr bool
	}{
		{"", available, false},
		{"all", available, false},
		{"1,3", []string{"overview", "weaknesses"}, false},
		{"3, 1", []string{"weaknesses", "overview"}, false},
		{"1,1,2", []string{"overview", "strengths"}, false},
		{"0", nil, true},
		{"5", nil, true},
		{"two", nil, true},
	}
	for _, tt := range tests {
		got, err := parseSectionSelection(tt.input, available)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseSectionSelection(%q): expected error", tt.input)
			} else if !apperrors.IsCode(err, apperrors.ErrInvalidSelection) {
				t.Errorf("parseSectionSelection(%q): wrong error code: %v", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseSectionSelection(%q) failed: %v", tt.input, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseSectionSelection(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestCollectTemplate(t *testing.T) {
	f, _ := newForm("nope", "Concise")
	tmpl, err := f.collectTemplate("standard")
	if err != nil {
		t.Fatalf("collectTemplate failed: %v", err)
	}
	if tmpl != "concise" {
		t.Errorf("template = %q, want concise", tmpl)
	}
}

func TestCollectTemplateDefault(t *testing.T) {
	f, _ := newForm("")
	tmpl, err := f.collectTemplate("standard")
	if err != nil {
		t.Fatalf("collectTemplate failed: %v", err)
	}
	if tmpl != "standard" {
		t.Errorf("template = %q, want fallback", tmpl)
	}
}

func TestReviewChoice(t *testing.T) {
	tests := []struct {
		input string
		want  reviewChoice
	}{
		{"e", reviewExport},
		{"export", reviewExport},
		{"s", reviewShare},
		{"r", reviewRestart},
		{"q", reviewQuit},
	}
	for _, tt := range tests {
		f, _ := newForm(tt.input)
		got, err := f.reviewChoice()
		if err != nil {
			t.Fatalf("reviewChoice(%q) failed: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("reviewChoice(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestReviewChoiceRepromptsOnUnknown(t *testing.T) {
	f, out := newForm("banana", "q")
	got, err := f.reviewChoice()
	if err != nil {
		t.Fatalf("reviewChoice failed: %v", err)
	}
	if got != reviewQuit {
		t.Errorf("choice = %d, want quit", got)
	}
	if !strings.Contains(out.String(), "unknown choice") {
		t.Error("reprompt message missing")
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y", true},
		{"YES", true},
		{"n", false},
		{"", false},
		{"maybe", false},
	}
	for _, tt := range tests {
		f, _ := newForm(tt.input)
		got, err := f.confirm("Start over?")
		if err != nil {
			t.Fatalf("confirm(%q) failed: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestValidateURL(t *testing.T) {
	valid := []string{"https://acme.example", "http://rival.example/pricing"}
	for _, u := range valid {
		if err := validateURL(u); err != nil {
			t.Errorf("validateURL(%q) = %v, want nil", u, err)
		}
	}

	invalid := []string{"", "acme.example", "ftp://files.example", "https://"}
	for _, u := range invalid {
		err := validateURL(u)
		if err == nil {
			t.Errorf("validateURL(%q): expected error", u)
			continue
		}
		if !apperrors.IsCode(err, apperrors.ErrInvalidURL) {
			t.Errorf("validateURL(%q): wrong error code: %v", u, err)
		}
	}
}
