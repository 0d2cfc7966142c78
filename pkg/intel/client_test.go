package intel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "github.com/vantageworks/battlecard/pkg/errors"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL, "test-key", 5*time.Second), srv
}

func TestAnalyzeCompetitor(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/competitors/analyze" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("expected bearer auth, got %q", got)
		}

		var req map[string]string
		json.NewDecoder(r.Body).Decode(&req)
		if req["url"] != "https://acme.example" {
			t.Errorf("unexpected url in request: %s", req["url"])
		}

		json.NewEncoder(w).Encode(CompetitorAnalysis{
			URL:         req["url"],
			CompanyName: "Acme",
			Summary:     "Mid-market suite vendor.",
		})
	}))
	defer srv.Close()

	result, err := client.AnalyzeCompetitor(context.Background(), "https://acme.example")
	if err != nil {
		t.Fatalf("AnalyzeCompetitor failed: %v", err)
	}
	if result.CompanyName != "Acme" {
		t.Errorf("expected company Acme, got %s", result.CompanyName)
	}
}

func TestAnalyzeCompetitorAPIError(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream crawl failed", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := client.AnalyzeCompetitor(context.Background(), "https://acme.example")
	if err == nil {
		t.Fatal("expected error for non-200 response")
	}
	if !apperrors.IsCode(err, apperrors.ErrServiceAPIError) {
		t.Errorf("expected SERVICE_API_ERROR, got %v", err)
	}
}

func TestGenerateParsesCard(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req GenerationRequest
		json.NewDecoder(r.Body).Decode(&req)

		if req.UseCase != "displacement" {
			t.Errorf("unexpected use case: %s", req.UseCase)
		}
		if len(req.Sections) != 2 {
			t.Errorf("expected 2 enabled sections, got %d", len(req.Sections))
		}

		w.Write([]byte(`{"id":"c-1","title":"Acme vs. Us","overview":"Summary."}`))
	}))
	defer srv.Close()

	generated, err := client.Generate(context.Background(), GenerationRequest{
		Competitors: []CompetitorAnalysis{{URL: "https://acme.example"}},
		UseCase:     "displacement",
		Template:    "standard",
		Sections:    []string{"overview", "pricing"},
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if generated.Title != "Acme vs. Us" {
		t.Errorf("unexpected title: %s", generated.Title)
	}
	if generated.GeneratedAt.IsZero() {
		t.Error("Generate should backfill a missing timestamp")
	}
}

func TestGenerateBadResponse(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	_, err := client.Generate(context.Background(), GenerationRequest{})
	if err == nil {
		t.Fatal("expected error for unparseable card")
	}
	if !apperrors.IsCode(err, apperrors.ErrServiceBadResponse) {
		t.Errorf("expected SERVICE_BAD_RESPONSE, got %v", err)
	}
}

func TestServiceUnreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "", time.Second)

	_, err := client.AnalyzeCompetitor(context.Background(), "https://acme.example")
	if err == nil {
		t.Fatal("expected error for unreachable service")
	}
	if !apperrors.IsCode(err, apperrors.ErrServiceUnavailable) {
		t.Errorf("expected SERVICE_UNAVAILABLE, got %v", err)
	}
}

func TestIsAvailable(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	if !client.IsAvailable(context.Background()) {
		t.Error("expected service to report available")
	}

	down := NewClient("http://127.0.0.1:1", "", time.Second)
	if down.IsAvailable(context.Background()) {
		t.Error("unreachable service should report unavailable")
	}
}
