package jobsource

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient(Config{}); err == nil {
		t.Fatalf("expected error for missing URL")
	}

	if _, err := NewClient(Config{URL: "ftp://example.com/jobs"}); err == nil {
		t.Fatalf("expected error for unsupported scheme")
	}

	client, err := NewClient(Config{URL: "https://example.com/jobs"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if client == nil {
		t.Fatalf("expected non-nil client")
	}
}

func TestFetchPostingsEnvelopedDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jobs": [
			{"id": "job-1", "title": "Go Developer", "company": "Acme", "location": "Berlin, Germany", "remote": true, "tech_stack": ["Go", "PostgreSQL"]},
			{"id": "job-2", "title": "Data Engineer", "company": "Globex", "location": "Amsterdam, Netherlands"}
		]}`))
	}))
	defer srv.Close()

	client, err := NewClient(Config{URL: srv.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	postings, err := client.FetchPostings(context.Background())
	if err != nil {
		t.Fatalf("FetchPostings: %v", err)
	}

	if len(postings) != 2 {
		t.Fatalf("expected 2 postings, got %d", len(postings))
	}
	if postings[0].ID != "job-1" || postings[0].Title != "Go Developer" {
		t.Fatalf("unexpected first posting: %+v", postings[0])
	}
	if !postings[0].Remote {
		t.Fatalf("expected first posting to be remote")
	}
	if len(postings[0].TechStack) != 2 {
		t.Fatalf("unexpected tech stack: %v", postings[0].TechStack)
	}
}

func TestFetchPostingsBareArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id": "job-1", "title": "Go Developer", "company": "Acme"}]`))
	}))
	defer srv.Close()

	client, err := NewClient(Config{URL: srv.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	postings, err := client.FetchPostings(context.Background())
	if err != nil {
		t.Fatalf("FetchPostings: %v", err)
	}
	if len(postings) != 1 {
		t.Fatalf("expected 1 posting, got %d", len(postings))
	}
}

func TestFetchPostingsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client, err := NewClient(Config{URL: srv.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, err = client.FetchPostings(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestFetchPostingsUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	url := srv.URL
	srv.Close()

	client, err := NewClient(Config{URL: url})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, err = client.FetchPostings(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestFetchPostingsBadPayload(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"not json", "<html>oops</html>"},
		{"wrong field type", `{"jobs": [{"id": 42, "title": "Go Developer"}]}`},
		{"empty body", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client, err := NewClient(Config{URL: srv.URL})
			if err != nil {
				t.Fatalf("NewClient: %v", err)
			}

			_, err = client.FetchPostings(context.Background())
			if !errors.Is(err, ErrBadPayload) {
				t.Fatalf("expected ErrBadPayload, got %v", err)
			}
		})
	}
}
