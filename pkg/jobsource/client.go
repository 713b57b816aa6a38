package jobsource

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const maxDocumentBytes = 4 << 20

var (
	// ErrUnavailable marks transport failures and non-success upstream statuses.
	ErrUnavailable = errors.New("jobsource: upstream unavailable")
	// ErrBadPayload marks a response body that does not decode into postings.
	ErrBadPayload = errors.New("jobsource: malformed payload")
)

// NewClient instantiates a client for the remote job document
func NewClient(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("jobsource: url is required")
	}

	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("jobsource: parse url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("jobsource: unsupported url scheme %q", u.Scheme)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		url:        cfg.URL,
		httpClient: httpClient,
	}, nil
}

// FetchPostings downloads and decodes the full job-posting document
func (c *Client) FetchPostings(ctx context.Context) ([]Posting, error) {
	if c == nil {
		return nil, fmt.Errorf("jobsource: client is nil")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("jobsource: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}

	return decodeDocument(body)
}

// decodeDocument accepts either an enveloped {"jobs": [...]} object or a
// bare array of postings.
func decodeDocument(body []byte) ([]Posting, error) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrBadPayload)
	}

	if trimmed[0] == '[' {
		var postings []Posting
		if err := json.Unmarshal(trimmed, &postings); err != nil {
			return nil, fmt.Errorf("%w: decode array: %v", ErrBadPayload, err)
		}
		return postings, nil
	}

	var doc document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode document: %v", ErrBadPayload, err)
	}

	return doc.Jobs, nil
}
