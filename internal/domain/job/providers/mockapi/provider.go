package mockapi

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ferndale/jobboard-mcp/internal/apperrors"
	"github.com/ferndale/jobboard-mcp/internal/domain"
	jobdomain "github.com/ferndale/jobboard-mcp/internal/domain/job"
	"github.com/ferndale/jobboard-mcp/pkg/jobsource"
)

// fetchClient describes the subset of the jobsource client used by the provider.
type fetchClient interface {
	FetchPostings(ctx context.Context) ([]jobsource.Posting, error)
}

// Provider implements job.Provider against the mock job API document
type Provider struct {
	client fetchClient
}

// NewProvider builds a mock API provider
func NewProvider(client fetchClient) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("mockapi provider: client is required")
	}
	return &Provider{client: client}, nil
}

// Name returns the provider identifier
func (p *Provider) Name() string {
	return "mockapi"
}

// Fetch downloads the document and coerces every record into a JobPosting.
// Any record missing a required field fails the whole load; there is no
// partial-success mode.
func (p *Provider) Fetch(ctx context.Context) ([]domain.JobPosting, error) {
	if p == nil || p.client == nil {
		return nil, fmt.Errorf("mockapi provider: client is nil")
	}

	raw, err := p.client.FetchPostings(ctx)
	if err != nil {
		switch {
		case errors.Is(err, jobsource.ErrBadPayload):
			return nil, apperrors.ParseFailed("job document did not decode", err)
		default:
			return nil, apperrors.FetchFailed("job document fetch failed", err)
		}
	}

	out := make([]domain.JobPosting, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))

	for i, posting := range raw {
		mapped, err := mapPosting(posting)
		if err != nil {
			return nil, apperrors.ParseFailed(fmt.Sprintf("posting %d rejected", i), err)
		}

		if _, dup := seen[mapped.ID]; dup {
			return nil, apperrors.ParseFailed(fmt.Sprintf("posting %d rejected", i),
				fmt.Errorf("duplicate id %q", mapped.ID))
		}
		seen[mapped.ID] = struct{}{}

		out = append(out, mapped)
	}

	return out, nil
}

func mapPosting(posting jobsource.Posting) (domain.JobPosting, error) {
	title := strings.TrimSpace(posting.Title)
	if title == "" {
		return domain.JobPosting{}, fmt.Errorf("missing title")
	}

	company := strings.TrimSpace(posting.Company)
	if company == "" {
		return domain.JobPosting{}, fmt.Errorf("missing company")
	}

	mapped := domain.JobPosting{
		ID:              strings.TrimSpace(posting.ID),
		Title:           title,
		Company:         company,
		Location:        strings.TrimSpace(posting.Location),
		Remote:          posting.Remote,
		VisaSponsorship: posting.VisaSponsorship,
		TechStack:       dedupeTech(posting.TechStack),
		Description:     posting.Description,
	}

	if mapped.ID == "" {
		mapped.ID = uuid.NewString()
	}

	if level := strings.TrimSpace(posting.ExperienceLevel); level != "" {
		if known, ok := domain.ParseExperienceLevel(level); ok {
			mapped.ExperienceLevel = known
		} else {
			// Pass unrecognized levels through unchanged rather than reject the load.
			mapped.ExperienceLevel = domain.ExperienceLevel(level)
		}
	}

	if posting.SalaryRange != nil {
		mapped.Salary = domain.SalaryRange{
			Min:      posting.SalaryRange.Min,
			Max:      posting.SalaryRange.Max,
			Currency: posting.SalaryRange.Currency,
		}
		if mapped.Salary.Max != 0 && mapped.Salary.Min > mapped.Salary.Max {
			mapped.Salary.Min, mapped.Salary.Max = mapped.Salary.Max, mapped.Salary.Min
		}
	}

	return mapped, nil
}

// dedupeTech drops empty and duplicate entries while preserving source order.
func dedupeTech(techs []string) []string {
	if len(techs) == 0 {
		return nil
	}

	out := make([]string, 0, len(techs))
	seen := make(map[string]struct{}, len(techs))
	for _, tech := range techs {
		tech = strings.TrimSpace(tech)
		if tech == "" {
			continue
		}
		key := strings.ToLower(tech)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tech)
	}

	return out
}

var _ jobdomain.Provider = (*Provider)(nil)
