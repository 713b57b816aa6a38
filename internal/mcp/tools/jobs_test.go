package tools

import (
	"context"
	"testing"

	"github.com/ferndale/jobboard-mcp/internal/apperrors"
	"github.com/ferndale/jobboard-mcp/internal/domain"
	"github.com/ferndale/jobboard-mcp/internal/domain/job"
)

type fakeProvider struct {
	postings []domain.JobPosting
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Fetch(_ context.Context) ([]domain.JobPosting, error) {
	return f.postings, nil
}

func newTestTools(t *testing.T) jobTools {
	t.Helper()

	svc, err := job.NewService(job.WithProvider(&fakeProvider{postings: []domain.JobPosting{
		{
			ID: "job-1", Title: "Senior Go Developer", Company: "Acme",
			Location: "Berlin, Germany", Remote: true, VisaSponsorship: true,
			TechStack: []string{"Go", "PostgreSQL"},
		},
		{
			ID: "job-2", Title: "Data Engineer", Company: "Globex",
			Location: "Amsterdam, Netherlands",
			TechStack: []string{"Python"},
		},
	}}))
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	return jobTools{service: svc}
}

func TestSearchJobsTool(t *testing.T) {
	handler := newTestTools(t)

	res, structured, err := handler.searchJobs(context.Background(), nil, &SearchJobsParams{RemoteOnly: true})
	if err != nil {
		t.Fatalf("searchJobs: %v", err)
	}
	if res == nil || len(res.Content) == 0 {
		t.Fatalf("expected text content")
	}

	result, ok := structured.(SearchJobsResult)
	if !ok {
		t.Fatalf("unexpected structured type %T", structured)
	}
	if result.TotalResults != 1 || result.Jobs[0].ID != "job-1" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestSearchJobsToolNilParams(t *testing.T) {
	handler := newTestTools(t)

	_, structured, err := handler.searchJobs(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("searchJobs: %v", err)
	}

	result := structured.(SearchJobsResult)
	if result.TotalResults != 2 {
		t.Fatalf("nil params must return the full collection, got %+v", result)
	}
}

func TestGetJobDetailsTool(t *testing.T) {
	handler := newTestTools(t)
	ctx := context.Background()

	_, structured, err := handler.getJobDetails(ctx, nil, &GetJobDetailsParams{JobID: "job-2"})
	if err != nil {
		t.Fatalf("getJobDetails: %v", err)
	}
	posting := structured.(domain.JobPosting)
	if posting.Company != "Globex" {
		t.Fatalf("unexpected posting: %+v", posting)
	}

	if _, _, err := handler.getJobDetails(ctx, nil, &GetJobDetailsParams{JobID: "job-999"}); !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}

	if _, _, err := handler.getJobDetails(ctx, nil, &GetJobDetailsParams{}); err == nil {
		t.Fatalf("expected error for missing job_id")
	}
}

func TestListToolsResults(t *testing.T) {
	handler := newTestTools(t)
	ctx := context.Background()

	_, structured, err := handler.listAllJobs(ctx, nil, &EmptyParams{})
	if err != nil {
		t.Fatalf("listAllJobs: %v", err)
	}
	if list := structured.(ListAllJobsResult); list.TotalJobs != 2 {
		t.Fatalf("unexpected list result: %+v", list)
	}

	_, structured, err = handler.getCompanies(ctx, nil, &EmptyParams{})
	if err != nil {
		t.Fatalf("getCompanies: %v", err)
	}
	if companies := structured.(CompaniesResult); companies.TotalCompanies != 2 || companies.Companies[0] != "Acme" {
		t.Fatalf("unexpected companies result: %+v", companies)
	}

	_, structured, err = handler.getTechStacks(ctx, nil, &EmptyParams{})
	if err != nil {
		t.Fatalf("getTechStacks: %v", err)
	}
	if techs := structured.(TechStacksResult); techs.TotalTechnologies != 3 {
		t.Fatalf("unexpected tech stacks result: %+v", techs)
	}
}
