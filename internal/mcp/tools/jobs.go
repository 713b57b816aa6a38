package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ferndale/jobboard-mcp/internal/domain"
	"github.com/ferndale/jobboard-mcp/internal/domain/job"
	"github.com/ferndale/jobboard-mcp/pkg/logging"
)

// SearchJobsParams defines the arguments for the search_jobs tool. All
// filters are optional and combine with logical AND.
type SearchJobsParams struct {
	Query           string `json:"query,omitempty" jsonschema:"Free-text match against title, company, location, or technology"`
	TitleContains   string `json:"title_contains,omitempty" jsonschema:"Case-insensitive substring match against the title"`
	Company         string `json:"company,omitempty" jsonschema:"Exact company name, case-insensitive"`
	Location        string `json:"location,omitempty" jsonschema:"Case-insensitive substring match against the location"`
	Technology      string `json:"technology,omitempty" jsonschema:"Technology that must appear in the tech stack"`
	RemoteOnly      bool   `json:"remote_only,omitempty" jsonschema:"When true, restrict to remote postings"`
	VisaSponsorship bool   `json:"visa_sponsorship,omitempty" jsonschema:"When true, restrict to postings with visa sponsorship"`
	ExperienceLevel string `json:"experience_level,omitempty" jsonschema:"Experience level (Entry, Mid, Mid-Senior, Senior)"`
}

// SearchJobsResult wraps search output
type SearchJobsResult struct {
	TotalResults int                 `json:"total_results"`
	Jobs         []domain.JobPosting `json:"jobs"`
}

// GetJobDetailsParams defines the arguments for the get_job_details tool
type GetJobDetailsParams struct {
	JobID string `json:"job_id" jsonschema:"The unique job ID"`
}

// EmptyParams is the argument object for tools that take none.
type EmptyParams struct{}

// ListAllJobsResult wraps the full collection
type ListAllJobsResult struct {
	TotalJobs int                 `json:"total_jobs"`
	Jobs      []domain.JobPosting `json:"jobs"`
}

// CompaniesResult lists distinct companies
type CompaniesResult struct {
	TotalCompanies int      `json:"total_companies"`
	Companies      []string `json:"companies"`
}

// TechStacksResult lists distinct technologies
type TechStacksResult struct {
	TotalTechnologies int      `json:"total_technologies"`
	Technologies      []string `json:"technologies"`
}

type jobTools struct {
	service job.Service
	logger  *logging.Logger
}

// RegisterJobTools installs the five job query tools on the MCP server.
func RegisterJobTools(server *sdkmcp.Server, service job.Service, logger *logging.Logger) error {
	if service == nil {
		return fmt.Errorf("job service is required")
	}

	handler := jobTools{service: service, logger: logger}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "search_jobs",
		Description: "Search for jobs by title, company, location, or tech stack",
	}, handler.searchJobs)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_job_details",
		Description: "Get detailed information about a specific job by ID",
	}, handler.getJobDetails)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_all_jobs",
		Description: "Get a list of all available job postings",
	}, handler.listAllJobs)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_companies",
		Description: "Get a list of all companies with job postings",
	}, handler.getCompanies)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_tech_stacks",
		Description: "Get a list of all technologies mentioned in job postings",
	}, handler.getTechStacks)

	if logger != nil {
		logger.Info("job tools registered", "tools", []string{
			"search_jobs", "get_job_details", "list_all_jobs", "get_companies", "get_tech_stacks",
		})
	}
	return nil
}

func (t jobTools) searchJobs(ctx context.Context, req *sdkmcp.CallToolRequest, params *SearchJobsParams) (*sdkmcp.CallToolResult, any, error) {
	_ = req

	if params == nil {
		params = &SearchJobsParams{}
	}

	filters := domain.SearchFilters{
		Query:           params.Query,
		TitleContains:   params.TitleContains,
		Company:         params.Company,
		Location:        params.Location,
		Technology:      params.Technology,
		RemoteOnly:      params.RemoteOnly,
		VisaSponsorship: params.VisaSponsorship,
		ExperienceLevel: params.ExperienceLevel,
	}

	jobs, err := t.service.Search(ctx, filters)
	if err != nil {
		if t.logger != nil {
			t.logger.Error("search_jobs failed", "err", err)
		}
		return nil, nil, err
	}

	result := SearchJobsResult{TotalResults: len(jobs), Jobs: jobs}

	if t.logger != nil {
		t.logger.Debug("search_jobs completed", "total_results", result.TotalResults)
	}

	return textResult(fmt.Sprintf("Found %d matching job posting(s)", result.TotalResults)), result, nil
}

func (t jobTools) getJobDetails(ctx context.Context, req *sdkmcp.CallToolRequest, params *GetJobDetailsParams) (*sdkmcp.CallToolResult, any, error) {
	_ = req

	if params == nil || params.JobID == "" {
		return nil, nil, fmt.Errorf("job_id is required")
	}

	posting, err := t.service.Get(ctx, params.JobID)
	if err != nil {
		if t.logger != nil {
			t.logger.Error("get_job_details failed", "job_id", params.JobID, "err", err)
		}
		return nil, nil, err
	}

	return textResult(fmt.Sprintf("%s @ %s (%s)", posting.Title, posting.Company, posting.Location)), posting, nil
}

func (t jobTools) listAllJobs(ctx context.Context, req *sdkmcp.CallToolRequest, params *EmptyParams) (*sdkmcp.CallToolResult, any, error) {
	_ = req
	_ = params

	jobs, err := t.service.List(ctx)
	if err != nil {
		if t.logger != nil {
			t.logger.Error("list_all_jobs failed", "err", err)
		}
		return nil, nil, err
	}

	result := ListAllJobsResult{TotalJobs: len(jobs), Jobs: jobs}
	return textResult(fmt.Sprintf("%d job posting(s) available", result.TotalJobs)), result, nil
}

func (t jobTools) getCompanies(ctx context.Context, req *sdkmcp.CallToolRequest, params *EmptyParams) (*sdkmcp.CallToolResult, any, error) {
	_ = req
	_ = params

	companies, err := t.service.Companies(ctx)
	if err != nil {
		if t.logger != nil {
			t.logger.Error("get_companies failed", "err", err)
		}
		return nil, nil, err
	}

	result := CompaniesResult{TotalCompanies: len(companies), Companies: companies}
	return textResult(fmt.Sprintf("%d distinct company(ies)", result.TotalCompanies)), result, nil
}

func (t jobTools) getTechStacks(ctx context.Context, req *sdkmcp.CallToolRequest, params *EmptyParams) (*sdkmcp.CallToolResult, any, error) {
	_ = req
	_ = params

	technologies, err := t.service.TechStacks(ctx)
	if err != nil {
		if t.logger != nil {
			t.logger.Error("get_tech_stacks failed", "err", err)
		}
		return nil, nil, err
	}

	result := TechStacksResult{TotalTechnologies: len(technologies), Technologies: technologies}
	return textResult(fmt.Sprintf("%d distinct technology(ies)", result.TotalTechnologies)), result, nil
}
