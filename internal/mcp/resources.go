package mcp

import (
	"net/http"

	"github.com/ferndale/jobboard-mcp/internal/config"
	"github.com/ferndale/jobboard-mcp/internal/domain/job"
	"github.com/ferndale/jobboard-mcp/internal/domain/job/providers/mockapi"
	"github.com/ferndale/jobboard-mcp/pkg/jobsource"
)

// Resources holds everything the tool handlers depend on.
type Resources struct {
	JobService job.Service
}

// provideSourceConfig extracts the jobsource client config from main config
func provideSourceConfig(cfg config.Config) jobsource.Config {
	return jobsource.Config{
		URL:        cfg.Source.URL,
		HTTPClient: &http.Client{Timeout: cfg.Source.Timeout},
	}
}

// provideMockAPIProvider creates the mock API provider from the client
func provideMockAPIProvider(client *jobsource.Client) (*mockapi.Provider, error) {
	return mockapi.NewProvider(client)
}
