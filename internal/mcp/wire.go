//go:build wireinject
// +build wireinject

package mcp

import (
	"github.com/google/wire"

	"github.com/ferndale/jobboard-mcp/internal/config"
	"github.com/ferndale/jobboard-mcp/internal/domain/job"
	"github.com/ferndale/jobboard-mcp/internal/domain/job/providers/mockapi"
	"github.com/ferndale/jobboard-mcp/pkg/jobsource"
	"github.com/ferndale/jobboard-mcp/pkg/logging"
)

// InitializeResources creates Resources with all resources wired up
func InitializeResources(cfg config.Config, logger *logging.Logger) (Resources, error) {
	wire.Build(
		// Infrastructure - remote job document
		provideSourceConfig,
		jobsource.NewClient,

		// Provider
		provideMockAPIProvider,
		wire.Bind(new(job.Provider), new(*mockapi.Provider)),

		// Service
		job.NewServiceWithDeps,

		wire.Struct(new(Resources), "JobService"),
	)

	return Resources{}, nil
}
