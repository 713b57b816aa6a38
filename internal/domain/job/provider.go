package job

import (
	"context"

	"github.com/ferndale/jobboard-mcp/internal/domain"
)

// Provider produces the full posting collection from an external source.
type Provider interface {
	// e.g. "mockapi"
	Name() string

	// Fetch returns the validated, ordered posting collection.
	Fetch(ctx context.Context) ([]domain.JobPosting, error)
}
