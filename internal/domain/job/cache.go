package job

import (
	"context"
	"sync"

	"github.com/ferndale/jobboard-mcp/internal/domain"
)

// cache memoizes the posting collection for the life of the process. The
// mutex is held across the fetch so concurrent first callers serialize on a
// single upstream request and all observe the same snapshot. A failed load
// leaves prior state untouched.
type cache struct {
	mu       sync.Mutex
	loaded   bool
	postings []domain.JobPosting
}

// ensure returns the cached snapshot, loading it through fetch on first use.
func (c *cache) ensure(ctx context.Context, fetch func(context.Context) ([]domain.JobPosting, error)) ([]domain.JobPosting, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return c.postings, nil
	}

	postings, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	c.postings = postings
	c.loaded = true
	return c.postings, nil
}

// invalidate discards the snapshot so the next operation refetches.
func (c *cache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.loaded = false
	c.postings = nil
}
