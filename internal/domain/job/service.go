package job

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ferndale/jobboard-mcp/internal/apperrors"
	"github.com/ferndale/jobboard-mcp/internal/domain"
	"github.com/ferndale/jobboard-mcp/pkg/logging"
)

// Service exposes the read-only query operations over the loaded collection.
// Every operation loads the collection on first use and fails with the
// loader's error when that load fails.
type Service interface {
	Search(ctx context.Context, filters domain.SearchFilters) ([]domain.JobPosting, error)
	Get(ctx context.Context, id string) (domain.JobPosting, error)
	List(ctx context.Context) ([]domain.JobPosting, error)
	Companies(ctx context.Context) ([]string, error)
	TechStacks(ctx context.Context) ([]string, error)

	// Invalidate discards the cached collection; the next operation refetches.
	Invalidate()
}

// Option configures Service
type Option func(*config)

type config struct {
	provider Provider
	logger   *logging.Logger
}

// WithProvider sets the posting source
func WithProvider(provider Provider) Option {
	return func(c *config) {
		c.provider = provider
	}
}

// WithLogger sets an optional logger
func WithLogger(logger *logging.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// NewService builds Service from options
func NewService(opts ...Option) (Service, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.provider == nil {
		return nil, fmt.Errorf("job.Service: provider is required")
	}

	return &service{
		provider: cfg.provider,
		logger:   cfg.logger,
	}, nil
}

// NewServiceWithDeps creates a Service with direct dependencies (Wire-compatible)
func NewServiceWithDeps(provider Provider, logger *logging.Logger) (Service, error) {
	return NewService(WithProvider(provider), WithLogger(logger))
}

type service struct {
	provider Provider
	logger   *logging.Logger
	cache    cache
}

func (s *service) load(ctx context.Context) ([]domain.JobPosting, error) {
	return s.cache.ensure(ctx, func(ctx context.Context) ([]domain.JobPosting, error) {
		postings, err := s.provider.Fetch(ctx)
		if err != nil {
			if s.logger != nil {
				s.logger.Error("job collection load failed", "provider", s.provider.Name(), "err", err)
			}
			return nil, err
		}

		if s.logger != nil {
			s.logger.Info("job collection loaded", "provider", s.provider.Name(), "count", len(postings))
		}
		return postings, nil
	})
}

// Search returns the ordered subsequence matching every provided filter.
func (s *service) Search(ctx context.Context, filters domain.SearchFilters) ([]domain.JobPosting, error) {
	if filters.ExperienceLevel != "" {
		if _, ok := domain.ParseExperienceLevel(filters.ExperienceLevel); !ok {
			return nil, apperrors.InvalidFilter(
				fmt.Sprintf("unrecognized experience level %q", filters.ExperienceLevel), nil)
		}
	}

	postings, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]domain.JobPosting, 0, len(postings))
	for _, posting := range postings {
		if matches(posting, filters) {
			matched = append(matched, posting)
		}
	}

	return matched, nil
}

// Get looks a posting up by exact identifier.
func (s *service) Get(ctx context.Context, id string) (domain.JobPosting, error) {
	postings, err := s.load(ctx)
	if err != nil {
		return domain.JobPosting{}, err
	}

	for _, posting := range postings {
		if posting.ID == id {
			return posting, nil
		}
	}

	return domain.JobPosting{}, apperrors.NotFound(fmt.Sprintf("no posting with id %q", id), nil)
}

// List returns the full collection in source order.
func (s *service) List(ctx context.Context) ([]domain.JobPosting, error) {
	return s.load(ctx)
}

// Companies returns the distinct company names, sorted alphabetically.
func (s *service) Companies(ctx context.Context) ([]string, error) {
	postings, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	return distinctSorted(postings, func(p domain.JobPosting) []string {
		return []string{p.Company}
	}), nil
}

// TechStacks returns the distinct technology names, sorted alphabetically.
func (s *service) TechStacks(ctx context.Context) ([]string, error) {
	postings, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	return distinctSorted(postings, func(p domain.JobPosting) []string {
		return p.TechStack
	}), nil
}

func (s *service) Invalidate() {
	s.cache.invalidate()
	if s.logger != nil {
		s.logger.Info("job collection cache invalidated")
	}
}

func matches(p domain.JobPosting, f domain.SearchFilters) bool {
	if f.Query != "" {
		haystack := strings.ToLower(strings.Join([]string{
			p.Title, p.Company, p.Location, strings.Join(p.TechStack, " "),
		}, " "))
		if !strings.Contains(haystack, strings.ToLower(f.Query)) {
			return false
		}
	}

	if f.TitleContains != "" && !containsFold(p.Title, f.TitleContains) {
		return false
	}

	if f.Company != "" && !strings.EqualFold(p.Company, f.Company) {
		return false
	}

	if f.Location != "" && !containsFold(p.Location, f.Location) {
		return false
	}

	if f.Technology != "" && !p.HasTechnology(f.Technology) {
		return false
	}

	if f.RemoteOnly && !p.Remote {
		return false
	}

	if f.VisaSponsorship && !p.VisaSponsorship {
		return false
	}

	if f.ExperienceLevel != "" && !strings.EqualFold(string(p.ExperienceLevel), f.ExperienceLevel) {
		return false
	}

	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// distinctSorted collects values across postings, de-duplicated
// case-insensitively keeping first-seen casing, sorted for determinism.
func distinctSorted(postings []domain.JobPosting, values func(domain.JobPosting) []string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)

	for _, posting := range postings {
		for _, value := range values(posting) {
			if value == "" {
				continue
			}
			key := strings.ToLower(value)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, value)
		}
	}

	sort.Strings(out)
	return out
}
