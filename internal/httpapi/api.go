// Package httpapi exposes the query layer as a plain REST surface alongside
// the MCP endpoint, for callers that do not speak the tool protocol.
package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ferndale/jobboard-mcp/internal/apperrors"
	"github.com/ferndale/jobboard-mcp/internal/domain"
	"github.com/ferndale/jobboard-mcp/internal/domain/job"
	"github.com/ferndale/jobboard-mcp/pkg/logging"
)

type api struct {
	service job.Service
	logger  *logging.Logger
}

// Handler builds the REST routes over the job service.
func Handler(service job.Service, logger *logging.Logger) http.Handler {
	a := &api{service: service, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", a.root)
	mux.HandleFunc("GET /health", a.health)
	mux.HandleFunc("GET /jobs", a.listJobs)
	mux.HandleFunc("GET /jobs/search", a.searchJobs)
	mux.HandleFunc("GET /jobs/{id}", a.getJob)
	mux.HandleFunc("GET /companies", a.getCompanies)
	mux.HandleFunc("GET /technologies", a.getTechnologies)

	return mux
}

func (a *api) root(w http.ResponseWriter, _ *http.Request) {
	a.writeJSON(w, http.StatusOK, map[string]string{
		"message": "Job Posting MCP Server API",
		"status":  "running",
	})
}

func (a *api) health(w http.ResponseWriter, _ *http.Request) {
	a.writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (a *api) listJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := a.service.List(r.Context())
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, map[string]any{
		"total_jobs": len(jobs),
		"jobs":       jobs,
	})
}

func (a *api) searchJobs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filters := domain.SearchFilters{
		Query:           q.Get("query"),
		TitleContains:   q.Get("title_contains"),
		Company:         q.Get("company"),
		Location:        q.Get("location"),
		Technology:      q.Get("technology"),
		ExperienceLevel: q.Get("experience_level"),
	}

	var err error
	if filters.RemoteOnly, err = boolParam(q.Get("remote_only")); err != nil {
		a.writeError(w, apperrors.InvalidFilter("remote_only must be a boolean", err))
		return
	}
	if filters.VisaSponsorship, err = boolParam(q.Get("visa_sponsorship")); err != nil {
		a.writeError(w, apperrors.InvalidFilter("visa_sponsorship must be a boolean", err))
		return
	}

	jobs, err := a.service.Search(r.Context(), filters)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, map[string]any{
		"total_results": len(jobs),
		"jobs":          jobs,
	})
}

func (a *api) getJob(w http.ResponseWriter, r *http.Request) {
	posting, err := a.service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, posting)
}

func (a *api) getCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := a.service.Companies(r.Context())
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, map[string]any{
		"total_companies": len(companies),
		"companies":       companies,
	})
}

func (a *api) getTechnologies(w http.ResponseWriter, r *http.Request) {
	technologies, err := a.service.TechStacks(r.Context())
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, map[string]any{
		"total_technologies": len(technologies),
		"technologies":       technologies,
	})
}

func boolParam(raw string) (bool, error) {
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}

func (a *api) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && a.logger != nil {
		a.logger.Warn("failed to write response", "err", err)
	}
}

func (a *api) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch apperrors.KindOf(err) {
	case apperrors.KindNotFound:
		status = http.StatusNotFound
	case apperrors.KindInvalidFilter:
		status = http.StatusBadRequest
	case apperrors.KindFetchFailed, apperrors.KindParseFailed:
		status = http.StatusBadGateway
	}

	if a.logger != nil && status >= http.StatusInternalServerError {
		a.logger.Error("request failed", "status", status, "err", err)
	}

	a.writeJSON(w, status, map[string]string{"error": err.Error()})
}
