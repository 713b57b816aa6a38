package domain

import "strings"

// ExperienceLevel is the enumerated seniority of a posting.
type ExperienceLevel string

const (
	ExperienceEntry     ExperienceLevel = "Entry"
	ExperienceMid       ExperienceLevel = "Mid"
	ExperienceMidSenior ExperienceLevel = "Mid-Senior"
	ExperienceSenior    ExperienceLevel = "Senior"
)

// KnownExperienceLevels lists every level the upstream document uses.
var KnownExperienceLevels = []ExperienceLevel{
	ExperienceEntry,
	ExperienceMid,
	ExperienceMidSenior,
	ExperienceSenior,
}

// ParseExperienceLevel matches a caller-supplied level case-insensitively.
func ParseExperienceLevel(s string) (ExperienceLevel, bool) {
	for _, level := range KnownExperienceLevels {
		if strings.EqualFold(string(level), s) {
			return level, true
		}
	}
	return "", false
}

// SalaryRange is the advertised compensation band.
type SalaryRange struct {
	Min      int    `json:"min,omitempty"`
	Max      int    `json:"max,omitempty"`
	Currency string `json:"currency,omitempty"`
}

// JobPosting is one externally sourced job record, immutable after load.
type JobPosting struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Company         string          `json:"company"`
	Location        string          `json:"location"`
	Remote          bool            `json:"remote"`
	VisaSponsorship bool            `json:"visa_sponsorship"`
	ExperienceLevel ExperienceLevel `json:"experience_level,omitempty"`
	Salary          SalaryRange     `json:"salary,omitempty"`
	TechStack       []string        `json:"tech_stack,omitempty"`
	Description     string          `json:"description,omitempty"`
}

// HasTechnology reports case-insensitive membership in the tech stack.
func (p JobPosting) HasTechnology(name string) bool {
	for _, tech := range p.TechStack {
		if strings.EqualFold(tech, name) {
			return true
		}
	}
	return false
}

// SearchFilters narrows a job search; zero values impose no constraint.
// Predicates combine with logical AND.
type SearchFilters struct {
	// Query matches anywhere in title, company, location, or tech stack.
	Query string
	// TitleContains is a case-insensitive substring match on the title.
	TitleContains string
	// Company is a case-insensitive exact match.
	Company string
	// Location is a case-insensitive substring match.
	Location string
	// Technology is a case-insensitive membership test on the tech stack.
	Technology string
	// RemoteOnly restricts to remote postings when true.
	RemoteOnly bool
	// VisaSponsorship restricts to sponsoring postings when true.
	VisaSponsorship bool
	// ExperienceLevel is a case-insensitive exact match against the known levels.
	ExperienceLevel string
}
