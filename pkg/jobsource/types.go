package jobsource

import "net/http"

// Config defines the job document client settings
type Config struct {
	URL        string
	HTTPClient *http.Client
}

// Client fetches the job-posting document from the remote source
type Client struct {
	url        string
	httpClient *http.Client
}

// Salary is the raw compensation band as published by the source
type Salary struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// Posting is one raw job record as published by the source
type Posting struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Location        string   `json:"location"`
	Remote          bool     `json:"remote"`
	VisaSponsorship bool     `json:"visa_sponsorship"`
	ExperienceLevel string   `json:"experience_level"`
	SalaryRange     *Salary  `json:"salary_range"`
	TechStack       []string `json:"tech_stack"`
	Description     string   `json:"description"`
}

// document is the top-level response envelope; the source publishes either
// {"jobs": [...]} or a bare array.
type document struct {
	Jobs []Posting `json:"jobs"`
}
