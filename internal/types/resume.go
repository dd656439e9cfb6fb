// Package types provides type definitions for structured data used throughout the ATS scorer.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// ResumeRecord is the candidate's structured resume data. The scoring engine
// only reads it; callers own the record and any persistence of it.
type ResumeRecord struct {
	Name         string       `json:"name"`
	Email        string       `json:"email,omitempty" validate:"omitempty,email"`
	Phone        string       `json:"phone,omitempty"`
	Location     string       `json:"location,omitempty"`
	LinkedIn     string       `json:"linkedin,omitempty"`
	Website      string       `json:"website,omitempty" validate:"omitempty,url"`
	Summary      string       `json:"summary,omitempty"`
	Experience   []Experience `json:"experience" validate:"dive"`
	Education    []Education  `json:"education" validate:"dive"`
	Skills       []string     `json:"skills"`
	Projects     []Project    `json:"projects"`
	Achievements []string     `json:"achievements"`
}

// Experience is a single work history entry. Dates use the "YYYY-MM" format;
// when Current is true the end date is treated as now regardless of its
// stored value.
type Experience struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location,omitempty"`
	StartDate   string   `json:"start_date,omitempty"`
	EndDate     string   `json:"end_date,omitempty"`
	Current     bool     `json:"current,omitempty"`
	Description []string `json:"description"`
}

// Education is a single education entry.
type Education struct {
	Degree      string  `json:"degree,omitempty"`
	Field       string  `json:"field,omitempty"`
	Institution string  `json:"institution,omitempty"`
	Location    string  `json:"location,omitempty"`
	StartDate   string  `json:"start_date,omitempty"`
	EndDate     string  `json:"end_date,omitempty"`
	GPA         float64 `json:"gpa,omitempty" validate:"omitempty,min=0,max=5"`
}

// Project is a single project entry.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url,omitempty"`
}

// Normalize fills defaults for every optional collection so downstream code
// never nil-checks. Called once at the boundary, before validation.
func (r *ResumeRecord) Normalize() {
	if r.Experience == nil {
		r.Experience = []Experience{}
	}
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.Skills == nil {
		r.Skills = []string{}
	}
	if r.Projects == nil {
		r.Projects = []Project{}
	}
	if r.Achievements == nil {
		r.Achievements = []string{}
	}
	for i := range r.Experience {
		if r.Experience[i].Description == nil {
			r.Experience[i].Description = []string{}
		}
	}
	for i := range r.Projects {
		if r.Projects[i].Technologies == nil {
			r.Projects[i].Technologies = []string{}
		}
	}
}

// Validate checks the record against its type-level constraints. This is the
// only fatal condition in the scoring pipeline; missing optional fields are
// tolerated and degrade sub-scores instead.
func (r *ResumeRecord) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
