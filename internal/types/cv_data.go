// Package types provides type definitions for structured data used throughout the cv-curator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CVData represents a complete, structured curriculum-vitae document.
// It is the input shape the curation engine consumes; producing it from a
// raw document is the responsibility of an upstream parser.
type CVData struct {
	PersonalInfo   PersonalInfo    `json:"personal_info"`
	Experience     []Experience    `json:"experience,omitempty"`
	Education      []Education     `json:"education,omitempty"`
	Skills         []string        `json:"skills,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
	Projects       []Project       `json:"projects,omitempty"`
}

// PersonalInfo represents the candidate's identifying information and summary
type PersonalInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Summary string `json:"summary,omitempty"`
}

// Experience represents a single employment entry
type Experience struct {
	Position         string   `json:"position"`
	Employer         string   `json:"employer"`
	StartDate        string   `json:"start_date,omitempty"`
	EndDate          string   `json:"end_date,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	Achievements     []string `json:"achievements,omitempty"`
}

// Education represents a single education entry
type Education struct {
	Degree         string `json:"degree"`
	Field          string `json:"field"`
	Institution    string `json:"institution"`
	StartDate      string `json:"start_date,omitempty"`
	GraduationDate string `json:"graduation_date,omitempty"`
}

// Certification represents a professional certification
type Certification struct {
	Name           string `json:"name"`
	DateObtained   string `json:"date_obtained,omitempty"`
	ExpirationDate string `json:"expiration_date,omitempty"`
}

// Project represents a personal or professional project entry
type Project struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
}
