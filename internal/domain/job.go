package domain

import (
	"fmt"
	"strings"
	"time"
)

type JobType string

const (
	JobTypeFullTime   JobType = "FULL_TIME"
	JobTypePartTime   JobType = "PART_TIME"
	JobTypeContract   JobType = "CONTRACT"
	JobTypeTemporary  JobType = "TEMPORARY"
	JobTypeInternship JobType = "INTERNSHIP"
)

var JobTypes = []JobType{
	JobTypeFullTime,
	JobTypePartTime,
	JobTypeContract,
	JobTypeTemporary,
	JobTypeInternship,
}

func ParseJobType(raw string) (JobType, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if normalized == "" {
		return "", nil
	}
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)

	jobType := JobType(normalized)
	if !jobType.Valid() {
		return "", fmt.Errorf("%w: unknown job type %q", ErrInvalidInput, raw)
	}

	return jobType, nil
}

func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeTemporary, JobTypeInternship:
		return true
	default:
		return false
	}
}

func (t JobType) Label() string {
	switch t {
	case JobTypeFullTime:
		return "Full-time"
	case JobTypePartTime:
		return "Part-time"
	case JobTypeContract:
		return "Contract"
	case JobTypeTemporary:
		return "Temporary"
	case JobTypeInternship:
		return "Internship"
	default:
		return string(t)
	}
}

type Salary struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

type JobPosting struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Requirements []string  `json:"requirements"`
	Location     string    `json:"location"`
	Type         JobType   `json:"type"`
	Company      *Company  `json:"company,omitempty"`
	CompanyID    string    `json:"companyId,omitempty"`
	Salary       *Salary   `json:"salary,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (j JobPosting) HasCompany() bool {
	return j.Company != nil
}

func (j JobPosting) NeedsCompany() bool {
	return j.Company == nil && strings.TrimSpace(j.CompanyID) != ""
}
