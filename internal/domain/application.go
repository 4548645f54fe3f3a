package domain

import (
	"fmt"
	"strings"
	"time"
)

type ApplicationStatus string

const (
	ApplicationPending   ApplicationStatus = "PENDING"
	ApplicationReviewing ApplicationStatus = "REVIEWING"
	ApplicationInterview ApplicationStatus = "INTERVIEW"
	ApplicationRejected  ApplicationStatus = "REJECTED"
	ApplicationAccepted  ApplicationStatus = "ACCEPTED"
)

type Application struct {
	ID          string            `json:"id"`
	JobID       string            `json:"jobId"`
	UserID      string            `json:"userId"`
	Status      ApplicationStatus `json:"status"`
	CoverLetter string            `json:"coverLetter,omitempty"`
	Resume      string            `json:"resume,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

type ApplicationRequest struct {
	JobID       string `validate:"required"`
	CoverLetter string `validate:"max=5000"`
	Resume      string
}

func (r ApplicationRequest) Validate() error {
	r.JobID = strings.TrimSpace(r.JobID)
	if err := validateStruct(r); err != nil {
		return fmt.Errorf("application: %w", err)
	}
	return nil
}
