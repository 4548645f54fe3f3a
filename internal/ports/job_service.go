package ports

import (
	"context"

	"github.com/bnema/jobboard-cli/internal/domain"
)

type JobService interface {
	ListJobs(ctx context.Context, criteria domain.FilterCriteria) ([]domain.JobPosting, error)
	GetJob(ctx context.Context, id string) (domain.JobPosting, error)
	GetCompany(ctx context.Context, id string) (domain.Company, error)
	Apply(ctx context.Context, request domain.ApplicationRequest) (domain.Application, error)
}

type CatalogSource interface {
	Jobs(ctx context.Context) ([]domain.JobPosting, error)
}
