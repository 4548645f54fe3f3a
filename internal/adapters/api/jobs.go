package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/bnema/jobboard-cli/internal/domain"
	"github.com/bnema/jobboard-cli/internal/ports"
)

const maxListPages = 20

var _ ports.JobService = Client{}

type pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

type jobListResponse struct {
	Jobs       []domain.JobPosting `json:"jobs"`
	Pagination pagination          `json:"pagination"`
}

type applyRequest struct {
	CoverLetter string `json:"coverLetter,omitempty"`
	Resume      string `json:"resume,omitempty"`
}

func filterQuery(criteria domain.FilterCriteria) url.Values {
	query := url.Values{}
	if strings.TrimSpace(criteria.Keyword) != "" {
		query.Set("keyword", criteria.Keyword)
	}
	if criteria.Location != "" {
		query.Set("location", criteria.Location)
	}
	if criteria.JobType != "" {
		query.Set("jobType", string(criteria.JobType))
	}
	if criteria.Industry != "" {
		query.Set("industry", criteria.Industry)
	}
	return query
}

func (c Client) ListJobs(ctx context.Context, criteria domain.FilterCriteria) ([]domain.JobPosting, error) {
	query := filterQuery(criteria)
	jobs := make([]domain.JobPosting, 0)

	for page := 1; page <= maxListPages; page++ {
		if page > 1 {
			query.Set("page", strconv.Itoa(page))
		}

		var payload jobListResponse
		if err := c.do(ctx, http.MethodGet, "/jobs", query, nil, &payload); err != nil {
			return nil, err
		}
		if payload.Jobs == nil {
			return nil, errors.New("job list response missing jobs")
		}
		jobs = append(jobs, payload.Jobs...)

		if payload.Pagination.Pages <= page || len(payload.Jobs) == 0 {
			break
		}
	}

	return jobs, nil
}

func (c Client) GetJob(ctx context.Context, id string) (domain.JobPosting, error) {
	var job domain.JobPosting
	if err := c.do(ctx, http.MethodGet, "/jobs/"+url.PathEscape(id), nil, nil, &job); err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return domain.JobPosting{}, fmt.Errorf("%w: %w", domain.ErrJobNotFound, err)
		}
		return domain.JobPosting{}, err
	}
	if job.ID == "" {
		return domain.JobPosting{}, errors.New("job response missing id")
	}

	return job, nil
}

func (c Client) GetCompany(ctx context.Context, id string) (domain.Company, error) {
	var company domain.Company
	if err := c.do(ctx, http.MethodGet, "/companies/"+url.PathEscape(id), nil, nil, &company); err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return domain.Company{}, fmt.Errorf("%w: %w", domain.ErrNotFound, err)
		}
		return domain.Company{}, err
	}

	return company, nil
}

func (c Client) Apply(ctx context.Context, request domain.ApplicationRequest) (domain.Application, error) {
	var application domain.Application
	path := "/jobs/" + url.PathEscape(request.JobID) + "/apply"
	body := applyRequest{CoverLetter: request.CoverLetter, Resume: request.Resume}
	if err := c.do(ctx, http.MethodPost, path, nil, body, &application); err != nil {
		return domain.Application{}, err
	}

	return application, nil
}
