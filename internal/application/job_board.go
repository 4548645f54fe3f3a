package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/jobboard-cli/internal/domain"
	"github.com/bnema/jobboard-cli/internal/ports"
	"github.com/bnema/jobboard-cli/internal/search"
)

const defaultEnrichConcurrency = 4

type JobBoard struct {
	jobs     ports.JobService
	catalog  ports.CatalogSource
	sessions *SessionManager
	logger   *log.Logger

	enrichConcurrency int
}

func NewJobBoard(jobs ports.JobService, catalog ports.CatalogSource, sessions *SessionManager, logger *log.Logger) *JobBoard {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &JobBoard{
		jobs:              jobs,
		catalog:           catalog,
		sessions:          sessions,
		logger:            logger,
		enrichConcurrency: defaultEnrichConcurrency,
	}
}

func (b *JobBoard) Search(ctx context.Context, query SearchQuery) (SearchResult, error) {
	catalog, source, err := b.loadCatalog(ctx, query.Criteria)
	if err != nil {
		return SearchResult{}, err
	}

	matches := search.Search(catalog, query.Criteria)
	page, total := search.Paginate(matches, query.Page)

	return SearchResult{
		Jobs:   page,
		Total:  total,
		Page:   query.Page.Normalize(),
		Source: source,
	}, nil
}

func (b *JobBoard) Facets(ctx context.Context) (FacetsResult, error) {
	catalog, source, err := b.loadCatalog(ctx, domain.FilterCriteria{})
	if err != nil {
		return FacetsResult{}, err
	}

	return FacetsResult{Facets: search.CollectFacets(catalog), Source: source}, nil
}

func (b *JobBoard) loadCatalog(ctx context.Context, criteria domain.FilterCriteria) ([]domain.JobPosting, Source, error) {
	jobs, remoteErr := b.jobs.ListJobs(ctx, criteria)
	if remoteErr == nil {
		b.enrichCompanies(ctx, jobs)
		return jobs, SourceRemote, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, "", fmt.Errorf("list jobs: %w", ctxErr)
	}

	b.logger.Warn("job service unavailable, using local catalog", "err", remoteErr)

	jobs, err := b.catalog.Jobs(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("load local catalog: %w", errors.Join(domain.ErrServiceUnavailable, remoteErr, err))
	}

	return jobs, SourceFallback, nil
}

func (b *JobBoard) GetJob(ctx context.Context, id string) (JobDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return JobDetail{}, fmt.Errorf("get job: %w: job id is required", domain.ErrInvalidInput)
	}

	job, remoteErr := b.jobs.GetJob(ctx, id)
	if remoteErr == nil {
		if job.NeedsCompany() {
			company, err := b.jobs.GetCompany(ctx, job.CompanyID)
			if err != nil {
				b.logger.Warn("could not load company for job", "job_id", id, "company_id", job.CompanyID, "err", err)
			} else {
				job.Company = &company
			}
		}
		return JobDetail{Job: job, Source: SourceRemote}, nil
	}
	if errors.Is(remoteErr, domain.ErrJobNotFound) {
		return JobDetail{}, fmt.Errorf("get job %s: %w", id, remoteErr)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return JobDetail{}, fmt.Errorf("get job: %w", ctxErr)
	}

	b.logger.Warn("job service unavailable, using local catalog", "job_id", id, "err", remoteErr)

	catalog, err := b.catalog.Jobs(ctx)
	if err != nil {
		return JobDetail{}, fmt.Errorf("load local catalog: %w", errors.Join(domain.ErrServiceUnavailable, remoteErr, err))
	}
	for _, candidate := range catalog {
		if candidate.ID == id {
			return JobDetail{Job: candidate, Source: SourceFallback}, nil
		}
	}

	return JobDetail{}, fmt.Errorf("get job %s: %w", id, domain.ErrJobNotFound)
}

func (b *JobBoard) Apply(ctx context.Context, cmd ApplyCommand) (domain.Application, error) {
	session := b.sessions.Current()
	if !session.IsAuthenticated {
		return domain.Application{}, fmt.Errorf("apply: %w", domain.ErrNotAuthenticated)
	}
	if session.Actor.Kind() != domain.ActorKindUser {
		return domain.Application{}, fmt.Errorf("apply: only candidates can apply: %w", domain.ErrWrongActorKind)
	}

	request := domain.ApplicationRequest{
		JobID:       strings.TrimSpace(cmd.JobID),
		CoverLetter: cmd.CoverLetter,
		Resume:      cmd.Resume,
	}
	if request.Resume == "" {
		request.Resume = session.Actor.User.Resume
	}
	if err := request.Validate(); err != nil {
		return domain.Application{}, err
	}

	application, err := b.jobs.Apply(ctx, request)
	if err != nil {
		return domain.Application{}, fmt.Errorf("apply to job %s: %w", request.JobID, err)
	}

	return application, nil
}

func (b *JobBoard) enrichCompanies(ctx context.Context, jobs []domain.JobPosting) {
	ids := make([]string, 0)
	seen := make(map[string]struct{})
	for _, job := range jobs {
		if !job.NeedsCompany() {
			continue
		}
		if _, ok := seen[job.CompanyID]; ok {
			continue
		}
		seen[job.CompanyID] = struct{}{}
		ids = append(ids, job.CompanyID)
	}
	if len(ids) == 0 {
		return
	}

	var (
		mu        sync.Mutex
		companies = make(map[string]domain.Company, len(ids))
		group     errgroup.Group
	)
	group.SetLimit(b.enrichConcurrency)
	for _, id := range ids {
		group.Go(func() error {
			company, err := b.jobs.GetCompany(ctx, id)
			if err != nil {
				b.logger.Warn("could not load company", "company_id", id, "err", err)
				return nil
			}
			mu.Lock()
			companies[id] = company
			mu.Unlock()
			return nil
		})
	}
	_ = group.Wait()

	for i := range jobs {
		if !jobs[i].NeedsCompany() {
			continue
		}
		if company, ok := companies[jobs[i].CompanyID]; ok {
			jobs[i].Company = &company
		}
	}
}
