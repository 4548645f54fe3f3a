package search

import "github.com/bnema/jobboard-cli/internal/domain"

func Paginate(jobs []domain.JobPosting, page domain.Page) ([]domain.JobPosting, int) {
	total := len(jobs)
	page = page.Normalize()
	if page.Size == 0 {
		return jobs, total
	}

	start := (page.Number - 1) * page.Size
	if start >= total {
		return []domain.JobPosting{}, total
	}
	end := start + page.Size
	if end > total {
		end = total
	}

	return jobs[start:end], total
}
