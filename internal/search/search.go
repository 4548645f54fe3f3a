package search

import (
	"strings"

	"github.com/bnema/jobboard-cli/internal/domain"
)

func Search(catalog []domain.JobPosting, criteria domain.FilterCriteria) []domain.JobPosting {
	matches := make([]domain.JobPosting, 0, len(catalog))
	for _, job := range catalog {
		if Matches(job, criteria) {
			matches = append(matches, job)
		}
	}
	return matches
}

func Matches(job domain.JobPosting, criteria domain.FilterCriteria) bool {
	if strings.TrimSpace(criteria.Keyword) != "" && !matchesKeyword(job, criteria.Keyword) {
		return false
	}
	if criteria.Location != "" && !containsFold(job.Location, criteria.Location) {
		return false
	}
	if criteria.JobType != "" && job.Type != criteria.JobType {
		return false
	}
	if criteria.Industry != "" {
		if !job.HasCompany() || !strings.EqualFold(job.Company.Industry, criteria.Industry) {
			return false
		}
	}
	return true
}

func matchesKeyword(job domain.JobPosting, keyword string) bool {
	if containsFold(job.Title, keyword) || containsFold(job.Description, keyword) {
		return true
	}
	for _, requirement := range job.Requirements {
		if containsFold(requirement, keyword) {
			return true
		}
	}
	// Company-less postings skip this check rather than fail it.
	return job.HasCompany() && containsFold(job.Company.Name, keyword)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
