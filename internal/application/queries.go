package application

import (
	"time"

	"github.com/bnema/jobboard-cli/internal/domain"
	"github.com/bnema/jobboard-cli/internal/search"
)

type SearchResult struct {
	Jobs   []domain.JobPosting
	Total  int
	Page   domain.Page
	Source Source
}

type JobDetail struct {
	Job    domain.JobPosting
	Source Source
}

type FacetsResult struct {
	Facets search.Facets
	Source Source
}

type SessionStatus struct {
	Session        domain.Session
	HasToken       bool
	OfflineToken   bool
	TokenVerified  bool
	TokenExpiresAt time.Time
}
