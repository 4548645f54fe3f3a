package board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/jobboard-cli/internal/application"
	"github.com/bnema/jobboard-cli/internal/domain"
	"github.com/bnema/jobboard-cli/internal/search"
)

var renderNow = time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

func sampleJob() domain.JobPosting {
	return domain.JobPosting{
		ID:           "j-1",
		Title:        "Nurse",
		Description:  "Day shift nurse for the cardiology ward.",
		Requirements: []string{"State nursing diploma"},
		Location:     "Paris, France",
		Type:         domain.JobTypeFullTime,
		Company:      &domain.Company{ID: "c-1", Name: "Hopital Saint-Louis", Industry: "Healthcare"},
		Salary:       &domain.Salary{Min: 32000, Max: 38000, Currency: "EUR"},
		CreatedAt:    renderNow.Add(-3 * 24 * time.Hour),
	}
}

func TestRenderSearchResults(t *testing.T) {
	output, err := RenderSearch(application.SearchResult{
		Jobs:   []domain.JobPosting{sampleJob(), {ID: "j-2", Title: "Driver", Location: "Lyon", Type: domain.JobTypeTemporary}},
		Total:  5,
		Page:   domain.Page{Number: 1, Size: 2},
		Source: application.SourceRemote,
	}, RenderOptions{Now: renderNow})

	require.NoError(t, err)
	assert.Contains(t, output, "Job Offers")
	assert.Contains(t, output, "results: 5 (page 1 of 3)")
	assert.Contains(t, output, "Nurse")
	assert.Contains(t, output, "Hopital Saint-Louis · Paris, France")
	assert.Contains(t, output, "Full-time")
	assert.Contains(t, output, "32,000 - 38,000 EUR")
	assert.Contains(t, output, "posted 3 days ago")
	assert.Contains(t, output, "Driver")
	assert.Contains(t, output, "Temporary")
	assert.NotContains(t, output, "offline")
}

func TestRenderSearchFallbackAndEmpty(t *testing.T) {
	output, err := RenderSearch(application.SearchResult{
		Jobs:   []domain.JobPosting{},
		Source: application.SourceFallback,
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "results: 0")
	assert.Contains(t, output, "offline: showing the local demo catalog")
	assert.Contains(t, output, "No job offers match your search.")
}

func TestRenderJobDetail(t *testing.T) {
	output, err := RenderJob(application.JobDetail{Job: sampleJob(), Source: application.SourceRemote}, RenderOptions{Now: renderNow})

	require.NoError(t, err)
	assert.Contains(t, output, "location: Paris, France")
	assert.Contains(t, output, "type: Full-time")
	assert.Contains(t, output, "salary: 32,000 - 38,000 EUR")
	assert.Contains(t, output, "- State nursing diploma")
	assert.Contains(t, output, "About Hopital Saint-Louis")
	assert.Contains(t, output, "industry: Healthcare")
}

func TestRenderFacets(t *testing.T) {
	output, err := RenderFacets(application.FacetsResult{
		Facets: search.Facets{
			Locations:  []string{"Paris", "Lyon"},
			Industries: []string{},
			JobTypes:   []domain.JobType{domain.JobTypeContract},
		},
		Source: application.SourceFallback,
	})

	require.NoError(t, err)
	assert.Contains(t, output, "Locations")
	assert.Contains(t, output, "- Paris")
	assert.Contains(t, output, "- Lyon")
	assert.Contains(t, output, "none")
	assert.Contains(t, output, "Contract (CONTRACT)")
	assert.Contains(t, output, "offline")
}

func TestRenderSession(t *testing.T) {
	tests := []struct {
		name     string
		status   application.SessionStatus
		contains []string
		excludes []string
	}{
		{
			name: "logged in with offline token",
			status: application.SessionStatus{
				Session:        domain.AuthenticatedSession(domain.UserActor(domain.User{ID: "u-1", FirstName: "Alice", LastName: "Martin", Email: "a@b.com"})),
				HasToken:       true,
				OfflineToken:   true,
				TokenExpiresAt: renderNow.Add(5 * time.Hour),
			},
			contains: []string{"logged in", "kind: user", "name: Alice Martin", "email: a@b.com", "token: offline, expires in 5 hours (16:00)"},
		},
		{
			name:     "logged out",
			status:   application.SessionStatus{Session: domain.EmptySession()},
			contains: []string{"logged out"},
			excludes: []string{"kind:", "token:"},
		},
		{
			name: "failed login",
			status: application.SessionStatus{
				Session: domain.FailedSession("Invalid credentials"),
			},
			contains: []string{"logged out", "Invalid credentials"},
		},
		{
			name: "expired api token",
			status: application.SessionStatus{
				Session:        domain.AuthenticatedSession(domain.CompanyActor(domain.Company{ID: "c-1", Name: "Acme", Email: "jobs@acme.test"})),
				HasToken:       true,
				TokenExpiresAt: renderNow.Add(-time.Minute),
			},
			contains: []string{"kind: company", "name: Acme", "token: api, expired"},
		},
		{
			name: "verified offline token",
			status: application.SessionStatus{
				Session:        domain.AuthenticatedSession(domain.UserActor(domain.User{ID: "u-1", FirstName: "Alice", LastName: "Martin", Email: "a@b.com"})),
				HasToken:       true,
				OfflineToken:   true,
				TokenVerified:  true,
				TokenExpiresAt: renderNow.Add(5 * time.Hour),
			},
			contains: []string{"token: offline (verified), expires in 5 hours (16:00)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := RenderSession(tt.status, RenderOptions{Now: renderNow})
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, output, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, output, unwanted)
			}
		})
	}
}

func TestRenderApplication(t *testing.T) {
	output, err := RenderApplication(domain.Application{ID: "a-1", JobID: "j-1", Status: domain.ApplicationPending})

	require.NoError(t, err)
	assert.Contains(t, output, "Application submitted")
	assert.Contains(t, output, "status: PENDING")
	assert.Contains(t, output, "reference: a-1")
}

func TestFormatSalary(t *testing.T) {
	tests := []struct {
		name   string
		salary *domain.Salary
		want   string
	}{
		{name: "nil", salary: nil, want: ""},
		{name: "range", salary: &domain.Salary{Min: 1500, Max: 2500, Currency: "EUR"}, want: "1,500 - 2,500 EUR"},
		{name: "max only", salary: &domain.Salary{Max: 1200000, Currency: "USD"}, want: "up to 1,200,000 USD"},
		{name: "min only", salary: &domain.Salary{Min: 400}, want: "from 400"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatSalary(tt.salary))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short text", truncate("  short\n text ", 20))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
