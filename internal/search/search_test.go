package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/jobboard-cli/internal/domain"
)

func scenarioCatalog() []domain.JobPosting {
	return []domain.JobPosting{
		{
			ID:       "1",
			Title:    "Nurse",
			Location: "Paris",
			Type:     domain.JobTypeFullTime,
			Company:  &domain.Company{ID: "c1", Name: "Hopital Central", Industry: "Health"},
		},
		{
			ID:       "2",
			Title:    "Driver",
			Location: "Lyon",
			Type:     domain.JobTypeTemporary,
		},
	}
}

func titles(jobs []domain.JobPosting) []string {
	out := make([]string, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, job.Title)
	}
	return out
}

func TestSearchScenario(t *testing.T) {
	catalog := scenarioCatalog()

	tests := []struct {
		name     string
		criteria domain.FilterCriteria
		want     []string
	}{
		{name: "location substring", criteria: domain.FilterCriteria{Location: "par"}, want: []string{"Nurse"}},
		{name: "job type equality", criteria: domain.FilterCriteria{JobType: domain.JobTypeTemporary}, want: []string{"Driver"}},
		{name: "industry", criteria: domain.FilterCriteria{Industry: "Health"}, want: []string{"Nurse"}},
		{name: "industry ignores case", criteria: domain.FilterCriteria{Industry: "hEALTH"}, want: []string{"Nurse"}},
		{name: "industry is not a substring match", criteria: domain.FilterCriteria{Industry: "Heal"}, want: []string{}},
		{name: "conjunction", criteria: domain.FilterCriteria{Location: "lyon", JobType: domain.JobTypeFullTime}, want: []string{}},
		{name: "keyword on company name", criteria: domain.FilterCriteria{Keyword: "central"}, want: []string{"Nurse"}},
		{name: "blank keyword matches everything", criteria: domain.FilterCriteria{Keyword: "   "}, want: []string{"Nurse", "Driver"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, titles(Search(catalog, tt.criteria)))
		})
	}
}

func TestSearchEmptyCriteriaReturnsCatalogInOrder(t *testing.T) {
	catalog := scenarioCatalog()
	catalog = append(catalog, domain.JobPosting{ID: "3", Title: "Analyst"})

	got := Search(catalog, domain.FilterCriteria{})

	require.Equal(t, catalog, got)
}

func TestSearchKeywordIsCaseInsensitive(t *testing.T) {
	catalog := []domain.JobPosting{
		{ID: "1", Title: "Backend Engineer"},
		{ID: "2", Title: "Designer", Description: "Works with the BACKEND team"},
		{ID: "3", Title: "Ops", Requirements: []string{"Linux", "Backend tooling"}},
		{ID: "4", Title: "Chef"},
	}

	got := Search(catalog, domain.FilterCriteria{Keyword: "backend"})

	assert.Equal(t, []string{"Backend Engineer", "Designer", "Ops"}, titles(got))
}

func TestSearchKeywordDoesNotSpanFields(t *testing.T) {
	catalog := []domain.JobPosting{{ID: "1", Title: "Data", Description: "Engineer"}}

	assert.Empty(t, Search(catalog, domain.FilterCriteria{Keyword: "data engineer"}))
}

func TestSearchIndustryExcludesCompanylessPostings(t *testing.T) {
	catalog := []domain.JobPosting{
		{ID: "1", Title: "Orphan", Location: "Paris", Type: domain.JobTypeFullTime},
	}

	assert.Len(t, Search(catalog, domain.FilterCriteria{Location: "Paris"}), 1)
	assert.Empty(t, Search(catalog, domain.FilterCriteria{Location: "Paris", Industry: "Health"}))
}

func TestSearchDoesNotMutateCatalog(t *testing.T) {
	catalog := scenarioCatalog()
	before := append([]domain.JobPosting(nil), catalog...)

	_ = Search(catalog, domain.FilterCriteria{Keyword: "nurse"})

	assert.Equal(t, before, catalog)
}

func TestSearchNilCatalog(t *testing.T) {
	got := Search(nil, domain.FilterCriteria{Keyword: "x"})

	require.NotNil(t, got)
	assert.Empty(t, got)
}
