package search

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/jobboard-cli/internal/domain"
)

func TestPaginate(t *testing.T) {
	jobs := make([]domain.JobPosting, 0, 5)
	for i := 1; i <= 5; i++ {
		jobs = append(jobs, domain.JobPosting{ID: strconv.Itoa(i)})
	}

	ids := func(in []domain.JobPosting) []string {
		out := []string{}
		for _, job := range in {
			out = append(out, job.ID)
		}
		return out
	}

	tests := []struct {
		name string
		page domain.Page
		want []string
	}{
		{name: "first page", page: domain.Page{Number: 1, Size: 2}, want: []string{"1", "2"}},
		{name: "last partial page", page: domain.Page{Number: 3, Size: 2}, want: []string{"5"}},
		{name: "past the end", page: domain.Page{Number: 4, Size: 2}, want: []string{}},
		{name: "zero size returns all", page: domain.Page{Number: 3}, want: []string{"1", "2", "3", "4", "5"}},
		{name: "page below one is first", page: domain.Page{Number: 0, Size: 3}, want: []string{"1", "2", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total := Paginate(jobs, tt.page)
			assert.Equal(t, 5, total)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}
