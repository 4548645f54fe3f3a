package search

import (
	"strings"

	"github.com/bnema/jobboard-cli/internal/domain"
)

type Facets struct {
	Locations  []string
	Industries []string
	JobTypes   []domain.JobType
}

func CollectFacets(catalog []domain.JobPosting) Facets {
	facets := Facets{
		Locations:  []string{},
		Industries: []string{},
		JobTypes:   []domain.JobType{},
	}
	seenLocations := map[string]struct{}{}
	seenIndustries := map[string]struct{}{}
	seenTypes := map[domain.JobType]struct{}{}

	for _, job := range catalog {
		city := strings.TrimSpace(strings.SplitN(job.Location, ",", 2)[0])
		if city != "" {
			if _, ok := seenLocations[city]; !ok {
				seenLocations[city] = struct{}{}
				facets.Locations = append(facets.Locations, city)
			}
		}

		if job.HasCompany() {
			industry := strings.TrimSpace(job.Company.Industry)
			if industry != "" {
				if _, ok := seenIndustries[industry]; !ok {
					seenIndustries[industry] = struct{}{}
					facets.Industries = append(facets.Industries, industry)
				}
			}
		}

		if job.Type.Valid() {
			if _, ok := seenTypes[job.Type]; !ok {
				seenTypes[job.Type] = struct{}{}
				facets.JobTypes = append(facets.JobTypes, job.Type)
			}
		}
	}

	return facets
}
