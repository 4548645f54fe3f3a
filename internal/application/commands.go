package application

import (
	"context"

	"github.com/bnema/jobboard-cli/internal/domain"
	"github.com/bnema/jobboard-cli/internal/ports"
)

type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

func (s Source) Valid() bool {
	switch s {
	case SourceRemote, SourceFallback:
		return true
	default:
		return false
	}
}

type (
	remoteStage   func(ctx context.Context) (ports.AuthResult, error)
	fallbackStage func(ctx context.Context) (domain.Actor, error)
)

type Resolution struct {
	Actor     domain.Actor
	Token     string
	Source    Source
	RemoteErr error
}

type LoginResult struct {
	Session domain.Session
	Source  Source
}

type SearchQuery struct {
	Criteria domain.FilterCriteria
	Page     domain.Page
}

type ApplyCommand struct {
	JobID       string
	CoverLetter string
	Resume      string
}
