package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bnema/jobboard-cli/internal/domain"
	"github.com/bnema/jobboard-cli/internal/ports"
)

var _ ports.AuthService = Client{}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userRegistrationRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type companyRegistrationRequest struct {
	Name            string `json:"name"`
	Industry        string `json:"industry"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type authResponse struct {
	User    *domain.User    `json:"user"`
	Company *domain.Company `json:"company"`
	Token   string          `json:"token"`
}

func (c Client) Login(ctx context.Context, creds domain.Credentials) (ports.AuthResult, error) {
	if !creds.Kind.Valid() {
		return ports.AuthResult{}, fmt.Errorf("login: %w: unsupported actor kind %q", domain.ErrInvalidInput, creds.Kind)
	}

	var payload authResponse
	path := "/auth/login/" + string(creds.Kind)
	if err := c.do(ctx, http.MethodPost, path, nil, loginRequest{Email: creds.Email, Password: creds.Password}, &payload); err != nil {
		return ports.AuthResult{}, err
	}

	return payload.result(creds.Kind)
}

func (c Client) Register(ctx context.Context, registration domain.Registration) (ports.AuthResult, error) {
	var body any
	switch r := registration.(type) {
	case domain.UserRegistration:
		body = userRegistrationRequest{
			FirstName:       r.FirstName,
			LastName:        r.LastName,
			Email:           r.Email,
			Password:        r.Password,
			ConfirmPassword: r.ConfirmPassword,
		}
	case domain.CompanyRegistration:
		body = companyRegistrationRequest{
			Name:            r.CompanyName,
			Industry:        r.Industry,
			Email:           r.Email,
			Password:        r.Password,
			ConfirmPassword: r.ConfirmPassword,
		}
	default:
		return ports.AuthResult{}, fmt.Errorf("register: %w: unsupported registration %T", domain.ErrInvalidInput, registration)
	}

	var payload authResponse
	path := "/auth/register/" + string(registration.Kind())
	if err := c.do(ctx, http.MethodPost, path, nil, body, &payload); err != nil {
		return ports.AuthResult{}, err
	}

	return payload.result(registration.Kind())
}

// result maps the response to the requested kind. A response without that
// actor is a rejection, not a failure.
func (r authResponse) result(kind domain.ActorKind) (ports.AuthResult, error) {
	var actor domain.Actor
	switch kind {
	case domain.ActorKindUser:
		if r.User == nil {
			return ports.AuthResult{}, nil
		}
		actor = domain.UserActor(*r.User)
	case domain.ActorKindCompany:
		if r.Company == nil {
			return ports.AuthResult{}, nil
		}
		actor = domain.CompanyActor(*r.Company)
	}

	if r.Token == "" {
		return ports.AuthResult{}, errors.New("auth response missing token")
	}

	return ports.AuthResult{Actor: actor, Token: r.Token}, nil
}
