package domain

import "strings"

type Credentials struct {
	Email    string    `validate:"required"`
	Password string    `validate:"required"`
	Kind     ActorKind `validate:"required,oneof=user company"`
}

func NewCredentials(email, password string, kind ActorKind) Credentials {
	return Credentials{
		Email:    strings.TrimSpace(email),
		Password: password,
		Kind:     kind,
	}
}

func (c Credentials) Validate() error {
	return validateStruct(c)
}

type Registration interface {
	Kind() ActorKind
	Credentials() Credentials
	Validate() error
	// Actor builds the profile a simulated registration starts with.
	Actor(id string) Actor
}

type UserRegistration struct {
	FirstName       string `validate:"required"`
	LastName        string `validate:"required"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

var _ Registration = UserRegistration{}

func (r UserRegistration) Kind() ActorKind {
	return ActorKindUser
}

func (r UserRegistration) Credentials() Credentials {
	return NewCredentials(r.Email, r.Password, ActorKindUser)
}

func (r UserRegistration) Validate() error {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)
	return validateStruct(r)
}

func (r UserRegistration) Actor(id string) Actor {
	return UserActor(User{
		ID:         id,
		FirstName:  strings.TrimSpace(r.FirstName),
		LastName:   strings.TrimSpace(r.LastName),
		Email:      strings.TrimSpace(r.Email),
		Skills:     []string{},
		Experience: []Experience{},
		Education:  []Education{},
	})
}

type CompanyRegistration struct {
	CompanyName     string `validate:"required"`
	Industry        string `validate:"required"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

var _ Registration = CompanyRegistration{}

func (r CompanyRegistration) Kind() ActorKind {
	return ActorKindCompany
}

func (r CompanyRegistration) Credentials() Credentials {
	return NewCredentials(r.Email, r.Password, ActorKindCompany)
}

func (r CompanyRegistration) Validate() error {
	r.CompanyName = strings.TrimSpace(r.CompanyName)
	r.Industry = strings.TrimSpace(r.Industry)
	r.Email = strings.TrimSpace(r.Email)
	return validateStruct(r)
}

func (r CompanyRegistration) Actor(id string) Actor {
	return CompanyActor(Company{
		ID:       id,
		Name:     strings.TrimSpace(r.CompanyName),
		Industry: strings.TrimSpace(r.Industry),
		Email:    strings.TrimSpace(r.Email),
	})
}
