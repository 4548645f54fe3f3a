package domain

import (
	"fmt"
	"strings"
	"time"
)

type ActorKind string

const (
	ActorKindUser    ActorKind = "user"
	ActorKindCompany ActorKind = "company"
)

func ParseActorKind(raw string) (ActorKind, error) {
	kind := ActorKind(strings.ToLower(strings.TrimSpace(raw)))
	if !kind.Valid() {
		return "", fmt.Errorf("%w: unsupported actor kind %q", ErrInvalidInput, raw)
	}

	return kind, nil
}

func (k ActorKind) Valid() bool {
	switch k {
	case ActorKindUser, ActorKindCompany:
		return true
	default:
		return false
	}
}

type Experience struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty"`
}

type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty"`
}

type User struct {
	ID             string       `json:"id"`
	FirstName      string       `json:"firstName"`
	LastName       string       `json:"lastName"`
	Email          string       `json:"email"`
	Phone          string       `json:"phone,omitempty"`
	Address        string       `json:"address,omitempty"`
	City           string       `json:"city,omitempty"`
	Country        string       `json:"country,omitempty"`
	ProfilePicture string       `json:"profilePicture,omitempty"`
	Skills         []string     `json:"skills"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	Resume         string       `json:"resume,omitempty"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

func (u User) Name() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

type Company struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Industry    string    `json:"industry"`
	Description string    `json:"description"`
	Logo        string    `json:"logo,omitempty"`
	Website     string    `json:"website,omitempty"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city,omitempty"`
	Country     string    `json:"country,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Actor holds at most one of User or Company.
type Actor struct {
	User    *User
	Company *Company
}

func UserActor(user User) Actor {
	return Actor{User: &user}
}

func CompanyActor(company Company) Actor {
	return Actor{Company: &company}
}

func (a Actor) Kind() ActorKind {
	switch {
	case a.User != nil && a.Company == nil:
		return ActorKindUser
	case a.Company != nil && a.User == nil:
		return ActorKindCompany
	default:
		return ""
	}
}

func (a Actor) IsZero() bool {
	return a.User == nil && a.Company == nil
}

func (a Actor) Validate() error {
	if a.User != nil && a.Company != nil {
		return fmt.Errorf("actor has both user and company populated")
	}
	if a.IsZero() {
		return fmt.Errorf("actor is empty")
	}

	return nil
}

func (a Actor) ID() string {
	switch a.Kind() {
	case ActorKindUser:
		return a.User.ID
	case ActorKindCompany:
		return a.Company.ID
	default:
		return ""
	}
}

func (a Actor) DisplayName() string {
	switch a.Kind() {
	case ActorKindUser:
		return a.User.Name()
	case ActorKindCompany:
		return a.Company.Name
	default:
		return ""
	}
}

func (a Actor) Email() string {
	switch a.Kind() {
	case ActorKindUser:
		return a.User.Email
	case ActorKindCompany:
		return a.Company.Email
	default:
		return ""
	}
}
