package fixtures

import (
	"bytes"
	"context"
	"crypto/subtle"
	_ "embed"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/bnema/jobboard-cli/internal/domain"
	"github.com/bnema/jobboard-cli/internal/ports"
)

//go:embed demo.yaml
var demoData []byte

type document struct {
	Users     []userFixture    `yaml:"users"`
	Companies []companyFixture `yaml:"companies"`
	Jobs      []jobFixture     `yaml:"jobs"`
}

type userFixture struct {
	ID        string   `yaml:"id"`
	FirstName string   `yaml:"first_name"`
	LastName  string   `yaml:"last_name"`
	Email     string   `yaml:"email"`
	Password  string   `yaml:"password"`
	Phone     string   `yaml:"phone"`
	City      string   `yaml:"city"`
	Country   string   `yaml:"country"`
	Skills    []string `yaml:"skills"`
	Resume    string   `yaml:"resume"`
}

type companyFixture struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Industry    string `yaml:"industry"`
	Description string `yaml:"description"`
	Email       string `yaml:"email"`
	Password    string `yaml:"password"`
	Website     string `yaml:"website"`
	City        string `yaml:"city"`
	Country     string `yaml:"country"`
}

type jobFixture struct {
	ID           string         `yaml:"id"`
	Title        string         `yaml:"title"`
	Description  string         `yaml:"description"`
	Requirements []string       `yaml:"requirements"`
	Location     string         `yaml:"location"`
	Type         string         `yaml:"type"`
	CompanyID    string         `yaml:"company_id"`
	Salary       *domain.Salary `yaml:"salary"`
	CreatedAt    time.Time      `yaml:"created_at"`
}

type entry struct {
	actor    domain.Actor
	password string
}

type Directory struct {
	mu      sync.RWMutex
	entries []entry
	jobs    []domain.JobPosting
	newID   func() string
}

var (
	_ ports.Directory     = (*Directory)(nil)
	_ ports.CatalogSource = (*Directory)(nil)
)

func Default() (*Directory, error) {
	return Load(demoData)
}

func Load(data []byte) (*Directory, error) {
	var doc document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}

	dir := &Directory{newID: uuid.NewString}

	companies := make(map[string]domain.Company, len(doc.Companies))
	for _, fixture := range doc.Companies {
		company := domain.Company{
			ID:          fixture.ID,
			Name:        fixture.Name,
			Industry:    fixture.Industry,
			Description: fixture.Description,
			Email:       fixture.Email,
			Website:     fixture.Website,
			City:        fixture.City,
			Country:     fixture.Country,
		}
		dir.add(domain.CompanyActor(company), fixture.Password)
		companies[company.ID] = company
	}

	for _, fixture := range doc.Users {
		user := domain.User{
			ID:         fixture.ID,
			FirstName:  fixture.FirstName,
			LastName:   fixture.LastName,
			Email:      fixture.Email,
			Phone:      fixture.Phone,
			City:       fixture.City,
			Country:    fixture.Country,
			Skills:     nonNil(fixture.Skills),
			Experience: []domain.Experience{},
			Education:  []domain.Education{},
			Resume:     fixture.Resume,
		}
		dir.add(domain.UserActor(user), fixture.Password)
	}

	for _, fixture := range doc.Jobs {
		jobType, err := domain.ParseJobType(fixture.Type)
		if err != nil {
			return nil, fmt.Errorf("load job %s: %w", fixture.ID, err)
		}
		job := domain.JobPosting{
			ID:           fixture.ID,
			Title:        fixture.Title,
			Description:  fixture.Description,
			Requirements: nonNil(fixture.Requirements),
			Location:     fixture.Location,
			Type:         jobType,
			CompanyID:    fixture.CompanyID,
			Salary:       fixture.Salary,
			CreatedAt:    fixture.CreatedAt,
			UpdatedAt:    fixture.CreatedAt,
		}
		if fixture.CompanyID != "" {
			company, ok := companies[fixture.CompanyID]
			if !ok {
				return nil, fmt.Errorf("load job %s: unknown company %q", fixture.ID, fixture.CompanyID)
			}
			job.Company = &company
		}
		dir.jobs = append(dir.jobs, job)
	}

	return dir, nil
}

func (d *Directory) add(actor domain.Actor, password string) {
	d.entries = append(d.entries, entry{actor: actor, password: password})
}

func (d *Directory) Authenticate(ctx context.Context, creds domain.Credentials) (domain.Actor, error) {
	if err := ctx.Err(); err != nil {
		return domain.Actor{}, err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, candidate := range d.entries {
		if candidate.actor.Kind() != creds.Kind || candidate.actor.Email() != creds.Email {
			continue
		}
		if subtle.ConstantTimeCompare([]byte(candidate.password), []byte(creds.Password)) == 1 {
			return candidate.actor, nil
		}
	}

	return domain.Actor{}, domain.ErrInvalidCredentials
}

func (d *Directory) Register(ctx context.Context, registration domain.Registration) (domain.Actor, error) {
	if err := ctx.Err(); err != nil {
		return domain.Actor{}, err
	}
	if registration == nil {
		return domain.Actor{}, fmt.Errorf("register: %w: registration is required", domain.ErrInvalidInput)
	}
	creds := registration.Credentials()

	d.mu.Lock()
	defer d.mu.Unlock()

	for _, existing := range d.entries {
		if existing.actor.Kind() == creds.Kind && existing.actor.Email() == creds.Email {
			return domain.Actor{}, fmt.Errorf("register %s %s: %w: email already registered", creds.Kind, creds.Email, domain.ErrInvalidInput)
		}
	}

	actor := registration.Actor(d.newID())
	d.add(actor, creds.Password)

	return actor, nil
}

func (d *Directory) Jobs(ctx context.Context) ([]domain.JobPosting, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	return slices.Clone(d.jobs), nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
