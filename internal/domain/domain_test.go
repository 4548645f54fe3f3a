package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseActorKind(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    ActorKind
		wantErr bool
	}{
		{name: "user", raw: "user", want: ActorKindUser},
		{name: "company with padding and case", raw: "  Company ", want: ActorKindCompany},
		{name: "empty", raw: "", wantErr: true},
		{name: "unknown", raw: "admin", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseActorKind(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestActorKindIsExclusive(t *testing.T) {
	user := UserActor(User{ID: "u1", FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"})
	company := CompanyActor(Company{ID: "c1", Name: "Acme", Email: "jobs@acme.test"})

	assert.Equal(t, ActorKindUser, user.Kind())
	assert.Equal(t, "Ada Lovelace", user.DisplayName())
	assert.Equal(t, "u1", user.ID())
	require.NoError(t, user.Validate())

	assert.Equal(t, ActorKindCompany, company.Kind())
	assert.Equal(t, "Acme", company.DisplayName())
	assert.Equal(t, "jobs@acme.test", company.Email())
	require.NoError(t, company.Validate())

	both := Actor{User: user.User, Company: company.Company}
	assert.Equal(t, ActorKind(""), both.Kind())
	assert.ErrorContains(t, both.Validate(), "both user and company")

	assert.True(t, Actor{}.IsZero())
	assert.ErrorContains(t, Actor{}.Validate(), "actor is empty")
	assert.Empty(t, Actor{}.ID())
}

func TestSessionState(t *testing.T) {
	assert.Equal(t, SessionLoggedOut, EmptySession().State())
	assert.Equal(t, SessionLoggingIn, Session{Loading: true}.State())

	s := AuthenticatedSession(UserActor(User{ID: "u1"}))
	assert.Equal(t, SessionLoggedIn, s.State())
	assert.True(t, s.IsAuthenticated)

	failed := FailedSession("Invalid credentials")
	assert.Equal(t, SessionLoggedOut, failed.State())
	assert.False(t, failed.IsAuthenticated)
	assert.True(t, failed.Actor.IsZero())
	assert.Equal(t, "Invalid credentials", failed.Error)
}

func TestCredentialsValidate(t *testing.T) {
	tests := []struct {
		name    string
		creds   Credentials
		wantErr string
	}{
		{name: "valid", creds: NewCredentials(" a@b.com ", "secret", ActorKindUser)},
		{name: "missing email", creds: NewCredentials("  ", "secret", ActorKindUser), wantErr: "email is required"},
		{name: "missing password", creds: NewCredentials("a@b.com", "", ActorKindCompany), wantErr: "password is required"},
		{name: "bad kind", creds: NewCredentials("a@b.com", "secret", ActorKind("admin")), wantErr: "kind must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.creds.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestNewCredentialsKeepsPasswordVerbatim(t *testing.T) {
	creds := NewCredentials(" a@b.com", " Secret ", ActorKindUser)

	assert.Equal(t, "a@b.com", creds.Email)
	assert.Equal(t, " Secret ", creds.Password)
}

func TestUserRegistrationValidate(t *testing.T) {
	valid := UserRegistration{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           "ada@example.com",
		Password:        "engines",
		ConfirmPassword: "engines",
	}
	require.NoError(t, valid.Validate())

	mismatch := valid
	mismatch.ConfirmPassword = "Engines"
	err := mismatch.Validate()
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorContains(t, err, "confirmPassword must match password")

	blank := valid
	blank.FirstName = "   "
	assert.ErrorContains(t, blank.Validate(), "firstName is required")

	actor := valid.Actor("u-42")
	require.Equal(t, ActorKindUser, actor.Kind())
	assert.Equal(t, "u-42", actor.ID())
	assert.Equal(t, "ada@example.com", actor.Email())
	assert.NotNil(t, actor.User.Skills)

	creds := valid.Credentials()
	assert.Equal(t, ActorKindUser, creds.Kind)
	assert.Equal(t, "engines", creds.Password)
}

func TestCompanyRegistrationValidate(t *testing.T) {
	valid := CompanyRegistration{
		CompanyName:     "Acme",
		Industry:        "Manufacturing",
		Email:           "jobs@acme.test",
		Password:        "anvils",
		ConfirmPassword: "anvils",
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(r *CompanyRegistration)
		wantErr string
	}{
		{name: "short password", mutate: func(r *CompanyRegistration) { r.Password, r.ConfirmPassword = "abc", "abc" }, wantErr: "password must be at least 6 characters"},
		{name: "bad email", mutate: func(r *CompanyRegistration) { r.Email = "not-an-email" }, wantErr: "email must be a valid email address"},
		{name: "missing industry", mutate: func(r *CompanyRegistration) { r.Industry = "" }, wantErr: "industry is required"},
		{name: "confirm mismatch", mutate: func(r *CompanyRegistration) { r.ConfirmPassword = "anvil" }, wantErr: "confirmPassword must match password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := valid
			tt.mutate(&reg)
			err := reg.Validate()
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}

	actor := valid.Actor("c-1")
	require.Equal(t, ActorKindCompany, actor.Kind())
	assert.Equal(t, "Manufacturing", actor.Company.Industry)
}

func TestParseJobType(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    JobType
		wantErr bool
	}{
		{name: "wire value", raw: "FULL_TIME", want: JobTypeFullTime},
		{name: "lower with dash", raw: "part-time", want: JobTypePartTime},
		{name: "spaced", raw: " temporary ", want: JobTypeTemporary},
		{name: "empty matches all", raw: "", want: ""},
		{name: "unknown", raw: "gig", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseJobType(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJobTypeLabel(t *testing.T) {
	assert.Equal(t, "Full-time", JobTypeFullTime.Label())
	assert.Equal(t, "Internship", JobTypeInternship.Label())
	assert.Equal(t, "FREELANCE", JobType("FREELANCE").Label())
	assert.Len(t, JobTypes, 5)
}

func TestJobPostingCompanyHelpers(t *testing.T) {
	detached := JobPosting{ID: "j1", CompanyID: "c1"}
	assert.False(t, detached.HasCompany())
	assert.True(t, detached.NeedsCompany())

	attached := JobPosting{ID: "j2", CompanyID: "c1", Company: &Company{ID: "c1"}}
	assert.True(t, attached.HasCompany())
	assert.False(t, attached.NeedsCompany())

	assert.False(t, JobPosting{ID: "j3"}.NeedsCompany())
}

func TestFilterCriteriaAndPage(t *testing.T) {
	assert.True(t, FilterCriteria{}.IsEmpty())
	assert.False(t, FilterCriteria{JobType: JobTypeContract}.IsEmpty())

	assert.Equal(t, Page{Number: 1, Size: 0}, Page{Number: -3, Size: -1}.Normalize())
	assert.Equal(t, Page{Number: 2, Size: 10}, Page{Number: 2, Size: 10}.Normalize())
}

func TestApplicationRequestValidate(t *testing.T) {
	require.NoError(t, ApplicationRequest{JobID: "j1", CoverLetter: "hello"}.Validate())

	err := ApplicationRequest{JobID: "  "}.Validate()
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorContains(t, err, "jobID is required")
}
