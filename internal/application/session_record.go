package application

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/bnema/jobboard-cli/internal/domain"
)

const sessionStorageKey = "session"

var errMalformedSessionRecord = errors.New("malformed session record")

const sessionRecordSchema = `{
  "type": "object",
  "required": ["actorKind", "actor"],
  "properties": {
    "actorKind": {"enum": ["user", "company"]},
    "actor": {
      "type": "object",
      "required": ["id", "email"],
      "properties": {
        "id": {"type": "string", "minLength": 1},
        "email": {"type": "string"}
      },
      "not": {"required": ["password"]}
    }
  }
}`

var sessionRecordSchemaLoader = gojsonschema.NewStringLoader(sessionRecordSchema)

// sessionRecord is the persisted form of a logged-in session. It never carries a password.
type sessionRecord struct {
	ActorKind domain.ActorKind `json:"actorKind"`
	Actor     json.RawMessage  `json:"actor"`
}

func encodeSessionRecord(actor domain.Actor) (string, error) {
	if err := actor.Validate(); err != nil {
		return "", fmt.Errorf("encode session record: %w", err)
	}

	var (
		profile []byte
		err     error
	)
	switch actor.Kind() {
	case domain.ActorKindUser:
		profile, err = json.Marshal(actor.User)
	case domain.ActorKindCompany:
		profile, err = json.Marshal(actor.Company)
	}
	if err != nil {
		return "", fmt.Errorf("encode session actor: %w", err)
	}

	raw, err := json.Marshal(sessionRecord{ActorKind: actor.Kind(), Actor: profile})
	if err != nil {
		return "", fmt.Errorf("encode session record: %w", err)
	}

	return string(raw), nil
}

func decodeSessionRecord(raw string) (domain.Actor, error) {
	result, err := gojsonschema.Validate(sessionRecordSchemaLoader, gojsonschema.NewStringLoader(raw))
	if err != nil {
		return domain.Actor{}, fmt.Errorf("%w: %v", errMalformedSessionRecord, err)
	}
	if !result.Valid() {
		problems := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return domain.Actor{}, fmt.Errorf("%w: %s", errMalformedSessionRecord, strings.Join(problems, "; "))
	}

	var record sessionRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return domain.Actor{}, fmt.Errorf("%w: %v", errMalformedSessionRecord, err)
	}

	switch record.ActorKind {
	case domain.ActorKindUser:
		var user domain.User
		if err := json.Unmarshal(record.Actor, &user); err != nil {
			return domain.Actor{}, fmt.Errorf("%w: %v", errMalformedSessionRecord, err)
		}
		return domain.UserActor(user), nil
	case domain.ActorKindCompany:
		var company domain.Company
		if err := json.Unmarshal(record.Actor, &company); err != nil {
			return domain.Actor{}, fmt.Errorf("%w: %v", errMalformedSessionRecord, err)
		}
		return domain.CompanyActor(company), nil
	default:
		return domain.Actor{}, fmt.Errorf("%w: unknown actor kind %q", errMalformedSessionRecord, record.ActorKind)
	}
}
