package domain

type SessionState string

const (
	SessionLoggedOut SessionState = "logged_out"
	SessionLoggingIn SessionState = "logging_in"
	SessionLoggedIn  SessionState = "logged_in"
)

type Session struct {
	IsAuthenticated bool
	Actor           Actor
	Loading         bool
	Error           string
}

func EmptySession() Session {
	return Session{}
}

func AuthenticatedSession(actor Actor) Session {
	return Session{IsAuthenticated: true, Actor: actor}
}

func FailedSession(message string) Session {
	return Session{Error: message}
}

func (s Session) State() SessionState {
	switch {
	case s.Loading:
		return SessionLoggingIn
	case s.IsAuthenticated:
		return SessionLoggedIn
	default:
		return SessionLoggedOut
	}
}
