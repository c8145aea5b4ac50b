package domain

import "errors"

// ErrorKind tags every failure the services can produce. The HTTP layer
// maps kinds to status codes; unknown errors surface as a generic 500.
type ErrorKind int

const (
	KindInvalidUsername ErrorKind = iota + 1
	KindInvalidPassword
	KindUsernameTaken
	KindBadCredentials
	KindFaultyToken
	KindAuthenticationFailed
	KindInvalidCard
	KindNotFound
)

type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is makes errors.Is match any error carrying the same kind, so wrapped
// service errors still compare equal to the sentinels below.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

var (
	ErrInvalidUsername      = &Error{KindInvalidUsername, "invalid username"}
	ErrInvalidPassword      = &Error{KindInvalidPassword, "invalid password"}
	ErrUsernameTaken        = &Error{KindUsernameTaken, "username is already taken"}
	ErrBadCredentials       = &Error{KindBadCredentials, "bad credentials"}
	ErrFaultyToken          = &Error{KindFaultyToken, "faulty token"}
	ErrAuthenticationFailed = &Error{KindAuthenticationFailed, "authentication failed"}
	ErrInvalidCard          = &Error{KindInvalidCard, "invalid card data"}
	ErrNotFound             = &Error{KindNotFound, "data does not exist"}
)

// KindOf reports the kind carried by err, unwrapping as needed.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
