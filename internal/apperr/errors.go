package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindDuplicate
	KindNotFound
	KindInvalidCredentials
	KindAccountLocked
	KindInactiveAccount
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindDuplicate:
		return "duplicate"
	case KindNotFound:
		return "not_found"
	case KindInvalidCredentials:
		return "invalid_credentials"
	case KindAccountLocked:
		return "account_locked"
	case KindInactiveAccount:
		return "inactive_account"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Error is the error type returned by services and the identity store.
// Handlers translate it into a status code and a JSON body.
type Error struct {
	Kind    Kind
	Message string
	// Fields carries per-field messages for validation errors
	Fields map[string]string
	// Reference marks a NotFound raised for an entity referenced by the
	// request payload rather than the entity addressed by the URL.
	Reference bool
	Err       error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Message != "" {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match on kind against the sentinels below
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Message == "" && t.Err == nil && t.Kind == e.Kind
}

// Sentinels for errors.Is checks
var (
	ErrValidation         = &Error{Kind: KindValidation}
	ErrDuplicate          = &Error{Kind: KindDuplicate}
	ErrNotFound           = &Error{Kind: KindNotFound}
	ErrInvalidCredentials = &Error{Kind: KindInvalidCredentials}
	ErrAccountLocked      = &Error{Kind: KindAccountLocked}
	ErrInactiveAccount    = &Error{Kind: KindInactiveAccount}
	ErrConflict           = &Error{Kind: KindConflict}
	ErrInternal           = &Error{Kind: KindInternal}
)

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// ValidationFields builds a validation error carrying a field -> message map
func ValidationFields(msg string, fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: msg, Fields: fields}
}

func Duplicate(msg string) *Error {
	return &Error{Kind: KindDuplicate, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// MissingReference reports a referenced entity (foreign key) that does not exist
func MissingReference(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg, Reference: true}
}

func InvalidCredentials(msg string) *Error {
	return &Error{Kind: KindInvalidCredentials, Message: msg}
}

func AccountLocked(msg string) *Error {
	return &Error{Kind: KindAccountLocked, Message: msg}
}

func InactiveAccount(msg string) *Error {
	return &Error{Kind: KindInactiveAccount, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// Internal wraps an unexpected failure. The message is never shown to clients.
func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// As extracts the *Error from err, if any
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HTTPStatus maps an error to the status code returned to the caller
func HTTPStatus(err error) int {
	appErr, ok := As(err)
	if !ok {
		return http.StatusInternalServerError
	}

	switch appErr.Kind {
	case KindValidation, KindDuplicate:
		return http.StatusBadRequest
	case KindNotFound:
		if appErr.Reference {
			return http.StatusBadRequest
		}
		return http.StatusNotFound
	case KindInvalidCredentials, KindAccountLocked, KindInactiveAccount:
		return http.StatusUnauthorized
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
