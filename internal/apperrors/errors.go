package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrDuplicateAccountNumber is returned by stores when the generated account number is already taken.
// It always wraps ErrDuplicate.
var ErrDuplicateAccountNumber = fmt.Errorf("%w: account number", ErrDuplicate)

// ErrUpstream marks a failed call to a collaborating service (transport error, timeout, 5xx).
// Adapters wrap it so callers can tell "the call failed" apart from "the resource is absent".
var ErrUpstream = errors.New("upstream service unavailable")

// Kind classifies an AppError. It is the stable, machine-readable part of an error response.
type Kind string

const (
	KindInvalidRequest          Kind = "INVALID_REQUEST"
	KindCustomerUnresolvable    Kind = "CUSTOMER_UNRESOLVABLE"
	KindAccountTypeAlreadyExist Kind = "ACCOUNT_TYPE_ALREADY_EXISTS"
	KindAccountTypeNotAllowed   Kind = "ACCOUNT_TYPE_NOT_ALLOWED"
	KindAccountNotCreated       Kind = "ACCOUNT_NOT_CREATED"
	KindAccountNotFound         Kind = "ACCOUNT_NOT_FOUND"
	KindAccountAlreadyInactive  Kind = "ACCOUNT_ALREADY_INACTIVE"
	KindAccountNotUpdated       Kind = "ACCOUNT_NOT_UPDATED"
	KindUpstreamUnavailable     Kind = "UPSTREAM_UNAVAILABLE"
)

type kindInfo struct {
	code    string
	message string
	status  int
}

var kinds = map[Kind]kindInfo{
	KindInvalidRequest:          {"AC-001", "Invalid request", http.StatusBadRequest},
	KindCustomerUnresolvable:    {"AC-002", "Customer could not be resolved", http.StatusUnprocessableEntity},
	KindAccountTypeAlreadyExist: {"AC-003", "The customer already has an account of this type", http.StatusConflict},
	KindAccountTypeNotAllowed:   {"AC-004", "Account type not allowed for this customer", http.StatusUnprocessableEntity},
	KindAccountNotCreated:       {"AC-005", "Account could not be created", http.StatusInternalServerError},
	KindAccountNotFound:         {"AC-006", "Account not found", http.StatusNotFound},
	KindAccountAlreadyInactive:  {"AC-007", "Account is already inactive", http.StatusConflict},
	KindAccountNotUpdated:       {"AC-008", "Account could not be updated", http.StatusInternalServerError},
	KindUpstreamUnavailable:     {"AC-009", "A collaborating service is unavailable", http.StatusServiceUnavailable},
}

// AppError is a structured error surfaced to API callers as code + message.
type AppError struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

// New builds an AppError of the given kind. An empty message falls back to the kind's default message.
func New(kind Kind, message string, err error) *AppError {
	info := kinds[kind]
	if message == "" {
		message = info.message
	}
	return &AppError{Kind: kind, Code: info.code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an AppError of the same kind, so sentinels below work with errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// HTTPStatus returns the status code the REST layer uses for this error.
func (e *AppError) HTTPStatus() int {
	if info, ok := kinds[e.Kind]; ok {
		return info.status
	}
	return http.StatusInternalServerError
}

// Kind sentinels for errors.Is matching.
var (
	ErrInvalidRequest          = New(KindInvalidRequest, "", nil)
	ErrCustomerUnresolvable    = New(KindCustomerUnresolvable, "", nil)
	ErrAccountTypeAlreadyExist = New(KindAccountTypeAlreadyExist, "", nil)
	ErrAccountTypeNotAllowed   = New(KindAccountTypeNotAllowed, "", nil)
	ErrAccountNotCreated       = New(KindAccountNotCreated, "", nil)
	ErrAccountNotFound         = New(KindAccountNotFound, "", nil)
	ErrAccountAlreadyInactive  = New(KindAccountAlreadyInactive, "", nil)
	ErrAccountNotUpdated       = New(KindAccountNotUpdated, "", nil)
	ErrUpstreamUnavailable     = New(KindUpstreamUnavailable, "", nil)
)
