package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrObjectAlreadyExists = errors.New("object already exists")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsOutOfRange   = errors.New("value is out of range")
	ErrValueIsRequired     = errors.New("value is required")
	ErrProviderUnavailable = errors.New("provider is unavailable")
	ErrProviderRejected    = errors.New("provider rejected the request")
	ErrMalformedResponse   = errors.New("provider response is malformed")
)

// Kind is a stable tag describing how an error should be treated by callers.
type Kind string

const (
	KindValidation          Kind = "validation"
	KindProviderUnavailable Kind = "provider_unavailable"
	KindProviderRejected    Kind = "provider_rejected"
	KindMalformedResponse   Kind = "malformed_response"
	KindNotFound            Kind = "not_found"
	KindConflict            Kind = "conflict"
	KindInternal            Kind = "internal"
)

// KindOf classifies err by the sentinel it wraps. Errors that wrap none of the
// package sentinels are internal.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsOutOfRange):
		return KindValidation
	case errors.Is(err, ErrProviderUnavailable):
		return KindProviderUnavailable
	case errors.Is(err, ErrProviderRejected):
		return KindProviderRejected
	case errors.Is(err, ErrMalformedResponse):
		return KindMalformedResponse
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrObjectAlreadyExists):
		return KindConflict
	default:
		return KindInternal
	}
}

// ObjectNotFoundError is returned when a lookup scoped by id (and owner) misses.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ObjectAlreadyExistsError is returned when a write collides with another row's natural key.
type ObjectAlreadyExistsError struct {
	ParamName string
	Cause     error
}

func NewObjectAlreadyExistsError(paramName string) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName}
}

func NewObjectAlreadyExistsErrorWithCause(paramName string, cause error) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, Cause: cause}
}

func (e *ObjectAlreadyExistsError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrObjectAlreadyExists, e.ParamName), e.Cause)
}

func (e *ObjectAlreadyExistsError) Unwrap() error {
	return ErrObjectAlreadyExists
}

type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value any, minValue any, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value any, minValue any, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsOutOfRange, sanitize(e.Value), e.ParamName, e.Min, e.Max)
	return withCause(msg, e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ProviderUnavailableError reports a transport failure, timeout or non-2xx
// answer from an external provider. Callers may retry.
type ProviderUnavailableError struct {
	Provider string
	Cause    error
}

func NewProviderUnavailableError(provider string, cause error) *ProviderUnavailableError {
	return &ProviderUnavailableError{Provider: provider, Cause: cause}
}

func (e *ProviderUnavailableError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrProviderUnavailable, e.Provider), e.Cause)
}

func (e *ProviderUnavailableError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrProviderUnavailable}
	}
	return []error{ErrProviderUnavailable, e.Cause}
}

// ProviderRejectedError reports a semantic non-success status from a reachable provider.
type ProviderRejectedError struct {
	Provider string
	Status   string
	Message  string
}

func NewProviderRejectedError(provider string, status string, message string) *ProviderRejectedError {
	return &ProviderRejectedError{Provider: provider, Status: status, Message: message}
}

func (e *ProviderRejectedError) Error() string {
	msg := fmt.Sprintf("%s: %s returned %s", ErrProviderRejected, e.Provider, e.Status)
	if e.Message != "" {
		msg += ": " + sanitize(e.Message)
	}
	return msg
}

func (e *ProviderRejectedError) Unwrap() error {
	return ErrProviderRejected
}

// MalformedResponseError reports a provider payload that lacks the fields we depend on.
type MalformedResponseError struct {
	Provider string
	Reason   string
	Cause    error
}

func NewMalformedResponseError(provider string, reason string) *MalformedResponseError {
	return &MalformedResponseError{Provider: provider, Reason: reason}
}

func NewMalformedResponseErrorWithCause(provider string, reason string, cause error) *MalformedResponseError {
	return &MalformedResponseError{Provider: provider, Reason: reason, Cause: cause}
}

func (e *MalformedResponseError) Error() string {
	return withCause(fmt.Sprintf("%s: %s: %s", ErrMalformedResponse, e.Provider, e.Reason), e.Cause)
}

func (e *MalformedResponseError) Unwrap() error {
	return ErrMalformedResponse
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %v)", msg, cause)
}

// sanitize keeps user supplied values on a single line.
func sanitize(v any) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(fmt.Sprint(v))
}
