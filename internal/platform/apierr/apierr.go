package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeUnauthorized         = "unauthorized"
	CodeNotFound             = "not_found"
	CodeValidation           = "validation_error"
	CodeStorage              = "storage_error"
	CodeSubscriptionRequired = "subscription_required"
	CodeUpstream             = "upstream_error"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func Unauthorized(err error) *Error {
	return New(http.StatusUnauthorized, CodeUnauthorized, err)
}

func NotFound(err error) *Error {
	return New(http.StatusNotFound, CodeNotFound, err)
}

func Validation(err error) *Error {
	return New(http.StatusBadRequest, CodeValidation, err)
}

func Storage(err error) *Error {
	return New(http.StatusInternalServerError, CodeStorage, err)
}

func SubscriptionRequired(err error) *Error {
	return New(http.StatusForbidden, CodeSubscriptionRequired, err)
}

func Upstream(err error) *Error {
	return New(http.StatusBadGateway, CodeUpstream, err)
}

// From returns err as an *Error, wrapping unknown errors as storage errors so
// handlers always have a status and code to respond with.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Storage(err)
}
