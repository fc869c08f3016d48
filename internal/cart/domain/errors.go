package domain

import (
	"context"
	"errors"
	"fmt"
)

// ErrorKind buckets every failure an operation can resolve with, so callers
// can branch without string-matching messages.
type ErrorKind string

const (
	KindNone       ErrorKind = ""
	KindValidation ErrorKind = "validation"
	KindNetwork    ErrorKind = "network"
	KindServer     ErrorKind = "server"
	KindAuth       ErrorKind = "auth"
	KindNotFound   ErrorKind = "not_found"
	KindCancelled  ErrorKind = "cancelled"
)

// ValidationError reasons.
const (
	ReasonBelowMinimum  = "below-minimum"
	ReasonExceedsStock  = "exceeds-stock"
	ReasonAlreadyInCart = "already-in-cart"
)

// ValidationError is a local, pre-network failure. It never causes a network call.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Reason
}

// ServerError carries a structured message from a non-2xx response verbatim.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("cart service error (%d): %s", e.StatusCode, e.Message)
}

var (
	ErrNetwork   = errors.New("cart service unreachable")
	ErrAuth      = errors.New("authentication required")
	ErrNotFound  = errors.New("item not found")
	ErrCancelled = errors.New("operation cancelled")
)

// Classify maps an operation error onto its ErrorKind.
func Classify(err error) ErrorKind {
	var ve *ValidationError
	var se *ServerError

	switch {
	case err == nil:
		return KindNone
	case errors.As(err, &ve):
		return KindValidation
	case errors.As(err, &se):
		return KindServer
	case errors.Is(err, ErrAuth):
		return KindAuth
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrCancelled), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCancelled
	default:
		return KindNetwork
	}
}
