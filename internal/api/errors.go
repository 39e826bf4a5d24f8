package api

import (
	"errors"
	"fmt"
)

// Kind classifies a remote call failure. Every kind maps to one fixed
// user-facing message; the underlying transport detail is kept only for logs.
type Kind int

const (
	KindUnknown Kind = iota
	KindNetwork
	KindValidation     // 400
	KindAuthentication // 401
	KindAuthorization  // 403
	KindNotFound       // 404
	KindServer         // 5xx
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	case KindNotFound:
		return "not_found"
	case KindServer:
		return "server"
	default:
		return "unknown"
	}
}

// Error is a classified remote API failure.
type Error struct {
	Kind       Kind
	StatusCode int // zero for transport-level failures
	cause      error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("api: %s (status %d): %v", e.Kind, e.StatusCode, e.cause)
	}
	return fmt.Sprintf("api: %s: %v", e.Kind, e.cause)
}

func (e *Error) Unwrap() error { return e.cause }

// UserMessage returns the fixed user-facing string for this error's kind.
// Detail from the transport is deliberately not included.
func (e *Error) UserMessage() string {
	switch e.Kind {
	case KindNetwork:
		return "Network error. Please check your connection."
	case KindValidation:
		return "Invalid request data."
	case KindAuthentication:
		return "Authentication required. Please log in."
	case KindAuthorization:
		return "Access denied. You do not have permission."
	case KindNotFound:
		return "Resource not found."
	case KindServer:
		return "Server error. Please try again later."
	default:
		return "An unexpected error occurred."
	}
}

// transportError wraps a failure that never produced an HTTP status.
func transportError(err error) *Error {
	return &Error{Kind: KindNetwork, cause: err}
}

// statusError classifies an HTTP error status.
func statusError(status int, cause error) *Error {
	return &Error{Kind: classify(status), StatusCode: status, cause: cause}
}

func classify(status int) Kind {
	switch {
	case status == 400:
		return KindValidation
	case status == 401:
		return KindAuthentication
	case status == 403:
		return KindAuthorization
	case status == 404:
		return KindNotFound
	case status >= 500:
		return KindServer
	default:
		return KindUnknown
	}
}

// UserMessage maps any error to a user-facing string. Non-API errors get the
// generic unknown message.
func UserMessage(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.UserMessage()
	}
	return "An unexpected error occurred."
}
