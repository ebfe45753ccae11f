package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an API failure so callers can branch on meaning rather
// than on raw HTTP status codes.
type Kind int

const (
	// KindBackend covers any non-2xx response without a more specific class.
	KindBackend Kind = iota
	// KindUnauthorized is a 401: missing, invalid or expired token.
	KindUnauthorized
	// KindQuotaExceeded is a 402: a paid-tier limit was hit.
	KindQuotaExceeded
	// KindNotFound is a 404.
	KindNotFound
	// KindNetwork means the request never produced an HTTP response.
	KindNetwork
)

// Error is the failure type returned by every Client call.
type Error struct {
	Kind    Kind
	Status  int    // HTTP status, 0 for network failures
	Message string // user-facing message
	cause   error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("api: %s", e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// IsUnauthorized reports whether err is a 401-class API error.
func IsUnauthorized(err error) bool { return hasKind(err, KindUnauthorized) }

// IsQuotaExceeded reports whether err is a 402-class API error.
func IsQuotaExceeded(err error) bool { return hasKind(err, KindQuotaExceeded) }

// IsNotFound reports whether err is a 404-class API error.
func IsNotFound(err error) bool { return hasKind(err, KindNotFound) }

func hasKind(err error, k Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == k
}

// Message returns the user-facing message from an API error, or fallback
// for any other error.
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

func networkError(err error) *Error {
	return &Error{
		Kind:    KindNetwork,
		Message: "Could not reach the server. Please try again.",
		cause:   err,
	}
}

// statusError builds an Error from a non-2xx response. The message is a
// best-effort extraction from the body ("detail" or "error" keys), falling
// back to a static string.
func statusError(status int, body []byte) *Error {
	e := &Error{Kind: KindBackend, Status: status, Message: "Request failed. Please try again."}

	switch status {
	case http.StatusUnauthorized:
		e.Kind = KindUnauthorized
		e.Message = "Your session has expired. Please log in again."
	case http.StatusPaymentRequired:
		e.Kind = KindQuotaExceeded
		e.Message = "Free tier limit reached. Please upgrade to continue."
	case http.StatusNotFound:
		e.Kind = KindNotFound
		e.Message = "Not found."
	}

	var envelope struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Detail != "" {
			e.Message = envelope.Detail
		} else if envelope.Error != "" {
			e.Message = envelope.Error
		}
	}

	return e
}
