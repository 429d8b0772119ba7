package api

import (
	"encoding/json"
	"errors"
	"strings"
)

// Sentinel errors callers branch on. Every failure the client surfaces is an
// *Error unwrapping to exactly one of these.
var (
	ErrUnauthenticated = errors.New("api: unauthenticated")
	ErrSessionExpired  = errors.New("api: session expired")
	ErrForbidden       = errors.New("api: forbidden")
	ErrServer          = errors.New("api: server error")
	ErrNetwork         = errors.New("api: network error")
)

// SessionExpiredMessage is surfaced verbatim on HTTP 401.
const SessionExpiredMessage = "Session expired. Please login again."

// UnauthenticatedMessage is surfaced when a write is attempted without a
// stored token; the request never reaches the network.
const UnauthenticatedMessage = "Authentication required. Please login."

const fallbackMessage = "network error"

// Kind classifies a normalized client error.
type Kind uint8

const (
	KindNetwork Kind = iota
	KindServer
	KindUnauthenticated
	KindSessionExpired
	KindForbidden
)

// Error is the single error shape the client rejects with. Message is
// always human-readable; Status carries the HTTP code when one was seen.
type Error struct {
	Kind    Kind
	Message string
	Status  int
}

func (e *Error) Error() string {
	if e == nil || e.Message == "" {
		return fallbackMessage
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	switch e.Kind {
	case KindUnauthenticated:
		return ErrUnauthenticated
	case KindSessionExpired:
		return ErrSessionExpired
	case KindForbidden:
		return ErrForbidden
	case KindServer:
		return ErrServer
	default:
		return ErrNetwork
	}
}

func unauthenticatedError() *Error {
	return &Error{Kind: KindUnauthenticated, Message: UnauthenticatedMessage}
}

func sessionExpiredError() *Error {
	return &Error{Kind: KindSessionExpired, Message: SessionExpiredMessage, Status: 401}
}

func networkError(err error) *Error {
	message := fallbackMessage
	if err != nil && strings.TrimSpace(err.Error()) != "" {
		message = err.Error()
	}
	return &Error{Kind: KindNetwork, Message: message}
}

// extractMessage pulls the most specific failure message out of a response
// body: structured error object message, then structured error string, then
// top-level message, then the fallback.
func extractMessage(body []byte) string {
	var envelope struct {
		Message string          `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fallbackMessage
	}

	if len(envelope.Error) > 0 {
		var structured struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(envelope.Error, &structured); err == nil && structured.Message != "" {
			return structured.Message
		}
		var plain string
		if err := json.Unmarshal(envelope.Error, &plain); err == nil && plain != "" {
			return plain
		}
	}

	if envelope.Message != "" {
		return envelope.Message
	}
	return fallbackMessage
}
