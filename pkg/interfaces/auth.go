package interfaces

import "context"

// TokenSource exposes the bearer token for outbound API calls. An empty
// string means no session is active.
type TokenSource interface {
	Token() string
}

// SessionExpirer is invoked by the API client when the backend reports an
// expired session (HTTP 401). Implementations must be idempotent: concurrent
// 401s from parallel calls may all observe the same expiry.
type SessionExpirer interface {
	HandleExpiry(ctx context.Context)
}
