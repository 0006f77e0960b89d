package ai

import "errors"

// Failure classes for the completion/embedding backends. Callers pick a
// user-facing fallback per class instead of catching everything alike.
var (
	ErrUnavailable = errors.New("ai backend unavailable")
	ErrAuth        = errors.New("ai authentication failed")
	ErrRateLimited = errors.New("ai rate limited")
	ErrConnection  = errors.New("ai connection failed")
)
