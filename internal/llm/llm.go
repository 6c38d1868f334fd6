package llm

import (
	"context"
	"errors"
)

// Client is the text-in/text-out inference contract. Implementations are
// opaque oracles: callers only depend on Complete and the error kinds below.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ErrUnavailable marks inference collaborator failures (non-2xx, timeout,
// unreachable). Callers map it to a dependency-unavailable response.
var ErrUnavailable = errors.New("inference service unavailable")

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("inference client not configured")

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// Complete returns ErrNotConfigured.
func (PlaceholderClient) Complete(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrNotConfigured
}
