// Package llm defines the narrow interface the rest of the service uses to
// talk to a text-generation model.
package llm

import (
	"context"
	"errors"
)

// ErrUnavailable reports that no model backend is configured.
var ErrUnavailable = errors.New("llm: no model backend configured")

// Client produces a completion for a prompt. Implementations must honor the
// context deadline and return an error rather than block indefinitely.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Func adapts a plain function to a Client. Handy in tests.
type Func func(ctx context.Context, prompt string) (string, error)

func (f Func) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Disabled is a Client that always fails with ErrUnavailable. It is wired in
// when no API key is configured so callers degrade to their fallbacks.
type Disabled struct{}

func (Disabled) Generate(ctx context.Context, prompt string) (string, error) {
	return "", ErrUnavailable
}
