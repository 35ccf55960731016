// Package ai wraps the outbound call to the generative AI provider.
package ai

import (
	"context"
	"errors"
	"fmt"
)

// Client abstracts the AI provider for recommendation generation.
type Client interface {
	// GetAnswer sends the prompt and returns the provider's raw response
	// body. The body is untyped text; callers own all interpretation.
	GetAnswer(ctx context.Context, prompt string) (string, error)
}

var (
	// ErrEmptyPrompt is returned when the caller passes an empty prompt.
	ErrEmptyPrompt = errors.New("prompt must not be empty")
	// ErrEmptyResponse is returned when the provider replies with an empty body.
	ErrEmptyResponse = errors.New("empty response body from provider")
)

// StatusError reports a non-success HTTP status from the provider.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("provider returned status %d: %s", e.Code, e.Body)
}
