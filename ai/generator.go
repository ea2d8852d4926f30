// Package ai builds prompts for the language model and turns its replies into recipes,
// recipe ideas and cooking tips.
package ai

import (
	"context"
	"errors"
)

// TextGenerator sends a single prompt to a language model and returns its text reply.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

var (
	ErrEmptyResponse = errors.New("model returned an empty response")
	ErrNoJSONObject  = errors.New("no JSON object found in model response")
	ErrNoJSONArray   = errors.New("no JSON array found in model response")
	ErrInvalidJSON   = errors.New("invalid JSON returned from model")
)
