// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// CompletionService defines the interface for generating narrative text from a
// language model. Used by the AI report use cases.
type CompletionService interface {
	// IsAvailable reports whether the service is configured.
	IsAvailable() bool

	// Complete generates text for the given prompt under the system instruction.
	// An empty string return with nil error means the model produced no usable text.
	Complete(ctx context.Context, systemInstruction, prompt string) (string, error)
}
