package service

import "context"

// ILLMService sends a single-turn prompt to the language model.
// Every failure is a *domain.GenerationError.
type ILLMService interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
