package service

import "context"

// AdviceProvider is the outbound contract for the external health-advice
// service. Implementations return natural-language advice for a prompt or
// an error; callers own the degraded-mode fallback.
type AdviceProvider interface {
	GetHealthAdvice(ctx context.Context, prompt string) (string, error)
}
