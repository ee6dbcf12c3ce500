package llm

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// Throttled caps the request rate of an LLMProvider. Calls block until a token
// is available or ctx is done.
type Throttled struct {
	next    LLMProvider
	limiter *rate.Limiter
}

var _ LLMProvider = &Throttled{}

// NewThrottled wraps next with a limiter allowing perSecond requests with a
// burst of the same size. A non-positive rate disables throttling.
func NewThrottled(next LLMProvider, perSecond float64) LLMProvider {
	if perSecond <= 0 {
		return next
	}
	burst := max(int(perSecond), 1)
	return &Throttled{next: next, limiter: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

func (t *Throttled) wait(ctx context.Context) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("llm rate limit: %w", err)
	}
	return nil
}

func (t *Throttled) Chat(ctx context.Context, history []Message, options ...Option) (string, error) {
	if err := t.wait(ctx); err != nil {
		return "", err
	}
	return t.next.Chat(ctx, history, options...)
}

func (t *Throttled) Complete(ctx context.Context, history []Message, options ...Option) (CompletionResult, error) {
	if err := t.wait(ctx); err != nil {
		return nil, err
	}
	return t.next.Complete(ctx, history, options...)
}

func (t *Throttled) Generate(ctx context.Context, prompt string, options ...Option) (string, error) {
	if err := t.wait(ctx); err != nil {
		return "", err
	}
	return t.next.Generate(ctx, prompt, options...)
}
