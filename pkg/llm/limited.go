package llm

import "context"

// LimitedClient caps the number of concurrent outbound model calls.
// Acquisition respects context cancellation.
type LimitedClient struct {
	inner Client
	sem   chan struct{}
}

func NewLimitedClient(inner Client, maxConcurrent int) *LimitedClient {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &LimitedClient{
		inner: inner,
		sem:   make(chan struct{}, maxConcurrent),
	}
}

func (c *LimitedClient) Generate(ctx context.Context, prompt string) (string, error) {
	select {
	case c.sem <- struct{}{}:
	case <-ctx.Done():
		return "", ctx.Err()
	}
	defer func() { <-c.sem }()

	return c.inner.Generate(ctx, prompt)
}
