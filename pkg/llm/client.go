package llm

import "context"

// Request is a single completion request. Sampling temperature is fixed per
// client; callers only control the prompt and the output budget.
type Request struct {
	System    string
	User      string
	MaxTokens int64
}

type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
	Name() string
}
