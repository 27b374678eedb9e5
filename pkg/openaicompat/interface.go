package openaicompat

import "context"

// IClient talks to any OpenAI-compatible chat completions endpoint.
// Implementations are safe for concurrent use.
type IClient interface {
	// ChatCompletion sends one chat completion request
	ChatCompletion(ctx context.Context, req *Request) (*Response, error)

	// Provider returns the configured provider name
	Provider() string

	// Model returns the model being used
	Model() string
}

// New creates a new client with the given configuration
func New(cfg Config) (IClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClientImpl(cfg), nil
}
