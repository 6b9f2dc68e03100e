package llmprovider

import "context"

// Provider defines the interface for LLM completion providers
type Provider interface {
	// GenerateContent sends a completion request and returns the raw text reply
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "openai", "deepseek")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request represents a normalized completion request. The prompt is sent as a
// single user-role message.
type Request struct {
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// Response represents a normalized completion response
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
