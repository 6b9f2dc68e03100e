package qwen

import "context"

// IQwen defines the interface for Qwen LLM client
type IQwen interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}
