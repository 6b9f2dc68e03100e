package usecase

import (
	"context"

	"personal-agenda/internal/extraction"
	"personal-agenda/pkg/llmprovider"
	"personal-agenda/pkg/log"
)

// Generator is the single capability the pipeline needs from the LLM
// layer. *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// implUseCase is the private implementation of extraction.UseCase.
type implUseCase struct {
	llm Generator
	l   log.Logger
}

// New creates a new extraction UseCase implementation.
func New(llm Generator, l log.Logger) *implUseCase {
	return &implUseCase{
		llm: llm,
		l:   l,
	}
}

var _ extraction.UseCase = (*implUseCase)(nil)
