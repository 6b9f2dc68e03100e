package usecase

import (
	"personal-agenda/internal/user"
	"personal-agenda/pkg/log"
	"personal-agenda/pkg/scope"
)

// implUseCase is the private implementation of auth.UseCase.
type implUseCase struct {
	userUC     user.UseCase
	jwtManager scope.Manager
	l          log.Logger
}

// New creates a new auth UseCase implementation.
func New(userUC user.UseCase, jwtManager scope.Manager, l log.Logger) *implUseCase {
	return &implUseCase{
		userUC:     userUC,
		jwtManager: jwtManager,
		l:          l,
	}
}
