package auth

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Login verifies credentials and issues a bearer token.
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
}
