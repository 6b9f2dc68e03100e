package usecase

import (
	"context"

	"personal-agenda/internal/auth"
	"personal-agenda/pkg/scope"
)

// Login verifies credentials against the user domain and issues a token.
func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.LoginOutput, error) {
	u, err := uc.userUC.Authenticate(ctx, input.Email, input.Password)
	if err != nil {
		return auth.LoginOutput{}, err
	}

	token, err := uc.jwtManager.Issue(scope.Payload{
		UserID: u.ID,
		Email:  u.Email,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login Issue: %v", err)
		return auth.LoginOutput{}, err
	}

	return auth.LoginOutput{
		Token: token,
		User:  u,
	}, nil
}
