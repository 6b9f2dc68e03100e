package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"personal-agenda/internal/user"
	repo "personal-agenda/internal/user/repository"
)

// Register creates a new account after checking email and phone uniqueness.
func (uc *implUseCase) Register(ctx context.Context, input user.RegisterInput) (user.RegisterOutput, error) {
	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: input.Email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register GetOneUser: %v", err)
		return user.RegisterOutput{}, err
	}
	if existing.ID != "" {
		return user.RegisterOutput{}, user.ErrEmailTaken
	}

	existing, err = uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Phone: input.Phone})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register GetOneUser: %v", err)
		return user.RegisterOutput{}, err
	}
	if existing.ID != "" {
		return user.RegisterOutput{}, user.ErrPhoneTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register GenerateFromPassword: %v", err)
		return user.RegisterOutput{}, err
	}

	created, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Phone:        input.Phone,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register CreateUser: %v", err)
		return user.RegisterOutput{}, err
	}

	return user.RegisterOutput{User: created}, nil
}

// Authenticate checks email/password against the stored hash.
// Both unknown email and wrong password map to ErrInvalidCredentials so the
// response does not leak which one failed.
func (uc *implUseCase) Authenticate(ctx context.Context, email, password string) (user.User, error) {
	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Authenticate GetOneUser: %v", err)
		return user.User{}, err
	}
	if u.ID == "" {
		return user.User{}, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return user.User{}, user.ErrInvalidCredentials
	}

	return u, nil
}
