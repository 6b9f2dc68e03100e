package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"personal-agenda/internal/auth"
	"personal-agenda/internal/user"
	"personal-agenda/pkg/log"
	"personal-agenda/pkg/scope"
)

// mockUserUC implements the user.UseCase methods Login depends on.
type mockUserUC struct {
	user.UseCase
	u   user.User
	err error
}

func (m *mockUserUC) Authenticate(ctx context.Context, email, password string) (user.User, error) {
	if m.err != nil {
		return user.User{}, m.err
	}
	return m.u, nil
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	mgr, err := scope.New(scope.Config{Secret: "test-secret", TokenTTL: time.Hour})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Success", func(t *testing.T) {
		userUC := &mockUserUC{u: user.User{ID: "u1", Email: "ana@example.com", Name: "Ana"}}
		uc := New(userUC, mgr, log.NewNoop())

		out, err := uc.Login(ctx, auth.LoginInput{Email: "ana@example.com", Password: "secreta123"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		payload, err := mgr.Verify(out.Token)
		if err != nil {
			t.Fatalf("issued token does not verify: %v", err)
		}
		if payload.UserID != "u1" || payload.Email != "ana@example.com" {
			t.Errorf("unexpected payload: %+v", payload)
		}
		if out.User.Name != "Ana" {
			t.Errorf("unexpected user: %+v", out.User)
		}
	})

	t.Run("InvalidCredentials", func(t *testing.T) {
		userUC := &mockUserUC{err: user.ErrInvalidCredentials}
		uc := New(userUC, mgr, log.NewNoop())

		_, err := uc.Login(ctx, auth.LoginInput{Email: "ana@example.com", Password: "mala"})
		if !errors.Is(err, user.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got: %v", err)
		}
	})
}
