package user

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Register creates a new account. The password is hashed before storage.
	Register(ctx context.Context, input RegisterInput) (RegisterOutput, error)
	Detail(ctx context.Context, id string) (DetailOutput, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, id string) error

	// Authenticate checks email/password and returns the matching user.
	Authenticate(ctx context.Context, email, password string) (User, error)
	// GetByPhone resolves the account owning a WhatsApp phone number.
	GetByPhone(ctx context.Context, phone string) (User, error)
}
