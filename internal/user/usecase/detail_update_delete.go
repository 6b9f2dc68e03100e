package usecase

import (
	"context"

	"personal-agenda/internal/user"
	repo "personal-agenda/internal/user/repository"
)

// Detail retrieves a single User by ID. Returns ErrUserNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (user.DetailOutput, error) {
	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneUser: %v", err)
		return user.DetailOutput{}, err
	}
	if u.ID == "" {
		return user.DetailOutput{}, user.ErrUserNotFound
	}
	return user.DetailOutput{User: u}, nil
}

// List returns a page of accounts.
func (uc *implUseCase) List(ctx context.Context, input user.ListInput) (user.ListOutput, error) {
	users, total, err := uc.repo.ListUsers(ctx, repo.ListUsersOptions{
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListUsers: %v", err)
		return user.ListOutput{}, err
	}
	return user.ListOutput{
		Users:  users,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}

// Update modifies an existing User. Returns ErrUserNotFound when not found.
func (uc *implUseCase) Update(ctx context.Context, input user.UpdateInput) (user.UpdateOutput, error) {
	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneUser: %v", err)
		return user.UpdateOutput{}, err
	}
	if existing.ID == "" {
		return user.UpdateOutput{}, user.ErrUserNotFound
	}

	if input.Phone != "" && input.Phone != existing.Phone {
		other, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Phone: input.Phone})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Update GetOneUser: %v", err)
			return user.UpdateOutput{}, err
		}
		if other.ID != "" {
			return user.UpdateOutput{}, user.ErrPhoneTaken
		}
	}

	u, err := uc.repo.UpdateUser(ctx, repo.UpdateUserOptions{
		ID:    input.ID,
		Name:  coalesce(input.Name, existing.Name),
		Phone: coalesce(input.Phone, existing.Phone),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateUser: %v", err)
		return user.UpdateOutput{}, err
	}
	return user.UpdateOutput{User: u}, nil
}

// Delete removes a User by ID. Returns ErrUserNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneUser: %v", err)
		return err
	}
	if existing.ID == "" {
		return user.ErrUserNotFound
	}
	if err := uc.repo.DeleteUser(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteUser: %v", err)
		return err
	}
	return nil
}

// GetByPhone resolves the account owning a phone number.
func (uc *implUseCase) GetByPhone(ctx context.Context, phone string) (user.User, error) {
	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Phone: phone})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetByPhone GetOneUser: %v", err)
		return user.User{}, err
	}
	if u.ID == "" {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

// coalesce returns val when non-empty, otherwise fallback.
func coalesce(val, fallback string) string {
	if val != "" {
		return val
	}
	return fallback
}
