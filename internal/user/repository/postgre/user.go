package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"personal-agenda/internal/user"
	repo "personal-agenda/internal/user/repository"
)

// CreateUser inserts a new User row and returns the created entity.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (user.User, error) {
	const query = `
		INSERT INTO users (name, email, password_hash, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, name, email, password_hash, phone, created_at, updated_at`

	var u user.User
	err := r.db.QueryRowContext(ctx, query, opt.Name, opt.Email, opt.PasswordHash, opt.Phone).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return user.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}

// GetOneUser retrieves a single User by the provided filters (AND condition).
// Returns zero-value User (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (user.User, error) {
	mods, args := r.buildGetOneQuery(opt)
	baseQuery := `SELECT id, name, email, password_hash, phone, created_at, updated_at FROM users`
	query := fmt.Sprintf("%s WHERE %s LIMIT 1", baseQuery, mods)

	var u user.User
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &u.CreatedAt, &u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return user.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return user.User{}, repo.ErrFailedToGet
	}
	return u, nil
}

// ListUsers returns a page of Users ordered by creation time, plus the
// total count.
func (r *implRepository) ListUsers(ctx context.Context, opt repo.ListUsersOptions) ([]user.User, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListUsers"), err)
		return nil, 0, repo.ErrFailedToGet
	}

	query := `SELECT id, name, email, password_hash, phone, created_at, updated_at FROM users ORDER BY created_at ASC`
	var args []any
	if opt.Limit > 0 {
		args = append(args, opt.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if opt.Offset > 0 {
		args = append(args, opt.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListUsers"), err)
		return nil, 0, repo.ErrFailedToGet
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &u.CreatedAt, &u.UpdatedAt); err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("ListUsers"), err)
			return nil, 0, repo.ErrFailedToGet
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListUsers"), err)
		return nil, 0, repo.ErrFailedToGet
	}
	return users, total, nil
}

// UpdateUser updates a User by ID and returns the updated entity.
func (r *implRepository) UpdateUser(ctx context.Context, opt repo.UpdateUserOptions) (user.User, error) {
	const query = `
		UPDATE users
		SET name = $1, phone = $2, updated_at = $3
		WHERE id = $4
		RETURNING id, name, email, password_hash, phone, created_at, updated_at`

	var u user.User
	err := r.db.QueryRowContext(ctx, query, opt.Name, opt.Phone, time.Now(), opt.ID).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &u.CreatedAt, &u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return user.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateUser"), err)
		return user.User{}, repo.ErrFailedToUpdate
	}
	return u, nil
}

// DeleteUser removes a User by ID. Owned tasks cascade at the schema level.
func (r *implRepository) DeleteUser(ctx context.Context, id string) error {
	const query = `DELETE FROM users WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteUser"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
