package repository

// CreateUserOptions holds parameters for inserting a new User.
type CreateUserOptions struct {
	Name         string
	Email        string
	PasswordHash string
	Phone        string
}

// GetOneUserOptions holds filter parameters for fetching a single User.
// All non-empty fields are applied as AND conditions.
type GetOneUserOptions struct {
	ID    string
	Email string
	Phone string
}

// ListUsersOptions holds paging parameters for listing Users.
type ListUsersOptions struct {
	Limit  int
	Offset int
}

// UpdateUserOptions holds parameters for updating an existing User.
type UpdateUserOptions struct {
	ID    string
	Name  string
	Phone string
}
