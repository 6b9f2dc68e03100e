package user

import "time"

// User is the account entity owning tasks.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Phone        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// --- UseCase Inputs ---

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

type UpdateInput struct {
	ID    string
	Name  string
	Phone string
}

type ListInput struct {
	Limit  int
	Offset int
}

// --- UseCase Outputs ---

type RegisterOutput struct {
	User User
}

type DetailOutput struct {
	User User
}

type UpdateOutput struct {
	User User
}

type ListOutput struct {
	Users  []User
	Total  int
	Limit  int
	Offset int
}
