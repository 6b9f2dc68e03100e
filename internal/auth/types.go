package auth

import "personal-agenda/internal/user"

// --- UseCase Inputs ---

type LoginInput struct {
	Email    string
	Password string
}

// --- UseCase Outputs ---

type LoginOutput struct {
	Token string
	User  user.User
}
