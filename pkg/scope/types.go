package scope

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Payload is the identity carried inside an access token.
type Payload struct {
	UserID string
	Email  string
}

// Config holds the signing parameters of the manager.
type Config struct {
	Secret   string
	Issuer   string
	TokenTTL time.Duration
}

// claims is the JWT claims structure.
type claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
	Email  string `json:"email"`
}

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
