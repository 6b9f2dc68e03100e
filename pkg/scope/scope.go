package scope

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type manager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// New creates a Manager signing tokens with HMAC-SHA256.
func New(cfg Config) (Manager, error) {
	if cfg.Secret == "" {
		return nil, errors.New("scope: secret is required")
	}
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &manager{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
		ttl:    ttl,
	}, nil
}

func (m *manager) Issue(payload Payload) (string, error) {
	now := time.Now()
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   payload.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		UserID: payload.UserID,
		Email:  payload.Email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("scope: failed to sign token: %w", err)
	}
	return signed, nil
}

func (m *manager) Verify(tokenString string) (Payload, error) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Payload{}, ErrTokenExpired
		}
		return Payload{}, ErrInvalidToken
	}
	if !token.Valid || c.UserID == "" {
		return Payload{}, ErrInvalidToken
	}

	return Payload{
		UserID: c.UserID,
		Email:  c.Email,
	}, nil
}
