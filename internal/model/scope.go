package model

// Scope is the authenticated identity attached to a request.
type Scope struct {
	UserID string
	Email  string
}
