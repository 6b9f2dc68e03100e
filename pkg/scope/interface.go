package scope

// Manager issues and verifies signed access tokens.
type Manager interface {
	Issue(payload Payload) (string, error)
	Verify(token string) (Payload, error)
}
