package webhook

// SecurityConfig holds webhook security settings
type SecurityConfig struct {
	Secret          string // App secret for payload signature verification
	VerifyToken     string // Token echoed during the subscription handshake
	RateLimitPerMin int    // Max requests per minute per sender
}
