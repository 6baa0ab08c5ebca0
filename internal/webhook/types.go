package webhook

// SecurityConfig holds webhook ingestion security settings.
type SecurityConfig struct {
	// IPFilterEnabled toggles the origin network filter. When false, or
	// when AllowedNetworks is empty, every origin is accepted.
	IPFilterEnabled bool
	// TrustForwardedFor reads the origin from the X-Forwarded-For header
	// (reverse proxy deployments). Only the last entry is used.
	TrustForwardedFor bool
	// AllowedNetworks lists accepted CIDR ranges.
	AllowedNetworks []string
	// RateLimitPerMin caps deliveries per origin per minute. Zero disables.
	RateLimitPerMin int
}
