package webhook

import (
	"encoding/binary"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	pkgLog "github.com/OlegGirko/boss-launcher-webhook/pkg/log"
)

// SecurityValidator decides whether an inbound webhook POST is accepted
// based on its origin network.
type SecurityValidator struct {
	config      SecurityConfig
	networks    []netmask
	rateLimiter *rateLimiter
	l           pkgLog.Logger
}

// netmask is one configured (network, mask) pair in IPv4 integer form.
// An address a matches when a & mask == network.
type netmask struct {
	network uint32
	mask    uint32
	raw     string
}

// NewSecurityValidator parses the configured CIDR ranges up front so a bad
// entry fails at startup, not per request.
func NewSecurityValidator(config SecurityConfig, l pkgLog.Logger) (*SecurityValidator, error) {
	v := &SecurityValidator{
		config: config,
		l:      l,
	}
	if config.RateLimitPerMin > 0 {
		v.rateLimiter = newRateLimiter(config.RateLimitPerMin)
	}

	for _, cidr := range config.AllowedNetworks {
		_, ipNet, err := net.ParseCIDR(cidr)
		if err != nil {
			return nil, fmt.Errorf("invalid allowed network %q: %w", cidr, err)
		}
		ip4 := ipNet.IP.To4()
		mask4 := net.IP(ipNet.Mask).To4()
		if ip4 == nil || mask4 == nil {
			return nil, fmt.Errorf("allowed network %q is not IPv4", cidr)
		}
		v.networks = append(v.networks, netmask{
			network: binary.BigEndian.Uint32(ip4),
			mask:    binary.BigEndian.Uint32(mask4),
			raw:     cidr,
		})
	}

	return v, nil
}

// ValidateOrigin accepts or rejects the request based on its origin
// address. Open mode (filter disabled or no networks configured) accepts
// everything. On acceptance it returns the resolved origin address, which
// also keys rate limiting, so filtering and limiting always audit the
// same address. The address used and the decision are logged.
func (v *SecurityValidator) ValidateOrigin(r *http.Request) (string, error) {
	ip, err := v.originAddress(r)

	if !v.config.IPFilterEnabled || len(v.networks) == 0 {
		if err != nil {
			// Open mode accepts everything; fall back to the socket peer
			// so rate limiting still has a stable key.
			return remoteHost(r), nil
		}
		return ip, nil
	}

	ctx := r.Context()

	if err != nil {
		v.l.Warnf(ctx, "webhook origin rejected: %v", err)
		return "", err
	}

	addr, err := ipv4ToUint32(ip)
	if err != nil {
		v.l.Warnf(ctx, "webhook origin rejected: %v", err)
		return "", err
	}

	for _, nm := range v.networks {
		if addr&nm.mask == nm.network {
			v.l.Infof(ctx, "webhook origin %s accepted by %s", ip, nm.raw)
			return ip, nil
		}
	}

	v.l.Warnf(ctx, "webhook origin %s not in allowed networks", ip)
	return "", fmt.Errorf("origin %s not in allowed networks", ip)
}

// originAddress resolves the client address the filter should check.
// Behind a reverse proxy only the last X-Forwarded-For entry is trusted;
// earlier entries are client-supplied and spoofable.
func (v *SecurityValidator) originAddress(r *http.Request) (string, error) {
	if v.config.TrustForwardedFor {
		xff := r.Header.Get("X-Forwarded-For")
		if xff == "" {
			return "", fmt.Errorf("missing X-Forwarded-For header")
		}
		parts := strings.Split(xff, ",")
		ip := strings.TrimSpace(parts[len(parts)-1])
		v.l.Infof(r.Context(), "using %s as origin from X-Forwarded-For: %s", ip, xff)
		return ip, nil
	}

	return remoteHost(r), nil
}

// remoteHost strips the port from the socket peer address.
func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr without a port, use as is.
		return r.RemoteAddr
	}
	return host
}

// CheckRateLimit enforces per-origin rate limiting. No-op when disabled.
func (v *SecurityValidator) CheckRateLimit(origin string) error {
	if v.rateLimiter == nil {
		return nil
	}
	return v.rateLimiter.Allow(origin)
}

// ipv4ToUint32 parses a dotted-quad address into its 32-bit integer form.
func ipv4ToUint32(s string) (uint32, error) {
	ip := net.ParseIP(s)
	if ip == nil {
		return 0, fmt.Errorf("unparseable origin address %q", s)
	}
	ip4 := ip.To4()
	if ip4 == nil {
		return 0, fmt.Errorf("origin address %q is not IPv4", s)
	}
	return binary.BigEndian.Uint32(ip4), nil
}

// rateLimiter keeps a per-origin token bucket with auto-cleanup.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,
			nil,
			time.Minute*5,
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0),
		burst: burst,
	}
}

func (rl *rateLimiter) Allow(key string) error {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}
