package webhook_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/OlegGirko/boss-launcher-webhook/internal/webhook"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func newValidator(t *testing.T, cfg webhook.SecurityConfig) *webhook.SecurityValidator {
	t.Helper()
	v, err := webhook.NewSecurityValidator(cfg, &mockLogger{})
	if err != nil {
		t.Fatalf("NewSecurityValidator: %v", err)
	}
	return v
}

func TestValidateOrigin(t *testing.T) {
	t.Run("open mode when filter disabled", func(t *testing.T) {
		v := newValidator(t, webhook.SecurityConfig{
			IPFilterEnabled: false,
			AllowedNetworks: []string{"10.0.0.0/8"},
		})
		r := httptest.NewRequest("POST", "/", nil)
		r.RemoteAddr = "203.0.113.7:12345"
		if _, err := v.ValidateOrigin(r); err != nil {
			t.Errorf("disabled filter rejected request: %v", err)
		}
	})

	t.Run("open mode when no networks configured", func(t *testing.T) {
		v := newValidator(t, webhook.SecurityConfig{IPFilterEnabled: true})
		r := httptest.NewRequest("POST", "/", nil)
		r.RemoteAddr = "203.0.113.7:12345"
		if _, err := v.ValidateOrigin(r); err != nil {
			t.Errorf("empty allow list rejected request: %v", err)
		}
	})

	t.Run("address inside allowed network accepted", func(t *testing.T) {
		v := newValidator(t, webhook.SecurityConfig{
			IPFilterEnabled: true,
			AllowedNetworks: []string{"10.0.0.0/8", "192.168.1.0/24"},
		})
		for _, addr := range []string{"10.1.2.3:1234", "192.168.1.250:80"} {
			r := httptest.NewRequest("POST", "/", nil)
			r.RemoteAddr = addr
			if _, err := v.ValidateOrigin(r); err != nil {
				t.Errorf("%s rejected: %v", addr, err)
			}
		}
	})

	t.Run("address outside allowed networks rejected", func(t *testing.T) {
		v := newValidator(t, webhook.SecurityConfig{
			IPFilterEnabled: true,
			AllowedNetworks: []string{"10.0.0.0/8", "192.168.1.0/24"},
		})
		for _, addr := range []string{"192.168.2.1:80", "11.0.0.1:80", "203.0.113.7:443"} {
			r := httptest.NewRequest("POST", "/", nil)
			r.RemoteAddr = addr
			if _, err := v.ValidateOrigin(r); err == nil {
				t.Errorf("%s accepted, want rejection", addr)
			}
		}
	})

	t.Run("reverse proxy mode trusts rightmost forwarded entry", func(t *testing.T) {
		v := newValidator(t, webhook.SecurityConfig{
			IPFilterEnabled:   true,
			TrustForwardedFor: true,
			AllowedNetworks:   []string{"10.0.0.0/8"},
		})

		// rightmost entry is the proxy-appended one
		r := httptest.NewRequest("POST", "/", nil)
		r.RemoteAddr = "127.0.0.1:9000"
		r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.2.3.4")
		if _, err := v.ValidateOrigin(r); err != nil {
			t.Errorf("trusted entry rejected: %v", err)
		}

		// client spoofing an allowed address in the first entry must fail
		r = httptest.NewRequest("POST", "/", nil)
		r.RemoteAddr = "127.0.0.1:9000"
		r.Header.Set("X-Forwarded-For", "10.2.3.4, 203.0.113.7")
		if _, err := v.ValidateOrigin(r); err == nil {
			t.Error("spoofed leading entry accepted")
		}
	})

	t.Run("reverse proxy mode rejects missing header", func(t *testing.T) {
		v := newValidator(t, webhook.SecurityConfig{
			IPFilterEnabled:   true,
			TrustForwardedFor: true,
			AllowedNetworks:   []string{"10.0.0.0/8"},
		})
		r := httptest.NewRequest("POST", "/", nil)
		r.RemoteAddr = "10.2.3.4:9000"
		if _, err := v.ValidateOrigin(r); err == nil {
			t.Error("missing X-Forwarded-For accepted")
		}
	})

	t.Run("returns the audited address for limiter keying", func(t *testing.T) {
		v := newValidator(t, webhook.SecurityConfig{
			IPFilterEnabled:   true,
			TrustForwardedFor: true,
			AllowedNetworks:   []string{"10.0.0.0/8"},
		})
		r := httptest.NewRequest("POST", "/", nil)
		r.RemoteAddr = "127.0.0.1:9000"
		r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.2.3.4")
		origin, err := v.ValidateOrigin(r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if origin != "10.2.3.4" {
			t.Errorf("origin = %q, want the forwarded address, not the socket peer", origin)
		}
	})

	t.Run("open mode returns the socket peer without forwarded header", func(t *testing.T) {
		v := newValidator(t, webhook.SecurityConfig{TrustForwardedFor: true})
		r := httptest.NewRequest("POST", "/", nil)
		r.RemoteAddr = "203.0.113.7:12345"
		origin, err := v.ValidateOrigin(r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if origin != "203.0.113.7" {
			t.Errorf("origin = %q, want 203.0.113.7", origin)
		}
	})

	t.Run("unparseable origin rejected", func(t *testing.T) {
		v := newValidator(t, webhook.SecurityConfig{
			IPFilterEnabled: true,
			AllowedNetworks: []string{"10.0.0.0/8"},
		})
		r := httptest.NewRequest("POST", "/", nil)
		r.RemoteAddr = "not-an-address"
		if _, err := v.ValidateOrigin(r); err == nil {
			t.Error("garbage origin accepted")
		}
	})
}

func TestNewSecurityValidator(t *testing.T) {
	t.Run("bad cidr fails at construction", func(t *testing.T) {
		_, err := webhook.NewSecurityValidator(webhook.SecurityConfig{
			IPFilterEnabled: true,
			AllowedNetworks: []string{"10.0.0.0/33"},
		}, &mockLogger{})
		if err == nil {
			t.Fatal("expected error for invalid CIDR")
		}
	})
}

func TestCheckRateLimit(t *testing.T) {
	t.Run("disabled limiter allows everything", func(t *testing.T) {
		v := newValidator(t, webhook.SecurityConfig{})
		for i := 0; i < 100; i++ {
			if err := v.CheckRateLimit("10.0.0.1"); err != nil {
				t.Fatalf("request %d limited with limiter disabled: %v", i, err)
			}
		}
	})

	t.Run("burst exhaustion limits one origin without affecting others", func(t *testing.T) {
		v := newValidator(t, webhook.SecurityConfig{RateLimitPerMin: 10})

		// burst is 1 at 10/min; the second immediate request must fail
		if err := v.CheckRateLimit("10.0.0.1"); err != nil {
			t.Fatalf("first request limited: %v", err)
		}
		if err := v.CheckRateLimit("10.0.0.1"); err == nil {
			t.Error("second immediate request not limited")
		}
		if err := v.CheckRateLimit("10.0.0.2"); err != nil {
			t.Errorf("other origin limited: %v", err)
		}
	})
}
