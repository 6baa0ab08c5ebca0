package webhook

import (
	"github.com/OlegGirko/boss-launcher-webhook/pkg/boss"
	pkgLog "github.com/OlegGirko/boss-launcher-webhook/pkg/log"
)

// Handler serves the webhook ingestion endpoint.
type Handler struct {
	launcher boss.Launcher
	security *SecurityValidator
	l        pkgLog.Logger
}

// NewHandler creates the ingestion handler. Returns an error when the
// security configuration cannot be parsed.
func NewHandler(launcher boss.Launcher, securityConfig SecurityConfig, l pkgLog.Logger) (*Handler, error) {
	security, err := NewSecurityValidator(securityConfig, l)
	if err != nil {
		return nil, err
	}
	return &Handler{
		launcher: launcher,
		security: security,
		l:        l,
	}, nil
}
