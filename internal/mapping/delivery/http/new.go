package http

import (
	"github.com/OlegGirko/boss-launcher-webhook/internal/mapping"
	"github.com/OlegGirko/boss-launcher-webhook/pkg/log"
)

// LandingConfig controls the landing page behaviour.
type LandingConfig struct {
	// Public allows anonymous visitors to see the grouped listing.
	Public bool
	// LoginURL is where anonymous visitors go when the listing is not
	// public.
	LoginURL string
}

type handler struct {
	l       log.Logger
	uc      mapping.UseCase
	landing LandingConfig
}

// New creates a new HTTP handler for the mapping domain.
func New(l log.Logger, uc mapping.UseCase, landing LandingConfig) *handler {
	return &handler{
		l:       l,
		uc:      uc,
		landing: landing,
	}
}
