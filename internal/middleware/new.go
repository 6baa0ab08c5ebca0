package middleware

import (
	"github.com/OlegGirko/boss-launcher-webhook/config"
	"github.com/OlegGirko/boss-launcher-webhook/pkg/log"
)

type Middleware struct {
	l    log.Logger
	auth config.AuthConfig
}

func New(l log.Logger, auth config.AuthConfig) Middleware {
	return Middleware{
		l:    l,
		auth: auth,
	}
}
