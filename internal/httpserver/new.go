package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/OlegGirko/boss-launcher-webhook/config"
	mappingHTTP "github.com/OlegGirko/boss-launcher-webhook/internal/mapping/delivery/http"
	"github.com/OlegGirko/boss-launcher-webhook/internal/webhook"
	"github.com/OlegGirko/boss-launcher-webhook/pkg/boss"
	"github.com/OlegGirko/boss-launcher-webhook/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	postgresDB *sql.DB
	launcher   boss.Launcher

	webhookSecurity webhook.SecurityConfig
	landing         mappingHTTP.LandingConfig
	auth            config.AuthConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	PostgresDB *sql.DB
	Launcher   boss.Launcher

	WebhookSecurity webhook.SecurityConfig
	Landing         mappingHTTP.LandingConfig
	Auth            config.AuthConfig
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		postgresDB:      cfg.PostgresDB,
		launcher:        cfg.Launcher,
		webhookSecurity: cfg.WebhookSecurity,
		landing:         cfg.Landing,
		auth:            cfg.Auth,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.launcher == nil {
		return errors.New("launcher is required")
	}
	return nil
}
