package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	mappingHTTP "github.com/OlegGirko/boss-launcher-webhook/internal/mapping/delivery/http"
	mappingRepo "github.com/OlegGirko/boss-launcher-webhook/internal/mapping/repository/postgre"
	mappingUC "github.com/OlegGirko/boss-launcher-webhook/internal/mapping/usecase"
	"github.com/OlegGirko/boss-launcher-webhook/internal/middleware"
	"github.com/OlegGirko/boss-launcher-webhook/internal/webhook"
)

// setupMappingDomain initializes the mapping domain and the webhook
// ingestion endpoint, and registers their routes.
func (srv *HTTPServer) setupMappingDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := mappingRepo.New(srv.postgresDB, srv.l)

	// 2. UseCase
	uc := mappingUC.New(repo, srv.launcher, srv.l)

	// 3. HTTP handlers
	h := mappingHTTP.New(srv.l, uc, srv.landing)

	hookHandler, err := webhook.NewHandler(srv.launcher, srv.webhookSecurity, srv.l)
	if err != nil {
		return err
	}

	// 4. Routes
	mappingHTTP.RegisterRoutes(api, h, mw)
	mappingHTTP.RegisterLanding(srv.gin, h, mw)
	srv.gin.POST("/", hookHandler.HandleHook)

	srv.l.Infof(ctx, "mapping domain and webhook ingestion registered")
	return nil
}
