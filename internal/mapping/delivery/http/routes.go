package http

import (
	"github.com/gin-gonic/gin"

	"github.com/OlegGirko/boss-launcher-webhook/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. PUT on a
// mapping or a find target triggers a build rather than replacing the
// resource; external build tooling depends on that contract.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	mappings := rg.Group("/webhookmappings")
	{
		mappings.POST("", mw.Auth(), h.Create)
		mappings.GET("", h.List)
		mappings.GET("/:id", h.Detail)
		mappings.PUT("/:id", mw.Auth(), h.Trigger)
		mappings.PATCH("/:id", mw.Auth(), h.Update)
		mappings.DELETE("/:id", mw.Auth(), h.Delete)
	}

	find := rg.Group("/find")
	{
		find.GET("/:obsname/:project/:package", h.Find)
		find.PUT("/:obsname/:project/:package", mw.Auth(), h.UpdateOrCreate)
	}

	rg.PUT("/trigger/:obsname/:project/:package", mw.Auth(), h.TriggerByTarget)

	revisions := rg.Group("/lastseenrevisions")
	{
		revisions.GET("", h.ListRevisions)
		revisions.GET("/:id", h.RevisionDetail)
		revisions.PUT("/:id", mw.Auth(), h.UpdateRevision)
	}

	services := rg.Group("/buildservices")
	{
		services.GET("", h.ListBuildServices)
		services.GET("/:id", h.BuildServiceDetail)
	}
}

// RegisterLanding maps the root landing page.
func RegisterLanding(r *gin.Engine, h *handler, mw middleware.Middleware) {
	r.GET("/", mw.OptionalAuth(), h.Landing)
}
