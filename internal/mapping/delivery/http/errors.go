package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/OlegGirko/boss-launcher-webhook/internal/mapping"
	"github.com/OlegGirko/boss-launcher-webhook/pkg/response"
)

// respondError translates domain errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	if ve, ok := mapping.AsValidationErrors(err); ok {
		response.ValidationError(c, err, ve)
		return
	}

	switch {
	case errors.Is(err, mapping.ErrMappingNotFound),
		errors.Is(err, mapping.ErrRevisionNotFound),
		errors.Is(err, mapping.ErrBuildServiceNotFound):
		response.NotFound(c, err)
	default:
		response.InternalError(c, err)
	}
}
