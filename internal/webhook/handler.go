package webhook

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgResponse "github.com/OlegGirko/boss-launcher-webhook/pkg/response"
)

// errBadRequest is the uniform rejection for the ingestion endpoint.
// Origin and decode failures are deliberately indistinguishable to the
// caller; details go to the log only.
var errBadRequest = errors.New("bad request")

// HandleHook processes a webhook callback from a source-control host.
// @Summary     Receive a webhook
// @Description Accepts a push/tag notification and enqueues it for build launch.
// @Tags        Webhook
// @Accept      json
// @Produce     json
// @Success     200 "event enqueued"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      / [POST]
func (h *Handler) HandleHook(c *gin.Context) {
	ctx := c.Request.Context()

	origin, err := h.security.ValidateOrigin(c.Request)
	if err != nil {
		pkgResponse.Error(c, errBadRequest, nil)
		return
	}

	if err := h.security.CheckRateLimit(origin); err != nil {
		h.l.Warnf(ctx, "webhook rate limit: %v", err)
		pkgResponse.TooManyRequests(c)
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "failed to read webhook body from %s: %v", c.Request.RemoteAddr, err)
		pkgResponse.Error(c, errBadRequest, nil)
		return
	}

	data, err := DecodePayload(body, c.ContentType(), c.Request.URL.Query())
	if err != nil {
		h.l.Warnf(ctx, "invalid webhook payload from %s: %v", c.Request.RemoteAddr, err)
		pkgResponse.Error(c, errBadRequest, nil)
		return
	}

	// Hand off to the launch queue. The build is not awaited; enqueue
	// success is the only completion signal this path needs.
	if err := h.launcher.Launch(ctx, data); err != nil {
		h.l.Errorf(ctx, "failed to enqueue webhook payload from %s: %v", c.Request.RemoteAddr, err)
		pkgResponse.Error(c, errBadRequest, nil)
		return
	}

	c.Status(http.StatusOK)
}
