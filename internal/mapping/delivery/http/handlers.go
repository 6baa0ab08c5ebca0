package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/OlegGirko/boss-launcher-webhook/internal/middleware"
	"github.com/OlegGirko/boss-launcher-webhook/pkg/response"
)

// Create godoc
// @Summary     Register a webhook mapping
// @Description Registers a repository-to-build-target mapping owned by the caller.
// @Tags        Mappings
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Mapping data"
// @Success     200 {object} mappingResp
// @Failure     400 {object} response.Resp "Bad Request / validation errors"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/webhookmappings [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc := middleware.ScopeFromContext(c)
	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newMappingResp(output.Mapping))
}

// List godoc
// @Summary     List webhook mappings
// @Description Returns a filtered, paginated list of mappings.
// @Tags        Mappings
// @Produce     json
// @Param       package query string false "Exact package filter"
// @Param       project query string false "Exact project filter"
// @Param       repourl query string false "Exact repository URL filter"
// @Param       user    query string false "Owner filter"
// @Param       build   query bool   false "Build flag filter"
// @Param       limit   query int    false "Page size (default 50)"
// @Param       offset  query int    false "Page offset"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/webhookmappings [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get a webhook mapping
// @Tags        Mappings
// @Produce     json
// @Param       id path int true "Mapping ID"
// @Success     200 {object} mappingResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/webhookmappings/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newMappingResp(output.Mapping))
}

// Trigger godoc
// @Summary     Trigger a build
// @Description PUT on a mapping queues a build for it. Downstream
// @Description failures are reported in the message, not the status.
// @Tags        Mappings
// @Produce     json
// @Param       id path int true "Mapping ID"
// @Success     200 {object} triggerResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/webhookmappings/{id} [PUT]
func (h *handler) Trigger(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Trigger(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Trigger: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, triggerResp{Message: output.Message})
}

// Update godoc
// @Summary     Partially update a mapping
// @Description Applies only the supplied fields. Revision fields update
// @Description the mapping's last seen revision in the same transaction.
// @Tags        Mappings
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Mapping ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} mappingResp
// @Failure     400 {object} response.Resp "Bad Request / validation errors"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/webhookmappings/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newMappingResp(output.Mapping))
}

// Delete godoc
// @Summary     Delete a mapping
// @Tags        Mappings
// @Produce     json
// @Param       id path int true "Mapping ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/webhookmappings/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// Find godoc
// @Summary     Find the mapping for a build target
// @Description Looks up a mapping by build service namespace, project and
// @Description package. A missing mapping is reported with found=false.
// @Tags        Find
// @Produce     json
// @Param       obsname path string true "Build service namespace"
// @Param       project path string true "Project"
// @Param       package path string true "Package"
// @Success     200 {object} findResp
// @Router      /api/v1/find/{obsname}/{project}/{package} [GET]
func (h *handler) Find(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.FindByTarget(ctx, pathTarget(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.FindByTarget: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newFindResp(output))
}

// UpdateOrCreate godoc
// @Summary     Trigger or register a mapping for a build target
// @Description PUT on a find target triggers the build when the mapping
// @Description exists, or registers a new mapping for the caller when it
// @Description does not. The path triple always wins over body fields.
// @Tags        Find
// @Accept      json
// @Produce     json
// @Param       obsname path string    true  "Build service namespace"
// @Param       project path string    true  "Project"
// @Param       package path string    true  "Package"
// @Param       body    body createReq false "Mapping data for creation"
// @Success     200 {object} updateOrCreateResp
// @Failure     400 {object} response.Resp "Bad Request / validation errors"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/find/{obsname}/{project}/{package} [PUT]
func (h *handler) UpdateOrCreate(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, err, nil)
			return
		}
	}

	sc := middleware.ScopeFromContext(c)
	output, err := h.uc.UpdateOrCreateByTarget(ctx, sc, pathTarget(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateOrCreateByTarget: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, updateOrCreateResp{
		Created: output.Created,
		Mapping: newMappingResp(output.Mapping),
		Message: output.Message,
	})
}

// TriggerByTarget godoc
// @Summary     Trigger a build by target
// @Tags        Find
// @Produce     json
// @Param       obsname path string true "Build service namespace"
// @Param       project path string true "Project"
// @Param       package path string true "Package"
// @Success     200 {object} triggerResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/trigger/{obsname}/{project}/{package} [PUT]
func (h *handler) TriggerByTarget(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.TriggerByTarget(ctx, pathTarget(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.TriggerByTarget: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, triggerResp{Message: output.Message})
}

// Landing godoc
// @Summary     Landing listing
// @Description Grouped listing of visible mappings by project. Anonymous
// @Description visitors are redirected to the login URL unless the
// @Description listing is public.
// @Tags        Landing
// @Produce     json
// @Success     200 {object} landingResp
// @Router      / [GET]
func (h *handler) Landing(c *gin.Context) {
	ctx := c.Request.Context()

	sc := middleware.ScopeFromContext(c)
	if !h.landing.Public && !sc.Authenticated() {
		c.Redirect(http.StatusFound, h.landing.LoginURL)
		return
	}

	output, err := h.uc.GroupedList(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.GroupedList: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newLandingResp(output))
}

// ListRevisions godoc
// @Summary     List last seen revisions
// @Tags        Revisions
// @Produce     json
// @Param       mapping_id query int false "Filter by mapping"
// @Param       limit      query int false "Page size (default 50)"
// @Param       offset     query int false "Page offset"
// @Success     200 {object} listRevisionsResp
// @Router      /api/v1/lastseenrevisions [GET]
func (h *handler) ListRevisions(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListRevisionsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListRevisions(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListRevisions: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListRevisionsResp(output))
}

// RevisionDetail godoc
// @Summary     Get a last seen revision
// @Tags        Revisions
// @Produce     json
// @Param       id path int true "Revision ID"
// @Success     200 {object} revisionResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/lastseenrevisions/{id} [GET]
func (h *handler) RevisionDetail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.RevisionDetail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.RevisionDetail: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newRevisionResp(output.Revision))
}

// UpdateRevision godoc
// @Summary     Update a last seen revision
// @Description Applies only the supplied fields. An empty tag never
// @Description overwrites a known tag.
// @Tags        Revisions
// @Accept      json
// @Produce     json
// @Param       id   path int               true "Revision ID"
// @Param       body body updateRevisionReq true "Fields to update"
// @Success     200 {object} revisionResp
// @Failure     400 {object} response.Resp "Bad Request / validation errors"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/lastseenrevisions/{id} [PUT]
func (h *handler) UpdateRevision(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateRevisionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.UpdateRevision(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateRevision: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newRevisionResp(output.Revision))
}

// ListBuildServices godoc
// @Summary     List build services
// @Tags        BuildServices
// @Produce     json
// @Success     200 {object} listBuildServicesResp
// @Router      /api/v1/buildservices [GET]
func (h *handler) ListBuildServices(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListBuildServices(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListBuildServices: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListBuildServicesResp(output))
}

// BuildServiceDetail godoc
// @Summary     Get a build service
// @Tags        BuildServices
// @Produce     json
// @Param       id path int true "Build service ID"
// @Success     200 {object} buildServiceResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/buildservices/{id} [GET]
func (h *handler) BuildServiceDetail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.BuildServiceDetail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.BuildServiceDetail: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newBuildServiceResp(output.Service))
}
