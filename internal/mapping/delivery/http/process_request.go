package http

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/OlegGirko/boss-launcher-webhook/internal/mapping"
)

var errInvalidID = errors.New("id must be a positive integer")

// pathID parses the numeric :id path parameter.
func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// pathTarget extracts the (obsname, project, package) triple from the
// URL.
func pathTarget(c *gin.Context) mapping.TargetKey {
	return mapping.TargetKey{
		OBSName: c.Param("obsname"),
		Project: c.Param("project"),
		Package: c.Param("package"),
	}
}

// processCreateReq binds the create mapping request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds the partial update body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	id, err := pathID(c)
	if err != nil {
		return req, err
	}
	req.ID = id
	return req, nil
}

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListRevisionsReq binds the revision list query parameters.
func (h *handler) processListRevisionsReq(c *gin.Context) (listRevisionsReq, error) {
	var req listRevisionsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateRevisionReq binds the revision update body + URI param.
func (h *handler) processUpdateRevisionReq(c *gin.Context) (updateRevisionReq, error) {
	var req updateRevisionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	id, err := pathID(c)
	if err != nil {
		return req, err
	}
	req.ID = id
	return req, nil
}
