package handler

import (
	"errors"
	"log"
	"net/http"

	"solarquote/internal/middleware"
	"solarquote/internal/service"
	"solarquote/pkg/apperror"
	"solarquote/pkg/pagination"
	"solarquote/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var statusByKind = map[apperror.Kind]int{
	apperror.KindNotFound:     http.StatusNotFound,
	apperror.KindConflict:     http.StatusConflict,
	apperror.KindBusinessRule: http.StatusUnprocessableEntity,
	apperror.KindForbidden:    http.StatusForbidden,
	apperror.KindDependency:   http.StatusBadGateway,
	apperror.KindInternal:     http.StatusInternalServerError,
}

// respondError maps a service error onto the response envelope. Internal causes are logged
// and never sent to the client.
func respondError(c *gin.Context, err error) {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		appErr = apperror.Internal(err)
	}

	status, ok := statusByKind[appErr.Kind]
	if !ok {
		status = http.StatusInternalServerError
	}

	message := appErr.Error()
	if status == http.StatusInternalServerError {
		log.Printf("[HTTP] %s %s: %v", c.Request.Method, c.FullPath(), errors.Unwrap(appErr))
		message = "internal server error"
	}
	c.JSON(status, response.ErrorWithCode(status, appErr.Code, message))
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, response.ErrorWithCode(http.StatusBadRequest, "BAD_REQUEST", message))
}

// bindJSON decodes the body and writes a 400 on malformed payloads.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return false
	}
	return true
}

// uuidParam parses a path parameter and writes a 400 when it is not a UUID.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		badRequest(c, "Invalid "+name+": must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}

// uuidQuery parses an optional query parameter. Absent values yield nil.
func uuidQuery(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		badRequest(c, "Invalid "+name+": must be a UUID")
		return nil, false
	}
	return &id, true
}

// actor returns the authenticated caller. RequireRole must run first.
func actor(c *gin.Context) service.Actor {
	p, _ := middleware.CurrentPrincipal(c)
	return service.Actor{ID: p.UserID, Role: p.Role}
}

func paged(c *gin.Context, items interface{}, total int64, page pagination.Params) {
	c.JSON(http.StatusOK, response.Paged(http.StatusOK, items, total, page.Page, page.Limit))
}
