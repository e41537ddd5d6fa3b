package handler

import (
	"solarquote/internal/middleware"
	"solarquote/internal/repository"
	"solarquote/internal/service"
	"solarquote/pkg/pagination"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	auditService service.AuditService
}

func NewAuditHandler(auditService service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

func (h *AuditHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/api/admin/audit-logs")
	group.Use(middleware.RequireRole(service.RoleAdmin))
	{
		group.GET("", h.GetAuditLogs)
	}
}

// GetAuditLogs lists the audit trail, newest first
// @Summary      Get audit logs
// @Description  Every state-changing action is recorded with its actor. Scheduler actions carry no actor.
// @Tags         audit
// @Security     BearerAuth
// @Produce      json
// @Param        action       query     string  false  "Action, e.g. APPROVE_QUOTE"
// @Param        entity_type  query     string  false  "Entity type, e.g. contractor_quote"
// @Param        entity_id    query     string  false  "Entity ID"
// @Param        page         query     int     false  "Page number (default 1)"
// @Param        limit        query     int     false  "Number of items per page (default 20)"
// @Success      200          {object}  response.Response{data=response.Page}
// @Router       /api/admin/audit-logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	page := pagination.Parse(c)
	filter := repository.AuditFilter{
		Action:     c.Query("action"),
		EntityType: c.Query("entity_type"),
		EntityID:   c.Query("entity_id"),
	}

	logs, total, err := h.auditService.GetAuditLogs(c.Request.Context(), filter, page)
	if err != nil {
		respondError(c, err)
		return
	}
	paged(c, logs, total, page)
}
