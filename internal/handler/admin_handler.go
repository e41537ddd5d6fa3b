package handler

import (
	"net/http"
	"time"

	"solarquote/internal/middleware"
	"solarquote/internal/model"
	"solarquote/internal/repository"
	"solarquote/internal/service"
	"solarquote/pkg/pagination"
	"solarquote/pkg/response"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// AdminHandler serves the administrator review surface.
type AdminHandler struct {
	reviewService     service.AdminReviewService
	requestService    service.QuoteRequestService
	assignmentService service.AssignmentService
	configService     service.PricingConfigService
}

func NewAdminHandler(
	review service.AdminReviewService,
	requests service.QuoteRequestService,
	assignments service.AssignmentService,
	configs service.PricingConfigService,
) *AdminHandler {
	return &AdminHandler{
		reviewService:     review,
		requestService:    requests,
		assignmentService: assignments,
		configService:     configs,
	}
}

func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.RequireRole(service.RoleAdmin))
	{
		admin.GET("/dashboard", h.Dashboard)

		admin.GET("/quote-requests", h.ListRequests)
		admin.GET("/quote-requests/:id", h.RequestDetail)
		admin.POST("/quote-requests/:id/assign", h.AssignContractors)

		admin.GET("/quotes", h.ReviewQueue)
		admin.GET("/quotes/export", h.ExportQuotes)
		admin.GET("/quotes/:id", h.QuoteDetail)
		admin.POST("/quotes/:id/review", h.ReviewQuote)

		admin.GET("/pricing-config", h.GetPricingConfig)
		admin.PUT("/pricing-config", h.UpdatePricingConfig)
	}
}

// Dashboard returns marketplace counters
// @Summary      Admin dashboard
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=service.Dashboard}
// @Router       /api/admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	dash, err := h.reviewService.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, dash))
}

// ListRequests lists every quote request
// @Summary      List quote requests
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        user_id       query     string  false  "Requester ID"
// @Param        status        query     string  false  "Status"
// @Param        service_area  query     string  false  "Service area"
// @Param        page          query     int     false  "Page number (default 1)"
// @Param        limit         query     int     false  "Number of items per page (default 20)"
// @Success      200           {object}  response.Response{data=response.Page}
// @Router       /api/admin/quote-requests [get]
func (h *AdminHandler) ListRequests(c *gin.Context) {
	userID, ok := uuidQuery(c, "user_id")
	if !ok {
		return
	}
	page := pagination.Parse(c)
	filter := repository.QuoteRequestFilter{
		UserID:      userID,
		Status:      model.QuoteRequestStatus(c.Query("status")),
		ServiceArea: c.Query("service_area"),
	}

	items, total, err := h.requestService.List(c.Request.Context(), filter, page)
	if err != nil {
		respondError(c, err)
		return
	}
	paged(c, items, total, page)
}

// RequestDetail returns a request with its assignments, quotes and requester
// @Summary      Quote request detail
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Quote request ID"
// @Success      200  {object}  response.Response{data=service.RequestDetail}
// @Failure      404  {object}  response.Response
// @Router       /api/admin/quote-requests/{id} [get]
func (h *AdminHandler) RequestDetail(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	detail, err := h.reviewService.RequestDetail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, detail))
}

// AssignContractors replaces the contractor set of a request
// @Summary      Assign contractors
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Quote request ID"
// @Param        payload  body      service.AssignContractorsDTO  true  "Contractor ids"
// @Success      200      {object}  response.Response{data=[]model.ContractorAssignment}
// @Failure      409      {object}  response.Response
// @Router       /api/admin/quote-requests/{id}/assign [post]
func (h *AdminHandler) AssignContractors(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req service.AssignContractorsDTO
	if !bindJSON(c, &req) {
		return
	}

	assignments, err := h.assignmentService.AssignContractors(c.Request.Context(), actor(c).ID, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, assignments))
}

// ReviewQueue lists quotes awaiting review
// @Summary      Quote review queue
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        status  query     string  false  "pending (default), approved or rejected"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Number of items per page (default 20)"
// @Success      200     {object}  response.Response{data=response.Page}
// @Router       /api/admin/quotes [get]
func (h *AdminHandler) ReviewQueue(c *gin.Context) {
	page := pagination.Parse(c)

	items, total, err := h.reviewService.ReviewQueue(c.Request.Context(), model.AdminStatus(c.Query("status")), page)
	if err != nil {
		respondError(c, err)
		return
	}
	paged(c, items, total, page)
}

// ExportQuotes downloads quotes as a spreadsheet
// @Summary      Export quotes
// @Tags         admin
// @Security     BearerAuth
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        status         query  string  false  "Admin status"
// @Param        request_id     query  string  false  "Quote request ID"
// @Param        contractor_id  query  string  false  "Contractor ID"
// @Param        selected       query  bool    false  "Only selected quotes"
// @Success      200
// @Router       /api/admin/quotes/export [get]
func (h *AdminHandler) ExportQuotes(c *gin.Context) {
	requestID, ok := uuidQuery(c, "request_id")
	if !ok {
		return
	}
	contractorID, ok := uuidQuery(c, "contractor_id")
	if !ok {
		return
	}
	filter := repository.QuoteFilter{
		RequestID:    requestID,
		ContractorID: contractorID,
		AdminStatus:  model.AdminStatus(c.Query("status")),
		SelectedOnly: c.Query("selected") == "true",
	}

	data, err := h.reviewService.ExportQuotes(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	filename := "quotes_" + time.Now().Format("20060102_150405") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

// QuoteDetail returns everything needed to review a quote
// @Summary      Quote review detail
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Contractor quote ID"
// @Success      200  {object}  response.Response{data=service.QuoteReviewDetail}
// @Failure      404  {object}  response.Response
// @Router       /api/admin/quotes/{id} [get]
func (h *AdminHandler) QuoteDetail(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	detail, err := h.reviewService.QuoteDetail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, detail))
}

// ReviewQuote approves or rejects a pending quote
// @Summary      Review quote
// @Description  Approval recalculates the breakdown under the current pricing configuration.
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Contractor quote ID"
// @Param        payload  body      service.ReviewQuoteDTO  true  "Decision"
// @Success      200      {object}  response.Response{data=model.ContractorQuote}
// @Failure      409      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Router       /api/admin/quotes/{id}/review [post]
func (h *AdminHandler) ReviewQuote(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req service.ReviewQuoteDTO
	if !bindJSON(c, &req) {
		return
	}

	quote, err := h.reviewService.Review(c.Request.Context(), actor(c).ID, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, quote))
}

// GetPricingConfig returns the active pricing configuration
// @Summary      Get pricing config
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=model.PricingConfig}
// @Router       /api/admin/pricing-config [get]
func (h *AdminHandler) GetPricingConfig(c *gin.Context) {
	cfg, err := h.configService.Current(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, cfg))
}

// UpdatePricingConfig replaces the pricing configuration
// @Summary      Update pricing config
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.UpdatePricingConfigDTO  true  "Configuration"
// @Success      200      {object}  response.Response{data=model.PricingConfig}
// @Failure      422      {object}  response.Response
// @Router       /api/admin/pricing-config [put]
func (h *AdminHandler) UpdatePricingConfig(c *gin.Context) {
	var req service.UpdatePricingConfigDTO
	if !bindJSON(c, &req) {
		return
	}

	cfg, err := h.configService.Update(c.Request.Context(), actor(c).ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, cfg))
}
