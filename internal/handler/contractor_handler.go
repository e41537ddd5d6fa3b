package handler

import (
	"net/http"

	"solarquote/internal/middleware"
	"solarquote/internal/model"
	"solarquote/internal/service"
	"solarquote/pkg/pagination"
	"solarquote/pkg/response"

	"github.com/gin-gonic/gin"
)

// ContractorHandler serves assignment responses and bidding.
type ContractorHandler struct {
	assignmentService service.AssignmentService
	quoteService      service.ContractorQuoteService
}

func NewContractorHandler(assignments service.AssignmentService, quotes service.ContractorQuoteService) *ContractorHandler {
	return &ContractorHandler{assignmentService: assignments, quoteService: quotes}
}

func (h *ContractorHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/api/contractor")
	group.Use(middleware.RequireRole(service.RoleContractor))
	{
		group.GET("/assignments", h.ListAssignments)
		group.POST("/assignments/:requestId/view", h.MarkViewed)
		group.POST("/assignments/:requestId/respond", h.Respond)
		group.POST("/quotes", h.SubmitQuote)
		group.GET("/quotes", h.ListQuotes)
		group.GET("/quotes/:id", h.GetQuote)
		group.POST("/pricing/preview", h.PreviewPricing)
	}
}

// ListAssignments lists the caller's assignments
// @Summary      List my assignments
// @Tags         contractor
// @Security     BearerAuth
// @Produce      json
// @Param        status  query     string  false  "assigned, viewed, accepted or rejected"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Number of items per page (default 20)"
// @Success      200     {object}  response.Response{data=response.Page}
// @Router       /api/contractor/assignments [get]
func (h *ContractorHandler) ListAssignments(c *gin.Context) {
	page := pagination.Parse(c)
	status := model.AssignmentStatus(c.Query("status"))

	items, total, err := h.assignmentService.ListForContractor(c.Request.Context(), actor(c).ID, status, page)
	if err != nil {
		respondError(c, err)
		return
	}
	paged(c, items, total, page)
}

// MarkViewed records that the contractor opened an assignment
// @Summary      Mark assignment viewed
// @Tags         contractor
// @Security     BearerAuth
// @Produce      json
// @Param        requestId  path      string  true  "Quote request ID"
// @Success      200        {object}  response.Response{data=model.ContractorAssignment}
// @Failure      404        {object}  response.Response
// @Router       /api/contractor/assignments/{requestId}/view [post]
func (h *ContractorHandler) MarkViewed(c *gin.Context) {
	requestID, ok := uuidParam(c, "requestId")
	if !ok {
		return
	}

	assignment, err := h.assignmentService.MarkViewed(c.Request.Context(), actor(c).ID, requestID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, assignment))
}

// Respond accepts or rejects an assignment
// @Summary      Respond to assignment
// @Tags         contractor
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        requestId  path      string                        true  "Quote request ID"
// @Param        payload    body      service.RespondAssignmentDTO  true  "accept or reject"
// @Success      200        {object}  response.Response{data=model.ContractorAssignment}
// @Failure      422        {object}  response.Response
// @Router       /api/contractor/assignments/{requestId}/respond [post]
func (h *ContractorHandler) Respond(c *gin.Context) {
	requestID, ok := uuidParam(c, "requestId")
	if !ok {
		return
	}
	var req service.RespondAssignmentDTO
	if !bindJSON(c, &req) {
		return
	}

	assignment, err := h.assignmentService.RespondToAssignment(c.Request.Context(), actor(c).ID, requestID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, assignment))
}

// SubmitQuote places the caller's bid on a request
// @Summary      Submit quote
// @Description  Prices are validated and broken down against the active pricing configuration.
// @Tags         contractor
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.SubmitQuoteDTO  true  "Quote"
// @Success      201      {object}  response.Response{data=model.ContractorQuote}
// @Failure      409      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Router       /api/contractor/quotes [post]
func (h *ContractorHandler) SubmitQuote(c *gin.Context) {
	var req service.SubmitQuoteDTO
	if !bindJSON(c, &req) {
		return
	}

	quote, err := h.quoteService.Submit(c.Request.Context(), actor(c).ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, quote))
}

// ListQuotes lists the caller's quotes
// @Summary      List my quotes
// @Tags         contractor
// @Security     BearerAuth
// @Produce      json
// @Param        status  query     string  false  "pending, approved or rejected"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Number of items per page (default 20)"
// @Success      200     {object}  response.Response{data=response.Page}
// @Router       /api/contractor/quotes [get]
func (h *ContractorHandler) ListQuotes(c *gin.Context) {
	page := pagination.Parse(c)
	status := model.AdminStatus(c.Query("status"))

	items, total, err := h.quoteService.ListForContractor(c.Request.Context(), actor(c).ID, status, page)
	if err != nil {
		respondError(c, err)
		return
	}
	paged(c, items, total, page)
}

// GetQuote returns one of the caller's quotes with its line items
// @Summary      Get my quote
// @Tags         contractor
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Contractor quote ID"
// @Success      200  {object}  response.Response{data=model.ContractorQuote}
// @Failure      403  {object}  response.Response
// @Router       /api/contractor/quotes/{id} [get]
func (h *ContractorHandler) GetQuote(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	quote, err := h.quoteService.Get(c.Request.Context(), actor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, quote))
}

// PreviewPricing shows the breakdown a bid would get without storing anything
// @Summary      Preview pricing
// @Tags         contractor
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.PreviewPricingDTO  true  "Prices"
// @Success      200      {object}  response.Response{data=pricing.FinancialBreakdown}
// @Failure      422      {object}  response.Response
// @Router       /api/contractor/pricing/preview [post]
func (h *ContractorHandler) PreviewPricing(c *gin.Context) {
	var req service.PreviewPricingDTO
	if !bindJSON(c, &req) {
		return
	}

	breakdown, err := h.quoteService.Preview(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, breakdown))
}
