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

// QuoteRequestHandler serves the requester side of the marketplace.
type QuoteRequestHandler struct {
	requestService    service.QuoteRequestService
	assignmentService service.AssignmentService
	quoteService      service.ContractorQuoteService
}

func NewQuoteRequestHandler(requests service.QuoteRequestService, assignments service.AssignmentService, quotes service.ContractorQuoteService) *QuoteRequestHandler {
	return &QuoteRequestHandler{requestService: requests, assignmentService: assignments, quoteService: quotes}
}

func (h *QuoteRequestHandler) RegisterRoutes(router *gin.RouterGroup) {
	user := middleware.RequireRole(service.RoleUser)
	anyRole := middleware.RequireRole(service.RoleUser, service.RoleContractor, service.RoleAdmin)

	requests := router.Group("/api/quote-requests")
	{
		requests.POST("", user, h.Create)
		requests.GET("/mine", user, h.ListMine)
		requests.GET("/:id", anyRole, h.Get)
		requests.POST("/:id/cancel", user, h.Cancel)
		requests.POST("/:id/invite", user, h.Invite)
		requests.GET("/:id/quotes", user, h.ListQuotes)
		requests.POST("/:id/compare", user, h.Compare)
	}
	router.POST("/api/contractor-quotes/:id/select", user, h.SelectQuote)
}

// Create opens a new quote request for the caller
// @Summary      Create quote request
// @Description  Opens a quote request for a solar installation. System size must lie within the configured bounds.
// @Tags         quote-requests
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateQuoteRequestDTO  true  "Quote request"
// @Success      201      {object}  response.Response{data=model.QuoteRequest}
// @Failure      400      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Router       /api/quote-requests [post]
func (h *QuoteRequestHandler) Create(c *gin.Context) {
	var req service.CreateQuoteRequestDTO
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.requestService.Create(c.Request.Context(), actor(c).ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, created))
}

// ListMine lists the caller's quote requests
// @Summary      List my quote requests
// @Tags         quote-requests
// @Security     BearerAuth
// @Produce      json
// @Param        status  query     string  false  "Filter by status"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Number of items per page (default 20)"
// @Success      200     {object}  response.Response{data=response.Page}
// @Router       /api/quote-requests/mine [get]
func (h *QuoteRequestHandler) ListMine(c *gin.Context) {
	page := pagination.Parse(c)
	status := model.QuoteRequestStatus(c.Query("status"))

	items, total, err := h.requestService.ListMine(c.Request.Context(), actor(c).ID, status, page)
	if err != nil {
		respondError(c, err)
		return
	}
	paged(c, items, total, page)
}

// Get returns a quote request visible to the caller
// @Summary      Get quote request
// @Description  Owners, assigned contractors and admins may read a request.
// @Tags         quote-requests
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Quote request ID"
// @Success      200  {object}  response.Response{data=model.QuoteRequest}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/quote-requests/{id} [get]
func (h *QuoteRequestHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	req, err := h.requestService.Get(c.Request.Context(), actor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, req))
}

// Cancel withdraws a quote request
// @Summary      Cancel quote request
// @Tags         quote-requests
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                         true  "Quote request ID"
// @Param        payload  body      service.CancelQuoteRequestDTO  false  "Cancellation reason"
// @Success      200      {object}  response.Response{data=model.QuoteRequest}
// @Failure      409      {object}  response.Response
// @Router       /api/quote-requests/{id}/cancel [post]
func (h *QuoteRequestHandler) Cancel(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req service.CancelQuoteRequestDTO
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}

	cancelled, err := h.requestService.Cancel(c.Request.Context(), actor(c).ID, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, cancelled))
}

// Invite lets the requester pick the contractors allowed to bid
// @Summary      Invite contractors
// @Description  Replaces the contractor set of the request and moves it to contractors_selected.
// @Tags         quote-requests
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Quote request ID"
// @Param        payload  body      service.AssignContractorsDTO  true  "Contractor ids"
// @Success      200      {object}  response.Response{data=[]model.ContractorAssignment}
// @Failure      409      {object}  response.Response
// @Router       /api/quote-requests/{id}/invite [post]
func (h *QuoteRequestHandler) Invite(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req service.AssignContractorsDTO
	if !bindJSON(c, &req) {
		return
	}

	assignments, err := h.assignmentService.InviteContractors(c.Request.Context(), actor(c).ID, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, assignments))
}

// ListQuotes lists the approved quotes of the caller's request
// @Summary      List request quotes
// @Tags         quote-requests
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Quote request ID"
// @Success      200  {object}  response.Response{data=[]model.ContractorQuote}
// @Router       /api/quote-requests/{id}/quotes [get]
func (h *QuoteRequestHandler) ListQuotes(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	quotes, err := h.quoteService.ListForRequest(c.Request.Context(), actor(c).ID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, quotes))
}

// Compare summarizes two or more approved quotes side by side
// @Summary      Compare quotes
// @Tags         quote-requests
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Quote request ID"
// @Param        payload  body      service.CompareQuotesDTO  true  "Quote ids"
// @Success      200      {object}  response.Response{data=service.ComparisonResult}
// @Failure      422      {object}  response.Response
// @Router       /api/quote-requests/{id}/compare [post]
func (h *QuoteRequestHandler) Compare(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req service.CompareQuotesDTO
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.quoteService.Compare(c.Request.Context(), actor(c).ID, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// SelectQuote picks the winning quote and closes the request
// @Summary      Select quote
// @Tags         quote-requests
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true   "Contractor quote ID"
// @Param        payload  body      service.SelectQuoteDTO  false  "Selection reason"
// @Success      200      {object}  response.Response{data=model.ContractorQuote}
// @Failure      409      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Router       /api/contractor-quotes/{id}/select [post]
func (h *QuoteRequestHandler) SelectQuote(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req service.SelectQuoteDTO
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}

	quote, err := h.quoteService.Select(c.Request.Context(), actor(c).ID, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, quote))
}
