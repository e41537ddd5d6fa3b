package handler

import (
	"context"
	"net/http"
	"strconv"

	"solarquote/internal/middleware"
	"solarquote/internal/model"
	"solarquote/internal/repository"
	"solarquote/internal/service"
	"solarquote/pkg/pagination"
	"solarquote/pkg/response"

	"github.com/gin-gonic/gin"
)

// PenaltyJobs runs the scheduled penalty jobs on demand.
type PenaltyJobs interface {
	RunDaily(ctx context.Context) (service.DailyRunResult, error)
	RunHourly(ctx context.Context) (service.HourlyRunResult, error)
}

type PenaltyHandler struct {
	penaltyService service.PenaltyService
	jobs           PenaltyJobs
}

func NewPenaltyHandler(penalties service.PenaltyService, jobs PenaltyJobs) *PenaltyHandler {
	return &PenaltyHandler{penaltyService: penalties, jobs: jobs}
}

func (h *PenaltyHandler) RegisterRoutes(router *gin.RouterGroup) {
	contractor := router.Group("/api/contractor/penalties")
	contractor.Use(middleware.RequireRole(service.RoleContractor))
	{
		contractor.GET("", h.ListMine)
		contractor.GET("/:id", h.Get)
		contractor.POST("/:id/dispute", h.Dispute)
	}

	admin := router.Group("/api/admin")
	admin.Use(middleware.RequireRole(service.RoleAdmin))
	{
		admin.GET("/penalties", h.List)
		admin.GET("/penalties/:id", h.Get)
		admin.POST("/penalties", h.Apply)
		admin.POST("/penalties/:id/waive", h.Waive)
		admin.POST("/penalties/retry-debits", h.RetryDebits)

		admin.GET("/penalty-rules", h.ListRules)
		admin.POST("/penalty-rules", h.CreateRule)
		admin.PUT("/penalty-rules/:id", h.UpdateRule)

		admin.POST("/scheduler/daily", h.RunDaily)
		admin.POST("/scheduler/hourly", h.RunHourly)
	}
}

// ListMine lists penalties levied against the caller
// @Summary      List my penalties
// @Tags         penalties
// @Security     BearerAuth
// @Produce      json
// @Param        status  query     string  false  "Filter by status"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Number of items per page (default 20)"
// @Success      200     {object}  response.Response{data=response.Page}
// @Router       /api/contractor/penalties [get]
func (h *PenaltyHandler) ListMine(c *gin.Context) {
	page := pagination.Parse(c)
	contractorID := actor(c).ID
	filter := repository.PenaltyFilter{
		ContractorID: &contractorID,
		Status:       model.PenaltyStatus(c.Query("status")),
	}

	items, total, err := h.penaltyService.List(c.Request.Context(), filter, page)
	if err != nil {
		respondError(c, err)
		return
	}
	paged(c, items, total, page)
}

// Get returns a penalty. Contractors only see their own.
// @Summary      Get penalty
// @Tags         penalties
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Penalty ID"
// @Success      200  {object}  response.Response{data=model.PenaltyInstance}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/admin/penalties/{id} [get]
// @Router       /api/contractor/penalties/{id} [get]
func (h *PenaltyHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	penalty, err := h.penaltyService.Get(c.Request.Context(), actor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, penalty))
}

// Dispute contests an applied penalty
// @Summary      Dispute penalty
// @Tags         penalties
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true  "Penalty ID"
// @Param        payload  body      service.DisputePenaltyDTO  true  "Reason"
// @Success      200      {object}  response.Response{data=model.PenaltyInstance}
// @Failure      409      {object}  response.Response
// @Router       /api/contractor/penalties/{id}/dispute [post]
func (h *PenaltyHandler) Dispute(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req service.DisputePenaltyDTO
	if !bindJSON(c, &req) {
		return
	}

	penalty, err := h.penaltyService.Dispute(c.Request.Context(), actor(c).ID, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, penalty))
}

// List filters every penalty
// @Summary      List penalties
// @Tags         penalties
// @Security     BearerAuth
// @Produce      json
// @Param        contractor_id  query     string  false  "Contractor ID"
// @Param        quote_id       query     string  false  "Quote ID"
// @Param        status         query     string  false  "Status"
// @Param        penalty_type   query     string  false  "Penalty type"
// @Param        page           query     int     false  "Page number (default 1)"
// @Param        limit          query     int     false  "Number of items per page (default 20)"
// @Success      200            {object}  response.Response{data=response.Page}
// @Router       /api/admin/penalties [get]
func (h *PenaltyHandler) List(c *gin.Context) {
	contractorID, ok := uuidQuery(c, "contractor_id")
	if !ok {
		return
	}
	quoteID, ok := uuidQuery(c, "quote_id")
	if !ok {
		return
	}
	page := pagination.Parse(c)
	filter := repository.PenaltyFilter{
		ContractorID: contractorID,
		QuoteID:      quoteID,
		Status:       model.PenaltyStatus(c.Query("status")),
		PenaltyType:  model.PenaltyType(c.Query("penalty_type")),
	}

	items, total, err := h.penaltyService.List(c.Request.Context(), filter, page)
	if err != nil {
		respondError(c, err)
		return
	}
	paged(c, items, total, page)
}

// Apply levies a penalty manually
// @Summary      Apply penalty
// @Description  Creates the penalty and attempts the wallet debit. A failed debit leaves it pending.
// @Tags         penalties
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.ApplyPenaltyDTO  true  "Penalty"
// @Success      201      {object}  response.Response{data=model.PenaltyInstance}
// @Failure      409      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Router       /api/admin/penalties [post]
func (h *PenaltyHandler) Apply(c *gin.Context) {
	var req service.ApplyPenaltyDTO
	if !bindJSON(c, &req) {
		return
	}
	adminID := actor(c).ID
	req.AppliedBy = &adminID
	req.Automatic = false

	penalty, err := h.penaltyService.Apply(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, penalty))
}

// Waive cancels a pending or disputed penalty
// @Summary      Waive penalty
// @Tags         penalties
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                   true  "Penalty ID"
// @Param        payload  body      service.WaivePenaltyDTO  true  "Reason"
// @Success      200      {object}  response.Response{data=model.PenaltyInstance}
// @Failure      409      {object}  response.Response
// @Router       /api/admin/penalties/{id}/waive [post]
func (h *PenaltyHandler) Waive(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req service.WaivePenaltyDTO
	if !bindJSON(c, &req) {
		return
	}

	penalty, err := h.penaltyService.Waive(c.Request.Context(), actor(c).ID, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, penalty))
}

// RetryDebits re-attempts wallet debits of pending penalties
// @Summary      Retry pending debits
// @Tags         penalties
// @Security     BearerAuth
// @Produce      json
// @Param        limit  query     int  false  "Maximum penalties to retry (default 100)"
// @Success      200    {object}  response.Response{data=service.DebitRetryResult}
// @Router       /api/admin/penalties/retry-debits [post]
func (h *PenaltyHandler) RetryDebits(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 1 {
		badRequest(c, "Invalid limit")
		return
	}

	result, err := h.penaltyService.RetryPendingDebits(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// ListRules lists penalty rules
// @Summary      List penalty rules
// @Tags         penalty-rules
// @Security     BearerAuth
// @Produce      json
// @Param        penalty_type  query     string  false  "Penalty type"
// @Param        active        query     bool    false  "Only active rules"
// @Success      200           {object}  response.Response{data=[]model.PenaltyRule}
// @Router       /api/admin/penalty-rules [get]
func (h *PenaltyHandler) ListRules(c *gin.Context) {
	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("active", "false"))

	rules, err := h.penaltyService.ListRules(c.Request.Context(), model.PenaltyType(c.Query("penalty_type")), activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, rules))
}

// CreateRule adds a penalty rule
// @Summary      Create penalty rule
// @Tags         penalty-rules
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreatePenaltyRuleDTO  true  "Rule"
// @Success      201      {object}  response.Response{data=model.PenaltyRule}
// @Failure      422      {object}  response.Response
// @Router       /api/admin/penalty-rules [post]
func (h *PenaltyHandler) CreateRule(c *gin.Context) {
	var req service.CreatePenaltyRuleDTO
	if !bindJSON(c, &req) {
		return
	}

	rule, err := h.penaltyService.CreateRule(c.Request.Context(), actor(c).ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, rule))
}

// UpdateRule edits or deactivates a penalty rule
// @Summary      Update penalty rule
// @Tags         penalty-rules
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Rule ID"
// @Param        payload  body      service.UpdatePenaltyRuleDTO  true  "Changes"
// @Success      200      {object}  response.Response{data=model.PenaltyRule}
// @Failure      404      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Router       /api/admin/penalty-rules/{id} [put]
func (h *PenaltyHandler) UpdateRule(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req service.UpdatePenaltyRuleDTO
	if !bindJSON(c, &req) {
		return
	}

	rule, err := h.penaltyService.UpdateRule(c.Request.Context(), actor(c).ID, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, rule))
}

// RunDaily triggers the daily SLA job now
// @Summary      Run daily penalty job
// @Tags         scheduler
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=service.DailyRunResult}
// @Router       /api/admin/scheduler/daily [post]
func (h *PenaltyHandler) RunDaily(c *gin.Context) {
	result, err := h.jobs.RunDaily(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// RunHourly triggers the hourly SLA scan now
// @Summary      Run hourly SLA scan
// @Tags         scheduler
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=service.HourlyRunResult}
// @Router       /api/admin/scheduler/hourly [post]
func (h *PenaltyHandler) RunHourly(c *gin.Context) {
	result, err := h.jobs.RunHourly(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}
