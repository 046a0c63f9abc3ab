package handler

import (
	"net/http"

	authPlatform "github.com/pavlenko-transit/pickboard/internal/platform/auth"
	httpPlatform "github.com/pavlenko-transit/pickboard/internal/platform/http"
	"github.com/pavlenko-transit/pickboard/modules/periods/model"
	"github.com/pavlenko-transit/pickboard/modules/periods/ports"
	"github.com/pavlenko-transit/pickboard/modules/periods/service"
	"github.com/gin-gonic/gin"
)

// PeriodHandler handles selection-period HTTP requests.
type PeriodHandler struct {
	service *service.PeriodService
}

// NewPeriodHandler creates a new period handler.
func NewPeriodHandler(service *service.PeriodService) *PeriodHandler {
	return &PeriodHandler{service: service}
}

// Create godoc
// @Summary Create a selection period
// @Tags periods
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body model.CreatePeriodRequest true "Period details"
// @Success 201 {object} model.PeriodDTO
// @Router /periods [post]
func (h *PeriodHandler) Create(c *gin.Context) {
	var req model.CreatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpPlatform.RespondWithError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request payload")
		return
	}
	userID, ok := authPlatform.MustGetUserID(c)
	if !ok {
		return
	}

	period, err := h.service.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	httpPlatform.RespondWithData(c, http.StatusCreated, period)
}

// Get godoc
// @Summary Get a selection period
// @Tags periods
// @Security BearerAuth
// @Produce json
// @Param id path string true "Period ID"
// @Success 200 {object} model.PeriodDTO
// @Router /periods/{id} [get]
func (h *PeriodHandler) Get(c *gin.Context) {
	period, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	httpPlatform.RespondWithData(c, http.StatusOK, period)
}

// List godoc
// @Summary List selection periods
// @Tags periods
// @Security BearerAuth
// @Produce json
// @Param terminal_id query string false "Terminal ID filter"
// @Param status query string false "Status filter"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} httpPlatform.PaginatedResponse{items=[]model.PeriodDTO}
// @Router /periods [get]
func (h *PeriodHandler) List(c *gin.Context) {
	pagination, err := httpPlatform.ParsePaginationParams(c)
	if err != nil {
		httpPlatform.RespondWithError(c, http.StatusBadRequest, "INVALID_PAGINATION_PARAMS", "Invalid pagination parameters")
		return
	}

	opts := &ports.ListOptions{
		TerminalID: c.Query("terminal_id"),
		Status:     model.Status(c.Query("status")),
		Limit:      pagination.Limit,
		Offset:     pagination.Offset,
	}

	periods, total, err := h.service.List(c.Request.Context(), opts)
	if err != nil {
		httpPlatform.RespondWithError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list periods")
		return
	}
	httpPlatform.RespondWithPagination(c, http.StatusOK, periods, pagination.Limit, pagination.Offset, total)
}

// Open godoc
// @Summary Open a selection period for submissions
// @Tags periods
// @Security BearerAuth
// @Produce json
// @Param id path string true "Period ID"
// @Success 200 {object} model.PeriodDTO
// @Router /periods/{id}/open [post]
func (h *PeriodHandler) Open(c *gin.Context) {
	userID, ok := authPlatform.MustGetUserID(c)
	if !ok {
		return
	}
	period, err := h.service.Open(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	httpPlatform.RespondWithData(c, http.StatusOK, period)
}

// Close godoc
// @Summary Close a selection period's submission window
// @Tags periods
// @Security BearerAuth
// @Produce json
// @Param id path string true "Period ID"
// @Success 200 {object} model.PeriodDTO
// @Router /periods/{id}/close [post]
func (h *PeriodHandler) Close(c *gin.Context) {
	userID, ok := authPlatform.MustGetUserID(c)
	if !ok {
		return
	}
	period, err := h.service.Close(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	httpPlatform.RespondWithData(c, http.StatusOK, period)
}

// Edit godoc
// @Summary Edit a selection period's name, description, or route catalog
// @Tags periods
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Period ID"
// @Param request body model.UpdatePeriodRequest true "Fields to update"
// @Success 200 {object} model.PeriodDTO
// @Router /periods/{id} [patch]
func (h *PeriodHandler) Edit(c *gin.Context) {
	var req model.UpdatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpPlatform.RespondWithError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request payload")
		return
	}
	userID, ok := authPlatform.MustGetUserID(c)
	if !ok {
		return
	}
	period, err := h.service.Edit(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	httpPlatform.RespondWithData(c, http.StatusOK, period)
}

// Delete godoc
// @Summary Delete a selection period
// @Tags periods
// @Security BearerAuth
// @Produce json
// @Param id path string true "Period ID"
// @Success 200 {object} map[string]string
// @Router /periods/{id} [delete]
func (h *PeriodHandler) Delete(c *gin.Context) {
	userID, ok := authPlatform.MustGetUserID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	httpPlatform.RespondWithData(c, http.StatusOK, gin.H{"message": "Period deleted successfully"})
}

func (h *PeriodHandler) respondError(c *gin.Context, err error) {
	code := model.GetErrorCode(err)
	message := model.GetErrorMessage(err)

	status := http.StatusInternalServerError
	switch code {
	case model.CodePeriodNotFound:
		status = http.StatusNotFound
	case model.CodePeriodNameRequired, model.CodeInvalidDateRange, model.CodeEmptyRouteCatalog,
		model.CodeInvalidRequiredSelections, model.CodeInvalidTransition, model.CodeHasAssignments:
		status = http.StatusBadRequest
	case model.CodeForbidden:
		status = http.StatusForbidden
	}

	httpPlatform.RespondWithError(c, status, string(code), message)
}

// RegisterRoutes registers period routes. Create and delete require
// ADMIN; edit, open and close accept ADMIN or MANAGER. This module
// enforces only the role, not per-terminal management scope.
func (h *PeriodHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	periods := router.Group("/periods")
	periods.Use(authMiddleware)
	{
		periods.GET("", h.List)
		periods.GET("/:id", h.Get)
		periods.POST("", authPlatform.RequireRole(authPlatform.RoleAdmin), h.Create)
		periods.PATCH("/:id", authPlatform.RequireRole(authPlatform.RoleAdmin, authPlatform.RoleManager), h.Edit)
		periods.POST("/:id/open", authPlatform.RequireRole(authPlatform.RoleAdmin, authPlatform.RoleManager), h.Open)
		periods.POST("/:id/close", authPlatform.RequireRole(authPlatform.RoleAdmin, authPlatform.RoleManager), h.Close)
		periods.DELETE("/:id", authPlatform.RequireRole(authPlatform.RoleAdmin), h.Delete)
	}
}
