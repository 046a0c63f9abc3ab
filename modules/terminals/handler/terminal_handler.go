package handler

import (
	"net/http"

	authPlatform "github.com/pavlenko-transit/pickboard/internal/platform/auth"
	httpPlatform "github.com/pavlenko-transit/pickboard/internal/platform/http"
	"github.com/pavlenko-transit/pickboard/modules/terminals/model"
	"github.com/pavlenko-transit/pickboard/modules/terminals/ports"
	"github.com/pavlenko-transit/pickboard/modules/terminals/service"
	"github.com/gin-gonic/gin"
)

// TerminalHandler handles terminal HTTP requests
type TerminalHandler struct {
	service *service.TerminalService
}

// NewTerminalHandler creates a new terminal handler
func NewTerminalHandler(service *service.TerminalService) *TerminalHandler {
	return &TerminalHandler{service: service}
}

// Create godoc
// @Summary Create a new terminal
// @Description Create a new transportation terminal (admin only)
// @Tags terminals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body model.CreateTerminalRequest true "Terminal details"
// @Success 201 {object} model.TerminalDTO
// @Failure 400 {object} httpPlatform.ErrorResponse
// @Failure 401 {object} httpPlatform.ErrorResponse
// @Failure 403 {object} httpPlatform.ErrorResponse
// @Router /terminals [post]
func (h *TerminalHandler) Create(c *gin.Context) {
	var req model.CreateTerminalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpPlatform.RespondWithError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request payload")
		return
	}

	terminal, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	httpPlatform.RespondWithData(c, http.StatusCreated, terminal)
}

// Get godoc
// @Summary Get a terminal
// @Tags terminals
// @Security BearerAuth
// @Produce json
// @Param id path string true "Terminal ID"
// @Success 200 {object} model.TerminalDTO
// @Failure 404 {object} httpPlatform.ErrorResponse
// @Router /terminals/{id} [get]
func (h *TerminalHandler) Get(c *gin.Context) {
	terminal, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	httpPlatform.RespondWithData(c, http.StatusOK, terminal)
}

// List godoc
// @Summary List terminals
// @Tags terminals
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Param active_only query bool false "Only active terminals"
// @Success 200 {object} httpPlatform.PaginatedResponse{items=[]model.TerminalDTO}
// @Router /terminals [get]
func (h *TerminalHandler) List(c *gin.Context) {
	pagination, err := httpPlatform.ParsePaginationParams(c)
	if err != nil {
		httpPlatform.RespondWithError(c, http.StatusBadRequest, "INVALID_PAGINATION_PARAMS", "Invalid pagination parameters")
		return
	}

	opts := &ports.ListOptions{
		Limit:      pagination.Limit,
		Offset:     pagination.Offset,
		ActiveOnly: c.Query("active_only") == "true",
	}

	terminals, total, err := h.service.List(c.Request.Context(), opts)
	if err != nil {
		httpPlatform.RespondWithError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list terminals")
		return
	}

	httpPlatform.RespondWithPagination(c, http.StatusOK, terminals, pagination.Limit, pagination.Offset, total)
}

// Update godoc
// @Summary Update a terminal
// @Tags terminals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Terminal ID"
// @Param request body model.UpdateTerminalRequest true "Updated terminal details"
// @Success 200 {object} model.TerminalDTO
// @Failure 404 {object} httpPlatform.ErrorResponse
// @Router /terminals/{id} [patch]
func (h *TerminalHandler) Update(c *gin.Context) {
	var req model.UpdateTerminalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpPlatform.RespondWithError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request payload")
		return
	}

	terminal, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	httpPlatform.RespondWithData(c, http.StatusOK, terminal)
}

// Delete godoc
// @Summary Delete a terminal
// @Tags terminals
// @Security BearerAuth
// @Produce json
// @Param id path string true "Terminal ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} httpPlatform.ErrorResponse
// @Router /terminals/{id} [delete]
func (h *TerminalHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	httpPlatform.RespondWithData(c, http.StatusOK, gin.H{"message": "Terminal deleted successfully"})
}

func (h *TerminalHandler) respondError(c *gin.Context, err error) {
	code := model.GetErrorCode(err)
	message := model.GetErrorMessage(err)

	status := http.StatusInternalServerError
	switch code {
	case model.CodeTerminalNotFound:
		status = http.StatusNotFound
	case model.CodeTerminalCodeRequired, model.CodeTerminalNameRequired, model.CodeTerminalCodeTaken:
		status = http.StatusBadRequest
	}

	httpPlatform.RespondWithError(c, status, string(code), message)
}

// RegisterRoutes registers terminal routes. Create/Update/Delete are
// admin-only per the RBAC matrix; reads are open to any authenticated
// principal.
func (h *TerminalHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	terminals := router.Group("/terminals")
	terminals.Use(authMiddleware)
	{
		terminals.GET("", h.List)
		terminals.GET("/:id", h.Get)
		terminals.POST("", authPlatform.RequireRole(authPlatform.RoleAdmin), h.Create)
		terminals.PATCH("/:id", authPlatform.RequireRole(authPlatform.RoleAdmin), h.Update)
		terminals.DELETE("/:id", authPlatform.RequireRole(authPlatform.RoleAdmin), h.Delete)
	}
}
