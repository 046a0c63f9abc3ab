package handler

import (
	"net/http"

	authPlatform "github.com/pavlenko-transit/pickboard/internal/platform/auth"
	httpPlatform "github.com/pavlenko-transit/pickboard/internal/platform/http"
	"github.com/pavlenko-transit/pickboard/modules/routes/model"
	"github.com/pavlenko-transit/pickboard/modules/routes/ports"
	"github.com/pavlenko-transit/pickboard/modules/routes/service"
	"github.com/gin-gonic/gin"
)

// RouteHandler handles route HTTP requests
type RouteHandler struct {
	service *service.RouteService
}

// NewRouteHandler creates a new route handler
func NewRouteHandler(service *service.RouteService) *RouteHandler {
	return &RouteHandler{service: service}
}

// Create godoc
// @Summary Create a new route
// @Description Create a new run in a terminal's catalog (admin/manager only)
// @Tags routes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body model.CreateRouteRequest true "Route details"
// @Success 201 {object} model.RouteDTO
// @Failure 400 {object} httpPlatform.ErrorResponse
// @Router /routes [post]
func (h *RouteHandler) Create(c *gin.Context) {
	var req model.CreateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpPlatform.RespondWithError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request payload")
		return
	}

	route, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	httpPlatform.RespondWithData(c, http.StatusCreated, route)
}

// Get godoc
// @Summary Get a route
// @Tags routes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Route ID"
// @Success 200 {object} model.RouteDTO
// @Failure 404 {object} httpPlatform.ErrorResponse
// @Router /routes/{id} [get]
func (h *RouteHandler) Get(c *gin.Context) {
	route, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	httpPlatform.RespondWithData(c, http.StatusOK, route)
}

// List godoc
// @Summary List routes
// @Tags routes
// @Security BearerAuth
// @Produce json
// @Param terminal_id query string false "Terminal ID filter"
// @Param active_only query bool false "Only active routes"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} httpPlatform.PaginatedResponse{items=[]model.RouteDTO}
// @Router /routes [get]
func (h *RouteHandler) List(c *gin.Context) {
	pagination, err := httpPlatform.ParsePaginationParams(c)
	if err != nil {
		httpPlatform.RespondWithError(c, http.StatusBadRequest, "INVALID_PAGINATION_PARAMS", "Invalid pagination parameters")
		return
	}

	opts := &ports.ListOptions{
		TerminalID: c.Query("terminal_id"),
		ActiveOnly: c.Query("active_only") == "true",
		Limit:      pagination.Limit,
		Offset:     pagination.Offset,
	}

	routes, total, err := h.service.List(c.Request.Context(), opts)
	if err != nil {
		httpPlatform.RespondWithError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list routes")
		return
	}

	httpPlatform.RespondWithPagination(c, http.StatusOK, routes, pagination.Limit, pagination.Offset, total)
}

// Update godoc
// @Summary Update a route
// @Tags routes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Route ID"
// @Param request body model.UpdateRouteRequest true "Updated route details"
// @Success 200 {object} model.RouteDTO
// @Failure 404 {object} httpPlatform.ErrorResponse
// @Router /routes/{id} [patch]
func (h *RouteHandler) Update(c *gin.Context) {
	var req model.UpdateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpPlatform.RespondWithError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request payload")
		return
	}

	route, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	httpPlatform.RespondWithData(c, http.StatusOK, route)
}

// Delete godoc
// @Summary Delete a route
// @Tags routes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Route ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} httpPlatform.ErrorResponse
// @Router /routes/{id} [delete]
func (h *RouteHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	httpPlatform.RespondWithData(c, http.StatusOK, gin.H{"message": "Route deleted successfully"})
}

func (h *RouteHandler) respondError(c *gin.Context, err error) {
	code := model.GetErrorCode(err)
	message := model.GetErrorMessage(err)

	status := http.StatusInternalServerError
	switch code {
	case model.CodeRouteNotFound:
		status = http.StatusNotFound
	case model.CodeRouteRunNumberRequired, model.CodeRouteTerminalRequired,
		model.CodeInvalidRouteType, model.CodeInvalidRateType,
		model.CodeDoublesRequiresEndorsement, model.CodeRunNumberTaken:
		status = http.StatusBadRequest
	}

	httpPlatform.RespondWithError(c, status, string(code), message)
}

// RegisterRoutes registers route routes. Create and update require
// ADMIN or MANAGER, delete requires ADMIN; reads are open to any
// authenticated principal.
func (h *RouteHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	routes := router.Group("/routes")
	routes.Use(authMiddleware)
	{
		routes.GET("", h.List)
		routes.GET("/:id", h.Get)
		routes.POST("", authPlatform.RequireRole(authPlatform.RoleAdmin, authPlatform.RoleManager), h.Create)
		routes.PATCH("/:id", authPlatform.RequireRole(authPlatform.RoleAdmin, authPlatform.RoleManager), h.Update)
		routes.DELETE("/:id", authPlatform.RequireRole(authPlatform.RoleAdmin), h.Delete)
	}
}
