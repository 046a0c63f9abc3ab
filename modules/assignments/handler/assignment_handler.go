package handler

import (
	"net/http"

	authPlatform "github.com/pavlenko-transit/pickboard/internal/platform/auth"
	httpPlatform "github.com/pavlenko-transit/pickboard/internal/platform/http"
	"github.com/pavlenko-transit/pickboard/modules/assignments/model"
	"github.com/pavlenko-transit/pickboard/modules/assignments/service"
	"github.com/gin-gonic/gin"
)

// AssignmentHandler handles assignment HTTP requests.
type AssignmentHandler struct {
	engine *service.Engine
}

// NewAssignmentHandler creates a new assignment handler.
func NewAssignmentHandler(engine *service.Engine) *AssignmentHandler {
	return &AssignmentHandler{engine: engine}
}

// Preview godoc
// @Summary Compute the assignment set for a CLOSED period without persisting it
// @Tags assignments
// @Security BearerAuth
// @Produce json
// @Param period_id path string true "Period ID"
// @Success 200 {object} model.Result
// @Router /periods/{period_id}/assignments/preview [post]
func (h *AssignmentHandler) Preview(c *gin.Context) {
	result, err := h.engine.Preview(c.Request.Context(), c.Param("period_id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	httpPlatform.RespondWithData(c, http.StatusOK, result)
}

// Commit godoc
// @Summary Compute and persist the assignment set, completing the period
// @Tags assignments
// @Security BearerAuth
// @Produce json
// @Param period_id path string true "Period ID"
// @Success 200 {object} model.Result
// @Router /periods/{period_id}/assignments/commit [post]
func (h *AssignmentHandler) Commit(c *gin.Context) {
	userID, ok := authPlatform.MustGetUserID(c)
	if !ok {
		return
	}
	result, err := h.engine.Commit(c.Request.Context(), userID, c.Param("period_id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	httpPlatform.RespondWithData(c, http.StatusOK, result)
}

// ManualAssign godoc
// @Summary Manually assign a route to an employee, bypassing the engine
// @Tags assignments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param period_id path string true "Period ID"
// @Param request body model.ManualAssignRequest true "Manual assignment"
// @Success 200 {object} model.AssignmentDTO
// @Router /periods/{period_id}/assignments/manual [post]
func (h *AssignmentHandler) ManualAssign(c *gin.Context) {
	var req model.ManualAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpPlatform.RespondWithError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request payload")
		return
	}
	userID, ok := authPlatform.MustGetUserID(c)
	if !ok {
		return
	}

	assignment, err := h.engine.ManualAssign(c.Request.Context(), userID, c.Param("period_id"), req.EmployeeID, req.RouteID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	httpPlatform.RespondWithData(c, http.StatusOK, assignment)
}

// GetMine godoc
// @Summary Read the authenticated driver's own assignment for a period
// @Tags assignments
// @Security BearerAuth
// @Produce json
// @Param period_id path string true "Period ID"
// @Success 200 {object} model.AssignmentDTO
// @Router /periods/{period_id}/assignments/me [get]
func (h *AssignmentHandler) GetMine(c *gin.Context) {
	employeeID, ok := authPlatform.GetEmployeeID(c)
	if !ok {
		httpPlatform.RespondWithError(c, http.StatusForbidden, "FORBIDDEN", "Principal has no linked employee record")
		return
	}
	assignment, err := h.engine.GetMine(c.Request.Context(), employeeID, c.Param("period_id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	httpPlatform.RespondWithData(c, http.StatusOK, assignment)
}

// List godoc
// @Summary List every assignment for a period (manager/admin)
// @Tags assignments
// @Security BearerAuth
// @Produce json
// @Param period_id path string true "Period ID"
// @Success 200 {object} []model.AssignmentDTO
// @Router /periods/{period_id}/assignments [get]
func (h *AssignmentHandler) List(c *gin.Context) {
	assignments, err := h.engine.List(c.Request.Context(), c.Param("period_id"))
	if err != nil {
		httpPlatform.RespondWithError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list assignments")
		return
	}
	httpPlatform.RespondWithData(c, http.StatusOK, assignments)
}

func (h *AssignmentHandler) respondError(c *gin.Context, err error) {
	code := model.GetErrorCode(err)
	message := model.GetErrorMessage(err)

	status := http.StatusInternalServerError
	switch code {
	case model.CodeAssignmentNotFound:
		status = http.StatusNotFound
	case model.CodePeriodNotClosed, model.CodePeriodNotEditable, model.CodeQualificationViolation,
		model.CodeRouteAlreadyAssigned, model.CodeEmployeeNotEligible, model.CodeRouteNotInCatalog,
		model.CodeValidationFailed:
		status = http.StatusBadRequest
	}

	httpPlatform.RespondWithError(c, status, string(code), message)
}

// RegisterRoutes registers assignment routes. Preview/Commit/ManualAssign
// are admin/manager actions; drivers may only read their own.
func (h *AssignmentHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	periods := router.Group("/periods/:period_id/assignments")
	periods.Use(authMiddleware)
	{
		periods.GET("/me", h.GetMine)
		periods.GET("", authPlatform.RequireRole(authPlatform.RoleAdmin, authPlatform.RoleManager), h.List)
		periods.POST("/preview", authPlatform.RequireRole(authPlatform.RoleAdmin, authPlatform.RoleManager), h.Preview)
		periods.POST("/commit", authPlatform.RequireRole(authPlatform.RoleAdmin, authPlatform.RoleManager), h.Commit)
		periods.POST("/manual", authPlatform.RequireRole(authPlatform.RoleAdmin, authPlatform.RoleManager), h.ManualAssign)
	}
}
