package handler

import (
	"net/http"

	authPlatform "github.com/pavlenko-transit/pickboard/internal/platform/auth"
	httpPlatform "github.com/pavlenko-transit/pickboard/internal/platform/http"
	"github.com/pavlenko-transit/pickboard/modules/preferences/model"
	"github.com/pavlenko-transit/pickboard/modules/preferences/service"
	"github.com/gin-gonic/gin"
)

// PreferenceHandler handles preference HTTP requests.
type PreferenceHandler struct {
	service *service.PreferenceService
}

// NewPreferenceHandler creates a new preference handler.
func NewPreferenceHandler(service *service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{service: service}
}

// Upsert godoc
// @Summary Submit or replace ranked route choices for a period
// @Description Driver may only submit their own preference; period must be OPEN
// @Tags preferences
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param period_id path string true "Period ID"
// @Param request body model.UpsertPreferenceRequest true "Ordered route choices"
// @Success 200 {object} map[string]string
// @Router /periods/{period_id}/preferences/me [put]
func (h *PreferenceHandler) Upsert(c *gin.Context) {
	var req model.UpsertPreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpPlatform.RespondWithError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request payload")
		return
	}

	userID, ok := authPlatform.MustGetUserID(c)
	if !ok {
		return
	}
	employeeID, ok := h.resolveEmployeeID(c)
	if !ok {
		return
	}

	confirmation, err := h.service.Upsert(c.Request.Context(), userID, employeeID, c.Param("period_id"), req.Choices)
	if err != nil {
		h.respondError(c, err)
		return
	}

	httpPlatform.RespondWithData(c, http.StatusOK, gin.H{"confirmation_number": confirmation})
}

// GetMine godoc
// @Summary Read the authenticated driver's own preference for a period
// @Tags preferences
// @Security BearerAuth
// @Produce json
// @Param period_id path string true "Period ID"
// @Success 200 {object} model.PreferenceDTO
// @Router /periods/{period_id}/preferences/me [get]
func (h *PreferenceHandler) GetMine(c *gin.Context) {
	employeeID, ok := h.resolveEmployeeID(c)
	if !ok {
		return
	}
	h.get(c, employeeID)
}

// Get godoc
// @Summary Read any employee's preference for a period (manager/admin)
// @Tags preferences
// @Security BearerAuth
// @Produce json
// @Param period_id path string true "Period ID"
// @Param employee_id path string true "Employee ID"
// @Success 200 {object} model.PreferenceDTO
// @Router /periods/{period_id}/preferences/{employee_id} [get]
func (h *PreferenceHandler) Get(c *gin.Context) {
	h.get(c, c.Param("employee_id"))
}

func (h *PreferenceHandler) get(c *gin.Context, employeeID string) {
	pref, err := h.service.Get(c.Request.Context(), employeeID, c.Param("period_id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	httpPlatform.RespondWithData(c, http.StatusOK, pref)
}

// List godoc
// @Summary List all preferences for a period (manager/admin)
// @Tags preferences
// @Security BearerAuth
// @Produce json
// @Param period_id path string true "Period ID"
// @Success 200 {object} []model.PreferenceDTO
// @Router /periods/{period_id}/preferences [get]
func (h *PreferenceHandler) List(c *gin.Context) {
	prefs, err := h.service.List(c.Request.Context(), c.Param("period_id"))
	if err != nil {
		httpPlatform.RespondWithError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list preferences")
		return
	}
	httpPlatform.RespondWithData(c, http.StatusOK, prefs)
}

// resolveEmployeeID returns the authenticated principal's own
// employeeId, writing a 403 when the principal has no linked employee
// record. A driver only ever acts as themself.
func (h *PreferenceHandler) resolveEmployeeID(c *gin.Context) (string, bool) {
	employeeID, ok := authPlatform.GetEmployeeID(c)
	if !ok {
		httpPlatform.RespondWithError(c, http.StatusForbidden, "FORBIDDEN", "Principal has no linked employee record")
		return "", false
	}
	return employeeID, true
}

func (h *PreferenceHandler) respondError(c *gin.Context, err error) {
	code := model.GetErrorCode(err)
	message := model.GetErrorMessage(err)

	status := http.StatusInternalServerError
	switch code {
	case model.CodePreferenceNotFound:
		status = http.StatusNotFound
	case model.CodePeriodNotOpen, model.CodeRouteNotInCatalog, model.CodeDuplicateChoice,
		model.CodeUnmetRequiredCount, model.CodeTooManyChoices:
		status = http.StatusBadRequest
	}

	httpPlatform.RespondWithError(c, status, string(code), message)
}

// RegisterRoutes registers preference routes. Drivers submit/read
// their own; managers/admins can read any.
func (h *PreferenceHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	periods := router.Group("/periods/:period_id/preferences")
	periods.Use(authMiddleware)
	{
		periods.PUT("/me", h.Upsert)
		periods.GET("/me", h.GetMine)
		periods.GET("", authPlatform.RequireRole(authPlatform.RoleAdmin, authPlatform.RoleManager), h.List)
		periods.GET("/:employee_id", authPlatform.RequireRole(authPlatform.RoleAdmin, authPlatform.RoleManager), h.Get)
	}
}
