package handler

import (
	"net/http"

	authPlatform "github.com/pavlenko-transit/pickboard/internal/platform/auth"
	httpPlatform "github.com/pavlenko-transit/pickboard/internal/platform/http"
	"github.com/pavlenko-transit/pickboard/modules/notifications/model"
	"github.com/pavlenko-transit/pickboard/modules/notifications/service"
	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the two dispatcher-triggering endpoints,
// notify and notifyAssign. Both are manager/admin actions — drivers
// receive notifications, they don't trigger them.
type NotificationHandler struct {
	service *service.NotificationService
}

// NewNotificationHandler creates a new notification handler.
func NewNotificationHandler(service *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// NotifyOpened godoc
// @Summary Send period-opened submission instructions to every eligible employee
// @Tags notifications
// @Security BearerAuth
// @Produce json
// @Param period_id path string true "Period ID"
// @Success 200 {object} model.ResultDTO
// @Router /periods/{period_id}/notify [post]
func (h *NotificationHandler) NotifyOpened(c *gin.Context) {
	userID, ok := authPlatform.MustGetUserID(c)
	if !ok {
		return
	}
	result, err := h.service.NotifyPeriodOpened(c.Request.Context(), userID, c.Param("period_id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	httpPlatform.RespondWithData(c, http.StatusOK, result.ToDTO())
}

// NotifyAssignments godoc
// @Summary Send per-employee assignment results for a completed period
// @Tags notifications
// @Security BearerAuth
// @Produce json
// @Param period_id path string true "Period ID"
// @Success 200 {object} model.ResultDTO
// @Router /periods/{period_id}/notify-assignments [post]
func (h *NotificationHandler) NotifyAssignments(c *gin.Context) {
	userID, ok := authPlatform.MustGetUserID(c)
	if !ok {
		return
	}
	result, err := h.service.NotifyAssignmentsCompleted(c.Request.Context(), userID, c.Param("period_id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	httpPlatform.RespondWithData(c, http.StatusOK, result.ToDTO())
}

func (h *NotificationHandler) respondError(c *gin.Context, err error) {
	code := model.GetErrorCode(err)
	message := model.GetErrorMessage(err)

	status := http.StatusInternalServerError
	if code == model.CodePeriodNotNotifiable {
		status = http.StatusBadRequest
	}
	httpPlatform.RespondWithError(c, status, string(code), message)
}

// RegisterRoutes registers notification routes.
func (h *NotificationHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	periods := router.Group("/periods/:period_id")
	periods.Use(authMiddleware, authPlatform.RequireRole(authPlatform.RoleAdmin, authPlatform.RoleManager))
	{
		periods.POST("/notify", h.NotifyOpened)
		periods.POST("/notify-assignments", h.NotifyAssignments)
	}
}
