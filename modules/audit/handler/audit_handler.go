package handler

import (
	"net/http"

	authPlatform "github.com/pavlenko-transit/pickboard/internal/platform/auth"
	httpPlatform "github.com/pavlenko-transit/pickboard/internal/platform/http"
	"github.com/pavlenko-transit/pickboard/modules/audit/ports"
	"github.com/gin-gonic/gin"
)

// AuditHandler exposes the admin-only audit read API over the
// append-only event log.
type AuditHandler struct {
	repo ports.AuditRepository
}

// NewAuditHandler creates a new audit handler.
func NewAuditHandler(repo ports.AuditRepository) *AuditHandler {
	return &AuditHandler{repo: repo}
}

// List godoc
// @Summary List audit events
// @Description Time-reverse scan of the append-only audit log, optionally filtered by user (admin only)
// @Tags audit
// @Security BearerAuth
// @Produce json
// @Param user_id query string false "Filter by initiating user"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} httpPlatform.PaginatedResponse{items=[]model.EventDTO}
// @Router /audit [get]
func (h *AuditHandler) List(c *gin.Context) {
	pagination, err := httpPlatform.ParsePaginationParams(c)
	if err != nil {
		httpPlatform.RespondWithError(c, http.StatusBadRequest, "INVALID_PAGINATION_PARAMS", "Invalid pagination parameters")
		return
	}

	opts := &ports.ListOptions{
		UserID: c.Query("user_id"),
		Limit:  pagination.Limit,
		Offset: pagination.Offset,
	}

	events, total, err := h.repo.List(c.Request.Context(), opts)
	if err != nil {
		httpPlatform.RespondWithError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list audit events")
		return
	}

	dtos := make([]interface{}, len(events))
	for i, e := range events {
		dtos[i] = e.ToDTO()
	}

	httpPlatform.RespondWithPagination(c, http.StatusOK, dtos, pagination.Limit, pagination.Offset, total)
}

// RegisterRoutes registers audit routes. Admin-only.
func (h *AuditHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	audit := router.Group("/audit")
	audit.Use(authMiddleware, authPlatform.RequireRole(authPlatform.RoleAdmin))
	{
		audit.GET("", h.List)
	}
}
