package handler

import (
	"net/http"

	authPlatform "github.com/pavlenko-transit/pickboard/internal/platform/auth"
	httpPlatform "github.com/pavlenko-transit/pickboard/internal/platform/http"
	"github.com/pavlenko-transit/pickboard/modules/employees/model"
	"github.com/pavlenko-transit/pickboard/modules/employees/ports"
	"github.com/pavlenko-transit/pickboard/modules/employees/service"
	"github.com/gin-gonic/gin"
)

// EmployeeHandler handles employee roster HTTP requests
type EmployeeHandler struct {
	service *service.EmployeeService
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(service *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// Create godoc
// @Summary Create a new employee roster record
// @Tags employees
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body model.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} model.EmployeeDTO
// @Failure 400 {object} httpPlatform.ErrorResponse
// @Router /employees [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req model.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpPlatform.RespondWithError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request payload")
		return
	}

	employee, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	httpPlatform.RespondWithData(c, http.StatusCreated, employee)
}

// Get godoc
// @Summary Get an employee roster record
// @Tags employees
// @Security BearerAuth
// @Produce json
// @Param id path string true "Employee surrogate ID"
// @Success 200 {object} model.EmployeeDTO
// @Failure 404 {object} httpPlatform.ErrorResponse
// @Router /employees/{id} [get]
func (h *EmployeeHandler) Get(c *gin.Context) {
	employee, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	httpPlatform.RespondWithData(c, http.StatusOK, employee)
}

// Me godoc
// @Summary Get the authenticated driver's own employee roster record
// @Tags employees
// @Security BearerAuth
// @Produce json
// @Success 200 {object} model.EmployeeDTO
// @Failure 404 {object} httpPlatform.ErrorResponse
// @Router /employees/me [get]
func (h *EmployeeHandler) Me(c *gin.Context) {
	userID, ok := authPlatform.MustGetUserID(c)
	if !ok {
		return
	}

	employee, err := h.service.GetByAccountID(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	httpPlatform.RespondWithData(c, http.StatusOK, employee)
}

// List godoc
// @Summary List employee roster records
// @Tags employees
// @Security BearerAuth
// @Produce json
// @Param terminal_id query string false "Terminal ID filter"
// @Param eligible_only query bool false "Only eligible employees"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} httpPlatform.PaginatedResponse{items=[]model.EmployeeDTO}
// @Router /employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	pagination, err := httpPlatform.ParsePaginationParams(c)
	if err != nil {
		httpPlatform.RespondWithError(c, http.StatusBadRequest, "INVALID_PAGINATION_PARAMS", "Invalid pagination parameters")
		return
	}

	opts := &ports.EmployeeListOptions{
		TerminalID:   c.Query("terminal_id"),
		EligibleOnly: c.Query("eligible_only") == "true",
		Limit:        pagination.Limit,
		Offset:       pagination.Offset,
	}

	employees, total, err := h.service.List(c.Request.Context(), opts)
	if err != nil {
		httpPlatform.RespondWithError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list employees")
		return
	}

	httpPlatform.RespondWithPagination(c, http.StatusOK, employees, pagination.Limit, pagination.Offset, total)
}

// Update godoc
// @Summary Update an employee roster record
// @Tags employees
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Employee surrogate ID"
// @Param request body model.UpdateEmployeeRequest true "Updated employee details"
// @Success 200 {object} model.EmployeeDTO
// @Failure 404 {object} httpPlatform.ErrorResponse
// @Router /employees/{id} [patch]
func (h *EmployeeHandler) Update(c *gin.Context) {
	var req model.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpPlatform.RespondWithError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request payload")
		return
	}

	employee, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	httpPlatform.RespondWithData(c, http.StatusOK, employee)
}

// Delete godoc
// @Summary Delete an employee roster record
// @Tags employees
// @Security BearerAuth
// @Produce json
// @Param id path string true "Employee surrogate ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} httpPlatform.ErrorResponse
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	httpPlatform.RespondWithData(c, http.StatusOK, gin.H{"message": "Employee deleted successfully"})
}

func (h *EmployeeHandler) respondError(c *gin.Context, err error) {
	code := model.GetErrorCode(err)
	message := model.GetErrorMessage(err)

	status := http.StatusInternalServerError
	switch code {
	case model.CodeEmployeeNotFound:
		status = http.StatusNotFound
	case model.CodeEmployeeIDRequired, model.CodeEmployeeIDTaken:
		status = http.StatusBadRequest
	}

	httpPlatform.RespondWithError(c, status, string(code), message)
}

// RegisterRoutes registers employee routes. Create and update require
// ADMIN/MANAGER, delete requires ADMIN; "me" is open to any authenticated principal, reads
// otherwise require ADMIN/MANAGER per the RBAC matrix (drivers read
// only their own record via Me).
func (h *EmployeeHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	employees := router.Group("/employees")
	employees.Use(authMiddleware)
	{
		employees.GET("/me", h.Me)
		employees.GET("", authPlatform.RequireRole(authPlatform.RoleAdmin, authPlatform.RoleManager), h.List)
		employees.GET("/:id", authPlatform.RequireRole(authPlatform.RoleAdmin, authPlatform.RoleManager), h.Get)
		employees.POST("", authPlatform.RequireRole(authPlatform.RoleAdmin, authPlatform.RoleManager), h.Create)
		employees.PATCH("/:id", authPlatform.RequireRole(authPlatform.RoleAdmin, authPlatform.RoleManager), h.Update)
		employees.DELETE("/:id", authPlatform.RequireRole(authPlatform.RoleAdmin), h.Delete)
	}
}
