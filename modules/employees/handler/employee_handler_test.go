package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pavlenko-transit/pickboard/modules/employees/model"
	"github.com/pavlenko-transit/pickboard/modules/employees/ports"
	"github.com/pavlenko-transit/pickboard/modules/employees/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockEmployeeRepository implements ports.EmployeeRepository
type MockEmployeeRepository struct {
	CreateFunc          func(ctx context.Context, employee *model.Employee) error
	GetByIDFunc         func(ctx context.Context, id string) (*model.Employee, error)
	GetByEmployeeIDFunc func(ctx context.Context, employeeID string) (*model.Employee, error)
	GetByAccountIDFunc  func(ctx context.Context, accountID string) (*model.Employee, error)
	ListFunc            func(ctx context.Context, opts *ports.EmployeeListOptions) ([]*model.Employee, int, error)
	ListEligibleFunc    func(ctx context.Context, terminalID string) ([]*model.Employee, error)
	UpdateFunc          func(ctx context.Context, employee *model.Employee) error
	DeleteFunc          func(ctx context.Context, id string) error
}

func (m *MockEmployeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, employee)
	}
	return nil
}

func (m *MockEmployeeRepository) GetByID(ctx context.Context, id string) (*model.Employee, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockEmployeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*model.Employee, error) {
	if m.GetByEmployeeIDFunc != nil {
		return m.GetByEmployeeIDFunc(ctx, employeeID)
	}
	return nil, nil
}

func (m *MockEmployeeRepository) GetByAccountID(ctx context.Context, accountID string) (*model.Employee, error) {
	if m.GetByAccountIDFunc != nil {
		return m.GetByAccountIDFunc(ctx, accountID)
	}
	return nil, nil
}

func (m *MockEmployeeRepository) List(ctx context.Context, opts *ports.EmployeeListOptions) ([]*model.Employee, int, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, opts)
	}
	return nil, 0, nil
}

func (m *MockEmployeeRepository) ListEligible(ctx context.Context, terminalID string) ([]*model.Employee, error) {
	if m.ListEligibleFunc != nil {
		return m.ListEligibleFunc(ctx, terminalID)
	}
	return nil, nil
}

func (m *MockEmployeeRepository) Update(ctx context.Context, employee *model.Employee) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, employee)
	}
	return nil
}

func (m *MockEmployeeRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// mockAuthMiddleware injects a principal's user id into the request
// context, standing in for authPlatform.AuthMiddleware in handler tests.
func mockAuthMiddleware(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("creates employee successfully", func(t *testing.T) {
		mockRepo := &MockEmployeeRepository{
			CreateFunc: func(ctx context.Context, employee *model.Employee) error {
				employee.ID = "employee-1"
				employee.Eligible = true
				return nil
			},
		}
		svc := service.NewEmployeeService(mockRepo)
		h := NewEmployeeHandler(svc)

		router := setupTestRouter()
		router.POST("/employees", h.Create)

		body := `{"employee_id":"E042","first_name":"Jo","last_name":"Smith","hire_date":"2012-03-01T00:00:00Z"}`
		req, _ := http.NewRequest(http.MethodPost, "/employees", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response model.EmployeeDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "E042", response.EmployeeID)
	})

	t.Run("returns 400 for missing employee id", func(t *testing.T) {
		svc := service.NewEmployeeService(&MockEmployeeRepository{})
		h := NewEmployeeHandler(svc)

		router := setupTestRouter()
		router.POST("/employees", h.Create)

		body := `{"first_name":"Jo","last_name":"Smith"}`
		req, _ := http.NewRequest(http.MethodPost, "/employees", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEmployeeHandler_Me(t *testing.T) {
	t.Run("returns the caller's own roster record", func(t *testing.T) {
		mockRepo := &MockEmployeeRepository{
			GetByAccountIDFunc: func(ctx context.Context, accountID string) (*model.Employee, error) {
				assert.Equal(t, "account-1", accountID)
				return &model.Employee{ID: "employee-1", EmployeeID: "E042", AccountID: &accountID}, nil
			},
		}
		svc := service.NewEmployeeService(mockRepo)
		h := NewEmployeeHandler(svc)

		router := setupTestRouter()
		router.GET("/employees/me", mockAuthMiddleware("account-1"), h.Me)

		req, _ := http.NewRequest(http.MethodGet, "/employees/me", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response model.EmployeeDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "E042", response.EmployeeID)
	})

	t.Run("returns 401 without an authenticated principal", func(t *testing.T) {
		svc := service.NewEmployeeService(&MockEmployeeRepository{})
		h := NewEmployeeHandler(svc)

		router := setupTestRouter()
		router.GET("/employees/me", h.Me)

		req, _ := http.NewRequest(http.MethodGet, "/employees/me", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("returns 404 when no roster record is linked", func(t *testing.T) {
		mockRepo := &MockEmployeeRepository{
			GetByAccountIDFunc: func(ctx context.Context, accountID string) (*model.Employee, error) {
				return nil, model.ErrEmployeeNotFound
			},
		}
		svc := service.NewEmployeeService(mockRepo)
		h := NewEmployeeHandler(svc)

		router := setupTestRouter()
		router.GET("/employees/me", mockAuthMiddleware("account-1"), h.Me)

		req, _ := http.NewRequest(http.MethodGet, "/employees/me", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
