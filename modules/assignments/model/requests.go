package model

// ManualAssignRequest is the payload for a manual admin override.
type ManualAssignRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	RouteID    string `json:"route_id" binding:"required"`
}
