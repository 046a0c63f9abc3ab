package model

import "time"

// CreatePeriodRequest represents a create selection-period request.
type CreatePeriodRequest struct {
	Name               string    `json:"name" binding:"required"`
	Description        string    `json:"description"`
	TerminalID         *string   `json:"terminal_id,omitempty"`
	StartDate          time.Time `json:"start_date" binding:"required"`
	EndDate            time.Time `json:"end_date" binding:"required"`
	RequiredSelections int       `json:"required_selections" binding:"required"`
	RouteCatalog       []string  `json:"route_catalog" binding:"required"`
}

// UpdatePeriodRequest represents an edit request. The "edit" action is
// restricted to name/description/catalog and is allowed only in
// UPCOMING, OPEN and CLOSED (enforced in the service).
type UpdatePeriodRequest struct {
	Name         *string  `json:"name,omitempty"`
	Description  *string  `json:"description,omitempty"`
	RouteCatalog []string `json:"route_catalog,omitempty"`
}
