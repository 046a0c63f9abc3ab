package model

import "time"

// Status is the tagged state of a SelectionPeriod's finite-state
// machine. The transition table lives in service.transitions, not
// here — the model only names the states.
type Status string

const (
	StatusUpcoming   Status = "UPCOMING"
	StatusOpen       Status = "OPEN"
	StatusClosed     Status = "CLOSED"
	StatusProcessing Status = "PROCESSING"
	StatusCompleted  Status = "COMPLETED"
)

// SelectionPeriod is a bi-annual route-selection window. RouteCatalog
// is the set of route IDs selectable during this period; a route not
// in the catalog is unselectable regardless of its own Active flag.
type SelectionPeriod struct {
	ID                 string
	Name               string
	Description        string
	TerminalID         *string
	StartDate          time.Time
	EndDate            time.Time
	Status             Status
	RequiredSelections int
	RouteCatalog       []string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// PeriodDTO is the JSON-facing representation of a SelectionPeriod.
type PeriodDTO struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description,omitempty"`
	TerminalID         *string   `json:"terminal_id,omitempty"`
	StartDate          time.Time `json:"start_date"`
	EndDate            time.Time `json:"end_date"`
	Status             Status    `json:"status"`
	RequiredSelections int       `json:"required_selections"`
	RouteCatalog       []string  `json:"route_catalog"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ToDTO converts a SelectionPeriod to its DTO.
func (p *SelectionPeriod) ToDTO() *PeriodDTO {
	return &PeriodDTO{
		ID:                 p.ID,
		Name:               p.Name,
		Description:        p.Description,
		TerminalID:         p.TerminalID,
		StartDate:          p.StartDate,
		EndDate:            p.EndDate,
		Status:             p.Status,
		RequiredSelections: p.RequiredSelections,
		RouteCatalog:       p.RouteCatalog,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

// Validate enforces the period's data invariants: the window must be
// non-inverted, the catalog non-empty, and the required-selection
// count one of the three permitted values.
func (p *SelectionPeriod) Validate() error {
	if p.Name == "" {
		return ErrPeriodNameRequired
	}
	if p.EndDate.Before(p.StartDate) {
		return ErrInvalidDateRange
	}
	if len(p.RouteCatalog) == 0 {
		return ErrEmptyRouteCatalog
	}
	switch p.RequiredSelections {
	case 1, 2, 3:
	default:
		return ErrInvalidRequiredSelections
	}
	return nil
}

// HasRoute reports whether routeID is part of this period's catalog.
func (p *SelectionPeriod) HasRoute(routeID string) bool {
	for _, id := range p.RouteCatalog {
		if id == routeID {
			return true
		}
	}
	return false
}
