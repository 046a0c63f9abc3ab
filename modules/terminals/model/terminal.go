package model

import "time"

// Terminal represents a transportation terminal that owns employees,
// routes, and selection periods.
type Terminal struct {
	ID        string
	Code      string
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TerminalDTO is the JSON-facing representation of a Terminal.
type TerminalDTO struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToDTO converts a Terminal to its DTO.
func (t *Terminal) ToDTO() *TerminalDTO {
	return &TerminalDTO{
		ID:        t.ID,
		Code:      t.Code,
		Name:      t.Name,
		Active:    t.Active,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
