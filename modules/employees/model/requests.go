package model

import "time"

// CreateEmployeeRequest represents a create employee roster request
type CreateEmployeeRequest struct {
	EmployeeID         string    `json:"employee_id" binding:"required"`
	FirstName          string    `json:"first_name" binding:"required"`
	LastName           string    `json:"last_name" binding:"required"`
	HireDate           time.Time `json:"hire_date" binding:"required"`
	DoublesEndorsement bool      `json:"doubles_endorsement"`
	ChainExperience    bool      `json:"chain_experience"`
	TerminalID         *string   `json:"terminal_id,omitempty"`
	AccountID          *string   `json:"account_id,omitempty"`
}

// UpdateEmployeeRequest represents an update employee roster request
type UpdateEmployeeRequest struct {
	FirstName          *string `json:"first_name,omitempty"`
	LastName           *string `json:"last_name,omitempty"`
	DoublesEndorsement *bool   `json:"doubles_endorsement,omitempty"`
	ChainExperience    *bool   `json:"chain_experience,omitempty"`
	Eligible           *bool   `json:"eligible,omitempty"`
	TerminalID         *string `json:"terminal_id,omitempty"`
}
