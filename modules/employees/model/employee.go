package model

import "time"

// Employee is the seniority-roster record the Assignment Engine reads.
// EmployeeID is the business identifier ("badge number"), distinct
// from ID (the surrogate primary key) — unique within the system and
// never reused.
type Employee struct {
	ID                 string
	EmployeeID         string
	FirstName          string
	LastName           string
	HireDate           time.Time
	DoublesEndorsement bool
	ChainExperience    bool
	Eligible           bool
	TerminalID         *string
	AccountID          *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// EmployeeDTO is the JSON-facing representation of an Employee.
type EmployeeDTO struct {
	ID                 string    `json:"id"`
	EmployeeID         string    `json:"employee_id"`
	FirstName          string    `json:"first_name"`
	LastName           string    `json:"last_name"`
	HireDate           time.Time `json:"hire_date"`
	DoublesEndorsement bool      `json:"doubles_endorsement"`
	ChainExperience    bool      `json:"chain_experience"`
	Eligible           bool      `json:"eligible"`
	TerminalID         *string   `json:"terminal_id,omitempty"`
	AccountID          *string   `json:"account_id,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ToDTO converts an Employee to its DTO.
func (e *Employee) ToDTO() *EmployeeDTO {
	return &EmployeeDTO{
		ID:                 e.ID,
		EmployeeID:         e.EmployeeID,
		FirstName:          e.FirstName,
		LastName:           e.LastName,
		HireDate:           e.HireDate,
		DoublesEndorsement: e.DoublesEndorsement,
		ChainExperience:    e.ChainExperience,
		Eligible:           e.Eligible,
		TerminalID:         e.TerminalID,
		AccountID:          e.AccountID,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

// SeniorityLess reports whether e is strictly more senior than other,
// ordering by hireDate ascending, then lastName ascending, then
// employeeId ascending. Without this total order the assignment
// algorithm is non-deterministic whenever two employees share a hire
// date.
func (e *Employee) SeniorityLess(other *Employee) bool {
	if !e.HireDate.Equal(other.HireDate) {
		return e.HireDate.Before(other.HireDate)
	}
	if e.LastName != other.LastName {
		return e.LastName < other.LastName
	}
	return e.EmployeeID < other.EmployeeID
}
