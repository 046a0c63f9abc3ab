package model

import "time"

// Assignment is the outcome of the Assignment Engine for one employee
// within one period. RouteID and ChoiceReceived are both nil for a
// float-pool assignment — the employee holds no route.
type Assignment struct {
	ID             string
	EmployeeID     string
	PeriodID       string
	RouteID        *string
	ChoiceReceived *int
	EffectiveDate  time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AssignmentDTO is the JSON-facing representation of an Assignment.
type AssignmentDTO struct {
	ID             string    `json:"id"`
	EmployeeID     string    `json:"employee_id"`
	PeriodID       string    `json:"period_id"`
	RouteID        *string   `json:"route_id,omitempty"`
	ChoiceReceived *int      `json:"choice_received,omitempty"`
	EffectiveDate  time.Time `json:"effective_date"`
}

// ToDTO converts an Assignment to its DTO.
func (a *Assignment) ToDTO() *AssignmentDTO {
	return &AssignmentDTO{
		ID:             a.ID,
		EmployeeID:     a.EmployeeID,
		PeriodID:       a.PeriodID,
		RouteID:        a.RouteID,
		ChoiceReceived: a.ChoiceReceived,
		EffectiveDate:  a.EffectiveDate,
	}
}

// IsFloat reports whether the assignment holds no route.
func (a *Assignment) IsFloat() bool {
	return a.RouteID == nil
}

// Summary is the counts-by-choice output, used by the UI to show
// preview/commit results without rendering the full assignment list.
type Summary struct {
	FirstChoice  int `json:"first_choice"`
	SecondChoice int `json:"second_choice"`
	ThirdChoice  int `json:"third_choice"`
	Manual       int `json:"manual"`
	Float        int `json:"float"`
}

// Result is the engine's output for one run, shared by Preview and
// Commit so the two modes can be tested against the same summary.
type Result struct {
	Assignments []*Assignment `json:"assignments"`
	Summary     Summary       `json:"summary"`
}

func IntPtr(i int) *int { return &i }
