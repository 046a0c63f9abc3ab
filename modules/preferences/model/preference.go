package model

import "time"

// MaxChoices bounds a submission to at most three ranked choices,
// with the period's RequiredSelections setting the minimum. The model
// represents choices as a bounded ordered sequence rather than three
// parallel fields, to avoid conditional-logic duplication across the
// submission and engine paths; the persisted schema still stores
// first/second/third_choice_id columns, converted at the repository
// boundary.
const MaxChoices = 3

// Preference is one employee's ranked route choices for one period.
type Preference struct {
	ID                 string
	EmployeeID         string
	PeriodID           string
	Choices            []string // ordered, 1..MaxChoices, no nulls within
	ConfirmationNumber string
	SubmittedAt        time.Time
}

// PreferenceDTO is the JSON-facing representation of a Preference.
type PreferenceDTO struct {
	ID                 string    `json:"id"`
	EmployeeID         string    `json:"employee_id"`
	PeriodID           string    `json:"period_id"`
	Choices            []string  `json:"choices"`
	ConfirmationNumber string    `json:"confirmation_number"`
	SubmittedAt        time.Time `json:"submitted_at"`
}

// ToDTO converts a Preference to its DTO.
func (p *Preference) ToDTO() *PreferenceDTO {
	return &PreferenceDTO{
		ID:                 p.ID,
		EmployeeID:         p.EmployeeID,
		PeriodID:           p.PeriodID,
		Choices:            p.Choices,
		ConfirmationNumber: p.ConfirmationNumber,
		SubmittedAt:        p.SubmittedAt,
	}
}

// ChoiceAt returns the k-th choice (1-indexed) or "" if none was
// submitted at that rank. Used by the Assignment Engine's k=1..3 scan.
func (p *Preference) ChoiceAt(k int) string {
	if k < 1 || k > len(p.Choices) {
		return ""
	}
	return p.Choices[k-1]
}
