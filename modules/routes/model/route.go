package model

import "time"

// RouteType enumerates the kind of run a Route represents.
type RouteType string

const (
	RouteTypeSingles RouteType = "SINGLES"
	RouteTypeDoubles RouteType = "DOUBLES"
)

// RateType enumerates how a Route's pay is computed.
type RateType string

const (
	RateTypeHourly   RateType = "HOURLY"
	RateTypeMileage  RateType = "MILEAGE"
	RateTypeFlatRate RateType = "FLAT_RATE"
)

// Route represents a single run within a terminal's catalog.
type Route struct {
	ID                         string
	RunNumber                  string
	TerminalID                 string
	Origin                     string
	Destination                string
	Type                       RouteType
	Days                       string
	StartTime                  string
	EndTime                    string
	Distance                   float64
	WorkTime                   float64
	RateType                   RateType
	RequiresDoublesEndorsement bool
	RequiresChainExperience    bool
	Active                     bool
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
}

// RouteDTO is the JSON-facing representation of a Route.
type RouteDTO struct {
	ID                         string    `json:"id"`
	RunNumber                  string    `json:"run_number"`
	TerminalID                 string    `json:"terminal_id"`
	Origin                     string    `json:"origin"`
	Destination                string    `json:"destination"`
	Type                       RouteType `json:"type"`
	Days                       string    `json:"days"`
	StartTime                  string    `json:"start_time"`
	EndTime                    string    `json:"end_time"`
	Distance                   float64   `json:"distance"`
	WorkTime                   float64   `json:"work_time"`
	RateType                   RateType  `json:"rate_type"`
	RequiresDoublesEndorsement bool      `json:"requires_doubles_endorsement"`
	RequiresChainExperience    bool      `json:"requires_chain_experience"`
	Active                     bool      `json:"active"`
	CreatedAt                  time.Time `json:"created_at"`
	UpdatedAt                  time.Time `json:"updated_at"`
}

// ToDTO converts a Route to its DTO.
func (r *Route) ToDTO() *RouteDTO {
	return &RouteDTO{
		ID:                         r.ID,
		RunNumber:                  r.RunNumber,
		TerminalID:                 r.TerminalID,
		Origin:                     r.Origin,
		Destination:                r.Destination,
		Type:                       r.Type,
		Days:                       r.Days,
		StartTime:                  r.StartTime,
		EndTime:                    r.EndTime,
		Distance:                   r.Distance,
		WorkTime:                   r.WorkTime,
		RateType:                   r.RateType,
		RequiresDoublesEndorsement: r.RequiresDoublesEndorsement,
		RequiresChainExperience:    r.RequiresChainExperience,
		Active:                     r.Active,
		CreatedAt:                  r.CreatedAt,
		UpdatedAt:                  r.UpdatedAt,
	}
}

// Validate enforces the data-model invariant that a DOUBLES route must
// require the doubles endorsement.
func (r *Route) Validate() error {
	if r.RunNumber == "" {
		return ErrRouteRunNumberRequired
	}
	if r.TerminalID == "" {
		return ErrRouteTerminalRequired
	}
	switch r.Type {
	case RouteTypeSingles, RouteTypeDoubles:
	default:
		return ErrInvalidRouteType
	}
	switch r.RateType {
	case RateTypeHourly, RateTypeMileage, RateTypeFlatRate:
	default:
		return ErrInvalidRateType
	}
	if r.Type == RouteTypeDoubles && !r.RequiresDoublesEndorsement {
		return ErrDoublesRequiresEndorsement
	}
	return nil
}
