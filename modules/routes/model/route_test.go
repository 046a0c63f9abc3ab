package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoute_Validate(t *testing.T) {
	base := func() *Route {
		return &Route{
			RunNumber:  "101",
			TerminalID: "terminal-1",
			Type:       RouteTypeSingles,
			RateType:   RateTypeHourly,
		}
	}

	t.Run("valid singles route", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("doubles route without endorsement requirement is rejected", func(t *testing.T) {
		r := base()
		r.Type = RouteTypeDoubles
		r.RequiresDoublesEndorsement = false
		assert.Equal(t, ErrDoublesRequiresEndorsement, r.Validate())
	})

	t.Run("doubles route with endorsement requirement is valid", func(t *testing.T) {
		r := base()
		r.Type = RouteTypeDoubles
		r.RequiresDoublesEndorsement = true
		assert.NoError(t, r.Validate())
	})

	t.Run("missing run number", func(t *testing.T) {
		r := base()
		r.RunNumber = ""
		assert.Equal(t, ErrRouteRunNumberRequired, r.Validate())
	})

	t.Run("invalid type", func(t *testing.T) {
		r := base()
		r.Type = "TRIPLES"
		assert.Equal(t, ErrInvalidRouteType, r.Validate())
	})
}
