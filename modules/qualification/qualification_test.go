package qualification

import (
	"testing"

	employeeModel "github.com/pavlenko-transit/pickboard/modules/employees/model"
	routeModel "github.com/pavlenko-transit/pickboard/modules/routes/model"
	"github.com/stretchr/testify/assert"
)

func TestQualifies(t *testing.T) {
	tests := []struct {
		name     string
		employee *employeeModel.Employee
		route    *routeModel.Route
		want     bool
	}{
		{
			name:     "no requirements, not qualified employee",
			employee: &employeeModel.Employee{},
			route:    &routeModel.Route{},
			want:     true,
		},
		{
			name:     "requires doubles endorsement, employee lacks it",
			employee: &employeeModel.Employee{DoublesEndorsement: false},
			route:    &routeModel.Route{RequiresDoublesEndorsement: true},
			want:     false,
		},
		{
			name:     "requires doubles endorsement, employee has it",
			employee: &employeeModel.Employee{DoublesEndorsement: true},
			route:    &routeModel.Route{RequiresDoublesEndorsement: true},
			want:     true,
		},
		{
			name:     "requires chain experience, employee lacks it",
			employee: &employeeModel.Employee{ChainExperience: false},
			route:    &routeModel.Route{RequiresChainExperience: true},
			want:     false,
		},
		{
			name: "requires both, employee has only one",
			employee: &employeeModel.Employee{
				DoublesEndorsement: true,
				ChainExperience:    false,
			},
			route: &routeModel.Route{
				RequiresDoublesEndorsement: true,
				RequiresChainExperience:    true,
			},
			want: false,
		},
		{
			name: "requires both, employee has both",
			employee: &employeeModel.Employee{
				DoublesEndorsement: true,
				ChainExperience:    true,
			},
			route: &routeModel.Route{
				RequiresDoublesEndorsement: true,
				RequiresChainExperience:    true,
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Qualifies(tt.employee, tt.route))
		})
	}
}
