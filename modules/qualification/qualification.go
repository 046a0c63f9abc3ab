// Package qualification implements the pure eligibility predicate
// used by the Assignment Engine.
package qualification

import (
	employeeModel "github.com/pavlenko-transit/pickboard/modules/employees/model"
	routeModel "github.com/pavlenko-transit/pickboard/modules/routes/model"
)

// Qualifies reports whether an employee may hold a given route. It
// has no side effects and performs no I/O, so the engine's compute,
// validation and manual-assignment paths call it identically.
// Preference submission does not check qualification.
func Qualifies(employee *employeeModel.Employee, route *routeModel.Route) bool {
	if route.RequiresDoublesEndorsement && !employee.DoublesEndorsement {
		return false
	}
	if route.RequiresChainExperience && !employee.ChainExperience {
		return false
	}
	return true
}
