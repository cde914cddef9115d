package checkout

import "rentkiosk/models"

// upstreamCall names one reservation-service dependency of a step.
type upstreamCall string

const (
	callGetBooking      upstreamCall = "getBooking"
	callListVehicles    upstreamCall = "listVehicles"
	callListProtections upstreamCall = "listProtections"
	callListAddons      upstreamCall = "listAddons"
)

// stepPlan declares what a step needs from upstream. A failed required call
// fails the step; a failed optional call degrades to its empty default.
type stepPlan struct {
	required []upstreamCall
	optional []upstreamCall
}

// stepPlans is the declarative route table: one plan per workflow step.
// The completed step renders from the booking record alone.
var stepPlans = map[models.RouteToken]stepPlan{
	models.RouteVehicleSelection: {required: []upstreamCall{callListVehicles}},
	models.RouteProtections:      {required: []upstreamCall{callListProtections}},
	models.RouteAddons:           {required: []upstreamCall{callListAddons}},
	models.RouteSummary: {
		required: []upstreamCall{callGetBooking},
		optional: []upstreamCall{callListAddons},
	},
	models.RouteKeyLocker: {required: []upstreamCall{callGetBooking}},
	models.RouteCompleted: {required: []upstreamCall{callGetBooking}},
}

func (p stepPlan) calls() []upstreamCall {
	out := make([]upstreamCall, 0, len(p.required)+len(p.optional))
	out = append(out, p.required...)
	out = append(out, p.optional...)
	return out
}

func (p stepPlan) isRequired(call upstreamCall) bool {
	for _, c := range p.required {
		if c == call {
			return true
		}
	}
	return false
}

// applyDefault fills the documented empty default for a failed optional
// call so the merged result never carries a null section.
func applyDefault(call upstreamCall, data *models.StepData) {
	switch call {
	case callListAddons:
		data.AddonGroups = []models.AddonGroup{}
	}
}
