package checkout

import (
	"fmt"

	"rentkiosk/models"
)

// statusRoutes maps each recognized booking status to the workflow step the
// kiosk should show next. Pure lookup; "completed" is terminal.
var statusRoutes = map[models.BookingStatus]models.RouteToken{
	models.StatusBooking:         models.RouteVehicleSelection,
	models.StatusVehicleSelected: models.RouteProtections,
	models.StatusRent:            models.RouteAddons,
	models.StatusCompleted:       models.RouteCompleted,
}

// RouteForStatus computes the navigation target for a booking status. An
// unrecognized status is surfaced as a WorkflowError instead of guessing a
// route.
func RouteForStatus(status models.BookingStatus) (models.RouteToken, error) {
	route, ok := statusRoutes[status]
	if !ok {
		return "", &WorkflowError{Reason: fmt.Sprintf("unrecognized booking status %q", status)}
	}
	return route, nil
}
