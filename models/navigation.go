package models

// RouteToken names one workflow step of the kiosk checkout flow.
type RouteToken string

const (
	RouteVehicleSelection RouteToken = "vehicle-selection"
	RouteProtections      RouteToken = "protections"
	RouteAddons           RouteToken = "addons"
	RouteSummary          RouteToken = "summary"
	RouteKeyLocker        RouteToken = "key-locker"
	RouteCompleted        RouteToken = "completed"
)

// StepData is the merged result of one step's upstream fetches. Only the
// sections the step declares are populated; the rest stay at their zero
// values and are omitted from the wire shape.
type StepData struct {
	Booking       *Booking            `json:"booking,omitempty"`
	Deals         []Deal              `json:"deals,omitempty"`
	TotalVehicles int                 `json:"totalVehicles,omitempty"`
	ReservationID string              `json:"reservationId,omitempty"`
	Protections   []ProtectionPackage `json:"protectionPackages,omitempty"`
	AddonGroups   []AddonGroup        `json:"addonGroups,omitempty"`
}

// NavigationResult is what the orchestrator hands the presentation layer:
// where to go and the data needed to render it.
type NavigationResult struct {
	BookingID string     `json:"bookingId"`
	Route     RouteToken `json:"route"`
	Data      StepData   `json:"data"`
}
