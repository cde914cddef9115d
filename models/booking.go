package models

import "encoding/json"

// BookingStatus is the lifecycle token reported by the reservation service.
// The set is open; unrecognized tokens are carried as-is and rejected by the
// status router rather than silently routed.
type BookingStatus string

const (
	StatusBooking         BookingStatus = "booking"
	StatusVehicleSelected BookingStatus = "vehicleSelected"
	StatusRent            BookingStatus = "rent"
	StatusCompleted       BookingStatus = "completed"
)

// Booking is an ephemeral, read-mostly copy of the upstream reservation
// record. Extra holds every upstream field the orchestrator does not
// interpret, preserved verbatim for the presentation layer.
type Booking struct {
	ID     string                     `json:"id"`
	Status BookingStatus              `json:"status"`
	Extra  map[string]json.RawMessage `json:"-"`
}

// MarshalJSON folds the uninterpreted upstream fields back alongside the
// typed ones.
func (b Booking) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(b.Extra)+2)
	for k, v := range b.Extra {
		out[k] = v
	}
	id, err := json.Marshal(b.ID)
	if err != nil {
		return nil, err
	}
	status, err := json.Marshal(b.Status)
	if err != nil {
		return nil, err
	}
	out["id"] = id
	out["status"] = status
	return json.Marshal(out)
}

// UnmarshalJSON splits the typed fields from the open bag.
func (b *Booking) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if v, ok := raw["id"]; ok {
		if err := json.Unmarshal(v, &b.ID); err != nil {
			return err
		}
		delete(raw, "id")
	}
	if v, ok := raw["status"]; ok {
		if err := json.Unmarshal(v, &b.Status); err != nil {
			return err
		}
		delete(raw, "status")
	}
	if len(raw) > 0 {
		b.Extra = raw
	}
	return nil
}
