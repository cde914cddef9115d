package checkout

import (
	"context"
	"encoding/json"

	"rentkiosk/models"
	"rentkiosk/services/reservation"

	"go.uber.org/zap"
)

// ReservationAPI is the slice of the reservation client the orchestrator
// depends on.
type ReservationAPI interface {
	GetBooking(ctx context.Context, bookingID string) (json.RawMessage, error)
	ListVehicles(ctx context.Context, bookingID string) (*reservation.VehiclesPayload, error)
	ListProtections(ctx context.Context, bookingID string) (*reservation.ProtectionsPayload, error)
	ListAddons(ctx context.Context, bookingID string) (*reservation.AddonsPayload, error)
	GetRecommendation(ctx context.Context, vehicleID string) (*reservation.RecommendationPayload, error)
	CreateBooking(ctx context.Context) (json.RawMessage, error)
	SelectProtection(ctx context.Context, bookingID, protectionID string) (json.RawMessage, error)
	CompleteBooking(ctx context.Context, bookingID string) (json.RawMessage, error)
}

// CheckoutService drives the kiosk checkout workflow: status-based
// navigation, per-step data loading, and proxied booking mutations.
type CheckoutService interface {
	Navigate(ctx context.Context, bookingID string) (*models.NavigationResult, error)
	LoadStep(ctx context.Context, bookingID string, route models.RouteToken) (*models.StepData, error)
	Recommend(ctx context.Context, vehicleID string) (*models.Recommendation, error)
	CreateBooking(ctx context.Context) (json.RawMessage, error)
	SelectProtection(ctx context.Context, bookingID, protectionID string) (json.RawMessage, error)
	CompleteBooking(ctx context.Context, bookingID string) (json.RawMessage, error)
}

// DefaultCheckoutService implements CheckoutService.
type DefaultCheckoutService struct {
	Upstream ReservationAPI
	Logger   *zap.Logger
}
