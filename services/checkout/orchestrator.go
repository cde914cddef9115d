package checkout

import (
	"context"
	"encoding/json"

	"rentkiosk/models"
	"rentkiosk/services/reservation"

	"go.uber.org/zap"
)

// Navigate resolves the booking, computes the target step for its status,
// and loads that step's data. Read-only with respect to booking state, so
// it may be called repeatedly for the same identifier.
func (s *DefaultCheckoutService) Navigate(ctx context.Context, bookingID string) (*models.NavigationResult, error) {
	if bookingID == "" {
		return nil, &reservation.InvalidArgumentError{Field: "bookingID"}
	}

	raw, err := fetchWithRetry(ctx, func() (any, error) {
		return s.Upstream.GetBooking(ctx, bookingID)
	})
	if err != nil {
		return nil, err
	}
	booking, err := NormalizeBooking(raw.(json.RawMessage))
	if err != nil {
		return nil, err
	}

	route, err := RouteForStatus(booking.Status)
	if err != nil {
		s.Logger.Warn("Booking status has no route",
			zap.String("bookingID", bookingID),
			zap.String("status", string(booking.Status)))
		return nil, err
	}

	data, err := s.runStep(ctx, bookingID, route, &booking)
	if err != nil {
		return nil, err
	}

	s.Logger.Info("Navigation resolved",
		zap.String("bookingID", bookingID),
		zap.String("status", string(booking.Status)),
		zap.String("route", string(route)))

	return &models.NavigationResult{
		BookingID: bookingID,
		Route:     route,
		Data:      *data,
	}, nil
}

// LoadStep runs the aggregator for an explicitly requested step, for kiosks
// landing on a step page directly.
func (s *DefaultCheckoutService) LoadStep(ctx context.Context, bookingID string, route models.RouteToken) (*models.StepData, error) {
	if bookingID == "" {
		return nil, &reservation.InvalidArgumentError{Field: "bookingID"}
	}
	return s.runStep(ctx, bookingID, route, nil)
}

// Recommend fetches and normalizes an upsell pairing for a vehicle.
func (s *DefaultCheckoutService) Recommend(ctx context.Context, vehicleID string) (*models.Recommendation, error) {
	payload, err := s.Upstream.GetRecommendation(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	rec, err := NormalizeRecommendation(payload)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// CreateBooking proxies the upstream booking creation and returns its
// payload verbatim.
func (s *DefaultCheckoutService) CreateBooking(ctx context.Context) (json.RawMessage, error) {
	return s.Upstream.CreateBooking(ctx)
}

// SelectProtection proxies the protection selection mutation upstream.
func (s *DefaultCheckoutService) SelectProtection(ctx context.Context, bookingID, protectionID string) (json.RawMessage, error) {
	return s.Upstream.SelectProtection(ctx, bookingID, protectionID)
}

// CompleteBooking proxies the completion mutation upstream.
func (s *DefaultCheckoutService) CompleteBooking(ctx context.Context, bookingID string) (json.RawMessage, error) {
	return s.Upstream.CompleteBooking(ctx, bookingID)
}
