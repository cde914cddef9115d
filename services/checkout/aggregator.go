package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"rentkiosk/models"
	"rentkiosk/services/reservation"

	"go.uber.org/zap"
)

// retryDelay is the pause before the single retry granted to a call that
// failed with UpstreamUnavailable.
const retryDelay = 200 * time.Millisecond

// runStep fans out every call the step's plan declares, waits for all of
// them to settle, then merges. A failed required call aborts with
// StepDataUnavailableError; a failed optional call degrades to its default.
// prefetched, when non-nil, satisfies the plan's getBooking dependency
// without a second upstream round trip.
func (s *DefaultCheckoutService) runStep(ctx context.Context, bookingID string, route models.RouteToken, prefetched *models.Booking) (*models.StepData, error) {
	plan, ok := stepPlans[route]
	if !ok {
		return nil, &WorkflowError{Reason: fmt.Sprintf("unknown step %q", route)}
	}

	type callResult struct {
		call upstreamCall
		data models.StepData
		err  error
	}

	calls := plan.calls()
	resultCh := make(chan callResult, len(calls))
	var wg sync.WaitGroup

	for _, call := range calls {
		wg.Add(1)
		go func(call upstreamCall) {
			defer wg.Done()
			data, err := s.fetch(ctx, bookingID, call, prefetched)
			resultCh <- callResult{call: call, data: data, err: err}
		}(call)
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	// Merge only after every call has settled.
	merged := models.StepData{}
	var requiredErr error
	for cr := range resultCh {
		if cr.err != nil {
			if plan.isRequired(cr.call) {
				if requiredErr == nil {
					requiredErr = cr.err
				}
				continue
			}
			s.Logger.Warn("Optional step dependency failed, using default",
				zap.String("step", string(route)),
				zap.String("call", string(cr.call)),
				zap.Error(cr.err))
			applyDefault(cr.call, &merged)
			continue
		}
		mergeStepData(&merged, cr.data)
	}

	if requiredErr != nil {
		return nil, &StepDataUnavailableError{Step: route, Cause: requiredErr}
	}
	return &merged, nil
}

// fetch performs one upstream call, normalizes the payload, and returns the
// StepData fragment it contributes.
func (s *DefaultCheckoutService) fetch(ctx context.Context, bookingID string, call upstreamCall, prefetched *models.Booking) (models.StepData, error) {
	switch call {
	case callGetBooking:
		if prefetched != nil {
			return models.StepData{Booking: prefetched}, nil
		}
		raw, err := fetchWithRetry(ctx, func() (any, error) {
			return s.Upstream.GetBooking(ctx, bookingID)
		})
		if err != nil {
			return models.StepData{}, err
		}
		booking, err := NormalizeBooking(raw.(json.RawMessage))
		if err != nil {
			return models.StepData{}, err
		}
		return models.StepData{Booking: &booking}, nil

	case callListVehicles:
		payload, err := fetchWithRetry(ctx, func() (any, error) {
			return s.Upstream.ListVehicles(ctx, bookingID)
		})
		if err != nil {
			return models.StepData{}, err
		}
		vehicles := payload.(*reservation.VehiclesPayload)
		deals, err := NormalizeDeals(vehicles)
		if err != nil {
			return models.StepData{}, err
		}
		return models.StepData{
			Deals:         deals,
			TotalVehicles: vehicles.TotalVehicles,
			ReservationID: vehicles.ReservationID,
		}, nil

	case callListProtections:
		payload, err := fetchWithRetry(ctx, func() (any, error) {
			return s.Upstream.ListProtections(ctx, bookingID)
		})
		if err != nil {
			return models.StepData{}, err
		}
		return models.StepData{
			Protections: NormalizeProtections(payload.(*reservation.ProtectionsPayload)),
		}, nil

	case callListAddons:
		payload, err := fetchWithRetry(ctx, func() (any, error) {
			return s.Upstream.ListAddons(ctx, bookingID)
		})
		if err != nil {
			return models.StepData{}, err
		}
		return models.StepData{
			AddonGroups: NormalizeAddonGroups(payload.(*reservation.AddonsPayload)),
		}, nil
	}
	return models.StepData{}, &WorkflowError{Reason: fmt.Sprintf("unknown upstream call %q", call)}
}

// fetchWithRetry grants one retry, after a short delay, when the first
// attempt failed at the network level. Definite upstream errors, malformed
// payloads, and bad arguments are never retried.
func fetchWithRetry(ctx context.Context, fn func() (any, error)) (any, error) {
	out, err := fn()
	if err == nil {
		return out, nil
	}
	var unavailable *reservation.UnavailableError
	if !errors.As(err, &unavailable) {
		return nil, err
	}

	select {
	case <-time.After(retryDelay):
	case <-ctx.Done():
		return nil, err
	}
	return fn()
}

func mergeStepData(dst *models.StepData, src models.StepData) {
	if src.Booking != nil {
		dst.Booking = src.Booking
	}
	if src.Deals != nil {
		dst.Deals = src.Deals
		dst.TotalVehicles = src.TotalVehicles
		dst.ReservationID = src.ReservationID
	}
	if src.Protections != nil {
		dst.Protections = src.Protections
	}
	if src.AddonGroups != nil {
		dst.AddonGroups = src.AddonGroups
	}
}
