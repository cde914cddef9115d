package checkout

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"rentkiosk/models"
	"rentkiosk/services/reservation"
)

func TestNormalizeBooking(t *testing.T) {
	raw := json.RawMessage(`{"id":"B1","status":"booking","pickupStation":"MUC","driverName":"A. Driver"}`)

	booking, err := NormalizeBooking(raw)
	if err != nil {
		t.Fatalf("NormalizeBooking returned error: %v", err)
	}
	if booking.ID != "B1" {
		t.Errorf("ID = %q, want B1", booking.ID)
	}
	if booking.Status != models.StatusBooking {
		t.Errorf("Status = %q, want booking", booking.Status)
	}
	if _, ok := booking.Extra["pickupStation"]; !ok {
		t.Error("uninterpreted field pickupStation was dropped")
	}
}

func TestNormalizeBookingMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing id", `{"status":"booking"}`},
		{"missing status", `{"id":"B1"}`},
		{"not json", `not json`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeBooking(json.RawMessage(tt.raw))
			var malformed *reservation.MalformedResponseError
			if !errors.As(err, &malformed) {
				t.Errorf("error = %v, want MalformedResponseError", err)
			}
		})
	}
}

func TestNormalizeBookingIdempotent(t *testing.T) {
	raw := json.RawMessage(`{"id":"B1","status":"rent","pickupStation":"MUC"}`)

	first, err := NormalizeBooking(raw)
	if err != nil {
		t.Fatalf("first normalization failed: %v", err)
	}
	reserialized, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("re-serialization failed: %v", err)
	}
	second, err := NormalizeBooking(reserialized)
	if err != nil {
		t.Fatalf("second normalization failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("normalization not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func dealPayloadFixture() reservation.DealPayload {
	return reservation.DealPayload{
		DealInfo: "weekend rate",
		Pricing: reservation.PricePayload{
			DiscountPercentage: 15,
			DisplayPrice:       reservation.MoneyPayload{Amount: 42.5, Currency: "EUR", Suffix: "/day"},
			ListPrice:          &reservation.MoneyPayload{Amount: 50, Currency: "EUR", Suffix: "/day"},
			TotalPrice:         reservation.MoneyPayload{Amount: 127.5, Currency: "EUR"},
		},
		Tags: []string{"popular"},
		Vehicle: reservation.VehiclePayload{
			ID:              "V1",
			Brand:           "BMW",
			Model:           "i3",
			PassengersCount: 4,
			BagsCount:       2,
			VehicleCost:     reservation.ValueMoneyPayload{Currency: "EUR", Value: 127.5},
		},
	}
}

func TestNormalizeDealDefaults(t *testing.T) {
	deal, err := NormalizeDeal(dealPayloadFixture())
	if err != nil {
		t.Fatalf("NormalizeDeal returned error: %v", err)
	}
	if deal.Vehicle.Images == nil {
		t.Error("Images is nil, want empty slice")
	}
	if deal.Vehicle.Attributes == nil {
		t.Error("Attributes is nil, want empty slice")
	}
	if deal.Pricing.ListPrice == nil {
		t.Fatal("ListPrice dropped during normalization")
	}
	if !deal.Pricing.Discounted() {
		t.Error("Discounted() = false with a list price present")
	}
	if deal.Vehicle.Cost.Amount != 127.5 || deal.Vehicle.Cost.Currency != "EUR" {
		t.Errorf("Cost = %+v, want 127.5 EUR", deal.Vehicle.Cost)
	}
}

func TestNormalizeDealPriceBounds(t *testing.T) {
	tests := []struct {
		name  string
		mut   func(*reservation.DealPayload)
		check func(t *testing.T, deal models.Deal)
	}{
		{
			name: "negative display amount clamps to zero",
			mut: func(p *reservation.DealPayload) {
				p.Pricing.DisplayPrice.Amount = -42.5
			},
			check: func(t *testing.T, deal models.Deal) {
				if got := deal.Pricing.DisplayPrice.Amount; got != 0 {
					t.Errorf("DisplayPrice.Amount = %v, want 0", got)
				}
			},
		},
		{
			name: "negative vehicle cost clamps to zero",
			mut: func(p *reservation.DealPayload) {
				p.Vehicle.VehicleCost.Value = -1
			},
			check: func(t *testing.T, deal models.Deal) {
				if got := deal.Vehicle.Cost.Amount; got != 0 {
					t.Errorf("Cost.Amount = %v, want 0", got)
				}
			},
		},
		{
			name: "list price below total is dropped",
			mut: func(p *reservation.DealPayload) {
				p.Pricing.TotalPrice.Amount = 99
				p.Pricing.ListPrice = &reservation.MoneyPayload{Amount: 10, Currency: "EUR"}
			},
			check: func(t *testing.T, deal models.Deal) {
				if deal.Pricing.ListPrice != nil {
					t.Errorf("ListPrice = %+v, want absent when total exceeds it", deal.Pricing.ListPrice)
				}
			},
		},
		{
			name: "list price equal to total is kept",
			mut: func(p *reservation.DealPayload) {
				p.Pricing.TotalPrice.Amount = 50
				p.Pricing.ListPrice = &reservation.MoneyPayload{Amount: 50, Currency: "EUR"}
			},
			check: func(t *testing.T, deal models.Deal) {
				if deal.Pricing.ListPrice == nil {
					t.Error("ListPrice dropped, want kept when total equals it")
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := dealPayloadFixture()
			tt.mut(&payload)
			deal, err := NormalizeDeal(payload)
			if err != nil {
				t.Fatalf("NormalizeDeal returned error: %v", err)
			}
			tt.check(t, deal)
		})
	}
}

func TestNormalizeDealPriceTag(t *testing.T) {
	payload := dealPayloadFixture()
	deal, err := NormalizeDeal(payload)
	if err != nil {
		t.Fatalf("NormalizeDeal returned error: %v", err)
	}
	if deal.PriceTag != "42.50€/day" {
		t.Errorf("derived PriceTag = %q, want 42.50€/day", deal.PriceTag)
	}

	payload.PriceTag = "from €40"
	deal, err = NormalizeDeal(payload)
	if err != nil {
		t.Fatalf("NormalizeDeal returned error: %v", err)
	}
	if deal.PriceTag != "from €40" {
		t.Errorf("upstream PriceTag = %q, want kept verbatim", deal.PriceTag)
	}
}

func TestNormalizeDealMissingVehicleID(t *testing.T) {
	payload := dealPayloadFixture()
	payload.Vehicle.ID = ""

	_, err := NormalizeDeal(payload)
	var malformed *reservation.MalformedResponseError
	if !errors.As(err, &malformed) {
		t.Errorf("error = %v, want MalformedResponseError", err)
	}
}

func TestNormalizeDealIdempotent(t *testing.T) {
	first, err := NormalizeDeal(dealPayloadFixture())
	if err != nil {
		t.Fatalf("first normalization failed: %v", err)
	}
	reserialized, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("re-serialization failed: %v", err)
	}
	var payload reservation.DealPayload
	if err := json.Unmarshal(reserialized, &payload); err != nil {
		t.Fatalf("re-parse failed: %v", err)
	}
	second, err := NormalizeDeal(payload)
	if err != nil {
		t.Fatalf("second normalization failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("normalization not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestNormalizeProtectionsNoListPrice(t *testing.T) {
	payload := &reservation.ProtectionsPayload{
		ProtectionPackages: []reservation.ProtectionPackagePayload{{
			ID:          "P1",
			Name:        "Basic",
			RatingStars: 3,
			Price: reservation.PricePayload{
				DiscountPercentage: 10,
				DisplayPrice:       reservation.MoneyPayload{Amount: 12, Currency: "EUR", Suffix: "/day"},
				TotalPrice:         reservation.MoneyPayload{Amount: 36, Currency: "EUR"},
			},
		}},
	}

	packages := NormalizeProtections(payload)
	if len(packages) != 1 {
		t.Fatalf("got %d packages, want 1", len(packages))
	}
	price := packages[0].Price
	if price.ListPrice != nil {
		t.Error("ListPrice inferred from discount, want absent")
	}
	if price.DiscountPercentage != 10 {
		t.Errorf("DiscountPercentage = %v, want the given 10", price.DiscountPercentage)
	}
	if packages[0].Includes == nil || packages[0].Excludes == nil {
		t.Error("coverage lists are nil, want empty slices")
	}
}

func TestNormalizeAddonGroupsSelectionBounds(t *testing.T) {
	payload := &reservation.AddonsPayload{
		Addons: []reservation.AddonGroupPayload{{
			ID:   1,
			Name: "Extras",
			Options: []reservation.AddonOptionPayload{{
				ChargeDetail: reservation.ChargeDetailPayload{ID: "A1", Title: "Child seat"},
				AdditionalInfo: reservation.AddonInfoPayload{
					Price: reservation.PricePayload{
						DisplayPrice: reservation.MoneyPayload{Amount: 8, Currency: "EUR", Suffix: "/day"},
						TotalPrice:   reservation.MoneyPayload{Amount: 24, Currency: "EUR"},
					},
					SelectionStrategy: reservation.SelectionStrategyPayload{
						CurrentSelection:        4,
						MaxSelectionLimit:       3,
						IsMultiSelectionAllowed: false,
					},
				},
			}},
		}},
	}

	groups := NormalizeAddonGroups(payload)
	strategy := groups[0].Options[0].AdditionalInfo.SelectionStrategy
	if strategy.MaxSelectionLimit != 1 {
		t.Errorf("MaxSelectionLimit = %d for single-select group, want 1", strategy.MaxSelectionLimit)
	}
	if strategy.CurrentSelection > strategy.MaxSelectionLimit {
		t.Errorf("CurrentSelection %d exceeds limit %d", strategy.CurrentSelection, strategy.MaxSelectionLimit)
	}
	if got := groups[0].Options[0].AdditionalInfo.PriceLabel; got != "€8.00/day" {
		t.Errorf("PriceLabel = %q, want €8.00/day", got)
	}
}

func TestNormalizeRecommendation(t *testing.T) {
	payload := &reservation.RecommendationPayload{}
	payload.BaseCar.Raw = dealPayloadFixture()
	payload.UpsellCar.Raw = dealPayloadFixture()
	payload.UpsellCar.Raw.Vehicle.ID = "V2"

	rec, err := NormalizeRecommendation(payload)
	if err != nil {
		t.Fatalf("NormalizeRecommendation returned error: %v", err)
	}
	if rec.BaseCar.Vehicle.ID != "V1" || rec.UpsellCar.Vehicle.ID != "V2" {
		t.Errorf("vehicle ids = %q/%q, want V1/V2", rec.BaseCar.Vehicle.ID, rec.UpsellCar.Vehicle.ID)
	}
	if rec.UpsellReasons == nil {
		t.Error("UpsellReasons is nil, want empty slice")
	}
}
