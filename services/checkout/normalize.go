package checkout

import (
	"encoding/json"
	"errors"

	"rentkiosk/models"
	"rentkiosk/services/reservation"
	"rentkiosk/utils"
)

// Normalization of raw reservation payloads into the domain model. All
// functions are pure; missing optional fields map to defaults, missing
// identity fields fail with MalformedResponseError.

// NormalizeBooking parses the open booking record. ID and status are the
// only fields the orchestrator interprets; everything else rides along.
func NormalizeBooking(raw json.RawMessage) (models.Booking, error) {
	var booking models.Booking
	if err := json.Unmarshal(raw, &booking); err != nil {
		return models.Booking{}, &reservation.MalformedResponseError{Op: "getBooking", Err: err}
	}
	if booking.ID == "" {
		return models.Booking{}, &reservation.MalformedResponseError{Op: "getBooking", Err: errors.New("booking id missing")}
	}
	if booking.Status == "" {
		return models.Booking{}, &reservation.MalformedResponseError{Op: "getBooking", Err: errors.New("booking status missing")}
	}
	return booking, nil
}

// Money amounts are never negative; a negative upstream value clamps to
// zero.
func nonNegativeAmount(amount float64) float64 {
	if amount < 0 {
		return 0
	}
	return amount
}

func normalizeMoney(p reservation.MoneyPayload) models.Money {
	return models.Money{
		Amount:   nonNegativeAmount(p.Amount),
		Currency: p.Currency,
		Prefix:   p.Prefix,
		Suffix:   p.Suffix,
	}
}

func normalizeValueMoney(p reservation.ValueMoneyPayload) models.Money {
	return models.Money{Amount: nonNegativeAmount(p.Value), Currency: p.Currency}
}

// NormalizePrice maps the pricing breakdown. An absent listPrice means no
// discount; the discount percentage is taken as given, never inferred. A
// list price below the total claims a negative discount, so it is dropped.
func NormalizePrice(p reservation.PricePayload) models.Price {
	price := models.Price{
		DiscountPercentage: p.DiscountPercentage,
		DisplayPrice:       normalizeMoney(p.DisplayPrice),
		TotalPrice:         normalizeMoney(p.TotalPrice),
	}
	if p.ListPrice != nil {
		list := normalizeMoney(*p.ListPrice)
		if price.TotalPrice.Amount <= list.Amount {
			price.ListPrice = &list
		}
	}
	return price
}

// NormalizeVehicle maps one catalog vehicle. The vehicle id is required;
// images and attributes default to empty, never nil.
func NormalizeVehicle(p reservation.VehiclePayload) (models.Vehicle, error) {
	if p.ID == "" {
		return models.Vehicle{}, &reservation.MalformedResponseError{Op: "listVehicles", Err: errors.New("vehicle id missing")}
	}
	attrs := make([]models.VehicleAttribute, 0, len(p.Attributes))
	for _, a := range p.Attributes {
		attrs = append(attrs, models.VehicleAttribute{
			AttributeType: a.AttributeType,
			IconURL:       a.IconURL,
			Key:           a.Key,
			Title:         a.Title,
			Value:         a.Value,
		})
	}
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return models.Vehicle{
		ID:                 p.ID,
		AcrissCode:         p.AcrissCode,
		Brand:              p.Brand,
		Model:              p.Model,
		GroupType:          p.GroupType,
		FuelType:           p.FuelType,
		TransmissionType:   p.TransmissionType,
		TyreType:           p.TyreType,
		PassengersCount:    p.PassengersCount,
		BagsCount:          p.BagsCount,
		Attributes:         attrs,
		Images:             images,
		Cost:               normalizeValueMoney(p.VehicleCost),
		Status:             p.VehicleStatus,
		IsRecommended:      p.IsRecommended,
		IsNewCar:           p.IsNewCar,
		IsExcitingDiscount: p.IsExcitingDiscount,
		IsMoreLuxury:       p.IsMoreLuxury,
		UpsellReasons:      p.UpsellReasons,
	}, nil
}

// NormalizeDeal maps one priced vehicle offer. A missing price tag is
// derived from the display price so the kiosk always has a label to show.
func NormalizeDeal(p reservation.DealPayload) (models.Deal, error) {
	vehicle, err := NormalizeVehicle(p.Vehicle)
	if err != nil {
		return models.Deal{}, err
	}
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	pricing := NormalizePrice(p.Pricing)
	priceTag := p.PriceTag
	if priceTag == "" {
		priceTag = utils.FormatDealPrice(pricing.DisplayPrice)
	}
	return models.Deal{
		Vehicle:  vehicle,
		Pricing:  pricing,
		DealInfo: p.DealInfo,
		PriceTag: priceTag,
		Tags:     tags,
	}, nil
}

// NormalizeDeals maps the full vehicle catalog response.
func NormalizeDeals(p *reservation.VehiclesPayload) ([]models.Deal, error) {
	deals := make([]models.Deal, 0, len(p.Deals))
	for _, d := range p.Deals {
		deal, err := NormalizeDeal(d)
		if err != nil {
			return nil, err
		}
		deals = append(deals, deal)
	}
	return deals, nil
}

func normalizeCoverages(items []reservation.ProtectionCoveragePayload) []models.ProtectionCoverage {
	out := make([]models.ProtectionCoverage, 0, len(items))
	for _, it := range items {
		tags := it.Tags
		if tags == nil {
			tags = []string{}
		}
		out = append(out, models.ProtectionCoverage{
			ID:          it.ID,
			Title:       it.Title,
			Description: it.Description,
			Tags:        tags,
		})
	}
	return out
}

// NormalizeProtections maps the protection package catalog.
func NormalizeProtections(p *reservation.ProtectionsPayload) []models.ProtectionPackage {
	packages := make([]models.ProtectionPackage, 0, len(p.ProtectionPackages))
	for _, pkg := range p.ProtectionPackages {
		packages = append(packages, models.ProtectionPackage{
			ID:                    pkg.ID,
			Name:                  pkg.Name,
			Description:           pkg.Description,
			RatingStars:           pkg.RatingStars,
			DeductibleAmount:      normalizeValueMoney(pkg.DeductibleAmount),
			IsDeductibleAvailable: pkg.IsDeductibleAvailable,
			Includes:              normalizeCoverages(pkg.Includes),
			Excludes:              normalizeCoverages(pkg.Excludes),
			Price:                 NormalizePrice(pkg.Price),
			IsPreviouslySelected:  pkg.IsPreviouslySelected,
			IsSelected:            pkg.IsSelected,
			IsNudge:               pkg.IsNudge,
		})
	}
	return packages
}

// NormalizeAddonGroups maps the addon catalog, enforcing the selection
// strategy bounds: a single-select group has a limit of 1, and the current
// selection never exceeds the limit.
func NormalizeAddonGroups(p *reservation.AddonsPayload) []models.AddonGroup {
	groups := make([]models.AddonGroup, 0, len(p.Addons))
	for _, g := range p.Addons {
		options := make([]models.AddonOption, 0, len(g.Options))
		for _, o := range g.Options {
			tags := o.ChargeDetail.Tags
			if tags == nil {
				tags = []string{}
			}
			strategy := models.SelectionStrategy{
				CurrentSelection:        o.AdditionalInfo.SelectionStrategy.CurrentSelection,
				MaxSelectionLimit:       o.AdditionalInfo.SelectionStrategy.MaxSelectionLimit,
				IsMultiSelectionAllowed: o.AdditionalInfo.SelectionStrategy.IsMultiSelectionAllowed,
			}
			if !strategy.IsMultiSelectionAllowed {
				strategy.MaxSelectionLimit = 1
			}
			if strategy.CurrentSelection > strategy.MaxSelectionLimit {
				strategy.CurrentSelection = strategy.MaxSelectionLimit
			}
			price := NormalizePrice(o.AdditionalInfo.Price)
			options = append(options, models.AddonOption{
				ChargeDetail: models.ChargeDetail{
					ID:          o.ChargeDetail.ID,
					Title:       o.ChargeDetail.Title,
					Description: o.ChargeDetail.Description,
					IconURL:     o.ChargeDetail.IconURL,
					Tags:        tags,
				},
				AdditionalInfo: models.AddonInfo{
					IsEnabled:            o.AdditionalInfo.IsEnabled,
					IsSelected:           o.AdditionalInfo.IsSelected,
					IsPreviouslySelected: o.AdditionalInfo.IsPreviouslySelected,
					IsNudge:              o.AdditionalInfo.IsNudge,
					Price:                price,
					PriceLabel:           utils.FormatPrice(price.DisplayPrice.Amount, price.DisplayPrice.Currency, price.DisplayPrice.Suffix),
					SelectionStrategy:    strategy,
				},
			})
		}
		groups = append(groups, models.AddonGroup{
			ID:      g.ID,
			Name:    g.Name,
			Options: options,
		})
	}
	return groups
}

// NormalizeRecommendation maps one upsell pairing from the recommendation
// engine.
func NormalizeRecommendation(p *reservation.RecommendationPayload) (models.Recommendation, error) {
	base, err := NormalizeDeal(p.BaseCar.Raw)
	if err != nil {
		return models.Recommendation{}, err
	}
	upsell, err := NormalizeDeal(p.UpsellCar.Raw)
	if err != nil {
		return models.Recommendation{}, err
	}
	reasons := p.UpsellReasons
	if reasons == nil {
		reasons = []string{}
	}
	return models.Recommendation{
		BaseCar:       base,
		UpsellCar:     upsell,
		UpsellReasons: reasons,
	}, nil
}
