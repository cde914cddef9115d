package reservation

import "encoding/json"

// Raw payload shapes as the reservation and recommendation services emit
// them. Normalization into the domain model happens in services/checkout.

type MoneyPayload struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Prefix   string  `json:"prefix"`
	Suffix   string  `json:"suffix"`
}

// ValueMoneyPayload is the alternate money shape used for vehicle costs and
// deductibles. Some emitters use "value" and some "amount" for the same
// figure, so both are accepted.
type ValueMoneyPayload struct {
	Currency string  `json:"currency"`
	Value    float64 `json:"value"`
}

func (m *ValueMoneyPayload) UnmarshalJSON(data []byte) error {
	var raw struct {
		Currency string   `json:"currency"`
		Value    *float64 `json:"value"`
		Amount   *float64 `json:"amount"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.Currency = raw.Currency
	switch {
	case raw.Value != nil:
		m.Value = *raw.Value
	case raw.Amount != nil:
		m.Value = *raw.Amount
	default:
		m.Value = 0
	}
	return nil
}

type PricePayload struct {
	DiscountPercentage float64       `json:"discountPercentage"`
	DisplayPrice       MoneyPayload  `json:"displayPrice"`
	ListPrice          *MoneyPayload `json:"listPrice,omitempty"`
	TotalPrice         MoneyPayload  `json:"totalPrice"`
}

type VehicleAttributePayload struct {
	AttributeType string `json:"attributeType"`
	IconURL       string `json:"iconUrl,omitempty"`
	Key           string `json:"key"`
	Title         string `json:"title"`
	Value         string `json:"value"`
}

type VehiclePayload struct {
	ID                 string                    `json:"id"`
	AcrissCode         string                    `json:"acrissCode"`
	Brand              string                    `json:"brand"`
	Model              string                    `json:"model"`
	GroupType          string                    `json:"groupType"`
	FuelType           string                    `json:"fuelType"`
	TransmissionType   string                    `json:"transmissionType"`
	TyreType           string                    `json:"tyreType"`
	PassengersCount    int                       `json:"passengersCount"`
	BagsCount          int                       `json:"bagsCount"`
	Attributes         []VehicleAttributePayload `json:"attributes"`
	Images             []string                  `json:"images"`
	VehicleCost        ValueMoneyPayload         `json:"vehicleCost"`
	VehicleStatus      string                    `json:"vehicleStatus"`
	IsRecommended      bool                      `json:"isRecommended"`
	IsNewCar           bool                      `json:"isNewCar"`
	IsExcitingDiscount bool                      `json:"isExcitingDiscount"`
	IsMoreLuxury       bool                      `json:"isMoreLuxury"`
	UpsellReasons      []string                  `json:"upsellReasons"`
}

type DealPayload struct {
	DealInfo string         `json:"dealInfo"`
	PriceTag string         `json:"priceTag,omitempty"`
	Pricing  PricePayload   `json:"pricing"`
	Tags     []string       `json:"tags"`
	Vehicle  VehiclePayload `json:"vehicle"`
}

type VehiclesPayload struct {
	Deals         []DealPayload `json:"deals"`
	ReservationID string        `json:"reservationId"`
	TotalVehicles int           `json:"totalVehicles"`
}

type ProtectionCoveragePayload struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

type ProtectionPackagePayload struct {
	ID                    string                      `json:"id"`
	Name                  string                      `json:"name"`
	Description           string                      `json:"description,omitempty"`
	RatingStars           int                         `json:"ratingStars"`
	DeductibleAmount      ValueMoneyPayload           `json:"deductibleAmount"`
	IsDeductibleAvailable bool                        `json:"isDeductibleAvailable"`
	Includes              []ProtectionCoveragePayload `json:"includes"`
	Excludes              []ProtectionCoveragePayload `json:"excludes"`
	Price                 PricePayload                `json:"price"`
	IsPreviouslySelected  bool                        `json:"isPreviouslySelected"`
	IsSelected            bool                        `json:"isSelected"`
	IsNudge               bool                        `json:"isNudge"`
}

type ProtectionsPayload struct {
	ProtectionPackages []ProtectionPackagePayload `json:"protectionPackages"`
}

type ChargeDetailPayload struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	IconURL     string   `json:"iconUrl"`
	Tags        []string `json:"tags"`
}

type SelectionStrategyPayload struct {
	CurrentSelection        int  `json:"currentSelection"`
	MaxSelectionLimit       int  `json:"maxSelectionLimit"`
	IsMultiSelectionAllowed bool `json:"isMultiSelectionAllowed"`
}

type AddonInfoPayload struct {
	IsEnabled            bool                     `json:"isEnabled"`
	IsSelected           bool                     `json:"isSelected"`
	IsPreviouslySelected bool                     `json:"isPreviouslySelected"`
	IsNudge              bool                     `json:"isNudge"`
	Price                PricePayload             `json:"price"`
	SelectionStrategy    SelectionStrategyPayload `json:"selectionStrategy"`
}

type AddonOptionPayload struct {
	ChargeDetail   ChargeDetailPayload `json:"chargeDetail"`
	AdditionalInfo AddonInfoPayload    `json:"additionalInfo"`
}

type AddonGroupPayload struct {
	ID      int                  `json:"id"`
	Name    string               `json:"name"`
	Options []AddonOptionPayload `json:"options"`
}

type AddonsPayload struct {
	Addons []AddonGroupPayload `json:"addons"`
}

// RecommendationPayload wraps each deal under a "raw" key, matching the
// recommendation engine's wire shape.
type RecommendationPayload struct {
	BaseCar struct {
		Raw DealPayload `json:"raw"`
	} `json:"base_car"`
	UpsellCar struct {
		Raw DealPayload `json:"raw"`
	} `json:"upsell_car"`
	UpsellReasons []string `json:"upsell_reasons"`
}
