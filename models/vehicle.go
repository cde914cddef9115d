package models

// VehicleAttribute is one free-form descriptive attribute on a vehicle.
type VehicleAttribute struct {
	AttributeType string `json:"attributeType"`
	IconURL       string `json:"iconUrl,omitempty"`
	Key           string `json:"key"`
	Title         string `json:"title"`
	Value         string `json:"value"`
}

// Vehicle describes one rentable car as the fleet catalog reports it.
// Images may be empty but is never nil.
type Vehicle struct {
	ID                 string             `json:"id"`
	AcrissCode         string             `json:"acrissCode"`
	Brand              string             `json:"brand"`
	Model              string             `json:"model"`
	GroupType          string             `json:"groupType"`
	FuelType           string             `json:"fuelType"`
	TransmissionType   string             `json:"transmissionType"`
	TyreType           string             `json:"tyreType"`
	PassengersCount    int                `json:"passengersCount"`
	BagsCount          int                `json:"bagsCount"`
	Attributes         []VehicleAttribute `json:"attributes"`
	Images             []string           `json:"images"`
	Cost               Money              `json:"vehicleCost"`
	Status             string             `json:"vehicleStatus"`
	IsRecommended      bool               `json:"isRecommended"`
	IsNewCar           bool               `json:"isNewCar"`
	IsExcitingDiscount bool               `json:"isExcitingDiscount"`
	IsMoreLuxury       bool               `json:"isMoreLuxury"`
	UpsellReasons      []string           `json:"upsellReasons,omitempty"`
}

// Deal is one purchasable offer: a vehicle with its pricing and tags.
type Deal struct {
	Vehicle  Vehicle  `json:"vehicle"`
	Pricing  Price    `json:"pricing"`
	DealInfo string   `json:"dealInfo"`
	PriceTag string   `json:"priceTag,omitempty"`
	Tags     []string `json:"tags"`
}
