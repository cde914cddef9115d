package models

// Recommendation pairs the currently viewed deal with a suggested upgrade.
// Produced by the recommendation engine per request, never persisted.
type Recommendation struct {
	BaseCar       Deal     `json:"baseCar"`
	UpsellCar     Deal     `json:"upsellCar"`
	UpsellReasons []string `json:"upsellReasons"`
}
