package models

// ProtectionCoverage is one included or excluded coverage item.
type ProtectionCoverage struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// ProtectionPackage is one insurance tier offered for the booking.
type ProtectionPackage struct {
	ID                    string               `json:"id"`
	Name                  string               `json:"name"`
	Description           string               `json:"description,omitempty"`
	RatingStars           int                  `json:"ratingStars"`
	DeductibleAmount      Money                `json:"deductibleAmount"`
	IsDeductibleAvailable bool                 `json:"isDeductibleAvailable"`
	Includes              []ProtectionCoverage `json:"includes"`
	Excludes              []ProtectionCoverage `json:"excludes"`
	Price                 Price                `json:"price"`
	IsPreviouslySelected  bool                 `json:"isPreviouslySelected"`
	IsSelected            bool                 `json:"isSelected"`
	IsNudge               bool                 `json:"isNudge"`
}
