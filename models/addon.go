package models

// ChargeDetail identifies and describes one bookable addon charge.
type ChargeDetail struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	IconURL     string   `json:"iconUrl"`
	Tags        []string `json:"tags"`
}

// SelectionStrategy bounds how many options of a group may be selected.
// CurrentSelection never exceeds MaxSelectionLimit; when multi-selection is
// not allowed the limit is 1.
type SelectionStrategy struct {
	CurrentSelection        int  `json:"currentSelection"`
	MaxSelectionLimit       int  `json:"maxSelectionLimit"`
	IsMultiSelectionAllowed bool `json:"isMultiSelectionAllowed"`
}

// AddonInfo carries the selection state and pricing of one addon option.
// PriceLabel is the ready-to-display rendering of the display price.
type AddonInfo struct {
	IsEnabled            bool              `json:"isEnabled"`
	IsSelected           bool              `json:"isSelected"`
	IsPreviouslySelected bool              `json:"isPreviouslySelected"`
	IsNudge              bool              `json:"isNudge"`
	Price                Price             `json:"price"`
	PriceLabel           string            `json:"priceLabel"`
	SelectionStrategy    SelectionStrategy `json:"selectionStrategy"`
}

// AddonOption is one selectable extra within an addon group.
type AddonOption struct {
	ChargeDetail   ChargeDetail `json:"chargeDetail"`
	AdditionalInfo AddonInfo    `json:"additionalInfo"`
}

// AddonGroup is a named, ordered set of addon options sharing one selection
// strategy.
type AddonGroup struct {
	ID      int           `json:"id"`
	Name    string        `json:"name"`
	Options []AddonOption `json:"options"`
}
