package models

// Money is an amount with its currency token and optional display decorations.
// Amount is never negative; Currency is always set when an amount is present.
type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Prefix   string  `json:"prefix,omitempty"`
	Suffix   string  `json:"suffix,omitempty"`
}

// Price carries the display/list/total breakdown for one offer. ListPrice is
// only present when a discount applies.
type Price struct {
	DiscountPercentage float64 `json:"discountPercentage"`
	DisplayPrice       Money   `json:"displayPrice"`
	ListPrice          *Money  `json:"listPrice,omitempty"`
	TotalPrice         Money   `json:"totalPrice"`
}

// Discounted reports whether a list price is attached to this price.
func (p Price) Discounted() bool {
	return p.ListPrice != nil
}
