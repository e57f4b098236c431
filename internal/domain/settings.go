package domain

// DefaultShippingCost seeds checkout when the settings resource is
// unavailable or carries no shipping figure.
const DefaultShippingCost = 100

// Settings is the store-wide settings resource. Only the fields the client
// reads are typed.
type Settings struct {
	SiteName              string  `json:"siteName,omitempty"`
	SupportPhone          string  `json:"supportPhone,omitempty"`
	ShippingAllBangladesh float64 `json:"shippingAllBangladesh,omitempty"`
	FacebookPixelID       string  `json:"facebookPixelId,omitempty"`
	GoogleTagManagerID    string  `json:"googleTagManagerId,omitempty"`
}

// ShippingCost returns the flat shipping figure, falling back to the default
// when settings carry none.
func (s Settings) ShippingCost() float64 {
	if s.ShippingAllBangladesh > 0 {
		return s.ShippingAllBangladesh
	}
	return DefaultShippingCost
}
