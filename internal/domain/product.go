package domain

// Product is a storefront product as returned by the backend.
// Monetary fields are plain numbers in the backend's currency; the client
// never converts them, it echoes back what it was given.
type Product struct {
	ID            string   `json:"_id"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Price         float64  `json:"price"`
	DiscountPrice float64  `json:"discountPrice,omitempty"`
	Images        []string `json:"images,omitempty"`
	Stock         int      `json:"stock"`
	Category      string   `json:"category,omitempty"`
	Brand         string   `json:"brand,omitempty"`
	IsActive      bool     `json:"isActive"`
	IsHotDeal     bool     `json:"isHotDeal,omitempty"`
}

// UnitPrice resolves the effective selling price: the discounted price when
// one is set, otherwise the regular price.
func (p Product) UnitPrice() float64 {
	if p.DiscountPrice > 0 {
		return p.DiscountPrice
	}
	return p.Price
}

// DisplayImage returns the primary image reference, or "" when the product
// has none.
func (p Product) DisplayImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
