package domain

// Category is a product category.
type Category struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Brand is a product brand.
type Brand struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Banner is a storefront hero banner.
type Banner struct {
	ID    string `json:"_id"`
	Title string `json:"title,omitempty"`
	Image string `json:"image"`
	Link  string `json:"link,omitempty"`
}
