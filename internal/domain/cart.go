package domain

// Cart domain errors.
var (
	ErrLineNotFound = &Error{Code: ENOTFOUND, Message: "Cart line not found"}
)

// CartLine is one product entry in the shopping cart.
//
// Name and Image are a snapshot taken when the line was first added; they do
// not track later changes to the source product. UnitPrice is resolved once
// at add time (discounted price if present, else regular price).
type CartLine struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Image     string  `json:"image,omitempty"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// LineTotal is the derived line amount. Never stored.
func (l CartLine) LineTotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// NewCartLine builds a line from a product snapshot with the given quantity.
func NewCartLine(p Product, quantity int) CartLine {
	return CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Image:     p.DisplayImage(),
		UnitPrice: p.UnitPrice(),
		Quantity:  quantity,
	}
}
