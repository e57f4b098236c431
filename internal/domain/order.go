package domain

import "time"

// Order-related domain errors.
var (
	ErrOrderNotFound   = &Error{Code: ENOTFOUND, Message: "Order not found"}
	ErrEmptyCart       = &Error{Code: EINVALID, Message: "Cart is empty"}
	ErrDuplicateLine   = &Error{Code: ECONFLICT, Message: "Item already in order"}
	ErrUnknownProduct  = &Error{Code: ENOTFOUND, Message: "Product not in catalog"}
	ErrInvalidQuantity = &Error{Code: EINVALID, Message: "Quantity must be greater than 0"}
)

// Order statuses as the backend spells them.
const (
	StatusPending    = "Pending"
	StatusProcessing = "Processing"
	StatusOnTheWay   = "On the Way"
	StatusInCourier  = "In Courier"
	StatusCompleted  = "Completed"
	StatusCancelled  = "Cancelled"
)

// OrderStatuses lists every status the back office can set, in display order.
var OrderStatuses = []string{
	StatusPending,
	StatusProcessing,
	StatusOnTheWay,
	StatusInCourier,
	StatusCompleted,
	StatusCancelled,
}

// Customer is the contact block on an order.
type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// OrderItem is one line on an order. Price is the unit price frozen when the
// line was created; the line amount is always derived from it.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// LineTotal is the derived line amount.
func (i OrderItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Order is an order as returned by the backend. SubTotal and TotalAmount are
// persisted by the backend but always recomputed client-side before any
// submission; the stored values are never trusted as inputs.
type Order struct {
	ID            string      `json:"_id"`
	InvoiceID     string      `json:"invoiceId"`
	Customer      Customer    `json:"customer"`
	Items         []OrderItem `json:"items"`
	SubTotal      float64     `json:"subTotal"`
	ShippingCost  float64     `json:"shippingCost"`
	TotalAmount   float64     `json:"totalAmount"`
	Status        string      `json:"status"`
	PaymentMethod string      `json:"paymentMethod,omitempty"`
	Courier       string      `json:"courier,omitempty"`
	TrackingCode  string      `json:"trackingCode,omitempty"`
	CreatedAt     time.Time   `json:"createdAt,omitempty"`
}

// Clone returns a deep, independent copy of the order. Mutating the copy's
// items or customer never touches the receiver.
func (o Order) Clone() Order {
	out := o
	out.Items = make([]OrderItem, len(o.Items))
	copy(out.Items, o.Items)
	return out
}
