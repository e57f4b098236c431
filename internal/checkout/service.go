package checkout

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/parentsfood/shopkit/internal/domain"
	"github.com/parentsfood/shopkit/internal/telemetry"
)

// Backend is the slice of the API client checkout needs.
type Backend interface {
	GetSettings(ctx context.Context) (*domain.Settings, error)
	CreateOrder(ctx context.Context, order domain.Order) (*domain.Order, error)
}

// Cart is the slice of the cart store checkout needs.
type Cart interface {
	Lines() []domain.CartLine
	Clear()
}

// CustomerInput is the shipping form. The phone rule matches the storefront:
// exactly 11 digits.
type CustomerInput struct {
	Name    string `validate:"required"`
	Phone   string `validate:"required,len=11,numeric"`
	Address string `validate:"required"`
}

// Service turns the cart into a cash-on-delivery order.
type Service struct {
	backend  Backend
	cart     Cart
	validate *validator.Validate
	logger   zerolog.Logger
	metrics  *telemetry.Metrics
}

// NewService creates a checkout service. metrics may be nil.
func NewService(backend Backend, cart Cart, logger zerolog.Logger, metrics *telemetry.Metrics) *Service {
	return &Service{
		backend:  backend,
		cart:     cart,
		validate: validator.New(),
		logger:   logger,
		metrics:  metrics,
	}
}

// ShippingCost fetches the flat shipping figure from the settings resource.
// Any failure falls back to the default so checkout is never blocked by the
// settings endpoint.
func (s *Service) ShippingCost(ctx context.Context) float64 {
	settings, err := s.backend.GetSettings(ctx)
	if err != nil {
		s.logger.Warn().Err(err).
			Float64("fallback", domain.DefaultShippingCost).
			Msg("could not load settings, using default shipping cost")
		return domain.DefaultShippingCost
	}
	return settings.ShippingCost()
}

// PlaceOrder validates the customer input, builds a COD order from the
// current cart, and submits it. The cart is cleared only after the backend
// accepts the order; on any failure it is left untouched so the shopper can
// retry.
func (s *Service) PlaceOrder(ctx context.Context, customer CustomerInput) (*domain.Order, error) {
	const op = "checkout.place"

	lines := s.cart.Lines()
	if len(lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	if err := s.validate.Struct(customer); err != nil {
		return nil, domain.Invalid(op, validationMessage(err))
	}

	shipping := s.ShippingCost(ctx)

	// Sum over the captured line snapshot so the submitted subtotal always
	// agrees with the submitted items.
	items := make([]domain.OrderItem, len(lines))
	var subTotal float64
	for i, line := range lines {
		items[i] = domain.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			Price:     line.UnitPrice,
		}
		subTotal += line.LineTotal()
	}

	order := domain.Order{
		Customer: domain.Customer{
			Name:    customer.Name,
			Phone:   customer.Phone,
			Address: customer.Address,
		},
		Items:         items,
		SubTotal:      subTotal,
		ShippingCost:  shipping,
		TotalAmount:   subTotal + shipping,
		PaymentMethod: "COD",
	}

	placed, err := s.backend.CreateOrder(ctx, order)
	if err != nil {
		s.metrics.RecordOrderFailed()
		return nil, err
	}

	s.cart.Clear()
	s.metrics.RecordOrderPlaced(order.TotalAmount)
	s.logger.Info().
		Str("invoice_id", placed.InvoiceID).
		Float64("total", order.TotalAmount).
		Msg("order placed")
	return placed, nil
}

// validationMessage translates the first field failure into the message the
// storefront form shows.
func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		switch fieldErrs[0].Field() {
		case "Phone":
			return "Please enter a valid 11-digit phone number."
		case "Name":
			return "Name is required."
		case "Address":
			return "Address is required."
		}
	}
	return "Invalid customer details."
}
