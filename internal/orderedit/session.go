package orderedit

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/parentsfood/shopkit/internal/domain"
	"github.com/parentsfood/shopkit/internal/telemetry"
)

// Backend is the slice of the API client the edit session needs.
type Backend interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	UpdateOrder(ctx context.Context, id string, order domain.Order) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id, status string) error
}

// Session is the per-order-detail-view editing state machine.
//
// It holds the last-known-good server copy (original) and a deep,
// independent working copy (draft). While Editing the view renders and
// mutates the draft; Cancel discards it, a successful Save commits it.
// A Session belongs to one open order-detail view and is recreated fresh
// each time one opens; it is not safe for concurrent use.
type Session struct {
	backend Backend
	logger  zerolog.Logger
	metrics *telemetry.Metrics

	original domain.Order
	draft    domain.Order
	editing  bool

	// catalog backs the add-item selector. Loaded lazily on the first
	// successful fetch; a failed fetch leaves it empty and editing usable.
	catalog []domain.Product
}

// New creates a session in the Viewing state around a fetched order.
// metrics may be nil.
func New(backend Backend, order domain.Order, logger zerolog.Logger, metrics *telemetry.Metrics) *Session {
	return &Session{
		backend:  backend,
		logger:   logger,
		metrics:  metrics,
		original: order,
		draft:    order.Clone(),
	}
}

// Editing reports whether the session is in the Editing state.
func (s *Session) Editing() bool {
	return s.editing
}

// Original returns a copy of the last-known-good server order.
func (s *Session) Original() domain.Order {
	return s.original.Clone()
}

// Draft returns a copy of the working order. Meaningful while Editing.
func (s *Session) Draft() domain.Order {
	return s.draft.Clone()
}

// View returns what the detail view should render: the draft while Editing,
// otherwise the read-only original.
func (s *Session) View() domain.Order {
	if s.editing {
		return s.draft.Clone()
	}
	return s.original.Clone()
}

// Catalog returns the products available to the add-item selector.
func (s *Session) Catalog() []domain.Product {
	return s.catalog
}

// EnterEditMode snapshots the original into a fresh draft and switches to
// Editing. The product catalog is loaded on first entry only; a fetch
// failure is logged and leaves the catalog empty, editing stays usable
// without the add-item feature (the next entry retries).
func (s *Session) EnterEditMode(ctx context.Context) {
	s.draft = s.original.Clone()
	s.editing = true
	s.metrics.RecordEditSession()

	if len(s.catalog) == 0 {
		products, err := s.backend.ListProducts(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("could not load product catalog, add-item disabled")
			return
		}
		s.catalog = products
	}
}

// UpdateCustomerField applies a single-field text mutation to the draft's
// customer block. No client-side validation beyond field names; the backend
// is authoritative.
func (s *Session) UpdateCustomerField(field, value string) error {
	switch field {
	case "name":
		s.draft.Customer.Name = value
	case "phone":
		s.draft.Customer.Phone = value
	case "address":
		s.draft.Customer.Address = value
	default:
		return domain.Errorf(domain.EINVALID, "orderedit.customer", "unknown customer field: %s", field)
	}
	return nil
}

// UpdateShippingCost overwrites the draft's shipping figure. No clamping;
// totals pick the new value up on the next recompute.
func (s *Session) UpdateShippingCost(value float64) {
	s.draft.ShippingCost = value
}

// UpdateLineQuantity overwrites the quantity of the draft line at index.
// The session does not clamp; keeping values sensible is the caller's job.
func (s *Session) UpdateLineQuantity(index, quantity int) error {
	if index < 0 || index >= len(s.draft.Items) {
		return domain.ErrLineNotFound
	}
	s.draft.Items[index].Quantity = quantity
	return nil
}

// UpdateLinePrice overwrites the unit price of the draft line at index.
func (s *Session) UpdateLinePrice(index int, price float64) error {
	if index < 0 || index >= len(s.draft.Items) {
		return domain.ErrLineNotFound
	}
	s.draft.Items[index].Price = price
	return nil
}

// RemoveLine deletes the draft line at index entirely; no zero-quantity
// lines are retained.
func (s *Session) RemoveLine(index int) error {
	if index < 0 || index >= len(s.draft.Items) {
		return domain.ErrLineNotFound
	}
	s.draft.Items = append(s.draft.Items[:index], s.draft.Items[index+1:]...)
	return nil
}

// AddLine appends a new draft line for a catalog product with quantity 1
// and the product's effective price. An id missing from the catalog is a
// no-op; a product already present as a line is rejected so the caller can
// warn the operator.
func (s *Session) AddLine(productID string) error {
	var product *domain.Product
	for i := range s.catalog {
		if s.catalog[i].ID == productID {
			product = &s.catalog[i]
			break
		}
	}
	if product == nil {
		s.logger.Debug().Str("product_id", productID).Msg("add-line ignored, product not in catalog")
		return nil
	}

	for _, item := range s.draft.Items {
		if item.ProductID == productID {
			return domain.ErrDuplicateLine
		}
	}

	s.draft.Items = append(s.draft.Items, domain.OrderItem{
		ProductID: product.ID,
		Name:      product.Name,
		Quantity:  1,
		Price:     product.UnitPrice(),
	})
	return nil
}

// Totals derives the monetary figures for whatever the view is rendering.
func (s *Session) Totals() Totals {
	view := s.original
	if s.editing {
		view = s.draft
	}
	return ComputeTotals(view.Items, view.ShippingCost)
}

// Save submits the draft, with freshly recomputed totals merged in, as a
// full order update. On success the server's returned representation
// becomes the new original and the session returns to Viewing. On failure
// the session stays in Editing with the draft intact so the operator can
// retry; the returned error carries the backend's message.
func (s *Session) Save(ctx context.Context) (*domain.Order, error) {
	totals := ComputeTotals(s.draft.Items, s.draft.ShippingCost)
	s.draft.SubTotal = totals.SubTotal
	s.draft.TotalAmount = totals.GrandTotal

	updated, err := s.backend.UpdateOrder(ctx, s.original.ID, s.draft)
	if err != nil {
		s.metrics.RecordEditSave(false)
		return nil, err
	}

	s.metrics.RecordEditSave(true)
	s.original = updated.Clone()
	s.draft = updated.Clone()
	s.editing = false
	return updated, nil
}

// Cancel discards the draft, replacing it with a fresh copy of the
// original, and returns to Viewing. No network call; no partial mutation
// can leak into the read-only view.
func (s *Session) Cancel() {
	s.draft = s.original.Clone()
	s.editing = false
}

// UpdateStatus submits a status-only change without entering the draft
// workflow. On success both the read-only view and the draft pick up the
// new status so the two cannot disagree if the operator edits later.
func (s *Session) UpdateStatus(ctx context.Context, status string) error {
	if err := s.backend.UpdateOrderStatus(ctx, s.original.ID, status); err != nil {
		return err
	}
	s.original.Status = status
	s.draft.Status = status
	return nil
}
