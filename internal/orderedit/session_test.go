package orderedit_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parentsfood/shopkit/internal/domain"
	"github.com/parentsfood/shopkit/internal/orderedit"
)

// mockBackend implements orderedit.Backend for testing.
type mockBackend struct {
	products    []domain.Product
	productsErr error

	updated       *domain.Order
	updateErr     error
	updateCalled  bool
	lastUpdateID  string
	lastUpdated   domain.Order
	statusErr     error
	lastStatusSet string
}

func (m *mockBackend) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if m.productsErr != nil {
		return nil, m.productsErr
	}
	return m.products, nil
}

func (m *mockBackend) UpdateOrder(ctx context.Context, id string, order domain.Order) (*domain.Order, error) {
	m.updateCalled = true
	m.lastUpdateID = id
	m.lastUpdated = order
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	if m.updated != nil {
		return m.updated, nil
	}
	out := order.Clone()
	return &out, nil
}

func (m *mockBackend) UpdateOrderStatus(ctx context.Context, id, status string) error {
	if m.statusErr != nil {
		return m.statusErr
	}
	m.lastStatusSet = status
	return nil
}

func testOrder() domain.Order {
	return domain.Order{
		ID:        "o1",
		InvoiceID: "INV-1001",
		Customer: domain.Customer{
			Name:    "Rahim Uddin",
			Phone:   "01712345678",
			Address: "House 7, Road 3, Dhanmondi, Dhaka",
		},
		Items: []domain.OrderItem{
			{ProductID: "p1", Name: "Mustard Oil 1L", Price: 50, Quantity: 2},
			{ProductID: "p2", Name: "Red Lentils 500g", Price: 30, Quantity: 1},
		},
		SubTotal:     130,
		ShippingCost: 20,
		TotalAmount:  150,
		Status:       domain.StatusPending,
	}
}

func newSession(backend *mockBackend) *orderedit.Session {
	return orderedit.New(backend, testOrder(), zerolog.Nop(), nil)
}

func TestSession_StartsViewing(t *testing.T) {
	s := newSession(&mockBackend{})

	assert.False(t, s.Editing())
	assert.Equal(t, testOrder(), s.View())
}

func TestSession_EnterEditMode_LoadsCatalogOnce(t *testing.T) {
	backend := &mockBackend{products: []domain.Product{{ID: "p9", Name: "Honey 250g", Price: 400}}}
	s := newSession(backend)

	s.EnterEditMode(context.Background())
	require.True(t, s.Editing())
	require.Len(t, s.Catalog(), 1)

	// Second entry keeps the already-loaded catalog even if the backend
	// would now fail.
	s.Cancel()
	backend.productsErr = errors.New("boom")
	s.EnterEditMode(context.Background())
	assert.Len(t, s.Catalog(), 1)
}

func TestSession_EnterEditMode_CatalogFailureLeavesEditingUsable(t *testing.T) {
	backend := &mockBackend{productsErr: errors.New("backend down")}
	s := newSession(backend)

	s.EnterEditMode(context.Background())

	assert.True(t, s.Editing())
	assert.Empty(t, s.Catalog())

	// Line editing still works without the add-item feature.
	require.NoError(t, s.UpdateLineQuantity(0, 5))
	assert.Equal(t, 5, s.Draft().Items[0].Quantity)
}

func TestSession_Cancel_LeavesOriginalUnchanged(t *testing.T) {
	s := newSession(&mockBackend{products: []domain.Product{{ID: "p9", Name: "Honey", Price: 400}}})
	before := s.Original()

	s.EnterEditMode(context.Background())
	require.NoError(t, s.UpdateCustomerField("name", "Someone Else"))
	require.NoError(t, s.UpdateCustomerField("address", "elsewhere"))
	require.NoError(t, s.UpdateLineQuantity(0, 99))
	require.NoError(t, s.UpdateLinePrice(1, 9999))
	require.NoError(t, s.RemoveLine(0))
	require.NoError(t, s.AddLine("p9"))

	s.Cancel()

	assert.False(t, s.Editing())
	assert.Equal(t, before, s.Original())
	assert.Equal(t, before, s.View())
	// The next draft starts clean too.
	assert.Equal(t, before, s.Draft())
}

func TestSession_AddLine_RejectsDuplicate(t *testing.T) {
	backend := &mockBackend{products: []domain.Product{{ID: "p1", Name: "Mustard Oil 1L", Price: 50}}}
	s := newSession(backend)
	s.EnterEditMode(context.Background())

	err := s.AddLine("p1")

	assert.ErrorIs(t, err, domain.ErrDuplicateLine)
	assert.Len(t, s.Draft().Items, 2, "draft line count must be unchanged")
}

func TestSession_AddLine_UnknownProductIsNoOp(t *testing.T) {
	s := newSession(&mockBackend{products: []domain.Product{{ID: "p9", Price: 10}}})
	s.EnterEditMode(context.Background())

	err := s.AddLine("missing")

	assert.NoError(t, err)
	assert.Len(t, s.Draft().Items, 2)
}

func TestSession_AddLine_DefaultsQuantityAndDiscountPrice(t *testing.T) {
	backend := &mockBackend{products: []domain.Product{
		{ID: "p9", Name: "Honey 250g", Price: 400, DiscountPrice: 350},
	}}
	s := newSession(backend)
	s.EnterEditMode(context.Background())

	require.NoError(t, s.AddLine("p9"))

	items := s.Draft().Items
	require.Len(t, items, 3)
	added := items[2]
	assert.Equal(t, "p9", added.ProductID)
	assert.Equal(t, "Honey 250g", added.Name)
	assert.Equal(t, 1, added.Quantity)
	assert.Equal(t, float64(350), added.Price)
}

func TestSession_UpdateShippingCost_RecomputesGrandTotal(t *testing.T) {
	// order with subtotal 130, shipping 20
	s := newSession(&mockBackend{})
	s.EnterEditMode(context.Background())

	s.UpdateShippingCost(60)

	totals := s.Totals()
	assert.Equal(t, float64(130), totals.SubTotal)
	assert.Equal(t, float64(190), totals.GrandTotal)
	assert.Equal(t, float64(60), s.Draft().ShippingCost)
}

func TestSession_UpdateShippingCost_CancelRestoresOriginalFigure(t *testing.T) {
	s := newSession(&mockBackend{})
	s.EnterEditMode(context.Background())
	s.UpdateShippingCost(0)

	s.Cancel()

	assert.Equal(t, float64(20), s.Original().ShippingCost)
	assert.Equal(t, float64(20), s.Draft().ShippingCost)
	assert.Equal(t, float64(150), s.Totals().GrandTotal)
}

func TestSession_Save_SubmitsEditedShippingCost(t *testing.T) {
	backend := &mockBackend{}
	s := newSession(backend)
	s.EnterEditMode(context.Background())
	s.UpdateShippingCost(60)

	_, err := s.Save(context.Background())
	require.NoError(t, err)

	assert.Equal(t, float64(60), backend.lastUpdated.ShippingCost)
	assert.Equal(t, float64(190), backend.lastUpdated.TotalAmount)
}

func TestSession_RemoveLine_ThenTotals(t *testing.T) {
	// order with items [{price:50,qty:2},{price:30,qty:1}], shipping 20
	s := newSession(&mockBackend{})
	s.EnterEditMode(context.Background())

	require.NoError(t, s.RemoveLine(0))

	totals := s.Totals()
	assert.Equal(t, float64(30), totals.SubTotal)
	assert.Equal(t, float64(50), totals.GrandTotal)
}

func TestSession_Save_CommitsServerRepresentation(t *testing.T) {
	serverCopy := testOrder()
	serverCopy.Items = []domain.OrderItem{{ProductID: "p1", Name: "Mustard Oil 1L", Price: 50, Quantity: 4}}
	serverCopy.SubTotal = 200
	serverCopy.TotalAmount = 220
	backend := &mockBackend{updated: &serverCopy}

	s := newSession(backend)
	s.EnterEditMode(context.Background())
	require.NoError(t, s.UpdateLineQuantity(0, 4))
	require.NoError(t, s.RemoveLine(1))

	updated, err := s.Save(context.Background())
	require.NoError(t, err)

	assert.False(t, s.Editing())
	assert.Equal(t, "o1", backend.lastUpdateID)
	// Totals submitted are recomputed from the draft, not the stale stored ones.
	assert.Equal(t, float64(200), backend.lastUpdated.SubTotal)
	assert.Equal(t, float64(220), backend.lastUpdated.TotalAmount)
	// The server's representation becomes the new original.
	assert.Equal(t, serverCopy, s.Original())
	assert.Equal(t, serverCopy.TotalAmount, updated.TotalAmount)
}

func TestSession_Save_FailureKeepsDraftAndEditing(t *testing.T) {
	backend := &mockBackend{updateErr: domain.Conflict("orders.update", "Stock ran out")}
	s := newSession(backend)
	before := s.Original()

	s.EnterEditMode(context.Background())
	require.NoError(t, s.UpdateLineQuantity(0, 7))

	_, err := s.Save(context.Background())

	require.Error(t, err)
	assert.Equal(t, "Stock ran out", domain.ErrorMessage(err))
	assert.True(t, s.Editing(), "session must stay in edit mode for retry")
	assert.Equal(t, 7, s.Draft().Items[0].Quantity, "draft must stay intact")
	assert.Equal(t, before, s.Original())
}

func TestSession_UpdateStatus_MirrorsIntoDraft(t *testing.T) {
	backend := &mockBackend{}
	s := newSession(backend)

	require.NoError(t, s.UpdateStatus(context.Background(), domain.StatusProcessing))

	assert.Equal(t, domain.StatusProcessing, backend.lastStatusSet)
	assert.Equal(t, domain.StatusProcessing, s.Original().Status)
	assert.Equal(t, domain.StatusProcessing, s.Draft().Status,
		"draft must agree with the read-only view when editing starts later")
}

func TestSession_UpdateStatus_FailureChangesNothing(t *testing.T) {
	backend := &mockBackend{statusErr: errors.New("backend down")}
	s := newSession(backend)

	err := s.UpdateStatus(context.Background(), domain.StatusCancelled)

	require.Error(t, err)
	assert.Equal(t, domain.StatusPending, s.Original().Status)
	assert.Equal(t, domain.StatusPending, s.Draft().Status)
}

func TestSession_UpdateCustomerField_UnknownField(t *testing.T) {
	s := newSession(&mockBackend{})
	s.EnterEditMode(context.Background())

	err := s.UpdateCustomerField("email", "x@y.z")

	assert.True(t, domain.IsCode(err, domain.EINVALID))
}

func TestSession_LineEdits_OutOfRange(t *testing.T) {
	s := newSession(&mockBackend{})
	s.EnterEditMode(context.Background())

	assert.ErrorIs(t, s.UpdateLineQuantity(5, 1), domain.ErrLineNotFound)
	assert.ErrorIs(t, s.UpdateLinePrice(-1, 10), domain.ErrLineNotFound)
	assert.ErrorIs(t, s.RemoveLine(2), domain.ErrLineNotFound)
}
