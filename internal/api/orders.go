package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/parentsfood/shopkit/internal/domain"
)

// createOrderResponse is the backend's order-creation envelope.
type createOrderResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Order   domain.Order `json:"order"`
}

// OrderStats is the order status breakdown shown on the order list.
type OrderStats struct {
	Pending    int `json:"pending"`
	Processing int `json:"processing"`
	Courier    int `json:"courier"`
	Completed  int `json:"completed"`
	Cancelled  int `json:"cancelled"`
}

// bulkResponse is the backend's envelope for bulk operations.
type bulkResponse struct {
	Message string `json:"message"`
}

// ListOrders fetches every order (back office).
func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.do(ctx, "orders.list", http.MethodGet, "/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder fetches a single order by id.
func (c *Client) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	var order domain.Order
	if err := c.do(ctx, "orders.get", http.MethodGet, "/orders/"+url.PathEscape(id), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrderByInvoice fetches an order by its public invoice id (order tracking).
func (c *Client) GetOrderByInvoice(ctx context.Context, invoiceID string) (*domain.Order, error) {
	var order domain.Order
	if err := c.do(ctx, "orders.track", http.MethodGet, "/orders/invoice/"+url.PathEscape(invoiceID), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrder submits a new order (checkout).
func (c *Client) CreateOrder(ctx context.Context, order domain.Order) (*domain.Order, error) {
	var resp createOrderResponse
	if err := c.do(ctx, "orders.create", http.MethodPost, "/orders", order, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		message := resp.Message
		if message == "" {
			message = "Order was not accepted"
		}
		return nil, domain.Conflict("orders.create", message)
	}
	return &resp.Order, nil
}

// UpdateOrder replaces an order wholesale (back-office edit). The backend's
// returned representation is the source of truth for the persisted shape.
func (c *Client) UpdateOrder(ctx context.Context, id string, order domain.Order) (*domain.Order, error) {
	var updated domain.Order
	if err := c.do(ctx, "orders.update", http.MethodPut, "/orders/"+url.PathEscape(id), order, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// UpdateOrderStatus submits a status-only change without touching the rest
// of the order.
func (c *Client) UpdateOrderStatus(ctx context.Context, id, status string) error {
	payload := struct {
		Status string `json:"status"`
	}{Status: status}
	return c.do(ctx, "orders.status", http.MethodPut, "/orders/"+url.PathEscape(id), payload, nil)
}

// BulkOrderAction applies a status change or delete to many orders at once.
func (c *Client) BulkOrderAction(ctx context.Context, ids []string, action, value string) (string, error) {
	payload := struct {
		IDs    []string `json:"ids"`
		Action string   `json:"action"`
		Value  string   `json:"value,omitempty"`
	}{IDs: ids, Action: action, Value: value}

	var resp bulkResponse
	if err := c.do(ctx, "orders.bulk", http.MethodPut, "/orders/bulk-action", payload, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// GetOrderStats fetches the order status breakdown.
func (c *Client) GetOrderStats(ctx context.Context) (*OrderStats, error) {
	var stats OrderStats
	if err := c.do(ctx, "orders.stats", http.MethodGet, "/orders/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// OrderReport is the financial summary produced by the reports endpoint.
type OrderReport struct {
	Financials struct {
		TotalRevenue      float64 `json:"totalRevenue"`
		TotalOrders       int     `json:"totalOrders"`
		AverageOrderValue float64 `json:"averageOrderValue"`
	} `json:"financials"`
	Orders []domain.Order `json:"orders,omitempty"`
}

// GetOrderReport fetches the order report, optionally bounded by a date range.
// Zero times mean an unbounded report.
func (c *Client) GetOrderReport(ctx context.Context, start, end time.Time) (*OrderReport, error) {
	path := "/reports/orders"
	if !start.IsZero() && !end.IsZero() {
		q := url.Values{}
		q.Set("startDate", start.Format(time.RFC3339))
		q.Set("endDate", end.Format(time.RFC3339))
		path += "?" + q.Encode()
	}

	var report OrderReport
	if err := c.do(ctx, "reports.orders", http.MethodGet, path, nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// StockReport is the inventory summary produced by the reports endpoint.
type StockReport struct {
	TotalValue    float64          `json:"totalValue"`
	AllProducts   []domain.Product `json:"allProducts"`
	LowStockItems []domain.Product `json:"lowStockItems"`
}

// GetStockReport fetches the inventory report.
func (c *Client) GetStockReport(ctx context.Context) (*StockReport, error) {
	var report StockReport
	if err := c.do(ctx, "reports.stock", http.MethodGet, "/reports/stock", nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
