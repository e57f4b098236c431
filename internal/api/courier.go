package api

import (
	"context"
	"net/http"
	"net/url"
)

// Courier names as the backend expects them.
const (
	CourierPathao    = "pathao"
	CourierSteadfast = "steadfast"
)

// courierResponse is the backend's envelope for courier handoffs.
type courierResponse struct {
	TrackingCode string `json:"trackingCode"`
	Message      string `json:"message,omitempty"`
}

// SendToCourier hands one order to a courier and returns the tracking code
// the courier issued.
func (c *Client) SendToCourier(ctx context.Context, courier, orderID string) (string, error) {
	path := "/courier/send/" + url.PathEscape(courier) + "/" + url.PathEscape(orderID)

	var resp courierResponse
	if err := c.do(ctx, "courier.send", http.MethodPost, path, nil, &resp); err != nil {
		return "", err
	}
	return resp.TrackingCode, nil
}

// BulkSendToCourier hands many orders to a courier in one call and returns
// the backend's summary message.
func (c *Client) BulkSendToCourier(ctx context.Context, orderIDs []string, courier string) (string, error) {
	payload := struct {
		OrderIDs    []string `json:"orderIds"`
		CourierName string   `json:"courierName"`
	}{OrderIDs: orderIDs, CourierName: courier}

	var resp courierResponse
	if err := c.do(ctx, "courier.bulk", http.MethodPost, "/courier/bulk-send", payload, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
