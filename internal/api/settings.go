package api

import (
	"context"
	"net/http"

	"github.com/parentsfood/shopkit/internal/domain"
)

// GetSettings fetches the store-wide settings resource.
func (c *Client) GetSettings(ctx context.Context) (*domain.Settings, error) {
	var settings domain.Settings
	if err := c.do(ctx, "settings.get", http.MethodGet, "/settings", nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateSettings replaces the settings resource (back office).
func (c *Client) UpdateSettings(ctx context.Context, settings domain.Settings) (*domain.Settings, error) {
	var updated domain.Settings
	if err := c.do(ctx, "settings.update", http.MethodPut, "/settings", settings, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
