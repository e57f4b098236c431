package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/parentsfood/shopkit/internal/domain"
)

// ListProducts fetches the full product list.
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.do(ctx, "products.list", http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches a single product by id.
func (c *Client) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	if err := c.do(ctx, "products.get", http.MethodGet, "/products/"+url.PathEscape(id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct creates a product (back office).
func (c *Client) CreateProduct(ctx context.Context, p domain.Product) (*domain.Product, error) {
	var created domain.Product
	if err := c.do(ctx, "products.create", http.MethodPost, "/products", p, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProduct replaces a product (back office).
func (c *Client) UpdateProduct(ctx context.Context, id string, p domain.Product) (*domain.Product, error) {
	var updated domain.Product
	if err := c.do(ctx, "products.update", http.MethodPut, "/products/"+url.PathEscape(id), p, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteProduct removes a product (back office).
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, "products.delete", http.MethodDelete, "/products/"+url.PathEscape(id), nil, nil)
}
