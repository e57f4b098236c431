package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/parentsfood/shopkit/internal/domain"
)

// ListCategories fetches all product categories.
func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.do(ctx, "categories.list", http.MethodGet, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory creates a category (back office).
func (c *Client) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	payload := struct {
		Name string `json:"name"`
	}{Name: name}

	var created domain.Category
	if err := c.do(ctx, "categories.create", http.MethodPost, "/categories", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteCategory removes a category (back office).
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, "categories.delete", http.MethodDelete, "/categories/"+url.PathEscape(id), nil, nil)
}

// ListBrands fetches all product brands.
func (c *Client) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	var brands []domain.Brand
	if err := c.do(ctx, "brands.list", http.MethodGet, "/brands", nil, &brands); err != nil {
		return nil, err
	}
	return brands, nil
}

// CreateBrand creates a brand (back office).
func (c *Client) CreateBrand(ctx context.Context, name string) (*domain.Brand, error) {
	payload := struct {
		Name string `json:"name"`
	}{Name: name}

	var created domain.Brand
	if err := c.do(ctx, "brands.create", http.MethodPost, "/brands", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteBrand removes a brand (back office).
func (c *Client) DeleteBrand(ctx context.Context, id string) error {
	return c.do(ctx, "brands.delete", http.MethodDelete, "/brands/"+url.PathEscape(id), nil, nil)
}

// ListBanners fetches the storefront banners.
func (c *Client) ListBanners(ctx context.Context) ([]domain.Banner, error) {
	var banners []domain.Banner
	if err := c.do(ctx, "banners.list", http.MethodGet, "/banners", nil, &banners); err != nil {
		return nil, err
	}
	return banners, nil
}

// CreateBanner creates a banner (back office).
func (c *Client) CreateBanner(ctx context.Context, banner domain.Banner) (*domain.Banner, error) {
	var created domain.Banner
	if err := c.do(ctx, "banners.create", http.MethodPost, "/banners", banner, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteBanner removes a banner (back office).
func (c *Client) DeleteBanner(ctx context.Context, id string) error {
	return c.do(ctx, "banners.delete", http.MethodDelete, "/banners/"+url.PathEscape(id), nil, nil)
}
