package api

import (
	"context"
	"net/http"

	"github.com/parentsfood/shopkit/internal/domain"
)

// Login authenticates against the backend and installs the returned bearer
// token on the client for subsequent requests.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	payload := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var result domain.AuthResult
	if err := c.do(ctx, "auth.login", http.MethodPost, "/auth/login", payload, &result); err != nil {
		return nil, err
	}

	c.SetToken(result.Token)
	return &result, nil
}

// Register creates an account and installs the returned token.
func (c *Client) Register(ctx context.Context, name, email, password string) (*domain.AuthResult, error) {
	payload := struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Name: name, Email: email, Password: password}

	var result domain.AuthResult
	if err := c.do(ctx, "auth.register", http.MethodPost, "/auth/register", payload, &result); err != nil {
		return nil, err
	}

	c.SetToken(result.Token)
	return &result, nil
}
