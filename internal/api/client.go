package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/parentsfood/shopkit/internal/domain"
	"github.com/parentsfood/shopkit/internal/telemetry"
)

// Client talks to the storefront backend REST API. It is safe for use from
// multiple goroutines; the bearer token is the only mutable state.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
	metrics    *telemetry.Metrics

	mu    sync.RWMutex
	token string
}

// Config points the client at the backend.
type Config struct {
	// BaseURL is the API root, e.g. "http://localhost:5000/api".
	BaseURL string

	// Timeout bounds every request round-trip. Zero means 30s.
	Timeout time.Duration
}

// NewClient creates a backend API client. metrics may be nil.
func NewClient(cfg Config, logger zerolog.Logger, metrics *telemetry.Metrics) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		metrics: metrics,
	}
}

// SetToken installs the bearer token sent with subsequent requests.
// An empty token clears authentication.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Token returns the currently installed bearer token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// apiError is the backend's error body. Its message is surfaced to users
// verbatim.
type apiError struct {
	Message string `json:"message"`
}

// do performs one JSON round-trip. body is marshaled when non-nil; the
// response is unmarshaled into out when out is non-nil and a body came back.
// Failures are returned as domain errors carrying the backend's message.
func (c *Client) do(ctx context.Context, op, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return domain.Internal(err, op, "failed to encode request")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return domain.Internal(err, op, "failed to build request")
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		c.metrics.RecordAPIRequest(method, op, "error", elapsed)
		c.logger.Warn().Err(err).Str("op", op).Str("method", method).Str("path", path).
			Msg("backend request failed")
		return domain.Unavailable(err, op, "Server connection failed")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	c.metrics.RecordAPIRequest(method, op, strconv.Itoa(resp.StatusCode), elapsed)
	if err != nil {
		return domain.Unavailable(err, op, "Server connection failed")
	}

	c.logger.Debug().Str("op", op).Str("method", method).Str("path", path).
		Int("status", resp.StatusCode).Dur("elapsed", elapsed).
		Msg("backend request")

	if resp.StatusCode >= 400 {
		message := fmt.Sprintf("Request failed with status %d", resp.StatusCode)
		var ae apiError
		if json.Unmarshal(data, &ae) == nil && ae.Message != "" {
			message = ae.Message
		}
		return &domain.Error{
			Code:    codeForStatus(resp.StatusCode),
			Op:      op,
			Message: message,
		}
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return domain.Internal(err, op, "failed to decode response")
		}
	}

	return nil
}

// codeForStatus maps an HTTP status to a domain error code.
func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.EINVALID
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.EUNAUTHORIZED
	case http.StatusNotFound:
		return domain.ENOTFOUND
	case http.StatusConflict:
		return domain.ECONFLICT
	default:
		return domain.EUNAVAILABLE
	}
}
