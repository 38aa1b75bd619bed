// Package httpclient is an outbound adapter for the budget HTTP API. It is
// used by budgetctl.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	httpadapter "adbudget/internal/adapter/http"
	"adbudget/internal/core/domain"
	"adbudget/internal/core/port"
)

// APIError is a non-2xx response. A 404 unwraps to domain.ErrBrandNotFound.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return domain.ErrBrandNotFound
	}
	return nil
}

// Client calls the /api/v1 endpoints of a budget daemon.
type Client struct {
	base string
	http *http.Client
}

// New returns a client for the server at base, e.g. http://localhost:8080.
func New(base string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{base: strings.TrimRight(base, "/") + "/api/v1", http: httpClient}
}

// InitBrand creates or replaces a brand.
func (c *Client) InitBrand(ctx context.Context, def port.BrandDefinition) (httpadapter.TaskResponse, error) {
	var out httpadapter.TaskResponse
	err := c.do(ctx, http.MethodPost, "/brands", def, &out)
	return out, err
}

// UpdateSpend records amount against both budgets of brand.
func (c *Client) UpdateSpend(ctx context.Context, brand string, amount float64) (httpadapter.TaskResponse, error) {
	var out httpadapter.TaskResponse
	err := c.do(ctx, http.MethodPost, brandPath(brand, "spend"), httpadapter.SpendRequest{Amount: &amount}, &out)
	return out, err
}

// Deactivate stops every campaign of brand.
func (c *Client) Deactivate(ctx context.Context, brand string) (httpadapter.TaskResponse, error) {
	var out httpadapter.TaskResponse
	err := c.do(ctx, http.MethodPost, brandPath(brand, "deactivate"), nil, &out)
	return out, err
}

// ResetDaily resets the daily spend of every brand.
func (c *Client) ResetDaily(ctx context.Context) (httpadapter.TaskResponse, error) {
	var out httpadapter.TaskResponse
	err := c.do(ctx, http.MethodPost, "/budgets/daily/reset", nil, &out)
	return out, err
}

// ResetMonthly resets the monthly spend of every brand.
func (c *Client) ResetMonthly(ctx context.Context) (httpadapter.TaskResponse, error) {
	var out httpadapter.TaskResponse
	err := c.do(ctx, http.MethodPost, "/budgets/monthly/reset", nil, &out)
	return out, err
}

// CheckStatus triggers a status check. A nil at lets the server use its
// own clock.
func (c *Client) CheckStatus(ctx context.Context, at *time.Time) (httpadapter.TaskResponse, error) {
	var out httpadapter.TaskResponse
	err := c.do(ctx, http.MethodPost, "/campaigns/status", httpadapter.StatusRequest{At: at}, &out)
	return out, err
}

// GetBrand returns the current state of brand.
func (c *Client) GetBrand(ctx context.Context, brand string) (domain.BrandSnapshot, error) {
	var out domain.BrandSnapshot
	err := c.do(ctx, http.MethodGet, brandPath(brand, ""), nil, &out)
	return out, err
}

// ListBrands returns every brand ordered by name.
func (c *Client) ListBrands(ctx context.Context) ([]domain.BrandSnapshot, error) {
	var out httpadapter.BrandsResponse
	if err := c.do(ctx, http.MethodGet, "/brands", nil, &out); err != nil {
		return nil, err
	}
	return out.Brands, nil
}

func brandPath(brand, action string) string {
	p := "/brands/" + url.PathEscape(brand)
	if action != "" {
		p += "/" + action
	}
	return p
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(msg))}
	}
	if out == nil {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
