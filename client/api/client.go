// Package api is the HTTP client for the storefront backend. Error responses
// with a well-formed body are returned as values, not errors, so callers can
// surface the backend's message; only transport and decode failures error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"sanjeevika-shop/models"
)

type Client struct {
	baseURL    string
	httpClient *http.Client

	// tokenSource supplies the bearer token attached to every request,
	// mirroring how the web client injects the persisted token. May be nil.
	tokenSource func() string
}

func NewClient(baseURL string, tokenSource func() string) *Client {
	return &Client{
		baseURL:     baseURL,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
		tokenSource: tokenSource,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body any, dest any) error {
	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tokenSource != nil {
		if token := c.tokenSource(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if dest == nil {
		if resp.StatusCode >= 500 {
			return fmt.Errorf("server error: %s", resp.Status)
		}
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response (%s): %w", resp.Status, err)
	}
	return nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", models.LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var resp struct {
		Success bool             `json:"success"`
		Message string           `json:"message"`
		Data    []models.Product `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/products", nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("products request failed: %s", resp.Message)
	}
	return resp.Data, nil
}

func (c *Client) ProductByID(ctx context.Context, id string) (*models.Product, error) {
	var resp struct {
		Success bool           `json:"success"`
		Message string         `json:"message"`
		Data    models.Product `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/products/"+id, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("product not found: %s", resp.Message)
	}
	return &resp.Data, nil
}

func (c *Client) ProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	var resp struct {
		Success bool             `json:"success"`
		Message string           `json:"message"`
		Data    []models.Product `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/products/category/"+category, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("products request failed: %s", resp.Message)
	}
	return resp.Data, nil
}

func (c *Client) CreateOrder(ctx context.Context, req models.CheckoutRequest) (*models.Order, error) {
	var resp struct {
		Success bool         `json:"success"`
		Message string       `json:"message"`
		Data    models.Order `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/orders", req, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("checkout failed: %s", resp.Message)
	}
	return &resp.Data, nil
}

func (c *Client) SubmitContact(ctx context.Context, req models.ContactRequest) error {
	var resp models.Response
	if err := c.do(ctx, http.MethodPost, "/contact", req, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("contact submission failed: %s", resp.Message)
	}
	return nil
}

func (c *Client) SubscribeNewsletter(ctx context.Context, email string) error {
	var resp models.Response
	if err := c.do(ctx, http.MethodPost, "/newsletter", models.NewsletterRequest{Email: email}, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("newsletter subscription failed: %s", resp.Message)
	}
	return nil
}
