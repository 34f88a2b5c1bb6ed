// Package gateway talks to the online payment provider.
package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const Name = "RAZORPAY"

type OrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// Order is the provider-side object representing the amount to collect.
// Amounts are in the currency's minor unit.
type Order struct {
	ID         string `json:"id"`
	Entity     string `json:"entity"`
	Amount     int64  `json:"amount"`
	AmountPaid int64  `json:"amount_paid"`
	AmountDue  int64  `json:"amount_due"`
	Currency   string `json:"currency"`
	Receipt    string `json:"receipt"`
	Status     string `json:"status"`
	Attempts   int    `json:"attempts"`
	CreatedAt  int64  `json:"created_at"`

	Raw []byte `json:"-"`
}

type Client interface {
	CreateOrder(ctx context.Context, req OrderRequest) (*Order, error)
}

type errorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

type RazorpayClient struct {
	client *resty.Client
}

func NewRazorpayClient(baseURL, keyID, keySecret string, timeout time.Duration) *RazorpayClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetBasicAuth(keyID, keySecret).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")
	return &RazorpayClient{client: client}
}

// CreateOrder makes a single blocking round-trip; there is no retry.
func (c *RazorpayClient) CreateOrder(ctx context.Context, req OrderRequest) (*Order, error) {
	var order Order
	var apiErr errorResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&order).
		SetError(&apiErr).
		Post("/v1/orders")
	if err != nil {
		return nil, fmt.Errorf("gateway order request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("gateway order request failed with status %d: %s %s",
			resp.StatusCode(), apiErr.Error.Code, apiErr.Error.Description)
	}
	if order.ID == "" {
		return nil, fmt.Errorf("gateway order id not found in response: %s", string(resp.Body()))
	}

	order.Raw = resp.Body()
	return &order, nil
}
