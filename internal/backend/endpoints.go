package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/spec-kit/supplychain-dashboard/internal/domain"
)

// Login exchanges credentials for an access token.
func (c *Client) Login(ctx context.Context, in LoginRequest) (TokenResponse, error) {
	var out TokenResponse
	err := c.do(ctx, call{method: http.MethodPost, path: "/auth/login", body: in}, &out)
	return out, err
}

// Signup creates an account.
func (c *Client) Signup(ctx context.Context, in SignupRequest) (domain.User, error) {
	var out domain.User
	err := c.do(ctx, call{method: http.MethodPost, path: "/auth/signup", body: in}, &out)
	return out, err
}

// ListProducts returns every registered product.
func (c *Client) ListProducts(ctx context.Context, token string) ([]domain.Product, error) {
	var out []domain.Product
	err := c.do(ctx, call{method: http.MethodGet, path: "/products", token: token}, &out)
	return out, err
}

// RegisterProduct registers a product for the calling supplier.
func (c *Client) RegisterProduct(ctx context.Context, token string, in ProductCreate) (domain.Product, error) {
	var out domain.Product
	err := c.do(ctx, call{method: http.MethodPost, path: "/products", token: token, body: in}, &out)
	return out, err
}

// ListOrders returns orders, filtered by status when one is given.
func (c *Client) ListOrders(ctx context.Context, token string, status domain.OrderStatus) ([]domain.Order, error) {
	var query url.Values
	if status != "" {
		query = url.Values{"status": []string{string(status)}}
	}
	var out []domain.Order
	err := c.do(ctx, call{method: http.MethodGet, path: "/orders", token: token, query: query}, &out)
	return out, err
}

// CreateOrder places an order.
func (c *Client) CreateOrder(ctx context.Context, token string, in OrderCreate) (domain.Order, error) {
	var out domain.Order
	err := c.do(ctx, call{method: http.MethodPost, path: "/orders", token: token, body: in}, &out)
	return out, err
}

// RecordPayment records the payment of an order.
func (c *Client) RecordPayment(ctx context.Context, token string, in PaymentCreate) (domain.Payment, error) {
	var out domain.Payment
	err := c.do(ctx, call{method: http.MethodPost, path: orderPath(in.OrderID) + "/payment", token: token, body: in}, &out)
	return out, err
}

// MyOrders returns the orders of the calling consumer.
func (c *Client) MyOrders(ctx context.Context, token string) ([]domain.Order, error) {
	var out []domain.Order
	err := c.do(ctx, call{method: http.MethodGet, path: "/orders/my-orders", token: token}, &out)
	return out, err
}

// OrderLedger returns the provenance entries of an order.
func (c *Client) OrderLedger(ctx context.Context, token string, orderID int64) ([]domain.LedgerEntry, error) {
	var out []domain.LedgerEntry
	err := c.do(ctx, call{method: http.MethodGet, path: orderPath(orderID) + "/ledger", token: token}, &out)
	return out, err
}

// UpdateOrderStatus moves an order along its delivery lifecycle.
func (c *Client) UpdateOrderStatus(ctx context.Context, token string, orderID int64, in OrderUpdate) (domain.Order, error) {
	var out domain.Order
	err := c.do(ctx, call{method: http.MethodPut, path: orderPath(orderID), token: token, body: in}, &out)
	return out, err
}

// FlaggedProducts returns products the fraud check flagged.
func (c *Client) FlaggedProducts(ctx context.Context, token string) ([]domain.FlaggedProduct, error) {
	var out []domain.FlaggedProduct
	err := c.do(ctx, call{method: http.MethodGet, path: "/flagged-products", token: token}, &out)
	return out, err
}

func orderPath(id int64) string {
	return "/orders/" + strconv.FormatInt(id, 10)
}
