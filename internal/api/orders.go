package api

import (
	"context"
	"fmt"
	"net/url"
)

// Order represents a purchase reported to the platform so review-request
// emails can be scheduled.
type Order struct {
	ID        string      `json:"id"`
	Email     string      `json:"email,omitempty"`
	Name      string      `json:"name,omitempty"`
	Total     string      `json:"total,omitempty"`
	Currency  string      `json:"currency,omitempty"`
	CreatedAt string      `json:"created_at,omitempty"`
	Items     []OrderItem `json:"items,omitempty"`
}

// OrderItem is a purchased product line inside an order.
type OrderItem struct {
	ProductKey string `json:"product_key"`
	Title      string `json:"title,omitempty"`
	Quantity   int    `json:"quantity"`
}

// OrderListResponse wraps the orders list payload.
type OrderListResponse struct {
	Orders []Order `json:"orders"`
	Total  int     `json:"total,omitempty"`
	Page   int     `json:"page,omitempty"`
}

// CreateOrderParams describes a new order submission.
type CreateOrderParams struct {
	ID       string
	Email    string
	Name     string
	Total    string
	Currency string
	Items    []OrderItem
}

// Create reports a new order.
func (s OrdersService) Create(ctx context.Context, params CreateOrderParams) (*Order, error) {
	return createOrder(ctx, s.Client, params)
}

func createOrder(ctx context.Context, r Requester, params CreateOrderParams) (*Order, error) {
	body := map[string]any{
		"id":    params.ID,
		"email": params.Email,
		"items": params.Items,
	}
	if params.Name != "" {
		body["name"] = params.Name
	}
	if params.Total != "" {
		body["total"] = params.Total
	}
	if params.Currency != "" {
		body["currency"] = params.Currency
	}

	var result struct {
		Order Order `json:"order"`
	}
	if err := r.PostJSON(ctx, "orders/create", body, &result); err != nil {
		return nil, wrapServiceErr(err)
	}
	return &result.Order, nil
}

// Get retrieves an order by ID.
func (s OrdersService) Get(ctx context.Context, id string) (*Order, error) {
	return getOrder(ctx, s.Client, id)
}

func getOrder(ctx context.Context, r Requester, id string) (*Order, error) {
	var result struct {
		Order Order `json:"order"`
	}
	path := fmt.Sprintf("orders/%s/view", url.PathEscape(id))
	if err := r.Get(ctx, path, nil, &result); err != nil {
		return nil, wrapServiceErr(err)
	}
	return &result.Order, nil
}

// ListOrdersParams defines filters for listing orders.
type ListOrdersParams struct {
	Page  int
	Count int
	Email string
}

// List retrieves orders with pagination.
func (s OrdersService) List(ctx context.Context, params ListOrdersParams) (*OrderListResponse, error) {
	return listOrders(ctx, s.Client, params)
}

func listOrders(ctx context.Context, r Requester, params ListOrdersParams) (*OrderListResponse, error) {
	query := url.Values{}
	if params.Page > 0 {
		query.Set("page", fmt.Sprintf("%d", params.Page))
	}
	if params.Count > 0 {
		query.Set("count", fmt.Sprintf("%d", params.Count))
	}
	if params.Email != "" {
		query.Set("email", params.Email)
	}

	var result OrderListResponse
	if err := r.Get(ctx, "orders", query, &result); err != nil {
		return nil, wrapServiceErr(err)
	}
	return &result, nil
}
