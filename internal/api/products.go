package api

import (
	"context"
	"fmt"
	"net/url"
)

// Product represents a store product known to the reviews platform.
type Product struct {
	Key      string `json:"key"`
	Title    string `json:"title"`
	URL      string `json:"url,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	Vendor   string `json:"vendor,omitempty"`
}

// ProductListResponse wraps the products list payload.
type ProductListResponse struct {
	Products []Product `json:"products"`
	Total    int       `json:"total,omitempty"`
	Page     int       `json:"page,omitempty"`
}

// RatingSummary aggregates review scores for a product.
type RatingSummary struct {
	ProductKey   string         `json:"product_key"`
	AverageScore string         `json:"average_score"`
	ReviewCount  int            `json:"review_count"`
	Distribution map[string]int `json:"distribution,omitempty"`
}

// ListProductsParams defines filters for listing products.
type ListProductsParams struct {
	Page  int
	Count int
}

// List retrieves products with pagination.
func (s ProductsService) List(ctx context.Context, params ListProductsParams) (*ProductListResponse, error) {
	return listProducts(ctx, s.Client, params)
}

func listProducts(ctx context.Context, r Requester, params ListProductsParams) (*ProductListResponse, error) {
	query := url.Values{}
	if params.Page > 0 {
		query.Set("page", fmt.Sprintf("%d", params.Page))
	}
	if params.Count > 0 {
		query.Set("count", fmt.Sprintf("%d", params.Count))
	}

	var result ProductListResponse
	if err := r.Get(ctx, "products", query, &result); err != nil {
		return nil, wrapServiceErr(err)
	}
	return &result, nil
}

// Get retrieves a single product by key.
func (s ProductsService) Get(ctx context.Context, key string) (*Product, error) {
	return getProduct(ctx, s.Client, key)
}

func getProduct(ctx context.Context, r Requester, key string) (*Product, error) {
	var result struct {
		Product Product `json:"product"`
	}
	path := fmt.Sprintf("products/%s/view", url.PathEscape(key))
	if err := r.Get(ctx, path, nil, &result); err != nil {
		return nil, wrapServiceErr(err)
	}
	return &result.Product, nil
}

// Reviews retrieves the reviews for a product.
func (s ProductsService) Reviews(ctx context.Context, key string, params ListReviewsParams) (*ReviewListResponse, error) {
	return productReviews(ctx, s.Client, key, params)
}

func productReviews(ctx context.Context, r Requester, key string, params ListReviewsParams) (*ReviewListResponse, error) {
	query := url.Values{}
	if params.Page > 0 {
		query.Set("page", fmt.Sprintf("%d", params.Page))
	}
	if params.Count > 0 {
		query.Set("count", fmt.Sprintf("%d", params.Count))
	}

	var result ReviewListResponse
	path := fmt.Sprintf("products/%s/reviews", url.PathEscape(key))
	if err := r.Get(ctx, path, query, &result); err != nil {
		return nil, wrapServiceErr(err)
	}
	return &result, nil
}

// RatingSummary retrieves the aggregated rating for a product.
func (s ProductsService) RatingSummary(ctx context.Context, key string) (*RatingSummary, error) {
	return productRatingSummary(ctx, s.Client, key)
}

func productRatingSummary(ctx context.Context, r Requester, key string) (*RatingSummary, error) {
	var result RatingSummary
	path := fmt.Sprintf("products/%s/rating", url.PathEscape(key))
	if err := r.Get(ctx, path, nil, &result); err != nil {
		return nil, wrapServiceErr(err)
	}
	return &result, nil
}
