package api

import (
	"context"
	"fmt"
	"net/url"
)

// Review represents a product review. The backend serializes numeric fields
// as strings, so IDs and scores stay textual on this side of the wire.
type Review struct {
	ID         string        `json:"id"`
	Key        string        `json:"key,omitempty"`
	ProductKey string        `json:"product_key,omitempty"`
	Author     string        `json:"author,omitempty"`
	Email      string        `json:"email,omitempty"`
	Score      string        `json:"score"`
	Title      string        `json:"title,omitempty"`
	Content    string        `json:"content,omitempty"`
	CreatedAt  string        `json:"created_at,omitempty"`
	Verified   bool          `json:"verified,omitempty"`
	Media      []ReviewMedia `json:"media,omitempty"`
	Reply      string        `json:"reply,omitempty"`
}

// ReviewMedia is an image or video attached to a review.
type ReviewMedia struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// ReviewListResponse wraps the reviews list payload.
type ReviewListResponse struct {
	Review []Review `json:"review"`
	Total  int      `json:"total,omitempty"`
	Page   int      `json:"page,omitempty"`
}

// ListReviewsParams defines filters for listing reviews.
type ListReviewsParams struct {
	ProductKey string
	Page       int
	Count      int
	MinScore   int
}

// List retrieves reviews with optional filters.
func (s ReviewsService) List(ctx context.Context, params ListReviewsParams) (*ReviewListResponse, error) {
	return listReviews(ctx, s.Client, params)
}

func listReviews(ctx context.Context, r Requester, params ListReviewsParams) (*ReviewListResponse, error) {
	query := url.Values{}
	if params.ProductKey != "" {
		query.Set("product_key", params.ProductKey)
	}
	if params.Page > 0 {
		query.Set("page", fmt.Sprintf("%d", params.Page))
	}
	if params.Count > 0 {
		query.Set("count", fmt.Sprintf("%d", params.Count))
	}
	if params.MinScore > 0 {
		query.Set("min_score", fmt.Sprintf("%d", params.MinScore))
	}

	var result ReviewListResponse
	if err := r.Get(ctx, "reviews", query, &result); err != nil {
		return nil, wrapServiceErr(err)
	}
	return &result, nil
}

// Get retrieves a single review by key.
func (s ReviewsService) Get(ctx context.Context, key string) (*Review, error) {
	return getReview(ctx, s.Client, key)
}

func getReview(ctx context.Context, r Requester, key string) (*Review, error) {
	var result struct {
		Review Review `json:"review"`
	}
	path := fmt.Sprintf("reviews/%s/view", url.PathEscape(key))
	if err := r.Get(ctx, path, nil, &result); err != nil {
		return nil, wrapServiceErr(err)
	}
	return &result.Review, nil
}

// Create submits a new review for a product.
func (s ReviewsService) Create(ctx context.Context, productKey, author, email string, score int, title, content string) (*Review, error) {
	return createReview(ctx, s.Client, productKey, author, email, score, title, content)
}

func createReview(ctx context.Context, r Requester, productKey, author, email string, score int, title, content string) (*Review, error) {
	body := map[string]any{
		"product_key": productKey,
		"author":      author,
		"score":       score,
	}
	if email != "" {
		body["email"] = email
	}
	if title != "" {
		body["title"] = title
	}
	if content != "" {
		body["content"] = content
	}

	var result struct {
		Review Review `json:"review"`
	}
	if err := r.PostJSON(ctx, "reviews/create", body, &result); err != nil {
		return nil, wrapServiceErr(err)
	}
	return &result.Review, nil
}

// Reply posts a merchant reply to a review.
func (s ReviewsService) Reply(ctx context.Context, key, content string) (*Review, error) {
	return replyReview(ctx, s.Client, key, content)
}

func replyReview(ctx context.Context, r Requester, key, content string) (*Review, error) {
	var result struct {
		Review Review `json:"review"`
	}
	path := fmt.Sprintf("reviews/%s/reply", url.PathEscape(key))
	if err := r.PostJSON(ctx, path, map[string]any{"content": content}, &result); err != nil {
		return nil, wrapServiceErr(err)
	}
	return &result.Review, nil
}

// AddMedia attaches images to a review. Files maps filename to content.
func (s ReviewsService) AddMedia(ctx context.Context, key string, files map[string][]byte) ([]ReviewMedia, error) {
	return addReviewMedia(ctx, s.Client, key, files)
}

func addReviewMedia(ctx context.Context, r Requester, key string, files map[string][]byte) ([]ReviewMedia, error) {
	var result struct {
		Media []ReviewMedia `json:"media"`
	}
	path := fmt.Sprintf("reviews/%s/media", url.PathEscape(key))
	fields := map[string]string{"review_key": key}
	if err := r.PostMultipart(ctx, path, fields, files, &result); err != nil {
		return nil, wrapServiceErr(err)
	}
	return result.Media, nil
}

// Delete removes a review.
func (s ReviewsService) Delete(ctx context.Context, key string) error {
	return deleteReview(ctx, s.Client, key)
}

func deleteReview(ctx context.Context, r Requester, key string) error {
	path := fmt.Sprintf("reviews/%s/delete", url.PathEscape(key))
	if err := r.PostForm(ctx, path, map[string]string{"key": key}, nil); err != nil {
		return wrapServiceErr(err)
	}
	return nil
}
