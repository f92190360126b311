package api

import (
	"context"
	"fmt"
	"net/url"
)

// Group represents a community group on the platform.
type Group struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MemberCount int    `json:"member_count,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// GroupListResponse wraps the groups list payload.
type GroupListResponse struct {
	Groups []Group `json:"groups"`
	Total  int     `json:"total,omitempty"`
}

// List retrieves all community groups.
func (s GroupsService) List(ctx context.Context) ([]Group, error) {
	return listGroups(ctx, s.Client)
}

func listGroups(ctx context.Context, r Requester) ([]Group, error) {
	var result GroupListResponse
	if err := r.Get(ctx, "groups", nil, &result); err != nil {
		return nil, wrapServiceErr(err)
	}
	return result.Groups, nil
}

// Get retrieves a group by ID.
func (s GroupsService) Get(ctx context.Context, id string) (*Group, error) {
	return getGroup(ctx, s.Client, id)
}

func getGroup(ctx context.Context, r Requester, id string) (*Group, error) {
	var result struct {
		Group Group `json:"group"`
	}
	path := fmt.Sprintf("groups/%s/view", url.PathEscape(id))
	if err := r.Get(ctx, path, nil, &result); err != nil {
		return nil, wrapServiceErr(err)
	}
	return &result.Group, nil
}

// Create creates a new community group.
func (s GroupsService) Create(ctx context.Context, name, description string) (*Group, error) {
	return createGroup(ctx, s.Client, name, description)
}

func createGroup(ctx context.Context, r Requester, name, description string) (*Group, error) {
	body := map[string]any{"name": name}
	if description != "" {
		body["description"] = description
	}

	var result struct {
		Group Group `json:"group"`
	}
	if err := r.PostJSON(ctx, "groups/create", body, &result); err != nil {
		return nil, wrapServiceErr(err)
	}
	return &result.Group, nil
}

// Join adds a customer to a group.
func (s GroupsService) Join(ctx context.Context, id, customerEmail string) error {
	return joinGroup(ctx, s.Client, id, customerEmail)
}

func joinGroup(ctx context.Context, r Requester, id, customerEmail string) error {
	path := fmt.Sprintf("groups/%s/join", url.PathEscape(id))
	if err := r.PostForm(ctx, path, map[string]string{"email": customerEmail}, nil); err != nil {
		return wrapServiceErr(err)
	}
	return nil
}

// Leave removes a customer from a group.
func (s GroupsService) Leave(ctx context.Context, id, customerEmail string) error {
	return leaveGroup(ctx, s.Client, id, customerEmail)
}

func leaveGroup(ctx context.Context, r Requester, id, customerEmail string) error {
	path := fmt.Sprintf("groups/%s/leave", url.PathEscape(id))
	if err := r.PostForm(ctx, path, map[string]string{"email": customerEmail}, nil); err != nil {
		return wrapServiceErr(err)
	}
	return nil
}
