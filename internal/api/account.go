package api

import (
	"context"
)

// AccountInfo describes the merchant account the token belongs to.
type AccountInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Plan     string `json:"plan,omitempty"`
	ShopURL  string `json:"shop_url,omitempty"`
	Timezone string `json:"timezone,omitempty"`
}

// View retrieves the account details for the active token.
func (s AccountService) View(ctx context.Context) (*AccountInfo, error) {
	return viewAccount(ctx, s.Client)
}

func viewAccount(ctx context.Context, r Requester) (*AccountInfo, error) {
	var result struct {
		Account AccountInfo `json:"account"`
	}
	if err := r.Get(ctx, "account/view", nil, &result); err != nil {
		return nil, wrapServiceErr(err)
	}
	return &result.Account, nil
}

// Update changes account settings from a map of fields.
func (s AccountService) Update(ctx context.Context, fields map[string]any) (*AccountInfo, error) {
	return updateAccount(ctx, s.Client, fields)
}

func updateAccount(ctx context.Context, r Requester, fields map[string]any) (*AccountInfo, error) {
	var result struct {
		Account AccountInfo `json:"account"`
	}
	if err := r.PostJSON(ctx, "account/update", fields, &result); err != nil {
		return nil, wrapServiceErr(err)
	}
	return &result.Account, nil
}

// loginResponse is the token-acquisition payload.
type loginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in,omitempty"`
}

// Login exchanges client credentials for an access token and installs it on
// the client. Every failure of the exchange, typed or not, is wrapped in an
// *AuthError so callers can treat credential problems uniformly.
func (s AccountService) Login(ctx context.Context, clientID, clientSecret string) (string, error) {
	form := map[string]string{
		"client_id":     clientID,
		"client_secret": clientSecret,
		"grant_type":    "client_credentials",
	}

	var result loginResponse
	if err := s.PostForm(ctx, "oauth/token", form, &result); err != nil {
		return "", &AuthError{Message: "Network error", Err: err}
	}
	if result.AccessToken == "" {
		return "", &AuthError{Message: "token acquisition returned no access_token"}
	}

	s.SetAccessToken(result.AccessToken)
	return result.AccessToken, nil
}
