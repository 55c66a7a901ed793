package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"restaurant-client/models"
)

// Token is the backend's OAuth2 token response
type Token struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
}

// Login performs the OAuth2 password grant against the backend's token
// endpoint. This is the only non-JSON request the client makes.
func (c *Client) Login(ctx context.Context, username, password string) (*Token, error) {
	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("username", username)
	form.Set("password", password)
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/o/token/", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("login: read body: %w", err)
	}
	if resp.StatusCode >= 400 {
		if resp.StatusCode == http.StatusBadRequest {
			// the token endpoint reports bad credentials as 400 invalid_grant
			return nil, ErrUnauthorized
		}
		return nil, mapError(resp.StatusCode, data)
	}

	var tok Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("login: decode token: %w", err)
	}
	return &tok, nil
}

// CurrentUser fetches the profile behind the given access token
func (c *Client) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, "/users/current-user/", token, nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// RegisterRequest creates a new customer account
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodPost, "/users/", "", nil, req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateProfileRequest patches the current user; zero fields are omitted
type UpdateProfileRequest struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

func (c *Client) UpdateCurrentUser(ctx context.Context, token string, req UpdateProfileRequest) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodPatch, "/users/current-user/", token, nil, req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
