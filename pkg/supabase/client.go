// Package supabase is a thin client for the GoTrue auth REST API. Only
// the three calls the app needs are implemented: sign-up, password
// sign-in, and admin password update.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Client struct {
	baseURL    string
	anonKey    string
	serviceKey string
	http       *http.Client
}

func New(baseURL, anonKey, serviceKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		anonKey:    anonKey,
		serviceKey: serviceKey,
		http:       &http.Client{Timeout: 10 * time.Second},
	}
}

type authUser struct {
	ID string `json:"id"`
}

type signUpResponse struct {
	ID   string    `json:"id"`
	User *authUser `json:"user"`
}

type tokenResponse struct {
	AccessToken string   `json:"access_token"`
	User        authUser `json:"user"`
}

type apiError struct {
	Msg      string `json:"msg"`
	Message  string `json:"message"`
	ErrorMsg string `json:"error_description"`
}

func (e *apiError) text() string {
	switch {
	case e.Msg != "":
		return e.Msg
	case e.Message != "":
		return e.Message
	case e.ErrorMsg != "":
		return e.ErrorMsg
	}
	return "auth provider error"
}

// SignUp registers the credentials and returns the provider user id.
func (c *Client) SignUp(ctx context.Context, email, password string) (string, error) {
	var out signUpResponse
	err := c.do(ctx, http.MethodPost, "/auth/v1/signup", c.anonKey,
		map[string]string{"email": email, "password": password}, &out)
	if err != nil {
		return "", err
	}
	if out.User != nil && out.User.ID != "" {
		return out.User.ID, nil
	}
	return out.ID, nil
}

// SignIn exchanges credentials for the provider user id.
func (c *Client) SignIn(ctx context.Context, email, password string) (string, error) {
	var out tokenResponse
	err := c.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", c.anonKey,
		map[string]string{"email": email, "password": password}, &out)
	if err != nil {
		return "", err
	}
	return out.User.ID, nil
}

// UpdatePassword changes a user's password through the admin API.
// Requires the service role key.
func (c *Client) UpdatePassword(ctx context.Context, authID, newPassword string) error {
	if c.serviceKey == "" {
		return fmt.Errorf("supabase: service role key not configured")
	}
	return c.do(ctx, http.MethodPut, "/auth/v1/admin/users/"+authID, c.serviceKey,
		map[string]string{"password": newPassword}, nil)
}

func (c *Client) do(ctx context.Context, method, path, key string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", key)
	req.Header.Set("Authorization", "Bearer "+key)

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}
	if res.StatusCode >= 400 {
		var apiErr apiError
		_ = json.Unmarshal(data, &apiErr)
		return fmt.Errorf("supabase: %s (%d)", apiErr.text(), res.StatusCode)
	}
	if out != nil {
		return json.Unmarshal(data, out)
	}
	return nil
}
