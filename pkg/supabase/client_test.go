package supabase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeGoTrue(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()
	var keys []string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/v1/signup", func(w http.ResponseWriter, r *http.Request) {
		keys = append(keys, r.Header.Get("apikey"))
		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		if in["email"] == "taken@example.com" {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(map[string]string{"msg": "User already registered"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"user": map[string]string{"id": "uid-1"}})
	})
	mux.HandleFunc("POST /auth/v1/token", func(w http.ResponseWriter, r *http.Request) {
		keys = append(keys, r.Header.Get("apikey"))
		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		if in["password"] != "right" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error_description": "Invalid login credentials"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "jwt",
			"user":         map[string]string{"id": "uid-1"},
		})
	})
	mux.HandleFunc("PUT /auth/v1/admin/users/", func(w http.ResponseWriter, r *http.Request) {
		keys = append(keys, r.Header.Get("apikey"))
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &keys
}

func TestSignUp(t *testing.T) {
	srv, keys := newFakeGoTrue(t)
	c := New(srv.URL, "anon", "service")
	ctx := context.Background()

	id, err := c.SignUp(ctx, "new@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", id)
	assert.Equal(t, []string{"anon"}, *keys)

	_, err = c.SignUp(ctx, "taken@example.com", "pw")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestSignIn(t *testing.T) {
	srv, _ := newFakeGoTrue(t)
	c := New(srv.URL, "anon", "service")
	ctx := context.Background()

	id, err := c.SignIn(ctx, "new@example.com", "right")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", id)

	_, err = c.SignIn(ctx, "new@example.com", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid login credentials")
}

func TestUpdatePassword(t *testing.T) {
	srv, keys := newFakeGoTrue(t)
	ctx := context.Background()

	// service role key is mandatory for the admin API
	c := New(srv.URL, "anon", "")
	require.Error(t, c.UpdatePassword(ctx, "uid-1", "new"))

	c = New(srv.URL, "anon", "service")
	require.NoError(t, c.UpdatePassword(ctx, "uid-1", "new"))
	assert.Equal(t, []string{"service"}, *keys)
}
