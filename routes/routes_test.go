package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Azimiwizard/App-1/configs"
)

var apiDBSeq atomic.Int64

func newTestApp(t *testing.T) *App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:api_test_%d?mode=memory&cache=shared", apiDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, configs.Migrate(db))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	cfg := &configs.Config{
		BaseURL:        "http://localhost:8080",
		JWTSecret:      "api-test-secret",
		JWTTTL:         time.Hour,
		AdminClaimCode: "staffonly",
	}
	return Setup(cfg, db, rdb, nil, nil)
}

func do(t *testing.T, app *App, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	app.Engine.ServeHTTP(w, req)

	var parsed map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func registerAndLogin(t *testing.T, app *App, username, adminCode string) string {
	t.Helper()
	w, _ := do(t, app, http.MethodPost, "/auth/register", "", gin.H{
		"username":  username,
		"email":     username + "@example.com",
		"password":  "Sup3r$ecret",
		"adminCode": adminCode,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, body := do(t, app, http.MethodPost, "/auth/login", "", gin.H{
		"email":    username + "@example.com",
		"password": "Sup3r$ecret",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token, _ := body["data"].(map[string]any)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestOrderingFlow(t *testing.T) {
	app := newTestApp(t)
	admin := registerAndLogin(t, app, "manager", "staffonly")
	customer := registerAndLogin(t, app, "diner", "")

	// admin creates the catalog
	w, body := do(t, app, http.MethodPost, "/admin/dishes", admin, gin.H{
		"name": "Burger Deluxe", "priceCents": 1475, "section": "Lunch",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	burgerID := body["data"].(map[string]any)["ID"].(float64)

	w, _ = do(t, app, http.MethodPost, "/admin/dishes", admin, gin.H{
		"name": "Caesar Salad", "priceCents": 1000, "section": "Lunch",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// menu is public
	w, body = do(t, app, http.MethodGet, "/menu", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	sections := body["data"].([]any)
	require.Len(t, sections, 1)

	// cart requires auth
	w, _ = do(t, app, http.MethodGet, "/cart", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	path := fmt.Sprintf("/cart/add/%d", int(burgerID))
	w, _ = do(t, app, http.MethodPost, path, customer, gin.H{"quantity": 2})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, body = do(t, app, http.MethodGet, "/cart", customer, nil)
	require.Equal(t, http.StatusOK, w.Code)
	view := body["data"].(map[string]any)
	assert.Equal(t, float64(2950), view["totalCents"])

	w, body = do(t, app, http.MethodPost, "/checkout", customer, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	order := body["data"].(map[string]any)
	orderID := int(order["ID"].(float64))
	assert.Equal(t, "pending", order["status"])
	assert.Equal(t, float64(29), order["pointsEarned"])

	// second checkout finds an empty cart
	w, _ = do(t, app, http.MethodPost, "/checkout", customer, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// customer admin surface is closed
	w, _ = do(t, app, http.MethodGet, "/admin/orders", customer, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = do(t, app, http.MethodPatch, fmt.Sprintf("/admin/orders/%d/status", orderID), admin, gin.H{"status": "preparing"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, body = do(t, app, http.MethodGet, fmt.Sprintf("/orders/%d", orderID), customer, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "preparing", body["data"].(map[string]any)["status"])

	// unknown status value is rejected
	w, _ = do(t, app, http.MethodPatch, fmt.Sprintf("/admin/orders/%d/status", orderID), admin, gin.H{"status": "teleported"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReviewEndpoint(t *testing.T) {
	app := newTestApp(t)
	admin := registerAndLogin(t, app, "chef", "staffonly")
	customer := registerAndLogin(t, app, "guest", "")

	w, body := do(t, app, http.MethodPost, "/admin/dishes", admin, gin.H{
		"name": "Tiramisu", "priceCents": 700, "section": "Other",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	dishID := int(body["data"].(map[string]any)["ID"].(float64))

	w, _ = do(t, app, http.MethodPost, fmt.Sprintf("/dishes/%d/reviews", dishID), customer, gin.H{
		"rating": 5, "body": "perfect",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, body = do(t, app, http.MethodGet, fmt.Sprintf("/dishes/%d", dishID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	detail := body["data"].(map[string]any)
	dish := detail["dish"].(map[string]any)
	assert.Equal(t, float64(5), dish["avgRating"])
	assert.Equal(t, float64(1), dish["reviewCount"])
	assert.Len(t, detail["reviews"].([]any), 1)
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)
	w, body := do(t, app, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["ok"])
}
