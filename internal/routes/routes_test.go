package routes_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/morascent/internal/config"
	"github.com/example/morascent/internal/routes"
	"github.com/example/morascent/internal/store"
)

func newApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{
		AppPort:       "0",
		JWTSecret:     "test-secret",
		TokenExpires:  time.Hour,
		AdminPassword: "admin123",
		LowStock:      5,
	}
	s, err := store.New(cfg.AdminPassword)
	require.NoError(t, err)

	app := fiber.New()
	routes.Register(app, s, cfg)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, headers map[string]string) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	// Fiber renders fiber.NewError responses as plain text.
	if len(raw) > 0 && strings.Contains(resp.Header.Get("Content-Type"), "json") {
		require.NoError(t, json.Unmarshal(raw, &parsed), "body: %s", raw)
	}
	return resp.StatusCode, parsed
}

func TestStorefrontCatalog(t *testing.T) {
	app := newApp(t)

	status, body := doJSON(t, app, http.MethodGet, "/api/products", nil, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["data"])

	status, body = doJSON(t, app, http.MethodGet, "/api/products/8", nil, nil)
	require.Equal(t, http.StatusOK, status)
	product := body["data"].(map[string]interface{})
	assert.Equal(t, "Nishane Hacivat", product["name_en"])

	status, _ = doJSON(t, app, http.MethodGet, "/api/products/999", nil, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, body = doJSON(t, app, http.MethodGet, "/api/shipping/cities", nil, nil)
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, body["data"])
}

// The full shopper journey: add to cart, quote with a coupon, submit, and
// observe the cart coming back empty under the same token.
func TestCheckoutFlow(t *testing.T) {
	app := newApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/cart/items",
		map[string]interface{}{"product_id": 8, "quantity": 1}, nil)
	require.Equal(t, http.StatusOK, status)
	token := body["cart_token"].(string)
	require.NotEmpty(t, token)

	headers := map[string]string{"X-Cart-Token": token}

	status, body = doJSON(t, app, http.MethodPost, "/api/checkout/quote",
		map[string]interface{}{"coupon_code": "MORA10", "city": "القاهرة"}, headers)
	require.Equal(t, http.StatusOK, status)
	quote := body["data"].(map[string]interface{})
	assert.Equal(t, 1150.0, quote["subtotal"])
	assert.Equal(t, 115.0, quote["discount"])
	assert.Equal(t, 50.0, quote["shipping_cost"])
	assert.Equal(t, 1085.0, quote["total"])
	assert.Equal(t, true, quote["coupon_applied"])
	assert.NotContains(t, quote, "coupon_error")

	status, body = doJSON(t, app, http.MethodPost, "/api/checkout", map[string]interface{}{
		"coupon_code": "MORA10",
		"customer": map[string]interface{}{
			"name":   "أحمد محمد",
			"phone":  "+201000000001",
			"city":   "القاهرة",
			"region": "مدينة نصر",
		},
	}, headers)
	require.Equal(t, http.StatusCreated, status)
	order := body["data"].(map[string]interface{})
	assert.Equal(t, 1085.0, order["total"])
	assert.Equal(t, "new", order["status"])
	assert.Contains(t, order["id"], "MRA-")

	status, body = doJSON(t, app, http.MethodGet, "/api/cart/", nil, headers)
	require.Equal(t, http.StatusOK, status)
	cartData := body["data"].(map[string]interface{})
	assert.Empty(t, cartData["items"])
}

func TestCheckoutRejectsBadCoupon(t *testing.T) {
	app := newApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/cart/items",
		map[string]interface{}{"product_id": 10, "quantity": 1}, nil)
	require.Equal(t, http.StatusOK, status)
	headers := map[string]string{"X-Cart-Token": body["cart_token"].(string)}

	// Quote surfaces the problem inline without failing the request.
	status, body = doJSON(t, app, http.MethodPost, "/api/checkout/quote",
		map[string]interface{}{"coupon_code": "MORA10", "city": "القاهرة"}, headers)
	require.Equal(t, http.StatusOK, status)
	quote := body["data"].(map[string]interface{})
	assert.Equal(t, "below_minimum", quote["coupon_error"])
	assert.Equal(t, false, quote["coupon_applied"])

	// Submission with the same coupon is refused.
	status, _ = doJSON(t, app, http.MethodPost, "/api/checkout", map[string]interface{}{
		"coupon_code": "MORA10",
		"customer": map[string]interface{}{
			"name":   "أحمد",
			"phone":  "+201000000002",
			"city":   "القاهرة",
			"region": "وسط البلد",
		},
	}, headers)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestAdminRoutesRequireRoleToken(t *testing.T) {
	app := newApp(t)

	status, _ := doJSON(t, app, http.MethodGet, "/api/admin/orders", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	// A shopper token is authenticated but carries no role.
	status, body := doJSON(t, app, http.MethodPost, "/api/auth/login",
		map[string]interface{}{"email": "layla@example.com", "password": "anything"}, nil)
	require.Equal(t, http.StatusOK, status)
	shopperToken := body["token"].(string)

	status, _ = doJSON(t, app, http.MethodGet, "/api/admin/orders", nil,
		map[string]string{"Authorization": "Bearer " + shopperToken})
	assert.Equal(t, http.StatusForbidden, status)

	// The seeded super admin gets through.
	status, body = doJSON(t, app, http.MethodPost, "/api/admin/login",
		map[string]interface{}{"email": "admin@morascent.com", "password": "admin123"}, nil)
	require.Equal(t, http.StatusOK, status)
	adminToken := body["token"].(string)
	adminHeaders := map[string]string{"Authorization": "Bearer " + adminToken}

	status, body = doJSON(t, app, http.MethodGet, "/api/admin/orders", nil, adminHeaders)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])

	status, _ = doJSON(t, app, http.MethodGet, "/api/admin/stats", nil, adminHeaders)
	assert.Equal(t, http.StatusOK, status)
}

// Back-office sign-in must stay reachable without any bearer token; a wrong
// password has to fail on credentials, not on a missing auth header.
func TestAdminLoginIsPublic(t *testing.T) {
	app := newApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/admin/login",
		map[string]interface{}{"email": "admin@morascent.com", "password": "admin123"}, nil)
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, body["token"])

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login",
		strings.NewReader(`{"email":"admin@morascent.com","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "invalid credentials", string(raw))
}

func TestShopperOrderHistory(t *testing.T) {
	app := newApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/cart/items",
		map[string]interface{}{"product_id": 9, "quantity": 2}, nil)
	require.Equal(t, http.StatusOK, status)
	cartHeaders := map[string]string{"X-Cart-Token": body["cart_token"].(string)}

	status, _ = doJSON(t, app, http.MethodPost, "/api/checkout", map[string]interface{}{
		"customer": map[string]interface{}{
			"name":   "ليلى",
			"email":  "layla@example.com",
			"phone":  "+201000000003",
			"city":   "الجيزة",
			"region": "الدقي",
		},
	}, cartHeaders)
	require.Equal(t, http.StatusCreated, status)

	status, body = doJSON(t, app, http.MethodPost, "/api/auth/login",
		map[string]interface{}{"email": "layla@example.com", "password": "pw"}, nil)
	require.Equal(t, http.StatusOK, status)
	token := body["token"].(string)

	status, body = doJSON(t, app, http.MethodGet, "/api/orders", nil,
		map[string]string{"Authorization": "Bearer " + token})
	require.Equal(t, http.StatusOK, status)
	orders := body["data"].([]interface{})
	require.Len(t, orders, 1)
}

func TestChatFallsBackWithoutAPIKey(t *testing.T) {
	app := newApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/chat",
		map[string]interface{}{"lang": "en", "message": "recommend me a perfume"}, nil)
	require.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["reply"])

	status, _ = doJSON(t, app, http.MethodPost, "/api/chat",
		map[string]interface{}{"lang": "en"}, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}
