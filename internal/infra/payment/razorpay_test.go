package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRazorpayClient_CreateOrder_ConvertsToPaise(t *testing.T) {
	var gotBody map[string]interface{}
	var gotAuthUser, gotAuthPass string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuthUser, gotAuthPass, _ = r.BasicAuth()
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)

		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		_ = json.NewEncoder(w).Encode(GatewayOrder{
			ID:       "order_test123",
			Entity:   "order",
			Amount:   250000,
			Currency: "INR",
			Status:   "created",
		})
	}))
	defer srv.Close()

	c := NewRazorpayClient("key_id", "key_secret", srv.URL)

	order, err := c.CreateOrder(context.Background(), decimal.RequireFromString("2500.00"))
	assert.NoError(t, err)
	assert.Equal(t, "order_test123", order.ID)

	assert.Equal(t, "key_id", gotAuthUser)
	assert.Equal(t, "key_secret", gotAuthPass)
	assert.Equal(t, float64(250000), gotBody["amount"])
	assert.Equal(t, "INR", gotBody["currency"])
	assert.NotEmpty(t, gotBody["receipt"])
}

func TestRazorpayClient_CreateOrder_SubPaisePrecision(t *testing.T) {
	c := NewRazorpayClient("k", "s", "http://unused.invalid")

	_, err := c.CreateOrder(context.Background(), decimal.RequireFromString("10.005"))
	assert.Error(t, err)
}

func TestRazorpayClient_CreateOrder_GatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"Authentication failed"}}`))
	}))
	defer srv.Close()

	c := NewRazorpayClient("k", "s", srv.URL)

	_, err := c.CreateOrder(context.Background(), decimal.NewFromInt(100))
	assert.ErrorContains(t, err, "Authentication failed")
}

func TestRazorpayClient_VerifySignature(t *testing.T) {
	c := NewRazorpayClient("k", "secret", "")

	mac := hmac.New(sha256.New, []byte("secret"))
	mac.Write([]byte("order_x|pay_y"))
	valid := hex.EncodeToString(mac.Sum(nil))

	assert.True(t, c.VerifySignature("order_x", "pay_y", valid))
	assert.False(t, c.VerifySignature("order_x", "pay_y", "deadbeef"))
	assert.False(t, c.VerifySignature("order_x", "pay_z", valid))
	assert.False(t, c.VerifySignature("order_x", "pay_y", ""))
}
