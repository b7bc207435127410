package paypal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakePayPal(t *testing.T, tokenCalls *int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/oauth2/token":
			atomic.AddInt32(tokenCalls, 1)
			user, pass, ok := r.BasicAuth()
			require.True(t, ok)
			assert.Equal(t, "cid", user)
			assert.Equal(t, "secret", pass)
			json.NewEncoder(w).Encode(map[string]any{"access_token": "tok-1", "expires_in": 3600})
		case "/v2/checkout/orders":
			assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
			var body struct {
				Intent        string `json:"intent"`
				PurchaseUnits []struct {
					Amount struct {
						CurrencyCode string `json:"currency_code"`
						Value        string `json:"value"`
					} `json:"amount"`
				} `json:"purchase_units"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "CAPTURE", body.Intent)
			assert.Equal(t, "49.99", body.PurchaseUnits[0].Amount.Value)
			json.NewEncoder(w).Encode(Order{ID: "ORD-1", Status: "CREATED"})
		case "/v2/checkout/orders/ORD-1/capture":
			json.NewEncoder(w).Encode(Order{ID: "ORD-1", Status: "COMPLETED"})
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestCreateAndCaptureOrder(t *testing.T) {
	var tokenCalls int32
	srv := fakePayPal(t, &tokenCalls)
	defer srv.Close()

	c := New("cid", "secret", srv.URL)

	order, err := c.CreateOrder(context.Background(), "49.99", "USD")
	require.NoError(t, err)
	assert.Equal(t, "ORD-1", order.ID)
	assert.Equal(t, "CREATED", order.Status)

	captured, err := c.CaptureOrder(context.Background(), "ORD-1")
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", captured.Status)

	// the token is cached across calls
	assert.Equal(t, int32(1), atomic.LoadInt32(&tokenCalls))
}

func TestCreateOrderNotConfigured(t *testing.T) {
	c := New("", "", "http://localhost:0")
	_, err := c.CreateOrder(context.Background(), "10.00", "USD")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestCreateOrderProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/oauth2/token" {
			json.NewEncoder(w).Encode(map[string]any{"access_token": "tok", "expires_in": 3600})
			return
		}
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New("cid", "secret", srv.URL)
	_, err := c.CreateOrder(context.Background(), "10.00", "USD")
	assert.ErrorIs(t, err, ErrProvider)
}
