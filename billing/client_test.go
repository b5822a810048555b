package billing

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetActiveSubscription(t *testing.T) {
	priceRef := "price_123"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "/subscriptions/active", r.URL.Path)
		assert.Equal(t, "cust-1", r.URL.Query().Get("customer"))

		json.NewEncoder(w).Encode(Subscription{
			CustomerRef: "cust-1",
			Status:      "active",
			PriceRef:    &priceRef,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")

	sub, err := client.GetActiveSubscription("cust-1")
	require.NoError(t, err)
	require.NotNil(t, sub)
	assert.Equal(t, "active", sub.Status)
	assert.Equal(t, "price_123", *sub.PriceRef)
}

func TestGetActiveSubscription_NoSubscription(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")

	sub, err := client.GetActiveSubscription("cust-1")
	require.NoError(t, err)
	assert.Nil(t, sub)
}

func TestGetActiveSubscription_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")

	_, err := client.GetActiveSubscription("cust-1")
	assert.Error(t, err)
}

func TestCreateCheckoutSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/checkout/sessions", r.URL.Path)

		var req CreateCheckoutRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "subscription", req.Mode)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CheckoutSession{ID: "cs_1", URL: "https://pay.example/cs_1"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")

	session, err := client.CreateCheckoutSession(CreateCheckoutRequest{
		CustomerRef: "cust-1",
		PriceRef:    "price_123",
		Mode:        "subscription",
		SuccessURL:  "https://blog.example/success",
		CancelURL:   "https://blog.example/subscription",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/cs_1", session.URL)
}
