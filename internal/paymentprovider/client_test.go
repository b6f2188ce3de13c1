package paymentprovider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_CreatePaymentIntent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.Equal(t, "idem-key-1", r.Header.Get("Idempotency-Key"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "1999", r.PostForm.Get("amount"))
		assert.Equal(t, "usd", r.PostForm.Get("currency"))
		assert.Equal(t, "card", r.PostForm.Get("payment_method_types[0]"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "pi_123",
			"client_secret": "pi_123_secret",
			"amount": 1999,
			"currency": "usd",
			"status": "requires_payment_method"
		}`))
	}))
	defer server.Close()

	client := NewClient("sk_test_123")
	client.apiURL = server.URL

	intent, err := client.CreatePaymentIntent(context.Background(), CreateIntentRequest{
		Amount:             1999,
		Currency:           "usd",
		PaymentMethodTypes: []string{"card"},
		IdempotencyKey:     "idem-key-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "pi_123", intent.ID)
	assert.Equal(t, "pi_123_secret", intent.ClientSecret)
	assert.Equal(t, int64(1999), intent.Amount)
	assert.Equal(t, "requires_payment_method", intent.Status)
}

func TestClient_CreatePaymentIntent_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": {"type": "invalid_request_error", "message": "Amount must be at least 50 cents"}}`))
	}))
	defer server.Close()

	client := NewClient("sk_test_123")
	client.apiURL = server.URL

	_, err := client.CreatePaymentIntent(context.Background(), CreateIntentRequest{
		Amount:   1,
		Currency: "usd",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Amount must be at least 50 cents")
}

func TestClient_CreatePaymentIntent_UnexpectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient("sk_test_123")
	client.apiURL = server.URL

	_, err := client.CreatePaymentIntent(context.Background(), CreateIntentRequest{
		Amount:   100,
		Currency: "usd",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}
