// Package paymentprovider реализует клиент Stripe API для создания
// платёжных намерений. Запросы кодируются в form-urlencoded, как того
// требует Stripe, ответы приходят в JSON.
package paymentprovider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client клиент Stripe API.
type Client struct {
	secretKey  string
	apiURL     string
	httpClient *http.Client
}

// NewClient создаёт новый клиент Stripe.
func NewClient(secretKey string) *Client {
	return &Client{
		secretKey:  secretKey,
		apiURL:     "https://api.stripe.com/v1",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, form url.Values, idempotencyKey string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.apiURL+path,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}
	return req, nil
}

// CreatePaymentIntent отправляет запрос на создание платёжного намерения
// и возвращает объект с client_secret для подтверждения на стороне клиента.
func (c *Client) CreatePaymentIntent(ctx context.Context, reqParams CreateIntentRequest) (*PaymentIntent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(reqParams.Amount, 10))
	form.Set("currency", reqParams.Currency)
	for i, method := range reqParams.PaymentMethodTypes {
		form.Set(fmt.Sprintf("payment_method_types[%d]", i), method)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/payment_intents", form, reqParams.IdempotencyKey)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("stripe: %s: %s", resp.Status, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("stripe: unexpected status: %s", resp.Status)
	}

	var intent PaymentIntent
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return nil, err
	}
	return &intent, nil
}
