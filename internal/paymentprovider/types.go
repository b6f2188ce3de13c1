package paymentprovider

// CreateIntentRequest описывает параметры создания платёжного намерения.
type CreateIntentRequest struct {
	Amount             int64    // Сумма в минимальных единицах валюты
	Currency           string   // Валюта, например usd
	PaymentMethodTypes []string // Разрешённые методы оплаты
	IdempotencyKey     string   // Ключ идемпотентности запроса
}

// PaymentIntent представляет платёжное намерение, созданное провайдером.
// ClientSecret передаётся клиенту для подтверждения оплаты.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

// apiError описывает тело ошибки Stripe API.
type apiError struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
