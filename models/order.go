package models

import "time"

type Order struct {
	ID          string     `json:"id"`
	UserID      int64      `json:"user_id"`
	Items       []CartItem `json:"items"`
	SubtotalUSD float64    `json:"subtotal_usd"`
	DiscountUSD float64    `json:"discount_usd"`
	TotalUSD    float64    `json:"total_usd"`
	PromoCode   string     `json:"promo_code,omitempty"`
	Status      string     `json:"status"` // pending, paid, delivered, cancelled
	PaymentURL  string     `json:"payment_url,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// CreateOrderRequest – то, что клиент отправляет на создание заказа.
// ClientRef – идентификатор со стороны клиента для сверки после редиректа.
type CreateOrderRequest struct {
	Items     []CartItem `json:"items"`
	PromoCode string     `json:"promo_code,omitempty"`
	Currency  string     `json:"currency,omitempty"`
	ClientRef string     `json:"client_ref"`
}
