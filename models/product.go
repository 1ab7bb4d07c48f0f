package models

import "time"

type Product struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	PriceUSD    float64  `json:"price_usd"`
	OldPriceUSD float64  `json:"old_price_usd,omitempty"`
	ImageURL    string   `json:"image_url"`
	Tags        []string `json:"tags,omitempty"`
	InStock     int      `json:"in_stock"`
	IsActive    bool     `json:"is_active"`
	SortOrder   int      `json:"sort_order"`
}

type CartItem struct {
	ProductID int64   `json:"product_id"`
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	PriceUSD  float64 `json:"price_usd"`
}

// PromoCode – ответ бэкенда на проверку промокода; скидка уже посчитана там.
type PromoCode struct {
	Code        string  `json:"code"`
	Valid       bool    `json:"valid"`
	DiscountUSD float64 `json:"discount_usd"`
	Reason      string  `json:"reason,omitempty"`
}

// StockEntry – единица стока (ключ/аккаунт), видна только админке.
type StockEntry struct {
	ID        int64      `json:"id"`
	ProductID int64      `json:"product_id"`
	Content   string     `json:"content"`
	Status    string     `json:"status"` // available, reserved, sold
	AddedAt   time.Time  `json:"added_at"`
	SoldAt    *time.Time `json:"sold_at,omitempty"`
}
