package models

import "time"

type UserProfile struct {
	ID           int64     `json:"id"`
	TelegramID   int64     `json:"telegram_id"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	BalanceUSD   float64   `json:"balance_usd"`
	TurnoverUSD  float64   `json:"turnover_usd"` // оборот сети для карьерной программы
	EarnedUSD    float64   `json:"earned_usd"`
	Currency     string    `json:"currency"`
	ReferralCode string    `json:"referral_code"`
	IsPartner    bool      `json:"is_partner"`
	IsBanned     bool      `json:"is_banned"`
	WarningCount int       `json:"warning_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// PartnerApplication – заявка на VIP-партнёрство.
type PartnerApplication struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Contact   string    `json:"contact"`
	Comment   string    `json:"comment"`
	Status    string    `json:"status"` // pending, approved, rejected
	CreatedAt time.Time `json:"created_at"`
}
