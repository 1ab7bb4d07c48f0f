package models

import "time"

// NetworkNode – приглашённый пользователь глазами реферера. Снимок с бэкенда,
// только для чтения; каждый узел принадлежит ровно одной из трёх линий.
type NetworkNode struct {
	ID        int64     `json:"id"`
	Handle    string    `json:"handle"`
	Status    string    `json:"status"` // active, inactive, banned
	EarnedUSD float64   `json:"earned_usd"`
	ProfitUSD float64   `json:"profit_usd"`
	VolumeUSD float64   `json:"volume_usd"`
	Line      int       `json:"line"` // 1 – прямые, 2 – второе колено, 3 – третье
	InvitedBy string    `json:"invited_by"`
	JoinedAt  time.Time `json:"joined_at"`
}

// BillingLogEntry – неизменяемая запись журнала операций, только для показа.
type BillingLogEntry struct {
	ID              int64     `json:"id"`
	Type            string    `json:"type"` // INCOME, OUTCOME, SYSTEM
	Amount          float64   `json:"amount"`
	Currency        string    `json:"currency"`
	Date            time.Time `json:"date"`
	TransactionType string    `json:"transaction_type"`
}

// ReferralDashboard – сводка реферального кабинета с бэкенда.
type ReferralDashboard struct {
	TurnoverUSD float64       `json:"turnover_usd"`
	EarnedUSD   float64       `json:"earned_usd"`
	Invited     int           `json:"invited"`
	Active      int           `json:"active"`
	Network     []NetworkNode `json:"network"`
}
