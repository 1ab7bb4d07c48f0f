package models

// AnalyticsSummary – бизнес-метрики для админ-дэшборда, считает бэкенд.
type AnalyticsSummary struct {
	Revenue      float64 `json:"revenue"`
	OrdersTotal  int     `json:"orders_total"`
	OrdersToday  int     `json:"orders_today"`
	UsersTotal   int     `json:"users_total"`
	UsersActive  int     `json:"users_active"`
	AvgOrderUSD  float64 `json:"avg_order_usd"`
	RefPayoutUSD float64 `json:"ref_payout_usd"`
}

// AdminUser – строка в users-CRM.
type AdminUser struct {
	ID           int64   `json:"id"`
	TelegramID   int64   `json:"telegram_id"`
	Username     string  `json:"username"`
	BalanceUSD   float64 `json:"balance_usd"`
	TurnoverUSD  float64 `json:"turnover_usd"`
	IsPartner    bool    `json:"is_partner"`
	PartnerLevel int     `json:"partner_level"`
	IsBanned     bool    `json:"is_banned"`
	WarningCount int     `json:"warning_count"`
}
