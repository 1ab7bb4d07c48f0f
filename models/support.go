package models

import "time"

type Ticket struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	OrderID    string    `json:"order_id,omitempty"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	Status     string    `json:"status"` // open, approved, rejected
	Resolution string    `json:"resolution,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type FAQEntry struct {
	ID        int64  `json:"id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	SortOrder int    `json:"sort_order"`
	IsActive  bool   `json:"is_active"`
}
