package apiclient

import (
	"context"

	"github.com/GVMBT/PVNDORA-AI-SHOP-sub000/telegram"
)

// SessionResponse – bearer-сессия, выданная бэкендом за подписанный
// payload Login Widget (вход с десктопа, вне Telegram).
type SessionResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

func (c *Client) TelegramLogin(ctx context.Context, payload telegram.LoginWidgetPayload) (*SessionResponse, error) {
	var out SessionResponse
	if err := c.post(ctx, "/api/webapp/auth/telegram-login", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
