package apiclient

import (
	"context"
	"fmt"

	"github.com/GVMBT/PVNDORA-AI-SHOP-sub000/models"
	"github.com/GVMBT/PVNDORA-AI-SHOP-sub000/referral"
)

// ==================== ПРОФИЛЬ И РЕФЕРАЛКА ====================

func (c *Client) GetProfile(ctx context.Context) (*models.UserProfile, error) {
	var out models.UserProfile
	if err := c.get(ctx, "/api/webapp/profile", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetReferralSettings читает настройки программы на сессию. При ошибке
// вызывающий код падает на referral.FallbackConfig и помечает это в ответе.
func (c *Client) GetReferralSettings(ctx context.Context) (*referral.ProgramConfig, error) {
	var out referral.ProgramConfig
	if err := c.get(ctx, "/api/webapp/referral/settings", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetReferralDashboard(ctx context.Context) (*models.ReferralDashboard, error) {
	var out models.ReferralDashboard
	if err := c.get(ctx, "/api/webapp/referral/dashboard", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetNetwork возвращает узлы сети; line=0 – все линии.
func (c *Client) GetNetwork(ctx context.Context, line int) ([]models.NetworkNode, error) {
	endpoint := "/api/webapp/referral/network"
	if line >= 1 && line <= 3 {
		endpoint += fmt.Sprintf("?line=%d", line)
	}
	var out []models.NetworkNode
	if err := c.get(ctx, endpoint, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetBillingLog(ctx context.Context, page, perPage int) ([]models.BillingLogEntry, error) {
	var out []models.BillingLogEntry
	endpoint := fmt.Sprintf("/api/webapp/billing?page=%d&per_page=%d", page, perPage)
	if err := c.get(ctx, endpoint, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SubmitPartnerApplication(ctx context.Context, contact, comment string) (*models.PartnerApplication, error) {
	var out models.PartnerApplication
	body := map[string]string{"contact": contact, "comment": comment}
	if err := c.post(ctx, "/api/webapp/partner/apply", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
