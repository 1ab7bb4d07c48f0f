package apiclient

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/GVMBT/PVNDORA-AI-SHOP-sub000/models"
	"github.com/GVMBT/PVNDORA-AI-SHOP-sub000/referral"
)

// ==================== АДМИНКА ====================
// Авторизацию админских ручек проверяет бэкенд; 401/403 приходят сюда как
// обычные ошибки и показываются как есть.

func (c *Client) AdminListProducts(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	if err := c.get(ctx, "/api/admin/products", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AdminCreateProduct(ctx context.Context, p models.Product) (*models.Product, error) {
	var out models.Product
	if err := c.post(ctx, "/api/admin/products", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminUpdateProduct(ctx context.Context, p models.Product) error {
	return c.put(ctx, fmt.Sprintf("/api/admin/products/%d", p.ID), p, nil)
}

func (c *Client) AdminDeleteProduct(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/admin/products/%d", id))
}

// AdminAddStock добавляет позиции стока: одну или пачкой, по строке на позицию.
// Разбиение по переводам строк делается здесь, бэкенд получает готовый список.
func (c *Client) AdminAddStock(ctx context.Context, productID int64, raw string) (int, error) {
	var entries []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			entries = append(entries, line)
		}
	}
	if len(entries) == 0 {
		return 0, fmt.Errorf("нет позиций для добавления")
	}

	body := map[string]interface{}{"product_id": productID, "entries": entries}
	var out struct {
		Added int `json:"added"`
	}
	if err := c.post(ctx, "/api/admin/stock", body, &out); err != nil {
		return 0, err
	}
	return out.Added, nil
}

func (c *Client) AdminListStock(ctx context.Context, productID int64) ([]models.StockEntry, error) {
	var out []models.StockEntry
	if err := c.get(ctx, fmt.Sprintf("/api/admin/stock?product_id=%d", productID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AdminDeleteStock(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/admin/stock/%d", id))
}

func (c *Client) AdminListOrders(ctx context.Context, status string) ([]models.Order, error) {
	endpoint := "/api/admin/orders"
	if status != "" {
		endpoint += "?status=" + status
	}
	var out []models.Order
	if err := c.get(ctx, endpoint, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AdminListTickets(ctx context.Context, status string) ([]models.Ticket, error) {
	endpoint := "/api/admin/tickets"
	if status != "" {
		endpoint += "?status=" + status
	}
	var out []models.Ticket
	if err := c.get(ctx, endpoint, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AdminResolveTicket(ctx context.Context, id int64, approve bool, resolution string) error {
	action := "reject"
	if approve {
		action = "approve"
	}
	body := map[string]string{"resolution": resolution}
	return c.post(ctx, fmt.Sprintf("/api/admin/tickets/%d/%s", id, action), body, nil)
}

func (c *Client) AdminListFAQ(ctx context.Context) ([]models.FAQEntry, error) {
	var out []models.FAQEntry
	if err := c.get(ctx, "/api/admin/faq", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AdminCreateFAQ(ctx context.Context, e models.FAQEntry) (*models.FAQEntry, error) {
	var out models.FAQEntry
	if err := c.post(ctx, "/api/admin/faq", e, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminUpdateFAQ(ctx context.Context, e models.FAQEntry) error {
	return c.put(ctx, fmt.Sprintf("/api/admin/faq/%d", e.ID), e, nil)
}

func (c *Client) AdminDeleteFAQ(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/admin/faq/%d", id))
}

func (c *Client) AdminGetReferralSettings(ctx context.Context) (*referral.ProgramConfig, error) {
	var out referral.ProgramConfig
	if err := c.get(ctx, "/api/admin/referral/settings", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminUpdateReferralSettings(ctx context.Context, cfg referral.ProgramConfig) error {
	return c.put(ctx, "/api/admin/referral/settings", cfg, nil)
}

func (c *Client) AdminGetAnalytics(ctx context.Context) (*models.AnalyticsSummary, error) {
	var out models.AnalyticsSummary
	if err := c.get(ctx, "/api/admin/analytics", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminListUsers(ctx context.Context, query string, page int) ([]models.AdminUser, error) {
	endpoint := fmt.Sprintf("/api/admin/users?page=%d", page)
	if query != "" {
		endpoint += "&q=" + url.QueryEscape(query)
	}
	var out []models.AdminUser
	if err := c.get(ctx, endpoint, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AdminGetUser(ctx context.Context, id int64) (*models.AdminUser, error) {
	var out models.AdminUser
	if err := c.get(ctx, fmt.Sprintf("/api/admin/users/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminListPartnerApplications(ctx context.Context) ([]models.PartnerApplication, error) {
	var out []models.PartnerApplication
	if err := c.get(ctx, "/api/admin/partners/applications", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AdminSetPartnerLevel переключает партнёрский уровень в partners-CRM.
func (c *Client) AdminSetPartnerLevel(ctx context.Context, userID int64, level int) error {
	body := map[string]int{"level": level}
	return c.put(ctx, fmt.Sprintf("/api/admin/partners/%d/level", userID), body, nil)
}
