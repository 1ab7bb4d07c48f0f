package apiclient

import (
	"context"
	"fmt"
	"net/url"

	"github.com/GVMBT/PVNDORA-AI-SHOP-sub000/models"
)

// ==================== КАТАЛОГ И ЗАКАЗЫ ====================

func (c *Client) GetProducts(ctx context.Context, category string) ([]models.Product, error) {
	endpoint := "/api/webapp/products"
	if category != "" {
		endpoint += "?category=" + url.QueryEscape(category)
	}
	var out []models.Product
	if err := c.get(ctx, endpoint, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	var out models.Product
	if err := c.get(ctx, fmt.Sprintf("/api/webapp/products/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetCart(ctx context.Context) ([]models.CartItem, error) {
	var out []models.CartItem
	if err := c.get(ctx, "/api/webapp/cart", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateCart(ctx context.Context, items []models.CartItem) error {
	return c.put(ctx, "/api/webapp/cart", items, nil)
}

// ValidatePromo проверяет промокод на бэкенде; размер скидки считает он же.
func (c *Client) ValidatePromo(ctx context.Context, code string, subtotalUSD float64) (*models.PromoCode, error) {
	var out models.PromoCode
	body := map[string]interface{}{"code": code, "subtotal_usd": subtotalUSD}
	if err := c.post(ctx, "/api/webapp/promo/validate", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateOrder создаёт заказ и возвращает его вместе со ссылкой на оплату.
func (c *Client) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	var out models.Order
	if err := c.post(ctx, "/api/webapp/orders", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetOrders(ctx context.Context) ([]models.Order, error) {
	var out []models.Order
	if err := c.get(ctx, "/api/webapp/orders", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetFAQ(ctx context.Context) ([]models.FAQEntry, error) {
	var out []models.FAQEntry
	if err := c.get(ctx, "/api/webapp/faq", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateTicket(ctx context.Context, orderID, subject, message string) (*models.Ticket, error) {
	var out models.Ticket
	body := map[string]string{"order_id": orderID, "subject": subject, "message": message}
	if err := c.post(ctx, "/api/webapp/tickets", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
