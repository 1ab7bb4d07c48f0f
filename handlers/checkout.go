package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/GVMBT/PVNDORA-AI-SHOP-sub000/middleware"
	"github.com/GVMBT/PVNDORA-AI-SHOP-sub000/models"
)

// ==================== ЧЕКАУТ ====================

type checkoutRequest struct {
	Items     []models.CartItem `json:"items" binding:"required"`
	PromoCode string            `json:"promo_code"`
}

// CheckoutTotalsHandler пересчитывает корзину: сумма, скидка по промокоду
// (валидирует бэкенд), итог. Вызывается при каждом изменении количества.
func CheckoutTotalsHandler(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subtotal := subtotalUSD(req.Items)
	discount := 0.0
	promoReason := ""

	if req.PromoCode != "" {
		api := middleware.API(c)
		promo, err := api.ValidatePromo(c.Request.Context(), req.PromoCode, subtotal)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		if promo.Valid {
			discount = promo.DiscountUSD
		} else {
			promoReason = promo.Reason
		}
	}

	total := subtotal - discount
	if total < 0 {
		total = 0
	}

	cur := displayCurrency(c)
	c.JSON(http.StatusOK, gin.H{
		"subtotal_usd":     subtotal,
		"discount_usd":     discount,
		"total_usd":        total,
		"subtotal_display": rates.FormatConverted(subtotal, cur),
		"discount_display": rates.FormatConverted(discount, cur),
		"total_display":    rates.FormatConverted(total, cur),
		"promo_rejected":   promoReason,
	})
}

// PayHandler создаёт заказ и отдаёт ссылку на оплату; мост открывает её
// нативно, остальное делают платёжка и бэкенд.
func PayHandler(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "корзина пуста"})
		return
	}

	api := middleware.API(c)
	order, err := api.CreateOrder(c.Request.Context(), models.CreateOrderRequest{
		Items:     req.Items,
		PromoCode: req.PromoCode,
		Currency:  displayCurrency(c),
		ClientRef: uuid.New().String(),
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	bridge := middleware.Bridge(c)
	bridge.Haptic("success")
	if order.PaymentURL != "" {
		bridge.OpenLink(order.PaymentURL)
	}

	c.JSON(http.StatusOK, gin.H{
		"order":       order,
		"payment_url": order.PaymentURL,
		"commands":    bridge.DrainCommands(),
	})
}

func OrdersHandler(c *gin.Context) {
	api := middleware.API(c)
	orders, err := api.GetOrders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func subtotalUSD(items []models.CartItem) float64 {
	var sum float64
	for _, it := range items {
		if it.Quantity > 0 {
			sum += it.PriceUSD * float64(it.Quantity)
		}
	}
	return sum
}
