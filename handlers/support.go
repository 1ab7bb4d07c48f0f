package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GVMBT/PVNDORA-AI-SHOP-sub000/middleware"
	"github.com/GVMBT/PVNDORA-AI-SHOP-sub000/models"
)

// ==================== КОРЗИНА И ПОДДЕРЖКА ====================

// CartHandler возвращает сохранённую на бэкенде корзину с ценами для показа.
func CartHandler(c *gin.Context) {
	api := middleware.API(c)
	items, err := api.GetCart(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	cur := displayCurrency(c)
	subtotal := subtotalUSD(items)
	c.JSON(http.StatusOK, gin.H{
		"items":            items,
		"subtotal_usd":     subtotal,
		"subtotal_display": rates.FormatConverted(subtotal, cur),
		"currency":         cur,
	})
}

// UpdateCartHandler синхронизирует корзину целиком; позиции с нулевым
// количеством бэкенд выбрасывает сам.
func UpdateCartHandler(c *gin.Context) {
	var items []models.CartItem
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	api := middleware.API(c)
	if err := api.UpdateCart(c.Request.Context(), items); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// CreateTicketHandler заводит тикет поддержки, опционально привязанный к заказу.
func CreateTicketHandler(c *gin.Context) {
	var req struct {
		OrderID string `json:"order_id"`
		Subject string `json:"subject" binding:"required"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "тема и текст обращения обязательны"})
		return
	}

	api := middleware.API(c)
	ticket, err := api.CreateTicket(c.Request.Context(), req.OrderID, req.Subject, req.Message)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	bridge := middleware.Bridge(c)
	bridge.Haptic("success")
	c.JSON(http.StatusCreated, gin.H{"ticket": ticket, "commands": bridge.DrainCommands()})
}
