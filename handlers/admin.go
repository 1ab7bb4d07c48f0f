package handlers

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/GVMBT/PVNDORA-AI-SHOP-sub000/apiclient"
	"github.com/GVMBT/PVNDORA-AI-SHOP-sub000/middleware"
	"github.com/GVMBT/PVNDORA-AI-SHOP-sub000/models"
	"github.com/GVMBT/PVNDORA-AI-SHOP-sub000/referral"
)

// ==================== АДМИНКА: ТОВАРЫ И СТОК ====================
// Права админа проверяет бэкенд; 401/403 отсюда уходят как обычные ошибки.

func AdminProductsHandler(c *gin.Context) {
	api := middleware.API(c)
	products, err := api.AdminListProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func AdminCreateProductHandler(c *gin.Context) {
	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if p.Title == "" || p.PriceUSD <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "название и цена обязательны"})
		return
	}

	api := middleware.API(c)
	created, err := api.AdminCreateProduct(c.Request.Context(), p)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": created})
}

func AdminUpdateProductHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad product id"})
		return
	}
	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p.ID = id

	api := middleware.API(c)
	if err := api.AdminUpdateProduct(c.Request.Context(), p); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": p})
}

func AdminDeleteProductHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad product id"})
		return
	}

	api := middleware.API(c)
	if err := api.AdminDeleteProduct(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// AdminAddStockHandler принимает одну позицию или пачку (по строке на позицию).
func AdminAddStockHandler(c *gin.Context) {
	var req struct {
		ProductID int64  `json:"product_id" binding:"required"`
		Entries   string `json:"entries" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	api := middleware.API(c)
	added, err := api.AdminAddStock(c.Request.Context(), req.ProductID, req.Entries)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"added": added})
}

func AdminStockHandler(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Query("product_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad product id"})
		return
	}

	api := middleware.API(c)
	entries, err := api.AdminListStock(c.Request.Context(), productID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func AdminDeleteStockHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad stock id"})
		return
	}

	api := middleware.API(c)
	if err := api.AdminDeleteStock(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ==================== АДМИНКА: ЗАКАЗЫ, ТИКЕТЫ И FAQ ====================

func AdminOrdersHandler(c *gin.Context) {
	api := middleware.API(c)
	orders, err := api.AdminListOrders(c.Request.Context(), c.Query("status"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func AdminTicketsHandler(c *gin.Context) {
	api := middleware.API(c)
	tickets, err := api.AdminListTickets(c.Request.Context(), c.Query("status"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tickets": tickets})
}

func AdminResolveTicketHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad ticket id"})
		return
	}
	var req struct {
		Approve    bool   `json:"approve"`
		Resolution string `json:"resolution"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	api := middleware.API(c)
	if err := api.AdminResolveTicket(c.Request.Context(), id, req.Approve, req.Resolution); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func AdminFAQHandler(c *gin.Context) {
	api := middleware.API(c)
	entries, err := api.AdminListFAQ(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func AdminUpsertFAQHandler(c *gin.Context) {
	var e models.FAQEntry
	if err := c.ShouldBindJSON(&e); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if e.Question == "" || e.Answer == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "вопрос и ответ обязательны"})
		return
	}

	api := middleware.API(c)
	if e.ID == 0 {
		created, err := api.AdminCreateFAQ(c.Request.Context(), e)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"entry": created})
		return
	}
	if err := api.AdminUpdateFAQ(c.Request.Context(), e); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entry": e})
}

func AdminDeleteFAQHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad faq id"})
		return
	}

	api := middleware.API(c)
	if err := api.AdminDeleteFAQ(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ==================== АДМИНКА: ПРОГРАММА, АНАЛИТИКА, CRM ====================

func AdminReferralSettingsHandler(c *gin.Context) {
	api := middleware.API(c)
	settings, err := api.AdminGetReferralSettings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

func AdminUpdateReferralSettingsHandler(c *gin.Context) {
	var settings referral.ProgramConfig
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if settings.Level2ThresholdUSD <= 0 || settings.Level3ThresholdUSD <= settings.Level2ThresholdUSD {
		c.JSON(http.StatusBadRequest, gin.H{"error": "пороги должны возрастать"})
		return
	}

	api := middleware.API(c)
	if err := api.AdminUpdateReferralSettings(c.Request.Context(), settings); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

func AdminAnalyticsHandler(c *gin.Context) {
	api := middleware.API(c)
	summary, err := api.AdminGetAnalytics(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

func AdminUsersHandler(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	api := middleware.API(c)
	users, err := api.AdminListUsers(c.Request.Context(), c.Query("q"), page)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	partnersMu.Lock()
	for _, u := range users {
		partnersCache[u.ID] = u.PartnerLevel
	}
	partnersMu.Unlock()

	c.JSON(http.StatusOK, gin.H{"users": users, "page": page})
}

func AdminUserDetailHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad user id"})
		return
	}

	api := middleware.API(c)
	user, err := api.AdminGetUser(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	partnersMu.Lock()
	partnersCache[user.ID] = user.PartnerLevel
	partnersMu.Unlock()

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func AdminPartnerApplicationsHandler(c *gin.Context) {
	api := middleware.API(c)
	apps, err := api.AdminListPartnerApplications(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// Локальный снимок партнёрских уровней для оптимистичного тумблера.
var (
	partnersMu    sync.Mutex
	partnersCache = make(map[int64]int)
)

// AdminSetPartnerLevelHandler – оптимистичный тумблер уровня в partners-CRM:
// уровень меняется в локальном снимке сразу, при ошибке бэкенда откатывается,
// и клиент получает прежнее значение для отката своего состояния.
func AdminSetPartnerLevelHandler(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad user id"})
		return
	}
	var req struct {
		Level int `json:"level"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Level < 1 || req.Level > 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "level must be 1..3"})
		return
	}

	api := middleware.API(c)

	partnersMu.Lock()
	level := partnersCache[userID]
	partnersMu.Unlock()

	err = apiclient.Optimistic(&level,
		func(l *int) { *l = req.Level },
		func() error {
			return api.AdminSetPartnerLevel(c.Request.Context(), userID, req.Level)
		})

	partnersMu.Lock()
	partnersCache[userID] = level
	partnersMu.Unlock()

	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "level": level})
		return
	}
	c.JSON(http.StatusOK, gin.H{"level": level})
}
