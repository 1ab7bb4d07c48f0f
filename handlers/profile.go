package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/GVMBT/PVNDORA-AI-SHOP-sub000/middleware"
	"github.com/GVMBT/PVNDORA-AI-SHOP-sub000/referral"
)

// ==================== ПРОФИЛЬ И РЕФЕРАЛЬНЫЙ КАБИНЕТ ====================

// ProfileHandler собирает экран профиля: баланс, реферальная ссылка, карьерный
// прогресс, сводка сети. Карьерный уровень – производное: считается заново из
// оборота и настроек программы на каждый запрос.
func ProfileHandler(c *gin.Context) {
	api := middleware.API(c)
	ctx := c.Request.Context()

	profile, err := api.GetProfile(ctx)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	programCfg, configSource := programConfig(c)
	progress := referral.DeriveProgress(profile.TurnoverUSD, programCfg)

	cur := profile.Currency
	if cur == "" {
		cur = displayCurrency(c)
	}

	refLink := fmt.Sprintf("https://t.me/%s?start=ref_%s", cfg.BotUsername, profile.ReferralCode)

	c.JSON(http.StatusOK, gin.H{
		"profile":         profile,
		"balance_display": rates.FormatConverted(profile.BalanceUSD, cur),
		"earned_display":  rates.FormatConverted(profile.EarnedUSD, cur),
		"career":          progress,
		"config_source":   configSource,
		"referral_link":   refLink,
		"currency":        cur,
	})
}

// ReferralQRHandler отдаёт PNG с QR-кодом реферальной ссылки.
func ReferralQRHandler(c *gin.Context) {
	api := middleware.API(c)
	profile, err := api.GetProfile(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	refLink := fmt.Sprintf("https://t.me/%s?start=ref_%s", cfg.BotUsername, profile.ReferralCode)
	png, err := qrcode.Encode(refLink, qrcode.Medium, 512)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "qr generation failed"})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// CareerExplainerHandler – иллюстративный расчёт комиссий по линиям для
// покупки заданной суммы с точки зрения текущего уровня пользователя.
func CareerExplainerHandler(c *gin.Context) {
	amount, err := strconv.ParseFloat(c.DefaultQuery("amount", "100"), 64)
	if err != nil || amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad amount"})
		return
	}

	api := middleware.API(c)
	profile, err := api.GetProfile(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	programCfg, configSource := programConfig(c)
	progress := referral.DeriveProgress(profile.TurnoverUSD, programCfg)
	breakdown := referral.CommissionBreakdown(amount, progress.CurrentLevel.ID, programCfg)

	cur := displayCurrency(c)
	lines := make([]gin.H, 0, len(breakdown))
	for _, lc := range breakdown {
		lines = append(lines, gin.H{
			"line":           lc.Line,
			"pct":            lc.Pct,
			"unlocked":       lc.Unlocked,
			"amount_usd":     lc.Amount,
			"amount_display": rates.FormatConverted(lc.Amount, cur),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"level":         progress.CurrentLevel,
		"levels":        programCfg.Levels(),
		"lines":         lines,
		"config_source": configSource,
	})
}

// ReferralDashboardHandler – сводка реферального кабинета: оборот, заработок,
// счётчики приглашённых и сеть одним снимком.
func ReferralDashboardHandler(c *gin.Context) {
	api := middleware.API(c)
	dash, err := api.GetReferralDashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	cur := displayCurrency(c)
	c.JSON(http.StatusOK, gin.H{
		"dashboard":        dash,
		"turnover_display": rates.FormatConverted(dash.TurnoverUSD, cur),
		"earned_display":   rates.FormatConverted(dash.EarnedUSD, cur),
	})
}

// NetworkHandler – браузер сети с фильтром по линии (1/2/3, 0 – все).
func NetworkHandler(c *gin.Context) {
	line, _ := strconv.Atoi(c.DefaultQuery("line", "0"))
	if line < 0 || line > 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "line must be 0 (all lines), 1, 2 or 3"})
		return
	}

	api := middleware.API(c)
	nodes, err := api.GetNetwork(c.Request.Context(), line)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"nodes": nodes, "line": line})
}

// BillingLogHandler – журнал операций, страницами.
func BillingLogHandler(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	api := middleware.API(c)
	entries, err := api.GetBillingLog(c.Request.Context(), page, perPage)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries, "page": page})
}

// PartnerApplyHandler – заявка на VIP-партнёрство.
func PartnerApplyHandler(c *gin.Context) {
	var req struct {
		Contact string `json:"contact" binding:"required"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "укажите контакт для связи"})
		return
	}

	api := middleware.API(c)
	app, err := api.SubmitPartnerApplication(c.Request.Context(), req.Contact, req.Comment)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	bridge := middleware.Bridge(c)
	bridge.Haptic("success")
	c.JSON(http.StatusOK, gin.H{"application": app, "commands": bridge.DrainCommands()})
}

// programConfig читает настройки программы с бэкенда; при ошибке –
// FallbackConfig с пометкой, чтобы UI мог отличить деградацию.
func programConfig(c *gin.Context) (referral.ProgramConfig, string) {
	api := middleware.API(c)
	remote, err := api.GetReferralSettings(c.Request.Context())
	if err != nil {
		return referral.FallbackConfig, "fallback"
	}
	return remote.Normalize(), "remote"
}
