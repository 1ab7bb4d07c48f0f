package main

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/GVMBT/PVNDORA-AI-SHOP-sub000/apiclient"
	"github.com/GVMBT/PVNDORA-AI-SHOP-sub000/config"
	"github.com/GVMBT/PVNDORA-AI-SHOP-sub000/handlers"
	"github.com/GVMBT/PVNDORA-AI-SHOP-sub000/logging"
	"github.com/GVMBT/PVNDORA-AI-SHOP-sub000/middleware"
)

//go:embed templates/*.html
var templateFS embed.FS

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using system environment")
	} else {
		fmt.Println("✅ .env file loaded and applied")
	}
	cfg := config.Load()

	if err := logging.InitLogger(cfg.Env == "release"); err != nil {
		log.Fatalf("❌ Не удалось инициализировать логгер: %v", err)
	}
	defer logging.Sync()

	api := apiclient.New(cfg.APIBaseURL, cfg.APITimeout, logging.Logger)
	handlers.Init(cfg, api)

	if cfg.Env == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.SetTrustedProxies(cfg.TrustedProxies)
	r.Use(middleware.SetupCORS(cfg))

	// Шаблоны страниц мини-аппа из embed.FS
	subFS, err := fs.Sub(templateFS, "templates")
	if err != nil {
		log.Fatalf("❌ Не удалось открыть встроенные шаблоны: %v", err)
	}
	tmpl := template.Must(template.New("").ParseFS(subFS, "*.html"))
	r.SetHTMLTemplate(tmpl)
	log.Println("✅ Шаблоны загружены из embed.FS")

	// ========== СЛУЖЕБНЫЕ ==========
	r.Static("/static", cfg.StaticPath)
	r.GET("/health", handlers.HealthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ========== СТРАНИЦЫ ==========
	pages := r.Group("/")
	{
		pages.GET("/", handlers.IndexPageHandler)
		pages.GET("/catalog", handlers.CatalogPageHandler)
		pages.GET("/profile", handlers.ProfilePageHandler)
		pages.GET("/checkout", handlers.CheckoutPageHandler)
		pages.GET("/admin", handlers.AdminPageHandler)
	}

	// ========== АУТЕНТИФИКАЦИЯ ==========
	authLimiter := middleware.NewRateLimiter(10, time.Minute)
	auth := r.Group("/api/webapp/auth")
	auth.Use(middleware.LimitByIP(authLimiter))
	{
		auth.POST("/bootstrap", handlers.WebAppAuthHandler)
		auth.POST("/telegram-login", handlers.TelegramLoginHandler)
		auth.POST("/logout", handlers.LogoutHandler)
	}

	// ========== МИНИ-АПП ==========
	app := r.Group("/api/webapp")
	app.Use(middleware.Identity(cfg, api))
	{
		app.GET("/products", handlers.ProductsHandler)
		app.GET("/products/:id", handlers.ProductDetailHandler)
		app.GET("/faq", handlers.FAQHandler)
		app.POST("/tickets", handlers.CreateTicketHandler)

		app.GET("/cart", handlers.CartHandler)
		app.PUT("/cart", handlers.UpdateCartHandler)
		app.POST("/checkout/totals", handlers.CheckoutTotalsHandler)
		app.POST("/checkout/pay", handlers.PayHandler)
		app.GET("/orders", handlers.OrdersHandler)

		app.GET("/profile-data", handlers.ProfileHandler)
		app.GET("/career/explainer", handlers.CareerExplainerHandler)
		app.GET("/referral/qr.png", handlers.ReferralQRHandler)
		app.GET("/referral/dashboard", handlers.ReferralDashboardHandler)
		app.GET("/referral/network", handlers.NetworkHandler)
		app.GET("/billing", handlers.BillingLogHandler)
		app.POST("/partner/apply", handlers.PartnerApplyHandler)

		app.GET("/studio/stream", handlers.StudioStreamHandler)
		app.GET("/bridge/commands", handlers.BridgeCommandsHandler)
	}

	// ========== АДМИНКА ==========
	admin := r.Group("/api/admin")
	admin.Use(middleware.Identity(cfg, api))
	{
		admin.GET("/products", handlers.AdminProductsHandler)
		admin.POST("/products", handlers.AdminCreateProductHandler)
		admin.PUT("/products/:id", handlers.AdminUpdateProductHandler)
		admin.DELETE("/products/:id", handlers.AdminDeleteProductHandler)

		admin.GET("/stock", handlers.AdminStockHandler)
		admin.POST("/stock", handlers.AdminAddStockHandler)
		admin.DELETE("/stock/:id", handlers.AdminDeleteStockHandler)

		admin.GET("/orders", handlers.AdminOrdersHandler)

		admin.GET("/tickets", handlers.AdminTicketsHandler)
		admin.POST("/tickets/:id/resolve", handlers.AdminResolveTicketHandler)

		admin.GET("/faq", handlers.AdminFAQHandler)
		admin.POST("/faq", handlers.AdminUpsertFAQHandler)
		admin.DELETE("/faq/:id", handlers.AdminDeleteFAQHandler)

		admin.GET("/referral/settings", handlers.AdminReferralSettingsHandler)
		admin.PUT("/referral/settings", handlers.AdminUpdateReferralSettingsHandler)

		admin.GET("/analytics", handlers.AdminAnalyticsHandler)
		admin.GET("/users", handlers.AdminUsersHandler)
		admin.GET("/users/:id", handlers.AdminUserDetailHandler)
		admin.GET("/partners/applications", handlers.AdminPartnerApplicationsHandler)
		admin.PUT("/partners/:id/level", handlers.AdminSetPartnerLevelHandler)
	}

	log.Printf("🚀 PVNDORA webapp запущен на порту %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Сервер остановлен: %v", err)
	}
}
