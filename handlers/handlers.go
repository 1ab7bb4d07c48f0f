package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GVMBT/PVNDORA-AI-SHOP-sub000/apiclient"
	"github.com/GVMBT/PVNDORA-AI-SHOP-sub000/config"
	"github.com/GVMBT/PVNDORA-AI-SHOP-sub000/currency"
	"github.com/GVMBT/PVNDORA-AI-SHOP-sub000/session"
)

// Пакетное состояние обработчиков: конфигурация, курсы отображения,
// неаутентифицированный клиент API для публичных ручек и файловое хранилище
// сессии. Инициализируется один раз из main.
var (
	cfg          *config.Config
	rates        currency.Rates
	baseAPI      *apiclient.Client
	sessionStore *session.Store
)

func Init(c *config.Config, api *apiclient.Client) {
	cfg = c
	rates = currency.Rates{RUBPerUSD: c.RUBPerUSD, EURPerUSD: c.EURPerUSD}
	baseAPI = api
	sessionStore = session.NewStore(c.SessionFile)
}

// ==================== СЛУЖЕБНЫЕ РУЧКИ ====================

func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().Unix(),
	})
}
