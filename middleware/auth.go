package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/GVMBT/PVNDORA-AI-SHOP-sub000/apiclient"
	"github.com/GVMBT/PVNDORA-AI-SHOP-sub000/config"
	"github.com/GVMBT/PVNDORA-AI-SHOP-sub000/session"
	"github.com/GVMBT/PVNDORA-AI-SHOP-sub000/telegram"
)

const (
	ctxBridge = "bridge"
	ctxAPI    = "api"
)

// Identity разбирает идентичность запроса и кладёт в контекст мост и клиент
// API с правильной схемой аутентификации. Приоритет: X-Init-Data, затем
// bearer-сессия (cookie или заголовок), затем dev-режим.
func Identity(cfg *config.Config, api *apiclient.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Запуск внутри Telegram – подписанный initData
		if initData := c.GetHeader("X-Init-Data"); initData != "" {
			user, err := telegram.ValidateInitData(initData, cfg.TelegramBotToken)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid initData"})
				return
			}
			scheme := c.GetHeader("X-Color-Scheme")
			if scheme == "" {
				scheme = "light"
			}
			c.Set(ctxBridge, telegram.NewBridge(*user, initData, scheme))
			c.Set(ctxAPI, api.WithInitData(initData))
			c.Next()
			return
		}

		// 2. Десктоп – bearer-сессия из cookie или заголовка
		if bearer := sessionBearer(c, cfg.SessionSecret); bearer != "" {
			c.Set(ctxBridge, telegram.NewDevBridge())
			c.Set(ctxAPI, api.WithBearer(bearer))
			c.Next()
			return
		}

		// 3. Разработка вне Telegram – фиксированный тестовый пользователь
		if cfg.DevMode {
			c.Set(ctxBridge, telegram.NewDevBridge())
			c.Set(ctxAPI, api)
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
	}
}

func sessionBearer(c *gin.Context, secret string) string {
	if cookie, err := c.Cookie(session.CookieName); err == nil && cookie != "" {
		if bearer, err := session.ParseCookie(secret, cookie); err == nil {
			return bearer
		}
	}
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
		return parts[1]
	}
	return ""
}

// Bridge достаёт мост Telegram из контекста запроса.
func Bridge(c *gin.Context) *telegram.Bridge {
	v, exists := c.Get(ctxBridge)
	if !exists {
		return telegram.NewDevBridge()
	}
	return v.(*telegram.Bridge)
}

// API достаёт аутентифицированный клиент основного API из контекста.
func API(c *gin.Context) *apiclient.Client {
	return c.MustGet(ctxAPI).(*apiclient.Client)
}
