package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GVMBT/PVNDORA-AI-SHOP-sub000/session"
	"github.com/GVMBT/PVNDORA-AI-SHOP-sub000/telegram"
)

// WebAppAuthHandler – бутстрап мини-аппа: проверяет initData (или подставляет
// тестового пользователя в dev-режиме) и возвращает профиль с бэкенда.
func WebAppAuthHandler(c *gin.Context) {
	var req struct {
		InitData    string `json:"initData"`
		ColorScheme string `json:"color_scheme"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var bridge *telegram.Bridge
	api := baseAPI
	if req.InitData != "" {
		if cfg.TelegramBotToken == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "bot token not configured"})
			return
		}
		user, err := telegram.ValidateInitData(req.InitData, cfg.TelegramBotToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid initData"})
			return
		}
		scheme := req.ColorScheme
		if scheme == "" {
			scheme = "light"
		}
		bridge = telegram.NewBridge(*user, req.InitData, scheme)
		api = baseAPI.WithInitData(req.InitData)
	} else {
		if !cfg.DevMode {
			c.JSON(http.StatusBadRequest, gin.H{"error": "initData required in production mode"})
			return
		}
		bridge = telegram.NewDevBridge()
	}

	profile, err := api.GetProfile(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":     bridge.User(),
		"profile":  profile,
		"commands": bridge.DrainCommands(),
	})
}

// TelegramLoginHandler – вход с десктопа: колбэк Login Widget меняется на
// bearer-сессию бэкенда, которая уезжает в подписанную cookie и в файловое
// хранилище (аналог pvndora_session).
func TelegramLoginHandler(c *gin.Context) {
	var payload telegram.LoginWidgetPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := telegram.VerifyLoginWidget(payload, cfg.TelegramBotToken); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid login payload"})
		return
	}

	sess, err := baseAPI.TelegramLogin(c.Request.Context(), payload)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	cookie, err := session.IssueCookie(cfg.SessionSecret, sess.Token, cfg.SessionTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue session"})
		return
	}
	if err := sessionStore.Save(sess.Token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist session"})
		return
	}

	c.SetCookie(session.CookieName, cookie, int(cfg.SessionTTL.Seconds()), "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// LogoutHandler стирает локальную сессию; на бэкенде ничего не отзывается.
func LogoutHandler(c *gin.Context) {
	_ = sessionStore.Clear()
	c.SetCookie(session.CookieName, "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
