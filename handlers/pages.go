package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GVMBT/PVNDORA-AI-SHOP-sub000/middleware"
)

// ==================== СТРАНИЦЫ МИНИ-АППА ====================

func IndexPageHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title":       "PVNDORA",
		"BotUsername": cfg.BotUsername,
	})
}

func CatalogPageHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "catalog.html", gin.H{
		"Title": "Каталог – PVNDORA",
	})
}

func ProfilePageHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "profile.html", gin.H{
		"Title": "Профиль – PVNDORA",
	})
}

func CheckoutPageHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "checkout.html", gin.H{
		"Title": "Оформление – PVNDORA",
	})
}

func AdminPageHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "admin.html", gin.H{
		"Title": "Админка – PVNDORA",
	})
}

// BridgeCommandsHandler – страница забирает накопленные команды моста
// (диалоги, кнопки, haptics) и исполняет их на стороне хоста.
func BridgeCommandsHandler(c *gin.Context) {
	bridge := middleware.Bridge(c)
	c.JSON(http.StatusOK, gin.H{"commands": bridge.DrainCommands()})
}
