package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GVMBT/PVNDORA-AI-SHOP-sub000/middleware"
)

// ==================== КАТАЛОГ ====================

func ProductsHandler(c *gin.Context) {
	api := middleware.API(c)
	products, err := api.GetProducts(c.Request.Context(), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	cur := displayCurrency(c)
	items := make([]gin.H, 0, len(products))
	for _, p := range products {
		items = append(items, gin.H{
			"product":           p,
			"price_display":     rates.FormatConverted(p.PriceUSD, cur),
			"old_price_display": formatOldPrice(p.OldPriceUSD, cur),
		})
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "currency": cur})
}

func ProductDetailHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad product id"})
		return
	}

	api := middleware.API(c)
	product, err := api.GetProduct(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	cur := displayCurrency(c)
	c.JSON(http.StatusOK, gin.H{
		"product":       product,
		"price_display": rates.FormatConverted(product.PriceUSD, cur),
		"currency":      cur,
	})
}

func FAQHandler(c *gin.Context) {
	api := middleware.API(c)
	entries, err := api.GetFAQ(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func displayCurrency(c *gin.Context) string {
	if cur := c.Query("currency"); cur != "" {
		return cur
	}
	return cfg.DefaultCurrency
}

func formatOldPrice(oldUSD float64, cur string) string {
	if oldUSD <= 0 {
		return ""
	}
	return rates.FormatConverted(oldUSD, cur)
}
