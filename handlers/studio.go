package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GVMBT/PVNDORA-AI-SHOP-sub000/apiclient"
	"github.com/GVMBT/PVNDORA-AI-SHOP-sub000/middleware"
)

// ==================== СТУДИЯ ====================

// StudioStreamHandler держит открытый SSE к странице и транслирует в него
// статусы генераций с бэкенда. Переподключение к апстриму делает
// StudioStream, переподключение браузера к нам – сам EventSource.
func StudioStreamHandler(c *gin.Context) {
	bridge := middleware.Bridge(c)
	stream := baseAPI.NewStudioStream(bridge.InitData())

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming unsupported"})
		return
	}

	events := make(chan apiclient.GenerationStatus, 16)
	ctx := c.Request.Context()
	go stream.Run(ctx, events)

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			payload, err := json.Marshal(ev)
			if err != nil {
				continue
			}
			fmt.Fprintf(c.Writer, "event: generation.status\ndata: %s\n\n", payload)
			flusher.Flush()
		}
	}
}
