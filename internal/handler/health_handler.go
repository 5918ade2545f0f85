package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	llmReady    bool
	newsReady   bool
	twilioReady bool
}

func NewHealthHandler(llmReady, newsReady, twilioReady bool) *HealthHandler {
	return &HealthHandler{
		llmReady:    llmReady,
		newsReady:   newsReady,
		twilioReady: twilioReady,
	}
}

func (h *HealthHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "healthy",
		"timestamp":    time.Now().Format(time.RFC3339),
		"llm_ready":    h.llmReady,
		"news_ready":   h.newsReady,
		"twilio_ready": h.twilioReady,
	})
}

// GetRoot lists the API surface.
func (h *HealthHandler) GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    "Fingent AI API",
		"version": "1.0.0",
		"status":  "active",
		"endpoints": []string{
			"/api/health",
			"/api/chat",
			"/api/news",
			"/api/savings/advice",
			"/api/call",
		},
	})
}
