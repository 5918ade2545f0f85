package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/Abin-Biju-Offl/FINGENT-AI/pkg/llm"

	"github.com/gin-gonic/gin"
)

// chatFallback keeps the chat UI working when no LLM is configured or the
// provider call fails. The endpoint never surfaces a hard error.
const chatFallback = "I'm Fingent AI, your financial advisor. I can help you with " +
	"budgeting, investing, savings, retirement planning, debt management, and more. " +
	"To enable advanced AI responses, please configure your LLM API key in the .env file. " +
	"How can I assist you with your financial goals today?"

type ChatHandler struct {
	model llm.Client
}

// NewChatHandler accepts a nil model; the handler then serves the fallback
// response for every message.
func NewChatHandler(model llm.Client) *ChatHandler {
	return &ChatHandler{model: model}
}

func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	c.JSON(http.StatusOK, ChatResponse{
		Response:  h.respond(c.Request.Context(), req.Message),
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

func (h *ChatHandler) respond(ctx context.Context, message string) string {
	if h.model == nil {
		slog.Warn("chat requested without a configured LLM")
		return chatFallback
	}

	reply, err := h.model.Complete(ctx, llm.ChatPrompt(message))
	if err != nil {
		slog.Error("chat completion failed", "model", h.model.Name(), "error", err)
		return chatFallback
	}

	return reply
}
