package handler

import (
	"context"
	"net/http"

	"github.com/Abin-Biju-Offl/FINGENT-AI/pkg/news"

	"github.com/gin-gonic/gin"
)

type NewsSource interface {
	Latest(ctx context.Context, category string) []news.Article
}

type NewsHandler struct {
	source NewsSource
}

func NewNewsHandler(source NewsSource) *NewsHandler {
	return &NewsHandler{source: source}
}

// GetNews always answers 200; the fetcher degrades to the static set on
// provider failure.
func (h *NewsHandler) GetNews(c *gin.Context) {
	articles := h.source.Latest(c.Request.Context(), c.Query("category"))

	c.JSON(http.StatusOK, NewsResponse{
		Articles:     articles,
		TotalResults: len(articles),
	})
}
