package handler

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/http"

	"github.com/Abin-Biju-Offl/FINGENT-AI/pkg/llm"

	"github.com/gin-gonic/gin"
)

const invalidIncomeAdvice = "Please provide valid income information"

type SavingsHandler struct {
	model llm.Client
}

func NewSavingsHandler(model llm.Client) *SavingsHandler {
	return &SavingsHandler{model: model}
}

func (h *SavingsHandler) Advice(c *gin.Context) {
	var req SavingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Income <= 0 {
		c.JSON(http.StatusOK, SavingsResponse{Advice: invalidIncomeAdvice})
		return
	}

	savings := req.Income - req.Expenses
	rate := savings / req.Income * 100

	c.JSON(http.StatusOK, SavingsResponse{
		Advice:         h.advice(c.Request.Context(), req.Income, req.Expenses, rate),
		SavingsRate:    round2(rate),
		MonthlySavings: round2(savings),
	})
}

func (h *SavingsHandler) advice(ctx context.Context, income, expenses, rate float64) string {
	if h.model != nil {
		text, err := h.model.Complete(ctx, llm.SavingsPrompt(income, expenses, rate))
		if err == nil {
			return text
		}
		slog.Error("savings advice completion failed", "model", h.model.Name(), "error", err)
	}

	return bandedAdvice(rate)
}

// bandedAdvice is the deterministic fallback: three fixed threshold bands
// embedding the savings rate to one decimal place.
func bandedAdvice(rate float64) string {
	switch {
	case rate < 10:
		return fmt.Sprintf("Your current savings rate is %.1f%%. Try to reduce expenses or "+
			"increase income to save at least 20%% of your income. Consider tracking all "+
			"expenses and cutting non-essential spending.", rate)
	case rate < 20:
		return fmt.Sprintf("Good start! You're saving %.1f%% of your income. Aim for 20%% or "+
			"more by identifying areas to reduce spending or finding ways to increase income.", rate)
	default:
		return fmt.Sprintf("Excellent! You're saving %.1f%% of your income. Consider investing "+
			"your savings in index funds, retirement accounts, or building an emergency fund "+
			"of 6 months expenses.", rate)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
