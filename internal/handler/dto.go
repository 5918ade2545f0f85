package handler

import "github.com/Abin-Biju-Offl/FINGENT-AI/pkg/news"

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}

type SavingsRequest struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

type SavingsResponse struct {
	Advice         string  `json:"advice"`
	SavingsRate    float64 `json:"savings_rate"`
	MonthlySavings float64 `json:"monthly_savings"`
}

type CallRequest struct {
	PhoneNumber string `json:"phone_number"`
}

type CallResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	CallSID string `json:"call_sid,omitempty"`
}

type NewsResponse struct {
	Articles     []news.Article `json:"articles"`
	TotalResults int            `json:"totalResults"`
}
