package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Abin-Biju-Offl/FINGENT-AI/pkg/phone"
	"github.com/Abin-Biju-Offl/FINGENT-AI/pkg/telephony"

	"github.com/gin-gonic/gin"
)

type CallHandler struct {
	dialer     telephony.Dialer
	validator  *phone.Validator
	welcomeURL string
}

// NewCallHandler accepts a nil dialer; call placement then fails with a
// "not configured" response instead of reaching a provider.
func NewCallHandler(dialer telephony.Dialer, validator *phone.Validator, welcomeURL string) *CallHandler {
	return &CallHandler{dialer: dialer, validator: validator, welcomeURL: welcomeURL}
}

func (h *CallHandler) PlaceCall(c *gin.Context) {
	var req CallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, CallResponse{Status: "error", Message: "Invalid request body"})
		return
	}

	number, err := h.validator.Validate(req.PhoneNumber)
	if err != nil {
		c.JSON(http.StatusBadRequest, CallResponse{Status: "error", Message: err.Error()})
		return
	}

	if h.dialer == nil {
		c.JSON(http.StatusBadRequest, CallResponse{Status: "error", Message: "Telephony provider not configured"})
		return
	}

	call, err := h.dialer.Dial(c.Request.Context(), number, h.welcomeURL)
	if err != nil {
		slog.Error("outbound call failed", "dialer", h.dialer.Name(), "to", number, "error", err)
		c.JSON(http.StatusInternalServerError, CallResponse{
			Status:  "error",
			Message: fmt.Sprintf("Call failed: %v", err),
		})
		return
	}

	slog.Info("outbound call placed", "dialer", h.dialer.Name(), "to", number, "call_sid", call.SID)

	c.JSON(http.StatusOK, CallResponse{
		Status:  "success",
		Message: fmt.Sprintf("Call initiated to %s", number),
		CallSID: call.SID,
	})
}
