package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/Abin-Biju-Offl/FINGENT-AI/pkg/phone"
	"github.com/Abin-Biju-Offl/FINGENT-AI/pkg/telephony"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

type fakeDialer struct {
	call        *telephony.Call
	err         error
	gotTo       string
	gotCallback string
}

func (f *fakeDialer) Dial(ctx context.Context, to, callbackURL string) (*telephony.Call, error) {
	f.gotTo = to
	f.gotCallback = callbackURL
	return f.call, f.err
}

func (f *fakeDialer) Name() string {
	return "fake"
}

func newCallRouter(dialer telephony.Dialer, allowedCodes []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewCallHandler(dialer, phone.NewValidator(allowedCodes), "https://fingent.example.com/voice/welcome")
	r.POST("/api/call", h.PlaceCall)
	return r
}

func TestPlaceCall_Success(t *testing.T) {
	dialer := &fakeDialer{call: &telephony.Call{SID: "CA123", To: "+18005550100"}}
	r := newCallRouter(dialer, nil)

	w := postJSON(r, "/api/call", `{"phone_number":"+18005550100"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var res CallResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "success", res.Status)
	assert.Equal(t, "CA123", res.CallSID)
	assert.Equal(t, "+18005550100", dialer.gotTo)
	assert.Equal(t, "https://fingent.example.com/voice/welcome", dialer.gotCallback)
}

func TestPlaceCall_NormalizesBeforeDialing(t *testing.T) {
	dialer := &fakeDialer{call: &telephony.Call{SID: "CA123"}}
	r := newCallRouter(dialer, nil)

	w := postJSON(r, "/api/call", `{"phone_number":"+1 (800) 555-0100"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "+18005550100", dialer.gotTo)
}

func TestPlaceCall_MissingPlusRejected(t *testing.T) {
	dialer := &fakeDialer{}
	r := newCallRouter(dialer, nil)

	w := postJSON(r, "/api/call", `{"phone_number":"1-800-555-0100"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var res CallResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "error", res.Status)
	assert.Equal(t, "", dialer.gotTo)
}

func TestPlaceCall_UnsupportedCountryCode(t *testing.T) {
	r := newCallRouter(&fakeDialer{}, []string{"1", "44"})

	w := postJSON(r, "/api/call", `{"phone_number":"+8613912345678"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var res CallResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, true, strings.Contains(res.Message, "unsupported country code"))
}

func TestPlaceCall_NotConfigured(t *testing.T) {
	r := newCallRouter(nil, nil)

	w := postJSON(r, "/api/call", `{"phone_number":"+18005550100"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var res CallResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "error", res.Status)
	assert.Equal(t, true, strings.Contains(res.Message, "not configured"))
}

func TestPlaceCall_ProviderError(t *testing.T) {
	dialer := &fakeDialer{err: errors.New("trial account restriction")}
	r := newCallRouter(dialer, nil)

	w := postJSON(r, "/api/call", `{"phone_number":"+18005550100"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var res CallResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "error", res.Status)
	assert.Equal(t, true, strings.Contains(res.Message, "trial account restriction"))
}
