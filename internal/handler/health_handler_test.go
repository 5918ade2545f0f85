package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

func newHealthRouter(llmReady, newsReady, twilioReady bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHealthHandler(llmReady, newsReady, twilioReady)
	r.GET("/api/health", h.GetHealth)
	r.GET("/api", h.GetRoot)
	return r
}

func TestGetHealth(t *testing.T) {
	r := newHealthRouter(true, false, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "healthy", res["status"])
	assert.Equal(t, true, res["llm_ready"])
	assert.Equal(t, false, res["news_ready"])
	assert.Equal(t, true, res["twilio_ready"])
	assert.NotEqual(t, "", res["timestamp"])
}

func TestGetRoot(t *testing.T) {
	r := newHealthRouter(false, false, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "Fingent AI API", res["name"])
}
