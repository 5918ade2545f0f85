package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/Abin-Biju-Offl/FINGENT-AI/internal/config"
	"github.com/Abin-Biju-Offl/FINGENT-AI/internal/handler"
	"github.com/Abin-Biju-Offl/FINGENT-AI/pkg/llm"
	"github.com/Abin-Biju-Offl/FINGENT-AI/pkg/news"
	"github.com/Abin-Biju-Offl/FINGENT-AI/pkg/phone"
	"github.com/Abin-Biju-Offl/FINGENT-AI/pkg/telephony"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	var model llm.Client
	switch {
	case cfg.GroqAPIKey != "":
		model = llm.NewGroqClient(cfg.GroqAPIKey)
	case cfg.AnthropicAPIKey != "":
		model = llm.NewAnthropicClient(cfg.AnthropicAPIKey)
	default:
		slog.Warn("no LLM API key configured, serving fallback responses")
	}
	if model != nil {
		slog.Info("LLM configured", "model", model.Name())
	}

	var providers []news.Provider
	if cfg.NewsAPIKey != "" {
		providers = append(providers, news.NewNewsAPIClient(cfg.NewsAPIKey))
	}
	if cfg.FinnhubAPIKey != "" {
		providers = append(providers, news.NewFinnhubClient(cfg.FinnhubAPIKey))
	}
	if len(providers) == 0 {
		slog.Warn("no news API keys configured, serving fallback articles")
	}
	fetcher := news.NewFetcher(providers...)

	var dialer telephony.Dialer
	switch {
	case cfg.TwilioConfigured():
		dialer = telephony.NewTwilioDialer(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber)
	case cfg.SimulateCalls:
		dialer = telephony.NewSimulatedDialer()
	default:
		slog.Warn("telephony not configured, call placement disabled")
	}

	healthHandler := handler.NewHealthHandler(model != nil, len(providers) > 0, dialer != nil)
	chatHandler := handler.NewChatHandler(model)
	newsHandler := handler.NewNewsHandler(fetcher)
	savingsHandler := handler.NewSavingsHandler(model)
	callHandler := handler.NewCallHandler(
		dialer,
		phone.NewValidator(cfg.AllowedCountryCodes),
		cfg.VoiceWebhookBaseURL+"/voice/welcome",
	)
	voiceHandler := handler.NewVoiceHandler(model)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/api", healthHandler.GetRoot)
	r.GET("/api/health", healthHandler.GetHealth)
	r.POST("/api/chat", chatHandler.Chat)
	r.GET("/api/news", newsHandler.GetNews)
	r.POST("/api/savings/advice", savingsHandler.Advice)
	r.POST("/api/call", callHandler.PlaceCall)

	r.POST("/voice/welcome", voiceHandler.Welcome)
	r.POST("/voice/process", voiceHandler.Process)
	r.POST("/voice/goodbye", voiceHandler.Goodbye)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	err := r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
