// Package config builds the process configuration from the environment once
// at startup. Handlers receive what they need through constructors instead
// of reading globals.
package config

import (
	"os"
	"strings"
)

type Config struct {
	Port        string
	FrontendURL string

	GroqAPIKey      string
	AnthropicAPIKey string

	NewsAPIKey    string
	FinnhubAPIKey string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string
	SimulateCalls    bool

	// Public base URL the telephony provider uses to reach the voice
	// webhooks, e.g. https://fingent.example.com
	VoiceWebhookBaseURL string

	// Country codes allowed for outbound calls. Empty means no restriction.
	AllowedCountryCodes []string
}

func Load() *Config {
	return &Config{
		Port:                envOr("PORT", "8080"),
		FrontendURL:         os.Getenv("FRONTEND_URL"),
		GroqAPIKey:          strings.TrimSpace(os.Getenv("GROQ_API_KEY")),
		AnthropicAPIKey:     strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY")),
		NewsAPIKey:          strings.TrimSpace(os.Getenv("NEWS_API_KEY")),
		FinnhubAPIKey:       strings.TrimSpace(os.Getenv("FINNHUB_API_KEY")),
		TwilioAccountSID:    strings.TrimSpace(os.Getenv("TWILIO_ACCOUNT_SID")),
		TwilioAuthToken:     strings.TrimSpace(os.Getenv("TWILIO_AUTH_TOKEN")),
		TwilioFromNumber:    envOr("TWILIO_FROM_NUMBER", "+13158403591"),
		SimulateCalls:       os.Getenv("SIMULATE_CALLS") == "true",
		VoiceWebhookBaseURL: strings.TrimRight(os.Getenv("VOICE_WEBHOOK_BASE_URL"), "/"),
		AllowedCountryCodes: splitList(os.Getenv("ALLOWED_COUNTRY_CODES")),
	}
}

func (c *Config) TwilioConfigured() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != ""
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
