package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/Abin-Biju-Offl/FINGENT-AI/pkg/llm"

	"github.com/gin-gonic/gin"
	"github.com/twilio/twilio-go/twiml"
)

const (
	voiceLanguage = "en-US"

	// Welcome re-redirects itself while the caller stays silent. The
	// attempt counter rides on the redirect URL so the loop stays
	// stateless and bounded.
	welcomeMaxAttempts = 3

	welcomeGreeting = "Hello! This is Fingent AI, your personal financial advisor. " +
		"How can I help you with your finances today?"
	didntHearLine     = "Sorry, I didn't hear you. Let's try that again."
	voiceFallbackLine = "I'm sorry, I'm having trouble processing your request right now. " +
		"Please try again in a moment."
	closingLine  = "Thank you for calling Fingent AI. Goodbye!"
	farewellLine = "Thank you for calling Fingent AI. Have a great day. Goodbye!"
)

// VoiceHandler drives the phone dialogue through Twilio webhooks. It holds
// no per-call state: everything it needs arrives in the webhook parameters
// the provider echoes back (speech text, call SID, attempt counter).
type VoiceHandler struct {
	model llm.Client
}

func NewVoiceHandler(model llm.Client) *VoiceHandler {
	return &VoiceHandler{model: model}
}

// Welcome greets the caller and captures speech. When the capture comes up
// empty Twilio falls through to the Redirect, which re-enters Welcome with
// the attempt counter incremented; after welcomeMaxAttempts the call ends
// instead of looping forever.
func (h *VoiceHandler) Welcome(c *gin.Context) {
	attempt, err := strconv.Atoi(c.Query("attempt"))
	if err != nil || attempt < 1 {
		attempt = 1
	}

	if attempt > welcomeMaxAttempts {
		slog.Info("welcome retries exhausted, ending call", "call_sid", c.PostForm("CallSid"))
		h.respond(c,
			&twiml.VoiceSay{Message: farewellLine, Language: voiceLanguage},
			&twiml.VoiceHangup{},
		)
		return
	}

	h.respond(c,
		&twiml.VoiceSay{Message: welcomeGreeting, Language: voiceLanguage},
		speechGather(),
		&twiml.VoiceRedirect{
			Url:    fmt.Sprintf("/voice/welcome?attempt=%d", attempt+1),
			Method: "POST",
		},
	)
}

// Process receives the recognized speech, answers it, and captures the next
// turn. The trailing closing line and hang-up only fire if Twilio skips the
// Gather, so an honored capture keeps the conversation looping here.
func (h *VoiceHandler) Process(c *gin.Context) {
	speech := strings.TrimSpace(c.PostForm("SpeechResult"))
	callSID := c.PostForm("CallSid")

	if speech == "" {
		h.respond(c,
			&twiml.VoiceSay{Message: didntHearLine, Language: voiceLanguage},
			&twiml.VoiceRedirect{Url: "/voice/welcome", Method: "POST"},
		)
		return
	}

	reply, fatal := h.reply(c.Request.Context(), speech, callSID)
	if fatal {
		h.respond(c,
			&twiml.VoiceSay{Message: reply, Language: voiceLanguage},
			&twiml.VoiceHangup{},
		)
		return
	}

	h.respond(c,
		&twiml.VoiceSay{Message: reply, Language: voiceLanguage},
		speechGather(),
		&twiml.VoiceSay{Message: closingLine, Language: voiceLanguage},
		&twiml.VoiceHangup{},
	)
}

// Goodbye is a directly invocable terminal state.
func (h *VoiceHandler) Goodbye(c *gin.Context) {
	h.respond(c,
		&twiml.VoiceSay{Message: farewellLine, Language: voiceLanguage},
		&twiml.VoiceHangup{},
	)
}

// reply asks the LLM for a spoken answer. Provider errors degrade to the
// fallback sentence and keep the dialogue open; a panic ends the call after
// speaking the same sentence. The caller is an unattended telephony system,
// so neither case may surface an HTTP error.
func (h *VoiceHandler) reply(ctx context.Context, speech, callSID string) (text string, fatal bool) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("voice reply panicked", "call_sid", callSID, "panic", r)
			text, fatal = voiceFallbackLine, true
		}
	}()

	if h.model == nil {
		slog.Warn("voice call without a configured LLM", "call_sid", callSID)
		return voiceFallbackLine, false
	}

	reply, err := h.model.Complete(ctx, llm.VoicePrompt(speech))
	if err != nil {
		slog.Error("voice completion failed", "call_sid", callSID, "model", h.model.Name(), "error", err)
		return voiceFallbackLine, false
	}

	return reply, false
}

func speechGather() *twiml.VoiceGather {
	return &twiml.VoiceGather{
		Input:         "speech",
		Action:        "/voice/process",
		Method:        "POST",
		Language:      voiceLanguage,
		SpeechTimeout: "auto",
	}
}

func (h *VoiceHandler) respond(c *gin.Context, verbs ...twiml.Element) {
	doc, err := twiml.Voice(verbs)
	if err != nil {
		slog.Error("twiml render failed", "error", err)
		doc = `<?xml version="1.0" encoding="UTF-8"?><Response><Hangup/></Response>`
	}

	c.Data(http.StatusOK, "text/xml", []byte(doc))
}
