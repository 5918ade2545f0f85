package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Groq exposes an OpenAI-compatible API, so the openai client is pointed at
// the Groq base URL.
const groqBaseURL = "https://api.groq.com/openai/v1"

const temperature = 0.7

type GroqClient struct {
	client    *openai.Client
	model     openai.ChatModel
	modelName string
}

func NewGroqClient(apiKey string) *GroqClient {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(groqBaseURL),
	)
	return &GroqClient{
		client:    &client,
		model:     openai.ChatModel("llama-3.3-70b-versatile"),
		modelName: "llama-3.3-70b-versatile",
	}
}

func (c *GroqClient) Complete(ctx context.Context, req Request) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.System),
			openai.UserMessage(req.User),
		},
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(req.MaxTokens),
	})

	if err != nil {
		return "", fmt.Errorf("groq API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from groq")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (c *GroqClient) Name() string {
	return c.modelName
}
