package services

import (
	"context"
	"fmt"
	"os"

	"github.com/sashabaranov/go-openai"

	"github.com/formulamga/mga-backend/internal/logger"
	"github.com/formulamga/mga-backend/internal/utils"
)

// GenerationClient is the text-completion boundary: one prompt in, one
// answer out. Implementations do not retry; whether a failed turn is worth
// repeating is the caller's call.
type GenerationClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type openAIGenerationClient struct {
	log         *logger.Logger
	client      *openai.Client
	model       string
	temperature float32
}

// NewGenerationClient builds a client for any OpenAI-compatible completion
// API. Groq is the default provider, selected through LLM_BASE_URL.
func NewGenerationClient(log *logger.Logger) (GenerationClient, error) {
	apiKey := os.Getenv("LLM_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("missing LLM_API_KEY")
	}

	baseURL := utils.GetEnv("LLM_BASE_URL", "https://api.groq.com/openai/v1", log)
	model := utils.GetEnv("LLM_MODEL", "llama-3.1-8b-instant", log)

	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	return &openAIGenerationClient{
		log:         log.With("service", "GenerationClient"),
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: 0.7,
	}, nil
}

func (c *openAIGenerationClient) Generate(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	}
	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response choices")
	}
	return resp.Choices[0].Message.Content, nil
}
