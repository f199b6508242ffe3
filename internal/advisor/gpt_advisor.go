package advisor

import (
	"context"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/finsight-ai/finsight/internal/models"
)

const gptSystemPrompt = `You are FinSight AI, a comprehensive financial advisor.
You help users with loans, investments, taxes, credit scores, budgeting,
scam detection, government schemes and credit cards. Give clear, practical,
numerically grounded advice. Never ask for credentials or OTPs.`

// GPTAdvisor delegates chat messages to a hosted language model and
// falls back to the deterministic engine whenever the model is
// unavailable or misbehaves. The reported intent always comes from the
// local classifier so chat records stay consistent across both paths.
type GPTAdvisor struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float64
	fallback    *Engine
	logger      *zap.Logger
}

func NewGPTAdvisor(apiKey, model string, maxTokens int, temperature float64, fallback *Engine, logger *zap.Logger) *GPTAdvisor {
	var client *openai.Client
	if apiKey != "" {
		client = openai.NewClient(apiKey)
	}
	return &GPTAdvisor{
		client:      client,
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		fallback:    fallback,
		logger:      logger,
	}
}

func (a *GPTAdvisor) Advise(ctx context.Context, message string) (string, models.Intent) {
	if a.client == nil {
		return a.fallbackResponse(ctx, message)
	}

	resp, err := a.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: a.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: gptSystemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: message,
				},
			},
			MaxTokens:   a.maxTokens,
			Temperature: float32(a.temperature),
		},
	)
	if err != nil {
		a.logger.Warn("GPT request failed, using deterministic advisor", zap.Error(err))
		return a.fallbackResponse(ctx, message)
	}
	if len(resp.Choices) == 0 {
		return a.fallbackResponse(ctx, message)
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return a.fallbackResponse(ctx, message)
	}
	return content, a.fallback.classifier.Classify(message)
}

func (a *GPTAdvisor) fallbackResponse(ctx context.Context, message string) (string, models.Intent) {
	return a.fallback.Advise(ctx, message)
}
