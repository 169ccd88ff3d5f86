package provider

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"
)

const (
	completionTemperature = 0.3
	completionMaxTokens   = 200
)

// OpenRouterClient talks to the OpenAI-compatible chat-completion API.
// A local limiter paces outbound calls to the paid upstream independently
// of the per-caller quota gates.
type OpenRouterClient struct {
	cli     *openai.Client
	model   string
	limiter *rate.Limiter
	timeout time.Duration
}

func NewOpenRouterClient(apiKey string, baseUrl string, model string, callsPerMinute int, timeout time.Duration) *OpenRouterClient {
	config := openai.DefaultConfig(apiKey)
	if baseUrl != "" {
		config.BaseURL = baseUrl
	}
	return &OpenRouterClient{
		cli:     openai.NewClientWithConfig(config),
		model:   model,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(callsPerMinute)), callsPerMinute),
		timeout: timeout,
	}
}

func (p *OpenRouterClient) Complete(ctx context.Context, systemPrompt string, userPrompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err := p.limiter.Wait(ctx)
	if err != nil {
		return "", errors.WithMessage(err, "wait for outbound limiter")
	}

	resp, err := p.cli.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: completionTemperature,
		MaxTokens:   completionMaxTokens,
	})
	if err != nil {
		return "", errors.WithMessage(err, "create chat completion")
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("completion has no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
