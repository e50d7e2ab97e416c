package service

import (
	"context"

	"github.com/katakuxiko/resumeqa/internal/config"
	"github.com/sashabaranov/go-openai"
)

// OpenAICompleter — клиент для OpenAI и совместимых API (LM Studio и т.п.)
type OpenAICompleter struct {
	client      *openai.Client
	model       string
	temperature float32
}

func NewOpenAICompleter(cfg *config.Config) *OpenAICompleter {
	oaiCfg := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		oaiCfg.BaseURL = cfg.OpenAIBaseURL
	}

	return &OpenAICompleter{
		client:      openai.NewClientWithConfig(oaiCfg),
		model:       cfg.ChatModel,
		temperature: cfg.Temperature,
	}
}

// Complete отправляет prompt одним user-сообщением
func (o *OpenAICompleter) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: o.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
			Temperature: o.temperature,
		},
	)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}
