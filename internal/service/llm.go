package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/katakuxiko/resumeqa/internal/config"
)

// ErrEmptyResponse is returned by a Completer when the provider answered
// without any candidate text.
var ErrEmptyResponse = errors.New("LLM returned an empty response")

// Completer — внешняя модель: получает готовый prompt, возвращает текст ответа
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// NewCompleter создаёт клиента выбранного провайдера из config
func NewCompleter(ctx context.Context, cfg *config.Config) (Completer, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		return NewGeminiCompleter(ctx, cfg)
	case config.ProviderOpenAI:
		return NewOpenAICompleter(cfg), nil
	case config.ProviderBedrock:
		return NewBedrockCompleter(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}
