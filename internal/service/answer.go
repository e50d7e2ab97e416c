package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/katakuxiko/resumeqa/internal/prompt"
	"github.com/katakuxiko/resumeqa/internal/util"
)

// ServiceError is the single failure kind of AnswerService. Message is
// the provider's error text, unprefixed.
type ServiceError struct {
	Message string
	Err     error
}

func (e *ServiceError) Error() string { return e.Message }

func (e *ServiceError) Unwrap() error { return e.Err }

// AnswerService отвечает на вопросы по одному документу
type AnswerService struct {
	renderer *prompt.Renderer
	llm      Completer
	log      *slog.Logger
}

func NewAnswerService(renderer *prompt.Renderer, llm Completer, log *slog.Logger) *AnswerService {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &AnswerService{renderer: renderer, llm: llm, log: log}
}

// Answer renders the prompt for question and returns the model's text
// unchanged. Every call reaches the completer exactly once. Failures are
// returned as *ServiceError.
func (s *AnswerService) Answer(ctx context.Context, question string) (string, error) {
	p := s.renderer.Render(question)

	start := time.Now()
	answer, err := s.llm.Complete(ctx, p)
	if err != nil {
		s.log.Warn("completion failed",
			"question", util.TruncateRunes(question, 80),
			"elapsed", time.Since(start),
			"error", err)
		return "", &ServiceError{Message: err.Error(), Err: err}
	}

	s.log.Debug("completion done",
		"question", util.TruncateRunes(question, 80),
		"prompt_len", len(p),
		"answer_len", len(answer),
		"elapsed", time.Since(start))
	return answer, nil
}
