package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/katakuxiko/resumeqa/internal/prompt"
	"gotest.tools/v3/assert"
)

type stubCompleter struct {
	calls   atomic.Int32
	mu      sync.Mutex
	prompts []string
	answer  string
	err     error
}

func (s *stubCompleter) Complete(ctx context.Context, p string) (string, error) {
	s.calls.Add(1)
	s.mu.Lock()
	s.prompts = append(s.prompts, p)
	s.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.answer, s.err
}

func TestAnswer_ReturnsModelTextVerbatim(t *testing.T) {
	llm := &stubCompleter{answer: "  Python, SQL and Power BI.\n"}
	svc := NewAnswerService(prompt.NewRenderer("resume text"), llm, nil)

	got, err := svc.Answer(context.Background(), "What are the skills?")
	assert.NilError(t, err)
	assert.Equal(t, got, "  Python, SQL and Power BI.\n")

	assert.Equal(t, len(llm.prompts), 1)
	assert.Equal(t, llm.prompts[0], prompt.Render("resume text", "What are the skills?"))
}

func TestAnswer_NoCaching(t *testing.T) {
	llm := &stubCompleter{answer: "Y"}
	svc := NewAnswerService(prompt.NewRenderer("doc"), llm, nil)

	for i := 0; i < 2; i++ {
		_, err := svc.Answer(context.Background(), "same question")
		assert.NilError(t, err)
	}
	assert.Equal(t, llm.calls.Load(), int32(2))
}

func TestAnswer_EmptyQuestionForwarded(t *testing.T) {
	llm := &stubCompleter{answer: "Information not found."}
	svc := NewAnswerService(prompt.NewRenderer("doc"), llm, nil)

	got, err := svc.Answer(context.Background(), "")
	assert.NilError(t, err)
	assert.Equal(t, got, "Information not found.")
	assert.Assert(t, strings.HasSuffix(llm.prompts[0], "Question: \nAnswer:"))
}

func TestAnswer_FailureBecomesServiceError(t *testing.T) {
	cause := errors.New("boom")
	llm := &stubCompleter{err: cause}
	svc := NewAnswerService(prompt.NewRenderer("doc"), llm, nil)

	got, err := svc.Answer(context.Background(), "q")
	assert.Equal(t, got, "")

	var serr *ServiceError
	assert.Assert(t, errors.As(err, &serr))
	assert.Equal(t, serr.Message, "boom")
	assert.Equal(t, err.Error(), "boom")
	assert.Assert(t, errors.Is(err, cause))
	assert.Equal(t, llm.calls.Load(), int32(1))
}

func TestAnswer_PropagatesCancellation(t *testing.T) {
	llm := &stubCompleter{answer: "never"}
	svc := NewAnswerService(prompt.NewRenderer("doc"), llm, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Answer(ctx, "q")
	assert.Assert(t, errors.Is(err, context.Canceled))
}

func TestAnswer_Concurrent(t *testing.T) {
	llm := &stubCompleter{answer: "ok"}
	svc := NewAnswerService(prompt.NewRenderer("doc"), llm, nil)

	const n = 32
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			got, err := svc.Answer(context.Background(), "q")
			assert.Check(t, err)
			assert.Check(t, got == "ok")
		}()
	}
	wg.Wait()

	assert.Equal(t, llm.calls.Load(), int32(n))
}
