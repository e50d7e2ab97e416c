package api

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/katakuxiko/resumeqa/internal/model"
	"github.com/katakuxiko/resumeqa/internal/service"
)

const liveMessage = "Resume Q&A System is live. Use POST /query to ask questions."

// Answerer — то, что нужно обработчикам от сервиса ответов
type Answerer interface {
	Answer(ctx context.Context, question string) (string, error)
}

// Handler хранит зависимости для обработчиков
type Handler struct {
	answers  Answerer
	validate *validator.Validate
	timeout  time.Duration
	log      *slog.Logger
}

// NewHandler конструктор. timeout == 0 — без ограничения.
func NewHandler(answers Answerer, timeout time.Duration, log *slog.Logger) *Handler {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)

	return &Handler{
		answers:  answers,
		validate: v,
		timeout:  timeout,
		log:      log,
	}
}

// Root — проверка, что сервис жив; модель не вызывается
func (h *Handler) Root(c *fiber.Ctx) error {
	return c.JSON(model.MessageResponse{Message: liveMessage})
}

// Query — вопрос по документу
func (h *Handler) Query(c *fiber.Ctx) error {
	var req model.QueryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(model.ErrorResponse{
			Detail: []model.ValidationIssue{parseIssue(err)},
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(model.ErrorResponse{
			Detail: validationIssues(err),
		})
	}
	question := *req.Query

	ctx := c.UserContext()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	answer, err := h.answers.Answer(ctx, question)
	if err != nil {
		msg := err.Error()
		var serr *service.ServiceError
		if errors.As(err, &serr) {
			msg = serr.Message
		}
		h.log.Error("query failed", "request_id", requestID(c), "error", msg)
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Detail: "Query failed: " + msg,
		})
	}

	return c.JSON(model.QueryResponse{Query: question, Response: answer})
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}
