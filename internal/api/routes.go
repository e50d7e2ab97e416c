package api

import (
	"io"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

type Options struct {
	QueryTimeout time.Duration
	Logger       *slog.Logger
	AccessLog    io.Writer
}

// NewApp собирает fiber-приложение: middleware + маршруты
func NewApp(answers Answerer, opts Options) *fiber.App {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	access := opts.AccessLog
	if access == nil {
		access = io.Discard
	}

	app := fiber.New(fiber.Config{
		AppName:               "resumeqa",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(log),
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		Output: access,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
	}))

	RegisterRoutes(app, NewHandler(answers, opts.QueryTimeout, log))
	return app
}

func RegisterRoutes(app *fiber.App, h *Handler) {
	app.Get("/", h.Root)
	app.Post("/query", h.Query)
}
