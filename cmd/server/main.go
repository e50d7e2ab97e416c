package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katakuxiko/resumeqa/internal/api"
	"github.com/katakuxiko/resumeqa/internal/config"
	"github.com/katakuxiko/resumeqa/internal/document"
	"github.com/katakuxiko/resumeqa/internal/logging"
	"github.com/katakuxiko/resumeqa/internal/prompt"
	"github.com/katakuxiko/resumeqa/internal/service"
)

func main() {
	boot := logging.New(os.Stderr, "info")

	// config
	cfg, err := config.Load()
	if err != nil {
		fatal(boot, "invalid configuration", err)
	}
	log := logging.New(os.Stdout, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// document
	doc, err := document.Load(ctx, cfg.DocumentSource, cfg.DocumentName)
	if err != nil {
		fatal(log, "failed to load document", err)
	}

	// services
	llm, err := service.NewCompleter(ctx, cfg)
	if err != nil {
		fatal(log, "failed to create LLM client", err)
	}
	answers := service.NewAnswerService(prompt.NewRenderer(doc), llm, log)

	// api
	app := api.NewApp(answers, api.Options{
		QueryTimeout: cfg.QueryTimeout,
		Logger:       log,
		AccessLog:    os.Stdout,
	})

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error("shutdown failed", "error", err)
		}
	}()

	log.Info("server started",
		"addr", cfg.ServerAddr,
		"provider", cfg.Provider,
		"model", cfg.ChatModel,
		"document_chars", len(doc))
	if err := app.Listen(cfg.ServerAddr); err != nil {
		fatal(log, "server stopped", err)
	}
}

func fatal(log *slog.Logger, msg string, err error) {
	log.Error(msg, "error", err)
	os.Exit(1)
}
