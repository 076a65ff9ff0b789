package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/jasonwhite/github-types/internal/middleware"
	"github.com/jasonwhite/github-types/internal/webhooks"
	"github.com/jasonwhite/github-types/internal/worker"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, continuing with environment variables")
	}

	// The signing secret GitHub was configured with. An empty secret
	// disables signature verification, matching a hook created without
	// one.
	signingSecret := os.Getenv("GITHUB_WEBHOOK_SECRET")
	if signingSecret == "" {
		logger.Warn("GITHUB_WEBHOOK_SECRET is not set; signature verification is disabled")
	}

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8000"
	}

	// 1. Create the delivery store for redelivery detection.
	deliveryStore := worker.NewDeliveryStore()

	// 2. Create and start the worker pool with the default logging
	// handler.
	const maxQueueSize = 100
	const numWorkers = 5
	workerPool := worker.NewPool(maxQueueSize, logger, deliveryStore, nil)
	workerPool.Start(numWorkers)

	// 3. Instantiate the webhook handler, passing it the worker pool's
	// job queue.
	webhookHandler := webhooks.NewHandler(logger, workerPool.JobQueue)

	router := chi.NewRouter()
	router.Route("/webhooks", func(r chi.Router) {
		r.Use(middleware.VerifySignature(logger, signingSecret))
		r.Post("/", webhookHandler.HandleWebhook)
	})

	server := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		logger.Info("Server starting", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Server shutting down")

	// Stop accepting requests first so nothing new is enqueued, then
	// drain the worker pool.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	// This blocks until all workers are done.
	workerPool.Stop()

	logger.Info("Server exited gracefully")
}
