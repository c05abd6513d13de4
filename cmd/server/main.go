package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/examprep/backend/internal/analytics"
	"github.com/examprep/backend/internal/api"
	"github.com/examprep/backend/internal/grader"
	"github.com/examprep/backend/internal/infrastructure/config"
	"github.com/examprep/backend/internal/metrics"
	"github.com/examprep/backend/internal/service"
	"github.com/examprep/backend/internal/store"

	_ "github.com/examprep/backend/docs" // generated swagger docs
)

// @title           ExamPrep Progress API
// @version         1.0
// @description     Answer intake, syllabus progress, mastery and topper-similarity analytics for exam preparation.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.SyllabusPath != "" {
		tree, err := store.SeedSyllabusFile(context.Background(), db, cfg.SyllabusPath)
		if err != nil {
			logger.Error("failed to seed syllabus", "path", cfg.SyllabusPath, "error", err)
			os.Exit(1)
		}
		logger.Info("syllabus seeded", "path", cfg.SyllabusPath, "nodes", tree.Size())
	}

	engine := analytics.NewEngine(
		analytics.WithLocation(cfg.Location),
		analytics.WithPartitions(cfg.AnalyticsPartitions),
	)
	progressSvc := service.NewProgressService(db, engine, logger)

	var gradingSvc *service.GradingService
	if cfg.LLMURL != "" {
		llm := grader.NewOllamaGrader(cfg.LLMURL, cfg.LLMModel)
		gradingSvc = service.NewGradingService(context.Background(), db, llm, logger, cfg.GradingWorkers, cfg.GradingQueue)
		defer gradingSvc.Close()
		logger.Info("grading enabled", "llm_url", cfg.LLMURL, "model", cfg.LLMModel, "workers", cfg.GradingWorkers)

		// Answers left pending by a previous run are graded in the background.
		requeueCtx, cancelRequeue := context.WithCancel(context.Background())
		defer cancelRequeue()
		go func() {
			if n, err := gradingSvc.RequeuePending(requeueCtx); err != nil {
				logger.Warn("requeue of pending answers stopped", "requeued", n, "error", err)
			}
		}()
	} else {
		logger.Info("grading disabled; evaluations must be posted")
	}

	handler := api.NewHandler(db, progressSvc, gradingSvc, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})
	mux.Handle("GET /metrics", metrics.Handler())

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress, "timezone", cfg.Location.String())
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
