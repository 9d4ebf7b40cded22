package main

//
//  @title           spendview API
//  @version         1.0
//  @description     Card-operations aggregation & reporting service.
//  @termsOfService  https://github.com/avolkov/spendview
//  @contact.name    API Support
//  @contact.url     https://github.com/avolkov/spendview
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        views
//  @tag.description Home page, keyword search and category spending views
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avolkov/spendview/config"
	_ "github.com/avolkov/spendview/docs" // swagger docs
	"github.com/avolkov/spendview/internal/app"
	"github.com/avolkov/spendview/internal/domain/dto"
	"github.com/avolkov/spendview/internal/logger"
	"github.com/avolkov/spendview/internal/storage"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown terminates the HTTP server and releases resources when an
// OS interrupt signal (SIGINT, SIGTERM) is received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// emit prints v as indented JSON on stdout and, when save is set, persists
// it under the configured reports directory as an explicit extra step.
func emit(name string, v any, save bool) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logger.L().Fatal().Err(err).Msg("encode result")
	}
	os.Stdout.Write(append(out, '\n'))

	if !save {
		return
	}
	store := storage.NewReportStore(config.AppConfig.Source.ReportsDir)
	path, err := store.Save(name, v)
	if err != nil {
		logger.L().Fatal().Err(err).Msg("persist result")
	}
	logger.L().Info().Str("path", path).Msg("result persisted")
}

// main is the entry point of the spendview application.
//
// Modes (selected via --mode flag):
//   - home:     Builds the home-page report for --date and prints it.
//   - search:   Runs a keyword search (--query) over the whole export.
//   - spending: Builds the trailing-quarter category report (--category, --date).
//   - api:      Starts the REST API exposing the same three views.
//
// Flags:
//   - --mode:     Execution mode. Default: "home".
//   - --date:     Reference instant "YYYY-MM-DD HH:MM:SS" (default: now).
//   - --query:    Keyword for search mode.
//   - --category: Category for spending mode.
//   - --save:     Also persist the result as JSON under REPORTS_DIR.
//   - --port:     Port for API mode. Defaults to SERVER_PORT from config.
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	mode := flag.String("mode", "home", "Mode: home, search, spending or api")
	date := flag.String("date", "", "Reference instant YYYY-MM-DD HH:MM:SS (default: now)")
	query := flag.String("query", "", "Keyword for search mode")
	category := flag.String("category", "", "Category for spending mode")
	save := flag.Bool("save", false, "Persist the result as JSON under REPORTS_DIR")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "home":
		views, err := app.BuildViews(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("init failed")
		}
		report, err := views.Home(ctx, *date)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("home report failed")
		}
		emit("home", report, *save)

	case "search":
		if *query == "" {
			logger.L().Fatal().Msg("--query is required in search mode")
		}
		views, err := app.BuildViews(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("init failed")
		}
		emit("search", dto.FromOperations(views.Search(*query)), *save)

	case "spending":
		if *category == "" {
			logger.L().Fatal().Msg("--category is required in spending mode")
		}
		views, err := app.BuildViews(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("init failed")
		}
		ops, err := views.SpendingByCategory(*category, *date)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("spending report failed")
		}
		emit("spending", dto.FromOperations(ops), *save)

	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
