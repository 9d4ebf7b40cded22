package app

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/avolkov/spendview/config"
	"github.com/avolkov/spendview/internal/api"
	"github.com/avolkov/spendview/internal/logger"
	"github.com/avolkov/spendview/internal/providers"
	"github.com/avolkov/spendview/internal/service"
)

// httpTimeout bounds every outbound market-data call.
const httpTimeout = 10 * time.Second

// BuildViews wires the view service from configuration: loads the operations
// table and user settings, and constructs the market-data clients.
//
// The table is loaded once, up front; a source failure surfaces here, before
// the aggregation core can ever run. A missing or broken user-settings file
// only degrades the market-data sections and is not fatal.
func BuildViews(cfg config.Config) (service.Views, error) {
	ops, err := sourceOpener(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load operations: %w", err)
	}

	settings, err := providers.LoadUserSettings(cfg.Source.UserSettingsFile)
	if err != nil {
		logger.L().Warn().Err(err).Msg("user settings unavailable, market data disabled")
		settings = providers.UserSettings{}
	}

	httpClient := &http.Client{Timeout: httpTimeout}
	rates := providers.NewExchangeClient(
		cfg.Markets.ExchangeBaseURL,
		cfg.Markets.ExchangeAPIKey,
		cfg.Markets.BaseCurrency,
		httpClient,
	)
	quotes := providers.NewFinnhubClient(
		cfg.Markets.FinnhubBaseURL,
		cfg.Markets.FinnhubAPIKey,
		httpClient,
	)

	return service.NewViews(ops, rates, quotes, settings, nil), nil
}

// InitializeApp sets up all application dependencies for API mode and
// returns a fully configured Gin router, a cleanup function for graceful
// shutdown, and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the view service (BuildViews).
//   - Creates the HTTP handler layer.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	views, err := BuildViews(cfg)
	if err != nil {
		return nil, nil, err
	}

	handler := api.NewHandler(views)
	router := api.NewRouter(handler)

	// Readiness tracks the export file staying reachable.
	healthHandler := api.NewHealthHandler(func() error {
		_, err := os.Stat(cfg.Source.OperationsFile)
		return err
	})
	healthHandler.Register(router)

	cleanup := func() {
		logger.L().Info().Msg("resources released")
	}

	return router, cleanup, nil
}
