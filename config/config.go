package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// It is composed of smaller structs for the different concerns of the
// system: HTTP server settings, data source locations, and the external
// market-data APIs.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	OPERATIONS_FILE=data/operations.xlsx
//	USER_SETTINGS_FILE=user_settings.json
//	REPORTS_DIR=data/reports
//	APILAYER_API_KEY=...
//	FINNHUB_API_KEY=...
type Config struct {
	Server  ServerConfig  // HTTP server configuration
	Source  SourceConfig  // Operations export and user settings
	Markets MarketsConfig // Currency-rate and stock-quote APIs
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string
}

// SourceConfig locates the input files and the report output directory.
//
// Fields:
//   - OperationsFile: path to the XLSX card-operations export.
//   - UserSettingsFile: path to the JSON file listing currencies and stocks.
//   - ReportsDir: directory where persisted view results are written.
type SourceConfig struct {
	OperationsFile   string
	UserSettingsFile string
	ReportsDir       string
}

// MarketsConfig defines the external market-data collaborators.
//
// Fields:
//   - ExchangeBaseURL / ExchangeAPIKey: apilayer exchangerates_data API.
//   - BaseCurrency: the currency rates are converted into.
//   - FinnhubBaseURL / FinnhubAPIKey: finnhub stock quote API.
type MarketsConfig struct {
	ExchangeBaseURL string
	ExchangeAPIKey  string
	BaseCurrency    string
	FinnhubBaseURL  string
	FinnhubAPIKey   string
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and read throughout the application
// instead of re-reading environment variables at each call site.
var AppConfig Config

// LoadConfig initializes the global AppConfig.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() terminates the app
//     with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("OPERATIONS_FILE", "data/operations.xlsx")
	viper.SetDefault("USER_SETTINGS_FILE", "user_settings.json")
	viper.SetDefault("REPORTS_DIR", "data/reports")

	viper.SetDefault("APILAYER_BASE_URL", "https://api.apilayer.com")
	viper.SetDefault("BASE_CURRENCY", "RUB")
	viper.SetDefault("FINNHUB_BASE_URL", "https://finnhub.io/api/v1")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Source: SourceConfig{
			OperationsFile:   viper.GetString("OPERATIONS_FILE"),
			UserSettingsFile: viper.GetString("USER_SETTINGS_FILE"),
			ReportsDir:       viper.GetString("REPORTS_DIR"),
		},
		Markets: MarketsConfig{
			ExchangeBaseURL: viper.GetString("APILAYER_BASE_URL"),
			ExchangeAPIKey:  viper.GetString("APILAYER_API_KEY"),
			BaseCurrency:    viper.GetString("BASE_CURRENCY"),
			FinnhubBaseURL:  viper.GetString("FINNHUB_BASE_URL"),
			FinnhubAPIKey:   viper.GetString("FINNHUB_API_KEY"),
		},
	}

	validateConfig()
}

// validateConfig ensures required variables are present and terminates the
// application if they are missing. API keys are deliberately not required:
// without them the market-data sections of the home page degrade to empty
// lists, which is valid for local runs over the export alone.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Source.OperationsFile == "" {
		missing = append(missing, "OPERATIONS_FILE")
	}
	if AppConfig.Source.UserSettingsFile == "" {
		missing = append(missing, "USER_SETTINGS_FILE")
	}
	if AppConfig.Source.ReportsDir == "" {
		missing = append(missing, "REPORTS_DIR")
	}
	if AppConfig.Markets.ExchangeBaseURL == "" {
		missing = append(missing, "APILAYER_BASE_URL")
	}
	if AppConfig.Markets.FinnhubBaseURL == "" {
		missing = append(missing, "FINNHUB_BASE_URL")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
