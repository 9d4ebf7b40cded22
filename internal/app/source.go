package app

import (
	"errors"

	"github.com/avolkov/spendview/config"
	"github.com/avolkov/spendview/internal/domain/models"
	"github.com/avolkov/spendview/internal/ingestion"
	"github.com/avolkov/spendview/internal/logger"
)

// OpenSource loads the full operations table from the configured export.
//
// Behavior:
//   - An unreadable workbook or a schema error is fatal: the aggregation
//     engine is never handed a broken source.
//   - A readable workbook with zero rows is valid: the table is empty and
//     every view degrades to empty results.
//
// Returns:
//   - []models.Operation: the loaded table (possibly empty).
//   - error: if the source could not be loaded at all.
func OpenSource(cfg config.Config) ([]models.Operation, error) {
	ops, err := ingestion.LoadOperations(cfg.Source.OperationsFile)
	if err != nil {
		if errors.Is(err, ingestion.ErrSourceEmpty) {
			logger.L().Warn().Str("file", cfg.Source.OperationsFile).Msg("operations export has no rows")
			return ops, nil
		}
		return nil, err
	}
	logger.L().Info().Str("file", cfg.Source.OperationsFile).Int("rows", len(ops)).Msg("operations loaded")
	return ops, nil
}

// sourceOpener is an indirection used by the wiring; overridden in tests to
// avoid reading a real workbook.
var sourceOpener = OpenSource
