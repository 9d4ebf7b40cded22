// Package ingestion adapts the XLSX card-operations export into the in-memory
// operations table the analytics core works on.
package ingestion

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/avolkov/spendview/internal/domain/models"
)

// operationDateLayout is the fixed day-month-year format of the export.
const operationDateLayout = "02.01.2006 15:04:05"

// Source column headers. The export carries more columns than these; only the
// ones the engine needs are required, located by name in the header row.
const (
	colOperationDate = "Дата операции"
	colPaymentDate   = "Дата платежа"
	colCard          = "Номер карты"
	colCategory      = "Категория"
	colDescription   = "Описание"
	colAmount        = "Сумма операции с округлением"
	colCashback      = "Бонусы (включая кэшбэк)"
)

var requiredColumns = []string{
	colOperationDate,
	colPaymentDate,
	colCard,
	colCategory,
	colDescription,
	colAmount,
	colCashback,
}

var (
	// ErrSourceUnavailable means the workbook could not be opened or read at
	// all. The aggregation engine must never run in this state.
	ErrSourceUnavailable = errors.New("operations source unavailable")

	// ErrSourceEmpty means the workbook opened fine but holds zero data rows.
	// Callers treat it as a valid empty dataset, not a failure.
	ErrSourceEmpty = errors.New("operations source is empty")
)

// SchemaError reports a required column missing from the header row.
// Aggregation with missing fields is undefined, so the whole load fails.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema error: required column %q not found", e.Column)
}

// LoadOperations reads the first sheet of the workbook at path and returns
// the full operations table in row order.
//
// It fails on:
//   - an unreadable workbook (ErrSourceUnavailable, wrapped)
//   - a required column missing from the header (*SchemaError)
//   - an unparseable operation timestamp or amount (data error, never
//     silently dropped)
//
// It tolerates:
//   - extra columns in any order
//   - empty category, description, card and cashback cells
//
// Zero data rows return an empty table together with ErrSourceEmpty.
func LoadOperations(path string) ([]models.Operation, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrSourceUnavailable, path, err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %q: %v", ErrSourceUnavailable, sheet, err)
	}
	if len(rows) == 0 {
		return []models.Operation{}, ErrSourceEmpty
	}

	cols, err := mapColumns(rows[0])
	if err != nil {
		return nil, err
	}

	ops := make([]models.Operation, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		op, err := rowToOperation(row, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		ops = append(ops, op)
	}

	if len(ops) == 0 {
		return ops, ErrSourceEmpty
	}
	return ops, nil
}

// mapColumns locates each required column in the header row. The export may
// carry extra columns in any order; a missing required one is a SchemaError.
func mapColumns(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(h)] = i
	}

	cols := make(map[string]int, len(requiredColumns))
	for _, name := range requiredColumns {
		i, ok := index[name]
		if !ok {
			return nil, &SchemaError{Column: name}
		}
		cols[name] = i
	}
	return cols, nil
}

func rowToOperation(row []string, cols map[string]int) (models.Operation, error) {
	var op models.Operation

	// Operation timestamp is the one field the engine cannot live without;
	// a record failing to parse is a data error, not a skipped row.
	raw := cell(row, cols[colOperationDate])
	ts, err := time.Parse(operationDateLayout, raw)
	if err != nil {
		return op, fmt.Errorf("invalid operation date %q: expected %s", raw, operationDateLayout)
	}
	op.OperationDate = ts

	op.PaymentDate = cell(row, cols[colPaymentDate])
	op.Card = cell(row, cols[colCard])
	op.Category = cell(row, cols[colCategory])
	op.Description = cell(row, cols[colDescription])

	if s := cell(row, cols[colAmount]); s != "" {
		v, err := parseAmount(s)
		if err != nil {
			return op, fmt.Errorf("invalid amount %q: %v", s, err)
		}
		op.RoundedAmount = v
	}

	if s := cell(row, cols[colCashback]); s != "" {
		v, err := parseAmount(s)
		if err != nil {
			return op, fmt.Errorf("invalid cashback %q: %v", s, err)
		}
		op.Cashback = v
	}

	return op, nil
}

// cell returns the trimmed value at index i. Sheet readers drop trailing
// empty cells, so short rows map to empty values rather than panics.
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseAmount accepts both dot and comma decimal separators.
func parseAmount(s string) (float64, error) {
	s = strings.ReplaceAll(s, ",", ".")
	return strconv.ParseFloat(s, 64)
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
