package models

import "time"

// Operation represents a single row of the card-operations export.
// Each field maps to one column of the workbook.
//
// Column order in the source file:
//  1. OperationDate  ("Дата операции", DD.MM.YYYY HH:MM:SS)
//  2. PaymentDate    ("Дата платежа", DD.MM.YYYY)
//  3. Card           ("Номер карты", marker prefix + last four digits, e.g. "*1234")
//  4. Category       ("Категория", may be empty)
//  5. Description    ("Описание", may be empty)
//  6. RoundedAmount  ("Сумма операции с округлением", negative = outflow)
//  7. Cashback       ("Бонусы (включая кэшбэк)")
type Operation struct {
	OperationDate time.Time
	PaymentDate   string
	Card          string
	Category      string
	Description   string
	RoundedAmount float64
	Cashback      float64
}
