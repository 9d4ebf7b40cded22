package dto

import (
	"github.com/avolkov/spendview/internal/domain/models"
)

// OperationResponse is the JSON shape of one operation as returned by the
// search and spending endpoints.
//
// Fields match the API contract and may differ from internal domain models.
// This keeps the API surface decoupled from business logic.
type OperationResponse struct {
	OperationDate string  `json:"operation_date" example:"31.01.2023 16:44:00"`
	PaymentDate   string  `json:"payment_date" example:"31.01.2023"`
	Card          string  `json:"card" example:"*1234"`
	Category      string  `json:"category" example:"Супермаркеты"`
	Description   string  `json:"description" example:"Колхоз"`
	Amount        float64 `json:"amount" example:"-160.89"`
	Cashback      float64 `json:"cashback" example:"1.6"`
}

const operationDateLayout = "02.01.2006 15:04:05"

// FromOperations converts domain operations into response DTOs, preserving
// table order.
func FromOperations(ops []models.Operation) []OperationResponse {
	out := make([]OperationResponse, 0, len(ops))
	for _, op := range ops {
		out = append(out, OperationResponse{
			OperationDate: op.OperationDate.Format(operationDateLayout),
			PaymentDate:   op.PaymentDate,
			Card:          op.Card,
			Category:      op.Category,
			Description:   op.Description,
			Amount:        op.RoundedAmount,
			Cashback:      op.Cashback,
		})
	}
	return out
}
