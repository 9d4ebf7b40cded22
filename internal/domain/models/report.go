package models

// CardSummary is the per-card aggregate over a time window.
//
// Fields:
//   - LastDigits: card identifier with its marker prefix stripped ("*1234" → "1234").
//   - TotalSpent: sum of rounded operation amounts for the card within the window.
//   - Cashback: sum of bonus/cashback amounts for the card within the window.
//
// swagger:model CardSummary
type CardSummary struct {
	LastDigits string  `json:"last_digits" example:"1234"`
	TotalSpent float64 `json:"total_spent" example:"400.0"`
	Cashback   float64 `json:"cashback" example:"40.0"`
}

// TopOperation is one entry of the ranked top-N list. It carries the payment
// date, not the operation timestamp.
//
// swagger:model TopOperation
type TopOperation struct {
	Date        string  `json:"date" example:"31.01.2023"`
	Amount      float64 `json:"amount" example:"300.0"`
	Category    string  `json:"category" example:"Супермаркеты"`
	Description string  `json:"description" example:"Колхоз"`
}

// CurrencyRate is one looked-up conversion rate, embedded as-is.
type CurrencyRate struct {
	Currency string  `json:"currency" example:"USD"`
	Rate     float64 `json:"rate" example:"91.2"`
}

// StockPrice is one looked-up stock quote, embedded as-is.
type StockPrice struct {
	Symbol string  `json:"stock" example:"AAPL"`
	Price  float64 `json:"price" example:"178.5"`
}

// HomeReport is the assembled home-page response. It is built once per
// request and never mutated after construction.
//
// swagger:model HomeReport
type HomeReport struct {
	Greeting      string         `json:"greeting"`
	Cards         []CardSummary  `json:"cards"`
	TopOperations []TopOperation `json:"top_transactions"`
	CurrencyRates []CurrencyRate `json:"currency_rates"`
	StockPrices   []StockPrice   `json:"stock_prices"`
}
