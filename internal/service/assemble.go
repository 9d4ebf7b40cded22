package service

import "github.com/avolkov/spendview/internal/domain/models"

// AssembleHome composes the already-computed pieces into a HomeReport.
// Pure composition: nothing is recomputed, nothing is written. Persisting
// the result is a separate, explicit step the caller may take (see
// storage.ReportStore).
func AssembleHome(
	greeting string,
	cards []models.CardSummary,
	top []models.TopOperation,
	rates []models.CurrencyRate,
	prices []models.StockPrice,
) *models.HomeReport {
	if cards == nil {
		cards = []models.CardSummary{}
	}
	if top == nil {
		top = []models.TopOperation{}
	}
	if rates == nil {
		rates = []models.CurrencyRate{}
	}
	if prices == nil {
		prices = []models.StockPrice{}
	}
	return &models.HomeReport{
		Greeting:      greeting,
		Cards:         cards,
		TopOperations: top,
		CurrencyRates: rates,
		StockPrices:   prices,
	}
}
