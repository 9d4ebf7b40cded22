// Package service composes the analytics core with the external
// collaborators into the three user-facing views: home page, keyword search,
// and category spending.
package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/avolkov/spendview/internal/analytics"
	"github.com/avolkov/spendview/internal/domain/models"
	"github.com/avolkov/spendview/internal/logger"
	"github.com/avolkov/spendview/internal/providers"
)

// Views defines the business operations exposed over HTTP and the CLI.
//
// Every method computes fresh results from the immutable operations table
// injected at construction; an empty reference string means "now", while an
// unparseable one is always an explicit failure (analytics.ErrInvalidTimestamp).
type Views interface {
	Home(ctx context.Context, reference string) (*models.HomeReport, error)
	Search(keyword string) []models.Operation
	SpendingByCategory(category, reference string) ([]models.Operation, error)
}

type viewsService struct {
	ops      []models.Operation
	rates    providers.RateProvider
	quotes   providers.QuoteProvider
	settings providers.UserSettings
	now      func() time.Time
}

// NewViews builds the view service over an already-loaded operations table.
// now may be nil, in which case time.Now is used.
func NewViews(
	ops []models.Operation,
	rates providers.RateProvider,
	quotes providers.QuoteProvider,
	settings providers.UserSettings,
	now func() time.Time,
) Views {
	if now == nil {
		now = time.Now
	}
	return &viewsService{ops: ops, rates: rates, quotes: quotes, settings: settings, now: now}
}

// Home builds the home-page report for the given reference instant.
//
// Rates and quotes are fetched concurrently while the card aggregation runs;
// a provider failure degrades its section to an empty list rather than
// failing the whole report. Only a bad reference string or a cancelled
// context produce an error.
func (s *viewsService) Home(ctx context.Context, reference string) (*models.HomeReport, error) {
	ref, err := s.resolveReference(reference)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)

	rates := []models.CurrencyRate{}
	g.Go(func() error {
		r, err := s.rates.Rates(gctx, s.settings.Currencies)
		if err != nil {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			logger.L().Warn().Err(err).Msg("currency rates unavailable")
			return nil
		}
		rates = r
		return nil
	})

	prices := []models.StockPrice{}
	g.Go(func() error {
		p, err := s.quotes.Quotes(gctx, s.settings.Stocks)
		if err != nil {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			logger.L().Warn().Err(err).Msg("stock prices unavailable")
			return nil
		}
		prices = p
		return nil
	})

	windowed := analytics.FilterByWindow(s.ops, analytics.MonthWindow(ref))
	cards := analytics.GroupByCard(windowed)
	top := analytics.TopByAmount(windowed, analytics.DefaultTopN)

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := AssembleHome(analytics.Greeting(ref.Hour()), cards, top, rates, prices)
	return report, nil
}

// Search returns every operation whose category or description contains the
// keyword, case-insensitively, over the whole table.
func (s *viewsService) Search(keyword string) []models.Operation {
	return analytics.SearchByKeyword(s.ops, keyword)
}

// SpendingByCategory returns the operations in the given category within the
// trailing three-month window ending at the reference instant. An empty
// result is valid and distinct from failure.
func (s *viewsService) SpendingByCategory(category, reference string) ([]models.Operation, error) {
	ref, err := s.resolveReference(reference)
	if err != nil {
		return nil, err
	}
	windowed := analytics.FilterByWindow(s.ops, analytics.QuarterWindow(ref))
	return analytics.FilterByCategory(windowed, category), nil
}

// resolveReference treats absence as "now" and invalidity as an error.
// The two are never conflated.
func (s *viewsService) resolveReference(reference string) (time.Time, error) {
	if reference == "" {
		return s.now(), nil
	}
	return analytics.ParseReference(reference)
}
