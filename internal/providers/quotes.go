package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/avolkov/spendview/internal/domain/models"
	"github.com/avolkov/spendview/internal/logger"
)

// QuoteProvider looks up current prices for a list of stock symbols.
// Same contract as RateProvider: opaque list, partial failure allowed.
type QuoteProvider interface {
	Quotes(ctx context.Context, symbols []string) ([]models.StockPrice, error)
}

// FinnhubClient queries the finnhub quote endpoint, one call per symbol.
type FinnhubClient struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewFinnhubClient builds a quote provider. client may be nil, in which case
// http.DefaultClient is used.
func NewFinnhubClient(baseURL, token string, client *http.Client) *FinnhubClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &FinnhubClient{baseURL: baseURL, token: token, http: client}
}

// quoteResponse mirrors the finnhub quote payload; "c" is the current price.
type quoteResponse struct {
	Current float64 `json:"c"`
}

// Quotes resolves each symbol independently, logging and skipping failures.
func (c *FinnhubClient) Quotes(ctx context.Context, symbols []string) ([]models.StockPrice, error) {
	out := make([]models.StockPrice, 0, len(symbols))
	for _, sym := range symbols {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		price, err := c.quote(ctx, sym)
		if err != nil {
			logger.L().Warn().Str("symbol", sym).Err(err).Msg("quote lookup failed")
			continue
		}
		out = append(out, models.StockPrice{Symbol: sym, Price: price})
	}
	return out, nil
}

func (c *FinnhubClient) quote(ctx context.Context, symbol string) (float64, error) {
	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("token", c.token)
	endpoint := c.baseURL + "/quote?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body quoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decode quote response: %w", err)
	}
	return body.Current, nil
}
