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

// RateProvider looks up conversion rates for a list of currency codes.
// Results are an opaque list for the report to embed; partial per-currency
// failure is allowed.
type RateProvider interface {
	Rates(ctx context.Context, currencies []string) ([]models.CurrencyRate, error)
}

// ExchangeClient queries the apilayer exchangerates_data API, one convert
// call per currency, converting 1 unit into the home currency.
type ExchangeClient struct {
	baseURL string
	apiKey  string
	base    string // home currency, e.g. "RUB"
	http    *http.Client
}

// NewExchangeClient builds a rate provider. client may be nil, in which case
// http.DefaultClient is used; callers normally pass a client with a timeout.
func NewExchangeClient(baseURL, apiKey, baseCurrency string, client *http.Client) *ExchangeClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &ExchangeClient{baseURL: baseURL, apiKey: apiKey, base: baseCurrency, http: client}
}

// convertResponse mirrors the subset of the apilayer convert payload we read.
type convertResponse struct {
	Success bool `json:"success"`
	Info    struct {
		Rate float64 `json:"rate"`
	} `json:"info"`
}

// Rates resolves each currency independently. A failed lookup is logged and
// skipped so one throttled currency does not sink the whole list; only a
// cancelled context aborts the loop.
func (c *ExchangeClient) Rates(ctx context.Context, currencies []string) ([]models.CurrencyRate, error) {
	out := make([]models.CurrencyRate, 0, len(currencies))
	for _, cur := range currencies {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rate, err := c.convert(ctx, cur)
		if err != nil {
			logger.L().Warn().Str("currency", cur).Err(err).Msg("rate lookup failed")
			continue
		}
		out = append(out, models.CurrencyRate{Currency: cur, Rate: rate})
	}
	return out, nil
}

func (c *ExchangeClient) convert(ctx context.Context, currency string) (float64, error) {
	q := url.Values{}
	q.Set("to", c.base)
	q.Set("from", currency)
	q.Set("amount", "1")
	endpoint := c.baseURL + "/exchangerates_data/convert?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body convertResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decode convert response: %w", err)
	}
	if !body.Success {
		return 0, fmt.Errorf("convert reported failure for %s", currency)
	}
	return body.Info.Rate, nil
}
