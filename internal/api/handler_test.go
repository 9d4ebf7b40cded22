package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/avolkov/spendview/internal/analytics"
	"github.com/avolkov/spendview/internal/domain/models"
	"github.com/avolkov/spendview/internal/service"
)

type mockViews struct {
	report    *models.HomeReport
	homeErr   error
	searchRes []models.Operation
	spendRes  []models.Operation
	spendErr  error
}

func (m *mockViews) Home(_ context.Context, reference string) (*models.HomeReport, error) {
	if m.homeErr != nil {
		return nil, m.homeErr
	}
	return m.report, nil
}

func (m *mockViews) Search(_ string) []models.Operation {
	return m.searchRes
}

func (m *mockViews) SpendingByCategory(_, _ string) ([]models.Operation, error) {
	return m.spendRes, m.spendErr
}

var _ service.Views = (*mockViews)(nil)

func setupRouterWithMock(v service.Views) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(v)
	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.GET("/home", h.GetHome)
	v1.GET("/search", h.GetSearch)
	v1.GET("/spending", h.GetSpending)
	return r
}

func invalidTS() error {
	return fmt.Errorf("%w: bad input", analytics.ErrInvalidTimestamp)
}

func TestHandlers_TableDriven(t *testing.T) {
	report := &models.HomeReport{
		Greeting:      "Good evening!",
		Cards:         []models.CardSummary{{LastDigits: "1234", TotalSpent: 400, Cashback: 40}},
		TopOperations: []models.TopOperation{},
		CurrencyRates: []models.CurrencyRate{},
		StockPrices:   []models.StockPrice{},
	}

	cases := []struct {
		name   string
		views  *mockViews
		query  string
		status int
		assert func(t *testing.T, body []byte)
	}{
		{
			name:   "home success",
			views:  &mockViews{report: report},
			query:  "/api/v1/home?date=2020-12-20%2000:00:00",
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out models.HomeReport
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if out.Greeting != "Good evening!" || len(out.Cards) != 1 {
					t.Fatalf("unexpected body: %+v", out)
				}
			},
		},
		{
			name:   "home invalid date",
			views:  &mockViews{homeErr: invalidTS()},
			query:  "/api/v1/home?date=garbage",
			status: http.StatusBadRequest,
		},
		{
			name:   "home internal error",
			views:  &mockViews{homeErr: errors.New("boom")},
			query:  "/api/v1/home",
			status: http.StatusInternalServerError,
		},
		{
			name:   "search missing keyword",
			views:  &mockViews{},
			query:  "/api/v1/search",
			status: http.StatusBadRequest,
		},
		{
			name: "search success",
			views: &mockViews{searchRes: []models.Operation{
				{Card: "*1234", Category: "Аптеки", Description: "Аптека 24"},
			}},
			query:  "/api/v1/search?q=аптека",
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out []map[string]any
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if len(out) != 1 || out[0]["category"] != "Аптеки" {
					t.Fatalf("unexpected body: %+v", out)
				}
			},
		},
		{
			name:   "search empty result is 200",
			views:  &mockViews{searchRes: []models.Operation{}},
			query:  "/api/v1/search?q=nothing",
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				if string(body) != "[]" {
					t.Fatalf("expected empty list, got %s", body)
				}
			},
		},
		{
			name:   "spending missing category",
			views:  &mockViews{},
			query:  "/api/v1/spending?date=2023-01-01%2000:00:00",
			status: http.StatusBadRequest,
		},
		{
			name:   "spending invalid date",
			views:  &mockViews{spendErr: invalidTS()},
			query:  "/api/v1/spending?category=Еда&date=garbage",
			status: http.StatusBadRequest,
		},
		{
			name:   "spending success",
			views:  &mockViews{spendRes: []models.Operation{{Category: "Еда", RoundedAmount: -42.5}}},
			query:  "/api/v1/spending?category=Еда",
			status: http.StatusOK,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.views)
			req := httptest.NewRequest(http.MethodGet, tc.query, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d (body: %s)", tc.status, w.Code, w.Body.String())
			}
			if tc.assert != nil {
				tc.assert(t, w.Body.Bytes())
			}
		})
	}
}
