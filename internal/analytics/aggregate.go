// Package analytics is the aggregation core: pure, deterministic functions
// over an already-loaded operations table. Nothing here performs I/O or
// mutates its input, so independent queries over the same table are safe to
// run concurrently.
package analytics

import (
	"sort"

	"github.com/avolkov/spendview/internal/domain/models"
)

// DefaultTopN is the ranked-list length used by the home page.
const DefaultTopN = 5

// cardPrefixLen is the length of the marker prefix on card identifiers
// ("*1234" → "1234").
const cardPrefixLen = 1

// FilterByWindow returns the operations whose operation timestamp lies in w,
// inclusive on both ends. An empty input yields an empty output, not an
// error, and table order is preserved.
func FilterByWindow(ops []models.Operation, w Window) []models.Operation {
	out := make([]models.Operation, 0, len(ops))
	for _, op := range ops {
		if w.Contains(op.OperationDate) {
			out = append(out, op)
		}
	}
	return out
}

// FilterByCategory returns the operations whose category equals category
// exactly (case-sensitive). Callers compose FilterByWindow then
// FilterByCategory.
func FilterByCategory(ops []models.Operation, category string) []models.Operation {
	out := make([]models.Operation, 0, len(ops))
	for _, op := range ops {
		if op.Category == category {
			out = append(out, op)
		}
	}
	return out
}

// GroupByCard partitions ops by card identifier and sums spend and cashback
// per card. Summaries come out in ascending card-identifier order so repeated
// runs over the same table produce identical output. Operations without a
// card identifier are skipped, matching the source export where transfers
// carry no card number.
func GroupByCard(ops []models.Operation) []models.CardSummary {
	totals := make(map[string]*models.CardSummary)
	for _, op := range ops {
		if op.Card == "" {
			continue
		}
		agg, ok := totals[op.Card]
		if !ok {
			agg = &models.CardSummary{LastDigits: stripCardPrefix(op.Card)}
			totals[op.Card] = agg
		}
		agg.TotalSpent += op.RoundedAmount
		agg.Cashback += op.Cashback
	}

	cards := make([]string, 0, len(totals))
	for card := range totals {
		cards = append(cards, card)
	}
	sort.Strings(cards)

	out := make([]models.CardSummary, 0, len(cards))
	for _, card := range cards {
		out = append(out, *totals[card])
	}
	return out
}

// TopByAmount ranks ops by rounded amount, descending, and truncates to n.
// The sort is stable: ties keep their original table order. Each entry
// carries the payment date, not the operation timestamp.
func TopByAmount(ops []models.Operation, n int) []models.TopOperation {
	if n < 0 {
		n = 0
	}
	ranked := make([]models.Operation, len(ops))
	copy(ranked, ops)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RoundedAmount > ranked[j].RoundedAmount
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}

	out := make([]models.TopOperation, 0, len(ranked))
	for _, op := range ranked {
		out = append(out, models.TopOperation{
			Date:        op.PaymentDate,
			Amount:      op.RoundedAmount,
			Category:    op.Category,
			Description: op.Description,
		})
	}
	return out
}

func stripCardPrefix(card string) string {
	if len(card) <= cardPrefixLen {
		return ""
	}
	return card[cardPrefixLen:]
}
