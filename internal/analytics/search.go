package analytics

import (
	"strings"

	"github.com/avolkov/spendview/internal/domain/models"
)

// SearchByKeyword returns the operations whose category or description
// contains keyword as a case-insensitive substring. The match is null-safe:
// an empty field simply never matches, it is not an error. No windowing is
// applied; search runs over the whole table.
func SearchByKeyword(ops []models.Operation, keyword string) []models.Operation {
	needle := strings.ToLower(keyword)
	out := make([]models.Operation, 0)
	for _, op := range ops {
		if containsFold(op.Category, needle) || containsFold(op.Description, needle) {
			out = append(out, op)
		}
	}
	return out
}

// containsFold reports whether field contains the already-lowercased needle.
// Empty fields never match.
func containsFold(field, needle string) bool {
	if field == "" {
		return false
	}
	return strings.Contains(strings.ToLower(field), needle)
}
