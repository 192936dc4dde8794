package report

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/momoney-backend/internal/domain"
)

// colorNamespace seeds the name-based UUIDs that category colors are cut from.
// Changing it recolors every chart.
var colorNamespace = uuid.MustParse("6f1c2a52-9d0e-4b8e-a7c4-3e5d1f0b9a21")

// CategoryColor returns the "#RRGGBB" token for a display category.
// The same name always yields the same color.
func CategoryColor(category string) string {
	sum := uuid.NewSHA1(colorNamespace, []byte(category))
	return fmt.Sprintf("#%02X%02X%02X", sum[0], sum[1], sum[2])
}

// BuildCategoryTotals groups expense transactions by display category
// Logic:
//  1. Skip income and nil transactions
//  2. Group by domain.DisplayCategory (empty names become "Uncategorized")
//  3. Sort by total descending, then by category name ascending
func BuildCategoryTotals(transactions []*domain.Transaction) []domain.CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		if tx == nil || tx.IsIncome {
			continue
		}
		category := domain.DisplayCategory(tx.Category)
		totals[category] = totals[category].Add(tx.Amount)
	}

	result := make([]domain.CategoryTotal, 0, len(totals))
	for category, total := range totals {
		result = append(result, domain.CategoryTotal{
			Category: category,
			Total:    total,
			Color:    CategoryColor(category),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if cmp := result[i].Total.Cmp(result[j].Total); cmp != 0 {
			return cmp > 0
		}
		return result[i].Category < result[j].Category
	})

	return result
}
