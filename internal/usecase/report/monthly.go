package report

import (
	"sort"

	"github.com/simaogato/momoney-backend/internal/domain"
)

// BuildMonthlySummaries sums income and expenses per calendar month
// Months without transactions are absent; the result is ordered oldest first.
func BuildMonthlySummaries(transactions []*domain.Transaction) []domain.MonthlySummary {
	byMonth := make(map[domain.MonthKey]*domain.MonthlySummary)
	for _, tx := range transactions {
		if tx == nil {
			continue
		}

		key := domain.MonthKeyOf(tx.Date)
		summary, ok := byMonth[key]
		if !ok {
			summary = &domain.MonthlySummary{Key: key}
			byMonth[key] = summary
		}

		if tx.IsIncome {
			summary.Income = summary.Income.Add(tx.Amount)
		} else {
			summary.Expenses = summary.Expenses.Add(tx.Amount)
		}
	}

	result := make([]domain.MonthlySummary, 0, len(byMonth))
	for _, summary := range byMonth {
		result = append(result, *summary)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Key.Before(result[j].Key)
	})

	return result
}
