package report

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/simaogato/momoney-backend/internal/domain"
)

// ComputeBudgetProgress calculates how much of a budget has been spent
// Logic:
//  1. Select expense transactions whose Category equals budget.Category exactly (case-sensitive)
//  2. Spent = sum of their amounts; income never counts, even in a matching category
//  3. Progress and IsOverBudget are derived by domain.BudgetProgress
//
// Nil transactions are skipped. A nil budget returns an error wrapping domain.ErrInvalidArgument.
func ComputeBudgetProgress(budget *domain.Budget, transactions []*domain.Transaction) (domain.BudgetProgress, error) {
	if budget == nil {
		return domain.BudgetProgress{}, fmt.Errorf("%w: budget is nil", domain.ErrInvalidArgument)
	}

	spent := decimal.Zero
	for _, tx := range transactions {
		if tx == nil || tx.IsIncome || tx.Category != budget.Category {
			continue
		}
		spent = spent.Add(tx.Amount)
	}

	return domain.BudgetProgress{
		BudgetID: budget.ID,
		Category: budget.Category,
		Period:   budget.Period,
		Spent:    spent,
		Limit:    budget.Amount,
	}, nil
}
