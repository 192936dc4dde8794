package report

import (
	"errors"

	"github.com/simaogato/momoney-backend/internal/domain"
)

// Report is one consistent snapshot of every derived collection
type Report struct {
	MonthlySummaries []domain.MonthlySummary
	CategoryTotals   []domain.CategoryTotal
	BudgetProgress   []domain.BudgetProgress

	// Failures lists snapshot items that were rejected and left out of the collections above
	Failures []*domain.ItemError
}

// Err joins every item failure, nil when the snapshot was clean
func (r *Report) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	errs := make([]error, len(r.Failures))
	for i, f := range r.Failures {
		errs[i] = f
	}
	return errors.Join(errs...)
}

// OverBudget returns the budget rows whose spending exceeds their limit
func (r *Report) OverBudget() []domain.BudgetProgress {
	var over []domain.BudgetProgress
	for _, p := range r.BudgetProgress {
		if p.IsOverBudget() {
			over = append(over, p)
		}
	}
	return over
}

// BuildReport computes every sub-report from a single snapshot
// Logic:
//  1. Reject invalid transactions once, so all sub-reports see the same ledger
//  2. Monthly summaries and category totals over the accepted transactions
//  3. One ComputeBudgetProgress per budget; a failing budget is recorded and the batch continues
//
// Empty input yields empty collections, never an error.
func BuildReport(transactions []*domain.Transaction, budgets []*domain.Budget) *Report {
	report := &Report{}

	ledger := make([]*domain.Transaction, 0, len(transactions))
	for i, tx := range transactions {
		if err := tx.Validate(); err != nil {
			failure := &domain.ItemError{Kind: domain.ItemKindTransaction, Index: i, Err: err}
			if tx != nil {
				failure.ID = tx.ID
			}
			report.Failures = append(report.Failures, failure)
			continue
		}
		ledger = append(ledger, tx)
	}

	report.MonthlySummaries = BuildMonthlySummaries(ledger)
	report.CategoryTotals = BuildCategoryTotals(ledger)

	report.BudgetProgress = make([]domain.BudgetProgress, 0, len(budgets))
	for i, budget := range budgets {
		progress, err := ComputeBudgetProgress(budget, ledger)
		if err != nil {
			failure := &domain.ItemError{Kind: domain.ItemKindBudget, Index: i, Err: err}
			if budget != nil {
				failure.ID = budget.ID
			}
			report.Failures = append(report.Failures, failure)
			continue
		}
		report.BudgetProgress = append(report.BudgetProgress, progress)
	}

	return report
}
