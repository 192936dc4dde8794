package rest

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/simaogato/momoney-backend/internal/domain"
	"github.com/simaogato/momoney-backend/internal/usecase/budget"
	"github.com/simaogato/momoney-backend/internal/usecase/report"
)

// transactionRequest is the body of POST and PUT /api/transactions
type transactionRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Date     *time.Time      `json:"date"`
	Notes    string          `json:"notes"`
	IsIncome bool            `json:"is_income"`
}

// budgetRequest is the body of POST and PUT /api/budgets
type budgetRequest struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Period   string          `json:"period"`
}

type categoryRequest struct {
	Name string `json:"name"`
}

type transactionResponse struct {
	ID       string          `json:"id"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Date     time.Time       `json:"date"`
	Notes    string          `json:"notes"`
	IsIncome bool            `json:"is_income"`
}

type budgetResponse struct {
	ID        string          `json:"id"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Period    string          `json:"period"`
	CreatedAt time.Time       `json:"created_at"`
}

type progressResponse struct {
	BudgetID   string          `json:"budget_id"`
	Category   string          `json:"category"`
	Period     string          `json:"period"`
	Spent      decimal.Decimal `json:"spent"`
	Limit      decimal.Decimal `json:"limit"`
	Remaining  decimal.Decimal `json:"remaining"`
	Progress   float64         `json:"progress"`
	OverBudget bool            `json:"over_budget"`
	Status     string          `json:"status"`
}

type budgetItemResponse struct {
	budgetResponse
	Usage progressResponse `json:"usage"`
}

type categoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type monthlySummaryResponse struct {
	Month    string          `json:"month"`
	Label    string          `json:"label"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}

type categoryTotalResponse struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Color    string          `json:"color"`
}

type reportResponse struct {
	MonthlySummaries []monthlySummaryResponse `json:"monthly_summaries"`
	CategoryTotals   []categoryTotalResponse  `json:"category_totals"`
	BudgetProgress   []progressResponse       `json:"budget_progress"`
	Failures         []string                 `json:"failures"`
}

func newTransactionResponse(tx *domain.Transaction) transactionResponse {
	return transactionResponse{
		ID:       tx.ID.String(),
		Amount:   tx.Amount,
		Category: tx.Category,
		Date:     tx.Date,
		Notes:    tx.Notes,
		IsIncome: tx.IsIncome,
	}
}

func newBudgetResponse(b *domain.Budget) budgetResponse {
	return budgetResponse{
		ID:        b.ID.String(),
		Category:  b.Category,
		Amount:    b.Amount,
		Period:    b.Period,
		CreatedAt: b.CreatedAt,
	}
}

func newProgressResponse(p domain.BudgetProgress) progressResponse {
	return progressResponse{
		BudgetID:   p.BudgetID.String(),
		Category:   p.Category,
		Period:     p.Period,
		Spent:      p.Spent,
		Limit:      p.Limit,
		Remaining:  p.Remaining(),
		Progress:   p.Progress(),
		OverBudget: p.IsOverBudget(),
		Status:     string(domain.StatusOf(p)),
	}
}

func newBudgetItemResponse(item *budget.Item) budgetItemResponse {
	return budgetItemResponse{
		budgetResponse: newBudgetResponse(item.Budget),
		Usage:          newProgressResponse(item.Usage),
	}
}

func newReportResponse(r *report.Report) reportResponse {
	resp := reportResponse{
		MonthlySummaries: make([]monthlySummaryResponse, 0, len(r.MonthlySummaries)),
		CategoryTotals:   make([]categoryTotalResponse, 0, len(r.CategoryTotals)),
		BudgetProgress:   make([]progressResponse, 0, len(r.BudgetProgress)),
		Failures:         make([]string, 0, len(r.Failures)),
	}

	for _, m := range r.MonthlySummaries {
		resp.MonthlySummaries = append(resp.MonthlySummaries, monthlySummaryResponse{
			Month:    m.Key.String(),
			Label:    m.Label(),
			Income:   m.Income,
			Expenses: m.Expenses,
			Net:      m.Net(),
		})
	}
	for _, c := range r.CategoryTotals {
		resp.CategoryTotals = append(resp.CategoryTotals, categoryTotalResponse{
			Category: c.Category,
			Total:    c.Total,
			Color:    c.Color,
		})
	}
	for _, p := range r.BudgetProgress {
		resp.BudgetProgress = append(resp.BudgetProgress, newProgressResponse(p))
	}
	for _, f := range r.Failures {
		resp.Failures = append(resp.Failures, f.Error())
	}

	return resp
}
