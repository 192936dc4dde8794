package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetLike is the shared shape behind every progress bar: budget rows and report rows alike
type BudgetLike interface {
	IsOverBudget() bool
	Progress() float64
}

// BudgetStatus classifies a BudgetLike for rendering
type BudgetStatus string

const (
	BudgetStatusOnTrack BudgetStatus = "on_track"
	BudgetStatusFull    BudgetStatus = "full"
	BudgetStatusOver    BudgetStatus = "over"
)

// fullTolerance is how close to 1.0 progress must be to count as a full bar
const fullTolerance = 0.001

// StatusOf returns the rendering status of b.
// Over-budget wins over a full bar, a limit reached exactly is "full".
func StatusOf(b BudgetLike) BudgetStatus {
	if b.IsOverBudget() {
		return BudgetStatusOver
	}
	if math.Abs(b.Progress()-1) < fullTolerance {
		return BudgetStatusFull
	}
	return BudgetStatusOnTrack
}

// BudgetProgress is the derived spending state of one budget.
// Progress, IsOverBudget and Remaining are computed on read from Spent and Limit.
type BudgetProgress struct {
	BudgetID uuid.UUID
	Category string
	Period   string
	Spent    decimal.Decimal // Sum of expense transactions in Category
	Limit    decimal.Decimal // Budget.Amount
}

// Progress returns Spent/Limit clamped to [0, 1], or 0 when Limit <= 0
func (p BudgetProgress) Progress() float64 {
	if !p.Limit.IsPositive() {
		return 0
	}

	ratio := p.Spent.Div(p.Limit)
	if ratio.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return 1
	}
	if ratio.IsNegative() {
		return 0
	}

	return ratio.InexactFloat64()
}

// IsOverBudget reports whether Spent strictly exceeds Limit
func (p BudgetProgress) IsOverBudget() bool {
	return p.Spent.GreaterThan(p.Limit)
}

// Remaining returns Limit - Spent; negative when over budget
func (p BudgetProgress) Remaining() decimal.Decimal {
	return p.Limit.Sub(p.Spent)
}

// CategoryTotal is the total expense amount of one display category
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
	Color    string // "#RRGGBB", stable per category name
}

// MonthKey identifies a calendar month
type MonthKey struct {
	Year  int
	Month time.Month
}

// MonthKeyOf returns the month t falls in, using the location t carries
func MonthKeyOf(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

// Before orders keys chronologically
func (k MonthKey) Before(other MonthKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Month < other.Month
}

// String formats the key as "2006-01"
func (k MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", k.Year, int(k.Month))
}

// MonthlySummary holds income and expense sums of one month
type MonthlySummary struct {
	Key      MonthKey
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// Net returns Income - Expenses; negative for a month that spent more than it earned
func (s MonthlySummary) Net() decimal.Decimal {
	return s.Income.Sub(s.Expenses)
}

// Label returns a human readable month name such as "January 2025"
func (s MonthlySummary) Label() string {
	return fmt.Sprintf("%s %d", s.Key.Month, s.Key.Year)
}
