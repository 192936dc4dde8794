package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/momoney-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMonthlySummaries_SeparatesIncomeAndExpenses(t *testing.T) {
	transactions := []*domain.Transaction{
		expense(500, "Groceries", time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)),
		income(2000, "Salary", time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)),
	}

	summaries := BuildMonthlySummaries(transactions)

	require.Len(t, summaries, 1)
	s := summaries[0]
	assert.Equal(t, domain.MonthKey{Year: 2025, Month: time.January}, s.Key)
	assert.True(t, s.Income.Equal(decimal.NewFromInt(2000)))
	assert.True(t, s.Expenses.Equal(decimal.NewFromInt(500)))
	assert.True(t, s.Net().Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, "January 2025", s.Label())
}

func TestBuildMonthlySummaries_SortedAndSparse(t *testing.T) {
	transactions := []*domain.Transaction{
		expense(10, "Rent", time.Date(2025, time.March, 31, 23, 59, 59, 0, time.UTC)),
		expense(20, "Rent", time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)),
		income(30, "Salary", time.Date(2025, time.January, 15, 8, 0, 0, 0, time.UTC)),
		expense(40, "Rent", time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)),
	}

	summaries := BuildMonthlySummaries(transactions)

	require.Len(t, summaries, 3)
	assert.Equal(t, domain.MonthKey{Year: 2024, Month: time.December}, summaries[0].Key)
	assert.Equal(t, domain.MonthKey{Year: 2025, Month: time.January}, summaries[1].Key)
	assert.Equal(t, domain.MonthKey{Year: 2025, Month: time.March}, summaries[2].Key)
	assert.True(t, summaries[2].Expenses.Equal(decimal.NewFromInt(50)))

	for i, s := range summaries {
		assert.True(t, s.Net().Equal(s.Income.Sub(s.Expenses)))
		if i > 0 {
			assert.True(t, summaries[i-1].Key.Before(s.Key))
		}
	}
}

func TestBuildMonthlySummaries_NegativeNet(t *testing.T) {
	summaries := BuildMonthlySummaries([]*domain.Transaction{
		income(100, "Salary", jan5),
		expense(250, "Rent", jan5),
	})

	require.Len(t, summaries, 1)
	assert.True(t, summaries[0].Net().Equal(decimal.NewFromInt(-150)))
}

func TestBuildMonthlySummaries_SameMonthDifferentYears(t *testing.T) {
	summaries := BuildMonthlySummaries([]*domain.Transaction{
		expense(1, "Rent", time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)),
		expense(1, "Rent", time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)),
	})

	require.Len(t, summaries, 2)
	assert.Equal(t, 2024, summaries[0].Key.Year)
	assert.Equal(t, 2025, summaries[1].Key.Year)
}

func TestBuildMonthlySummaries_UsesDateLocation(t *testing.T) {
	plusTwo := time.FixedZone("UTC+2", 2*60*60)
	// 00:30 on Feb 1st locally is still January 31st in UTC
	tx := expense(10, "Rent", time.Date(2025, time.February, 1, 0, 30, 0, 0, plusTwo))

	summaries := BuildMonthlySummaries([]*domain.Transaction{tx})

	require.Len(t, summaries, 1)
	assert.Equal(t, time.February, summaries[0].Key.Month)
}

func TestBuildMonthlySummaries_Empty(t *testing.T) {
	summaries := BuildMonthlySummaries(nil)

	assert.NotNil(t, summaries)
	assert.Empty(t, summaries)
}
