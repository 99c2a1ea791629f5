package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"max.ks1230/expense-reports/internal/entity/expense"
)

func TestWindowFor(t *testing.T) {
	tests := []struct {
		name   string
		period expense.Period
		at     time.Time
		start  time.Time
	}{
		{
			name:   "daily",
			period: expense.Daily,
			at:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			start:  time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "weekly",
			period: expense.Weekly,
			at:     time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC),
			start:  time.Date(2024, 2, 25, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "monthly keeps day of month",
			period: expense.Monthly,
			at:     time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC),
			start:  time.Date(2024, 2, 15, 8, 30, 0, 0, time.UTC),
		},
		{
			name:   "monthly across year boundary",
			period: expense.Monthly,
			at:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			start:  time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "monthly clamps to leap day",
			period: expense.Monthly,
			at:     time.Date(2024, 3, 31, 10, 0, 0, 0, time.UTC),
			start:  time.Date(2024, 2, 29, 10, 0, 0, 0, time.UTC),
		},
		{
			name:   "monthly clamps to short february",
			period: expense.Monthly,
			at:     time.Date(2023, 3, 30, 0, 0, 0, 0, time.UTC),
			start:  time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "monthly clamps to 30 day month",
			period: expense.Monthly,
			at:     time.Date(2024, 5, 31, 23, 59, 0, 0, time.UTC),
			start:  time.Date(2024, 4, 30, 23, 59, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := WindowFor(tt.period, tt.at)
			assert.True(t, tt.start.Equal(w.Start), "want start %s, got %s", tt.start, w.Start)
			assert.True(t, tt.at.Equal(w.End))
		})
	}
}

func TestWindowFor_UnknownPeriodPanics(t *testing.T) {
	assert.Panics(t, func() {
		WindowFor(expense.Period("yearly"), baseTime)
	})
}

func TestWindowFor_EightDaysOldExpense(t *testing.T) {
	old := []expense.Expense{{ID: 1, Category: "Food", Amount: 12, Date: baseTime.AddDate(0, 0, -8)}}

	assert.Empty(t, FilterWindow(old, WindowFor(expense.Daily, baseTime)))
	assert.Empty(t, FilterWindow(old, WindowFor(expense.Weekly, baseTime)))
	assert.Len(t, FilterWindow(old, WindowFor(expense.Monthly, baseTime)), 1)
}
