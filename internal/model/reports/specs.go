package reports

import (
	"fmt"
	"time"

	"max.ks1230/expense-reports/internal/entity/expense"
	"max.ks1230/expense-reports/internal/model/customerr"
)

const (
	dailySpec   = "0 0 * * *"
	monthlySpec = "0 0 1 * *"
)

// SpecFor returns the cron spec that triggers reports of period: midnight
// every day, midnight on weekStart, midnight on the 1st of every month.
func SpecFor(period expense.Period, weekStart time.Weekday) (string, error) {
	switch period {
	case expense.Daily:
		return dailySpec, nil
	case expense.Weekly:
		return fmt.Sprintf("0 0 * * %d", weekStart), nil
	case expense.Monthly:
		return monthlySpec, nil
	}
	return "", customerr.InvalidInput("no schedule for period %q", period)
}
