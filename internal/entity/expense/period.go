package expense

import (
	"strings"

	"max.ks1230/expense-reports/internal/model/customerr"
)

// Period selects both the report cadence and the window width.
type Period string

const (
	Daily   Period = "daily"
	Weekly  Period = "weekly"
	Monthly Period = "monthly"
)

var Periods = []Period{Daily, Weekly, Monthly}

func (p Period) Valid() bool {
	switch p {
	case Daily, Weekly, Monthly:
		return true
	}
	return false
}

func ParsePeriod(raw string) (Period, error) {
	p := Period(strings.ToLower(strings.TrimSpace(raw)))
	if !p.Valid() {
		return "", customerr.InvalidInput("Invalid report type. Use 'daily', 'weekly', or 'monthly'.")
	}
	return p, nil
}
