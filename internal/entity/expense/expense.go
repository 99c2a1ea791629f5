package expense

import (
	"math"
	"strconv"
	"strings"
	"time"

	"max.ks1230/expense-reports/internal/model/customerr"
)

// Expense is a stored spending event. It is a value type and is never
// modified after the store assigns its ID.
type Expense struct {
	ID       int64     `json:"id"`
	Category string    `json:"category"`
	Amount   float64   `json:"amount"`
	Date     time.Time `json:"date"`
}

// MaxAmount bounds a single expense so that any realistic number of them
// still sums to a finite total.
const MaxAmount = 1e12

// Draft is a validated-to-be submission that has no identity yet.
type Draft struct {
	Category string
	Amount   float64
	Date     time.Time
}

func (d Draft) Validate() error {
	if strings.TrimSpace(d.Category) == "" {
		return customerr.InvalidInput("category must not be empty")
	}
	if math.IsNaN(d.Amount) || math.IsInf(d.Amount, 0) {
		return customerr.InvalidInput("amount must be a finite number")
	}
	if d.Amount < 0 {
		return customerr.InvalidInput("amount must not be negative, got %v", d.Amount)
	}
	if d.Amount > MaxAmount {
		return customerr.InvalidInput("amount must not exceed %v, got %v", MaxAmount, d.Amount)
	}
	if d.Date.IsZero() {
		return customerr.InvalidInput("date must be set")
	}
	return nil
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02.01.2006",
}

// ParseDate accepts RFC3339 timestamps, ISO dates with or without a clock
// time, and dd.mm.yyyy. Values without an offset are read in loc.
func ParseDate(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, customerr.InvalidInput("cannot parse date %q", raw)
}

// ParseDraft turns raw request fields into a checked Draft.
func ParseDraft(category, amount, date string, loc *time.Location) (Draft, error) {
	category = strings.TrimSpace(category)
	amount = strings.TrimSpace(amount)
	if category == "" || amount == "" || strings.TrimSpace(date) == "" {
		return Draft{}, customerr.InvalidInput("Missing required fields: category, amount, or date")
	}

	value, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return Draft{}, customerr.InvalidInput("cannot parse amount %q", amount)
	}
	when, err := ParseDate(date, loc)
	if err != nil {
		return Draft{}, err
	}

	d := Draft{Category: category, Amount: value, Date: when}
	return d, d.Validate()
}
