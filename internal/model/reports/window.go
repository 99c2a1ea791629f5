package reports

import (
	"fmt"
	"time"

	"github.com/jinzhu/now"
	"max.ks1230/expense-reports/internal/entity/expense"
)

// Window is an inclusive [Start, End] range of instants.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Unbounded matches every expense.
var Unbounded = Window{
	Start: time.Unix(-1<<62, 0),
	End:   time.Unix(1<<62, 0),
}

// WindowFor returns the window ending at `at` that a report of the given
// period covers. Periods other than daily, weekly and monthly panic.
func WindowFor(period expense.Period, at time.Time) Window {
	var start time.Time
	switch period {
	case expense.Daily:
		start = at.AddDate(0, 0, -1)
	case expense.Weekly:
		start = at.AddDate(0, 0, -7)
	case expense.Monthly:
		start = monthBefore(at)
	default:
		panic(fmt.Sprintf("reports: no window for period %q", period))
	}
	return Window{Start: start, End: at}
}

// monthBefore steps back one calendar month keeping the clock time. When the
// previous month is shorter, the day clamps to its last day (Mar 31 -> Feb 29).
func monthBefore(t time.Time) time.Time {
	prevMonth := now.With(t).BeginningOfMonth().AddDate(0, -1, 0)
	lastDay := now.With(prevMonth).EndOfMonth().Day()

	day := t.Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(prevMonth.Year(), prevMonth.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
