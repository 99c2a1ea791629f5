package messages

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"max.ks1230/expense-reports/internal/entity/expense"
)

const (
	commandParts = 2
	dateLayout   = "02.01.2006"
)

// parseCommand splits "/cmd arg" apart. Text without a leading slash is
// never a command, whatever its first word is.
func parseCommand(text string) (cmd, arg string) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", text
	}

	split := strings.SplitN(text, " ", commandParts)
	if len(split) == commandParts {
		return split[0], strings.TrimSpace(split[1])
	}
	return text, ""
}

func formatExpenses(exps []expense.Expense, loc *time.Location) string {
	res := make([]string, 0, len(exps))
	for _, exp := range exps {
		res = append(res, fmt.Sprintf("#%d %s: %.2f (%s)",
			exp.ID, exp.Category, exp.Amount, exp.Date.In(loc).Format(dateLayout)))
	}
	return strings.Join(res, "\n")
}

func formatSummary(summary expense.Summary) string {
	type categoryAmount struct {
		category string
		amount   float64
	}

	records := make([]categoryAmount, 0, len(summary.TotalByCategory))
	for cat, am := range summary.TotalByCategory {
		records = append(records, categoryAmount{cat, am})
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].amount == records[j].amount {
			return records[i].category < records[j].category
		}
		return records[i].amount > records[j].amount
	})

	res := make([]string, 0, len(records)+2)
	for _, rec := range records {
		res = append(res, fmt.Sprintf("%s: %.2f", rec.category, rec.amount))
	}
	res = append(res, "", fmt.Sprintf("Total: %.2f", summary.TotalAmount))
	return strings.Join(res, "\n")
}

func formatReport(report expense.Report, loc *time.Location) string {
	period := string(report.Period)
	if period != "" {
		period = strings.ToUpper(period[:1]) + period[1:]
	}
	header := fmt.Sprintf("%s report, %s", period, report.GeneratedAt.In(loc).Format("02.01.2006 15:04"))
	if len(report.TotalByCategory) == 0 {
		return header + "\n\nNo expenses in this period"
	}
	return header + "\n\n" + formatSummary(report.Summary())
}
