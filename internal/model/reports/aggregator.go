package reports

import (
	"max.ks1230/expense-reports/internal/entity/expense"
)

// Aggregate sums amounts overall and per category in a single pass.
// Categories without expenses are absent from the result.
func Aggregate(exps []expense.Expense) expense.Summary {
	byCategory := make(map[string]float64)
	total := 0.0
	for _, exp := range exps {
		byCategory[exp.Category] += exp.Amount
		total += exp.Amount
	}
	return expense.Summary{
		TotalAmount:     total,
		TotalByCategory: byCategory,
	}
}

// FilterWindow keeps the expenses dated inside w, preserving their order.
func FilterWindow(exps []expense.Expense, w Window) []expense.Expense {
	res := make([]expense.Expense, 0)
	for _, exp := range exps {
		if w.Contains(exp.Date) {
			res = append(res, exp)
		}
	}
	return res
}
