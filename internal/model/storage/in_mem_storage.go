package storage

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"max.ks1230/expense-reports/internal/entity/expense"
)

// InMemStorage keeps expenses and generated reports in process memory.
// Appends are serialized; reads return snapshot copies.
type InMemStorage struct {
	id         string
	mu         sync.RWMutex
	expenses   []expense.Expense
	reports    map[expense.Period][]expense.Report
	maxReports int
}

// NewInMemStorage creates an empty storage. maxReports bounds the reports
// kept per period, 0 keeps every report.
func NewInMemStorage(maxReports int) *InMemStorage {
	reports := make(map[expense.Period][]expense.Report, len(expense.Periods))
	for _, p := range expense.Periods {
		reports[p] = make([]expense.Report, 0)
	}
	return &InMemStorage{
		id:         uuid.NewString(),
		expenses:   make([]expense.Expense, 0),
		reports:    reports,
		maxReports: maxReports,
	}
}

// ID tells this storage apart from any other, including one in a
// restarted process.
func (s *InMemStorage) ID() string {
	return s.id
}

func (s *InMemStorage) AppendExpense(category string, amount float64, date time.Time) expense.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()

	exp := expense.Expense{
		ID:       int64(len(s.expenses)) + 1,
		Category: category,
		Amount:   amount,
		Date:     date,
	}
	s.expenses = append(s.expenses, exp)
	storedExpenses.Set(float64(len(s.expenses)))
	return exp
}

func (s *InMemStorage) Expenses() []expense.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]expense.Expense, len(s.expenses))
	copy(res, s.expenses)
	return res
}

func (s *InMemStorage) ExpensesCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.expenses)
}

func (s *InMemStorage) AppendReport(report expense.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reps := append(s.reports[report.Period], report.Clone())
	if s.maxReports > 0 && len(reps) > s.maxReports {
		reps = append([]expense.Report(nil), reps[len(reps)-s.maxReports:]...)
	}
	s.reports[report.Period] = reps
}

func (s *InMemStorage) Reports(period expense.Period) []expense.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.reports[period]
	res := make([]expense.Report, 0, len(stored))
	for _, rep := range stored {
		res = append(res, rep.Clone())
	}
	return res
}
