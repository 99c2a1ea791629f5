package expenses

import (
	"context"
	"strconv"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-reports/internal/entity/expense"
	"max.ks1230/expense-reports/internal/logger"
	"max.ks1230/expense-reports/internal/model/reports"
)

type expensesStorage interface {
	ID() string
	AppendExpense(category string, amount float64, date time.Time) expense.Expense
	Expenses() []expense.Expense
	ExpensesCount() int
	Reports(period expense.Period) []expense.Report
}

// AnalysisCache memoizes the all-time analysis. version names one storage
// and its expense count, so an entry never serves another storage or an
// older state of this one.
//
//go:generate minimock -i AnalysisCache -o ./mock/ -s _mock.go
type AnalysisCache interface {
	GetAnalysis(version string) (expense.Summary, error)
	CacheAnalysis(version string, summary expense.Summary) error
}

// Service exposes the operations that request layers wrap.
type Service struct {
	storage expensesStorage
	cache   AnalysisCache
}

// NewService creates the service. cache may be nil.
func NewService(storage expensesStorage, cache AnalysisCache) *Service {
	return &Service{
		storage: storage,
		cache:   cache,
	}
}

func (s *Service) CreateExpense(ctx context.Context, draft expense.Draft) (expense.Expense, error) {
	span, _ := opentracing.StartSpanFromContext(ctx, "createExpense")
	defer span.Finish()

	if err := draft.Validate(); err != nil {
		ext.Error.Set(span, true)
		return expense.Expense{}, errors.Wrap(err, "create expense")
	}

	exp := s.storage.AppendExpense(draft.Category, draft.Amount, draft.Date)
	logger.Info("expense stored",
		zap.Int64("id", exp.ID),
		zap.String("category", exp.Category),
		zap.Float64("amount", exp.Amount),
	)
	return exp, nil
}

func (s *Service) ListExpenses(ctx context.Context) []expense.Expense {
	span, _ := opentracing.StartSpanFromContext(ctx, "listExpenses")
	defer span.Finish()

	return s.storage.Expenses()
}

// GetReports returns the stored reports of one period in generation order.
// Unknown periods are an InvalidInput error, never an empty list.
func (s *Service) GetReports(ctx context.Context, periodName string) ([]expense.Report, error) {
	span, _ := opentracing.StartSpanFromContext(ctx, "getReports")
	defer span.Finish()
	span.SetTag("period", periodName)

	period, err := expense.ParsePeriod(periodName)
	if err != nil {
		ext.Error.Set(span, true)
		return nil, errors.Wrap(err, "get reports")
	}
	return s.storage.Reports(period), nil
}

// GetAnalysis aggregates every stored expense. Nothing is stored.
func (s *Service) GetAnalysis(ctx context.Context) expense.Summary {
	span, _ := opentracing.StartSpanFromContext(ctx, "getAnalysis")
	defer span.Finish()

	if s.cache == nil {
		return reports.Aggregate(reports.FilterWindow(s.storage.Expenses(), reports.Unbounded))
	}

	if cached, err := s.cache.GetAnalysis(s.analysisVersion(s.storage.ExpensesCount())); err == nil {
		span.SetTag("cached", true)
		return cached
	}

	exps := s.storage.Expenses()
	summary := reports.Aggregate(reports.FilterWindow(exps, reports.Unbounded))
	if err := s.cache.CacheAnalysis(s.analysisVersion(len(exps)), summary); err != nil {
		logger.Warn("failed to cache analysis", zap.Error(err))
	}
	return summary
}

func (s *Service) analysisVersion(count int) string {
	return s.storage.ID() + ":" + strconv.Itoa(count)
}
