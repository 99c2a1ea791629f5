package reports

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-reports/internal/entity/expense"
	"max.ks1230/expense-reports/internal/logger"
	"max.ks1230/expense-reports/internal/model/customerr"
)

type reportsStorage interface {
	Expenses() []expense.Expense
	AppendReport(report expense.Report)
}

// ReportPublisher forwards generated reports outside the process.
//
//go:generate minimock -i ReportPublisher -o ./mock/ -s _mock.go
type ReportPublisher interface {
	PublishReport(ctx context.Context, report expense.Report) error
}

type Generator struct {
	storage   reportsStorage
	publisher ReportPublisher
}

// NewGenerator creates a generator. publisher may be nil.
func NewGenerator(storage reportsStorage, publisher ReportPublisher) *Generator {
	return &Generator{
		storage:   storage,
		publisher: publisher,
	}
}

// Generate aggregates the expenses inside the period's window ending at
// `at`, stores the report and publishes it. A publish failure does not
// undo the stored report.
func (g *Generator) Generate(ctx context.Context, period expense.Period, at time.Time) (expense.Report, error) {
	logger.Info("Generate - start", zap.String("period", string(period)), zap.Time("at", at))
	defer logger.Info("Generate - end", zap.String("period", string(period)))

	span, ctx := opentracing.StartSpanFromContext(ctx, "generateReport")
	defer span.Finish()
	span.SetTag("period", string(period))

	if !period.Valid() {
		ext.Error.Set(span, true)
		return expense.Report{}, errors.Wrap(customerr.InvalidInput("unknown report period %q", period), "generate report")
	}

	window := WindowFor(period, at)
	subset := FilterWindow(g.storage.Expenses(), window)
	report := expense.NewReport(period, at, Aggregate(subset))
	g.storage.AppendReport(report)

	span.SetTag("expenses", len(subset))
	logger.Info("report stored",
		zap.String("period", string(period)),
		zap.Int("expenses", len(subset)),
		zap.Float64("total", report.TotalAmount),
	)

	if g.publisher != nil {
		if err := g.publisher.PublishReport(ctx, report.Clone()); err != nil {
			ext.Error.Set(span, true)
			publishFailures.WithLabelValues(string(period)).Inc()
			logger.Error("failed to publish report", zap.String("period", string(period)), zap.Error(err))
		}
	}
	return report, nil
}

type scheduleConfig interface {
	WeekStart() time.Weekday
}

// ScheduleReports binds one calendar trigger per period to the generator.
// Triggers fire in the scheduler's location.
func ScheduleReports(s *Scheduler, g *Generator, config scheduleConfig) error {
	for _, p := range expense.Periods {
		period := p
		spec, err := SpecFor(period, config.WeekStart())
		if err != nil {
			return errors.Wrap(err, "schedule reports")
		}
		err = s.EverySpec(string(period), spec, func(ctx context.Context, firedAt time.Time) error {
			_, err := g.Generate(ctx, period, firedAt)
			return err
		})
		if err != nil {
			return errors.Wrap(err, "schedule reports")
		}
	}
	return nil
}
