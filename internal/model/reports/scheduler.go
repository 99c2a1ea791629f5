package reports

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"max.ks1230/expense-reports/internal/logger"
)

// Job is run by the scheduler with the instant it fired at.
type Job func(ctx context.Context, firedAt time.Time) error

type scheduledJob struct {
	name     string
	id       cron.EntryID
	schedule cron.Schedule
	job      Job
}

// Scheduler runs registered jobs on cron schedules in one location.
// A run that is still going when its next trigger arrives makes that
// trigger skip. Failed and panicking runs are logged and counted.
type Scheduler struct {
	cron  *cron.Cron
	clock func() time.Time

	mu   sync.Mutex
	ctx  context.Context
	jobs []scheduledJob
}

func NewScheduler(location *time.Location) *Scheduler {
	if location == nil {
		location = time.UTC
	}
	log := cronLogger{}
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(location),
			cron.WithLogger(log),
			// Recover sits inside so a panicking run still frees the skip token
			cron.WithChain(cron.SkipIfStillRunning(log), cron.Recover(log)),
		),
		clock: func() time.Time { return time.Now().In(location) },
		ctx:   context.Background(),
	}
}

// EverySpec registers a job on a standard five-field cron spec.
func (s *Scheduler) EverySpec(name, spec string, job Job) error {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return errors.Wrapf(err, "parse schedule %q of %s", spec, name)
	}
	s.Every(name, schedule, job)
	return nil
}

// Every registers a job on any schedule. Jobs may be added after Start.
func (s *Scheduler) Every(name string, schedule cron.Schedule, job Job) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.cron.Schedule(schedule, cron.FuncJob(func() {
		s.runOnce(name, job)
	}))
	s.jobs = append(s.jobs, scheduledJob{name: name, id: id, schedule: schedule, job: job})
}

// Start begins firing jobs in the background. ctx is handed to every run.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	s.ctx = ctx
	jobs := len(s.jobs)
	s.mu.Unlock()

	s.cron.Start()
	logger.Info("Scheduler started", zap.Int("jobs", jobs))
}

// Shutdown stops the triggers and waits for running jobs to return.
func (s *Scheduler) Shutdown() {
	<-s.cron.Stop().Done()
	logger.Info("Scheduler stopped")
}

// Run starts the scheduler and blocks until ctx is done.
func (s *Scheduler) Run(ctx context.Context) error {
	s.Start(ctx)
	<-ctx.Done()
	s.Shutdown()
	return nil
}

func (s *Scheduler) runContext() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctx
}

func (s *Scheduler) runOnce(name string, job Job) {
	firedAt := s.clock()
	start := time.Now()

	failed := true
	// a panic still counts as a failed run before cron.Recover logs it
	defer func() {
		observeRun(name, time.Since(start), failed)
	}()

	err := job(s.runContext(), firedAt)
	failed = err != nil
	if err != nil {
		logger.Error("scheduled run failed", zap.String("job", name), zap.Error(err))
		return
	}
	logger.Info("scheduled run done", zap.String("job", name), zap.Time("firedAt", firedAt))
}

// cronLogger routes cron's own messages into the zap logger.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	logger.Debug("cron: "+msg, zap.Any("details", keysAndValues))
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	logger.Error("cron: "+msg, zap.Error(err), zap.Any("details", keysAndValues))
}
