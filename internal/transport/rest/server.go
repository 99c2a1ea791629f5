package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"max.ks1230/expense-reports/internal/entity/expense"
	"max.ks1230/expense-reports/internal/logger"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

type ExpenseService interface {
	CreateExpense(ctx context.Context, draft expense.Draft) (expense.Expense, error)
	ListExpenses(ctx context.Context) []expense.Expense
	GetReports(ctx context.Context, periodName string) ([]expense.Report, error)
	GetAnalysis(ctx context.Context) expense.Summary
}

type addrGetter interface {
	Addr() string
}

type Server struct {
	server   *http.Server
	expenses ExpenseService
	location *time.Location
}

func NewServer(conf addrGetter, expenses ExpenseService, location *time.Location) *Server {
	s := &Server{
		expenses: expenses,
		location: location,
	}

	mux := http.NewServeMux()
	s.route(mux, "POST /expenses", s.handleCreateExpense)
	s.route(mux, "GET /expenses", s.handleListExpenses)
	s.route(mux, "GET /reports/{type}", s.handleGetReports)
	s.route(mux, "GET /expenses/analysis", s.handleGetAnalysis)
	mux.Handle("GET /metrics", promhttp.Handler())

	s.server = &http.Server{
		Addr:              conf.Addr(),
		Handler:           withRequestID(mux),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return s
}

func (s *Server) route(mux *http.ServeMux, pattern string, h http.HandlerFunc) {
	mux.Handle(pattern, instrument(pattern, h))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.server.Handler.ServeHTTP(w, r)
}

// Run serves until ctx is done, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", zap.String("addr", s.server.Addr))
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "listen and serve")
	case <-ctx.Done():
	}

	logger.Info("HTTP server shutdown - start")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown http server")
	}
	logger.Info("HTTP server shutdown - end")
	return nil
}
