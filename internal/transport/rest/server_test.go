package rest

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-reports/internal/entity/expense"
	"max.ks1230/expense-reports/internal/model/expenses"
	"max.ks1230/expense-reports/internal/model/messages/mock"
	"max.ks1230/expense-reports/internal/model/reports"
	"max.ks1230/expense-reports/internal/model/storage"
)

type testAddr string

func (a testAddr) Addr() string { return string(a) }

func newTestServer() (*Server, *storage.InMemStorage) {
	store := storage.NewInMemStorage(0)
	return NewServer(testAddr(":0"), expenses.NewService(store, nil), time.UTC), store
}

func do(s *Server, method, target string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	s.ServeHTTP(rr, httptest.NewRequest(method, target, nil))
	return rr
}

func Test_OnCreateExpense_ShouldReturnCreated(t *testing.T) {
	s, _ := newTestServer()

	rr := do(s, http.MethodPost, "/expenses?category=Food&amount=10.5&date=2024-03-10")

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t,
		`{"status":"success","data":{"id":1,"category":"Food","amount":10.5,"date":"2024-03-10T00:00:00Z"}}`,
		rr.Body.String())
}

func Test_OnCreateExpenseFromForm_ShouldReturnCreated(t *testing.T) {
	s, store := newTestServer()

	form := url.Values{"category": {"Transport"}, "amount": {"20"}, "date": {"10.03.2024"}}
	req := httptest.NewRequest(http.MethodPost, "/expenses", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	s.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	require.Len(t, store.Expenses(), 1)
	assert.Equal(t, "Transport", store.Expenses()[0].Category)
}

func Test_OnInvalidExpense_ShouldReturnBadRequest(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		message string
	}{
		{name: "missing amount", query: "category=Food&date=2024-03-10", message: "Missing required fields: category, amount, or date"},
		{name: "bad amount", query: "category=Food&amount=ten&date=2024-03-10", message: `cannot parse amount \"ten\"`},
		{name: "bad date", query: "category=Food&amount=1&date=tomorrow", message: `cannot parse date \"tomorrow\"`},
		{name: "negative amount", query: "category=Food&amount=-1&date=2024-03-10", message: "amount must not be negative, got -1"},
		{name: "amount near float max", query: "category=Food&amount=1.7e308&date=2024-03-10", message: "amount must not exceed 1e+12, got 1.7e+308"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, store := newTestServer()

			rr := do(s, http.MethodPost, "/expenses?"+tt.query)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.JSONEq(t, `{"status":"error","message":"`+tt.message+`"}`, rr.Body.String())
			assert.Empty(t, store.Expenses())
		})
	}
}

func Test_OnListExpenses_ShouldReturnStoredExpenses(t *testing.T) {
	s, store := newTestServer()
	store.AppendExpense("Food", 15.75, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))

	rr := do(s, http.MethodGet, "/expenses")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t,
		`{"status":"success","data":[{"id":1,"category":"Food","amount":15.75,"date":"2024-03-10T00:00:00Z"}]}`,
		rr.Body.String())
}

func Test_OnListExpensesWhenEmpty_ShouldReturnEmptyList(t *testing.T) {
	s, _ := newTestServer()

	rr := do(s, http.MethodGet, "/expenses")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"success","data":[]}`, rr.Body.String())
}

func Test_OnUnknownReportType_ShouldReturnBadRequest(t *testing.T) {
	s, _ := newTestServer()

	rr := do(s, http.MethodGet, "/reports/yearly")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"error"`)
	assert.Contains(t, rr.Body.String(), "Invalid report type. Use 'daily', 'weekly', or 'monthly'.")
}

func Test_OnGetReports_ShouldReturnGeneratedReports(t *testing.T) {
	s, store := newTestServer()
	at := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	store.AppendExpense("Food", 10, at.Add(-time.Hour))

	_, err := reports.NewGenerator(store, nil).Generate(context.Background(), expense.Daily, at)
	require.NoError(t, err)

	rr := do(s, http.MethodGet, "/reports/daily")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t,
		`{"status":"success","data":[{"period":"daily","generatedAt":"2024-03-11T00:00:00Z","totalAmount":10,"totalByCategory":{"Food":10}}]}`,
		rr.Body.String())

	rr = do(s, http.MethodGet, "/reports/weekly")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"success","data":[]}`, rr.Body.String())
}

func Test_OnAnalysisWithoutExpenses_ShouldReturnZeroTotals(t *testing.T) {
	s, _ := newTestServer()

	rr := do(s, http.MethodGet, "/expenses/analysis")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"success","data":{"totalAmount":0,"totalByCategory":{}}}`, rr.Body.String())
}

func Test_OnAnalysis_ShouldSumAllExpenses(t *testing.T) {
	s, store := newTestServer()
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	store.AppendExpense("Food", 10.5, day)
	store.AppendExpense("Food", 5.25, day)
	store.AppendExpense("Transport", 20, day)

	rr := do(s, http.MethodGet, "/expenses/analysis")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t,
		`{"status":"success","data":{"totalAmount":35.75,"totalByCategory":{"Food":15.75,"Transport":20}}}`,
		rr.Body.String())
}

func Test_OnServiceFailure_ShouldReturnInternalError(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	svc := mock.NewExpenseServiceMock(m)
	svc.CreateExpenseMock.Return(expense.Expense{}, errors.New("disk on fire"))
	s := NewServer(testAddr(":0"), svc, time.UTC)

	rr := do(s, http.MethodPost, "/expenses?category=Food&amount=1&date=2024-03-10")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"status":"error","message":"internal error"}`, rr.Body.String())
}

func Test_OnUnencodableAnalysis_ShouldReturnInternalError(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	svc := mock.NewExpenseServiceMock(m)
	svc.GetAnalysisMock.Return(expense.Summary{
		TotalAmount:     math.Inf(1),
		TotalByCategory: map[string]float64{"Food": math.Inf(1)},
	})
	s := NewServer(testAddr(":0"), svc, time.UTC)

	rr := do(s, http.MethodGet, "/expenses/analysis")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"status":"error","message":"internal error"}`, rr.Body.String())
}

func Test_OnHugeAmounts_ShouldKeepAnalysisFinite(t *testing.T) {
	s, store := newTestServer()

	for i := 0; i < 2; i++ {
		rr := do(s, http.MethodPost, "/expenses?category=Food&amount=1.7e308&date=2024-03-10")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	}
	require.Empty(t, store.Expenses())

	rr := do(s, http.MethodGet, "/expenses/analysis")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"success","data":{"totalAmount":0,"totalByCategory":{}}}`, rr.Body.String())
}

func Test_OnRequest_ShouldSetRequestID(t *testing.T) {
	s, _ := newTestServer()

	rr := do(s, http.MethodGet, "/expenses")
	assert.NotEmpty(t, rr.Header().Get(requestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/expenses", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rr = httptest.NewRecorder()
	s.ServeHTTP(rr, req)
	assert.Equal(t, "abc-123", rr.Header().Get(requestIDHeader))
}

func Test_OnWrongMethod_ShouldReturnMethodNotAllowed(t *testing.T) {
	s, _ := newTestServer()

	rr := do(s, http.MethodDelete, "/expenses")

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func Test_OnMetrics_ShouldExposeRequestHistogram(t *testing.T) {
	s, _ := newTestServer()
	do(s, http.MethodGet, "/expenses")

	rr := do(s, http.MethodGet, "/metrics")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "expenses_http_request_duration_seconds")
}

func Test_OnRunWithCancelledContext_ShouldShutDown(t *testing.T) {
	s, _ := newTestServer()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, s.Run(ctx))
}
