package expenses

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-reports/internal/entity/expense"
	"max.ks1230/expense-reports/internal/model/customerr"
	"max.ks1230/expense-reports/internal/model/expenses/mock"
	"max.ks1230/expense-reports/internal/model/storage"
)

var baseTime = time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

func Test_OnCreateExpense_ShouldStoreWithIncreasingIDs(t *testing.T) {
	ctx := context.Background()
	s := NewService(storage.NewInMemStorage(0), nil)

	first, err := s.CreateExpense(ctx, expense.Draft{Category: "Food", Amount: 10.5, Date: baseTime})
	require.NoError(t, err)
	second, err := s.CreateExpense(ctx, expense.Draft{Category: "Transport", Amount: 20, Date: baseTime})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, []expense.Expense{first, second}, s.ListExpenses(ctx))
}

func Test_OnInvalidDraft_ShouldNotStore(t *testing.T) {
	ctx := context.Background()
	s := NewService(storage.NewInMemStorage(0), nil)

	drafts := []expense.Draft{
		{Category: "", Amount: 1, Date: baseTime},
		{Category: "Food", Amount: -5, Date: baseTime},
		{Category: "Food", Amount: math.Inf(1), Date: baseTime},
		{Category: "Food", Amount: 1},
	}
	for _, d := range drafts {
		_, err := s.CreateExpense(ctx, d)
		assert.True(t, customerr.IsInvalidInput(err), "draft %+v", d)
	}
	assert.Empty(t, s.ListExpenses(ctx))
}

func Test_OnCreateExpense_ShouldNotMutateReturnedExpenses(t *testing.T) {
	ctx := context.Background()
	s := NewService(storage.NewInMemStorage(0), nil)
	created, err := s.CreateExpense(ctx, expense.Draft{Category: "Food", Amount: 1, Date: baseTime})
	require.NoError(t, err)
	listed := s.ListExpenses(ctx)

	_, err = s.CreateExpense(ctx, expense.Draft{Category: "Rent", Amount: 900, Date: baseTime})
	require.NoError(t, err)

	assert.Equal(t, expense.Expense{ID: 1, Category: "Food", Amount: 1, Date: baseTime}, created)
	assert.Len(t, listed, 1)
}

func Test_OnGetReports_ShouldReturnStoredReports(t *testing.T) {
	ctx := context.Background()
	store := storage.NewInMemStorage(0)
	report := expense.NewReport(expense.Weekly, baseTime, expense.Summary{TotalAmount: 3, TotalByCategory: map[string]float64{"Food": 3}})
	store.AppendReport(report)
	s := NewService(store, nil)

	got, err := s.GetReports(ctx, "weekly")
	require.NoError(t, err)
	assert.Equal(t, []expense.Report{report}, got)

	got, err = s.GetReports(ctx, "daily")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func Test_OnGetReportsForUnknownPeriod_ShouldReturnInvalidInput(t *testing.T) {
	got, err := NewService(storage.NewInMemStorage(0), nil).GetReports(context.Background(), "yearly")

	assert.True(t, customerr.IsInvalidInput(err))
	assert.Nil(t, got)
}

func Test_OnGetAnalysisOverEmptyStore_ShouldReturnZero(t *testing.T) {
	got := NewService(storage.NewInMemStorage(0), nil).GetAnalysis(context.Background())

	assert.Equal(t, 0.0, got.TotalAmount)
	assert.Equal(t, map[string]float64{}, got.TotalByCategory)
}

func Test_OnGetAnalysis_ShouldAggregateAllTime(t *testing.T) {
	ctx := context.Background()
	store := storage.NewInMemStorage(0)
	store.AppendExpense("Food", 10.50, baseTime)
	store.AppendExpense("Food", 5.25, baseTime.AddDate(-2, 0, 0))
	store.AppendExpense("Transport", 20.00, baseTime.AddDate(0, 0, -40))
	s := NewService(store, nil)

	got := s.GetAnalysis(ctx)

	assert.Equal(t, 35.75, got.TotalAmount)
	assert.Equal(t, map[string]float64{"Food": 15.75, "Transport": 20.00}, got.TotalByCategory)
	for _, p := range expense.Periods {
		assert.Empty(t, store.Reports(p))
	}
}

func Test_OnCachedAnalysis_ShouldSkipAggregation(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	store := storage.NewInMemStorage(0)
	store.AppendExpense("Food", 1, baseTime)
	cache := mock.NewAnalysisCacheMock(m)
	cached := expense.Summary{TotalAmount: 1, TotalByCategory: map[string]float64{"Food": 1}}
	cache.GetAnalysisMock.
		Expect(store.ID() + ":1").
		Return(cached, nil)

	got := NewService(store, cache).GetAnalysis(context.Background())

	assert.Equal(t, cached, got)
}

func Test_OnCacheMiss_ShouldAggregateAndCache(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	store := storage.NewInMemStorage(0)
	store.AppendExpense("Food", 2, baseTime)
	store.AppendExpense("Rent", 3, baseTime)
	cache := mock.NewAnalysisCacheMock(m)
	want := expense.Summary{TotalAmount: 5, TotalByCategory: map[string]float64{"Food": 2, "Rent": 3}}

	cache.GetAnalysisMock.
		Expect(store.ID()+":2").
		Return(expense.Summary{}, errors.New("cache miss"))
	cache.CacheAnalysisMock.
		Expect(store.ID()+":2", want).
		Return(errors.New("memcached down"))

	got := NewService(store, cache).GetAnalysis(context.Background())

	assert.Equal(t, want, got)
}

func Test_OnStoresSharingCache_ShouldNotServeEachOthersAnalysis(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	entries := map[string]expense.Summary{}
	cache := mock.NewAnalysisCacheMock(m)
	cache.GetAnalysisMock.Set(func(version string) (expense.Summary, error) {
		summary, ok := entries[version]
		if !ok {
			return expense.Summary{}, errors.New("cache miss")
		}
		return summary, nil
	})
	cache.CacheAnalysisMock.Set(func(version string, summary expense.Summary) error {
		entries[version] = summary
		return nil
	})

	storeA := storage.NewInMemStorage(0)
	storeA.AppendExpense("Food", 10, baseTime)
	storeB := storage.NewInMemStorage(0)
	storeB.AppendExpense("Rent", 900, baseTime)
	ctx := context.Background()

	gotA := NewService(storeA, cache).GetAnalysis(ctx)
	gotB := NewService(storeB, cache).GetAnalysis(ctx)

	assert.Equal(t, expense.Summary{TotalAmount: 10, TotalByCategory: map[string]float64{"Food": 10}}, gotA)
	assert.Equal(t, expense.Summary{TotalAmount: 900, TotalByCategory: map[string]float64{"Rent": 900}}, gotB)
	assert.Len(t, entries, 2)
}

func Test_OnNewExpense_ShouldMissStaleCachedAnalysis(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	store := storage.NewInMemStorage(0)
	store.AppendExpense("Food", 4, baseTime)
	cache := mock.NewAnalysisCacheMock(m)
	stale := expense.Summary{TotalAmount: 4, TotalByCategory: map[string]float64{"Food": 4}}
	want := expense.Summary{TotalAmount: 6, TotalByCategory: map[string]float64{"Food": 6}}

	cache.GetAnalysisMock.
		When(store.ID() + ":1").Then(stale, nil).
		GetAnalysisMock.
		When(store.ID() + ":2").Then(expense.Summary{}, errors.New("cache miss"))
	cache.CacheAnalysisMock.
		Expect(store.ID()+":2", want).
		Return(nil)
	s := NewService(store, cache)
	ctx := context.Background()

	assert.Equal(t, stale, s.GetAnalysis(ctx))
	_, err := s.CreateExpense(ctx, expense.Draft{Category: "Food", Amount: 2, Date: baseTime})
	require.NoError(t, err)
	assert.Equal(t, want, s.GetAnalysis(ctx))
}
