package reports

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"max.ks1230/expense-reports/internal/entity/expense"
)

var baseTime = time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)

func randomExpenses(seed int64, n int) []expense.Expense {
	rnd := rand.New(rand.NewSource(seed))
	categories := []string{"Food", "Transport", "Internet", "Shopping", "Rent"}

	exps := make([]expense.Expense, 0, n)
	for i := 0; i < n; i++ {
		exps = append(exps, expense.Expense{
			ID:       int64(i + 1),
			Category: categories[rnd.Intn(len(categories))],
			Amount:   float64(rnd.Intn(100000)) / 100,
			Date:     baseTime.Add(-time.Duration(rnd.Intn(60*24)) * time.Hour),
		})
	}
	return exps
}

func sumValues(m map[string]float64) float64 {
	total := 0.0
	for _, v := range m {
		total += v
	}
	return total
}

func sumAmounts(exps []expense.Expense) float64 {
	total := 0.0
	for _, exp := range exps {
		total += exp.Amount
	}
	return total
}

func TestAggregate_Example(t *testing.T) {
	exps := []expense.Expense{
		{ID: 1, Category: "Food", Amount: 10.50, Date: baseTime.Add(-time.Hour)},
		{ID: 2, Category: "Food", Amount: 5.25, Date: baseTime.Add(-2 * time.Hour)},
		{ID: 3, Category: "Transport", Amount: 20.00, Date: baseTime.Add(-3 * time.Hour)},
	}

	got := Aggregate(FilterWindow(exps, WindowFor(expense.Daily, baseTime)))

	assert.Equal(t, 35.75, got.TotalAmount)
	assert.Equal(t, map[string]float64{"Food": 15.75, "Transport": 20.00}, got.TotalByCategory)
}

func TestAggregate_Empty(t *testing.T) {
	got := Aggregate(nil)

	assert.Equal(t, 0.0, got.TotalAmount)
	assert.NotNil(t, got.TotalByCategory)
	assert.Empty(t, got.TotalByCategory)
}

func TestAggregate_TotalMatchesCategories(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		exps := randomExpenses(seed, 200)
		got := Aggregate(exps)

		assert.InDelta(t, sumAmounts(exps), got.TotalAmount, 1e-6)
		assert.InDelta(t, got.TotalAmount, sumValues(got.TotalByCategory), 1e-6)
		for cat, amount := range got.TotalByCategory {
			assert.Greater(t, amount, 0.0, "category %s", cat)
		}
	}
}

func TestAggregate_OrderIndependent(t *testing.T) {
	exps := randomExpenses(7, 100)
	shuffled := append([]expense.Expense(nil), exps...)
	rand.New(rand.NewSource(42)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	a, b := Aggregate(exps), Aggregate(shuffled)

	assert.InDelta(t, a.TotalAmount, b.TotalAmount, 1e-6)
	assert.Len(t, b.TotalByCategory, len(a.TotalByCategory))
	for cat, amount := range a.TotalByCategory {
		assert.InDelta(t, amount, b.TotalByCategory[cat], 1e-6)
	}
}

func TestFilterWindow_UnboundedKeepsEverything(t *testing.T) {
	exps := randomExpenses(3, 50)

	assert.Equal(t, exps, FilterWindow(exps, Unbounded))
	assert.Equal(t, Aggregate(exps), Aggregate(FilterWindow(exps, Unbounded)))
}

func TestFilterWindow_Idempotent(t *testing.T) {
	exps := randomExpenses(5, 300)

	for _, p := range expense.Periods {
		w := WindowFor(p, baseTime)
		once := FilterWindow(exps, w)
		assert.Equal(t, once, FilterWindow(once, w), "period %s", p)
	}
}

func TestFilterWindow_InclusiveBounds(t *testing.T) {
	w := Window{Start: baseTime.Add(-time.Hour), End: baseTime}
	exps := []expense.Expense{
		{ID: 1, Date: w.Start.Add(-time.Nanosecond)},
		{ID: 2, Date: w.Start},
		{ID: 3, Date: baseTime.Add(-30 * time.Minute)},
		{ID: 4, Date: w.End},
		{ID: 5, Date: w.End.Add(time.Nanosecond)},
	}

	got := FilterWindow(exps, w)

	ids := make([]int64, 0, len(got))
	for _, exp := range got {
		ids = append(ids, exp.ID)
	}
	assert.Equal(t, []int64{2, 3, 4}, ids)
}

func TestFilterWindow_ComparesInstantsAcrossZones(t *testing.T) {
	moscow, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		t.Skip("tzdata not available")
	}
	w := Window{Start: baseTime.Add(-time.Hour), End: baseTime}
	exps := []expense.Expense{{ID: 1, Date: baseTime.In(moscow)}}

	assert.Len(t, FilterWindow(exps, w), 1)
}
