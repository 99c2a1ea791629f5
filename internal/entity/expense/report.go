package expense

import "time"

// Summary holds a grand total and per-category totals over one set of
// expenses. TotalAmount always equals the sum of TotalByCategory.
type Summary struct {
	TotalAmount     float64            `json:"totalAmount"`
	TotalByCategory map[string]float64 `json:"totalByCategory"`
}

func (s Summary) Clone() Summary {
	byCategory := make(map[string]float64, len(s.TotalByCategory))
	for cat, amount := range s.TotalByCategory {
		byCategory[cat] = amount
	}
	return Summary{TotalAmount: s.TotalAmount, TotalByCategory: byCategory}
}

type Report struct {
	Period          Period             `json:"period"`
	GeneratedAt     time.Time          `json:"generatedAt"`
	TotalAmount     float64            `json:"totalAmount"`
	TotalByCategory map[string]float64 `json:"totalByCategory"`
}

func NewReport(period Period, generatedAt time.Time, summary Summary) Report {
	summary = summary.Clone()
	return Report{
		Period:          period,
		GeneratedAt:     generatedAt,
		TotalAmount:     summary.TotalAmount,
		TotalByCategory: summary.TotalByCategory,
	}
}

// Clone returns a copy that shares no map with the receiver.
func (r Report) Clone() Report {
	return NewReport(r.Period, r.GeneratedAt, r.Summary())
}

func (r Report) Summary() Summary {
	return Summary{TotalAmount: r.TotalAmount, TotalByCategory: r.TotalByCategory}
}
