// Package forecast builds smoothed daily demand series and flat 30 day
// demand projections for the top revenue products.
package forecast

import (
	"sort"
	"time"

	"github.com/andresuchdata/chainsight/internal/domain"
	"github.com/andresuchdata/chainsight/internal/stats"
)

// Options controls the forecasting run.
type Options struct {
	TopN        int // products selected by total revenue
	MinHistory  int // minimum observed days, exclusive
	HorizonDays int
	SMAWindow   int
	EWMASpan    int
}

// DefaultOptions matches the calibration the analytics team signed off on.
func DefaultOptions() Options {
	return Options{TopN: 5, MinHistory: 60, HorizonDays: 30, SMAWindow: 7, EWMASpan: 7}
}

// Series is a dense daily demand series for one product. Days with no
// transactions hold zero demand.
type Series struct {
	ProductID string
	Start     time.Time
	Quantity  []float64
	SMA       []float64
	EWMA      []float64
}

// End returns the date of the last observation.
func (s *Series) End() time.Time {
	return s.Start.AddDate(0, 0, len(s.Quantity)-1)
}

// BuildSeries collapses a product's transactions into a dense daily demand
// series spanning the first to the last observed date.
func BuildSeries(productID string, sales []domain.SalesRecord) *Series {
	daily := make(map[time.Time]float64)
	var first, last time.Time
	for _, r := range sales {
		if r.ProductID != productID {
			continue
		}
		day := r.Date.Truncate(24 * time.Hour)
		daily[day] += float64(r.QuantityOrdered)
		if first.IsZero() || day.Before(first) {
			first = day
		}
		if day.After(last) {
			last = day
		}
	}
	if len(daily) == 0 {
		return nil
	}

	days := int(last.Sub(first).Hours()/24) + 1
	s := &Series{ProductID: productID, Start: first, Quantity: make([]float64, days)}
	for day, qty := range daily {
		s.Quantity[int(day.Sub(first).Hours()/24)] = qty
	}
	return s
}

// Smooth fills in the moving averages. The simple average uses a trailing
// window that grows from one observation at the start of the series; the
// exponential average is the standard recursive form with alpha 2/(span+1).
func (s *Series) Smooth(window, span int) {
	s.SMA = make([]float64, len(s.Quantity))
	var windowSum float64
	for i, q := range s.Quantity {
		windowSum += q
		n := window
		if i+1 < window {
			n = i + 1
		} else if i >= window {
			windowSum -= s.Quantity[i-window]
		}
		s.SMA[i] = windowSum / float64(n)
	}

	s.EWMA = make([]float64, len(s.Quantity))
	alpha := 2.0 / (float64(span) + 1)
	for i, q := range s.Quantity {
		if i == 0 {
			s.EWMA[i] = q
			continue
		}
		s.EWMA[i] = alpha*q + (1-alpha)*s.EWMA[i-1]
	}
}

// TopProducts returns the IDs of the n products with the highest total
// revenue, ties broken by original metric order.
func TopProducts(metrics []domain.ProductMetrics, n int) []string {
	sorted := make([]domain.ProductMetrics, len(metrics))
	copy(sorted, metrics)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalRevenue > sorted[j].TotalRevenue
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	ids := make([]string, 0, n)
	for _, m := range sorted[:n] {
		ids = append(ids, m.ProductID)
	}
	return ids
}

// Run forecasts the top revenue products. Products whose observed span does
// not exceed the minimum history are skipped. The projection is flat: the
// final exponential average carried forward for the whole horizon, with a
// fixed 80 to 120 percent band.
func Run(sales []domain.SalesRecord, metrics []domain.ProductMetrics, opts Options) []domain.ForecastPoint {
	var points []domain.ForecastPoint
	for _, id := range TopProducts(metrics, opts.TopN) {
		s := BuildSeries(id, sales)
		if s == nil || len(s.Quantity) <= opts.MinHistory {
			continue
		}
		s.Smooth(opts.SMAWindow, opts.EWMASpan)

		level := stats.Round(s.EWMA[len(s.EWMA)-1], 1)
		lower := stats.Round(level*0.80, 1)
		upper := stats.Round(level*1.20, 1)
		for d := 1; d <= opts.HorizonDays; d++ {
			points = append(points, domain.ForecastPoint{
				ProductID:        id,
				ForecastDate:     s.End().AddDate(0, 0, d),
				ForecastedDemand: level,
				LowerBound:       lower,
				UpperBound:       upper,
			})
		}
	}
	return points
}

// Summarize rolls the forecast points up per product for the dashboard.
func Summarize(points []domain.ForecastPoint, products []domain.Product) []domain.ForecastSummary {
	type acc struct {
		total float64
		count int
	}
	byProduct := make(map[string]*acc)
	var order []string
	for _, p := range points {
		a := byProduct[p.ProductID]
		if a == nil {
			a = &acc{}
			byProduct[p.ProductID] = a
			order = append(order, p.ProductID)
		}
		a.total += p.ForecastedDemand
		a.count++
	}

	productByID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		productByID[p.ProductID] = p
	}

	summaries := make([]domain.ForecastSummary, 0, len(order))
	for _, id := range order {
		a := byProduct[id]
		s := domain.ForecastSummary{
			ProductID:          id,
			Total30DayForecast: stats.Round(a.total, 1),
			AvgDailyForecast:   stats.Round(a.total/float64(a.count), 1),
		}
		if p, ok := productByID[id]; ok {
			s.ProductName = p.ProductName
			s.Category = p.Category
		}
		summaries = append(summaries, s)
	}
	return summaries
}
