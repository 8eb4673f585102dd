package forecast

import (
	"math"
	"testing"
	"time"

	"github.com/andresuchdata/chainsight/internal/domain"
)

func day(n int) time.Time {
	return time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestBuildSeriesFillsGapsWithZero(t *testing.T) {
	sales := []domain.SalesRecord{
		{ProductID: "P0001", Date: day(0), QuantityOrdered: 3},
		{ProductID: "P0001", Date: day(0), QuantityOrdered: 2},
		{ProductID: "P0001", Date: day(4), QuantityOrdered: 7},
		{ProductID: "P0002", Date: day(2), QuantityOrdered: 99},
	}

	s := BuildSeries("P0001", sales)
	if s == nil {
		t.Fatal("expected a series")
	}
	want := []float64{5, 0, 0, 0, 7}
	if len(s.Quantity) != len(want) {
		t.Fatalf("series length = %d, want %d", len(s.Quantity), len(want))
	}
	for i, q := range want {
		if s.Quantity[i] != q {
			t.Errorf("Quantity[%d] = %v, want %v", i, s.Quantity[i], q)
		}
	}
	if !s.End().Equal(day(4)) {
		t.Errorf("End = %v, want %v", s.End(), day(4))
	}

	if got := BuildSeries("P0404", sales); got != nil {
		t.Errorf("unknown product should yield nil series")
	}
}

func TestSmoothMovingAverages(t *testing.T) {
	s := &Series{Quantity: []float64{1, 2, 3, 4}}
	s.Smooth(3, 3)

	wantSMA := []float64{1, 1.5, 2, 3}
	for i, w := range wantSMA {
		if math.Abs(s.SMA[i]-w) > 1e-12 {
			t.Errorf("SMA[%d] = %v, want %v", i, s.SMA[i], w)
		}
	}

	// alpha = 0.5 for span 3: 1, 1.5, 2.25, 3.125
	wantEWMA := []float64{1, 1.5, 2.25, 3.125}
	for i, w := range wantEWMA {
		if math.Abs(s.EWMA[i]-w) > 1e-12 {
			t.Errorf("EWMA[%d] = %v, want %v", i, s.EWMA[i], w)
		}
	}
}

func TestTopProductsStableOnTies(t *testing.T) {
	metrics := []domain.ProductMetrics{
		{ProductID: "P0003", TotalRevenue: 100},
		{ProductID: "P0001", TotalRevenue: 500},
		{ProductID: "P0002", TotalRevenue: 100},
	}
	got := TopProducts(metrics, 2)
	if len(got) != 2 || got[0] != "P0001" || got[1] != "P0003" {
		t.Errorf("TopProducts = %v, want [P0001 P0003]", got)
	}

	if got := TopProducts(metrics, 10); len(got) != 3 {
		t.Errorf("n beyond len should return all, got %d", len(got))
	}
}

func TestRunProducesFlatHorizon(t *testing.T) {
	// 70 days of constant demand 10: the exponential average settles at 10.
	var sales []domain.SalesRecord
	for i := 0; i < 70; i++ {
		sales = append(sales, domain.SalesRecord{ProductID: "P0001", Date: day(i), QuantityOrdered: 10})
	}
	metrics := []domain.ProductMetrics{{ProductID: "P0001", TotalRevenue: 1000}}

	points := Run(sales, metrics, DefaultOptions())
	if len(points) != 30 {
		t.Fatalf("got %d forecast points, want 30", len(points))
	}
	for i, p := range points {
		if p.ForecastedDemand != 10 || p.LowerBound != 8 || p.UpperBound != 12 {
			t.Fatalf("point %d = %v [%v, %v], want 10 [8, 12]", i, p.ForecastedDemand, p.LowerBound, p.UpperBound)
		}
		if !p.ForecastDate.Equal(day(70 + i)) {
			t.Fatalf("point %d date = %v, want %v", i, p.ForecastDate, day(70+i))
		}
	}
}

func TestRunSkipsShortHistory(t *testing.T) {
	var sales []domain.SalesRecord
	for i := 0; i < 60; i++ {
		sales = append(sales, domain.SalesRecord{ProductID: "P0001", Date: day(i), QuantityOrdered: 5})
	}
	metrics := []domain.ProductMetrics{{ProductID: "P0001", TotalRevenue: 1000}}

	// 60 observed days does not exceed the 60 day minimum.
	if points := Run(sales, metrics, DefaultOptions()); len(points) != 0 {
		t.Errorf("got %d points for short history, want 0", len(points))
	}
}

func TestSummarize(t *testing.T) {
	products := []domain.Product{{ProductID: "P0001", ProductName: "Widget", Category: "Food"}}
	var points []domain.ForecastPoint
	for i := 0; i < 30; i++ {
		points = append(points, domain.ForecastPoint{ProductID: "P0001", ForecastedDemand: 4.5})
	}

	summaries := Summarize(points, products)
	if len(summaries) != 1 {
		t.Fatalf("got %d summaries, want 1", len(summaries))
	}
	s := summaries[0]
	if s.Total30DayForecast != 135 || s.AvgDailyForecast != 4.5 {
		t.Errorf("summary = %v total %v avg, want 135 and 4.5", s.Total30DayForecast, s.AvgDailyForecast)
	}
	if s.ProductName != "Widget" || s.Category != "Food" {
		t.Errorf("product join missing: %q/%q", s.ProductName, s.Category)
	}
}
