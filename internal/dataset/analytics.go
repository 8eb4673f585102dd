package dataset

import (
	"github.com/andresuchdata/chainsight/internal/domain"
	"github.com/andresuchdata/chainsight/internal/table"
)

// Analytics stage artifact names.
const (
	FileForecasts         = "demand_forecasts_30days.csv"
	FileAnomalies         = "inventory_anomalies.csv"
	FileRiskScores        = "stockout_risk_scores.csv"
	FileInventoryAnalyzed = "inventory_with_anomalies.csv"
)

var forecastColumns = []string{
	"product_id", "forecast_date", "forecasted_demand", "lower_bound", "upper_bound",
}

// SaveForecasts persists the 30 day demand forecasts.
func (s *Store) SaveForecasts(points []domain.ForecastPoint) error {
	t := table.New("demand_forecasts", forecastColumns)
	for _, p := range points {
		t.Append([]string{
			p.ProductID, formatDate(p.ForecastDate),
			formatFloat(p.ForecastedDemand), formatFloat(p.LowerBound), formatFloat(p.UpperBound),
		})
	}
	return t.WriteCSV(s.AnalyticsPath(FileForecasts))
}

// LoadForecasts reads the demand forecasts back. A missing forecast file is
// not an error for downstream stages; callers use Exists to decide.
func (s *Store) LoadForecasts() ([]domain.ForecastPoint, error) {
	t, err := table.ReadCSV(s.AnalyticsPath(FileForecasts))
	if err != nil {
		return nil, err
	}
	if err := t.Require(forecastColumns...); err != nil {
		return nil, err
	}

	points := make([]domain.ForecastPoint, 0, t.Len())
	for i := range t.Rows {
		points = append(points, domain.ForecastPoint{
			ProductID:        t.Get(i, "product_id"),
			ForecastDate:     t.Date(i, "forecast_date"),
			ForecastedDemand: t.Float(i, "forecasted_demand"),
			LowerBound:       t.Float(i, "lower_bound"),
			UpperBound:       t.Float(i, "upper_bound"),
		})
	}
	return points, nil
}

// HasForecasts reports whether the forecast artifact was produced.
func (s *Store) HasForecasts() bool {
	return Exists(s.AnalyticsPath(FileForecasts))
}

// SaveAnomalies persists the flagged snapshots and the full snapshot set
// with the is_anomaly column filled in.
func (s *Store) SaveAnomalies(all, flagged []domain.InventorySnapshot) error {
	t := table.New("inventory_anomalies", enrichedInventoryColumns)
	for _, r := range flagged {
		t.Append(inventoryRecord(r))
	}
	if err := t.WriteCSV(s.AnalyticsPath(FileAnomalies)); err != nil {
		return err
	}
	return s.SaveEnrichedInventory(all, s.AnalyticsPath(FileInventoryAnalyzed))
}

// LoadAnomalies reads the flagged snapshots back.
func (s *Store) LoadAnomalies() ([]domain.InventorySnapshot, error) {
	return s.LoadEnrichedInventory(s.AnalyticsPath(FileAnomalies))
}

// LoadAnalyzedInventory reads the full snapshot set with anomaly flags.
func (s *Store) LoadAnalyzedInventory() ([]domain.InventorySnapshot, error) {
	return s.LoadEnrichedInventory(s.AnalyticsPath(FileInventoryAnalyzed))
}

var riskScoreColumns = []string{
	"product_id", "avg_demand", "demand_std", "stockout_count", "transaction_count",
	"current_stock", "lead_time_days", "demand_volatility", "historical_stockout_rate",
	"days_of_stock", "stockout_risk_score", "risk_category", "product_name", "category",
}

// SaveRiskScores persists the composite risk assessment.
func (s *Store) SaveRiskScores(scores []domain.RiskScore) error {
	t := table.New("stockout_risk_scores", riskScoreColumns)
	for _, r := range scores {
		t.Append([]string{
			r.ProductID, formatFloat(r.AvgDemand), formatFloat(r.DemandStd),
			formatInt(r.StockoutCount), formatInt(r.TransactionCount),
			formatFloat(r.CurrentStock), formatInt(r.LeadTimeDays),
			formatFloat(r.DemandVolatility), formatFloat(r.HistoricalStockoutRate),
			formatFloat(r.DaysOfStock), formatFloat(r.StockoutRiskScore),
			r.RiskCategory, r.ProductName, r.Category,
		})
	}
	return t.WriteCSV(s.AnalyticsPath(FileRiskScores))
}

// LoadRiskScores reads the composite risk assessment back.
func (s *Store) LoadRiskScores() ([]domain.RiskScore, error) {
	t, err := table.ReadCSV(s.AnalyticsPath(FileRiskScores))
	if err != nil {
		return nil, err
	}
	if err := t.Require(riskScoreColumns...); err != nil {
		return nil, err
	}

	scores := make([]domain.RiskScore, 0, t.Len())
	for i := range t.Rows {
		scores = append(scores, domain.RiskScore{
			ProductID:              t.Get(i, "product_id"),
			AvgDemand:              t.Float(i, "avg_demand"),
			DemandStd:              t.Float(i, "demand_std"),
			StockoutCount:          t.Int(i, "stockout_count"),
			TransactionCount:       t.Int(i, "transaction_count"),
			CurrentStock:           t.Float(i, "current_stock"),
			LeadTimeDays:           t.Int(i, "lead_time_days"),
			DemandVolatility:       t.Float(i, "demand_volatility"),
			HistoricalStockoutRate: t.Float(i, "historical_stockout_rate"),
			DaysOfStock:            t.Float(i, "days_of_stock"),
			StockoutRiskScore:      t.Float(i, "stockout_risk_score"),
			RiskCategory:           t.Get(i, "risk_category"),
			ProductName:            t.Get(i, "product_name"),
			Category:               t.Get(i, "category"),
		})
	}
	return scores, nil
}
