// Package pipeline runs the analytics stages in order, producing a
// structured report per stage. Stages are pure disk-to-disk functions: each
// reads the previous stage's artifacts and writes its own.
package pipeline

import (
	"context"
	"time"

	"github.com/andresuchdata/chainsight/internal/aggregate"
	"github.com/andresuchdata/chainsight/internal/anomaly"
	"github.com/andresuchdata/chainsight/internal/config"
	"github.com/andresuchdata/chainsight/internal/dashboard"
	"github.com/andresuchdata/chainsight/internal/dataset"
	"github.com/andresuchdata/chainsight/internal/enrich"
	"github.com/andresuchdata/chainsight/internal/forecast"
	"github.com/andresuchdata/chainsight/internal/generate"
	"github.com/andresuchdata/chainsight/internal/optimize"
	"github.com/andresuchdata/chainsight/internal/risk"
	"github.com/andresuchdata/chainsight/internal/supplier"
)

// Env carries the shared dependencies of the stages.
type Env struct {
	Cfg   *config.Config
	Store *dataset.Store
}

// NewEnv wires an Env from the loaded configuration.
func NewEnv(cfg *config.Config) *Env {
	return &Env{Cfg: cfg, Store: dataset.NewStore(cfg.Data)}
}

// Stage is one step of the pipeline.
type Stage interface {
	Name() string
	Run(ctx context.Context, env *Env) (*StageReport, error)
}

// ExtractStage writes a fresh synthetic raw extract.
type ExtractStage struct{}

func (ExtractStage) Name() string { return "extract" }

func (s ExtractStage) Run(ctx context.Context, env *Env) (*StageReport, error) {
	report := newReport(s.Name())

	ds := generate.New(generate.Options{Seed: env.Cfg.Pipeline.Seed})
	steps := []struct {
		name string
		n    int
		save func() error
	}{
		{"products", len(ds.Products), func() error { return env.Store.SaveRawProducts(ds.Products) }},
		{"suppliers", len(ds.Suppliers), func() error { return env.Store.SaveRawSuppliers(ds.Suppliers) }},
		{"warehouses", len(ds.Warehouses), func() error { return env.Store.SaveRawWarehouses(ds.Warehouses) }},
		{"sales_transactions", len(ds.Sales), func() error { return env.Store.SaveRawSales(ds.Sales) }},
		{"inventory_logs", len(ds.Inventory), func() error { return env.Store.SaveRawInventory(ds.Inventory) }},
		{"supply_orders", len(ds.Orders), func() error { return env.Store.SaveRawSupplyOrders(ds.Orders) }},
	}
	for _, st := range steps {
		if err := ctx.Err(); err != nil {
			return report.fail(err), err
		}
		if err := st.save(); err != nil {
			return report.fail(err), err
		}
		report.Counts[st.name] = st.n
	}
	return report.complete(), nil
}

// TransformStage enriches the raw facts and rolls up the metric tables.
type TransformStage struct{}

func (TransformStage) Name() string { return "transform" }

func (s TransformStage) Run(ctx context.Context, env *Env) (*StageReport, error) {
	report := newReport(s.Name())

	products, err := env.Store.LoadProducts()
	if err != nil {
		return report.fail(err), err
	}
	suppliers, err := env.Store.LoadSuppliers()
	if err != nil {
		return report.fail(err), err
	}
	warehouses, err := env.Store.LoadWarehouses()
	if err != nil {
		return report.fail(err), err
	}
	sales, err := env.Store.LoadSales()
	if err != nil {
		return report.fail(err), err
	}
	inventory, err := env.Store.LoadInventory()
	if err != nil {
		return report.fail(err), err
	}
	orders, err := env.Store.LoadSupplyOrders()
	if err != nil {
		return report.fail(err), err
	}
	if err := ctx.Err(); err != nil {
		return report.fail(err), err
	}

	enrichedSales := enrich.Sales(sales, products)
	enrichedInventory := enrich.Inventory(inventory)
	enrichedOrders := enrich.Orders(orders, suppliers, products)

	saves := []struct {
		name string
		n    int
		save func() error
	}{
		{"sales_transformed", len(enrichedSales), func() error { return env.Store.SaveEnrichedSales(enrichedSales) }},
		{"inventory_transformed", len(enrichedInventory), func() error {
			return env.Store.SaveEnrichedInventory(enrichedInventory, env.Store.ProcessedPath(dataset.FileInventoryEnriched))
		}},
		{"supply_orders_transformed", len(enrichedOrders), func() error { return env.Store.SaveEnrichedOrders(enrichedOrders) }},
	}
	for _, st := range saves {
		if err := st.save(); err != nil {
			return report.fail(err), err
		}
		report.Counts[st.name] = st.n
	}

	productMetrics := aggregate.Products(enrichedSales, products)
	warehouseMetrics := aggregate.Warehouses(enrichedSales, warehouses)
	supplierMetrics := aggregate.Suppliers(enrichedOrders, suppliers)
	monthlyTrends := aggregate.Monthly(enrichedSales)

	if err := env.Store.SaveProductMetrics(productMetrics); err != nil {
		return report.fail(err), err
	}
	if err := env.Store.SaveWarehouseMetrics(warehouseMetrics); err != nil {
		return report.fail(err), err
	}
	if err := env.Store.SaveSupplierMetrics(supplierMetrics); err != nil {
		return report.fail(err), err
	}
	if err := env.Store.SaveMonthlyTrends(monthlyTrends); err != nil {
		return report.fail(err), err
	}
	if err := env.Store.SaveDimensions(products, suppliers, warehouses); err != nil {
		return report.fail(err), err
	}
	report.Counts["product_metrics"] = len(productMetrics)
	report.Counts["warehouse_metrics"] = len(warehouseMetrics)
	report.Counts["supplier_metrics"] = len(supplierMetrics)
	report.Counts["monthly_trends"] = len(monthlyTrends)

	return report.complete(), nil
}

// PredictStage runs forecasting, anomaly detection and risk scoring.
type PredictStage struct{}

func (PredictStage) Name() string { return "predict" }

func (s PredictStage) Run(ctx context.Context, env *Env) (*StageReport, error) {
	report := newReport(s.Name())
	p := env.Cfg.Pipeline

	sales, err := env.Store.LoadEnrichedSales()
	if err != nil {
		return report.fail(err), err
	}
	inventory, err := env.Store.LoadEnrichedInventory(env.Store.ProcessedPath(dataset.FileInventoryEnriched))
	if err != nil {
		return report.fail(err), err
	}
	metrics, err := env.Store.LoadProductMetrics()
	if err != nil {
		return report.fail(err), err
	}
	products, err := env.Store.LoadDimProducts()
	if err != nil {
		return report.fail(err), err
	}
	if err := ctx.Err(); err != nil {
		return report.fail(err), err
	}

	points := forecast.Run(sales, metrics, forecast.Options{
		TopN:        p.ForecastTopN,
		MinHistory:  p.ForecastMinHistory,
		HorizonDays: p.ForecastHorizonDays,
		SMAWindow:   p.SMAWindow,
		EWMASpan:    p.EWMASpan,
	})
	if len(points) > 0 {
		if err := env.Store.SaveForecasts(points); err != nil {
			return report.fail(err), err
		}
	}
	report.Counts["demand_forecasts"] = len(points)

	detection := anomaly.Detect(inventory, anomaly.Options{
		Contamination: p.Contamination,
		Seed:          p.Seed,
	})
	if err := env.Store.SaveAnomalies(detection.Snapshots, detection.Flagged); err != nil {
		return report.fail(err), err
	}
	report.Counts["inventory_anomalies"] = len(detection.Flagged)

	scores := risk.Score(metrics, detection.Snapshots, products)
	if err := env.Store.SaveRiskScores(scores); err != nil {
		return report.fail(err), err
	}
	report.Counts["stockout_risk_scores"] = len(scores)

	return report.complete(), nil
}

// OptimizeStage derives reorder policies, supplier rankings, scenarios and
// the action list.
type OptimizeStage struct{}

func (OptimizeStage) Name() string { return "optimize" }

func (s OptimizeStage) Run(ctx context.Context, env *Env) (*StageReport, error) {
	report := newReport(s.Name())
	p := env.Cfg.Pipeline

	scores, err := env.Store.LoadRiskScores()
	if err != nil {
		return report.fail(err), err
	}
	products, err := env.Store.LoadDimProducts()
	if err != nil {
		return report.fail(err), err
	}
	supplierMetrics, err := env.Store.LoadSupplierMetrics()
	if err != nil {
		return report.fail(err), err
	}
	anomalies, err := env.Store.LoadAnomalies()
	if err != nil {
		return report.fail(err), err
	}
	if err := ctx.Err(); err != nil {
		return report.fail(err), err
	}

	costs := optimize.Costs{
		OrderingCost:      p.OrderingCost,
		HoldingCostRate:   p.HoldingCostRate,
		ServiceLevelZ:     p.ServiceLevelZ,
		ScenarioCostLimit: p.ScenarioCostLimit,
	}
	recs := optimize.ReorderPoints(scores, products, costs)
	rankings := supplier.Rank(supplierMetrics, supplier.Tiers{
		PreferredRankMax: p.PreferredRankMax,
		ApprovedRankMax:  p.ApprovedRankMax,
	})
	scenarios := optimize.Scenarios(recs, costs)
	items := optimize.ActionItems(recs, anomalies, rankings)
	summary := optimize.ExecutiveSummary(recs, rankings, anomalies, items, scenarios)

	if err := env.Store.SaveReorderRecommendations(recs); err != nil {
		return report.fail(err), err
	}
	if err := env.Store.SaveSupplierRankings(rankings); err != nil {
		return report.fail(err), err
	}
	if err := env.Store.SaveScenarios(scenarios); err != nil {
		return report.fail(err), err
	}
	if err := env.Store.SaveActionItems(items); err != nil {
		return report.fail(err), err
	}
	if err := env.Store.SaveExecutiveSummary(summary); err != nil {
		return report.fail(err), err
	}
	report.Counts["optimal_reorder_points"] = len(recs)
	report.Counts["supplier_rankings"] = len(rankings)
	report.Counts["scenario_outcomes"] = len(scenarios)
	report.Counts["priority_action_items"] = len(items)

	return report.complete(), nil
}

// DashboardStage materializes the BI-ready tables.
type DashboardStage struct{}

func (DashboardStage) Name() string { return "dashboard" }

func (s DashboardStage) Run(ctx context.Context, env *Env) (*StageReport, error) {
	report := newReport(s.Name())

	in, err := loadDashboardInputs(env.Store)
	if err != nil {
		return report.fail(err), err
	}
	if err := ctx.Err(); err != nil {
		return report.fail(err), err
	}

	kpis := dashboard.KPISummary(in)
	productRows := dashboard.Products(in)
	supplierRows := dashboard.Suppliers(in.Rankings)
	warehouseRows := dashboard.WarehousesDash(in.WarehouseMetrics)
	monthly := dashboard.Monthly(in.Sales)
	alerts := dashboard.RiskAlerts(in.RiskScores)

	if err := env.Store.SaveKPISummary(kpis); err != nil {
		return report.fail(err), err
	}
	if err := env.Store.SaveProductPerformance(productRows); err != nil {
		return report.fail(err), err
	}
	if err := env.Store.SaveSupplierPerformance(supplierRows); err != nil {
		return report.fail(err), err
	}
	if err := env.Store.SaveWarehousePerformance(warehouseRows); err != nil {
		return report.fail(err), err
	}
	if err := env.Store.SaveMonthlySummary(monthly); err != nil {
		return report.fail(err), err
	}
	if err := env.Store.SaveRiskAlerts(alerts); err != nil {
		return report.fail(err), err
	}
	if err := env.Store.SaveDashboardActionItems(in.ActionItems); err != nil {
		return report.fail(err), err
	}
	if len(in.Forecasts) > 0 {
		if err := env.Store.SaveDashboardForecasts(in.Forecasts); err != nil {
			return report.fail(err), err
		}
		if err := env.Store.SaveForecastSummary(forecast.Summarize(in.Forecasts, in.Products)); err != nil {
			return report.fail(err), err
		}
	}
	if err := env.Store.SaveFactTables(in.Sales, in.Inventory, in.Orders); err != nil {
		return report.fail(err), err
	}
	if err := env.Store.SaveProjectSummary(dashboard.ProjectSummary(in, time.Now())); err != nil {
		return report.fail(err), err
	}

	report.Counts["kpi_summary"] = len(kpis)
	report.Counts["product_performance"] = len(productRows)
	report.Counts["supplier_performance"] = len(supplierRows)
	report.Counts["warehouse_performance"] = len(warehouseRows)
	report.Counts["monthly_trends"] = len(monthly)
	report.Counts["risk_alerts"] = len(alerts)
	report.Counts["demand_forecasts"] = len(in.Forecasts)

	return report.complete(), nil
}

func loadDashboardInputs(store *dataset.Store) (*dashboard.Inputs, error) {
	in := &dashboard.Inputs{}
	var err error

	if in.Products, err = store.LoadDimProducts(); err != nil {
		return nil, err
	}
	if in.Suppliers, err = store.LoadDimSuppliers(); err != nil {
		return nil, err
	}
	if in.Warehouses, err = store.LoadDimWarehouses(); err != nil {
		return nil, err
	}
	if in.Sales, err = store.LoadEnrichedSales(); err != nil {
		return nil, err
	}
	if in.Inventory, err = store.LoadAnalyzedInventory(); err != nil {
		return nil, err
	}
	if in.Orders, err = store.LoadEnrichedOrders(); err != nil {
		return nil, err
	}
	if in.ProductMetrics, err = store.LoadProductMetrics(); err != nil {
		return nil, err
	}
	if in.WarehouseMetrics, err = store.LoadWarehouseMetrics(); err != nil {
		return nil, err
	}
	if in.SupplierMetrics, err = store.LoadSupplierMetrics(); err != nil {
		return nil, err
	}
	if in.RiskScores, err = store.LoadRiskScores(); err != nil {
		return nil, err
	}
	if in.Anomalies, err = store.LoadAnomalies(); err != nil {
		return nil, err
	}
	if in.Reorders, err = store.LoadReorderRecommendations(); err != nil {
		return nil, err
	}
	if in.Rankings, err = store.LoadSupplierRankings(); err != nil {
		return nil, err
	}
	if in.ActionItems, err = store.LoadActionItems(); err != nil {
		return nil, err
	}
	// Absent forecasts are tolerated: the short-history case produces none.
	if store.HasForecasts() {
		if in.Forecasts, err = store.LoadForecasts(); err != nil {
			return nil, err
		}
	}
	return in, nil
}
