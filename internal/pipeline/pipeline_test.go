package pipeline

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andresuchdata/chainsight/internal/config"
	"github.com/andresuchdata/chainsight/internal/dataset"
	"github.com/andresuchdata/chainsight/internal/generate"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	return &config.Config{
		Data: config.DataConfig{
			RootDir:            root,
			RawDir:             filepath.Join(root, "raw"),
			ProcessedDir:       filepath.Join(root, "processed"),
			AnalyticsDir:       filepath.Join(root, "analytics"),
			RecommendationsDir: filepath.Join(root, "recommendations"),
			DashboardsDir:      filepath.Join(root, "dashboards"),
		},
		Pipeline: config.PipelineConfig{
			Seed:                42,
			ForecastTopN:        5,
			ForecastMinHistory:  60,
			ForecastHorizonDays: 30,
			SMAWindow:           7,
			EWMASpan:            7,
			Contamination:       0.05,
			OrderingCost:        100,
			HoldingCostRate:     0.25,
			ServiceLevelZ:       1.65,
			PreferredRankMax:    5,
			ApprovedRankMax:     15,
			ScenarioCostLimit:   100000,
		},
	}
}

func seedRawData(t *testing.T, env *Env) *generate.Dataset {
	t.Helper()
	ds := generate.New(generate.Options{
		Seed: 42, Products: 10, Suppliers: 5, Warehouses: 3,
		Transactions: 3000, Orders: 300,
	})
	if err := env.Store.SaveRawProducts(ds.Products); err != nil {
		t.Fatalf("seed products: %v", err)
	}
	if err := env.Store.SaveRawSuppliers(ds.Suppliers); err != nil {
		t.Fatalf("seed suppliers: %v", err)
	}
	if err := env.Store.SaveRawWarehouses(ds.Warehouses); err != nil {
		t.Fatalf("seed warehouses: %v", err)
	}
	if err := env.Store.SaveRawSales(ds.Sales); err != nil {
		t.Fatalf("seed sales: %v", err)
	}
	if err := env.Store.SaveRawInventory(ds.Inventory); err != nil {
		t.Fatalf("seed inventory: %v", err)
	}
	if err := env.Store.SaveRawSupplyOrders(ds.Orders); err != nil {
		t.Fatalf("seed orders: %v", err)
	}
	return ds
}

func TestFullPipelineEndToEnd(t *testing.T) {
	env := NewEnv(testConfig(t))
	seedRawData(t, env)

	report, err := NewRunner(env, Full()...).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Failed() {
		t.Fatal("report should not be marked failed")
	}
	if len(report.Stages) != 4 {
		t.Fatalf("stages run = %d, want 4", len(report.Stages))
	}
	for _, s := range report.Stages {
		if s.Status != StatusCompleted {
			t.Errorf("stage %s status = %s, want completed", s.Stage, s.Status)
		}
	}

	transform := report.Stages[0]
	if transform.Counts["sales_transformed"] != 3000 {
		t.Errorf("sales_transformed = %d, want 3000", transform.Counts["sales_transformed"])
	}
	if transform.Counts["product_metrics"] != 10 {
		t.Errorf("product_metrics = %d, want 10", transform.Counts["product_metrics"])
	}

	predict := report.Stages[1]
	if predict.Counts["stockout_risk_scores"] != 10 {
		t.Errorf("stockout_risk_scores = %d, want 10", predict.Counts["stockout_risk_scores"])
	}
	// Almost three years of dense history for a ten product catalog stays
	// well past the minimum forecast window.
	if predict.Counts["demand_forecasts"] != 5*30 {
		t.Errorf("demand_forecasts = %d, want 150", predict.Counts["demand_forecasts"])
	}

	optimize := report.Stages[2]
	if optimize.Counts["optimal_reorder_points"] != 10 {
		t.Errorf("optimal_reorder_points = %d, want 10", optimize.Counts["optimal_reorder_points"])
	}
	if optimize.Counts["supplier_rankings"] != 5 {
		t.Errorf("supplier_rankings = %d, want 5", optimize.Counts["supplier_rankings"])
	}
	if optimize.Counts["scenario_outcomes"] != 3 {
		t.Errorf("scenario_outcomes = %d, want 3", optimize.Counts["scenario_outcomes"])
	}

	dash := report.Stages[3]
	if dash.Counts["kpi_summary"] != 16 {
		t.Errorf("kpi_summary = %d, want 16", dash.Counts["kpi_summary"])
	}
	if !env.Store.HasForecasts() {
		t.Error("forecast artifact should exist after the run")
	}

	scores, err := env.Store.LoadRiskScores()
	if err != nil {
		t.Fatalf("risk scores unreadable after run: %v", err)
	}
	for _, s := range scores {
		if s.StockoutRiskScore < 0 || s.StockoutRiskScore > 1 {
			t.Errorf("%s risk score %v outside [0, 1]", s.ProductID, s.StockoutRiskScore)
		}
	}
}

func TestExtractStageWritesRawArtifacts(t *testing.T) {
	env := NewEnv(testConfig(t))

	report, err := NewRunner(env, ExtractStage{}).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	extract := report.Stages[0]
	if extract.Status != StatusCompleted {
		t.Fatalf("status = %s, want completed", extract.Status)
	}
	if extract.Counts["products"] != 50 {
		t.Errorf("products = %d, want 50", extract.Counts["products"])
	}
	if extract.Counts["sales_transactions"] != 15000 {
		t.Errorf("sales_transactions = %d, want 15000", extract.Counts["sales_transactions"])
	}

	products, err := env.Store.LoadProducts()
	if err != nil {
		t.Fatalf("products unreadable after extract: %v", err)
	}
	if len(products) != 50 {
		t.Errorf("loaded products = %d, want 50", len(products))
	}
}

func TestRunAbortsOnMissingRawData(t *testing.T) {
	env := NewEnv(testConfig(t))

	report, err := NewRunner(env, Full()...).Run(context.Background())
	if err == nil {
		t.Fatal("expected an error on an empty data directory")
	}
	if !strings.Contains(err.Error(), "stage transform") {
		t.Errorf("error = %v, want stage name attached", err)
	}
	if !dataset.IsSchemaError(err) {
		t.Errorf("error = %v, want a schema error", err)
	}
	if !report.Failed() {
		t.Error("report should be marked failed")
	}
	if len(report.Stages) != 1 {
		t.Errorf("stages run = %d, want 1 (later stages skipped)", len(report.Stages))
	}
}

func TestRunHonorsCancelledContext(t *testing.T) {
	env := NewEnv(testConfig(t))
	seedRawData(t, env)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(env, Full()...).Run(ctx)
	if err == nil {
		t.Fatal("expected an error from a cancelled context")
	}
}
