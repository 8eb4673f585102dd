package warehouse

import (
	"context"
	"fmt"
)

// Table names the ingestor writes to, in creation order.
var warehouseTables = []string{
	"product_metrics",
	"supplier_metrics",
	"warehouse_metrics",
	"monthly_trends",
	"risk_scores",
	"reorder_recommendations",
	"supplier_rankings",
	"demand_forecasts",
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS product_metrics (
		product_id        TEXT PRIMARY KEY,
		product_name      TEXT NOT NULL,
		category          TEXT NOT NULL,
		total_demand      BIGINT NOT NULL,
		avg_demand        DOUBLE PRECISION NOT NULL,
		demand_std        DOUBLE PRECISION NOT NULL,
		total_fulfilled   BIGINT NOT NULL,
		total_revenue     DOUBLE PRECISION NOT NULL,
		total_profit      DOUBLE PRECISION NOT NULL,
		stockout_count    BIGINT NOT NULL,
		transaction_count BIGINT NOT NULL,
		demand_cv         DOUBLE PRECISION NOT NULL,
		stockout_rate     DOUBLE PRECISION NOT NULL,
		updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS supplier_metrics (
		supplier_id       TEXT PRIMARY KEY,
		supplier_name     TEXT NOT NULL,
		country           TEXT NOT NULL,
		reliability_score DOUBLE PRECISION NOT NULL,
		total_orders      BIGINT NOT NULL,
		total_qty         BIGINT NOT NULL,
		total_value       DOUBLE PRECISION NOT NULL,
		delayed_orders    BIGINT NOT NULL,
		avg_delay         DOUBLE PRECISION NOT NULL,
		avg_delivery_time DOUBLE PRECISION NOT NULL,
		on_time_rate      DOUBLE PRECISION NOT NULL,
		updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS warehouse_metrics (
		warehouse_id      TEXT PRIMARY KEY,
		location          TEXT NOT NULL,
		capacity          BIGINT NOT NULL,
		total_fulfilled   BIGINT NOT NULL,
		total_revenue     DOUBLE PRECISION NOT NULL,
		stockout_count    BIGINT NOT NULL,
		transaction_count BIGINT NOT NULL,
		stockout_rate     DOUBLE PRECISION NOT NULL,
		updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS monthly_trends (
		year          INT NOT NULL,
		month         INT NOT NULL,
		category      TEXT NOT NULL,
		total_demand  BIGINT NOT NULL,
		total_revenue DOUBLE PRECISION NOT NULL,
		total_profit  DOUBLE PRECISION NOT NULL,
		stockouts     BIGINT NOT NULL,
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (year, month, category)
	)`,
	`CREATE TABLE IF NOT EXISTS risk_scores (
		product_id               TEXT PRIMARY KEY,
		product_name             TEXT NOT NULL,
		category                 TEXT NOT NULL,
		avg_demand               DOUBLE PRECISION NOT NULL,
		demand_std               DOUBLE PRECISION NOT NULL,
		stockout_count           BIGINT NOT NULL,
		transaction_count        BIGINT NOT NULL,
		current_stock            DOUBLE PRECISION NOT NULL,
		lead_time_days           INT NOT NULL,
		demand_volatility        DOUBLE PRECISION NOT NULL,
		historical_stockout_rate DOUBLE PRECISION NOT NULL,
		days_of_stock            DOUBLE PRECISION NOT NULL,
		stockout_risk_score      DOUBLE PRECISION NOT NULL,
		risk_category            TEXT NOT NULL,
		updated_at               TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS reorder_recommendations (
		product_id             TEXT PRIMARY KEY,
		product_name           TEXT NOT NULL,
		category               TEXT NOT NULL,
		avg_demand             DOUBLE PRECISION NOT NULL,
		demand_std             DOUBLE PRECISION NOT NULL,
		current_stock          DOUBLE PRECISION NOT NULL,
		lead_time_days         INT NOT NULL,
		demand_volatility      DOUBLE PRECISION NOT NULL,
		stockout_risk_score    DOUBLE PRECISION NOT NULL,
		risk_category          TEXT NOT NULL,
		unit_cost              DOUBLE PRECISION NOT NULL,
		annual_demand          DOUBLE PRECISION NOT NULL,
		holding_cost           DOUBLE PRECISION NOT NULL,
		optimal_order_quantity BIGINT NOT NULL,
		safety_stock           BIGINT NOT NULL,
		optimal_reorder_point  BIGINT NOT NULL,
		avg_inventory_level    BIGINT NOT NULL,
		annual_carrying_cost   DOUBLE PRECISION NOT NULL,
		orders_per_year        DOUBLE PRECISION NOT NULL,
		annual_ordering_cost   DOUBLE PRECISION NOT NULL,
		total_annual_cost      DOUBLE PRECISION NOT NULL,
		current_carrying_cost  DOUBLE PRECISION NOT NULL,
		potential_savings      DOUBLE PRECISION NOT NULL,
		updated_at             TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS supplier_rankings (
		supplier_id       TEXT PRIMARY KEY,
		supplier_name     TEXT NOT NULL,
		country           TEXT NOT NULL,
		reliability_score DOUBLE PRECISION NOT NULL,
		on_time_rate      DOUBLE PRECISION NOT NULL,
		avg_delivery_time DOUBLE PRECISION NOT NULL,
		cost_efficiency   DOUBLE PRECISION NOT NULL,
		performance_score DOUBLE PRECISION NOT NULL,
		rank              INT NOT NULL,
		recommendation    TEXT NOT NULL,
		updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS demand_forecasts (
		product_id         TEXT NOT NULL,
		forecast_date      DATE NOT NULL,
		forecasted_demand  DOUBLE PRECISION NOT NULL,
		lower_bound        DOUBLE PRECISION NOT NULL,
		upper_bound        DOUBLE PRECISION NOT NULL,
		updated_at         TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (product_id, forecast_date)
	)`,
}

// EnsureSchema creates the warehouse tables if they do not exist yet.
func (db *DB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("could not create warehouse table: %w", err)
		}
	}
	return nil
}
