package warehouse

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/andresuchdata/chainsight/internal/dataset"
)

// Ingestor loads the derived CSV artifacts into the analytics warehouse so
// downstream consumers can query them with SQL instead of reading files.
type Ingestor struct {
	db    *DB
	store *dataset.Store
}

func NewIngestor(db *DB, store *dataset.Store) *Ingestor {
	return &Ingestor{db: db, store: store}
}

// Run creates the schema and refreshes every warehouse table from the
// current artifacts. Returns row counts per table.
func (i *Ingestor) Run(ctx context.Context) (map[string]int, error) {
	if err := i.db.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	steps := []struct {
		table string
		load  func(ctx context.Context, tx *sqlx.Tx) (int, error)
	}{
		{"product_metrics", i.loadProductMetrics},
		{"supplier_metrics", i.loadSupplierMetrics},
		{"warehouse_metrics", i.loadWarehouseMetrics},
		{"monthly_trends", i.loadMonthlyTrends},
		{"risk_scores", i.loadRiskScores},
		{"reorder_recommendations", i.loadReorderRecommendations},
		{"supplier_rankings", i.loadSupplierRankings},
		{"demand_forecasts", i.loadForecasts},
	}

	for _, step := range steps {
		step := step
		err := i.db.WithTx(ctx, func(tx *sqlx.Tx) error {
			if err := truncate(ctx, tx, step.table); err != nil {
				return err
			}
			n, err := step.load(ctx, tx)
			if err != nil {
				return err
			}
			counts[step.table] = n
			return nil
		})
		if err != nil {
			return counts, fmt.Errorf("ingest %s: %w", step.table, err)
		}
		log.Info().Str("table", step.table).Int("rows", counts[step.table]).Msg("warehouse table refreshed")
	}

	return counts, nil
}

func truncate(ctx context.Context, tx *sqlx.Tx, table string) error {
	_, err := tx.ExecContext(ctx, "TRUNCATE TABLE "+pq.QuoteIdentifier(table))
	if err != nil {
		return fmt.Errorf("could not truncate %s: %w", table, err)
	}
	return nil
}

func (i *Ingestor) loadProductMetrics(ctx context.Context, tx *sqlx.Tx) (int, error) {
	metrics, err := i.store.LoadProductMetrics()
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO product_metrics (
			product_id, product_name, category, total_demand, avg_demand,
			demand_std, total_fulfilled, total_revenue, total_profit,
			stockout_count, transaction_count, demand_cv, stockout_rate
		) VALUES (
			:product_id, :product_name, :category, :total_demand, :avg_demand,
			:demand_std, :total_fulfilled, :total_revenue, :total_profit,
			:stockout_count, :transaction_count, :demand_cv, :stockout_rate
		)`

	for _, m := range metrics {
		if _, err := tx.NamedExecContext(ctx, query, m); err != nil {
			return 0, fmt.Errorf("insert product %s: %w", m.ProductID, err)
		}
	}
	return len(metrics), nil
}

func (i *Ingestor) loadSupplierMetrics(ctx context.Context, tx *sqlx.Tx) (int, error) {
	metrics, err := i.store.LoadSupplierMetrics()
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO supplier_metrics (
			supplier_id, supplier_name, country, reliability_score,
			total_orders, total_qty, total_value, delayed_orders,
			avg_delay, avg_delivery_time, on_time_rate
		) VALUES (
			:supplier_id, :supplier_name, :country, :reliability_score,
			:total_orders, :total_qty, :total_value, :delayed_orders,
			:avg_delay, :avg_delivery_time, :on_time_rate
		)`

	for _, m := range metrics {
		if _, err := tx.NamedExecContext(ctx, query, m); err != nil {
			return 0, fmt.Errorf("insert supplier %s: %w", m.SupplierID, err)
		}
	}
	return len(metrics), nil
}

func (i *Ingestor) loadWarehouseMetrics(ctx context.Context, tx *sqlx.Tx) (int, error) {
	metrics, err := i.store.LoadWarehouseMetrics()
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO warehouse_metrics (
			warehouse_id, location, capacity, total_fulfilled,
			total_revenue, stockout_count, transaction_count, stockout_rate
		) VALUES (
			:warehouse_id, :location, :capacity, :total_fulfilled,
			:total_revenue, :stockout_count, :transaction_count, :stockout_rate
		)`

	for _, m := range metrics {
		if _, err := tx.NamedExecContext(ctx, query, m); err != nil {
			return 0, fmt.Errorf("insert warehouse %s: %w", m.WarehouseID, err)
		}
	}
	return len(metrics), nil
}

func (i *Ingestor) loadMonthlyTrends(ctx context.Context, tx *sqlx.Tx) (int, error) {
	trends, err := i.store.LoadMonthlyTrends()
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO monthly_trends (
			year, month, category, total_demand, total_revenue, total_profit, stockouts
		) VALUES (
			:year, :month, :category, :total_demand, :total_revenue, :total_profit, :stockouts
		)`

	for _, t := range trends {
		if _, err := tx.NamedExecContext(ctx, query, t); err != nil {
			return 0, fmt.Errorf("insert trend %d-%d %s: %w", t.Year, t.Month, t.Category, err)
		}
	}
	return len(trends), nil
}

func (i *Ingestor) loadRiskScores(ctx context.Context, tx *sqlx.Tx) (int, error) {
	scores, err := i.store.LoadRiskScores()
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO risk_scores (
			product_id, product_name, category, avg_demand, demand_std,
			stockout_count, transaction_count, current_stock, lead_time_days,
			demand_volatility, historical_stockout_rate, days_of_stock,
			stockout_risk_score, risk_category
		) VALUES (
			:product_id, :product_name, :category, :avg_demand, :demand_std,
			:stockout_count, :transaction_count, :current_stock, :lead_time_days,
			:demand_volatility, :historical_stockout_rate, :days_of_stock,
			:stockout_risk_score, :risk_category
		)`

	for _, s := range scores {
		if _, err := tx.NamedExecContext(ctx, query, s); err != nil {
			return 0, fmt.Errorf("insert risk score %s: %w", s.ProductID, err)
		}
	}
	return len(scores), nil
}

func (i *Ingestor) loadReorderRecommendations(ctx context.Context, tx *sqlx.Tx) (int, error) {
	recs, err := i.store.LoadReorderRecommendations()
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO reorder_recommendations (
			product_id, product_name, category, avg_demand, demand_std,
			current_stock, lead_time_days, demand_volatility, stockout_risk_score,
			risk_category, unit_cost, annual_demand, holding_cost,
			optimal_order_quantity, safety_stock, optimal_reorder_point,
			avg_inventory_level, annual_carrying_cost, orders_per_year,
			annual_ordering_cost, total_annual_cost, current_carrying_cost,
			potential_savings
		) VALUES (
			:product_id, :product_name, :category, :avg_demand, :demand_std,
			:current_stock, :lead_time_days, :demand_volatility, :stockout_risk_score,
			:risk_category, :unit_cost, :annual_demand, :holding_cost,
			:optimal_order_quantity, :safety_stock, :optimal_reorder_point,
			:avg_inventory_level, :annual_carrying_cost, :orders_per_year,
			:annual_ordering_cost, :total_annual_cost, :current_carrying_cost,
			:potential_savings
		)`

	for _, r := range recs {
		if _, err := tx.NamedExecContext(ctx, query, r); err != nil {
			return 0, fmt.Errorf("insert recommendation %s: %w", r.ProductID, err)
		}
	}
	return len(recs), nil
}

func (i *Ingestor) loadSupplierRankings(ctx context.Context, tx *sqlx.Tx) (int, error) {
	rankings, err := i.store.LoadSupplierRankings()
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO supplier_rankings (
			supplier_id, supplier_name, country, reliability_score,
			on_time_rate, avg_delivery_time, cost_efficiency,
			performance_score, rank, recommendation
		) VALUES (
			:supplier_id, :supplier_name, :country, :reliability_score,
			:on_time_rate, :avg_delivery_time, :cost_efficiency,
			:performance_score, :rank, :recommendation
		)`

	for _, r := range rankings {
		if _, err := tx.NamedExecContext(ctx, query, r); err != nil {
			return 0, fmt.Errorf("insert ranking %s: %w", r.SupplierID, err)
		}
	}
	return len(rankings), nil
}

func (i *Ingestor) loadForecasts(ctx context.Context, tx *sqlx.Tx) (int, error) {
	if !i.store.HasForecasts() {
		return 0, nil
	}
	points, err := i.store.LoadForecasts()
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO demand_forecasts (
			product_id, forecast_date, forecasted_demand, lower_bound, upper_bound
		) VALUES (
			:product_id, :forecast_date, :forecasted_demand, :lower_bound, :upper_bound
		)`

	for _, p := range points {
		if _, err := tx.NamedExecContext(ctx, query, p); err != nil {
			return 0, fmt.Errorf("insert forecast %s %s: %w", p.ProductID, p.ForecastDate.Format("2006-01-02"), err)
		}
	}
	return len(points), nil
}
