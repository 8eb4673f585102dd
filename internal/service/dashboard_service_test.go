package service

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/andresuchdata/chainsight/internal/config"
	"github.com/andresuchdata/chainsight/internal/dataset"
	"github.com/andresuchdata/chainsight/internal/table"
)

func dashboardFixture(t *testing.T) *dataset.Store {
	t.Helper()
	root := t.TempDir()
	store := dataset.NewStore(config.DataConfig{
		RootDir:            root,
		RawDir:             filepath.Join(root, "raw"),
		ProcessedDir:       filepath.Join(root, "processed"),
		AnalyticsDir:       filepath.Join(root, "analytics"),
		RecommendationsDir: filepath.Join(root, "recommendations"),
		DashboardsDir:      filepath.Join(root, "dashboards"),
	})

	tb := table.New("kpi_summary", []string{"metric", "value", "status"})
	tb.Append([]string{"Total Revenue", "$1,800.00", "✓"})
	tb.Append([]string{"Stockout Rate %", "8.1%", "⚠"})
	if err := tb.WriteCSV(store.DashboardsPath("kpi_summary.csv")); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return store
}

func TestTablesListsCSVNames(t *testing.T) {
	store := dashboardFixture(t)
	svc := NewDashboardService(store, nil)

	names, err := svc.Tables()
	if err != nil {
		t.Fatalf("Tables: %v", err)
	}
	if len(names) != 1 || names[0] != "kpi_summary" {
		t.Errorf("names = %v, want [kpi_summary]", names)
	}
}

func TestTablesMissingDirIsEmpty(t *testing.T) {
	root := t.TempDir()
	store := dataset.NewStore(config.DataConfig{
		DashboardsDir: filepath.Join(root, "never_materialized"),
	})
	svc := NewDashboardService(store, nil)

	names, err := svc.Tables()
	if err != nil {
		t.Fatalf("Tables: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("names = %v, want empty", names)
	}
}

func TestTableMarshalsRows(t *testing.T) {
	store := dashboardFixture(t)
	svc := NewDashboardService(store, nil)

	payload, ok, err := svc.Table(context.Background(), "kpi_summary")
	if err != nil {
		t.Fatalf("Table: %v", err)
	}
	if !ok {
		t.Fatal("expected the table to be found")
	}

	var rows []map[string]string
	if err := json.Unmarshal(payload, &rows); err != nil {
		t.Fatalf("payload is not a JSON array of objects: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0]["metric"] != "Total Revenue" || rows[0]["value"] != "$1,800.00" {
		t.Errorf("first row = %v", rows[0])
	}
	if rows[1]["status"] != "⚠" {
		t.Errorf("second row status = %q, want ⚠", rows[1]["status"])
	}
}

func TestTableUnknownName(t *testing.T) {
	store := dashboardFixture(t)
	svc := NewDashboardService(store, nil)

	_, ok, err := svc.Table(context.Background(), "no_such_table")
	if err != nil {
		t.Fatalf("Table: %v", err)
	}
	if ok {
		t.Error("missing table should report ok=false")
	}
}

func TestTableRejectsUnsafeNames(t *testing.T) {
	store := dashboardFixture(t)
	svc := NewDashboardService(store, nil)

	for _, name := range []string{"", "../secrets", "kpi summary", "KPI_SUMMARY", "kpi.summary"} {
		_, ok, err := svc.Table(context.Background(), name)
		if err != nil {
			t.Errorf("Table(%q) error: %v", name, err)
		}
		if ok {
			t.Errorf("Table(%q) should be rejected", name)
		}
	}
}
