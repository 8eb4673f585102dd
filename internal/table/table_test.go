package table

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "orders.csv")

	out := New("orders", []string{"order_id", "qty", "price", "order_date"})
	out.Append([]string{"PO00001", "120", "45.5", "2024-03-01"})
	out.Append([]string{"PO00002", "80", "12.25", "2024-03-02"})

	if err := out.WriteCSV(path); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	in, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if in.Name != "orders" {
		t.Errorf("Name = %q, want orders", in.Name)
	}
	if in.Len() != 2 {
		t.Fatalf("Len = %d, want 2", in.Len())
	}
	if got := in.Get(0, "order_id"); got != "PO00001" {
		t.Errorf("Get order_id = %q", got)
	}
	if got := in.Int(0, "qty"); got != 120 {
		t.Errorf("Int qty = %d, want 120", got)
	}
	if got := in.Float(1, "price"); got != 12.25 {
		t.Errorf("Float price = %v, want 12.25", got)
	}
	want := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	if got := in.Date(1, "order_date"); !got.Equal(want) {
		t.Errorf("Date = %v, want %v", got, want)
	}
}

func TestColumnLookupIsForgiving(t *testing.T) {
	tbl := New("inventory", []string{"Product ID", "Current_Stock", "temperature"})
	tbl.Append([]string{"P0001", "55", "22.5"})

	for _, name := range []string{"product_id", "Product ID", "productid"} {
		if idx := tbl.Index(name); idx != 0 {
			t.Errorf("Index(%q) = %d, want 0", name, idx)
		}
	}
	if got := tbl.Int(0, "current_stock"); got != 55 {
		t.Errorf("Int via normalized name = %d, want 55", got)
	}
}

func TestRequire(t *testing.T) {
	tbl := New("sales", []string{"transaction_id", "date"})
	if err := tbl.Require("transaction_id", "date"); err != nil {
		t.Errorf("Require should accept present columns: %v", err)
	}

	err := tbl.Require("transaction_id", "warehouse_id")
	if err == nil {
		t.Fatal("Require should reject a missing column")
	}
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Errorf("error type = %T, want *SchemaError", err)
	}
}

func TestReadCSVMissingFile(t *testing.T) {
	if _, err := ReadCSV(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestReadCSVEmptyFileIsSchemaError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
	_, err := ReadCSV(path)
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Errorf("error = %v, want *SchemaError", err)
	}
}
