// internal/table/table.go
package table

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Table is an ordered set of string records with named columns. It is the
// interchange format between pipeline stages and the on-disk CSV artifacts;
// typed row structs are built on top of it by the dataset package.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// New creates an empty table with the given columns.
func New(name string, columns []string) *Table {
	return &Table{Name: name, Columns: columns}
}

// Append adds a record. The record must have one value per column.
func (t *Table) Append(record []string) {
	t.Rows = append(t.Rows, record)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Index returns the position of a column, matching case-insensitively and
// ignoring separators, or -1 when the column is absent.
func (t *Table) Index(column string) int {
	want := normalizeColumnName(column)
	for i, c := range t.Columns {
		if normalizeColumnName(c) == want {
			return i
		}
	}
	return -1
}

// Require validates that every listed column is present, returning a
// SchemaError naming the first missing one.
func (t *Table) Require(columns ...string) error {
	for _, col := range columns {
		if t.Index(col) < 0 {
			return &SchemaError{Artifact: t.Name, Column: col}
		}
	}
	return nil
}

// Get returns the trimmed cell value for (row, column), or "" when the
// column is absent or the record is short.
func (t *Table) Get(row int, column string) string {
	idx := t.Index(column)
	if idx < 0 || idx >= len(t.Rows[row]) {
		return ""
	}
	return strings.TrimSpace(t.Rows[row][idx])
}

// Float parses a cell as float64, tolerating thousands separators and
// returning 0 for empty or malformed values.
func (t *Table) Float(row int, column string) float64 {
	v := t.Get(row, column)
	if v == "" {
		return 0
	}
	v = strings.ReplaceAll(v, ",", "")
	f, _ := strconv.ParseFloat(v, 64)
	return f
}

// Int parses a cell as int, returning 0 for empty or malformed values.
// Values written as floats (e.g. "12.0") are truncated.
func (t *Table) Int(row int, column string) int {
	v := t.Get(row, column)
	if v == "" {
		return 0
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	f, _ := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64)
	return int(f)
}

// dateLayouts are tried in order when parsing date cells. Source systems
// write plain dates; re-read artifacts may carry a time component.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// Date parses a cell as a date. The zero time is returned for empty or
// unparseable values.
func (t *Table) Date(row int, column string) time.Time {
	v := t.Get(row, column)
	if v == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, v); err == nil {
			return ts
		}
	}
	return time.Time{}
}

// ReadCSV loads a CSV file into a Table. The file must have a header row.
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open table %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read table %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, &SchemaError{Artifact: tableName(path)}
	}

	return &Table{
		Name:    tableName(path),
		Columns: records[0],
		Rows:    records[1:],
	}, nil
}

// WriteCSV persists the table, creating the parent directory when needed.
func (t *Table) WriteCSV(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create table %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(t.Columns); err != nil {
		return err
	}
	for _, record := range t.Rows {
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func tableName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

var columnNameSanitizer = strings.NewReplacer(" ", "", "_", "", ".", "", "-", "", "/", "")

func normalizeColumnName(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	return columnNameSanitizer.Replace(name)
}
