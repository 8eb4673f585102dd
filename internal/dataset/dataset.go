// Package dataset maps the on-disk stage artifacts to typed rows. Each
// pipeline stage reads typed inputs from the previous stage's directory and
// persists its own outputs; the column layouts here are the external
// contract consumed by the dashboard layer.
package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/andresuchdata/chainsight/internal/config"
	"github.com/andresuchdata/chainsight/internal/table"
)

// Store resolves artifact paths inside the per-stage data directories.
type Store struct {
	Data config.DataConfig
}

func NewStore(data config.DataConfig) *Store {
	return &Store{Data: data}
}

func (s *Store) RawPath(name string) string {
	return filepath.Join(s.Data.RawDir, name)
}

func (s *Store) ProcessedPath(name string) string {
	return filepath.Join(s.Data.ProcessedDir, name)
}

func (s *Store) AnalyticsPath(name string) string {
	return filepath.Join(s.Data.AnalyticsDir, name)
}

func (s *Store) RecommendationsPath(name string) string {
	return filepath.Join(s.Data.RecommendationsDir, name)
}

func (s *Store) DashboardsPath(name string) string {
	return filepath.Join(s.Data.DashboardsDir, name)
}

// loadRaw reads a raw input table, preferring CSV and falling back to an
// XLSX workbook with the same base name.
func (s *Store) loadRaw(base string) (*table.Table, error) {
	csvPath := s.RawPath(base + ".csv")
	if _, err := os.Stat(csvPath); err == nil {
		return table.ReadCSV(csvPath)
	}

	xlsxPath := s.RawPath(base + ".xlsx")
	if _, err := os.Stat(xlsxPath); err == nil {
		return readXLSX(xlsxPath)
	}

	return nil, &table.SchemaError{Artifact: base}
}

// Exists reports whether an artifact is present. Downstream consumers use
// this to tolerate a missing forecast table.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsSchemaError reports whether err is a fatal schema problem.
func IsSchemaError(err error) bool {
	var se *table.SchemaError
	return errors.As(err, &se)
}

const dateLayout = "2006-01-02"

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatInt(v int) string {
	return strconv.Itoa(v)
}
