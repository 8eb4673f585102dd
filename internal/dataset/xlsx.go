package dataset

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/andresuchdata/chainsight/internal/table"
	"github.com/xuri/excelize/v2"
)

// readXLSX loads the first sheet of an XLSX workbook into a Table. The
// sheet must have a header row compatible with the CSV layout.
func readXLSX(path string) (*table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx file %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx file %s has no sheets", path)
	}

	rows, err := f.Rows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from sheet %s: %w", sheets[0], err)
	}
	defer rows.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	var t *table.Table
	for rows.Next() {
		record, err := rows.Columns()
		if err != nil {
			return nil, fmt.Errorf("failed to read row from %s: %w", path, err)
		}
		if t == nil {
			t = table.New(name, record)
			continue
		}
		// Short rows are padded so column lookups stay in bounds.
		for len(record) < len(t.Columns) {
			record = append(record, "")
		}
		t.Append(record)
	}

	if err := rows.Error(); err != nil {
		return nil, fmt.Errorf("error iterating rows in %s: %w", path, err)
	}
	if t == nil {
		return nil, &table.SchemaError{Artifact: name}
	}

	return t, nil
}
