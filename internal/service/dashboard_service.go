package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/andresuchdata/chainsight/internal/cache"
	"github.com/andresuchdata/chainsight/internal/dataset"
	"github.com/andresuchdata/chainsight/internal/table"
)

// DashboardService serves the materialized dashboard tables as JSON, with a
// cache in front of the CSV artifacts.
type DashboardService struct {
	store *dataset.Store
	cache cache.DashboardCache
}

func NewDashboardService(store *dataset.Store, cacheImpl cache.DashboardCache) *DashboardService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopDashboardCache()
	}
	return &DashboardService{store: store, cache: cacheImpl}
}

// Tables lists the dashboard tables currently materialized on disk, by name
// without the .csv suffix.
func (s *DashboardService) Tables() ([]string, error) {
	entries, err := os.ReadDir(s.store.DashboardsPath(""))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not list dashboard tables: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".csv") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".csv"))
	}
	sort.Strings(names)
	return names, nil
}

// Table returns one dashboard table as a JSON array of row objects.
// Returns ok=false when the table does not exist.
func (s *DashboardService) Table(ctx context.Context, name string) ([]byte, bool, error) {
	if !validTableName(name) {
		return nil, false, nil
	}

	if payload, ok, err := s.cache.Get(ctx, name); err == nil && ok {
		return payload, true, nil
	} else if err != nil {
		log.Warn().Err(err).Str("table", name).Msg("dashboard cache get failed")
	}

	path := s.store.DashboardsPath(name + ".csv")
	if !dataset.Exists(path) {
		return nil, false, nil
	}

	t, err := table.ReadCSV(path)
	if err != nil {
		return nil, false, fmt.Errorf("could not read dashboard table %s: %w", name, err)
	}

	payload, err := marshalTable(t)
	if err != nil {
		return nil, false, err
	}

	if err := s.cache.Set(ctx, name, payload); err != nil {
		log.Warn().Err(err).Str("table", name).Msg("dashboard cache set failed")
	}

	return payload, true, nil
}

// Invalidate drops every cached dashboard table.
func (s *DashboardService) Invalidate(ctx context.Context) error {
	return s.cache.InvalidateAll(ctx)
}

// validTableName rejects anything that could escape the dashboards directory.
func validTableName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
		default:
			return false
		}
	}
	return true
}

func marshalTable(t *table.Table) ([]byte, error) {
	rows := make([]map[string]string, 0, t.Len())
	for _, record := range t.Rows {
		row := make(map[string]string, len(t.Columns))
		for i, col := range t.Columns {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}
	payload, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("could not encode dashboard table %s: %w", t.Name, err)
	}
	return payload, nil
}
