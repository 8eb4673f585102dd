package main

import (
	"context"
	"flag"
	"time"

	"github.com/joho/godotenv"

	"github.com/andresuchdata/chainsight/internal/config"
	"github.com/andresuchdata/chainsight/internal/dataset"
	"github.com/andresuchdata/chainsight/internal/warehouse"
	"github.com/andresuchdata/chainsight/pkg/logger"
)

func main() {
	timeout := flag.Duration("timeout", 10*time.Minute, "Overall ingestion deadline")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.Load()
	logger.SetLevel(cfg.Server.Mode)

	db, err := warehouse.NewDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	store := dataset.NewStore(cfg.Data)
	ingestor := warehouse.NewIngestor(db, store)

	counts, err := ingestor.Run(ctx)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Ingestion failed")
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	logger.Log.Info().Int("tables", len(counts)).Int("rows", total).Msg("Ingestion complete")
}
