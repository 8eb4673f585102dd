package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/andresuchdata/chainsight/internal/config"
	"github.com/andresuchdata/chainsight/internal/pipeline"
	"github.com/andresuchdata/chainsight/internal/storage"
	"github.com/andresuchdata/chainsight/pkg/logger"
)

func newEnv() *pipeline.Env {
	cfg := config.Load()
	logger.SetLevel(cfg.Server.Mode)
	return pipeline.NewEnv(cfg)
}

func runStages(c *cli.Context, stages ...pipeline.Stage) error {
	env := newEnv()
	runner := pipeline.NewRunner(env, stages...)
	report, err := runner.Run(c.Context)
	if err != nil {
		return err
	}
	logger.Log.Info().
		Int("stages", len(report.Stages)).
		Dur("elapsed", report.CompletedAt.Sub(report.StartedAt)).
		Msg("pipeline run finished")
	return nil
}

func stageCommand(name, usage string, stage pipeline.Stage) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: usage,
		Action: func(c *cli.Context) error {
			return runStages(c, stage)
		},
	}
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env file: %v", err)
	}

	app := &cli.App{
		Name:  "chainsight",
		Usage: "Supply chain analytics pipeline",
		Commands: []*cli.Command{
			stageCommand("generate", "Write a fresh synthetic raw extract", pipeline.ExtractStage{}),
			stageCommand("transform", "Enrich raw facts and roll up metric tables", pipeline.TransformStage{}),
			stageCommand("predict", "Run demand forecasting, anomaly detection and risk scoring", pipeline.PredictStage{}),
			stageCommand("optimize", "Compute reorder policies, supplier rankings and recommendations", pipeline.OptimizeStage{}),
			stageCommand("dashboard", "Materialize the dashboard tables", pipeline.DashboardStage{}),
			{
				Name:  "run",
				Usage: "Run the full pipeline",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "with-extract",
						Usage: "Generate a fresh raw extract before transforming",
					},
				},
				Action: func(c *cli.Context) error {
					stages := pipeline.Full()
					if c.Bool("with-extract") {
						stages = append([]pipeline.Stage{pipeline.ExtractStage{}}, stages...)
					}
					return runStages(c, stages...)
				},
			},
			{
				Name:  "publish",
				Usage: "Upload the dashboard tables to object storage",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "prefix",
						Usage:   "Key prefix for the uploaded artifacts",
						Value:   "dashboards",
						EnvVars: []string{"PUBLISH_PREFIX"},
					},
				},
				Action: func(c *cli.Context) error {
					env := newEnv()
					pub := env.Cfg.Publisher
					if !pub.Enabled {
						return fmt.Errorf("publisher is disabled, set PUBLISHER_ENABLED=true")
					}
					client, err := storage.NewS3Client(storage.S3Config{
						Endpoint:  pub.Endpoint,
						AccessKey: pub.AccessKey,
						SecretKey: pub.SecretKey,
						Bucket:    pub.Bucket,
						Region:    pub.Region,
						UseSSL:    pub.UseSSL,
					})
					if err != nil {
						return err
					}
					publisher := storage.NewPublisher(client, c.String("prefix"))
					n, err := publisher.PublishDir(c.Context, env.Cfg.Data.DashboardsDir)
					if err != nil {
						return err
					}
					logger.Log.Info().Int("artifacts", n).Msg("dashboards published")
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Log.Fatal().Err(err).Msg("command failed")
	}
}
