// internal/config/config.go
package config

import (
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Cache     CacheConfig
	Data      DataConfig
	Pipeline  PipelineConfig
	Publisher PublisherConfig
}

type ServerConfig struct {
	Port           string
	Mode           string
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type CacheConfig struct {
	Enabled             bool
	RedisURL            string
	RedisHost           string
	RedisPort           string
	RedisPassword       string
	RedisDB             int
	DashboardTTLSeconds int
}

// DataConfig holds the per-stage artifact directories. Each pipeline stage
// reads from the previous stage's directory and writes its own.
type DataConfig struct {
	RootDir            string
	RawDir             string
	ProcessedDir       string
	AnalyticsDir       string
	RecommendationsDir string
	DashboardsDir      string
}

// PipelineConfig holds the analytics tunables. Defaults mirror the
// documented business constants; all are overridable via environment.
type PipelineConfig struct {
	Seed                int64
	ForecastTopN        int
	ForecastMinHistory  int
	ForecastHorizonDays int
	SMAWindow           int
	EWMASpan            int
	Contamination       float64
	OrderingCost        float64
	HoldingCostRate     float64
	ServiceLevelZ       float64
	PreferredRankMax    int
	ApprovedRankMax     int
	ScenarioCostLimit   float64
}

type PublisherConfig struct {
	Enabled   bool
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
}

var (
	once     sync.Once
	instance *Config
)

func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		// Set default values
		viper.SetDefault("SERVER_PORT", "8080")
		viper.SetDefault("SERVER_MODE", "debug")
		viper.SetDefault("SERVER_ALLOWED_ORIGINS", []string{"*"})
		viper.SetDefault("DB_HOST", "localhost")
		viper.SetDefault("DB_PORT", "5432")
		viper.SetDefault("DB_USER", "postgres")
		viper.SetDefault("DB_PASSWORD", "postgres")
		viper.SetDefault("DB_NAME", "chainsight")
		viper.SetDefault("DB_SSLMODE", "disable")
		viper.SetDefault("CACHE_ENABLED", false)
		viper.SetDefault("REDIS_URL", "")
		viper.SetDefault("REDIS_HOST", "127.0.0.1")
		viper.SetDefault("REDIS_PORT", "6379")
		viper.SetDefault("REDIS_PASSWORD", "")
		viper.SetDefault("REDIS_DB", 0)
		viper.SetDefault("CACHE_DASHBOARD_TTL_SECONDS", 60)
		viper.SetDefault("DATA_DIR", "./data")
		viper.SetDefault("PIPELINE_SEED", 42)
		viper.SetDefault("FORECAST_TOP_N", 5)
		viper.SetDefault("FORECAST_MIN_HISTORY_DAYS", 60)
		viper.SetDefault("FORECAST_HORIZON_DAYS", 30)
		viper.SetDefault("FORECAST_SMA_WINDOW", 7)
		viper.SetDefault("FORECAST_EWMA_SPAN", 7)
		viper.SetDefault("ANOMALY_CONTAMINATION", 0.05)
		viper.SetDefault("OPTIMIZE_ORDERING_COST", 100.0)
		viper.SetDefault("OPTIMIZE_HOLDING_COST_RATE", 0.25)
		viper.SetDefault("OPTIMIZE_SERVICE_LEVEL_Z", 1.65)
		viper.SetDefault("SUPPLIER_PREFERRED_RANK_MAX", 5)
		viper.SetDefault("SUPPLIER_APPROVED_RANK_MAX", 15)
		viper.SetDefault("SCENARIO_COST_LIMIT", 100000.0)
		viper.SetDefault("PUBLISHER_ENABLED", false)
		viper.SetDefault("PUBLISHER_ENDPOINT", "")
		viper.SetDefault("PUBLISHER_BUCKET", "")
		viper.SetDefault("PUBLISHER_REGION", "us-east-1")
		viper.SetDefault("PUBLISHER_USE_SSL", true)

		// Read from environment variables
		viper.AutomaticEnv()

		root := viper.GetString("DATA_DIR")
		data := DataConfig{
			RootDir:            root,
			RawDir:             filepath.Join(root, "raw"),
			ProcessedDir:       filepath.Join(root, "processed"),
			AnalyticsDir:       filepath.Join(root, "analytics"),
			RecommendationsDir: filepath.Join(root, "recommendations"),
			DashboardsDir:      filepath.Join(root, "dashboards"),
		}
		ensureDir(data.RootDir)

		instance = &Config{
			Server: ServerConfig{
				Port:           viper.GetString("SERVER_PORT"),
				Mode:           viper.GetString("SERVER_MODE"),
				AllowedOrigins: viper.GetStringSlice("SERVER_ALLOWED_ORIGINS"),
			},
			Database: DatabaseConfig{
				Host:     viper.GetString("DB_HOST"),
				Port:     viper.GetString("DB_PORT"),
				User:     viper.GetString("DB_USER"),
				Password: viper.GetString("DB_PASSWORD"),
				DBName:   viper.GetString("DB_NAME"),
				SSLMode:  viper.GetString("DB_SSLMODE"),
			},
			Cache: CacheConfig{
				Enabled:             viper.GetBool("CACHE_ENABLED"),
				RedisURL:            viper.GetString("REDIS_URL"),
				RedisHost:           viper.GetString("REDIS_HOST"),
				RedisPort:           viper.GetString("REDIS_PORT"),
				RedisPassword:       viper.GetString("REDIS_PASSWORD"),
				RedisDB:             viper.GetInt("REDIS_DB"),
				DashboardTTLSeconds: viper.GetInt("CACHE_DASHBOARD_TTL_SECONDS"),
			},
			Data: data,
			Pipeline: PipelineConfig{
				Seed:                viper.GetInt64("PIPELINE_SEED"),
				ForecastTopN:        viper.GetInt("FORECAST_TOP_N"),
				ForecastMinHistory:  viper.GetInt("FORECAST_MIN_HISTORY_DAYS"),
				ForecastHorizonDays: viper.GetInt("FORECAST_HORIZON_DAYS"),
				SMAWindow:           viper.GetInt("FORECAST_SMA_WINDOW"),
				EWMASpan:            viper.GetInt("FORECAST_EWMA_SPAN"),
				Contamination:       viper.GetFloat64("ANOMALY_CONTAMINATION"),
				OrderingCost:        viper.GetFloat64("OPTIMIZE_ORDERING_COST"),
				HoldingCostRate:     viper.GetFloat64("OPTIMIZE_HOLDING_COST_RATE"),
				ServiceLevelZ:       viper.GetFloat64("OPTIMIZE_SERVICE_LEVEL_Z"),
				PreferredRankMax:    viper.GetInt("SUPPLIER_PREFERRED_RANK_MAX"),
				ApprovedRankMax:     viper.GetInt("SUPPLIER_APPROVED_RANK_MAX"),
				ScenarioCostLimit:   viper.GetFloat64("SCENARIO_COST_LIMIT"),
			},
			Publisher: PublisherConfig{
				Enabled:   viper.GetBool("PUBLISHER_ENABLED"),
				Endpoint:  viper.GetString("PUBLISHER_ENDPOINT"),
				AccessKey: viper.GetString("PUBLISHER_ACCESS_KEY"),
				SecretKey: viper.GetString("PUBLISHER_SECRET_KEY"),
				Bucket:    viper.GetString("PUBLISHER_BUCKET"),
				Region:    viper.GetString("PUBLISHER_REGION"),
				UseSSL:    viper.GetBool("PUBLISHER_USE_SSL"),
			},
		}
	})

	return instance
}

func ensureDir(dir string) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}
}
