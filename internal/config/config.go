// Package config loads application configuration from config.yaml and the
// environment, and initializes the global logger.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Geo        GeoConfig        `yaml:"geo" mapstructure:"geo"`
	Cache      CacheConfig      `yaml:"cache" mapstructure:"cache"`
	Batch      BatchConfig      `yaml:"batch" mapstructure:"batch"`
	Retry      RetryConfig      `yaml:"retry" mapstructure:"retry"`
	Circuit    CircuitConfig    `yaml:"circuit" mapstructure:"circuit"`
	Competitor CompetitorConfig `yaml:"competitor" mapstructure:"competitor"`
	Output     OutputConfig     `yaml:"output" mapstructure:"output"`
	Server     ServerConfig     `yaml:"server" mapstructure:"server"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
}

// GeoConfig configures the geo-query client and query building.
type GeoConfig struct {
	Endpoints       []string `yaml:"endpoints" mapstructure:"endpoints"`
	QueryMode       string   `yaml:"query_mode" mapstructure:"query_mode"`
	RadiusM         int      `yaml:"radius_m" mapstructure:"radius_m"`
	EscalateRadiusM int      `yaml:"escalate_radius_m" mapstructure:"escalate_radius_m"`
	RateLimitRPS    float64  `yaml:"rate_limit_rps" mapstructure:"rate_limit_rps"`
	UserAgent       string   `yaml:"user_agent" mapstructure:"user_agent"`
}

// CacheConfig configures the persisted result cache.
type CacheConfig struct {
	Path    string `yaml:"path" mapstructure:"path"`
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
}

// BatchConfig configures the batch orchestrator.
type BatchConfig struct {
	Size           int    `yaml:"size" mapstructure:"size"`
	Workers        int    `yaml:"workers" mapstructure:"workers"`
	CheckpointPath string `yaml:"checkpoint_path" mapstructure:"checkpoint_path"`
	WithDetails    bool   `yaml:"with_details" mapstructure:"with_details"`
}

// RetryConfig configures per-outlet retries.
type RetryConfig struct {
	MaxAttempts      int     `yaml:"max_attempts" mapstructure:"max_attempts"`
	InitialBackoffMs int     `yaml:"initial_backoff_ms" mapstructure:"initial_backoff_ms"`
	Multiplier       float64 `yaml:"multiplier" mapstructure:"multiplier"`
}

// CircuitConfig configures the geo-service circuit breaker.
type CircuitConfig struct {
	FailureThreshold int `yaml:"failure_threshold" mapstructure:"failure_threshold"`
	ResetTimeoutSecs int `yaml:"reset_timeout_secs" mapstructure:"reset_timeout_secs"`
}

// CompetitorConfig configures the proximity engine.
type CompetitorConfig struct {
	DatasetPath string  `yaml:"dataset_path" mapstructure:"dataset_path"`
	RadiusKM    float64 `yaml:"radius_km" mapstructure:"radius_km"`
}

// OutputConfig names the artifact locations.
type OutputConfig struct {
	Dir         string `yaml:"dir" mapstructure:"dir"`
	ExcelFile   string `yaml:"excel_file" mapstructure:"excel_file"`
	GeoJSONFile string `yaml:"geojson_file" mapstructure:"geojson_file"`
	SummaryFile string `yaml:"summary_file" mapstructure:"summary_file"`
	ReportFile  string `yaml:"report_file" mapstructure:"report_file"`
}

// ServerConfig configures the artifact file server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("OUTLET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("geo.query_mode", "simplified")
	v.SetDefault("geo.radius_m", 100)
	v.SetDefault("geo.escalate_radius_m", 200)
	v.SetDefault("geo.rate_limit_rps", 2)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.path", "outlet-cache.db")
	v.SetDefault("batch.size", 1000)
	v.SetDefault("batch.workers", 8)
	v.SetDefault("batch.checkpoint_path", "checkpoint.json")
	v.SetDefault("retry.max_attempts", 2)
	v.SetDefault("retry.initial_backoff_ms", 1500)
	v.SetDefault("retry.multiplier", 1.5)
	v.SetDefault("circuit.failure_threshold", 5)
	v.SetDefault("circuit.reset_timeout_secs", 30)
	v.SetDefault("competitor.radius_km", 0.5)
	v.SetDefault("output.dir", "output")
	v.SetDefault("output.excel_file", "outlet-analysis.xlsx")
	v.SetDefault("output.geojson_file", "outlet-analysis.geojson")
	v.SetDefault("output.summary_file", "summary.json")
	v.SetDefault("output.report_file", "competitor-report.json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
