package config

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level" env:"WORKOUTWARE_LOG_LEVEL, overwrite"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost     string `toml:"postgres_host" env:"WORKOUTWARE_POSTGRES_HOST, overwrite"`
	PostgresPort     string `toml:"postgres_port" env:"WORKOUTWARE_POSTGRES_PORT, overwrite"`
	PostgresDBName   string `toml:"postgres_db_name"`
	PostgresUser     string `toml:"postgres_user"`
	PostgresPassword string `toml:"-" env:"WORKOUTWARE_POSTGRES_PASS, overwrite"`
	PostgresMaxConns int32  `toml:"postgres_max_conns"`

	// redis
	RedisHost     string `toml:"redis_host" env:"WORKOUTWARE_REDIS_HOST, overwrite"`
	RedisPort     string `toml:"redis_port"`
	RedisPassword string `toml:"-" env:"WORKOUTWARE_REDIS_PASS, overwrite"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// api
	AllowedOrigins []string `toml:"allowed_origins"`
	APISecret      string   `toml:"-" env:"WORKOUTWARE_API_SECRET, overwrite"`
	AdminTokenHash string   `toml:"-" env:"WORKOUTWARE_ADMIN_TOKEN_HASH, overwrite"`

	// requests per minute allowed on the set logging endpoint
	LogSetRateLimitPerMin int `toml:"log_set_rate_limit_per_min"`

	Validation      Validation      `toml:"validation"`
	Recommendations Recommendations `toml:"recommendations"`
	Catalog         Catalog         `toml:"catalog"`
}

type Validation struct {
	OutlierPct       float64 `toml:"outlier_pct" env:"WORKOUTWARE_OUTLIER_PCT, overwrite"`
	SuspiciousLowPct float64 `toml:"suspicious_low_pct" env:"WORKOUTWARE_SUSPICIOUS_LOW_PCT, overwrite"`
}

type Recommendations struct {
	MinConsecutiveSets    int     `toml:"min_consecutive_sets" env:"WORKOUTWARE_MIN_CONSECUTIVE_SETS, overwrite"`
	WeightIncreasePct     float64 `toml:"weight_increase_pct" env:"WORKOUTWARE_WEIGHT_INCREASE_PCT, overwrite"`
	LookbackDays          int     `toml:"lookback_days" env:"WORKOUTWARE_LOOKBACK_DAYS, overwrite"`
	LowVolumeThresholdPct float64 `toml:"low_volume_threshold_pct" env:"WORKOUTWARE_LOW_VOLUME_THRESHOLD_PCT, overwrite"`
}

type Catalog struct {
	CacheSizeMB     int `toml:"cache_size_mb"`
	CacheTTLSeconds int `toml:"cache_ttl_seconds"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

// Get returns the section for env and its name.
func (t *Toml) Get(env string) (*Config, string, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, "development", nil
	case "prod", "production":
		return t.Production, "production", nil
	default:
		return nil, "", fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML file at path, picks the section for env and applies
// environment variable overrides and defaults on top of it. Pipeline thresholds
// fall back to defaults only when the key is absent, an explicit value is kept
// and range checked.
func Load(env, path string) (*Config, error) {
	var t Toml
	md, err := toml.DecodeFile(path, &t)
	if err != nil {
		return nil, fmt.Errorf("decode toml config [%s]: %w", path, err)
	}

	cfg, section, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config section for env [%s] missing", env)
	}

	cfg.applyThresholdDefaults(func(key ...string) bool {
		// section headers may be written capitalized
		for _, name := range []string{section, strings.ToUpper(section[:1]) + section[1:]} {
			if md.IsDefined(append([]string{name}, key...)...) {
				return true
			}
		}
		return false
	})

	if err := envconfig.Process(context.Background(), cfg); err != nil {
		return nil, fmt.Errorf("process env overrides: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9000
	}
	if c.PostgresPort == "" {
		c.PostgresPort = "5432"
	}
	if c.PostgresDBName == "" {
		c.PostgresDBName = "workoutware"
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}
	if c.PrometheusMetricsHost == "" {
		c.PrometheusMetricsHost = "localhost"
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = "2112"
	}
	if c.LogSetRateLimitPerMin == 0 {
		c.LogSetRateLimitPerMin = 120
	}

	def := Default()
	if c.Catalog.CacheSizeMB == 0 {
		c.Catalog.CacheSizeMB = def.Catalog.CacheSizeMB
	}
	if c.Catalog.CacheTTLSeconds == 0 {
		c.Catalog.CacheTTLSeconds = def.Catalog.CacheTTLSeconds
	}
}

func (c *Config) applyThresholdDefaults(defined func(key ...string) bool) {
	def := Default()
	if !defined("validation", "outlier_pct") {
		c.Validation.OutlierPct = def.Validation.OutlierPct
	}
	if !defined("validation", "suspicious_low_pct") {
		c.Validation.SuspiciousLowPct = def.Validation.SuspiciousLowPct
	}
	if !defined("recommendations", "min_consecutive_sets") {
		c.Recommendations.MinConsecutiveSets = def.Recommendations.MinConsecutiveSets
	}
	if !defined("recommendations", "weight_increase_pct") {
		c.Recommendations.WeightIncreasePct = def.Recommendations.WeightIncreasePct
	}
	if !defined("recommendations", "lookback_days") {
		c.Recommendations.LookbackDays = def.Recommendations.LookbackDays
	}
	if !defined("recommendations", "low_volume_threshold_pct") {
		c.Recommendations.LowVolumeThresholdPct = def.Recommendations.LowVolumeThresholdPct
	}
}

// Default returns a development config with the pipeline defaults.
func Default() *Config {
	return &Config{
		Environment:           "development",
		Host:                  "localhost",
		Port:                  9000,
		LogLevel:              "debug",
		PostgresHost:          "localhost",
		PostgresPort:          "5432",
		PostgresDBName:        "workoutware",
		RedisHost:             "localhost",
		RedisPort:             "6379",
		PrometheusMetricsHost: "localhost",
		PrometheusMetricsPort: "2112",
		LogSetRateLimitPerMin: 120,
		Validation: Validation{
			OutlierPct:       0.15,
			SuspiciousLowPct: 0.30,
		},
		Recommendations: Recommendations{
			MinConsecutiveSets:    3,
			WeightIncreasePct:     2.5,
			LookbackDays:          30,
			LowVolumeThresholdPct: 0.30,
		},
		Catalog: Catalog{
			CacheSizeMB:     8,
			CacheTTLSeconds: 300,
		},
	}
}

func (c *Config) Validate() error {
	var errs []error
	if c.Validation.OutlierPct <= 0 {
		errs = append(errs, errors.New("validation.outlier_pct must be positive"))
	}
	// zero turns the suspicious low rule off
	if c.Validation.SuspiciousLowPct < 0 || c.Validation.SuspiciousLowPct >= 1 {
		errs = append(errs, errors.New("validation.suspicious_low_pct must be in [0, 1)"))
	}
	if c.Recommendations.MinConsecutiveSets < 1 {
		errs = append(errs, errors.New("recommendations.min_consecutive_sets must be at least 1"))
	}
	if c.Recommendations.WeightIncreasePct <= 0 {
		errs = append(errs, errors.New("recommendations.weight_increase_pct must be positive"))
	}
	if c.Recommendations.LookbackDays < 1 {
		errs = append(errs, errors.New("recommendations.lookback_days must be at least 1"))
	}
	if c.Recommendations.LowVolumeThresholdPct <= 0 || c.Recommendations.LowVolumeThresholdPct > 1 {
		errs = append(errs, errors.New("recommendations.low_volume_threshold_pct must be in (0, 1]"))
	}
	if c.LogSetRateLimitPerMin < 0 {
		errs = append(errs, errors.New("log_set_rate_limit_per_min must not be negative"))
	}
	return errors.Join(errs...)
}
