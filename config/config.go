// Package config holds the typed application configuration read from
// config/<env>/config.yaml and UNDENIABLE_* environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/undeniable-app/undeniable/adapters/validator"
	"github.com/undeniable-app/undeniable/adapters/viper"
	"github.com/undeniable-app/undeniable/blame"
	"github.com/undeniable-app/undeniable/utils/constant"
	"github.com/undeniable-app/undeniable/utils/helpers"
	"github.com/undeniable-app/undeniable/utils/types"
)

type Config struct {
	Service     string          `mapstructure:"service" json:"service" validate:"required"`
	Environment string          `mapstructure:"environment" json:"environment" validate:"required"`
	App         AppConfig       `mapstructure:"app" json:"app"`
	Server      ServerConfig    `mapstructure:"server" json:"server"`
	Directory   DirectoryConfig `mapstructure:"directory" json:"directory"`
	Log         LogConfig       `mapstructure:"log" json:"log"`
	Analytics   AnalyticsConfig `mapstructure:"analytics" json:"analytics"`
	Cache       CacheConfig     `mapstructure:"cache" json:"cache"`
}

type AppConfig struct {
	URL string `mapstructure:"url" json:"url" validate:"required,http_url"`
}

type ServerConfig struct {
	Port            string          `mapstructure:"port" json:"port" validate:"required,numeric"`
	ReadTimeout     time.Duration   `mapstructure:"read_timeout" json:"read_timeout"`
	ShutdownTimeout time.Duration   `mapstructure:"shutdown_timeout" json:"shutdown_timeout"`
	RateLimit       RateLimitConfig `mapstructure:"rate_limit" json:"rate_limit"`
}

type RateLimitConfig struct {
	RPS   float64       `mapstructure:"rps" json:"rps" validate:"gte=0"`
	Burst int           `mapstructure:"burst" json:"burst" validate:"gte=0"`
	TTL   time.Duration `mapstructure:"ttl" json:"ttl"`
}

type DirectoryConfig struct {
	Source     string        `mapstructure:"source" json:"source" validate:"oneof=embedded file http s3"`
	Path       string        `mapstructure:"path" json:"path" validate:"required_if=Source file"`
	URL        string        `mapstructure:"url" json:"url" validate:"required_if=Source http,omitempty,url"`
	HTTPClient string        `mapstructure:"http_client" json:"http_client" validate:"oneof=std fast"`
	Timeout    time.Duration `mapstructure:"timeout" json:"timeout"`
	S3         S3Config      `mapstructure:"s3" json:"s3"`
}

type S3Config struct {
	Bucket   string `mapstructure:"bucket" json:"bucket"`
	Key      string `mapstructure:"key" json:"key"`
	Region   string `mapstructure:"region" json:"region"`
	Endpoint string `mapstructure:"endpoint" json:"endpoint"`
}

type LogConfig struct {
	Level     string `mapstructure:"level" json:"level"`
	File      string `mapstructure:"file" json:"file"`
	MaxSizeMB int    `mapstructure:"max_size_mb" json:"max_size_mb" validate:"gte=0"`
}

type AnalyticsConfig struct {
	Enabled       bool   `mapstructure:"enabled" json:"enabled"`
	MeasurementID string `mapstructure:"measurement_id" json:"measurement_id"`
}

type CacheConfig struct {
	Size int `mapstructure:"size" json:"size" validate:"gte=1"`
}

// Defaults are applied before the file and environment are read.
func Defaults() map[string]any {
	return map[string]any{
		"service":                  "undeniable",
		"environment":              helpers.GetEnvironmentSlug(helpers.GetEnvironment()),
		"app.url":                  "",
		"server.port":              helpers.GetDefaultPort(),
		"server.read_timeout":      "10s",
		"server.shutdown_timeout":  constant.ServerDefaultGracefulTime.String(),
		"server.rate_limit.rps":    5.0,
		"server.rate_limit.burst":  20,
		"server.rate_limit.ttl":    "10m",
		"directory.source":         constant.SourceEmbedded.String(),
		"directory.path":           "",
		"directory.url":            "",
		"directory.http_client":    "std",
		"directory.timeout":        "10s",
		"directory.s3.bucket":      "",
		"directory.s3.key":         "",
		"directory.s3.region":      "",
		"directory.s3.endpoint":    "",
		"log.level":                "",
		"log.file":                 "",
		"log.max_size_mb":          50,
		"analytics.enabled":        false,
		"analytics.measurement_id": "",
		"cache.size":               256,
	}
}

// Load reads the configuration for the current environment from dir.
func Load(dir string) (*Config, error) {
	if helpers.IsEmpty(dir) {
		dir = constant.DefaultConfigDir
	}
	v := viper.NewViper(
		constant.DefaultConfigName,
		constant.DefaultConfigType,
		dir,
		viper.WithEnvPrefix(constant.EnvPrefix),
		viper.WithDefaults(Defaults()),
		viper.WithRequiredKeys("app.url", "environment"),
	)
	if err := v.InitialiseViper(); err != nil {
		return nil, blame.ConfigLoadFailure(v.ConfigPath(), err)
	}

	cfg := &Config{}
	if err := viper.UnmarshalConfig(v, cfg); err != nil {
		return nil, blame.ConfigLoadFailure(v.ConfigPath(), err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, blame.ConfigLoadFailure(v.ConfigPath(), err)
	}
	return cfg, nil
}

// Validate checks the struct tags and the S3 block when S3 is the source.
func (c *Config) Validate() error {
	errs := validator.NewValidator().ValidateStruct(c)
	if c.SourceKind() == constant.SourceS3 && (helpers.IsEmpty(c.Directory.S3.Bucket) || helpers.IsEmpty(c.Directory.S3.Key)) {
		if errs == nil {
			errs = map[string]string{}
		}
		errs["s3"] = "directory.s3.bucket and directory.s3.key are required for the s3 source"
	}
	if len(errs) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(errs))
	for field, msg := range errs {
		msgs = append(msgs, field+": "+msg)
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

// IsProduction reports whether the configured environment is production.
func (c *Config) IsProduction() bool {
	return helpers.GetEnvironmentSlug(c.Environment) == "prod"
}

// SourceKind returns the directory source as a typed value.
func (c *Config) SourceKind() types.SourceKind {
	return types.SourceKind(strings.ToLower(c.Directory.Source))
}
