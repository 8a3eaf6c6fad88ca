// Package config loads and validates runtime configuration for the analyzer.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. PROFILE_DATABASE_URL.
const EnvPrefix = "PROFILE"

// Config is the full runtime configuration. Every section has usable defaults;
// only the database, storage and queue sections need values for the commands
// that use them.
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Database DatabaseConfig `mapstructure:"database"`
	Server   ServerConfig   `mapstructure:"server"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Queue    QueueConfig    `mapstructure:"queue"`
}

// LogConfig selects the zap encoder and level.
type LogConfig struct {
	JSON  bool `mapstructure:"json"`
	Debug bool `mapstructure:"debug"`
}

// AnalysisConfig tunes batch analysis.
type AnalysisConfig struct {
	Concurrency int `mapstructure:"concurrency" validate:"gte=1,lte=64"`
}

// DatabaseConfig points at the PostgreSQL report store.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"omitempty,url"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port         int             `mapstructure:"port" validate:"gte=1,lte=65535"`
	ReadTimeout  time.Duration   `mapstructure:"read_timeout" validate:"gt=0"`
	WriteTimeout time.Duration   `mapstructure:"write_timeout" validate:"gt=0"`
	MaxUploadMB  int             `mapstructure:"max_upload_mb" validate:"gte=1,lte=100"`
	RateLimit    RateLimitConfig `mapstructure:"rate_limit"`
	// JWTSecret enables bearer-token auth on the API when set.
	JWTSecret          string `mapstructure:"jwt_secret" validate:"omitempty,min=16"`
	JWTExpirationHours int    `mapstructure:"jwt_expiration_hours" validate:"gte=1"`
}

// RateLimitConfig configures the per-client request limiter.
type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerMinute int  `mapstructure:"requests_per_minute" validate:"gte=1"`
	Burst             int  `mapstructure:"burst" validate:"gte=1"`
}

// StorageConfig addresses an S3-compatible bucket (AWS S3 or Cloudflare R2).
type StorageConfig struct {
	Endpoint  string `mapstructure:"endpoint" validate:"omitempty,url"`
	AccountID string `mapstructure:"account_id"`
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// QueueConfig addresses the AMQP broker used by the worker.
type QueueConfig struct {
	URL      string `mapstructure:"url" validate:"omitempty,url"`
	Queue    string `mapstructure:"queue" validate:"required"`
	Exchange string `mapstructure:"exchange" validate:"required"`
	Workers  int    `mapstructure:"workers" validate:"gte=1,lte=64"`
}

// Error is a configuration loading or validation failure.
type Error struct {
	Field   string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error: %s: %s", e.Field, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("config error: %s: %v", e.Message, e.Cause)
	}
	return "config error: " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

var defaults = map[string]any{
	"log.json":                              false,
	"log.debug":                             false,
	"analysis.concurrency":                  4,
	"database.url":                          "",
	"server.port":                           8080,
	"server.read_timeout":                   "30s",
	"server.write_timeout":                  "60s",
	"server.max_upload_mb":                  10,
	"server.rate_limit.enabled":             true,
	"server.rate_limit.requests_per_minute": 60,
	"server.rate_limit.burst":               10,
	"server.jwt_secret":                     "",
	"server.jwt_expiration_hours":           24,
	"storage.endpoint":                      "",
	"storage.account_id":                    "",
	"storage.region":                        "auto",
	"storage.bucket":                        "",
	"storage.access_key":                    "",
	"storage.secret_key":                    "",
	"queue.url":                             "",
	"queue.queue":                           "resume_analysis",
	"queue.exchange":                        "report_updates",
	"queue.workers":                         2,
}

// NewViper returns a viper instance carrying the defaults and environment
// bindings. Callers may bind command-line flags to it before calling Decode.
func NewViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file at path (JSON or YAML), applies
// PROFILE_* environment overrides on top of it and validates the result.
func Load(path string) (*Config, error) {
	v := NewViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, &Error{Message: fmt.Sprintf("failed to read config file %s", path), Cause: err}
		}
	}
	return Decode(v)
}

// Decode unmarshals and validates the configuration held by v.
func Decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &Error{Message: "failed to decode config", Cause: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges with the struct tags above.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &Error{
			Field:   fe.Namespace(),
			Message: fmt.Sprintf("failed '%s' constraint (value %v)", fe.Tag(), fe.Value()),
			Cause:   err,
		}
	}
	return &Error{Message: "invalid config", Cause: err}
}

// StorageEnabled reports whether enough storage settings exist to build a client.
func (c *Config) StorageEnabled() bool {
	return c.Storage.Bucket != "" && c.Storage.AccessKey != "" && c.Storage.SecretKey != ""
}
