package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of all environment variables read by LoadAppConfig.
const EnvPrefix = "CATALOG"

// Supported repository engines.
const (
	EngineMemory   = "memory"
	EnginePostgres = "postgres"
)

// Supported PostgreSQL adapters.
const (
	AdapterPGX  = "pgx"
	AdapterSQL  = "sql"
	AdapterSQLX = "sqlx"
)

// Supported OTLP protocols.
const (
	ProtocolGRPC = "grpc"
	ProtocolHTTP = "http"
)

const (
	keyEngine               = "engine"
	keyPostgresAdapter      = "postgres_adapter"
	keyPostgresDSN          = "postgres_dsn"
	keySeedFile             = "seed_file"
	keyOperationTimeout     = "operation_timeout"
	keyObservabilityEnabled = "observability_enabled"
	keyOTLPEndpoint         = "otlp_endpoint"
	keyOTLPProtocol         = "otlp_protocol"
	keyServiceName          = "service_name"
	keyLogLevel             = "log_level"
)

// ErrInvalidConfig is returned when a loaded configuration value is not supported.
var ErrInvalidConfig = errors.New("invalid config")

// ErrReadingConfigFileFailed is returned when an explicitly given config file cannot be read.
var ErrReadingConfigFileFailed = errors.New("reading config file failed")

// AppConfig holds the settings of the catalog demo.
type AppConfig struct {
	Engine               string
	PostgresAdapter      string
	PostgresDSN          string
	SeedFile             string
	OperationTimeout     time.Duration
	ObservabilityEnabled bool
	OTLPEndpoint         string
	OTLPProtocol         string
	ServiceName          string
	LogLevel             string
}

// LoadAppConfig reads the configuration from defaults, the optional config file and the environment.
// Environment variables take precedence over the file, e.g. CATALOG_ENGINE=postgres.
func LoadAppConfig(configFile string) (*AppConfig, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyEngine, EngineMemory)
	v.SetDefault(keyPostgresAdapter, AdapterPGX)
	v.SetDefault(keyPostgresDSN, PostgresTestDSN())
	v.SetDefault(keySeedFile, "")
	v.SetDefault(keyOperationTimeout, "5s")
	v.SetDefault(keyObservabilityEnabled, false)
	v.SetDefault(keyOTLPEndpoint, OTELCollectorEndpoint())
	v.SetDefault(keyOTLPProtocol, ProtocolGRPC)
	v.SetDefault(keyServiceName, "catalog")
	v.SetDefault(keyLogLevel, "info")

	if configFile != "" {
		v.SetConfigFile(configFile)

		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Join(ErrReadingConfigFileFailed, err)
		}
	}

	cfg := &AppConfig{
		Engine:               strings.ToLower(v.GetString(keyEngine)),
		PostgresAdapter:      strings.ToLower(v.GetString(keyPostgresAdapter)),
		PostgresDSN:          v.GetString(keyPostgresDSN),
		SeedFile:             v.GetString(keySeedFile),
		OperationTimeout:     v.GetDuration(keyOperationTimeout),
		ObservabilityEnabled: v.GetBool(keyObservabilityEnabled),
		OTLPEndpoint:         v.GetString(keyOTLPEndpoint),
		OTLPProtocol:         strings.ToLower(v.GetString(keyOTLPProtocol)),
		ServiceName:          v.GetString(keyServiceName),
		LogLevel:             v.GetString(keyLogLevel),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that all enumerated settings hold supported values.
func (c *AppConfig) Validate() error {
	switch c.Engine {
	case EngineMemory, EnginePostgres:
	default:
		return fmt.Errorf("%w: unsupported engine %q", ErrInvalidConfig, c.Engine)
	}

	switch c.PostgresAdapter {
	case AdapterPGX, AdapterSQL, AdapterSQLX:
	default:
		return fmt.Errorf("%w: unsupported postgres adapter %q", ErrInvalidConfig, c.PostgresAdapter)
	}

	switch c.OTLPProtocol {
	case ProtocolGRPC, ProtocolHTTP:
	default:
		return fmt.Errorf("%w: unsupported otlp protocol %q", ErrInvalidConfig, c.OTLPProtocol)
	}

	if c.OperationTimeout <= 0 {
		return fmt.Errorf("%w: operation timeout must be positive", ErrInvalidConfig)
	}

	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// SlogLevel parses LogLevel into a slog.Level.
func (c *AppConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: unsupported log level %q", ErrInvalidConfig, c.LogLevel)
	}

	return level, nil
}
