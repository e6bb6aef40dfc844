package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration. Environment
// names are derived from the field path under EnvPrefix, for example
// IRIS_SERVER_READ_TIMEOUT. Defaults come from Default.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Workbook  WorkbookConfig  `yaml:"workbook"`
	Logging   LoggingConfig   `yaml:"logging"`
	Security  SecurityConfig  `yaml:"security"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout" split_words:"true"`
	WriteTimeout    time.Duration `yaml:"write_timeout" split_words:"true"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" split_words:"true"`
	MaxHeaderBytes  int           `yaml:"max_header_bytes" split_words:"true"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" split_words:"true"`
	RequestTimeout  time.Duration `yaml:"request_timeout" split_words:"true"`
}

// WorkbookConfig points at the spreadsheet loaded at startup
type WorkbookConfig struct {
	Path string `yaml:"path"`
	// Sheets restricts segmentation to the listed sheets; empty means all
	Sheets []string `yaml:"sheets"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level"`
	Format   string `yaml:"format"`
	Output   string `yaml:"output"`
	FilePath string `yaml:"file_path" split_words:"true"`
}

// SecurityConfig contains CORS and rate limiting configuration
type SecurityConfig struct {
	AllowedOrigins []string        `yaml:"allowed_origins" split_words:"true"`
	EnableCORS     bool            `yaml:"enable_cors" split_words:"true"`
	RateLimit      RateLimitConfig `yaml:"rate_limit" split_words:"true"`
}

// RateLimitConfig contains rate limiting configuration
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled"`
	RPS     float64 `yaml:"rps"`
	Burst   int     `yaml:"burst"`
}

// TelemetryConfig controls OpenTelemetry tracing and metrics
type TelemetryConfig struct {
	EnableMetrics bool    `yaml:"enable_metrics" split_words:"true"`
	EnableTracing bool    `yaml:"enable_tracing" split_words:"true"`
	TraceExporter string  `yaml:"trace_exporter" split_words:"true"`
	SampleRatio   float64 `yaml:"sample_ratio" split_words:"true"`
	Environment   string  `yaml:"environment"`
}

// Address returns the listen address for the HTTP server
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Load loads configuration from environment variables and the first config
// file found in the usual locations. Environment values win over the file.
func Load() (*Config, error) {
	return LoadFrom(findConfigFile())
}

// LoadFrom is Load with an explicit config file; an empty path skips the file.
// Precedence is defaults, then the file, then IRIS_ variables.
func LoadFrom(configFile string) (*Config, error) {
	cfg := Default()

	if configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	// fields carry no default tags, so only variables that are set apply
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile decodes a YAML file over cfg; keys the file omits keep their
// current value
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// validate validates the configuration
func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("server read timeout must be positive")
	}

	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server write timeout must be positive")
	}

	if c.Server.RequestTimeout <= 0 {
		return fmt.Errorf("server request timeout must be positive")
	}

	if strings.TrimSpace(c.Workbook.Path) == "" {
		return fmt.Errorf("workbook path must be set")
	}

	if c.Security.EnableCORS && len(c.Security.AllowedOrigins) == 0 {
		return fmt.Errorf("at least one allowed origin must be specified")
	}

	if c.Security.RateLimit.Enabled && (c.Security.RateLimit.RPS <= 0 || c.Security.RateLimit.Burst <= 0) {
		return fmt.Errorf("rate limit rps and burst must be positive")
	}

	switch c.Telemetry.TraceExporter {
	case TraceExporterNone, TraceExporterStdout:
	default:
		return fmt.Errorf("unknown trace exporter: %q", c.Telemetry.TraceExporter)
	}

	if c.Telemetry.SampleRatio < 0 || c.Telemetry.SampleRatio > 1 {
		return fmt.Errorf("telemetry sample ratio must be within [0,1]: %v", c.Telemetry.SampleRatio)
	}

	// JSON is the only supported log format
	c.Logging.Format = "json"

	switch c.Logging.Output {
	case "console", "file", "both":
	default:
		c.Logging.Output = "console"
	}

	if c.Logging.FilePath == "" {
		c.Logging.FilePath = DefaultLogFile
	}

	return nil
}

// findConfigFile returns the first config file found, or ""
func findConfigFile() string {
	if p := os.Getenv(EnvPrefix + "_CONFIG_FILE"); p != "" {
		return p
	}

	for _, location := range configLocations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return ""
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            DefaultPort,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			MaxHeaderBytes:  1 << 20,
			ShutdownTimeout: 30 * time.Second,
			RequestTimeout:  DefaultRequestTimeout,
		},
		Workbook: WorkbookConfig{
			Path: DefaultWorkbookPath,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: DefaultLogFile,
		},
		Security: SecurityConfig{
			AllowedOrigins: []string{"*"},
			EnableCORS:     true,
			RateLimit: RateLimitConfig{
				Enabled: false,
				RPS:     100,
				Burst:   50,
			},
		},
		Telemetry: TelemetryConfig{
			EnableMetrics: true,
			EnableTracing: false,
			TraceExporter: TraceExporterNone,
			SampleRatio:   1.0,
			Environment:   "development",
		},
	}
}
