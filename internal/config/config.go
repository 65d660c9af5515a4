package config

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/collate/internal/errors"
)

const (
	// DefaultPort is the default demo server port.
	DefaultPort = 3000

	// DefaultHost is the default demo server host.
	DefaultHost = "localhost"

	// DefaultMetricsPath is where Prometheus metrics are served.
	DefaultMetricsPath = "/metrics"

	// DefaultNamespace prefixes all metric names.
	DefaultNamespace = "collate"
)

// FileNames lists the config files Load looks for, in order.
var FileNames = []string{"collate.json", "collate.yaml", "collate.yml"}

// Config is the configuration for the collate CLI and demo server.
type Config struct {
	// Server contains HTTP server settings.
	Server ServerConfig `json:"server,omitempty" yaml:"server,omitempty"`

	// Render contains page rendering settings.
	Render RenderConfig `json:"render,omitempty" yaml:"render,omitempty"`

	// Metrics contains Prometheus settings.
	Metrics MetricsConfig `json:"metrics,omitempty" yaml:"metrics,omitempty"`

	// Tracing contains OpenTelemetry settings.
	Tracing TracingConfig `json:"tracing,omitempty" yaml:"tracing,omitempty"`

	// Log contains logger settings.
	Log LogConfig `json:"log,omitempty" yaml:"log,omitempty"`

	// Props are the default provider props used when a request or flag
	// does not set them.
	Props map[string]string `json:"props,omitempty" yaml:"props,omitempty"`

	// Layers names the provider layers to compose, outermost first.
	// Empty means the full demo stack.
	Layers []string `json:"layers,omitempty" yaml:"layers,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string `json:"host,omitempty" yaml:"host,omitempty"`
	Port int    `json:"port,omitempty" yaml:"port,omitempty"`

	// ShutdownTimeout is a duration string (e.g., "10s").
	ShutdownTimeout string `json:"shutdownTimeout,omitempty" yaml:"shutdownTimeout,omitempty"`
}

// RenderConfig contains page rendering settings.
type RenderConfig struct {
	Pretty bool   `json:"pretty,omitempty" yaml:"pretty,omitempty"`
	Title  string `json:"title,omitempty" yaml:"title,omitempty"`
	Lang   string `json:"lang,omitempty" yaml:"lang,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	Enabled   bool   `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Path      string `json:"path,omitempty" yaml:"path,omitempty"`
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
}

// TracingConfig contains OpenTelemetry settings.
type TracingConfig struct {
	Enabled    bool   `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	TracerName string `json:"tracerName,omitempty" yaml:"tracerName,omitempty"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty" yaml:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// New returns a Config with defaults applied.
func New() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load loads the first config file found in dir. When none exists it
// returns the defaults.
func Load(dir string) (*Config, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return New(), nil
}

// LoadFile loads a config file, decoding it as JSON or YAML based on its
// extension.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(errors.CodeConfigRead).
			Wrap(err).
			WithSuggestion("Check the --config path")
	}

	cfg := &Config{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, errors.New(errors.CodeConfigFormat).
			WithDetail("Got " + filepath.Base(path) + "; config files must end in .json, .yaml or .yml.")
	}
	if err != nil {
		return nil, errors.New(errors.CodeConfigParse).
			Wrap(err).
			WithSuggestion("Check that " + filepath.Base(path) + " is well formed")
	}

	cfg.configPath = path
	cfg.applyDefaults()
	return cfg, nil
}

// SaveTo writes the config to path, as JSON or YAML based on its extension.
func (c *Config) SaveTo(path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err = json.MarshalIndent(c, "", "  ")
		data = append(data, '\n')
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		return errors.New(errors.CodeConfigFormat)
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	c.configPath = path
	return nil
}

// Path returns the path the config was loaded from, or "" for defaults.
func (c *Config) Path() string {
	return c.configPath
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.ShutdownTimeout == "" {
		c.Server.ShutdownTimeout = "10s"
	}
	if c.Render.Title == "" {
		c.Render.Title = "collate"
	}
	if c.Render.Lang == "" {
		c.Render.Lang = "en"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
	if c.Tracing.TracerName == "" {
		c.Tracing.TracerName = "collate"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// ApplyEnv overrides values from COLLATE_* environment variables.
// lookup is usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("COLLATE_HOST"); ok && v != "" {
		c.Server.Host = v
	}
	if v, ok := lookup("COLLATE_PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return errors.New(errors.CodeConfigInvalid).
				Wrap(err).
				WithDetail("COLLATE_PORT must be a number")
		}
		c.Server.Port = port
	}
	if v, ok := lookup("COLLATE_LOG_LEVEL"); ok && v != "" {
		c.Log.Level = v
	}
	return nil
}

// Validate checks the config for invalid values.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New(errors.CodeConfigInvalid).
			WithDetail("Port must be between 0 and 65535")
	}
	if _, err := c.ShutdownTimeout(); err != nil {
		return errors.New(errors.CodeConfigInvalid).
			Wrap(err).
			WithDetail("server.shutdownTimeout must be a duration like \"10s\"")
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.New(errors.CodeConfigInvalid).
			WithDetail(fmt.Sprintf("log.format must be text or json, got %q", c.Log.Format))
	}
	if !strings.HasPrefix(c.Metrics.Path, "/") {
		return errors.New(errors.CodeConfigInvalid).
			WithDetail("metrics.path must start with /")
	}
	return nil
}

// Address returns the host:port the server listens on.
func (c *Config) Address() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}

// ShutdownTimeout parses Server.ShutdownTimeout.
func (c *Config) ShutdownTimeout() (time.Duration, error) {
	return time.ParseDuration(c.Server.ShutdownTimeout)
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, errors.New(errors.CodeConfigInvalid).
			Wrap(err).
			WithDetail("log.level must be debug, info, warn or error")
	}
	return level, nil
}

// NewLogger builds the slog logger described by the config.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := c.LogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
