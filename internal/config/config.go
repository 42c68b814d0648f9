package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/loom-ui/loom/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "loom.json"

	// DefaultPort is the default server port.
	DefaultPort = 3000

	// DefaultHost is the default server host.
	DefaultHost = "localhost"

	// DefaultFrameInterval is the default frame loop interval.
	DefaultFrameInterval = 16 * time.Millisecond
)

// Config represents the complete loom.json configuration.
type Config struct {
	// Name is the application name.
	Name string `json:"name,omitempty"`

	// Server contains live-view server settings.
	Server ServerConfig `json:"server,omitempty"`

	// Frame contains frame loop settings.
	Frame FrameConfig `json:"frame,omitempty"`

	// Dev contains development settings.
	Dev DevConfig `json:"dev,omitempty"`

	// Metrics contains metrics exposure settings.
	Metrics MetricsConfig `json:"metrics,omitempty"`

	// Static contains static file serving settings.
	Static StaticConfig `json:"static,omitempty"`

	// configPath stores the path the config was loaded from.
	configPath string
}

// ServerConfig contains live-view server settings.
type ServerConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty"`

	// ReadTimeout is the HTTP read timeout (e.g. "5s").
	ReadTimeout string `json:"readTimeout,omitempty"`

	// WriteTimeout is the HTTP write timeout (e.g. "10s").
	WriteTimeout string `json:"writeTimeout,omitempty"`
}

// FrameConfig contains frame loop settings.
type FrameConfig struct {
	// IntervalMillis is the frame tick interval in milliseconds.
	IntervalMillis int `json:"intervalMillis,omitempty"`
}

// DevConfig contains development settings.
type DevConfig struct {
	// DebugHooks enables hook-order validation across renders.
	DebugHooks bool `json:"debugHooks,omitempty"`

	// PrettyHTML enables indented HTML output.
	PrettyHTML bool `json:"prettyHTML,omitempty"`
}

// MetricsConfig contains metrics exposure settings.
type MetricsConfig struct {
	// Enabled controls whether metrics are registered and served.
	Enabled bool `json:"enabled,omitempty"`

	// Path is the HTTP path metrics are served on.
	Path string `json:"path,omitempty"`

	// Namespace is the metrics namespace.
	Namespace string `json:"namespace,omitempty"`
}

// StaticConfig contains static file serving settings.
type StaticConfig struct {
	// Dir is the directory containing static files.
	Dir string `json:"dir,omitempty"`

	// Prefix is the URL prefix for static files.
	Prefix string `json:"prefix,omitempty"`
}

// New creates a Config with default values.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         DefaultHost,
			Port:         DefaultPort,
			ReadTimeout:  "5s",
			WriteTimeout: "10s",
		},
		Frame: FrameConfig{
			IntervalMillis: int(DefaultFrameInterval / time.Millisecond),
		},
		Metrics: MetricsConfig{
			Path:      "/metrics",
			Namespace: "loom",
		},
		Static: StaticConfig{
			Dir:    "public",
			Prefix: "/static/",
		},
	}
}

// Load reads configuration from the specified directory, looking for
// loom.json. A missing file yields the defaults, not an error.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, errors.New("E006").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E006").Wrap(err)
	}

	cfg.configPath = path
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E006").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E006").Wrap(err)
	}
	c.configPath = path
	return nil
}

// Path returns the path the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Addr returns the host:port the server binds to.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// FrameInterval returns the frame tick interval as a duration.
func (c *Config) FrameInterval() time.Duration {
	if c.Frame.IntervalMillis <= 0 {
		return DefaultFrameInterval
	}
	return time.Duration(c.Frame.IntervalMillis) * time.Millisecond
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.ReadTimeout == "" {
		c.Server.ReadTimeout = "5s"
	}
	if c.Server.WriteTimeout == "" {
		c.Server.WriteTimeout = "10s"
	}
	if c.Frame.IntervalMillis == 0 {
		c.Frame.IntervalMillis = int(DefaultFrameInterval / time.Millisecond)
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = "loom"
	}
	if c.Static.Dir == "" {
		c.Static.Dir = "public"
	}
	if c.Static.Prefix == "" {
		c.Static.Prefix = "/static/"
	}
}

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E006").Wrap(fmt.Errorf("port %d out of range", c.Server.Port))
	}
	if c.Frame.IntervalMillis < 0 {
		return errors.New("E006").Wrap(fmt.Errorf("frame interval %dms is negative", c.Frame.IntervalMillis))
	}
	if _, err := time.ParseDuration(c.Server.ReadTimeout); err != nil {
		return errors.New("E006").Wrap(err)
	}
	if _, err := time.ParseDuration(c.Server.WriteTimeout); err != nil {
		return errors.New("E006").Wrap(err)
	}
	return nil
}
