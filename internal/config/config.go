// Package config loads the server configuration: defaults, then an optional
// YAML file, then DAA_* environment overrides, then validation.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abbykyun/daa-visual/core"
)

// Defaults.
const (
	DefaultListenHost       = "127.0.0.1"
	DefaultPort             = 8080
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "json"
	DefaultPlaybackInterval = 800 * time.Millisecond
	DefaultRandomNodes      = 6
	DefaultProbability      = 0.35
	DefaultMaxWeight        = 9
	DefaultCORSOrigin       = "http://localhost:5173"
)

// Environment overrides.
const (
	EnvListenHost       = "DAA_LISTEN_HOST"
	EnvPort             = "DAA_PORT"
	EnvLogLevel         = "DAA_LOG_LEVEL"
	EnvLogFormat        = "DAA_LOG_FORMAT"
	EnvPlaybackInterval = "DAA_PLAYBACK_INTERVAL"
	EnvCORSOrigins      = "DAA_CORS_ORIGINS"
)

// Config holds all application configuration values.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Playback PlaybackConfig `yaml:"playback"`
	Random   RandomConfig   `yaml:"random"`
	Graph    GraphConfig    `yaml:"graph"`
}

// ServerConfig is the HTTP listener.
type ServerConfig struct {
	ListenHost  string   `yaml:"listen_host" validate:"required"`
	Port        int      `yaml:"port" validate:"min=1,max=65535"`
	CORSOrigins []string `yaml:"cors_origins" validate:"dive,url"`
}

// LogConfig selects the logrus level and formatter.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=trace debug info warn warning error fatal panic"`
	Format string `yaml:"format" validate:"oneof=json text"`
}

// PlaybackConfig is the live playback tick.
type PlaybackConfig struct {
	Interval time.Duration `yaml:"interval" validate:"gt=0"`
}

// RandomConfig holds the random generator defaults used when a request
// leaves them out.
type RandomConfig struct {
	Nodes       int     `yaml:"nodes" validate:"min=1,max=702"`
	Probability float64 `yaml:"probability" validate:"gte=0,lte=1"`
	MaxWeight   int     `yaml:"max_weight" validate:"min=1"`
}

// GraphConfig is the initial mode of the workspace graph and the canvas its
// nodes are placed on.
type GraphConfig struct {
	Directed bool         `yaml:"directed"`
	Canvas   CanvasConfig `yaml:"canvas"`
}

// CanvasConfig sizes the circular node layout.
type CanvasConfig struct {
	Width         float64 `yaml:"width" validate:"gt=0"`
	Height        float64 `yaml:"height" validate:"gt=0"`
	RadiusDivisor float64 `yaml:"radius_divisor" validate:"gt=0"`
	YOffset       float64 `yaml:"y_offset"`
}

// Layout converts the canvas section into the graph layout.
func (c CanvasConfig) Layout() core.CircleLayout {
	return core.CircleLayout{
		Width:         c.Width,
		Height:        c.Height,
		RadiusDivisor: c.RadiusDivisor,
		YOffset:       c.YOffset,
	}
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			ListenHost:  DefaultListenHost,
			Port:        DefaultPort,
			CORSOrigins: []string{DefaultCORSOrigin},
		},
		Log:      LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
		Playback: PlaybackConfig{Interval: DefaultPlaybackInterval},
		Random: RandomConfig{
			Nodes:       DefaultRandomNodes,
			Probability: DefaultProbability,
			MaxWeight:   DefaultMaxWeight,
		},
		Graph: GraphConfig{Canvas: defaultCanvas()},
	}
}

func defaultCanvas() CanvasConfig {
	l := core.DefaultLayout()

	return CanvasConfig{Width: l.Width, Height: l.Height, RadiusDivisor: l.RadiusDivisor, YOffset: l.YOffset}
}

// Load builds the configuration. path may be empty to skip the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := cfg.decode(data); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// decode overlays YAML onto the current values. Unknown keys are an error.
func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvListenHost); v != "" {
		c.Server.ListenHost = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s must be a valid integer: %w", EnvPort, err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Log.Format = strings.ToLower(v)
	}
	if v := os.Getenv(EnvPlaybackInterval); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s must be a duration: %w", EnvPlaybackInterval, err)
		}
		c.Playback.Interval = d
	}
	if v := os.Getenv(EnvCORSOrigins); v != "" {
		origins := strings.Split(v, ",")
		for i, o := range origins {
			origins[i] = strings.TrimSpace(o)
		}
		c.Server.CORSOrigins = origins
	}

	return nil
}

// Addr returns the listen address in host:port format.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.ListenHost, strconv.Itoa(c.Server.Port))
}
