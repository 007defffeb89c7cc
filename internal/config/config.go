// Package config provides configuration management for the Loom Agent.
// Configuration is loaded from environment variables with sensible defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

const (
	// Default values
	DefaultPort     = 8998
	DefaultLogLevel = "info"
	DefaultDataDir  = ".loom-agent"

	// Environment variable names
	EnvPort       = "LOOM_PORT"
	EnvLogLevel   = "LOOM_LOG_LEVEL"
	EnvDataDir    = "LOOM_DATA_DIR"
	EnvExportsDir = "LOOM_EXPORTS_DIR"
	EnvFFmpegPath = "LOOM_FFMPEG_PATH"
	EnvHeadless   = "LOOM_HEADLESS"

	// Silence detection environment variable names
	EnvSilenceThresholdDB = "LOOM_SILENCE_THRESHOLD_DB"
	EnvSilenceMinSeconds  = "LOOM_SILENCE_MIN_SECONDS"
	EnvSilenceAutoAccept  = "LOOM_SILENCE_AUTO_ACCEPT"

	// Database filename
	DBFilename = "loom.db"

	// Silence detection defaults
	DefaultSilenceThresholdDB = -30.0
	DefaultSilenceMinSeconds  = 0.5
)

// Config defines the application configuration interface
type Config interface {
	Port() int
	LogLevel() string
	DataDir() string
	DBPath() string
	ExportsDir() string
	FFmpegPath() string
	Headless() bool
	SilenceThresholdDB() float64
	SilenceMinSeconds() float64
	SilenceAutoAccept() float64
}

// EnvConfig reads configuration from environment variables
type EnvConfig struct {
	port       int
	logLevel   string
	dataDir    string
	exportsDir string
	ffmpegPath string
	headless   bool

	silenceThresholdDB float64
	silenceMinSeconds  float64
	silenceAutoAccept  float64
}

// New creates a new EnvConfig with defaults and environment variable overrides
func New() (*EnvConfig, error) {
	cfg := &EnvConfig{
		port:               DefaultPort,
		logLevel:           DefaultLogLevel,
		dataDir:            defaultDataDir(),
		silenceThresholdDB: DefaultSilenceThresholdDB,
		silenceMinSeconds:  DefaultSilenceMinSeconds,
	}

	// Override port from environment
	if p := os.Getenv(EnvPort); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvPort, err)
		}
		if port < 1 || port > 65535 {
			return nil, fmt.Errorf("invalid %s: port must be between 1 and 65535", EnvPort)
		}
		cfg.port = port
	}

	// Override log level from environment
	if ll := os.Getenv(EnvLogLevel); ll != "" {
		cfg.logLevel = ll
	}

	// Override data directory from environment
	if dd := os.Getenv(EnvDataDir); dd != "" {
		cfg.dataDir = dd
	}

	if ed := os.Getenv(EnvExportsDir); ed != "" {
		cfg.exportsDir = ed
	}

	cfg.ffmpegPath = os.Getenv(EnvFFmpegPath)

	if h := os.Getenv(EnvHeadless); h != "" {
		headless, err := strconv.ParseBool(h)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvHeadless, err)
		}
		cfg.headless = headless
	}

	if td := os.Getenv(EnvSilenceThresholdDB); td != "" {
		threshold, err := strconv.ParseFloat(td, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvSilenceThresholdDB, err)
		}
		cfg.silenceThresholdDB = threshold
	}

	if ms := os.Getenv(EnvSilenceMinSeconds); ms != "" {
		min, err := strconv.ParseFloat(ms, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvSilenceMinSeconds, err)
		}
		if min <= 0 {
			return nil, fmt.Errorf("invalid %s: must be positive", EnvSilenceMinSeconds)
		}
		cfg.silenceMinSeconds = min
	}

	if aa := os.Getenv(EnvSilenceAutoAccept); aa != "" {
		auto, err := strconv.ParseFloat(aa, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvSilenceAutoAccept, err)
		}
		if auto < 0 {
			return nil, fmt.Errorf("invalid %s: must not be negative", EnvSilenceAutoAccept)
		}
		cfg.silenceAutoAccept = auto
	}

	return cfg, nil
}

// Port returns the HTTP server port
func (c *EnvConfig) Port() int {
	return c.port
}

// LogLevel returns the log level (debug, info, warn, error)
func (c *EnvConfig) LogLevel() string {
	return c.logLevel
}

// DataDir returns the data directory path
func (c *EnvConfig) DataDir() string {
	return c.dataDir
}

// DBPath returns the full path to the SQLite database file
func (c *EnvConfig) DBPath() string {
	return filepath.Join(c.dataDir, DBFilename)
}

// ExportsDir returns the directory finished exports are written to.
// Defaults to <data dir>/exports.
func (c *EnvConfig) ExportsDir() string {
	if c.exportsDir != "" {
		return c.exportsDir
	}
	return filepath.Join(c.dataDir, "exports")
}

// FFmpegPath returns the configured ffmpeg binary path, or empty to use
// the one on PATH.
func (c *EnvConfig) FFmpegPath() string {
	return c.ffmpegPath
}

// Headless reports whether the system tray UI should be skipped.
func (c *EnvConfig) Headless() bool {
	return c.headless
}

// SilenceThresholdDB returns the noise floor for silence detection
func (c *EnvConfig) SilenceThresholdDB() float64 {
	return c.silenceThresholdDB
}

// SilenceMinSeconds returns the minimum silence length worth reporting
func (c *EnvConfig) SilenceMinSeconds() float64 {
	return c.silenceMinSeconds
}

// SilenceAutoAccept returns the auto-accept policy threshold in seconds.
// Zero means detected silences are never pre-marked for deletion.
func (c *EnvConfig) SilenceAutoAccept() float64 {
	return c.silenceAutoAccept
}

// defaultDataDir returns the default data directory path
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home is not available
		return DefaultDataDir
	}
	return filepath.Join(home, DefaultDataDir)
}

// Version information (set at build time via ldflags)
var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)
