package docx

import (
	"errors"
	"fmt"
	"sync"

	"github.com/spf13/viper"
)

// Config contains the configuration options for go-docx
type Config struct {
	// LogLevel controls the verbosity of logging (debug, info, warn, error, off)
	LogLevel string
	// LogFormat selects the log output format (text or json)
	LogFormat string
	// MaxPartSize caps the decompressed size in bytes of any single package
	// part read from a .docx archive.
	MaxPartSize int64
}

var (
	globalConfig      *Config
	globalConfigMutex sync.RWMutex
	configOnce        sync.Once
)

func init() {
	configOnce.Do(func() {
		globalConfig = ConfigFromEnvironment()
	})
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel:    "info",
		LogFormat:   "text",
		MaxPartSize: 256 << 20,
	}
}

// ConfigFromEnvironment creates a configuration from DOCX_LOG_LEVEL,
// DOCX_LOG_FORMAT and DOCX_MAX_PART_SIZE, falling back to the defaults.
func ConfigFromEnvironment() *Config {
	defaults := DefaultConfig()

	v := viper.New()
	v.SetEnvPrefix("DOCX")
	v.AutomaticEnv()
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_format", defaults.LogFormat)
	v.SetDefault("max_part_size", defaults.MaxPartSize)

	config := &Config{
		LogLevel:    v.GetString("log_level"),
		LogFormat:   v.GetString("log_format"),
		MaxPartSize: v.GetInt64("max_part_size"),
	}
	if config.MaxPartSize <= 0 {
		config.MaxPartSize = defaults.MaxPartSize
	}
	return config
}

// NewConfigWithDefaults creates a new configuration with defaults applied to unset fields
func NewConfigWithDefaults(overrides *Config) *Config {
	defaults := DefaultConfig()
	if overrides == nil {
		return defaults
	}

	config := *overrides
	if config.LogLevel == "" {
		config.LogLevel = defaults.LogLevel
	}
	if config.LogFormat == "" {
		config.LogFormat = defaults.LogFormat
	}
	if config.MaxPartSize == 0 {
		config.MaxPartSize = defaults.MaxPartSize
	}
	return &config
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if _, ok := parseLogLevel(c.LogLevel); !ok {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("invalid log format: %s", c.LogFormat)
	}
	if c.MaxPartSize <= 0 {
		return errors.New("max part size must be positive")
	}
	return nil
}

// GetGlobalConfig returns a copy of the global configuration
func GetGlobalConfig() *Config {
	globalConfigMutex.RLock()
	defer globalConfigMutex.RUnlock()

	if globalConfig == nil {
		return DefaultConfig()
	}
	configCopy := *globalConfig
	return &configCopy
}

// SetGlobalConfig sets the global configuration and reconfigures the global
// logger to match it.
func SetGlobalConfig(config *Config) {
	globalConfigMutex.Lock()
	globalConfig = config
	globalConfigMutex.Unlock()

	UpdateLoggerFromConfig()
}
