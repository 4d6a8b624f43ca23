// Package config loads and saves the docx command's configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/benjaminschreck/go-docx/pkg/docx"
)

// Global configuration structure.
type Global struct {
	LogLevel     string `mapstructure:"log_level" yaml:"log_level"`
	LogFormat    string `mapstructure:"log_format" yaml:"log_format"`
	MaxPartSize  int64  `mapstructure:"max_part_size" yaml:"max_part_size"`
	OutputFormat string `mapstructure:"output_format" yaml:"output_format"`
}

// DefaultPath returns ~/.go-docx/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".go-docx", "config.yaml"), nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults. An explicitly named file must
// exist; the default file is optional.
func Load(cfgFile string) (*Global, error) {
	return load(cfgFile, true)
}

// LoadIfExists is like Load but treats a missing explicit file like a
// missing default file.
func LoadIfExists(cfgFile string) (*Global, error) {
	return load(cfgFile, false)
}

func load(cfgFile string, mustExist bool) (*Global, error) {
	defaults := docx.DefaultConfig()

	v := viper.New()
	v.SetEnvPrefix("DOCX")
	v.AutomaticEnv()

	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", defaults.LogFormat)
	v.SetDefault("max_part_size", defaults.MaxPartSize)
	v.SetDefault("output_format", "text")

	path := cfgFile
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
		mustExist = false
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if mustExist || !isNotFound(err) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.Is(err, os.ErrNotExist) || errors.As(err, &notFound)
}

// Validate checks the library settings and the output format.
func (c *Global) Validate() error {
	if err := c.Library().Validate(); err != nil {
		return err
	}
	if c.OutputFormat != "text" && c.OutputFormat != "yaml" {
		return fmt.Errorf("invalid output format: %s", c.OutputFormat)
	}
	return nil
}

// Library returns the go-docx library configuration described by c.
func (c *Global) Library() *docx.Config {
	return docx.NewConfigWithDefaults(&docx.Config{
		LogLevel:    c.LogLevel,
		LogFormat:   c.LogFormat,
		MaxPartSize: c.MaxPartSize,
	})
}

// Save writes the given configuration to cfgFile, or to DefaultPath when
// cfgFile is empty, creating the directory if necessary. It returns the path
// written.
func Save(c *Global, cfgFile string) (string, error) {
	path := cfgFile
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return "", err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("mkdir config dir: %w", err)
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	return path, nil
}
