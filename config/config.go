// Package config loads curator settings from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultMaxUploadBytes caps uploads at 4 MiB.
const DefaultMaxUploadBytes = 4 << 20

// Config holds every curator setting.
type Config struct {
	LogLevel string `mapstructure:"log_level"`
	Upload   Upload `mapstructure:"upload"`
	ROR      ROR    `mapstructure:"ror"`
	ORCID    ORCID  `mapstructure:"orcid"`
	Vocab    Vocab  `mapstructure:"vocab"`

	// File is the config file that was read, or "".
	File string `mapstructure:"-"`
}

// Upload configures the upload checks.
type Upload struct {
	MaxBytes int64 `mapstructure:"max_bytes"`
}

// ROR configures affiliation resolution.
type ROR struct {
	Enabled   bool          `mapstructure:"enabled"`
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	CachePath string        `mapstructure:"cache_path"`
	CacheTTL  time.Duration `mapstructure:"cache_ttl"`
}

// ORCID configures person name completion.
type ORCID struct {
	Enabled bool          `mapstructure:"enabled"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Vocab points at an optional vocabulary override file.
type Vocab struct {
	File string `mapstructure:"file"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "INFO")
	v.SetDefault("upload.max_bytes", DefaultMaxUploadBytes)
	v.SetDefault("ror.enabled", false)
	v.SetDefault("ror.base_url", "https://api.ror.org/v2")
	v.SetDefault("ror.timeout", "10s")
	v.SetDefault("ror.cache_path", defaultCachePath())
	v.SetDefault("ror.cache_ttl", "720h")
	v.SetDefault("orcid.enabled", false)
	v.SetDefault("orcid.base_url", "https://pub.orcid.org/v3.0")
	v.SetDefault("orcid.timeout", "10s")
	v.SetDefault("vocab.file", "")
}

func defaultCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(".curator", "ror.db")
	}
	return filepath.Join(dir, "curator", "ror.db")
}

// New returns a viper instance wired for curator: defaults, the CURATOR_
// environment prefix, and LOG_LEVEL as an alias for log_level. When path
// is empty the config file is looked up as curator.yaml in the working
// directory and in ~/.config/curator/.
func New(path string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("curator")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "curator"))
		}
	}

	v.SetEnvPrefix("CURATOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("log_level", "CURATOR_LOG_LEVEL", "LOG_LEVEL")
	return v
}

// Load reads the configuration. A missing default config file is not an
// error; a missing explicit one is.
func Load(path string) (*Config, error) {
	return FromViper(New(path), path != "")
}

// FromViper reads the config file registered on v and decodes every key.
func FromViper(v *viper.Viper, explicit bool) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	if cfg.Upload.MaxBytes <= 0 {
		cfg.Upload.MaxBytes = DefaultMaxUploadBytes
	}
	return &cfg, nil
}
