package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"activityboard/internal/domain"
)

// Defaults
const (
	DefaultBaseURL       = "http://localhost:8000"
	DefaultLocale        = "en"
	DefaultStatusTimeout = 5 * time.Second
	DefaultLogFile       = "activityboard.log"
)

// Config represents the application configuration
type Config struct {
	Version       int        `toml:"version"`
	BaseURL       string     `toml:"base_url" env:"ACTIVITYBOARD_BASE_URL" validate:"required,url"`
	Locale        string     `toml:"locale" env:"ACTIVITYBOARD_LOCALE"`
	StatusTimeout string     `toml:"status_timeout" env:"ACTIVITYBOARD_STATUS_TIMEOUT"`
	LogFile       string     `toml:"log_file" env:"ACTIVITYBOARD_LOG_FILE"`
	UISettings    UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	DefaultSort string `toml:"default_sort" env:"ACTIVITYBOARD_DEFAULT_SORT" validate:"omitempty,oneof=none name schedule"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service for the per-user config file
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return &configService{
		filePath: filepath.Join(configDir, "activityboard", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service for an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Path returns the file the service loads from and saves to
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file. A missing file yields the defaults.
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// LoadOrCreate loads the service's file. When it does not exist yet the
// defaults are written there first so users have a file to edit.
func LoadOrCreate(svc ConfigService) (*Config, error) {
	if _, err := os.Stat(svc.Path()); errors.Is(err, os.ErrNotExist) {
		cfg := DefaultConfig()
		if err := svc.Save(cfg); err != nil {
			return cfg, fmt.Errorf("create %s: %w", svc.Path(), err)
		}
		return cfg, nil
	}
	return svc.Load()
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.fillDefaults()
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:       1,
		BaseURL:       DefaultBaseURL,
		Locale:        DefaultLocale,
		StatusTimeout: DefaultStatusTimeout.String(),
		LogFile:       DefaultLogFile,
	}
}

// fillDefaults restores defaults for fields a config file left empty
func (c *Config) fillDefaults() {
	def := DefaultConfig()
	if c.BaseURL == "" {
		c.BaseURL = def.BaseURL
	}
	if c.Locale == "" {
		c.Locale = def.Locale
	}
	if c.StatusTimeout == "" {
		c.StatusTimeout = def.StatusTimeout
	}
	if c.LogFile == "" {
		c.LogFile = def.LogFile
	}
}

// LoadDotEnv loads variables from a .env file. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from ACTIVITYBOARD_* environment variables
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

var validate = validator.New()

// Validate checks the configuration before it is used
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("invalid config: locale %q: %w", c.Locale, err)
	}
	d, err := time.ParseDuration(c.StatusTimeout)
	if err != nil {
		return fmt.Errorf("invalid config: status_timeout %q: %w", c.StatusTimeout, err)
	}
	if d <= 0 {
		return fmt.Errorf("invalid config: status_timeout must be positive, got %s", d)
	}
	return nil
}

// StatusDuration returns how long a status message stays visible
func (c *Config) StatusDuration() time.Duration {
	d, err := time.ParseDuration(c.StatusTimeout)
	if err != nil || d <= 0 {
		return DefaultStatusTimeout
	}
	return d
}

// DefaultSortKey returns the sort applied at startup
func (c *Config) DefaultSortKey() domain.SortKey {
	key, _ := domain.ParseSortKey(c.UISettings.DefaultSort)
	return key
}
