package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Veraticus/salesdash/internal/common"
	"github.com/Veraticus/salesdash/internal/sales"
	"github.com/Veraticus/salesdash/internal/salesapi"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Default values for settings not found in the config file or environment.
const (
	DefaultTimeout   = 10 * time.Second
	DefaultRateBurst = 3
	DefaultTheme     = "default"
	DefaultLogFile   = "~/.local/share/salesdash/salesdash.log"
)

// Themes lists the accepted dashboard.theme values.
var Themes = []string{"default", "catppuccin-mocha"}

// APIConfig configures the sales service client.
type APIConfig struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit float64
	RateBurst int
}

// DashboardConfig holds the initial filter and appearance of the dashboard.
type DashboardConfig struct {
	Search string
	Theme  string
	Month  sales.Month
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  string
	Format string
	File   string
}

// Config is the complete application configuration.
type Config struct {
	Logging   LoggingConfig
	API       APIConfig
	Dashboard DashboardConfig
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", salesapi.DefaultBaseURL)
	v.SetDefault("api.timeout", DefaultTimeout)
	v.SetDefault("api.rate_limit", 0.0)
	v.SetDefault("api.rate_burst", DefaultRateBurst)
	v.SetDefault("dashboard.month", sales.DefaultMonth.Code())
	v.SetDefault("dashboard.search", "")
	v.SetDefault("dashboard.theme", DefaultTheme)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", DefaultLogFile)
}

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment.
// Variables that are already set win. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(ExpandPath(path)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Load reads the application configuration from v.
// It follows this precedence:
// 1. Flags bound to v
// 2. SALESDASH_ environment variables
// 3. The config file
// 4. Defaults registered with SetDefaults
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		API: APIConfig{
			BaseURL:   strings.TrimSpace(v.GetString("api.base_url")),
			Timeout:   v.GetDuration("api.timeout"),
			RateLimit: v.GetFloat64("api.rate_limit"),
			RateBurst: v.GetInt("api.rate_burst"),
		},
		Dashboard: DashboardConfig{
			Search: v.GetString("dashboard.search"),
			Theme:  strings.ToLower(v.GetString("dashboard.theme")),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
			File:   ExpandPath(v.GetString("logging.file")),
		},
	}

	month, err := sales.ParseMonth(v.GetString("dashboard.month"))
	if err != nil {
		return Config{}, fmt.Errorf("%w: dashboard.month: %w", common.ErrInvalidConfig, err)
	}
	cfg.Dashboard.Month = month

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("%w: api.base_url is required", common.ErrInvalidConfig)
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("%w: api.timeout must not be negative", common.ErrInvalidConfig)
	}
	if c.API.RateLimit < 0 {
		return fmt.Errorf("%w: api.rate_limit must not be negative", common.ErrInvalidConfig)
	}
	if c.API.RateLimit > 0 && c.API.RateBurst < 1 {
		return fmt.Errorf("%w: api.rate_burst must be at least 1", common.ErrInvalidConfig)
	}
	if !c.Dashboard.Month.Valid() {
		return fmt.Errorf("%w: %w", common.ErrInvalidConfig, common.ErrInvalidMonth)
	}

	themeOK := false
	for _, name := range Themes {
		if c.Dashboard.Theme == name {
			themeOK = true
			break
		}
	}
	if !themeOK {
		return fmt.Errorf("%w: unknown theme %q (want one of %s)",
			common.ErrInvalidConfig, c.Dashboard.Theme, strings.Join(Themes, ", "))
	}

	if _, err := common.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: invalid log format: %s", common.ErrInvalidConfig, c.Logging.Format)
	}

	return nil
}

// ClientOptions translates the API settings into salesapi options.
func (c APIConfig) ClientOptions() []salesapi.Option {
	opts := []salesapi.Option{salesapi.WithTimeout(c.Timeout)}
	if c.RateLimit > 0 {
		opts = append(opts, salesapi.WithRateLimit(c.RateLimit, c.RateBurst))
	}
	return opts
}
