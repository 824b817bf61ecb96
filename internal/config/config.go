// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

var validate = validator.New()

// Config holds the application's configuration, loaded from .env and the environment.
type Config struct {
	Env            string `validate:"required,oneof=development production"`
	DevAPIURL      string `validate:"required,url"`
	ProdAPIURL     string `validate:"required,url"`
	APIToken       string
	RequestTimeout time.Duration `validate:"min=1s"`
	Theme          Theme
	DevServer      DevServer
}

func parseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, raw := range parts {
		if item := strings.TrimSpace(raw); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Load loads and validates the full application configuration from config/.env
// and the process environment.
func Load() (*Config, error) {
	return LoadFile("config/.env")
}

// LoadFile is Load with an explicit .env path. A missing file is not an error.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var cfgErr viper.ConfigFileNotFoundError
		if !errors.As(err, &cfgErr) && !isNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	appConfig := fromViper(v)
	if err := validate.Struct(appConfig); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	return appConfig, nil
}

// isNotExist reports a missing explicit config file; viper only returns
// ConfigFileNotFoundError when searching config paths.
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

func setDefaults(v *viper.Viper) {
	theme := DefaultTheme()
	v.SetDefault("APP_ENV", EnvDevelopment)
	v.SetDefault("DEV_API_URL", DefaultDevAPIURL)
	v.SetDefault("PROD_API_URL", DefaultProdAPIURL)
	v.SetDefault("REQUEST_TIMEOUT", int(DefaultRequestTimeout/time.Second))
	v.SetDefault("DEV_SERVER_HOST", DefaultDevServerHost)
	v.SetDefault("DEV_SERVER_PORT", DefaultDevServerPort)
	v.SetDefault("DEV_SERVER_RATE_LIMIT", DefaultDevRateLimit)
	v.SetDefault("THEME_FONT_FAMILY", theme.FontFamily)
	v.SetDefault("THEME_FONT_SIZE", theme.FontSize)
	v.SetDefault("THEME_FONT_WEIGHT_LIGHT", theme.FontWeightLight)
	v.SetDefault("THEME_FONT_WEIGHT_REGULAR", theme.FontWeightRegular)
	v.SetDefault("THEME_FONT_WEIGHT_MEDIUM", theme.FontWeightMedium)
	v.SetDefault("THEME_FORM", theme.Form)
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Env:            strings.ToLower(strings.TrimSpace(v.GetString("APP_ENV"))),
		DevAPIURL:      v.GetString("DEV_API_URL"),
		ProdAPIURL:     v.GetString("PROD_API_URL"),
		APIToken:       v.GetString("API_TOKEN"),
		RequestTimeout: time.Duration(v.GetInt("REQUEST_TIMEOUT")) * time.Second,
		Theme: Theme{
			FontFamily:        v.GetString("THEME_FONT_FAMILY"),
			FontSize:          v.GetInt("THEME_FONT_SIZE"),
			FontWeightLight:   v.GetInt("THEME_FONT_WEIGHT_LIGHT"),
			FontWeightRegular: v.GetInt("THEME_FONT_WEIGHT_REGULAR"),
			FontWeightMedium:  v.GetInt("THEME_FONT_WEIGHT_MEDIUM"),
			Form:              strings.ToLower(v.GetString("THEME_FORM")),
		},
		DevServer: DevServer{
			Host:        v.GetString("DEV_SERVER_HOST"),
			Port:        v.GetInt("DEV_SERVER_PORT"),
			RateLimit:   v.GetInt("DEV_SERVER_RATE_LIMIT"),
			CORSOrigins: parseList(v.GetString("CORS_ORIGINS")),
		},
	}
}

// IsProduction reports whether the production endpoint is selected.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// BaseURL resolves the API base URL for the configured environment.
func (c *Config) BaseURL() string {
	if c.IsProduction() {
		return strings.TrimSuffix(c.ProdAPIURL, "/")
	}
	return strings.TrimSuffix(c.DevAPIURL, "/")
}
