package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Port                  string `mapstructure:"PORT"`
	Env                   string `mapstructure:"ENV"`
	ConnectionString      string `mapstructure:"CONNECTION_STRING"`
	DBName                string `mapstructure:"DB_NAME"`
	APIUsername           string `mapstructure:"API_USERNAME"`
	APIPassword           string `mapstructure:"API_PASSWORD"`
	RequestTimeoutSeconds int    `mapstructure:"REQUEST_TIMEOUT_SECONDS"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "production")
	v.SetDefault("DB_NAME", "cfa-hud")
	v.SetDefault("REQUEST_TIMEOUT_SECONDS", 30)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("CONNECTION_STRING")
	v.BindEnv("DB_NAME")
	v.BindEnv("API_USERNAME")
	v.BindEnv("API_PASSWORD")
	v.BindEnv("REQUEST_TIMEOUT_SECONDS")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.ConnectionString == "" {
		return nil, fmt.Errorf("CONNECTION_STRING is required")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// AuthEnabled reports whether HTTP Basic auth is active. Both the username
// and the password must be configured together; a lone value leaves the API
// unauthenticated.
func (c *Config) AuthEnabled() bool {
	return c.APIUsername != "" && c.APIPassword != ""
}
