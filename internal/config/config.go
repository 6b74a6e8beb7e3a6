package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	Port                string        `mapstructure:"PORT"`
	StoreDriver         string        `mapstructure:"STORE_DRIVER"`
	DatabaseURL         string        `mapstructure:"DATABASE_URL"`
	InactivityThreshold time.Duration `mapstructure:"INACTIVITY_THRESHOLD"`
	ReaperInterval      time.Duration `mapstructure:"REAPER_INTERVAL"`
	CORSOrigins         string        `mapstructure:"CORS_ORIGINS"`
}

// AllowedOrigins splits CORSOrigins into a list, dropping blanks.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "5000")
	v.SetDefault("STORE_DRIVER", "postgres")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("INACTIVITY_THRESHOLD", 10*time.Second)
	v.SetDefault("REAPER_INTERVAL", 15*time.Second)
	v.SetDefault("CORS_ORIGINS", "*")
}

// LoadConfig loads the configuration from a .env file in dir and environment variables.
func LoadConfig(dir string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	setDefaults(v)

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if cfg.InactivityThreshold <= 0 {
		return nil, fmt.Errorf("INACTIVITY_THRESHOLD must be positive, got %s", cfg.InactivityThreshold)
	}
	if cfg.ReaperInterval <= 0 {
		return nil, fmt.Errorf("REAPER_INTERVAL must be positive, got %s", cfg.ReaperInterval)
	}
	return &cfg, nil
}
