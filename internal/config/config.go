// Package config provides environment-driven configuration for the chakra
// report service.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// Defaults match the constants of the original deployment.
const (
	DefaultPort          = 8080
	DefaultLogoURL       = "https://ik.imagekit.io/86edsgbur/Untitled%20design%20(73)%20(3)%20(1).jpg?updatedAt=1759258123716"
	DefaultLogoCachePath = "soulful_logo.jpg"
	DefaultLogoTimeout   = 10 * time.Second
	DefaultPlanVariant   = "7day"
)

// Config holds the runtime settings. All fields have working defaults; the
// environment only overrides.
type Config struct {
	Port          int           `validate:"min=1,max=65535"`
	LogoURL       string        `validate:"omitempty,url"`
	LogoCachePath string        `validate:"required"`
	LogoTimeout   time.Duration `validate:"min=1s,max=60s"`
	PlanVariant   string        `validate:"oneof=7day 3day"`
}

var validate = validator.New()

// Load builds a Config from defaults overridden by environment variables:
// PORT, LOGO_URL, LOGO_CACHE_PATH, LOGO_TIMEOUT_SECONDS, PLAN_VARIANT.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          DefaultPort,
		LogoURL:       DefaultLogoURL,
		LogoCachePath: DefaultLogoCachePath,
		LogoTimeout:   DefaultLogoTimeout,
		PlanVariant:   DefaultPlanVariant,
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("config error: invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}
	if v := os.Getenv("LOGO_URL"); v != "" {
		cfg.LogoURL = v
	}
	if v := os.Getenv("LOGO_CACHE_PATH"); v != "" {
		cfg.LogoCachePath = v
	}
	if v := os.Getenv("LOGO_TIMEOUT_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("config error: invalid LOGO_TIMEOUT_SECONDS %q: %w", v, err)
		}
		cfg.LogoTimeout = time.Duration(secs) * time.Second
	}
	if v := os.Getenv("PLAN_VARIANT"); v != "" {
		cfg.PlanVariant = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}
