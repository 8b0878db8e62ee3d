// Package config holds interpreter settings loaded from YAML.
package config

import (
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

// Config carries the host-tunable knobs of an interpreter session.
type Config struct {
	// Username reported by whoami and used for $USER and $HOME.
	Username string `json:"username" validate:"required"`
	// Hostname reported in the prompt and $HOSTNAME.
	Hostname string `json:"hostname" validate:"required,hostname_rfc1123"`
	// ProxyURL is the HTTP proxy curl fetches through. Empty disables
	// network commands.
	ProxyURL string `json:"proxy_url" validate:"omitempty,url"`
	// HTTPTimeoutSeconds bounds a single curl request.
	HTTPTimeoutSeconds int `json:"http_timeout_seconds" validate:"gte=0,lte=600"`
}

// Default returns the stock configuration used when no file is given.
func Default() *Config {
	return &Config{
		Username:           "user",
		Hostname:           "sandbox",
		HTTPTimeoutSeconds: 30,
	}
}

// Load reads and validates a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := Default()
	if err := yaml.UnmarshalStrict(data, config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the configuration for basic semantic errors.
func (c *Config) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// HTTPTimeout returns the curl timeout as a duration.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}
