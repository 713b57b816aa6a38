package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// DefaultSourceURL is the mock API document the server reads postings from.
const DefaultSourceURL = "https://mocki.io/v1/5923b1db-516f-496c-a7e9-7a18b5104deb"

const (
	TransportHTTP  = "http"
	TransportStdio = "stdio"
)

// Config contains runtime settings for the MCP server
type Config struct {
	LogLevel  string `mapstructure:"log-level"`
	Host      string `mapstructure:"host"`      // default 0.0.0.0
	Port      string `mapstructure:"port"`      // default 8080
	Transport string `mapstructure:"transport"` // http or stdio

	Source struct {
		URL     string        `mapstructure:"url"`
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"source"`
}

// SetDefaults installs the baseline settings on a viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log-level", "info")
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", "8080")
	v.SetDefault("transport", TransportHTTP)
	v.SetDefault("source.url", DefaultSourceURL)
	v.SetDefault("source.timeout", 10*time.Second)
}

// Load populates and validates Config from a viper instance.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Transport != TransportHTTP && cfg.Transport != TransportStdio {
		return cfg, fmt.Errorf("unsupported transport %q (want %q or %q)",
			cfg.Transport, TransportHTTP, TransportStdio)
	}

	if cfg.Source.URL == "" {
		return cfg, fmt.Errorf("source.url is required")
	}

	if cfg.Source.Timeout <= 0 {
		cfg.Source.Timeout = 10 * time.Second
	}

	return cfg, nil
}
