package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// HttpServerConfig defines HTTP server configuration
type HttpServerConfig struct {
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	IdleTimeout    time.Duration `yaml:"idle_timeout"`
	MaxHeaderBytes int           `yaml:"max_header_bytes"`
}

// SetDefaults sets reasonable default values for the HTTP server configuration
func (c *HttpServerConfig) SetDefaults() {
	if c.ReadTimeout == 0 {
		c.ReadTimeout = 5 * time.Second
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = 60 * time.Second // batch processing can run long
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = 60 * time.Second
	}
	if c.MaxHeaderBytes == 0 {
		c.MaxHeaderBytes = 1 << 20 // 1 MB
	}
}

// ServerConfig defines all configurations required for the dashboard API server
type ServerConfig struct {
	HttpListenAddr string `yaml:"http_listen_addr"`

	Bot        BotConfig        `yaml:"bot"` // Mint pipeline config shared with the CLI
	HttpServer HttpServerConfig `yaml:"http_server"`
}

// LoadServerConfig loads API server configuration from the specified YAML file path
func LoadServerConfig(path string) (*ServerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read server config file '%s': %w", path, err)
	}

	var cfg ServerConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server YAML config file: %w", err)
	}

	if cfg.HttpListenAddr == "" {
		cfg.HttpListenAddr = "0.0.0.0:8080"
		fmt.Printf("Warning: http_listen_addr not set, defaulting to %s\n", cfg.HttpListenAddr)
	}

	cfg.Bot.SetDefaults()
	cfg.HttpServer.SetDefaults()

	if err := cfg.Bot.Validate(); err != nil {
		return nil, fmt.Errorf("bot configuration error: %w", err)
	}

	return &cfg, nil
}
