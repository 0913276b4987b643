package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the complete application configuration
type Config struct {
	Bot    *BotConfig
	Server *ServerConfig
}

// LoadConfig loads all configuration files from a directory
func LoadConfig(configDir string) (*Config, error) {
	absDir, err := filepath.Abs(configDir)
	if err != nil {
		return nil, fmt.Errorf("unable to get absolute path of config directory: %w", err)
	}

	config := &Config{}

	// Load bot config
	botPath := filepath.Join(absDir, "bot.defaults.yml")
	if _, err := os.Stat(botPath); err == nil {
		botCfg, err := LoadBotConfig(botPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load bot config: %w", err)
		}
		config.Bot = botCfg
	}

	// Load API server config
	serverPath := filepath.Join(absDir, "server.defaults.yml")
	if _, err := os.Stat(serverPath); err == nil {
		serverCfg, err := LoadServerConfig(serverPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load server config: %w", err)
		}
		config.Server = serverCfg
	}

	return config, nil
}
