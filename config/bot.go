package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"
)

// EnvAPIKey is the environment variable holding the UniSat API key.
const EnvAPIKey = "UNISAT_API_KEY"

// apiKeyPlaceholders are values that indicate the key was never configured.
var apiKeyPlaceholders = map[string]bool{
	"":                  true,
	"your-api-key-here": true,
	"changeme":          true,
}

// NotifierConfig defines configuration for the mint-event notifier
type NotifierConfig struct {
	Brokers []string `yaml:"brokers"` // e.g., ["kafka1:9092", "kafka2:9092"]; empty disables Kafka
	Topic   string   `yaml:"topic"`   // Topic to publish mint events to
}

// SetDefaults sets reasonable default values for notifier configuration
func (c *NotifierConfig) SetDefaults() {
	if len(c.Brokers) > 0 && c.Topic == "" {
		c.Topic = "pdao.mint-events"
		fmt.Printf("Warning: notifier.topic not set, defaulting to %s\n", c.Topic)
	}
}

// BotConfig defines all configuration for the mint bot
type BotConfig struct {
	// --- Inscription Service ---
	InscribeURL    string `yaml:"inscribe_url"`    // UniSat inscribe endpoint
	RequestTimeout string `yaml:"request_timeout"` // Timeout for the inscription HTTP call

	// --- Proposal Intake ---
	ProposalsDir  string `yaml:"proposals_dir"`  // Directory scanned in batch mode
	AddressPrefix string `yaml:"address_prefix"` // Required destination address prefix

	// --- Mint Log ---
	LogFile string `yaml:"log_file"` // JSON snapshot of all mint attempts

	// --- Notifier ---
	Notifier NotifierConfig `yaml:"notifier"`
}

// SetDefaults sets reasonable default values for the bot configuration
func (c *BotConfig) SetDefaults() {
	if c.InscribeURL == "" {
		c.InscribeURL = "https://api.unisat.io/v1/inscribe"
		fmt.Printf("Warning: inscribe_url not set, defaulting to %s\n", c.InscribeURL)
	}
	if c.RequestTimeout == "" {
		c.RequestTimeout = "30s"
		fmt.Printf("Warning: request_timeout not set, defaulting to %s\n", c.RequestTimeout)
	}
	if c.ProposalsDir == "" {
		c.ProposalsDir = "./proposals"
		fmt.Printf("Warning: proposals_dir not set, defaulting to %s\n", c.ProposalsDir)
	}
	if c.AddressPrefix == "" {
		c.AddressPrefix = "bc1"
		fmt.Printf("Warning: address_prefix not set, defaulting to %s\n", c.AddressPrefix)
	}
	if c.LogFile == "" {
		c.LogFile = "./mint_log.json"
		fmt.Printf("Warning: log_file not set, defaulting to %s\n", c.LogFile)
	}
	c.Notifier.SetDefaults()
}

// Validate validates the bot configuration
func (c *BotConfig) Validate() error {
	if c.InscribeURL == "" {
		return fmt.Errorf("inscribe_url is required")
	}
	if c.ProposalsDir == "" {
		return fmt.Errorf("proposals_dir is required")
	}
	if c.LogFile == "" {
		return fmt.Errorf("log_file is required")
	}
	return nil
}

// APIKey resolves the UniSat API key from the environment. Live mode must
// call this before any network request so a missing key fails fast.
func APIKey() (string, error) {
	key := strings.TrimSpace(os.Getenv(EnvAPIKey))
	if apiKeyPlaceholders[key] {
		return "", fmt.Errorf("configuration error: %s is not set (live mode requires a valid UniSat API key)", EnvAPIKey)
	}
	return key, nil
}

// LoadBotConfig loads bot configuration from the specified YAML file path
func LoadBotConfig(path string) (*BotConfig, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("unable to get absolute path of config file: %w", err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", absPath, err)
	}

	var cfg BotConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config file: %w", err)
	}

	cfg.SetDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("bot configuration error: %w", err)
	}

	return &cfg, nil
}

// DefaultBotConfig returns a BotConfig with all defaults applied. Used when
// no config file is present so the CLI keeps working out of the box.
func DefaultBotConfig() *BotConfig {
	cfg := &BotConfig{}
	cfg.SetDefaults()
	return cfg
}
