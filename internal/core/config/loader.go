package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/vietddude/nodepulse/internal/core/domain"
)

// Load reads configuration from a YAML file. JSON files written by earlier
// releases parse unchanged.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the configuration to path. The file holds the bot token, so it
// is only readable by the owner.
func Save(path string, cfg *AppConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// LoadOrCreate returns the configuration at path, asking the operator whether
// to reuse it unless reuse is set. When the file is missing or the operator
// declines, fresh values are prompted for and persisted.
func LoadOrCreate(path string, p *Prompter, reuse bool) (*AppConfig, error) {
	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		use := reuse
		if !use {
			var err error
			use, err = p.Confirm("Found existing config. Use it? (y/n): ")
			if err != nil {
				return nil, err
			}
		}
		if use {
			return Load(path)
		}
	case !errors.Is(statErr, os.ErrNotExist):
		return nil, fmt.Errorf("failed to stat config file: %w", statErr)
	}

	mc, err := PromptMonitorConfig(p)
	if err != nil {
		return nil, err
	}

	// Keep any non-credential sections from the previous file.
	cfg := &AppConfig{}
	if statErr == nil {
		if prev, err := Load(path); err == nil {
			cfg = prev
		}
	}
	cfg.MonitorConfig = mc

	if err := Save(path, cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the fields the monitor can't run without.
func (c *AppConfig) Validate() error {
	var missing []string
	if c.BotToken == "" {
		missing = append(missing, "bot_token")
	}
	if c.ChatID == "" {
		missing = append(missing, "chat_id")
	}
	if c.NodeID == "" {
		missing = append(missing, "node_id")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required config: %s", strings.Join(missing, ", "))
	}
	if c.Monitor.Interval <= 0 {
		return fmt.Errorf("monitor.interval must be positive, got %s", c.Monitor.Interval)
	}
	return nil
}

func (c *AppConfig) applyDefaults() {
	if c.Node.RPCURL == "" {
		c.Node.RPCURL = DefaultRPCURL
	}
	if c.Node.Timeout == 0 {
		c.Node.Timeout = DefaultRPCTimeout
	}
	if c.Monitor.Interval == 0 {
		c.Monitor.Interval = DefaultInterval
	}
	if c.Monitor.DiskPath == "" {
		c.Monitor.DiskPath = DefaultDiskPath
	}
	if c.Monitor.IPServiceURL == "" {
		c.Monitor.IPServiceURL = DefaultIPServiceURL
	}
	if c.Monitor.IPTimeout == 0 {
		c.Monitor.IPTimeout = DefaultIPTimeout
	}
	if c.Telegram.APIURL == "" {
		c.Telegram.APIURL = DefaultTelegramURL
	}
	if c.Telegram.Timeout == 0 {
		c.Telegram.Timeout = DefaultSendTimeout
	}
}

// Credentials returns the immutable part of the configuration used by the loop.
func (c *AppConfig) Credentials() domain.MonitorConfig {
	return c.MonitorConfig
}
