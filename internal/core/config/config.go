package config

import (
	"time"

	"github.com/vietddude/nodepulse/internal/core/domain"
)

// AppConfig represents the top-level configuration.
type AppConfig struct {
	domain.MonitorConfig `yaml:",inline"`

	Node     NodeConfig     `yaml:"node,omitempty"`
	Monitor  MonitorConfig  `yaml:"monitor,omitempty"`
	Telegram TelegramConfig `yaml:"telegram,omitempty"`
	Server   ServerConfig   `yaml:"server,omitempty"`
	Logging  LoggingConfig  `yaml:"logging,omitempty"`
}

// NodeConfig holds settings for the node's JSON-RPC endpoint.
type NodeConfig struct {
	RPCURL  string        `yaml:"rpc_url,omitempty"`
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// MonitorConfig holds polling loop settings.
type MonitorConfig struct {
	Interval     time.Duration `yaml:"interval,omitempty"`
	DiskPath     string        `yaml:"disk_path,omitempty"`
	IPServiceURL string        `yaml:"ip_service_url,omitempty"`
	IPTimeout    time.Duration `yaml:"ip_timeout,omitempty"`
}

// TelegramConfig holds Bot API settings. The token and chat live at the top level.
type TelegramConfig struct {
	APIURL  string        `yaml:"api_url,omitempty"`
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// ServerConfig holds status server settings. Port 0 disables the server.
type ServerConfig struct {
	Port int `yaml:"port,omitempty"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"` // debug, info, warn, error
}

const (
	DefaultRPCURL       = "http://localhost:8080"
	DefaultRPCTimeout   = 10 * time.Second
	DefaultInterval     = 1800 * time.Second
	DefaultDiskPath     = "/"
	DefaultIPServiceURL = "https://api.ipify.org?format=json"
	DefaultIPTimeout    = 5 * time.Second
	DefaultTelegramURL  = "https://api.telegram.org"
	DefaultSendTimeout  = 10 * time.Second
)
