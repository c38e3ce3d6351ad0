package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/tailscale/hujson"
)

// Defaults mirror the storefront deployment the advisor was built for.
const (
	DefaultBaseURL   = "http://localhost:8283"
	DefaultAgentID   = "agent-c6f6c85a-89c5-4a31-9fb9-ac7945dcf43f"
	DefaultToolName  = "send_message"
	DefaultToolKwarg = "message"
	DefaultMockAddr  = "127.0.0.1:8283"
)

var envTemplateRe = regexp.MustCompile(`\$\{\{\s*\.Env\.(\w+)\s*\}\}`)

// Load reads a JSONC config file, expands ${{ .Env.VAR }} templates,
// standardizes it to plain JSON, unmarshals it into Config, and applies defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variable templates (before standardizing, since templates are in strings)
	expanded := expandEnvTemplates(string(data))

	std, err := hujson.Standardize([]byte(expanded))
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(std, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// Default returns a config with every field set to its default.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// expandEnvTemplates replaces ${{ .Env.VAR }} with the env var value.
func expandEnvTemplates(s string) string {
	return envTemplateRe.ReplaceAllStringFunc(s, func(match string) string {
		parts := envTemplateRe.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}
		return os.Getenv(parts[1])
	})
}

// applyDefaults fills in zero-value fields with sensible defaults.
func applyDefaults(cfg *Config) {
	if cfg.Agent.BaseURL == "" {
		cfg.Agent.BaseURL = DefaultBaseURL
	}
	if cfg.Agent.AgentID == "" {
		cfg.Agent.AgentID = DefaultAgentID
	}
	if cfg.Agent.ToolName == "" {
		cfg.Agent.ToolName = DefaultToolName
	}
	if cfg.Agent.ToolKwarg == "" {
		cfg.Agent.ToolKwarg = DefaultToolKwarg
	}

	if cfg.UI.NotificationTTL == 0 {
		cfg.UI.NotificationTTL = Duration(4 * time.Second)
	}
	if cfg.UI.VoiceDelay == 0 {
		cfg.UI.VoiceDelay = Duration(3 * time.Second)
	}
	if cfg.UI.VoiceSubmitDelay == 0 {
		cfg.UI.VoiceSubmitDelay = Duration(500 * time.Millisecond)
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(AdvisorPath(), "advisor.log")
	}

	if cfg.Mock.Addr == "" {
		cfg.Mock.Addr = DefaultMockAddr
	}
	if cfg.Mock.Style == "" {
		cfg.Mock.Style = "tool"
	}
}
