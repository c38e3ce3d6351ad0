package config

import (
	"os"
	"path/filepath"
)

// AdvisorPath returns the root directory for advisor data.
// It uses $ADVISOR_PATH if set, otherwise defaults to ~/.advisor.
func AdvisorPath() string {
	if v := os.Getenv("ADVISOR_PATH"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".advisor")
	}
	return filepath.Join(home, ".advisor")
}

// ConfigPath returns the path to the advisor config file.
func ConfigPath() string {
	return filepath.Join(AdvisorPath(), "config.jsonc")
}

// DotenvPath returns the path to the advisor .env file.
func DotenvPath() string {
	return filepath.Join(AdvisorPath(), ".env")
}
