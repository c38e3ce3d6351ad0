package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAdvisorPath_Default(t *testing.T) {
	t.Setenv("ADVISOR_PATH", "")

	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatal(err)
	}

	got := AdvisorPath()
	want := filepath.Join(home, ".advisor")
	if got != want {
		t.Errorf("AdvisorPath() = %q, want %q", got, want)
	}
}

func TestAdvisorPath_EnvOverride(t *testing.T) {
	t.Setenv("ADVISOR_PATH", "/tmp/custom-advisor")

	if got := AdvisorPath(); got != "/tmp/custom-advisor" {
		t.Errorf("AdvisorPath() = %q, want %q", got, "/tmp/custom-advisor")
	}
}

func TestConfigAndDotenvPath(t *testing.T) {
	t.Setenv("ADVISOR_PATH", "/tmp/test-advisor")

	if got := ConfigPath(); got != "/tmp/test-advisor/config.jsonc" {
		t.Errorf("ConfigPath() = %q", got)
	}
	if got := DotenvPath(); got != "/tmp/test-advisor/.env" {
		t.Errorf("DotenvPath() = %q", got)
	}
}
