package commands

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/advisor/internal/config"
)

func runRoot(t *testing.T, action cli.ActionFunc, args ...string) error {
	t.Helper()
	cmd := NewRootCommand()
	if action != nil {
		cmd.Action = action
	}
	return cmd.Run(context.Background(), append([]string{"advisor"}, args...))
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	var got *config.Config
	err := runRoot(t, func(_ context.Context, c *cli.Command) error {
		var err error
		got, err = loadConfig(c)
		return err
	}, "--config", filepath.Join(t.TempDir(), "missing.jsonc"))
	if err != nil {
		t.Fatal(err)
	}
	if got.Agent.BaseURL != config.DefaultBaseURL || got.Agent.AgentID != config.DefaultAgentID {
		t.Errorf("expected defaults, got %+v", got.Agent)
	}
}

func TestLoadConfig_FlagsOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.jsonc")
	os.WriteFile(path, []byte(`{
		// local agent
		"agent": {"base_url": "http://file:1", "agent_id": "agent-file"},
	}`), 0644)

	var got *config.Config
	err := runRoot(t, func(_ context.Context, c *cli.Command) error {
		var err error
		got, err = loadConfig(c)
		return err
	}, "--config", path, "--endpoint", "http://127.0.0.1:9999", "--debug")
	if err != nil {
		t.Fatal(err)
	}
	if got.Agent.BaseURL != "http://127.0.0.1:9999" {
		t.Errorf("endpoint flag not applied: %q", got.Agent.BaseURL)
	}
	if got.Agent.AgentID != "agent-file" {
		t.Errorf("file value lost: %q", got.Agent.AgentID)
	}
	if got.Log.Level != "debug" {
		t.Errorf("debug flag not applied: %q", got.Log.Level)
	}
}

func TestLoadConfig_InvalidFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.jsonc")
	os.WriteFile(path, []byte(`{"agent": `), 0644)

	err := runRoot(t, func(_ context.Context, c *cli.Command) error {
		_, err := loadConfig(c)
		return err
	}, "--config", path)
	if err == nil {
		t.Fatal("expected parse error")
	}
}

func TestAsk(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/agents/agent-cli/messages" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"messages": [{"message_type": "assistant_message", "content": "Hola"}]}`))
	}))
	defer srv.Close()

	missing := filepath.Join(t.TempDir(), "missing.jsonc")

	if err := runRoot(t, nil, "--config", missing, "--endpoint", srv.URL, "--agent", "agent-cli", "ask", "--raw", "hola"); err != nil {
		t.Errorf("expected success, got %v", err)
	}
	if err := runRoot(t, nil, "--config", missing, "--endpoint", srv.URL, "--agent", "other", "ask", "--raw", "hola"); err == nil {
		t.Error("expected error for a failed exchange")
	}
	if err := runRoot(t, nil, "--config", missing, "ask"); err == nil {
		t.Error("expected usage error without a message")
	}
}

func TestPrintReply_Raw(t *testing.T) {
	var buf bytes.Buffer
	if err := printReply(&buf, "**Envío gratis**", false); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "**Envío gratis**\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}
