package config

import "time"

// Config is the root configuration for the advisor client.
type Config struct {
	Agent AgentConfig `json:"agent"`
	UI    UIConfig    `json:"ui"`
	Log   LogConfig   `json:"log"`
	Mock  MockConfig  `json:"mock"`
}

// AgentConfig describes the remote conversational agent.
type AgentConfig struct {
	BaseURL   string   `json:"base_url"`  // e.g. http://localhost:8283
	AgentID   string   `json:"agent_id"`  // path segment of /v1/agents/{agentId}/messages
	ToolName  string   `json:"tool_name"` // assistant_message_tool_name
	ToolKwarg string   `json:"tool_kwarg"`
	Timeout   Duration `json:"timeout,omitempty"` // zero = transport default
}

// UIConfig holds the terminal UI timings and policies.
type UIConfig struct {
	NotificationTTL  Duration `json:"notification_ttl"`
	VoiceDelay       Duration `json:"voice_delay"`
	VoiceSubmitDelay Duration `json:"voice_submit_delay"`
	SingleInFlight   bool     `json:"single_in_flight"` // reject submissions while a reply is pending
}

// LogConfig configures slog output.
type LogConfig struct {
	Level string `json:"level"` // debug, info, warn, error
	File  string `json:"file"`  // TUI log destination (default: $ADVISOR_PATH/advisor.log)
}

// MockConfig configures the local mock agent server.
type MockConfig struct {
	Addr  string `json:"addr"`
	Style string `json:"style"` // "tool" or "assistant"
}

// Duration wraps time.Duration for JSON unmarshaling.
type Duration time.Duration

func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	// Remove quotes
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Duration(d).String() + `"`), nil
}
