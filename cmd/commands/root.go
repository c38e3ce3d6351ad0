package commands

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/advisor/internal/config"
)

// NewRootCommand returns the top-level CLI command. Without a subcommand it
// starts the TUI.
func NewRootCommand() *cli.Command {
	tui := NewTUICommand()
	return &cli.Command{
		Name:  "advisor",
		Usage: "Terminal product advisor backed by a conversational agent",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Value:   config.ConfigPath(),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
			&cli.StringFlag{
				Name:  "endpoint",
				Usage: "Agent base URL (overrides agent.base_url)",
			},
			&cli.StringFlag{
				Name:  "agent",
				Usage: "Agent ID (overrides agent.agent_id)",
			},
		},
		Commands: []*cli.Command{
			tui,
			NewAskCommand(),
			NewMockAgentCommand(),
		},
		Action: tui.Action,
	}
}

// loadConfig reads the config file named by --config, falling back to
// defaults when it does not exist, then applies the global flag overrides.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	path := cmd.String("config")
	cfg, err := config.Load(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		slog.Debug("config not found, using defaults", "path", path)
		cfg = config.Default()
	case err != nil:
		return nil, err
	}

	if cmd.IsSet("endpoint") {
		cfg.Agent.BaseURL = cmd.String("endpoint")
	}
	if cmd.IsSet("agent") {
		cfg.Agent.AgentID = cmd.String("agent")
	}
	if cmd.Bool("debug") {
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}
