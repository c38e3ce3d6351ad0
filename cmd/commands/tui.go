package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/advisor/clients/tui"
	"github.com/dohr-michael/advisor/internal/advisor"
	"github.com/dohr-michael/advisor/internal/agent"
	"github.com/dohr-michael/advisor/internal/logging"
	"github.com/dohr-michael/advisor/internal/voice"
)

// NewTUICommand returns the tui subcommand.
func NewTUICommand() *cli.Command {
	return &cli.Command{
		Name:  "tui",
		Usage: "Launch the interactive advisor",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "single-in-flight",
				Usage: "Reject new questions while a reply is pending",
			},
		},
		Action: runTUI,
	}
}

func runTUI(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.IsSet("single-in-flight") {
		cfg.UI.SingleInFlight = cmd.Bool("single-in-flight")
	}

	closer, err := logging.SetupFile(cfg.Log.File, logging.ParseLevel(cfg.Log.Level))
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer closer.Close()

	client := agent.NewClient(cfg.Agent)
	slog.Info("advisor starting", "endpoint", client.Endpoint(), "single_in_flight", cfg.UI.SingleInFlight)

	return tui.Run(ctx, tui.Options{
		Gateway:          client,
		Voice:            voice.NewMock(cfg.UI.VoiceDelay.Duration()),
		Endpoint:         cfg.Agent.BaseURL,
		Policy:           advisor.Policy{SingleInFlight: cfg.UI.SingleInFlight},
		NotificationTTL:  cfg.UI.NotificationTTL.Duration(),
		VoiceSubmitDelay: cfg.UI.VoiceSubmitDelay.Duration(),
	})
}
