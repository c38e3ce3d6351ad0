package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/advisor/internal/logging"
	"github.com/dohr-michael/advisor/internal/mockagent"
)

// NewMockAgentCommand returns the mock-agent subcommand.
func NewMockAgentCommand() *cli.Command {
	return &cli.Command{
		Name:  "mock-agent",
		Usage: "Serve a local stand-in for the conversational agent",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Usage: "Address to listen on (overrides mock.addr)",
			},
			&cli.StringFlag{
				Name:  "style",
				Usage: "Reply style: tool or assistant (overrides mock.style)",
			},
		},
		Action: runMockAgent,
	}
}

func runMockAgent(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logging.Setup(os.Stderr, logging.ParseLevel(cfg.Log.Level))

	// CLI flags override config
	if cmd.IsSet("addr") {
		cfg.Mock.Addr = cmd.String("addr")
	}
	if cmd.IsSet("style") {
		cfg.Mock.Style = cmd.String("style")
	}

	style, err := mockagent.ParseStyle(cfg.Mock.Style)
	if err != nil {
		return err
	}
	server := mockagent.NewServer(cfg.Mock.Addr, style)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("mock agent: %w", err)
		}
		return nil
	case <-ctx.Done():
		slog.Info("shutting down mock agent")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
