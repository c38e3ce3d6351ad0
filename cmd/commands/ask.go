package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/dohr-michael/advisor/internal/agent"
	"github.com/dohr-michael/advisor/internal/logging"
)

// NewAskCommand returns the ask subcommand.
func NewAskCommand() *cli.Command {
	return &cli.Command{
		Name:      "ask",
		Usage:     "Send one question to the agent and print the reply",
		ArgsUsage: "<message>",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Response timeout",
				Value: 60 * time.Second,
			},
			&cli.BoolFlag{
				Name:  "raw",
				Usage: "Print the reply without markdown rendering",
			},
		},
		Action: runAsk,
	}
}

func runAsk(ctx context.Context, cmd *cli.Command) error {
	message := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
	if message == "" {
		return fmt.Errorf("usage: advisor ask <message>")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logging.Setup(os.Stderr, logging.ParseLevel(cfg.Log.Level))

	ctx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
	defer cancel()

	out := agent.NewClient(cfg.Agent).Exchange(ctx, message)
	if out.Kind == agent.OutcomeFailed {
		fmt.Fprintln(os.Stderr, out.Text)
		return fmt.Errorf("ask: %w", out.Err)
	}

	render := !cmd.Bool("raw") && term.IsTerminal(int(os.Stdout.Fd()))
	return printReply(os.Stdout, out.Text, render)
}

// printReply writes the reply, rendered as markdown when render is set.
func printReply(w io.Writer, text string, render bool) error {
	if render {
		width := 80
		if tw, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && tw > 0 {
			width = tw
		}
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(width))
		if err == nil {
			if rendered, err := r.Render(text); err == nil {
				_, err = fmt.Fprint(w, rendered)
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w, text)
	return err
}
