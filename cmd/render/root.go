package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	app "github.com/okian/practicedash/internal/app"
	"github.com/okian/practicedash/internal/config"
	"github.com/okian/practicedash/internal/view/terminal"
	"github.com/okian/practicedash/pkg/logger"
)

// Output formats.
const (
	formatHTML     = "html"
	formatTerminal = "terminal"
)

type renderCmd struct {
	format        string
	out           string
	practicesFile string
	practiceID    string
	columns       int
	width         int
}

func newRootCmd() *cobra.Command {
	rc := &renderCmd{}
	cmd := &cobra.Command{
		Use:          "render",
		Short:        "Render the practice dashboard once",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         rc.run,
	}

	cmd.Flags().StringVar(&rc.format, "format", formatHTML, "Output format: html or terminal")
	cmd.Flags().StringVar(&rc.out, "out", "", "Write to this file instead of stdout")
	cmd.Flags().StringVar(&rc.practicesFile, "practices", "", "YAML practices file (overrides config)")
	cmd.Flags().StringVar(&rc.practiceID, "practice", "", "Render only the practice with this id")
	cmd.Flags().IntVar(&rc.columns, "columns", 1, "Cards per row in terminal output")
	cmd.Flags().IntVar(&rc.width, "width", 72, "Card width in terminal output")

	return cmd
}

func (rc *renderCmd) run(cmd *cobra.Command, _ []string) error {
	if rc.format != formatHTML && rc.format != formatTerminal {
		return fmt.Errorf("unsupported format %q (want %s or %s)", rc.format, formatHTML, formatTerminal)
	}

	ctx := cmd.Context()
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	if rc.practicesFile != "" {
		cfg.PracticesFile = rc.practicesFile
	}

	// Logs go to stderr so stdout stays clean for the rendered output.
	if err := logger.Init(logger.WithWriter(cmd.ErrOrStderr()), logger.WithFormat(cfg.LogFormat)); err != nil {
		return err
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		_ = logger.SetLevelString("info")
	}

	svc := app.New(
		app.WithLogger(logger.Get().Named("render")),
		app.WithConfig(cfg),
		app.WithInlineStyles(true),
		app.WithTerminalOptions(terminal.WithColumns(rc.columns), terminal.WithCardWidth(rc.width)),
	)
	if err := svc.Start(ctx); err != nil {
		return err
	}
	defer svc.Stop()

	var w io.Writer = cmd.OutOrStdout()
	if rc.out != "" {
		f, err := os.Create(rc.out)
		if err != nil {
			return fmt.Errorf("create %s: %w", rc.out, err)
		}
		defer f.Close()
		w = f
	}

	switch {
	case rc.format == formatTerminal && rc.practiceID != "":
		return svc.RenderTerminalCard(ctx, rc.practiceID, w)
	case rc.format == formatTerminal:
		return svc.RenderTerminal(ctx, w)
	case rc.practiceID != "":
		return svc.RenderCard(ctx, rc.practiceID, w)
	default:
		return svc.RenderPage(ctx, w)
	}
}
