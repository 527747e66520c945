// Package cmd defines the fidget command line interface.
package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkarsten/fidget/internal/config"
	"github.com/mkarsten/fidget/internal/engine"
	"github.com/mkarsten/fidget/internal/input"
	"github.com/mkarsten/fidget/internal/logging"
	"github.com/mkarsten/fidget/internal/ui"
)

const appVersion = "0.3.0"

// NewRootCmd builds the fidget command. It is kept separate from Execute
// so the docs generator and tests can construct the command without
// running it.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:           "fidget",
		Short:         "Unattended human-like mouse and keyboard activity",
		Long:          "Fidget periodically moves the pointer along randomized curved paths\nto random on-screen targets and taps a key, with jittered pauses\nbetween cycles. Run it only on machines you control.",
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags(), cfgFile)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), ui.RenderError(err))
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	flags := root.Flags()
	flags.StringP("interval", "i", "3m", "base interval between cycles (Go duration, or bare minutes)")
	flags.Float64P("jitter", "j", 0.15, "fraction (0-1) the interval is randomized by")
	flags.Int("min-moves", 1, "minimum pointer moves per cycle")
	flags.Int("max-moves", 2, "maximum pointer moves per cycle")
	flags.DurationP("move-delay", "b", time.Second, "pause between moves within a cycle")
	flags.String("press-mode", string(config.PressPerCycle), `press the key after each "move" or once per "cycle"`)
	flags.StringP("key", "k", "shift", "key to press")
	flags.Duration("move-duration-min", 80*time.Millisecond, "shortest time one move animates over")
	flags.Duration("move-duration-max", 500*time.Millisecond, "longest time one move animates over")
	flags.Int("margin", 5, "pixels kept clear of every screen edge")
	flags.Bool("dry-run", false, "log intended actions without touching mouse or keyboard")
	flags.Bool("only-when-idle", false, "skip moves while the user is actively using the machine")
	flags.Duration("idle-threshold", 30*time.Second, "idle time before simulation resumes (with --only-when-idle)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-file", "", "also write JSON logs to this file (size-rotated)")
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default ./fidget.yaml)")

	return root
}

// Execute runs the root command with termination signals wired to the run
// context, and exits non-zero on any error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), terminationSignals()...)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	logger := logging.New(cfg.LogLevel, cfg.LogFile)
	defer logger.Sync()

	fmt.Println(ui.Banner(cfg, appVersion))

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	eng := engine.New(cfg, logger, input.Robotgo{}, rnd)
	if err := eng.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, ui.RenderError(err))
		return err
	}
	return nil
}
