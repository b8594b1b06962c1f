package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sheikhrachel/glife/model"
	"github.com/sheikhrachel/glife/utils"
)

// options holds the command-line flags and the logger built from them
type options struct {
	verbose   bool
	assumeYes bool
	logger    *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "glife [config]",
		Short: "Conway's Game of Life on a bounded grid",
		Long: `glife reads an initial layout and runs Conway's Game of Life until the
population dies out, a previous generation repeats, or the generation limit
is reached. Each generation is printed to the terminal or saved as a PPM image.

The config file defaults to ` + utils.DefaultConfigPath + `.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := utils.NewLogger(opts.verbose)
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath := utils.DefaultConfigPath
			if len(args) == 1 {
				configPath = args[0]
			}
			return runGame(cmd, opts, configPath)
		},
	}

	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every generation")
	cmd.Flags().BoolVarP(&opts.assumeYes, "yes", "y", false, "skip the disk usage confirmation")
	return cmd
}

// runGame loads the config and layout, then runs the simulation to completion
func runGame(cmd *cobra.Command, opts *options, configPath string) error {
	logger := opts.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	out := cmd.OutOrStdout()

	config, err := utils.LoadConfig(configPath)
	if err != nil {
		return err
	}
	layout, err := utils.LoadLayout(config.Root.InputConfig)
	if err != nil {
		return err
	}
	board, err := layout.Board()
	if err != nil {
		return err
	}
	logger.Debug("layout loaded",
		zap.String("file", config.Root.InputConfig),
		zap.Int("rows", layout.Rows),
		zap.Int("cols", layout.Cols),
		zap.Int("population", board.Population()),
	)

	limit := config.GenerationCap()
	if _, bounded := limit.Limit(); config.Image.GenerateImage && !bounded && !opts.assumeYes {
		proceed, err := confirmDiskUsage(cmd.InOrStdin(), out)
		if err != nil {
			return err
		}
		if !proceed {
			fmt.Fprintln(out, "Process finished")
			return nil
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stats := utils.NewStats()
	observer, closeObserver, err := newObserver(ctx, config, layout.AliveChar, out, stats, logger)
	if err != nil {
		return err
	}

	sim := model.Simulation{
		Cap:      limit,
		Pace:     config.FrameDelay(),
		Observer: observer,
		Logger:   logger,
	}
	result, runErr := sim.Run(ctx, board)
	if closeErr := closeObserver(); runErr == nil {
		runErr = closeErr
	}
	if runErr != nil {
		return runErr
	}

	reportResult(out, result)
	logger.Info("run finished", append(stats.Fields(), zap.Stringer("reason", result.Reason))...)
	return nil
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, alertStyle.Render("Error:"), err)
		os.Exit(1)
	}
}
