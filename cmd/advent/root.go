package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/advent/config"
	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/runner"
)

// cli holds flag values and the logger shared by the commands.
type cli struct {
	reg runner.Registry

	configPath string
	inputDir   string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd(reg runner.Registry) *cobra.Command {
	c := &cli{reg: reg, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "advent [all | index | year/day]",
		Short: "Run puzzle solutions and time them",
		Long: `Runs one or more registered puzzles. Each puzzle reads its input from
<input_dir>/<year>/day<DD>.txt, then reports parse, part 1 and part 2
with elapsed times.

With no argument the most recently added puzzle runs. "all" runs every
puzzle in order and prints the total time.`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = c.logger.Sync() },
		RunE:              c.run,
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", config.DefaultPath, "config file")
	root.PersistentFlags().StringVar(&c.inputDir, "inputs", "", "input directory (overrides input_dir)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List registered puzzles with their selection index",
		Args:  cobra.NoArgs,
		RunE:  c.list,
	})

	return root
}

// setup loads the config file, applies flag overrides and builds the logger.
func (c *cli) setup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.inputDir != "" {
		cfg.InputDir = c.inputDir
	}
	c.cfg = cfg

	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	if c.verbose {
		lvl = zapcore.DebugLevel
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	c.logger = logger

	return nil
}

func (c *cli) run(cmd *cobra.Command, args []string) error {
	arg := ""
	if len(args) == 1 {
		arg = args[0]
	}
	sel, err := runner.ParseSelection(arg)
	if err != nil {
		return err
	}

	dir := c.cfg.InputDir
	load := func(year, day int) (string, error) {
		return input.Load(dir, year, day)
	}
	c.logger.Debug("starting batch", zap.String("selection", sel.String()), zap.String("input_dir", dir))

	_, err = runner.NewBatch(c.reg, load, runner.WithLogger(c.logger)).Run(cmd.OutOrStdout(), sel)
	return err
}

func (c *cli) list(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	for _, e := range c.reg.Entries() {
		fmt.Fprintf(w, "%3d  %s\n", e.Index, runner.Label(e.Year, e.Day))
	}
	return nil
}
