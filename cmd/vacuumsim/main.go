package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/san-kum/vacuumsim/internal/config"
	"github.com/san-kum/vacuumsim/internal/experiment"
	"github.com/san-kum/vacuumsim/internal/logx"
	"github.com/san-kum/vacuumsim/internal/tui"
)

var heading = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)

// options holds every flag; config-affecting ones only apply when set.
type options struct {
	configFile string
	preset     string
	catalog    string
	seed       int64
	dt         float64
	multiplier int64
	mode       string
	ticks      int
	dataDir    string
	logLevel   string
	metrics    string
	theme      string
	delay      time.Duration
}

func main() {
	_ = godotenv.Load(".env")

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "vacuumsim",
		Short:        "stochastic vacuum particle simulator",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, opts)
		},
	}

	addConfigFlags(rootCmd, opts)

	rootCmd.PersistentFlags().StringVar(&opts.theme, "theme", "vacuum", fmt.Sprintf("color theme %v", tui.ThemeNames()))
	rootCmd.Flags().DurationVar(&opts.delay, "delay", 100*time.Millisecond, "wall time between ticks")

	rootCmd.AddCommand(
		newRunCmd(opts),
		newListCmd(opts),
		newPlotCmd(opts),
		newExportCSVCmd(opts),
		newExportJSONCmd(opts),
		newExportSVGCmd(opts),
		newSpeciesCmd(opts),
		newChannelsCmd(opts),
		newPresetsCmd(),
		newValidateCmd(opts),
		newScenarioCmd(opts),
		newSweepCmd(opts),
		newEnsembleCmd(opts),
		newAnalyzeCmd(opts),
		newDecayCheckCmd(opts),
		newServeCmd(opts),
	)
	return rootCmd
}

// addConfigFlags binds the flags every subcommand shares.
func addConfigFlags(cmd *cobra.Command, opts *options) {
	def := config.DefaultConfig()
	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&opts.preset, "preset", "", "use preset configuration")
	pf.StringVar(&opts.catalog, "catalog", "", "species/channel catalog file (yaml)")
	pf.Int64Var(&opts.seed, "seed", def.Seed, "random seed")
	pf.Float64Var(&opts.dt, "dt", def.Dt, "base tick length in seconds")
	pf.Int64Var(&opts.multiplier, "multiplier", def.Multiplier, "time multiplier")
	pf.StringVar(&opts.mode, "mode", def.Mode, "simulation mode (default|expanding)")
	pf.IntVar(&opts.ticks, "ticks", def.Ticks, "ticks per run")
	pf.StringVar(&opts.dataDir, "data", def.DataDir, "data directory")
	pf.StringVar(&opts.logLevel, "log-level", def.LogLevel, "log level (debug|info|warn|error)")
	pf.StringVar(&opts.metrics, "metrics", "", "comma separated metric names (default: all standard)")
}

// resolveConfig layers preset, config file, environment and explicit flags,
// in that order, and validates the result.
func resolveConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if opts.preset != "" {
		p, err := config.LookupPreset(opts.preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}

	if opts.configFile != "" {
		loaded, err := config.LoadOver(cfg, opts.configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}

	if changed(cmd, "seed") {
		cfg.Seed = opts.seed
	}
	if changed(cmd, "dt") {
		cfg.Dt = opts.dt
	}
	if changed(cmd, "multiplier") {
		cfg.Multiplier = opts.multiplier
	}
	if changed(cmd, "mode") {
		cfg.Mode = opts.mode
	}
	if changed(cmd, "ticks") {
		cfg.Ticks = opts.ticks
	}
	if changed(cmd, "catalog") {
		cfg.Catalog = opts.catalog
	}
	if changed(cmd, "data") {
		cfg.DataDir = opts.dataDir
	}
	if changed(cmd, "log-level") {
		cfg.LogLevel = opts.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, err := logx.Setup(os.Stderr, cfg.LogLevel); err != nil {
		return nil, err
	}
	return cfg, nil
}

func changed(cmd *cobra.Command, name string) bool {
	f := cmd.Flag(name)
	return f != nil && f.Changed
}

func runInteractive(cmd *cobra.Command, opts *options) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}
	// the alternate screen owns the terminal
	slog.SetDefault(logx.Discard())

	reg, tables, err := config.Catalog(cfg)
	if err != nil {
		return err
	}
	eng, err := experiment.NewEngine(cfg, reg, tables, cfg.Seed)
	if err != nil {
		return err
	}
	initial, err := experiment.InitialState(cfg)(eng)
	if err != nil {
		return err
	}

	return tui.Run(tui.Options{
		Engine:      eng,
		Initial:     initial,
		DtBase:      cfg.Dt,
		Multiplier:  cfg.Multiplier,
		TickDelay:   opts.delay,
		GravitySeed: cfg.Seed + 1,
		Theme:       opts.theme,
	})
}
