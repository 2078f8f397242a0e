package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/vacuumsim/internal/analysis"
	"github.com/san-kum/vacuumsim/internal/config"
	"github.com/san-kum/vacuumsim/internal/experiment"
	"github.com/san-kum/vacuumsim/internal/sim"
	"github.com/san-kum/vacuumsim/internal/storage"
	"github.com/san-kum/vacuumsim/internal/tui"
)

func newRunCmd(opts *options) *cobra.Command {
	var (
		name string
		live bool
		fps  int
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless simulation and save the record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runSimulation(cmd, opts, cfg, name, live, fps)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "label stored with the run")
	cmd.Flags().BoolVar(&live, "live", false, "draw a live status block while running")
	cmd.Flags().IntVar(&fps, "fps", 30, "live redraw rate")
	return cmd
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func runSimulation(cmd *cobra.Command, opts *options, cfg *config.Config, name string, live bool, fps int) error {
	out := cmd.OutOrStdout()

	reg, tables, err := config.Catalog(cfg)
	if err != nil {
		return err
	}
	ms, err := experiment.NewRegistry().Metrics(opts.metrics)
	if err != nil {
		return err
	}

	exp := experiment.New(cfg)
	if err := exp.Setup(reg, tables, ms); err != nil {
		return err
	}

	var renderer *tui.LiveRenderer
	if live {
		renderer = tui.NewLiveRenderer(out, fps, opts.theme)
		exp.GetSimulator().AddObserver(renderer)
		renderer.Start()
	} else {
		fmt.Fprintf(out, "running %s simulation for %d ticks...\n", cfg.Mode, cfg.Ticks)
	}

	ctx, cancel := signalContext()
	defer cancel()

	start := time.Now()
	result, runErr := exp.Run(ctx)
	elapsed := time.Since(start)
	if renderer != nil {
		if result != nil && result.Final != nil {
			renderer.Flush(result.Final)
		}
		renderer.Stop()
	}
	if result == nil {
		return runErr
	}
	if runErr != nil {
		slog.Warn("[RUN] stopped early", "steps", result.StepsTaken, "error", runErr)
	}

	st := storage.New(cfg.DataDir).WithLogger(slog.Default())
	if err := st.Init(); err != nil {
		return err
	}
	meta, err := st.Save(exp.Params(name), result)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "completed in %v\n", elapsed)
	fmt.Fprintf(out, "run id: %s\n", meta.ID)
	fmt.Fprintf(out, "steps: %d\n", result.StepsTaken)
	if meta.Final != nil {
		fmt.Fprintf(out, "population: %d  created: %d  decayed: %d natural, %d interaction\n",
			meta.Final.Population, meta.Final.Created, meta.Final.DecayedNatural, meta.Final.DecayedInteraction)
	}
	printMetrics(out, result.Metrics)
	return runErr
}

func printMetrics(w io.Writer, m map[string]float64) {
	if len(m) == 0 {
		return
	}
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	fmt.Fprintln(w, "\n"+heading.Render("metrics"))
	for _, n := range names {
		fmt.Fprintf(w, "  %-20s %.6g\n", n, m[n])
	}
}

func openStore(cmd *cobra.Command, opts *options) (*storage.Store, error) {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return nil, err
	}
	return storage.New(cfg.DataDir).WithLogger(slog.Default()), nil
}

// loadRun resolves an id prefix and reads the record and its samples.
func loadRun(cmd *cobra.Command, opts *options, prefix string) (*storage.RunMetadata, []sim.Sample, error) {
	st, err := openStore(cmd, opts)
	if err != nil {
		return nil, nil, err
	}
	id, err := st.Resolve(prefix)
	if err != nil {
		return nil, nil, err
	}
	meta, err := st.Load(id)
	if err != nil {
		return nil, nil, err
	}
	samples, err := st.LoadSamples(id)
	if err != nil {
		return nil, nil, err
	}
	return meta, samples, nil
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd, opts)
			if err != nil {
				return err
			}
			runs, err := st.List()
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no runs found")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tMODE\tTIME\tSTEPS\tSEED\tPOPULATION")
			for _, run := range runs {
				pop := int64(0)
				if run.Final != nil {
					pop = run.Final.Population
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%d\n",
					shortID(run.ID),
					run.Params.Name,
					run.Params.Mode,
					run.Timestamp.Format("2006-01-02 15:04:05"),
					run.StepsTaken,
					run.Params.Seed,
					pop,
				)
			}
			return w.Flush()
		},
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func newPlotCmd(opts *options) *cobra.Command {
	var series string
	cmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run series",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, samples, err := loadRun(cmd, opts, args[0])
			if err != nil {
				return err
			}
			if len(samples) == 0 {
				return fmt.Errorf("no data to plot")
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "run: %s\n", meta.ID)
			fmt.Fprintf(out, "mode: %s\n", meta.Params.Mode)
			fmt.Fprintf(out, "samples: %d\n\n", len(samples))

			res := &sim.Result{Samples: samples}
			for _, name := range strings.Split(series, ",") {
				name = strings.TrimSpace(name)
				data, ok := res.Series(name)
				if !ok {
					return fmt.Errorf("unknown series: %s", name)
				}
				graph := asciigraph.Plot(data,
					asciigraph.Height(10),
					asciigraph.Width(80),
					asciigraph.Caption(name),
				)
				fmt.Fprintln(out, graph)
				fmt.Fprintln(out)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&series, "series", "population,temperature,entropy", "series to plot (population|temperature|entropy|volume|energy|radiation)")
	return cmd
}

func newExportCSVCmd(opts *options) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run samples to CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, samples, err := loadRun(cmd, opts, args[0])
			if err != nil {
				return err
			}
			if output == "" {
				return storage.WriteCSV(cmd.OutOrStdout(), samples)
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := storage.WriteCSV(f, samples); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "exported %d samples to %s\n", len(samples), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func newExportJSONCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run record and samples to JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, samples, err := loadRun(cmd, opts, args[0])
			if err != nil {
				return err
			}
			return storage.ExportJSON(cmd.OutOrStdout(), meta, samples)
		},
	}
}

func newExportSVGCmd(opts *options) *cobra.Command {
	var (
		series string
		output string
		stroke string
	)
	cmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export one run series as an SVG line chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, samples, err := loadRun(cmd, opts, args[0])
			if err != nil {
				return err
			}
			res := &sim.Result{Samples: samples}
			ys, ok := res.Series(series)
			if !ok {
				return fmt.Errorf("unknown series: %s", series)
			}
			xs := make([]float64, len(samples))
			for i, s := range samples {
				xs[i] = float64(s.Tick)
			}
			svg := analysis.PortraitToSVG(analysis.NewPortrait("tick", xs, series, ys), 800, 400, stroke)
			if svg == "" {
				return fmt.Errorf("run has too few samples to draw")
			}
			if output == "" {
				_, err := io.WriteString(cmd.OutOrStdout(), svg)
				return err
			}
			return os.WriteFile(output, []byte(svg), 0644)
		},
	}
	cmd.Flags().StringVar(&series, "series", "population", "series to draw")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&stroke, "stroke", "#00ff00", "line color")
	return cmd
}
