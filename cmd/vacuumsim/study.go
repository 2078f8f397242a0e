package main

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/vacuumsim/internal/analysis"
	"github.com/san-kum/vacuumsim/internal/automation"
	"github.com/san-kum/vacuumsim/internal/config"
	"github.com/san-kum/vacuumsim/internal/dynamo"
	"github.com/san-kum/vacuumsim/internal/experiment"
	"github.com/san-kum/vacuumsim/internal/sim"
	"github.com/san-kum/vacuumsim/internal/storage"
)

func newScenarioCmd(opts *options) *cobra.Command {
	var save bool
	cmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted sequence of runs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			sc, err := automation.LoadScenario(args[0])
			if err != nil {
				return err
			}
			reg, tables, err := config.Catalog(cfg)
			if err != nil {
				return err
			}

			ctx, cancel := signalContext()
			defer cancel()

			results, err := automation.RunScenario(ctx, sc, cfg, reg, tables)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, heading.Render(sc.Name))
			if sc.Description != "" {
				fmt.Fprintln(out, sc.Description)
			}

			var st *storage.Store
			if save {
				st = storage.New(cfg.DataDir).WithLogger(slog.Default())
				if err := st.Init(); err != nil {
					return err
				}
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "STEP\tMODE\tTICKS\tPOPULATION\tCREATED\tDECAYED\tRUN")
			for _, r := range results {
				id := "-"
				if st != nil {
					meta, err := st.Save(experiment.Params(r.Name, r.Config), r.Result)
					if err != nil {
						return err
					}
					id = shortID(meta.ID)
				}
				f := r.Result.Final
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%s\n",
					r.Name, f.Mode(), r.Result.StepsTaken, f.Population(), f.TotalCreated(),
					f.TotalDecayedNatural()+f.TotalDecayedInteraction(), id)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "save every step as a run record")
	return cmd
}

func newSweepCmd(opts *options) *cobra.Command {
	sweep := automation.ProbabilitySweep{}
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep the interaction probability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			reg, tables, err := config.Catalog(cfg)
			if err != nil {
				return err
			}
			ctx, cancel := signalContext()
			defer cancel()

			results, err := automation.RunSweep(ctx, &sweep, cfg, reg, tables)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PROBABILITY\tPOPULATION\tPEAK\tCREATED\tNATURAL\tINTERACTION")
			for _, r := range results {
				fmt.Fprintf(w, "%.4g\t%d\t%d\t%d\t%d\t%d\n",
					r.Probability, r.FinalPopulation, r.PeakPopulation, r.Created, r.DecayedNatural, r.DecayedInteraction)
			}
			return w.Flush()
		},
	}
	cmd.Flags().Float64Var(&sweep.Min, "min", 0, "lowest interaction probability")
	cmd.Flags().Float64Var(&sweep.Max, "max", 0.1, "highest interaction probability")
	cmd.Flags().IntVar(&sweep.NumSteps, "steps", 5, "number of sweep points")
	return cmd
}

func newEnsembleCmd(opts *options) *cobra.Command {
	var runs int
	cmd := &cobra.Command{
		Use:   "ensemble",
		Short: "run independent seeds in parallel and summarize",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			reg, tables, err := config.Catalog(cfg)
			if err != nil {
				return err
			}
			registry := experiment.NewRegistry()
			if _, err := registry.Metrics(opts.metrics); err != nil {
				return err
			}
			newMetrics := func() []sim.Metric {
				ms, _ := registry.Metrics(opts.metrics)
				return ms
			}

			ctx, cancel := signalContext()
			defer cancel()

			ens := sim.NewEnsemble(experiment.EngineFactory(cfg, reg, tables), newMetrics, runs, cfg.Seed)
			results, err := ens.Run(ctx, experiment.InitialState(cfg), experiment.RunConfig(cfg))
			if err != nil {
				return err
			}
			return printEnsemble(cmd, results)
		},
	}
	cmd.Flags().IntVar(&runs, "runs", 8, "number of seeds")
	return cmd
}

func printEnsemble(cmd *cobra.Command, results []*sim.Result) error {
	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tSTEPS\tPOPULATION\tCREATED\tTEMPERATURE")
	byMetric := make(map[string][]float64)
	for _, r := range results {
		f := r.Final
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%.4g\n", r.Seed, r.StepsTaken, f.Population(), f.TotalCreated(), f.Temperature())
		for k, v := range r.Metrics {
			byMetric[k] = append(byMetric[k], v)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	names := make([]string, 0, len(byMetric))
	for k := range byMetric {
		names = append(names, k)
	}
	sort.Strings(names)
	fmt.Fprintln(out, "\n"+heading.Render("metrics (mean ± stddev)"))
	for _, n := range names {
		fmt.Fprintf(out, "  %-20s %.6g ± %.3g\n", n, analysis.Mean(byMetric[n]), analysis.StdDev(byMetric[n]))
	}
	return nil
}

func newAnalyzeCmd(opts *options) *cobra.Command {
	var xName, yName string
	cmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "summary statistics, dominant period and phase portrait",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, samples, err := loadRun(cmd, opts, args[0])
			if err != nil {
				return err
			}
			if len(samples) < 2 {
				return fmt.Errorf("run %s has too few samples to analyze", shortID(meta.ID))
			}
			res := &sim.Result{Samples: samples}
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "run: %s (%d samples)\n\n", meta.ID, len(samples))
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SERIES\tMEAN\tSTDDEV\tPERIOD (samples)")
			for _, name := range []string{"population", "temperature", "entropy", "energy", "radiation", "volume"} {
				data, _ := res.Series(name)
				period := "-"
				if p := analysis.DominantPeriod(data); p > 0 {
					period = fmt.Sprintf("%.1f", p)
				}
				fmt.Fprintf(w, "%s\t%.4g\t%.4g\t%s\n", name, analysis.Mean(data), analysis.StdDev(data), period)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			xs, ok := res.Series(xName)
			if !ok {
				return fmt.Errorf("unknown series: %s", xName)
			}
			ys, ok := res.Series(yName)
			if !ok {
				return fmt.Errorf("unknown series: %s", yName)
			}
			fmt.Fprintf(out, "\n%s\n", heading.Render(fmt.Sprintf("%s vs %s", yName, xName)))
			fmt.Fprintln(out, analysis.PortraitToASCII(analysis.NewPortrait(xName, xs, yName, ys), 60, 20))
			return nil
		},
	}
	cmd.Flags().StringVar(&xName, "x", "population", "portrait x series")
	cmd.Flags().StringVar(&yName, "y", "temperature", "portrait y series")
	return cmd
}

func newDecayCheckCmd(opts *options) *cobra.Command {
	var trials int
	cmd := &cobra.Command{
		Use:   "decay-check [species]",
		Short: "compare the empirical one-tick decay frequency with dt/lifetime",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			reg, tables, err := config.Catalog(cfg)
			if err != nil {
				return err
			}
			sp, ok := reg.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown species: %s", args[0])
			}
			if sp.Stable() {
				return fmt.Errorf("%s is stable", sp.Name)
			}
			if trials < 1 {
				return fmt.Errorf("trials must be positive, got %d", trials)
			}

			isolated := cfg.Clone()
			isolated.Fluctuations = false
			isolated.InteractionProbability = 0
			isolated.Populations = nil
			eng, err := experiment.NewEngine(isolated, reg, tables, cfg.Seed)
			if err != nil {
				return err
			}
			mult := eng.ClampMultiplier(cfg.Multiplier)
			dt := cfg.Dt * float64(mult)
			s0, err := eng.Populate(eng.Reset(dynamo.ModeDefault), map[string]int64{sp.Name: 1})
			if err != nil {
				return err
			}

			decayed := 0
			for i := 0; i < trials; i++ {
				next, err := eng.Step(s0, cfg.Dt, mult)
				if err != nil {
					return err
				}
				if next.TotalDecayedNatural() > 0 {
					decayed++
				}
			}

			p := math.Min(1, dt/sp.Lifetime)
			chi := analysis.BernoulliChiSquare(decayed, trials, p)
			verdict := "consistent"
			if chi >= analysis.ChiSquareCritical95 {
				verdict = "inconsistent"
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "species:   %s (lifetime %.3g s)\n", sp.Name, sp.Lifetime)
			fmt.Fprintf(out, "dt:        %.3g s\n", dt)
			fmt.Fprintf(out, "expected:  %.6g\n", p)
			fmt.Fprintf(out, "observed:  %.6g (%d/%d)\n", float64(decayed)/float64(trials), decayed, trials)
			fmt.Fprintf(out, "chi2:      %.4f (critical %.3f)\n", chi, analysis.ChiSquareCritical95)
			fmt.Fprintf(out, "verdict:   %s\n", strings.ToUpper(verdict))
			return nil
		},
	}
	cmd.Flags().IntVar(&trials, "trials", 10000, "independent one-tick trials")
	return cmd
}
