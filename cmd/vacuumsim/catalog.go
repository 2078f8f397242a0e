package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/vacuumsim/internal/config"
	"github.com/san-kum/vacuumsim/internal/reactions"
)

func newSpeciesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "species",
		Short: "list the species of the active catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			reg, _, err := config.Catalog(cfg)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tKIND\tMASS (GeV)\tCHARGE\tSPIN\tLIFETIME (s)")
			for _, sp := range reg.All() {
				lifetime := "stable"
				if !sp.Stable() {
					lifetime = fmt.Sprintf("%.3g", sp.Lifetime)
				}
				fmt.Fprintf(w, "%s\t%s\t%.4g\t%+.3g\t%.1f\t%s\n", sp.Name, sp.Kind, sp.Mass, sp.Charge, sp.Spin, lifetime)
			}
			return w.Flush()
		},
	}
}

func newChannelsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "channels",
		Short: "list decay and interaction channels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			_, tables, err := config.Catalog(cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, heading.Render("decays"))
			for _, d := range tables.Decays() {
				printOutcomes(out, d.Parent, d.Outcomes)
			}
			fmt.Fprintln(out, "\n"+heading.Render("interactions"))
			for _, in := range tables.Interactions() {
				printOutcomes(out, in.String(), in.Outcomes)
			}
			return nil
		},
	}
}

func printOutcomes(out io.Writer, from string, outcomes []reactions.Outcome) {
	for i, o := range outcomes {
		lhs := from
		if i > 0 {
			lhs = ""
		}
		fmt.Fprintf(out, "  %-24s -> %s\n", lhs, o)
	}
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tMODE\tMULTIPLIER\tINTERACTION\tFLUCTUATIONS\tSEEDED")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%d\t%g\t%v\t%d\n", name, p.Mode, p.Multiplier, p.InteractionProbability, p.Fluctuations, len(p.Populations))
			}
			return w.Flush()
		},
	}
}

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [catalog]",
		Short: "validate the resolved config and a catalog file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.Catalog = args[0]
			}
			reg, tables, err := config.Catalog(cfg)
			if err != nil {
				return err
			}
			decays, interactions := tables.Len()
			source := cfg.Catalog
			if source == "" {
				source = "standard catalog"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %s: %d species, %d decays, %d interactions\n",
				source, reg.Len(), decays, interactions)
			return nil
		},
	}
}
