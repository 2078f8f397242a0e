package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/vacuumsim/internal/config"
	"github.com/san-kum/vacuumsim/internal/dynamo"
	"github.com/san-kum/vacuumsim/internal/experiment"
	"github.com/san-kum/vacuumsim/internal/sim"
	"github.com/san-kum/vacuumsim/internal/stream"
)

func newServeCmd(opts *options) *cobra.Command {
	var (
		addr  string
		every int64
		delay time.Duration
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "run a simulation and stream samples to websocket clients on /ws",
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
			eng, err := experiment.NewEngine(cfg, reg, tables, cfg.Seed)
			if err != nil {
				return err
			}
			initial, err := experiment.InitialState(cfg)(eng)
			if err != nil {
				return err
			}

			hub := stream.NewHub(every, slog.Default())
			defer hub.Close()

			mux := http.NewServeMux()
			mux.Handle("/ws", hub)
			srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

			ctx, cancel := signalContext()
			defer cancel()

			serveErr := make(chan error, 1)
			go func() {
				serveErr <- srv.ListenAndServe()
			}()
			slog.Info("[SERVE] listening", "addr", addr, "ticks", cfg.Ticks)
			fmt.Fprintf(cmd.OutOrStdout(), "streaming on ws://%s/ws (ctrl+c to stop)\n", addr)

			final, runErr := sim.New(eng).RunWithCallback(ctx, initial, experiment.RunConfig(cfg), func(s *dynamo.State) bool {
				hub.OnStep(s)
				select {
				case <-ctx.Done():
					return false
				case err := <-serveErr:
					serveErr <- err
					return false
				case <-time.After(delay):
					return true
				}
			})

			shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
			defer stop()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				slog.Warn("[SERVE] shutdown", "error", err)
			}
			if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			if final != nil {
				slog.Info("[SERVE] stopped", "tick", final.Ticks(), "population", final.Population())
			}
			if errors.Is(runErr, context.Canceled) {
				return nil
			}
			return runErr
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "listen address")
	cmd.Flags().Int64Var(&every, "every", 1, "stream every n-th tick")
	cmd.Flags().DurationVar(&delay, "delay", 50*time.Millisecond, "wall time between ticks")
	return cmd
}
