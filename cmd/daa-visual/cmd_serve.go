package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/abbykyun/daa-visual/internal/api"
	"github.com/abbykyun/daa-visual/internal/config"
	"github.com/abbykyun/daa-visual/internal/logging"
	"github.com/abbykyun/daa-visual/internal/session"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

func newServeCmd() *cobra.Command {
	var cfgPath string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP and WebSocket server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg)
		},
	}
	cmd.Flags().StringVar(&cfgPath, "config", "", "YAML config file (env DAA_* overrides it)")

	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	log, err := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	ws := session.New(log,
		session.WithDirected(cfg.Graph.Directed),
		session.WithRandomDefaults(cfg.Random.Probability, cfg.Random.MaxWeight),
		session.WithLayout(cfg.Graph.Canvas.Layout()),
	)

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: api.NewRouter(ctx, &api.RouterDeps{
			Log:              log,
			Workspace:        ws,
			CORSOrigins:      cfg.Server.CORSOrigins,
			PlaybackInterval: cfg.Playback.Interval,
			RandomNodes:      cfg.Random.Nodes,
			Version:          version,
		}),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithField("addr", srv.Addr).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("shutting down")

		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
