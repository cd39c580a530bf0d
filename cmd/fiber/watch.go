package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rayonlabs/fiber/internal/config"
	"github.com/rayonlabs/fiber/internal/metrics"
	"github.com/rayonlabs/fiber/internal/nodes"
	"github.com/rayonlabs/fiber/internal/registry"
	"github.com/rayonlabs/fiber/internal/stats"
	"github.com/rayonlabs/fiber/internal/substrate"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func watchCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "Poll a subnet registry and serve metrics",
		Flags: []cli.Flag{
			&cli.UintFlag{Name: "netuid", Usage: "Subnet id, overrides watch.netuid"},
			&cli.DurationFlag{Name: "interval", Usage: "Polling interval, overrides watch.pollInterval"},
		},
		Action: func(c *cli.Context) error {
			if c.IsSet("netuid") {
				netuid, err := netuidFlag(c)
				if err != nil {
					return err
				}
				e.cfg.Watch.Netuid = netuid
			}
			if c.IsSet("interval") {
				e.cfg.Watch.PollInterval = c.Duration("interval")
				if err := e.cfg.Validate(); err != nil {
					return err
				}
			}

			app := fx.New(
				fx.Supply(e.cfg, e.log),
				chainModule,
				fx.Provide(newMetricsServer, newWatcher),
				fx.Invoke(func(*http.Server, *registry.Watcher) {}),
			)
			if err := app.Start(c.Context); err != nil {
				return err
			}
			sig := <-app.Wait()
			e.log.Info("Shutting down", zap.Any("signal", sig.Signal))

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return app.Stop(ctx)
		},
	}
}

func newMetricsServer(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Instrument("/metrics", promhttp.Handler()))
	srv := &http.Server{
		Addr:              cfg.Metrics.ListenAddress,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("Serving metrics", zap.String("address", ln.Addr().String()))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("Metrics server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: srv.Shutdown,
	})
	return srv
}

func newWatcher(lc fx.Lifecycle, cfg *config.Config, fetcher *nodes.Fetcher, session substrate.Session, log *zap.Logger) *registry.Watcher {
	w := registry.NewWatcher(fetcher, session, cfg.Watch.Netuid, cfg.Watch.PollInterval, logSnapshot(log), log)

	var cancel context.CancelFunc
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			var ctx context.Context
			ctx, cancel = context.WithCancel(context.Background())
			go func() {
				defer close(done)
				_ = w.Run(ctx)
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
	return w
}

func logSnapshot(log *zap.Logger) registry.SnapshotFunc {
	log = log.Named("snapshot")
	return func(_ context.Context, s registry.Snapshot) {
		summary := stats.Summarize(s.Nodes)
		log.Info("Registry snapshot",
			zap.Uint16("netuid", s.Netuid),
			zap.Time("fetched_at", s.FetchedAt),
			zap.Int("count", summary.Count),
			zap.Int("serving", summary.Serving),
			zap.Float64("total_stake", summary.TotalStake),
			zap.Float64("median_stake", summary.MedianStake),
		)
	}
}
