package main

import (
	"context"

	"github.com/rayonlabs/fiber/internal/config"
	"github.com/rayonlabs/fiber/internal/nodes"
	"github.com/rayonlabs/fiber/internal/substrate"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// chainModule provides the session factory, a session to the configured
// endpoint and a fetcher built from the config.
var chainModule = fx.Options(
	fx.Provide(
		newFactory,
		newSession,
		newFetcher,
	),
	fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
		l := &fxevent.ZapLogger{Logger: log.Named("fx")}
		l.UseLogLevel(zapcore.DebugLevel)
		return l
	}),
)

func newFactory(log *zap.Logger) substrate.Factory {
	return substrate.DialFactory(substrate.WithLogger(log))
}

func newSession(lc fx.Lifecycle, cfg *config.Config, factory substrate.Factory, log *zap.Logger) (substrate.Session, error) {
	session, err := factory(context.Background(), cfg.Chain.Endpoint)
	if err != nil {
		log.Error("Failed to connect to chain endpoint", zap.String("endpoint", cfg.Chain.Endpoint), zap.Error(err))
		return nil, err
	}
	lc.Append(fx.StopHook(session.Close))
	return session, nil
}

func newFetcher(cfg *config.Config, factory substrate.Factory, log *zap.Logger) (*nodes.Fetcher, error) {
	schema, err := cfg.Schema()
	if err != nil {
		return nil, err
	}
	return nodes.NewFetcher(factory,
		nodes.WithSchema(schema),
		nodes.WithRetry(cfg.Retry()),
		nodes.WithSS58Format(cfg.Chain.SS58Format),
		nodes.WithLogger(log),
	), nil
}
