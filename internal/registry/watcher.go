package registry

import (
	"context"
	"strconv"
	"time"

	"github.com/rayonlabs/fiber/internal/metrics"
	"github.com/rayonlabs/fiber/internal/nodes"
	"github.com/rayonlabs/fiber/internal/substrate"
	"go.uber.org/zap"
)

// NodeFetcher reads one registry snapshot.
type NodeFetcher interface {
	FetchNodes(ctx context.Context, session substrate.Session, netuid uint16, block *uint64) ([]nodes.Node, error)
}

// Snapshot is the registry of a subnet as read at FetchedAt.
type Snapshot struct {
	Netuid    uint16
	Nodes     []nodes.Node
	FetchedAt time.Time
}

// SnapshotFunc receives every successful snapshot. It runs on the watcher's
// goroutine.
type SnapshotFunc func(ctx context.Context, snapshot Snapshot)

// Watcher polls a subnet registry and hands each fresh snapshot to a sink.
// Nothing is kept between polls.
type Watcher struct {
	fetcher  NodeFetcher
	session  substrate.Session
	netuid   uint16
	interval time.Duration
	sink     SnapshotFunc
	logger   *zap.Logger
}

func NewWatcher(
	fetcher NodeFetcher,
	session substrate.Session,
	netuid uint16,
	interval time.Duration,
	sink SnapshotFunc,
	logger *zap.Logger,
) *Watcher {
	return &Watcher{
		fetcher:  fetcher,
		session:  session,
		netuid:   netuid,
		interval: interval,
		sink:     sink,
		logger:   logger.Named("watcher").With(zap.Uint16("netuid", netuid)),
	}
}

// Run polls immediately and then every interval until ctx is done, returning
// ctx's error. A zero interval polls once and returns nil.
func (w *Watcher) Run(ctx context.Context) error {
	w.poll(ctx)

	if w.interval == 0 {
		w.logger.Info("Polling interval is zero, registry will not be polled again.")
		return nil
	}
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.poll(ctx)
		}
	}
}

func (w *Watcher) poll(ctx context.Context) {
	found, err := w.fetcher.FetchNodes(ctx, w.session, w.netuid, nil)
	if err != nil {
		if ctx.Err() == nil {
			w.logger.Error("Failed to poll registry", zap.Error(err))
		}
		return
	}

	metrics.SnapshotNodes.WithLabelValues(strconv.Itoa(int(w.netuid))).Set(float64(len(found)))
	w.logger.Info("Registry polled successfully", zap.Int("node_count", len(found)))
	w.sink(ctx, Snapshot{Netuid: w.netuid, Nodes: found, FetchedAt: time.Now()})
}
