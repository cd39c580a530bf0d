package nodes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/retrypolicy"
	"github.com/google/uuid"
	"github.com/rayonlabs/fiber/internal/chain"
	"github.com/rayonlabs/fiber/internal/metrics"
	"github.com/rayonlabs/fiber/internal/substrate"
	"go.uber.org/zap"
)

// RetryConfig bounds the retries of one registry round trip.
type RetryConfig struct {
	MaxAttempts int
	MinWait     time.Duration
	MaxWait     time.Duration
}

// DefaultRetryConfig makes three attempts, waiting 1s then 2s between them.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		MinWait:     time.Second,
		MaxWait:     4 * time.Second,
	}
}

// normalized replaces unset or out of range fields with their defaults. A
// MaxWait below MinWait gives a constant MinWait delay.
func (c RetryConfig) normalized() RetryConfig {
	def := DefaultRetryConfig()
	if c.MaxAttempts < 1 {
		c.MaxAttempts = def.MaxAttempts
	}
	if c.MinWait <= 0 {
		c.MinWait = def.MinWait
	}
	if c.MaxWait <= 0 {
		c.MaxWait = def.MaxWait
	}
	if c.MaxWait < c.MinWait {
		c.MaxWait = c.MinWait
	}
	return c
}

// Fetcher reads subnet registries. It holds no per-call state and is safe for
// concurrent use.
type Fetcher struct {
	newSession substrate.Factory
	schema     Schema
	retry      RetryConfig
	ss58Format uint16
	logger     *zap.Logger
}

type FetcherOption func(*Fetcher)

func WithSchema(schema Schema) FetcherOption {
	return func(f *Fetcher) {
		f.schema = schema
	}
}

func WithRetry(retry RetryConfig) FetcherOption {
	return func(f *Fetcher) {
		f.retry = retry
	}
}

func WithSS58Format(format uint16) FetcherOption {
	return func(f *Fetcher) {
		f.ss58Format = format
	}
}

func WithLogger(logger *zap.Logger) FetcherOption {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// NewFetcher creates a fetcher that opens its sessions with newSession. Retry
// fields that are zero or negative fall back to DefaultRetryConfig.
func NewFetcher(newSession substrate.Factory, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		newSession: newSession,
		schema:     SchemaMetagraph,
		retry:      DefaultRetryConfig(),
		ss58Format: chain.DefaultSS58Format,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.retry = f.retry.normalized()
	f.logger = f.logger.Named("fetcher")
	return f
}

// Schema is the runtime call the fetcher reads.
func (f *Fetcher) Schema() Schema {
	return f.schema
}

// FetchNodes returns the nodes of netuid at block, or at the best block when
// block is nil.
//
// The call never uses session directly: it opens a new session to the same
// endpoint and closes it before returning. The round trip is retried with
// exponential backoff; once attempts run out the last error is returned as is.
func (f *Fetcher) FetchNodes(ctx context.Context, session substrate.Session, netuid uint16, block *uint64) ([]Node, error) {
	schema := f.schema.String()
	log := f.logger.With(
		zap.String("fetch_id", uuid.NewString()),
		zap.Uint16("netuid", netuid),
		zap.String("schema", schema),
	)
	if block != nil {
		log = log.With(zap.Uint64("block", *block))
	}

	url := session.URL()
	fresh, err := f.newSession(ctx, url)
	if err != nil {
		log.Error("Failed to open session", zap.String("url", url), zap.Error(err))
		return nil, fmt.Errorf("failed to open session to %s: %w", url, err)
	}
	if fresh == nil {
		log.Error("Session factory returned no session", zap.String("url", url))
		return nil, fmt.Errorf("failed to open session to %s: %w", url, errNoSession)
	}
	defer fresh.Close()

	builder := retrypolicy.Builder[[]Node]().WithMaxAttempts(f.retry.MaxAttempts)
	if f.retry.MinWait < f.retry.MaxWait {
		builder = builder.WithBackoff(f.retry.MinWait, f.retry.MaxWait)
	} else {
		builder = builder.WithDelay(f.retry.MinWait)
	}
	policy := builder.
		AbortOnErrors(context.Canceled, context.DeadlineExceeded).
		ReturnLastFailure().
		OnRetry(func(e failsafe.ExecutionEvent[[]Node]) {
			log.Warn("Retrying registry fetch", zap.Int("attempt", e.Attempts()), zap.Error(e.LastError()))
		}).
		Build()

	start := time.Now()
	nodes, err := failsafe.NewExecutor[[]Node](policy).
		WithContext(ctx).
		Get(func() ([]Node, error) {
			metrics.FetchAttempts.WithLabelValues(schema).Inc()
			return f.fetchOnce(ctx, fresh, netuid, block, log)
		})
	metrics.FetchDuration.WithLabelValues(schema).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.FetchFailures.WithLabelValues(schema).Inc()
		log.Error("Failed to fetch nodes", zap.Error(err))
		return nil, err
	}

	log.Info("Fetched nodes", zap.Int("count", len(nodes)), zap.Duration("elapsed", time.Since(start)))
	return nodes, nil
}

func (f *Fetcher) fetchOnce(ctx context.Context, s substrate.Session, netuid uint16, block *uint64, log *zap.Logger) ([]Node, error) {
	var blockHash *string
	if block != nil {
		hash, err := s.BlockHash(ctx, *block)
		if err != nil {
			return nil, err
		}
		blockHash = &hash
	}

	api, method, err := f.schema.runtimeCall()
	if err != nil {
		return nil, err
	}
	value, err := s.RuntimeCall(ctx, api, method, []any{netuid}, blockHash)
	if err != nil {
		return nil, err
	}

	return Decode(Batch{Schema: f.schema, Value: value}, f.ss58Format, log)
}

var (
	errUnknownSchema = errors.New("unknown schema")
	errNoSession     = errors.New("factory returned no session")
)

func (s Schema) runtimeCall() (api, method string, err error) {
	switch s {
	case SchemaMetagraph:
		return substrate.SubnetInfoAPI, substrate.GetMetagraph, nil
	case SchemaNeuronsLite:
		return substrate.NeuronInfoAPI, substrate.GetNeuronsLite, nil
	default:
		return "", "", fmt.Errorf("%w: %s", errUnknownSchema, s)
	}
}
