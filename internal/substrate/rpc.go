package substrate

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/rayonlabs/fiber/internal/layout"
	"go.uber.org/zap"
)

// ErrUnknownBlock is returned when the endpoint has no hash for a block number.
var ErrUnknownBlock = errors.New("unknown block")

// RPCSession talks JSON-RPC to a substrate node over http(s) or ws(s).
type RPCSession struct {
	url     string
	client  *rpc.Client
	calls   map[string]RuntimeCall
	storage map[string]StorageItem
	logger  *zap.Logger

	mu       sync.Mutex
	metadata map[string]*types.Metadata // by block hash, "" is the best block
}

type Option func(*RPCSession)

func WithLogger(logger *zap.Logger) Option {
	return func(s *RPCSession) {
		s.logger = logger
	}
}

// WithRuntimeCall registers the layouts of an additional runtime API method.
func WithRuntimeCall(api, method string, call RuntimeCall) Option {
	return func(s *RPCSession) {
		s.calls[callName(api, method)] = call
	}
}

// WithStorageItem registers the layouts of an additional storage entry.
func WithStorageItem(module, method string, item StorageItem) Option {
	return func(s *RPCSession) {
		s.storage[storageName(module, method)] = item
	}
}

// Dial connects to the endpoint at url.
func Dial(ctx context.Context, url string, opts ...Option) (*RPCSession, error) {
	client, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, &TransportError{Op: "dial", URL: url, Err: err}
	}
	return newRPCSession(url, client, opts...), nil
}

// DialFactory adapts Dial to a Factory.
func DialFactory(opts ...Option) Factory {
	return func(ctx context.Context, url string) (Session, error) {
		return Dial(ctx, url, opts...)
	}
}

func newRPCSession(url string, client *rpc.Client, opts ...Option) *RPCSession {
	s := &RPCSession{
		url:      url,
		client:   client,
		calls:    defaultRuntimeCalls(),
		storage:  defaultStorageItems(),
		logger:   zap.NewNop(),
		metadata: make(map[string]*types.Metadata),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.Named("substrate").With(zap.String("url", url))
	return s
}

func (s *RPCSession) URL() string {
	return s.url
}

func (s *RPCSession) BlockHash(ctx context.Context, block uint64) (string, error) {
	var hash *string
	if err := s.client.CallContext(ctx, &hash, "chain_getBlockHash", block); err != nil {
		s.logger.Debug("chain_getBlockHash failed", zap.Uint64("block", block), zap.Error(err))
		return "", &TransportError{Op: "chain_getBlockHash", URL: s.url, Err: err}
	}
	if hash == nil || *hash == "" {
		return "", fmt.Errorf("%w: %d", ErrUnknownBlock, block)
	}
	return *hash, nil
}

func (s *RPCSession) RuntimeCall(ctx context.Context, api, method string, params []any, blockHash *string) (any, error) {
	name := callName(api, method)
	call, ok := s.calls[name]
	if !ok {
		return nil, fmt.Errorf("no layout registered for runtime call %s", name)
	}

	data, err := call.encodeParams(params)
	if err != nil {
		return nil, fmt.Errorf("failed to encode params for %s: %w", name, err)
	}

	args := []any{name, hexutil.Encode(data)}
	if blockHash != nil {
		args = append(args, *blockHash)
	}

	var result string
	if err := s.client.CallContext(ctx, &result, "state_call", args...); err != nil {
		s.logger.Debug("state_call failed", zap.String("call", name), zap.Error(err))
		return nil, &TransportError{Op: "state_call " + name, URL: s.url, Err: err}
	}

	raw, err := hexutil.Decode(result)
	if err != nil {
		return nil, &TransportError{Op: "state_call " + name, URL: s.url, Err: fmt.Errorf("malformed result: %w", err)}
	}

	value, err := layout.Decode(call.Result, raw)
	if err != nil {
		s.logger.Error("Failed to decode runtime call result", zap.String("call", name), zap.Int("bytes", len(raw)), zap.Error(err))
		return nil, fmt.Errorf("failed to decode %s result: %w", name, err)
	}
	return value, nil
}

func (s *RPCSession) Query(ctx context.Context, module, method string, params []any, blockHash *string) (any, error) {
	name := storageName(module, method)
	item, ok := s.storage[name]
	if !ok {
		return nil, fmt.Errorf("no layout registered for storage item %s", name)
	}

	args, err := encodeArgs(item.Params, params)
	if err != nil {
		return nil, fmt.Errorf("failed to encode params for %s: %w", name, err)
	}

	meta, err := s.runtimeMetadata(ctx, blockHash)
	if err != nil {
		return nil, err
	}
	key, err := types.CreateStorageKey(meta, module, method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage key for %s: %w", name, err)
	}

	callArgs := []any{key.Hex()}
	if blockHash != nil {
		callArgs = append(callArgs, *blockHash)
	}

	var result *string
	if err := s.client.CallContext(ctx, &result, "state_getStorage", callArgs...); err != nil {
		s.logger.Debug("state_getStorage failed", zap.String("item", name), zap.Error(err))
		return nil, &TransportError{Op: "state_getStorage " + name, URL: s.url, Err: err}
	}
	if result == nil {
		return nil, nil
	}

	raw, err := hexutil.Decode(*result)
	if err != nil {
		return nil, &TransportError{Op: "state_getStorage " + name, URL: s.url, Err: fmt.Errorf("malformed result: %w", err)}
	}

	value, err := layout.Decode(item.Value, raw)
	if err != nil {
		s.logger.Error("Failed to decode storage value", zap.String("item", name), zap.Int("bytes", len(raw)), zap.Error(err))
		return nil, fmt.Errorf("failed to decode %s value: %w", name, err)
	}
	return value, nil
}

// runtimeMetadata returns the runtime metadata at blockHash, fetching it once
// per hash.
func (s *RPCSession) runtimeMetadata(ctx context.Context, blockHash *string) (*types.Metadata, error) {
	var at string
	args := []any{}
	if blockHash != nil {
		at = *blockHash
		args = append(args, at)
	}

	s.mu.Lock()
	meta, ok := s.metadata[at]
	s.mu.Unlock()
	if ok {
		return meta, nil
	}

	var result string
	if err := s.client.CallContext(ctx, &result, "state_getMetadata", args...); err != nil {
		return nil, &TransportError{Op: "state_getMetadata", URL: s.url, Err: err}
	}
	meta = new(types.Metadata)
	if err := codec.DecodeFromHex(result, meta); err != nil {
		return nil, &TransportError{Op: "state_getMetadata", URL: s.url, Err: fmt.Errorf("malformed metadata: %w", err)}
	}

	s.mu.Lock()
	s.metadata[at] = meta
	s.mu.Unlock()
	return meta, nil
}

func (s *RPCSession) Close() {
	s.client.Close()
}
