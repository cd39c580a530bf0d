// Package substrate provides sessions against a substrate chain RPC endpoint.
package substrate

import (
	"context"
	"fmt"
)

// Session is a connection to a chain RPC endpoint.
type Session interface {
	// URL is the endpoint the session is bound to.
	URL() string
	// BlockHash resolves a block number to its hash.
	BlockHash(ctx context.Context, block uint64) (string, error)
	// RuntimeCall invokes api.method at blockHash, or at the best block when
	// blockHash is nil, and returns the decoded result.
	RuntimeCall(ctx context.Context, api, method string, params []any, blockHash *string) (any, error)
	// Query reads the storage item module.method keyed by params at blockHash,
	// or at the best block when blockHash is nil. An unset item is nil.
	Query(ctx context.Context, module, method string, params []any, blockHash *string) (any, error)
	Close()
}

// Factory opens a new session bound to url.
type Factory func(ctx context.Context, url string) (Session, error)

// TransportError reports a failure talking to the endpoint.
type TransportError struct {
	Op  string
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
