package substrate

import (
	"context"
	"errors"
	"fmt"
)

var errNoSession = errors.New("factory returned no session")

// QueryWithReconnect reads module.method through session at block, or at the
// best block when block is nil. If the read fails, one new session to the same
// endpoint is opened with factory and the read is repeated once on it.
//
// The session that served the last attempt is returned along with the value.
// When it differs from session the caller owns both and closes both.
func QueryWithReconnect(ctx context.Context, factory Factory, session Session, module, method string, params []any, block *uint64) (Session, any, error) {
	value, err := queryAt(ctx, session, module, method, params, block)
	if err == nil {
		return session, value, nil
	}
	if ctx.Err() != nil {
		return session, nil, err
	}

	url := session.URL()
	fresh, ferr := factory(ctx, url)
	if ferr != nil {
		return session, nil, fmt.Errorf("failed to reconnect to %s after %v: %w", url, err, ferr)
	}
	if fresh == nil {
		return session, nil, fmt.Errorf("failed to reconnect to %s: %w", url, errNoSession)
	}

	value, err = queryAt(ctx, fresh, module, method, params, block)
	return fresh, value, err
}

func queryAt(ctx context.Context, s Session, module, method string, params []any, block *uint64) (any, error) {
	var blockHash *string
	if block != nil {
		hash, err := s.BlockHash(ctx, *block)
		if err != nil {
			return nil, err
		}
		blockHash = &hash
	}
	return s.Query(ctx, module, method, params, blockHash)
}
