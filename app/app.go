package app

import (
	"context"
	"time"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/iov-one/arca"
	"github.com/iov-one/arca/errors"
)

// App dispatches transactions against a store. Every Check and Deliver
// runs as one atomic unit of work: all writes go to a cache wrap that
// is written back on success and discarded on failure.
type App struct {
	store   arca.CacheableKVStore
	handler arca.Handler
	chainID string
	logger  log.Logger
}

// New creates an application around the given store and handler stack.
func New(store arca.CacheableKVStore, handler arca.Handler, chainID string, logger log.Logger) *App {
	if !arca.IsValidChainID(chainID) {
		panic("invalid chain id: " + chainID)
	}
	if logger == nil {
		logger = arca.DefaultLogger
	}
	return &App{
		store:   store,
		handler: handler,
		chainID: chainID,
		logger:  logger,
	}
}

// ChainID returns the network identity this application serves.
func (a *App) ChainID() string {
	return a.chainID
}

// Store gives read access to the application state.
func (a *App) Store() arca.ReadOnlyKVStore {
	return a.store
}

// InitChain runs the genesis initialization of all extensions. It must
// be called once, before any transaction is processed.
func (a *App) InitChain(opts arca.Options, inits ...arca.Initializer) error {
	for _, ini := range inits {
		if err := ini.FromGenesis(opts, a.store); err != nil {
			return errors.Wrap(err, "init chain")
		}
	}
	return nil
}

// Check validates a transaction against the current state. State
// changes made during the check are thrown away.
func (a *App) Check(now time.Time, tx arca.Tx) (*arca.CheckResult, error) {
	ctx := a.newContext(now)
	cache := a.store.CacheWrap()
	res, err := a.handler.Check(ctx, cache, tx)
	cache.Discard()
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Deliver executes a transaction. On success all writes are committed
// to the store, on failure none are.
func (a *App) Deliver(now time.Time, tx arca.Tx) (*arca.DeliverResult, error) {
	ctx := a.newContext(now)
	cache := a.store.CacheWrap()
	res, err := a.handler.Deliver(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "commit unit of work")
	}
	return res, nil
}

func (a *App) newContext(now time.Time) arca.Context {
	ctx := context.Background()
	ctx = arca.WithLogger(ctx, a.logger)
	ctx = arca.WithChainID(ctx, a.chainID)
	ctx = arca.WithBlockTime(ctx, now)
	return ctx
}
