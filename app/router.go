package app

import (
	"fmt"
	"regexp"

	"github.com/iov-one/arca"
	"github.com/iov-one/arca/errors"
)

// isPath describes the valid format of a routing path.
var isPath = regexp.MustCompile(`^[a-z0-9_]{3,32}/[a-z0-9_]{3,32}$`).MatchString

// Router is the main dispatcher of the application. It maps the message
// path to the registered handler.
type Router struct {
	routes map[string]arca.Handler
}

var _ arca.Registry = (*Router)(nil)
var _ arca.Handler = (*Router)(nil)

// NewRouter initializes a router with no routes.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]arca.Handler),
	}
}

// Handle implements arca.Registry. It panics on a malformed path or a
// duplicate registration, as both are configuration errors.
func (r *Router) Handle(path string, h arca.Handler) {
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %s", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.routes[path] = h
}

// handler returns the registered Handler for this path, or a
// notFoundHandler when nothing matches.
func (r *Router) handler(tx arca.Tx) arca.Handler {
	path := arca.GetPath(tx)
	if h, ok := r.routes[path]; ok {
		return h
	}
	return notFoundHandler(path)
}

// Check dispatches to the proper handler based on the message path.
func (r *Router) Check(ctx arca.Context, store arca.KVStore, tx arca.Tx) (*arca.CheckResult, error) {
	return r.handler(tx).Check(ctx, store, tx)
}

// Deliver dispatches to the proper handler based on the message path.
func (r *Router) Deliver(ctx arca.Context, store arca.KVStore, tx arca.Tx) (*arca.DeliverResult, error) {
	return r.handler(tx).Deliver(ctx, store, tx)
}

// notFoundHandler always returns ErrNotFound, paired with the path that
// could not be routed.
type notFoundHandler string

var _ arca.Handler = notFoundHandler("")

func (path notFoundHandler) Check(ctx arca.Context, store arca.KVStore, tx arca.Tx) (*arca.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(path))
}

func (path notFoundHandler) Deliver(ctx arca.Context, store arca.KVStore, tx arca.Tx) (*arca.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(path))
}
