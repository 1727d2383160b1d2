package pathregexp

import (
	"fmt"
	"log/slog"
)

// Request is the sole contract the router demands of a caller's
// concrete request type: retrieve the method, retrieve the URI path.
// The response type is left fully opaque and handed to handlers
// verbatim.
type Request interface {
	Method() string
	URIPath() string
}

// Handler processes a request that matched a route. It may call
// ctx.Next() zero or more times to delegate to the next matching
// route, chain-of-responsibility style.
type Handler[Req Request, Res any] func(req Req, res Res, ctx *Context[Req, Res])

type matcher[Req Request, Res any] struct {
	method  string
	pattern string
	regex   *PatternRegex
	handler Handler[Req, Res]
}

func (m *matcher[Req, Res]) matchesMethod(method string) bool {
	return m.method == "" || m.method == "*" || m.method == method
}

// RouteInfo is a read-only projection of one registered route, for
// operational tooling that wants to list what a Router would dispatch
// without re-deriving it from the (unexported) matcher table.
type RouteInfo struct {
	Method  string
	Pattern string
	Keys    []Key
}

// Router is an ordered (method, compiled-pattern, handler) table and a
// per-request walker. It is read-only after construction: concurrent
// dispatch from multiple goroutines against a frozen Router is safe
// provided no goroutine calls Add concurrently.
type Router[Req Request, Res any] struct {
	matchers []matcher[Req, Res]
	logger   *slog.Logger
}

// RouterOption configures a Router at construction time.
type RouterOption[Req Request, Res any] func(*Router[Req, Res])

// WithLogger attaches a structured logger the Router uses to trace, at
// debug level, each route match, each matcher whose regex returns an
// error, and a walk that runs out of matchers. The default is a discard
// logger; a nil logger keeps the default.
func WithLogger[Req Request, Res any](logger *slog.Logger) RouterOption[Req, Res] {
	return func(r *Router[Req, Res]) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRouter returns an empty Router.
func NewRouter[Req Request, Res any](opts ...RouterOption[Req, Res]) *Router[Req, Res] {
	r := &Router[Req, Res]{logger: noopLogger}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add appends one matcher to the table: it parses pattern, emits its
// regex at default options (END anchored), retains method verbatim,
// and stores handler. method == "" or "*" is a wildcard that matches
// any request method.
func (r *Router[Req, Res]) Add(method, pattern string, handler Handler[Req, Res]) error {
	regex, err := PathToRegex(pattern)
	if err != nil {
		return fmt.Errorf("pathregexp: add route %s %q: %w", method, pattern, err)
	}

	r.matchers = append(r.matchers, matcher[Req, Res]{
		method:  method,
		pattern: pattern,
		regex:   regex,
		handler: handler,
	})
	return nil
}

// MustAdd is Add, panicking on error. Useful for route tables built at
// package init time where a malformed pattern is a programming error.
func (r *Router[Req, Res]) MustAdd(method, pattern string, handler Handler[Req, Res]) {
	if err := r.Add(method, pattern, handler); err != nil {
		panic(err)
	}
}

// Routes returns a read-only snapshot of every registered route, in
// registration order.
func (r *Router[Req, Res]) Routes() []RouteInfo {
	infos := make([]RouteInfo, len(r.matchers))
	for i, m := range r.matchers {
		infos[i] = RouteInfo{Method: m.method, Pattern: m.pattern, Keys: m.regex.Keys}
	}
	return infos
}

// HandleRequest constructs a per-request Context at cursor 0 and starts
// the walk. There is no default handler and no error when nothing
// matches: the walk simply returns.
func (r *Router[Req, Res]) HandleRequest(req Req, res Res) {
	ctx := &Context[Req, Res]{
		request:  req,
		response: res,
		method:   req.Method(),
		uriPath:  req.URIPath(),
		matchers: r.matchers,
		logger:   r.logger,
	}
	ctx.Next()
}
