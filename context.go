package pathregexp

import "log/slog"

// Context is the per-request walker state handed to a Handler: the
// current match, a Next operation to resume the walk, and the request
// and response being carried through. It is stack-scoped: it does not
// outlive the HandleRequest call that created it, and handlers must
// not retain a reference beyond return.
type Context[Req Request, Res any] struct {
	request  Req
	response Res
	method   string
	uriPath  string
	matchers []matcher[Req, Res]
	logger   *slog.Logger

	cursor int
	match  *regexpMatch
}

// Request returns the request being dispatched.
func (c *Context[Req, Res]) Request() Req { return c.request }

// Response returns the opaque response collaborator handed to
// HandleRequest; the router never inspects or writes to it.
func (c *Context[Req, Res]) Response() Res { return c.response }

// Next advances the cursor until it finds a matcher whose method
// matches (or is wildcard) and whose regex matches the request's URI
// path, then invokes that matcher's handler. The handler may call
// Next again to resume the walk from the advanced cursor; when no
// further matcher matches, Next simply returns.
func (c *Context[Req, Res]) Next() {
	for c.cursor < len(c.matchers) {
		m := &c.matchers[c.cursor]
		c.cursor++

		if !m.matchesMethod(c.method) {
			continue
		}

		match, err := m.regex.MatchString(c.uriPath)
		if err != nil {
			c.logger.Debug("pathregexp: matcher errored", "method", c.method, "path", c.uriPath, "pattern", m.pattern, "err", err)
			continue
		}
		if match == nil {
			continue
		}

		c.match = match
		c.logger.Debug("pathregexp: route matched", "method", c.method, "path", c.uriPath, "pattern", m.pattern)
		m.handler(c.request, c.response, c)
		return
	}

	c.logger.Debug("pathregexp: no matcher left", "method", c.method, "path", c.uriPath)
}

// Match returns the i-th group of the most recent successful match;
// i == 0 is the whole match. If no match has occurred yet it returns
// "" rather than panicking, keeping the accessor total.
func (c *Context[Req, Res]) Match(i int) string {
	return c.match.Group(i)
}
