// Package pathregexp turns Express-style path patterns such as
// "/user/:id(\d+)" or "/files/*" into regular expressions, and the
// inverse: a compiler that renders a concrete path from named
// parameter values.
//
// A small HTTP-method-aware router is built on top of the pattern
// engine; see Router.
package pathregexp
