package pathregexp

import "github.com/dlclark/regexp2"

// compiledRegexp wraps the executable regex backend. The emission
// algorithm in emit.go produces ECMAScript-dialect source, including
// positive lookahead such as "(?=\/|$)", that Go's standard regexp
// package cannot compile (it is RE2-based and has no lookaround
// support at all). regexp2 is the idiomatic Go answer for that dialect,
// so every compiled pattern in this package goes through it instead of
// the standard library.
type compiledRegexp struct {
	re *regexp2.Regexp
}

func compileRegexp(source string, flags Flags) (*compiledRegexp, error) {
	opts := regexp2.None
	if flags.IgnoreCase {
		opts |= regexp2.IgnoreCase
	}
	if flags.ECMAScript {
		opts |= regexp2.ECMAScript
	}

	re, err := regexp2.Compile(source, opts)
	if err != nil {
		return nil, err
	}

	return &compiledRegexp{re: re}, nil
}

func (c *compiledRegexp) findStringMatch(s string) (*regexpMatch, error) {
	m, err := c.re.FindStringMatch(s)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	return &regexpMatch{m: m}, nil
}

// regexpMatch is a successful match against a compiledRegexp.
type regexpMatch struct {
	m *regexp2.Match
}

// Group returns the text of capture group i (group 0 is the whole
// match), or "" if the group did not participate in the match or i is
// out of range.
func (r *regexpMatch) Group(i int) string {
	if r == nil || r.m == nil {
		return ""
	}
	g := r.m.GroupByNumber(i)
	if g == nil || len(g.Captures) == 0 {
		return ""
	}
	return g.String()
}
