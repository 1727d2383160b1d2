package pathregexp

import "strings"

// tokensToRegexSource implements the token -> regex emission algorithm:
// literals are string-escaped, parameters become (optionally prefixed,
// optionally repeated/optional) capture groups, and the whole route is
// anchored at the start. Trailing-slash laxity and end anchoring are
// controlled by o.
func tokensToRegexSource(tokens []Token, o options) string {
	var route strings.Builder

	endsWithSlash := false
	if n := len(tokens); n > 0 {
		last := tokens[n-1]
		if last.Type == TokenLiteral && strings.HasSuffix(last.Literal, "/") {
			endsWithSlash = true
		}
	}

	for _, t := range tokens {
		if t.Type == TokenLiteral {
			route.WriteString(escapeString(t.Literal))
			continue
		}

		k := t.Key
		prefix := escapeString(k.Prefix)
		capture := k.Pattern

		if k.Repeat {
			capture = capture + "(?:" + prefix + capture + ")*"
		}

		switch {
		case k.Optional && prefix != "":
			route.WriteString("(?:" + prefix + "(" + capture + "))?")
		case k.Optional:
			route.WriteString("(" + capture + ")?")
		default:
			route.WriteString(prefix + "(" + capture + ")")
		}
	}

	result := route.String()

	// In non-strict mode we allow a slash at the end of the match. If
	// the path already ends with a slash, drop it first for
	// consistency: the optional slash is valid only at the very end of
	// the match, not in the middle, which matters in non-ending mode
	// where "/test/" shouldn't match "/test//route".
	if !o.strict {
		if endsWithSlash {
			result = result[:len(result)-2]
		}
		result += `(?:\/(?=$))?`
	}

	if o.end {
		result += "$"
	} else if !(o.strict && endsWithSlash) {
		// In non-ending mode the capturing groups need to match as
		// much as possible, via a lookahead to the end or the next
		// path segment.
		result += `(?=\/|$)`
	}

	return "^" + result
}

// TokensToRegex converts a token sequence into a regex source string
// and its flags, without compiling it. Default options are {END}.
func TokensToRegex(tokens []Token, opts ...Option) (string, Flags) {
	o := resolveOptions(opts)
	return tokensToRegexSource(tokens, o), flagsFor(o)
}

// PatternRegex is the compiled artifact produced by PathToRegex and
// PathsToRegex: the regex source and flags from the emitter, the
// parameter keys in declaration order, and a ready-to-use matcher.
type PatternRegex struct {
	Source string
	Flags  Flags
	Keys   []Key

	re *compiledRegexp
}

// MatchString reports whether s matches the pattern and, if so, returns
// the match (group 0 is the whole match). It is the primitive the
// router and the seed test suite use to exercise the compiled regex.
func (p *PatternRegex) MatchString(s string) (*regexpMatch, error) {
	return p.re.findStringMatch(s)
}

// PathToRegex parses pattern and emits its regex, compiling it against
// the ECMAScript-dialect backend so it can actually be executed,
// including the lookahead assertions the emission algorithm produces.
func PathToRegex(pattern string, opts ...Option) (*PatternRegex, error) {
	tokens := ParsePath(pattern)
	return TokensToPatternRegex(tokens, opts...)
}

// TokensToPatternRegex is PathToRegex for a token sequence already
// produced by ParsePath, useful when the caller parsed once and wants
// both the regex and the raw tokens.
func TokensToPatternRegex(tokens []Token, opts ...Option) (*PatternRegex, error) {
	o := resolveOptions(opts)
	source := tokensToRegexSource(tokens, o)
	flags := flagsFor(o)

	re, err := compileRegexp(source, flags)
	if err != nil {
		return nil, &CompileError{Pattern: source, Err: err}
	}

	return &PatternRegex{Source: source, Flags: flags, Keys: Keys(tokens), re: re}, nil
}

// PathsToRegex unions several patterns into a single alternation regex:
// each branch is the source of pathToRegex(pᵢ, O) with its own leading
// "^", so every branch is independently anchored to the start of
// input: a match can only begin at position 0, and there the branches
// are tried in order and the first one that matches wins, even when a
// later branch would match more of the input. Keys from every branch
// are concatenated in order.
func PathsToRegex(patterns []string, opts ...Option) (*PatternRegex, error) {
	o := resolveOptions(opts)
	flags := flagsFor(o)

	branches := make([]string, 0, len(patterns))
	var keys []Key
	for _, p := range patterns {
		tokens := ParsePath(p)
		branches = append(branches, tokensToRegexSource(tokens, o))
		keys = append(keys, Keys(tokens)...)
	}

	source := "(?:" + strings.Join(branches, "|") + ")"

	re, err := compileRegexp(source, flags)
	if err != nil {
		return nil, &CompileError{Pattern: source, Err: err}
	}

	return &PatternRegex{Source: source, Flags: flags, Keys: keys, re: re}, nil
}
