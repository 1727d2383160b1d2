package pathregexp

import "strings"

// Compiler renders a concrete path from a token sequence and a
// name->values map, validating each value against its parameter's
// pattern and percent-encoding it. It is the inverse of PathToRegex.
//
// A Compiler's matcher state is immutable after construction; use
// Clone to obtain an independent copy suitable for concurrent use from
// another goroutine.
type Compiler struct {
	tokens   []Token
	matchers []*compiledRegexp // nil for TokenLiteral entries
}

// CompilePath parses pattern and returns a Compiler for it.
func CompilePath(pattern string) (*Compiler, error) {
	return TokensToCompiler(ParsePath(pattern))
}

// TokensToCompiler builds a Compiler from a token sequence already
// produced by ParsePath.
func TokensToCompiler(tokens []Token) (*Compiler, error) {
	matchers := make([]*compiledRegexp, len(tokens))

	for i, t := range tokens {
		if t.Type != TokenKey {
			continue
		}

		re, err := compileRegexp("^(?:"+t.Key.Pattern+")$", Flags{IgnoreCase: false})
		if err != nil {
			return nil, &CompileError{Pattern: t.Key.Pattern, Err: err}
		}
		matchers[i] = re
	}

	return &Compiler{tokens: tokens, matchers: matchers}, nil
}

// Clone returns an independent deep copy: every per-parameter regex is
// recompiled rather than shared, so two clones can validate values
// concurrently from separate goroutines without contending on the same
// regexp2 match state.
func (c *Compiler) Clone() *Compiler {
	clone, err := TokensToCompiler(append([]Token(nil), c.tokens...))
	if err != nil {
		// The tokens already compiled successfully once; recompiling
		// the identical patterns cannot fail.
		panic("pathregexp: Clone: " + err.Error())
	}
	return clone
}

// Keys returns the compiler's parameter tokens in declaration order.
func (c *Compiler) Keys() []Key {
	return Keys(c.tokens)
}

// Compile renders a path from data, a map of parameter name to one or
// more values. Failures are one of ErrMissingParameter,
// ErrEmptyParameter, ErrUnexpectedRepeat or ErrPatternMismatch.
func (c *Compiler) Compile(data map[string][]string) (string, error) {
	var path strings.Builder

	for i, t := range c.tokens {
		if t.Type == TokenLiteral {
			path.WriteString(t.Literal)
			continue
		}

		k := t.Key
		values, ok := data[k.Name]
		if !ok {
			if k.Optional {
				continue
			}
			return "", missingParameterError(k.Name)
		}

		if !k.Repeat && len(values) > 1 {
			return "", unexpectedRepeatError(k.Name, values)
		}

		if len(values) == 0 {
			if k.Optional {
				continue
			}
			return "", emptyParameterError(k.Name)
		}

		for j, v := range values {
			segment := encodeURIComponent(v)

			match, err := c.matchers[i].findStringMatch(segment)
			if err != nil || match == nil {
				return "", patternMismatchError(k.Name, k.Pattern, segment)
			}

			if j == 0 {
				path.WriteString(k.Prefix)
			} else {
				path.WriteString(k.Delimiter)
			}
			path.WriteString(segment)
		}
	}

	return path.String(), nil
}
