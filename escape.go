package pathregexp

import "strings"

// escapeStringChars are the characters string-escape prefixes with a
// backslash when emitting literal token text as regex source.
const escapeStringChars = `.+*?=^!:${}()[]|/`

// escapeGroupChars are the characters group-escape prefixes with a
// backslash when embedding a parameter pattern into the emitted regex.
// This is a narrower set than escapeStringChars: a custom capture body
// like "video|audio|text" must keep its alternation bar untouched.
const escapeGroupChars = `=!:$/()`

// escapeString escapes every occurrence of a string-escape character
// with a leading backslash. It is not idempotent: every pass prefixes
// each set member again ("." becomes `\.`, then `\\.`), while the
// backslash it inserts is not in the set and is left as is.
func escapeString(s string) string {
	return escapeWith(s, escapeStringChars)
}

// escapeGroup escapes every occurrence of a group-escape character with
// a leading backslash. It is applied to a parameter's pattern body
// before that body is embedded in the emitted regex or used to build
// the per-parameter validation regex in the inverse compiler.
func escapeGroup(s string) string {
	return escapeWith(s, escapeGroupChars)
}

func escapeWith(s, set string) string {
	if !strings.ContainsAny(s, set) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if strings.IndexByte(set, c) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}

// isUnreservedURIByte reports whether c is in the ECMAScript
// encodeURIComponent unreserved set: A-Z a-z 0-9 - _ . ! ~ * ' ( ).
func isUnreservedURIByte(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

const hexDigits = "0123456789ABCDEF"

// encodeURIComponent reproduces ECMAScript's encodeURIComponent, with
// the source's observed quirk of also substituting "+" for a literal
// space (application/x-www-form-urlencoded semantics, not strict
// percent-encoding). Strict URI-component encoding would emit "%20"
// instead; this package intentionally preserves the original's
// behavior rather than correcting it.
func encodeURIComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isUnreservedURIByte(c):
			b.WriteByte(c)
		case c == ' ':
			b.WriteByte('+')
		default:
			b.WriteByte('%')
			b.WriteByte(hexDigits[c>>4])
			b.WriteByte(hexDigits[c&0x0f])
		}
	}
	return b.String()
}
