package pathregexp

import (
	"regexp"
	"strconv"
	"strings"
)

// pathRegexp is the master pattern used to scan a path template. Matches
// appear as:
//
//	"/:test(\\d+)?" => ["/", "test", "\d+", "", "?", ""]
//	"/route(\\d+)"  => ["", "", "", "\d+", "", ""]
//	"/*"            => ["/", "", "", "", "", "*"]
var pathRegexp = regexp.MustCompile(`(\\.)|([/.])?(?:(?::(\w+)(?:\(((?:\\.|[^()])+)\))?|\(((?:\\.|[^()])+)\))([+*?])?|(\*))`)

// ParsePath scans pattern and returns its token sequence. It is a total
// function: unrecognized characters simply become literal text, and
// there is no error return.
func ParsePath(pattern string) []Token {
	var tokens []Token
	var literal strings.Builder
	key := 0
	index := 0

	for index < len(pattern) {
		loc := pathRegexp.FindStringSubmatchIndex(pattern[index:])
		if loc == nil {
			break
		}
		// Translate match offsets from "relative to pattern[index:]"
		// to absolute offsets into pattern, so every group lookup
		// below can index pattern directly.
		for i, v := range loc {
			if v >= 0 {
				loc[i] = v + index
			}
		}

		matchStart, matchEnd := loc[0], loc[1]
		literal.WriteString(pattern[index:matchStart])
		index = matchEnd

		if escaped := group(pattern, loc, 1); escaped != "" {
			// Ignore already-escaped sequences: keep the literal
			// character, drop the backslash.
			literal.WriteByte(escaped[1])
			continue
		}

		if literal.Len() > 0 {
			tokens = append(tokens, Token{Type: TokenLiteral, Literal: literal.String()})
			literal.Reset()
		}

		prefix := group(pattern, loc, 2)
		name := group(pattern, loc, 3)
		capture := group(pattern, loc, 4)
		anonGroup := group(pattern, loc, 5)
		suffix := group(pattern, loc, 6)
		asterisk := group(pattern, loc, 7)

		repeat := suffix == "+" || suffix == "*"
		optional := suffix == "?" || suffix == "*"
		delimiter := prefix
		if delimiter == "" {
			delimiter = "/"
		}

		var body string
		switch {
		case capture != "":
			body = capture
		case anonGroup != "":
			body = anonGroup
		case asterisk != "":
			body = ".*"
		default:
			body = "[^" + delimiter + "]+?"
		}

		paramName := name
		if paramName == "" {
			paramName = strconv.Itoa(key)
			key++
		}

		tokens = append(tokens, Token{Type: TokenKey, Key: Key{
			Name:      paramName,
			Prefix:    prefix,
			Delimiter: delimiter,
			Optional:  optional,
			Repeat:    repeat,
			Pattern:   escapeGroup(body),
		}})
	}

	if index < len(pattern) {
		literal.WriteString(pattern[index:])
	}
	if literal.Len() > 0 {
		tokens = append(tokens, Token{Type: TokenLiteral, Literal: literal.String()})
	}

	return tokens
}

// group returns the text of capture group n from an absolute-offset
// match index slice as produced by FindStringSubmatchIndex, or "" if
// the group did not participate in the match.
func group(pattern string, loc []int, n int) string {
	lo, hi := loc[2*n], loc[2*n+1]
	if lo < 0 || hi < 0 {
		return ""
	}
	return pattern[lo:hi]
}
