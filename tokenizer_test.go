package pathregexp_test

import (
	"testing"

	"github.com/drubinstein/pathregexp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePathTotality(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"", "/", "/a/b/c", `/:test(\d+)?`, "/*", `\.`, "((unbalanced", "/:segment+",
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() {
			pathregexp.ParsePath(in)
		}, "input %q", in)
	}
}

func TestParsePathEmpty(t *testing.T) {
	t.Parallel()

	tokens := pathregexp.ParsePath("")
	assert.Empty(t, tokens)
}

func TestParsePathLoneWildcard(t *testing.T) {
	t.Parallel()

	tokens := pathregexp.ParsePath("*")
	require.Len(t, tokens, 1)
	require.Equal(t, pathregexp.TokenKey, tokens[0].Type)
	assert.Equal(t, "0", tokens[0].Key.Name)
	assert.Equal(t, "", tokens[0].Key.Prefix)
	assert.Equal(t, ".*", tokens[0].Key.Pattern)
	assert.False(t, tokens[0].Key.Optional)
	assert.False(t, tokens[0].Key.Repeat)
}

func TestParsePathEscapedChar(t *testing.T) {
	t.Parallel()

	tokens := pathregexp.ParsePath(`/a\.b`)
	require.Len(t, tokens, 1)
	assert.Equal(t, pathregexp.TokenLiteral, tokens[0].Type)
	assert.Equal(t, "/a.b", tokens[0].Literal)
}

func TestParsePathNamedParameter(t *testing.T) {
	t.Parallel()

	tokens := pathregexp.ParsePath("/user/:id")
	require.Len(t, tokens, 2)
	assert.Equal(t, pathregexp.TokenLiteral, tokens[0].Type)
	assert.Equal(t, "/user", tokens[0].Literal)
	require.Equal(t, pathregexp.TokenKey, tokens[1].Type)
	assert.Equal(t, "id", tokens[1].Key.Name)
	assert.Equal(t, "/", tokens[1].Key.Prefix)
	assert.Equal(t, "/", tokens[1].Key.Delimiter)
	assert.False(t, tokens[1].Key.Optional)
	assert.False(t, tokens[1].Key.Repeat)
	assert.Equal(t, `[^\/]+?`, tokens[1].Key.Pattern)
}

func TestParsePathAnonymousGroupAutoIndex(t *testing.T) {
	t.Parallel()

	// The auto-index counter advances only on unnamed groups, not on
	// every parameter.
	tokens := pathregexp.ParsePath(`/:name/(\d+)/(\w+)`)
	var names []string
	for _, tk := range tokens {
		if tk.Type == pathregexp.TokenKey {
			names = append(names, tk.Key.Name)
		}
	}
	assert.Equal(t, []string{"name", "0", "1"}, names)
}

func TestParsePathCustomPattern(t *testing.T) {
	t.Parallel()

	// The leading "/" is consumed as :postType's prefix, not emitted
	// as a separate literal token.
	tokens := pathregexp.ParsePath(`/:postType(video|audio|text)(\+.+)?`)
	require.Len(t, tokens, 2)
	assert.Equal(t, "postType", tokens[0].Key.Name)
	assert.Equal(t, "/", tokens[0].Key.Prefix)
	assert.Equal(t, "video|audio|text", tokens[0].Key.Pattern)
	assert.Equal(t, "0", tokens[1].Key.Name)
	assert.Equal(t, `\+.+`, tokens[1].Key.Pattern)
	assert.True(t, tokens[1].Key.Optional)
}
