package pathregexp_test

import (
	"errors"
	"testing"

	"github.com/drubinstein/pathregexp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompilePathSeedScenarios(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		pattern string
		data    map[string][]string
		want    string
	}{
		{"simple id", "/user/:id", map[string][]string{"id": {"123"}}, "/user/123"},
		{"percent-encodes slash", "/user/:id", map[string][]string{"id": {"/"}}, "/user/%2F"},
		{"single repeat", "/:segment+", map[string][]string{"segment": {"foo"}}, "/foo"},
		{"multi repeat", "/:segment+", map[string][]string{"segment": {"a", "b", "c"}}, "/a/b/c"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			compiler, err := pathregexp.CompilePath(c.pattern)
			require.NoError(t, err)

			got, err := compiler.Compile(c.data)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestCompilePathPatternMismatch(t *testing.T) {
	t.Parallel()

	compiler, err := pathregexp.CompilePath(`/user/:id(\d+)`)
	require.NoError(t, err)

	_, err = compiler.Compile(map[string][]string{"id": {"abc"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, pathregexp.ErrPatternMismatch)
}

func TestCompilePathMissingParameter(t *testing.T) {
	t.Parallel()

	compiler, err := pathregexp.CompilePath("/user/:id")
	require.NoError(t, err)

	_, err = compiler.Compile(map[string][]string{})
	require.Error(t, err)
	assert.ErrorIs(t, err, pathregexp.ErrMissingParameter)
}

func TestCompilePathOptionalMissingIsFine(t *testing.T) {
	t.Parallel()

	compiler, err := pathregexp.CompilePath("/user/:id?")
	require.NoError(t, err)

	got, err := compiler.Compile(map[string][]string{})
	require.NoError(t, err)
	assert.Equal(t, "/user", got)
}

func TestCompilePathUnexpectedRepeat(t *testing.T) {
	t.Parallel()

	compiler, err := pathregexp.CompilePath("/user/:id")
	require.NoError(t, err)

	_, err = compiler.Compile(map[string][]string{"id": {"1", "2"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, pathregexp.ErrUnexpectedRepeat)
}

func TestCompilePathEmptyParameter(t *testing.T) {
	t.Parallel()

	compiler, err := pathregexp.CompilePath("/user/:id")
	require.NoError(t, err)

	_, err = compiler.Compile(map[string][]string{"id": {}})
	require.Error(t, err)
	assert.ErrorIs(t, err, pathregexp.ErrEmptyParameter)
}

func TestCompilerCloneIsIndependent(t *testing.T) {
	t.Parallel()

	original, err := pathregexp.CompilePath(`/user/:id(\d+)`)
	require.NoError(t, err)
	clone := original.Clone()

	got, err := clone.Compile(map[string][]string{"id": {"42"}})
	require.NoError(t, err)
	assert.Equal(t, "/user/42", got)

	_, err = clone.Compile(map[string][]string{"id": {"abc"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, pathregexp.ErrPatternMismatch))
}

func TestCompilerKeysReflectTokens(t *testing.T) {
	t.Parallel()

	compiler, err := pathregexp.CompilePath("/a/:x/b/:y")
	require.NoError(t, err)

	keys := compiler.Keys()
	require.Len(t, keys, 2)
	assert.Equal(t, "x", keys[0].Name)
	assert.Equal(t, "y", keys[1].Name)
}
