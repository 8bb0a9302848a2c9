package parsing

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatExpectedAsString(t *testing.T) {
	assert.Equal(t, "<nothing>", formatExpectedAsString(nil))
	assert.Equal(t, "`if`", formatExpectedAsString([]string{"`if`"}))
	assert.Equal(t, "`if` or `val`", formatExpectedAsString([]string{"`if`", "`val`"}))
	assert.Equal(t, "`class`, `def` or `val`", formatExpectedAsString([]string{"`class`", "`def`", "`val`"}))
}

func TestBuildErrorReportsDeepestOffsetAndSortedExpectedSet(t *testing.T) {
	_, err := Parse(`object O {
  val x: = 1
}
`)
	require.NotNil(t, err)
	perr, ok := err.(*ParseError)
	require.True(t, ok)
	require.NotEmpty(t, perr.Expected)

	// Expected is built from frontier.names(), which always returns a
	// sorted slice — a second sort must be a no-op.
	sorted := append([]string(nil), perr.Expected...)
	sort.Strings(sorted)
	if diff := cmp.Diff(sorted, perr.Expected); diff != "" {
		t.Errorf("Expected should already be sorted (-want +got):\n%s", diff)
	}
}

func TestIncompleteErrorReportsTrailingOffset(t *testing.T) {
	err := &Incomplete{Offset: 42}
	assert.Contains(t, err.Error(), "42")
}
