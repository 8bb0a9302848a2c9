package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternForms(t *testing.T) {
	tests := []string{
		"_",
		"x",
		"42",
		`"hello"`,
		"Some(x)",
		"Pair(a, b)",
		"x: Int",
		"x @ Some(_)",
		"1 | 2 | 3",
		"_*",
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			p := NewParser(src)
			require.True(t, p.Pattern())
			assert.True(t, p.AtEOI(), "expected Pattern to consume %q fully", src)
		})
	}
}

func TestPatternAlternationOrder(t *testing.T) {
	p := NewParser("1 | 2")
	require.True(t, p.Pattern())
	assert.True(t, p.AtEOI())
}
