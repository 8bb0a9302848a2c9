package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExprLiteralAndInfixChain(t *testing.T) {
	tests := []string{
		"1 + 2 * 3",
		"a.b.c",
		"xs.map(x => x + 1)",
		"if (true) 1 else 2",
		"{ val x = 1; x + 1 }",
		`"a" + "b"`,
		"-x",
		"x :: xs",
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			p := NewParser(src)
			require.True(t, p.Expr())
			assert.True(t, p.AtEOI(), "expected Expr to consume %q fully", src)
		})
	}
}

func TestPrefixExprAppliesSingleLeadingOperator(t *testing.T) {
	p := NewParser("-x")
	require.True(t, p.PrefixExpr())
	assert.True(t, p.AtEOI())
}

func TestPrefixExprDoesNotSplitOperatorIdentifier(t *testing.T) {
	// `--` must parse as one operator identifier, not as the prefix
	// operator `-` followed by a `-` it can't attach to.
	p := NewParser("--")
	require.True(t, p.PrefixExpr())
	assert.True(t, p.AtEOI())
}

func TestBlockRequiresBraces(t *testing.T) {
	p := NewParser("val x = 1")
	assert.False(t, p.block())
}

func TestNewExprWithArgumentsAndBody(t *testing.T) {
	p := NewParser(`new Foo(1, 2) { val extra = 3 }`)
	require.True(t, p.Expr())
	assert.True(t, p.AtEOI())
}
