package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChAndStr(t *testing.T) {
	p := NewParser("abc")
	require.True(t, p.Ch('a'))
	require.True(t, p.Str("bc"))
	assert.True(t, p.AtEOI())
}

func TestStrBacktracksOnPartialMatch(t *testing.T) {
	p := NewParser("abd")
	require.False(t, p.Str("abc"))
	assert.Equal(t, 0, p.Cursor(), "Str must restore the cursor exactly on a partial mismatch")
}

func TestChoiceTriesBranchesInOrder(t *testing.T) {
	p := NewParser("bar")
	v, ok := Choice(p,
		func(p *Parser) (string, bool) {
			if p.Str("foo") {
				return "foo", true
			}
			return "", false
		},
		func(p *Parser) (string, bool) {
			if p.Str("bar") {
				return "bar", true
			}
			return "", false
		},
	)
	require.True(t, ok)
	assert.Equal(t, "bar", v)
	assert.Equal(t, 3, p.Cursor())
}

func TestZeroOrMoreStopsOnFirstFailure(t *testing.T) {
	p := NewParser("aaab")
	vs := ZeroOrMore(p, func(p *Parser) (rune, bool) {
		if p.Ch('a') {
			return 'a', true
		}
		return 0, false
	})
	assert.Len(t, vs, 3)
	assert.Equal(t, 3, p.Cursor())
}

func TestOneOrMoreRequiresAtLeastOneMatch(t *testing.T) {
	p := NewParser("bbb")
	_, ok := OneOrMore(p, func(p *Parser) (rune, bool) {
		if p.Ch('a') {
			return 'a', true
		}
		return 0, false
	})
	assert.False(t, ok)
	assert.Equal(t, 0, p.Cursor())
}

func TestAndIsNonConsuming(t *testing.T) {
	p := NewParser("xyz")
	ok := And(p, func(p *Parser) (struct{}, bool) {
		return struct{}{}, p.Str("xy")
	})
	assert.True(t, ok)
	assert.Equal(t, 0, p.Cursor(), "And must not consume input on success")
}

func TestNotSucceedsOnlyWhenInnerFails(t *testing.T) {
	p := NewParser("xyz")
	assert.False(t, Not(p, func(p *Parser) (struct{}, bool) {
		return struct{}{}, p.Str("xy")
	}))
	assert.Equal(t, 0, p.Cursor())

	p2 := NewParser("abc")
	assert.True(t, Not(p2, func(p *Parser) (struct{}, bool) {
		return struct{}{}, p2.Str("xy")
	}))
	assert.Equal(t, 0, p2.Cursor())
}

func TestAtomicCollapsesInnerFailureNames(t *testing.T) {
	p := NewParser("123")
	Atomic(p, "Letter", func(p *Parser) (struct{}, bool) {
		return struct{}{}, p.Range('a', 'z')
	})
	assert.Equal(t, []string{"Letter"}, p.front.names())
}

func TestCaptureReturnsConsumedSlice(t *testing.T) {
	p := NewParser("hello world")
	s, ok := Capture(p, func(p *Parser) (struct{}, bool) {
		return struct{}{}, p.Str("hello")
	})
	require.True(t, ok)
	assert.Equal(t, "hello", s)
}
