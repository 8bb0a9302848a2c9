package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdRejectsReservedWords(t *testing.T) {
	p := NewParser("class")
	_, ok := p.Id()
	assert.False(t, ok, "a reserved word must never match Id")
}

func TestIdMatchesPlainBacktickAndOperatorForms(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"fooBar", "fooBar"},
		{"`class`", "class"},
		{"+++", "+++"},
		{"unary_!", "unary_!"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			p := NewParser(tt.src)
			name, ok := p.Id()
			require.True(t, ok)
			assert.Equal(t, tt.want, name)
		})
	}
}

func TestVarIdRequiresLowercaseStart(t *testing.T) {
	p := NewParser("Foo")
	_, ok := p.VarId()
	assert.False(t, ok)

	p2 := NewParser("foo")
	name, ok := p2.VarId()
	require.True(t, ok)
	assert.Equal(t, "foo", name)
}

func TestKeywordRejectsIdentifierPrefixMatch(t *testing.T) {
	p := NewParser("classOf")
	assert.False(t, p.Keyword("class"), "`class` must not match inside `classOf`")
}

func TestKeywordSkipsLeadingIndentation(t *testing.T) {
	p := NewParser("   val")
	assert.True(t, p.Keyword("val"))
	assert.True(t, p.AtEOI())
}

func TestIdRejectsBareUnderscore(t *testing.T) {
	p := NewParser("_")
	_, ok := p.Id()
	assert.False(t, ok, "`_` is a reserved operator token, not a plain identifier")
}

func TestVarIdRejectsBareUnderscore(t *testing.T) {
	p := NewParser("_")
	_, ok := p.VarId()
	assert.False(t, ok)
}
