package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegerLiteral(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"42", "42"},
		{"-17", "-17"},
		{"0xFF", "0xFF"},
		{"100L", "100L"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			p := NewParser(tt.src)
			s, ok := p.IntegerLiteral()
			require.True(t, ok)
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestFloatLiteralRequiresDecimalPoint(t *testing.T) {
	p := NewParser("1")
	_, ok := p.FloatLiteral()
	assert.False(t, ok, "a bare integer must not match FloatLiteral")
	assert.Equal(t, 0, p.Cursor())

	p2 := NewParser("3.14e10")
	s, ok := p2.FloatLiteral()
	require.True(t, ok)
	assert.Equal(t, "3.14e10", s)
}

func TestStringLiteralPlain(t *testing.T) {
	p := NewParser(`"hello\nworld"`)
	s, ok := p.StringLiteral()
	require.True(t, ok)
	assert.Equal(t, `hello\nworld`, s)
}

func TestStringLiteralTripleQuoted(t *testing.T) {
	p := NewParser(`"""line1
line2"""`)
	s, ok := p.StringLiteral()
	require.True(t, ok)
	assert.Equal(t, "line1\nline2", s)
}

func TestStringLiteralUnterminatedFails(t *testing.T) {
	p := NewParser(`"unterminated`)
	_, ok := p.StringLiteral()
	assert.False(t, ok)
}

func TestCharLiteral(t *testing.T) {
	p := NewParser(`'a'`)
	s, ok := p.CharLiteral()
	require.True(t, ok)
	assert.Equal(t, `'a'`, s)

	p2 := NewParser(`'\n'`)
	s2, ok := p2.CharLiteral()
	require.True(t, ok)
	assert.Equal(t, `'\n'`, s2)
}

func TestBooleanAndNullLiterals(t *testing.T) {
	p := NewParser("true")
	_, ok := p.BooleanLiteral()
	assert.True(t, ok)

	p2 := NewParser("null")
	assert.True(t, p2.NullLiteral())
}

func TestInterpolatedString(t *testing.T) {
	p := NewParser(`s"hello ${name}"`)
	_, ok := p.InterpolatedString()
	assert.True(t, ok)
}

func TestSymbolLiteral(t *testing.T) {
	p := NewParser("'foo")
	s, ok := p.SymbolLiteral()
	require.True(t, ok)
	assert.Equal(t, "'foo", s)
}

func TestLiteralOrderedChoicePrefersFloatOverInteger(t *testing.T) {
	p := NewParser("3.14")
	require.True(t, p.Literal())
	assert.Equal(t, 4, p.Cursor())
}
