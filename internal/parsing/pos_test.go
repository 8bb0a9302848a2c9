package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineIndexLocationAt(t *testing.T) {
	src := "abc\ndef\nghi"
	idx := NewLineIndex([]rune(src))

	tests := []struct {
		name   string
		cursor int
		line   int
		col    int
	}{
		{"start of input", 0, 1, 1},
		{"mid first line", 2, 1, 3},
		{"start of second line", 4, 2, 1},
		{"mid third line", 9, 3, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := idx.LocationAt(tt.cursor)
			assert.Equal(t, tt.line, loc.Line)
			assert.Equal(t, tt.col, loc.Column)
		})
	}
}

func TestLineIndexLineText(t *testing.T) {
	src := "first\nsecond\nthird"
	idx := NewLineIndex([]rune(src))
	assert.Equal(t, "second", idx.LineText(7))
	assert.Equal(t, "third", idx.LineText(len(src)-1))
}

func TestSpanString(t *testing.T) {
	sp := NewSpan(Location{Line: 1, Column: 1, Cursor: 0}, Location{Line: 1, Column: 4, Cursor: 3})
	assert.Equal(t, "1:1..4", sp.String())

	multiline := NewSpan(Location{Line: 1, Column: 1, Cursor: 0}, Location{Line: 2, Column: 2, Cursor: 5})
	assert.Equal(t, "1:1..2:2", multiline.String())
}
