package driver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dwijnand/scala-parser/internal/color"
)

type nopWriter struct{ b strings.Builder }

func (w *nopWriter) Write(p []byte) (int, error) { return w.b.Write(p) }

func TestReportReturnsFalseOnAnyFailure(t *testing.T) {
	var buf nopWriter
	ok := Report(&buf, color.Plain, []Result{
		{Path: "a.scala", Passed: true},
		{Path: "b.scala", Passed: false},
	})
	assert.False(t, ok)
	assert.Contains(t, buf.b.String(), "failed")
}

func TestReportReturnsTrueWhenAllPassOrSkip(t *testing.T) {
	var buf nopWriter
	ok := Report(&buf, color.Plain, []Result{
		{Path: "a.scala", Passed: true},
		{Path: "b.scala", Skipped: true, SkipWhy: "shebang"},
	})
	assert.True(t, ok)
	out := buf.b.String()
	assert.Contains(t, out, "ok")
	assert.Contains(t, out, "skip (shebang)")
}

func TestSplitLinesHandlesTrailingNewline(t *testing.T) {
	assert.Equal(t, []string{"a", "b", ""}, splitLines("a\nb\n"))
	assert.Equal(t, []string{"a"}, splitLines("a"))
}
