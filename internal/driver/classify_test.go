package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyRunsOrdinarySource(t *testing.T) {
	outcome, negated, reason := Classify("testdata/pass/basic.scala", []byte("object O { val x = 1 }"))
	assert.Equal(t, Parse, outcome)
	assert.False(t, negated)
	assert.Empty(t, reason)
}

func TestClassifySkipsShebangFiles(t *testing.T) {
	outcome, _, reason := Classify("testdata/pass/script.scala", []byte("#!/usr/bin/env scala\nobject O"))
	assert.Equal(t, Skip, outcome)
	assert.Equal(t, "shebang", reason)
}

func TestClassifySkipsEscapedUnicodeLines(t *testing.T) {
	src := "object O {\n  val \\u0061 = 1\n}\n"
	outcome, _, reason := Classify("testdata/pass/unicode.scala", []byte(src))
	assert.Equal(t, Skip, outcome)
	assert.Equal(t, "\\u escape line", reason)
}

func TestClassifyDoesNotFlagUnicodeEscapeInsideQuotes(t *testing.T) {
	// the regex excludes quote characters from the whole line, so an
	// escape on a line that also contains a quote is not flagged.
	src := "object O {\n  val s = \"\\u0041\"\n}\n"
	outcome, _, reason := Classify("testdata/pass/plain.scala", []byte(src))
	assert.Equal(t, Parse, outcome)
	assert.Empty(t, reason)
}

func TestClassifySkipsFailingPathSegment(t *testing.T) {
	outcome, negated, reason := Classify("testdata/failing/broken.scala", []byte("object O {"))
	assert.Equal(t, Skip, outcome)
	assert.False(t, negated)
	assert.Equal(t, "failing/ path segment", reason)
}

func TestClassifyNegatesNegPathSegment(t *testing.T) {
	outcome, negated, reason := Classify("testdata/neg/bad.scala", []byte("object O {"))
	assert.Equal(t, Parse, outcome)
	assert.True(t, negated)
	assert.Empty(t, reason)
}

func TestClassifyShebangTakesPriorityOverNeg(t *testing.T) {
	outcome, _, reason := Classify("testdata/neg/script.scala", []byte("#!/bin/sh\nobject O"))
	assert.Equal(t, Skip, outcome)
	assert.Equal(t, "shebang", reason)
}

func TestHasShebangRequiresTwoBytes(t *testing.T) {
	assert.False(t, hasShebang([]byte("#")))
	assert.False(t, hasShebang([]byte("")))
	assert.True(t, hasShebang([]byte("#!")))
}
