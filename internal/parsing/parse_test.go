package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAcceptsCompilationUnits(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "package and import only",
			src: `package com.example

import scala.collection.mutable.{Map, Set}
`,
		},
		{
			name: "simple object with val and def",
			src: `object Hello {
  val greeting: String = "hi"

  def shout(s: String): String = s + "!"
}
`,
		},
		{
			name: "class with primary constructor and extends clause",
			src: `class Point(val x: Int, val y: Int) extends Ordered[Point] {
  def compare(that: Point): Int = {
    val dx = this.x - that.x
    if (dx != 0) dx else this.y - that.y
  }
}
`,
		},
		{
			name: "trait with abstract and concrete members",
			src: `trait Greeter {
  def name: String
  def greet(): String = "Hello, " + name
}
`,
		},
		{
			name: "if/else, while, and for expressions",
			src: `object Control {
  def run(xs: List[Int]): Int = {
    var total = 0
    for (x <- xs if x > 0) {
      total = total + x
    }
    while (total > 100) {
      total = total - 1
    }
    if (total < 0) -total else total
  }
}
`,
		},
		{
			name: "match expression with case clauses",
			src: `object Matcher {
  def describe(x: Any): String = x match {
    case 0 => "zero"
    case n: Int => "int"
    case _ => "other"
  }
}
`,
		},
		{
			name: "lambda and higher-order call",
			src: `object Funcs {
  val inc = (x: Int) => x + 1
  val ys = List(1, 2, 3).map(x => x * 2)
}
`,
		},
		{
			name: "case class with pattern match extraction",
			src: `case class Pair(a: Int, b: Int)

object Pairs {
  def sum(p: Pair): Int = p match {
    case Pair(a, b) => a + b
  }
}
`,
		},
		{
			name: "class with multiple with clauses and a self-type annotation",
			src: `class A extends B with C with D {
  self: X =>
}
`,
		},
		{
			name: "try/catch/finally and throw",
			src: `object Risky {
  def run(): Unit = {
    try {
      throw new RuntimeException("boom")
    } catch {
      case e: RuntimeException => ()
    } finally {
      ()
    }
  }
}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := Parse(tt.src)
			if err != nil {
				t.Logf("parse error: %s", err.Error())
			}
			require.True(t, ok)
		})
	}
}

func TestParseRejectsIncompleteInput(t *testing.T) {
	ok, err := Parse(`object Broken {
  def f(: Int = 1
}
`)
	assert.False(t, ok)
	require.NotNil(t, err)
	perr, isParseErr := err.(*ParseError)
	require.True(t, isParseErr, "a mismatched parameter clause is a syntax error, not trailing garbage")
	assert.Greater(t, perr.Offset, 0)
}

func TestParseReportsDeepestFailure(t *testing.T) {
	_, err := Parse(`object O {
  val x: = 1
}
`)
	require.NotNil(t, err)
	perr, isParseErr := err.(*ParseError)
	require.True(t, isParseErr)
	assert.NotEmpty(t, perr.FormattedExpected())
}

func TestParseReportsIncompleteOnUnrecognizedTrailer(t *testing.T) {
	ok, err := Parse("object O { val x = 1 }\n!!!")
	assert.False(t, ok)
	require.NotNil(t, err)
	incomplete, isIncomplete := err.(*Incomplete)
	require.True(t, isIncomplete, "trailing input after a clean parse must be classified as Incomplete, not ParseError")
	assert.Greater(t, incomplete.Offset, 0)
}
