package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelfTypeWithIdAndType(t *testing.T) {
	p := NewParser("self: X =>")
	require.True(t, p.selfType())
	assert.True(t, p.AtEOI())
}

func TestSelfTypeWithThisAndType(t *testing.T) {
	p := NewParser("this: X =>")
	require.True(t, p.selfType())
	assert.True(t, p.AtEOI())
}

func TestSelfTypeWithoutAscription(t *testing.T) {
	p := NewParser("self =>")
	require.True(t, p.selfType())
	assert.True(t, p.AtEOI())
}

func TestSelfTypeRejectsMissingArrow(t *testing.T) {
	p := NewParser("self: X")
	assert.False(t, p.selfType())
	assert.Equal(t, 0, p.Cursor(), "a failed self-type attempt must consume nothing")
}

func TestTemplateBodyAcceptsLeadingSelfType(t *testing.T) {
	p := NewParser(`{
  self: X =>
  def size: Int = 0
}`)
	require.True(t, p.templateBody())
	assert.True(t, p.AtEOI())
}

func TestTemplateBodyWithoutSelfTypeStillWorks(t *testing.T) {
	p := NewParser(`{ def size: Int = 0 }`)
	require.True(t, p.templateBody())
	assert.True(t, p.AtEOI())
}
