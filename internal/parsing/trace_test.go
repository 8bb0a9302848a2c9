package parsing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentRecordsNestedRuleEntries(t *testing.T) {
	instr := NewInstrument(0)
	instr.Push("Outer", 0)
	instr.Push("Inner", 1)
	instr.Pop()
	instr.Pop()

	report := instr.Report()
	lines := strings.Split(strings.TrimRight(report, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Outer@0", lines[0])
	assert.Equal(t, "  Inner@1", lines[1])
}

func TestInstrumentCapsAtMaxEntries(t *testing.T) {
	instr := NewInstrument(1)
	instr.Enter("A", 0)
	instr.Enter("B", 1)
	assert.Equal(t, 1, instr.Len())
}

func TestInstrumentMethodsAreNilSafe(t *testing.T) {
	var instr *Instrument
	instr.Enter("A", 0)
	instr.Push("A", 0)
	instr.Pop()
	instr.Reset()
	assert.Equal(t, 0, instr.Len())
	assert.Equal(t, "", instr.Report())
}

func TestParseTracedRecordsAtomicRuleEntries(t *testing.T) {
	instr := NewInstrument(0)
	ok, err := ParseTraced("object O { val x = 1 }\n", instr)
	require.True(t, ok)
	require.Nil(t, err)
	assert.Contains(t, instr.Report(), "Id@")
}
