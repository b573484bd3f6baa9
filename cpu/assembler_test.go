package cpu

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
)

func parseLines(t *testing.T, program ...string) []Instruction {
	t.Helper()

	asm := &Assembler{}
	insts, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(t, err)
	return insts
}

func TestAssemblerParseEmpty(t *testing.T) {
	assert := assert.New(t)

	assert.Empty(parseLines(t, ""))
	assert.Empty(parseLines(t,
		"",
		"; nothing but a comment",
		"   ",
		"\t; indented comment",
		",,",
	))
}

func TestAssemblerParse(t *testing.T) {
	assert := assert.New(t)

	insts := parseLines(t,
		"; header",
		"mvi a, 0x2a   ; load",
		"",
		"Mov B,A",
		"  out 1",
		"hlt",
	)

	expected := []Instruction{
		{LineNo: 2, Line: "mvi a 0x2a", Mnemonic: "MVI", Operand1: "A", Operand2: "0X2A"},
		{LineNo: 4, Line: "Mov B A", Mnemonic: "MOV", Operand1: "B", Operand2: "A"},
		{LineNo: 5, Line: "out 1", Mnemonic: "OUT", Operand1: "1"},
		{LineNo: 6, Line: "hlt", Mnemonic: "HLT"},
	}

	assert.Equal(expected, insts)
}

func TestAssemblerParseSeparators(t *testing.T) {
	assert := assert.New(t)

	commented := parseLines(t, "MOV A,B ; comment")
	spaced := parseLines(t, "   MOV   A B   ")
	tabbed := parseLines(t, "\tMOV\tA ,\tB")

	assert.Len(commented, 1)
	assert.Equal(commented, spaced)
	assert.Equal(commented, tabbed)
}

func TestAssemblerParseCRLF(t *testing.T) {
	assert := assert.New(t)

	insts := parseLines(t, "MOV A,B\r", "HLT\r", "")

	assert.Len(insts, 2)
	assert.Equal("B", insts[0].Operand2)
	assert.Equal("HLT", insts[1].Mnemonic)
	assert.Equal(2, insts[1].LineNo)
}

func TestAssemblerParseExtra(t *testing.T) {
	assert := assert.New(t)

	insts := parseLines(t, "mov a, b, c d")

	assert.Len(insts, 1)
	assert.Equal([]string{"C", "D"}, insts[0].Extra)
	assert.Equal([]string{"A", "B", "C", "D"}, insts[0].Operands())
	assert.Equal("MOV A, B, C, D", insts[0].String())
}

func TestAssemblerParseExpression(t *testing.T) {
	assert := assert.New(t)

	insts := parseLines(t, "mvi a, $(1 + 2 * 3) ; seven")

	assert.Len(insts, 1)
	assert.Equal("A", insts[0].Operand1)
	assert.Equal("$(1 + 2 * 3)", insts[0].Operand2)
	assert.Empty(insts[0].Extra)
}

func TestAssemblerParseNeverRejects(t *testing.T) {
	assert := assert.New(t)

	insts := parseLines(t, "@@ #! 'x' \"y\" $(")

	assert.Len(insts, 1)
	assert.Equal("@@", insts[0].Mnemonic)
}

func TestAssemblerParseReadError(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	_, err := asm.Parse(iotest.ErrReader(errors.New("boom")))
	assert.Error(err)
}

func TestAssemblerParseVerticalTab(t *testing.T) {
	assert := assert.New(t)

	insts := parseLines(t, "MOV\vA,\fB")

	assert.Len(insts, 1)
	assert.Equal("MOV", insts[0].Mnemonic)
	assert.Equal("A", insts[0].Operand1)
	assert.Equal("B", insts[0].Operand2)
}

func TestAssemblerParseExpressions(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line     string
		operands []string
	}){
		{"MVI A,$(1),$(2)", []string{"A", "$(1)", "$(2)"}},
		{"MVI A, $(1) $(2)", []string{"A", "$(1)", "$(2)"}},
		{"MVI A, $((1 + 2) * 3)", []string{"A", "$((1 + 2) * 3)"}},
		{"MVI A, $(len((1, 2)))", []string{"A", "$(LEN((1, 2)))"}},
		{"ADI $(max(1, 2)) ; comment (", []string{"$(MAX(1, 2))"}},
	}

	for _, entry := range table {
		insts := parseLines(t, entry.line)
		if assert.Len(insts, 1, entry.line) {
			assert.Equal(entry.operands, insts[0].Operands(), entry.line)
		}
	}
}
