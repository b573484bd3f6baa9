package cpu

import (
	"strings"
)

// Instruction is a single parsed source line.
// Operands are not validated until the instruction is encoded.
type Instruction struct {
	LineNo   int      // Source line number.
	Line     string   // Source words, as written.
	Mnemonic string   // Upper case mnemonic.
	Operand1 string   // Upper case first operand, or empty.
	Operand2 string   // Upper case second operand, or empty.
	Extra    []string // Surplus operands.
}

// makeInstruction builds an instruction from the words of a line.
func makeInstruction(lineno int, words []string) (inst Instruction) {
	inst.LineNo = lineno
	inst.Line = strings.Join(words, " ")

	upper := make([]string, len(words))
	for n, word := range words {
		upper[n] = strings.ToUpper(word)
	}

	inst.Mnemonic = upper[0]
	if len(upper) > 1 {
		inst.Operand1 = upper[1]
	}
	if len(upper) > 2 {
		inst.Operand2 = upper[2]
	}
	if len(upper) > 3 {
		inst.Extra = upper[3:]
	}

	return
}

// Operands returns all present operands in order.
func (inst Instruction) Operands() (ops []string) {
	for _, op := range []string{inst.Operand1, inst.Operand2} {
		if len(op) == 0 {
			return
		}
		ops = append(ops, op)
	}
	ops = append(ops, inst.Extra...)
	return
}

// String returns the canonical assembly text.
func (inst Instruction) String() string {
	ops := inst.Operands()
	if len(ops) == 0 {
		return inst.Mnemonic
	}
	return inst.Mnemonic + " " + strings.Join(ops, ", ")
}
