package cpu

import (
	"log"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// EXPR_MAX_STEPS bounds the work of a single $(...) evaluation.
const EXPR_MAX_STEPS = 1 << 16

// parenEval does assembly time $(...) evaluations.
func parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{Name: "pcc"}
	thread.SetMaxExecutionSteps(EXPR_MAX_STEPS)
	opts := syntax.FileOptions{}
	prog := "rc=" + strings.ToLower(expr) + "\n"
	dict, _err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, nil)
	if _err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// ParseImmediate converts an operand to an unsigned 8-bit value.
// Accepts 0x prefixed hexadecimal, decimal, or a $(...) expression.
func ParseImmediate(word string) (value byte, err error) {
	var v64 int64

	switch {
	case strings.HasPrefix(word, "$(") && strings.HasSuffix(word, ")"):
		v64, err = parenEval(word[2 : len(word)-1])
		if err != nil {
			return
		}
	case strings.HasPrefix(word, "0X"), strings.HasPrefix(word, "0x"):
		var u64 uint64
		u64, err = strconv.ParseUint(word[2:], 16, 16)
		if err != nil {
			err = ErrParseNumber(word)
			return
		}
		v64 = int64(u64)
	default:
		v64, err = strconv.ParseInt(word, 10, 16)
		if err != nil {
			err = ErrParseNumber(word)
			return
		}
	}

	if v64 < 0 || v64 > 0xff {
		err = ErrParseNumber(word)
		return
	}

	value = byte(v64)
	return
}

// checkOperands verifies the operand count for a rule.
func checkOperands(inst Instruction, rule Rule) (err error) {
	have := len(inst.Operands())
	need := rule.Operands()
	switch {
	case have < need:
		err = ErrOperandMissing
	case have > need:
		err = ErrOperandExtra
	}
	return
}

// Encode encodes a single instruction into one or two bytes.
func (asm *Assembler) Encode(inst Instruction) (data []byte, err error) {
	op, err := ParseMnemonic(inst.Mnemonic)
	if err != nil {
		return
	}

	def := op.Def()

	err = checkOperands(inst, def.Rule)
	if err != nil {
		return
	}

	var dst, src Register
	var imm byte

	switch def.Rule {
	case RULE_MOVE:
		dst, err = ParseRegister(inst.Operand1)
		if err != nil {
			return
		}
		src, err = ParseRegister(inst.Operand2)
		if err != nil {
			return
		}
		data = []byte{def.Base | byte(dst)<<3 | byte(src)}
	case RULE_DEST_IMM:
		dst, err = ParseRegister(inst.Operand1)
		if err != nil {
			return
		}
		imm, err = ParseImmediate(inst.Operand2)
		if err != nil {
			return
		}
		data = []byte{def.Base | byte(dst)<<3, imm}
	case RULE_SOURCE:
		src, err = ParseRegister(inst.Operand1)
		if err != nil {
			return
		}
		data = []byte{def.Base | byte(src)}
	case RULE_IMM:
		imm, err = ParseImmediate(inst.Operand1)
		if err != nil {
			return
		}
		data = []byte{def.Base, imm}
	case RULE_DEST:
		dst, err = ParseRegister(inst.Operand1)
		if err != nil {
			return
		}
		data = []byte{def.Base | byte(dst)<<3}
	case RULE_FIXED:
		data = []byte{def.Base}
	default:
		log.Panicf("%v: unhandled rule %v", op, def.Rule)
	}

	if asm.Verbose {
		log.Printf("%v: %v => %v", inst.LineNo, inst, hexBytes(data))
	}

	return
}
