package cpu

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// decoded is an opcode byte split into its fields.
type decoded struct {
	Valid bool
	Op    Mnemonic
	Dst   Register
	Src   Register
}

// decodeTable inverts opcodeTable. HLT is enumerated after MOV, so 0x76
// decodes as HLT and not as MOV M,M.
var decodeTable = func() (table [256]decoded) {
	for op := range Mnemonic(MNEMONIC_COUNT) {
		def := op.Def()
		switch def.Rule {
		case RULE_MOVE:
			for dst := range Register(REGISTER_COUNT) {
				for src := range Register(REGISTER_COUNT) {
					table[def.Base|byte(dst)<<3|byte(src)] = decoded{Valid: true, Op: op, Dst: dst, Src: src}
				}
			}
		case RULE_DEST_IMM, RULE_DEST:
			for dst := range Register(REGISTER_COUNT) {
				table[def.Base|byte(dst)<<3] = decoded{Valid: true, Op: op, Dst: dst}
			}
		case RULE_SOURCE:
			for src := range Register(REGISTER_COUNT) {
				table[def.Base|byte(src)] = decoded{Valid: true, Op: op, Src: src}
			}
		case RULE_IMM, RULE_FIXED:
			table[def.Base] = decoded{Valid: true, Op: op}
		}
	}
	return
}()

// Decode decodes the instruction at the start of data, returning it and its
// size in bytes.
func Decode(data []byte) (inst Instruction, size int, err error) {
	if len(data) == 0 {
		err = ErrOpcodeTruncated
		return
	}

	entry := decodeTable[data[0]]
	if !entry.Valid {
		err = ErrOpcode(data[0])
		return
	}

	def := entry.Op.Def()
	if len(data) < def.Rule.Size() {
		err = ErrOpcodeTruncated
		return
	}
	size = def.Rule.Size()

	inst.Mnemonic = entry.Op.String()
	switch def.Rule {
	case RULE_MOVE:
		inst.Operand1 = entry.Dst.String()
		inst.Operand2 = entry.Src.String()
	case RULE_DEST_IMM:
		inst.Operand1 = entry.Dst.String()
		inst.Operand2 = fmt.Sprintf("0X%02X", data[1])
	case RULE_SOURCE:
		inst.Operand1 = entry.Src.String()
	case RULE_IMM:
		inst.Operand1 = fmt.Sprintf("0X%02X", data[1])
	case RULE_DEST:
		inst.Operand1 = entry.Dst.String()
	}
	inst.Line = inst.String()

	return
}

// Disassemble writes a listing of a machine code image.
// Undecodable bytes are listed as '??' and skipped.
func Disassemble(w io.Writer, image []byte) (err error) {
	for addr := 0; addr < len(image); {
		inst, size, derr := Decode(image[addr:])
		var text string
		switch {
		case derr == nil:
			text = inst.String()
		case errors.Is(derr, ErrOpcodeTruncated):
			size = len(image) - addr
			text = "?? " + derr.Error()
		default:
			size = 1
			text = "??"
		}
		_, err = fmt.Fprintf(w, "%04x  %-6s %v\n", addr, strings.Join(hexBytes(image[addr:addr+size]), " "), text)
		if err != nil {
			return
		}
		addr += size
	}
	return
}
