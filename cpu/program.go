package cpu

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/ezrec/pcc/internal"
)

// Code is one encoded instruction placed in the image.
type Code struct {
	LineNo int
	Addr   int
	Words  []string
	Bytes  []byte
}

// Hex renders every byte as exactly two hex digits.
func (code Code) Hex() []string {
	return hexBytes(code.Bytes)
}

func hexBytes(data []byte) (hex []string) {
	hex = make([]string, len(data))
	for n, b := range data {
		hex[n] = fmt.Sprintf("%02x", b)
	}
	return
}

type Program struct {
	Codes []Code
}

type Debug struct {
	*Code
	Index int
}

// Assemble encodes instructions in order. The first failure aborts the
// assembly, since every byte after it would be misaligned.
func (asm *Assembler) Assemble(insts []Instruction) (prog *Program, err error) {
	prog = &Program{}

	addr := 0
	for _, inst := range insts {
		var data []byte
		data, err = asm.Encode(inst)
		if err != nil {
			err = &ErrSyntax{LineNo: inst.LineNo, Line: inst.Line, Err: err}
			prog = nil
			return
		}
		prog.Codes = append(prog.Codes, Code{
			LineNo: inst.LineNo,
			Addr:   addr,
			Words:  strings.Fields(inst.String()),
			Bytes:  data,
		})
		addr += len(data)
	}

	return
}

// Halted returns true if the last encoded byte is already HALT.
// An immediate of 0x76 at the end of the program counts.
func (prog *Program) Halted() bool {
	if len(prog.Codes) == 0 {
		return false
	}
	last := prog.Codes[len(prog.Codes)-1].Bytes
	return len(last) != 0 && last[len(last)-1] == HALT
}

// chunks iterates the encoded instructions, then a trailing halt when needed.
func (prog *Program) chunks() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for _, code := range prog.Codes {
			if !yield(code.Bytes) {
				return
			}
		}
		if !prog.Halted() {
			yield([]byte{HALT})
		}
	}
}

// Bytes iterates the image bytes, including a trailing halt when needed.
func (prog *Program) Bytes() iter.Seq[byte] {
	return internal.IterFlatten(prog.chunks())
}

// Binary returns the machine code image. The last byte is always HALT.
func (prog *Program) Binary() []byte {
	return slices.Collect(prog.Bytes())
}

// Debug finds the instruction covering an image address.
func (prog *Program) Debug(addr uint16) (dbg Debug) {
	for n, code := range prog.Codes {
		if int(addr) >= code.Addr && int(addr) < code.Addr+len(code.Bytes) {
			dbg = Debug{
				Code:  &prog.Codes[n],
				Index: int(addr) - code.Addr,
			}
			break
		}
	}

	return
}

// Listing writes the address, bytes and source of every instruction.
func (prog *Program) Listing(w io.Writer) (err error) {
	for _, code := range prog.Codes {
		_, err = fmt.Fprintf(w, "%04x  %-6s %5d  %v\n", code.Addr, strings.Join(code.Hex(), " "), code.LineNo, strings.Join(code.Words, " "))
		if err != nil {
			return
		}
	}
	if !prog.Halted() {
		addr := 0
		if n := len(prog.Codes); n > 0 {
			addr = prog.Codes[n-1].Addr + len(prog.Codes[n-1].Bytes)
		}
		_, err = fmt.Fprintf(w, "%04x  %-6s %5s  %v\n", addr, hexBytes([]byte{HALT})[0], "-", OP_HLT)
	}
	return
}
