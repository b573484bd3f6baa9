package cpu

import (
	"errors"

	"github.com/ezrec/pcc/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrPcRange = errors.New(f("pc outside of image"))
	ErrHalted  = errors.New(f("cpu halted"))

	// Instruction decode errors
	ErrOpcodeTruncated = errors.New(f("immediate truncated"))

	// Assembler errors
	ErrMnemonicInvalid = errors.New(f("mnemonic invalid"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrOperandMissing  = errors.New(f("operand missing"))
	ErrOperandExtra    = errors.New(f("excessive operands"))
	ErrValue           = errors.New(f("value conversion"))

	// File errors
	ErrInputOpen    = errors.New(f("cannot open input"))
	ErrOutputCreate = errors.New(f("cannot create output"))
	ErrOutputOpen   = errors.New(f("cannot open output for writing"))
	ErrOutputWrite  = errors.New(f("cannot write output"))
)

type ErrOpcode byte

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%02x", byte(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrSyntax locates an encoding error in the source.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a byte value", string(err))
}

func (err ErrParseNumber) Is(target error) bool {
	return target == ErrValue
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

func (err ErrParseExpression) Is(target error) bool {
	return target == ErrValue
}

// ErrFile locates an I/O error on a file.
type ErrFile struct {
	Path string
	Err  error
}

func (err *ErrFile) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrFile) Unwrap() error {
	return err.Err
}
