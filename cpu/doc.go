// Package cpu implements the instruction model, assembler and processor core
// for an Intel 8080 subset.
//
// The assembler is single pass. Each non-blank line holds one mnemonic and
// up to two operands separated by commas or whitespace; ';' starts a comment.
// Operands are register names (B C D E H L M A) or byte immediates written
// in decimal, 0x prefixed hexadecimal, or as a $(...) expression evaluated
// at assembly time. There are no labels, macros or sections.
//
// Every assembled image ends in HLT (0x76); one is appended when the source
// does not end with it.
//
// The processor core executes the same subset, with MOV and the arithmetic
// group addressing memory at HL through the M register, and OUT delivering
// the accumulator to an attached port device.
package cpu
