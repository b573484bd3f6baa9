package io

import (
	"fmt"
	"io"
)

// Tape writes every byte sent to it to a byte stream.
type Tape struct {
	Output io.Writer

	written int
}

var _ Port = (*Tape)(nil)

// Rewind is not possible on a tape.
func (tc *Tape) Rewind() {
}

// Send writes a byte to the output stream.
func (tc *Tape) Send(value byte) (err error) {
	if tc.Output == nil {
		return
	}

	_, err = tc.Output.Write([]byte{value})
	if err == nil {
		tc.written++
	}

	return
}

// Written returns the number of bytes written since creation.
func (tc *Tape) Written() int {
	return tc.written
}

// Hex writes every byte sent to it as a line of two hex digits.
type Hex struct {
	Output io.Writer
}

var _ Port = (*Hex)(nil)

func (hc *Hex) Rewind() {
}

func (hc *Hex) Send(value byte) (err error) {
	_, err = fmt.Fprintf(hc.Output, "%02x\n", value)
	return
}
