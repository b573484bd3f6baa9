// Package io provides the output port devices of the 8080 emulator.
// A device is attached to one of the 256 port numbers addressed by the
// OUT instruction, and receives the accumulator on every OUT to it.
package io

// Port defines the interface for all output port devices.
type Port interface {
	// Rewind resets the device to its initial state.
	Rewind()
	// Send delivers a single byte to the device.
	Send(value byte) error
}
