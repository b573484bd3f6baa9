// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"log"

	"github.com/ezrec/pcc/cpu"
	"github.com/ezrec/pcc/io"
)

// DEFAULT_TICK_LIMIT bounds a run of a program that never halts.
const DEFAULT_TICK_LIMIT = cpu.MEMORY_SIZE

// Emulator state. CPU + program listing + output ports.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.
}

// NewEmulator creates a new emulator, running an empty program.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	return
}

// SetPort attaches an output device to a port.
func (emu *Emulator) SetPort(index uint8, port io.Port) {
	emu.Cpu.SetPort(index, port)
}

// Reset loads the program image and resets the CPU.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose

	image := emu.Program.Binary()
	if emu.Verbose {
		log.Printf("emulator: loading %d bytes", len(image))
	}

	emu.Cpu.Load(image)
	emu.Cpu.Reset()
}

// Code returns the source instruction at the program counter, if any.
func (emu *Emulator) Code() (code cpu.Code) {
	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Code != nil {
		code = *dbg.Code
	}

	return
}

// LineNo returns the current line number for the executing opcode.
// The appended halt has no line, and reports 0.
func (emu *Emulator) LineNo() int {
	return emu.Code().LineNo
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	if emu.Cpu.Halted {
		done = true
		return
	}

	// An image ending in an immediate 0x76 has no HLT to execute.
	if int(emu.Cpu.Pc) == emu.Cpu.Size() {
		if emu.Verbose {
			log.Printf("emulator: end of image")
		}
		emu.Cpu.Halted = true
		done = true
		return
	}

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if err != nil {
		return
	}

	done = emu.Cpu.Halted

	return
}

// Run ticks the emulator until the program halts. A limit of zero or less
// never stops a running program.
func (emu *Emulator) Run(limit int) (err error) {
	for tick := 0; limit <= 0 || tick < limit; tick++ {
		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}
	}

	err = &ErrRuntime{LineNo: emu.LineNo(), Err: ErrTickLimit}

	return
}
