package cpu

import (
	"fmt"
	"log"
	"math/bits"

	"github.com/ezrec/pcc/io"
)

// Port is an output port device.
type Port io.Port

// Status flag bits, in 8080 PSW layout.
const (
	FLAG_CY = byte(1 << 0) // Carry
	FLAG_1  = byte(1 << 1) // Always set
	FLAG_P  = byte(1 << 2) // Parity (even)
	FLAG_AC = byte(1 << 4) // Auxiliary carry
	FLAG_Z  = byte(1 << 6) // Zero
	FLAG_S  = byte(1 << 7) // Sign
)

// MEMORY_SIZE is the 8080 address space.
const MEMORY_SIZE = 0x10000

// Cpu is the simulation context for an Intel 8080.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Register [REGISTER_COUNT]byte // Register file, indexed by Register. REG_M is unused.
	Status   byte                 // Status flags.
	Sp       uint16               // Stack pointer.
	Pc       uint16               // Program counter.
	Memory   []byte               // Address space.
	Halted   bool                 // Set once HLT executes.

	Ticks int // Instructions executed since reset.

	limit int       // Size of the loaded image.
	port  [256]Port // Output port devices.
}

// NewCpu creates a new CPU with an empty address space.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		Memory: make([]byte, MEMORY_SIZE),
		Status: FLAG_1,
	}

	return
}

// SetPort attaches a device to an output port. A nil device detaches it.
func (cpu *Cpu) SetPort(index uint8, port Port) {
	cpu.port[index] = port
}

// GetPort returns the device attached to an output port, or nil.
func (cpu *Cpu) GetPort(index uint8) Port {
	return cpu.port[index]
}

// Load copies an image to address 0. Execution is confined to the image.
func (cpu *Cpu) Load(image []byte) {
	clear(cpu.Memory)
	cpu.limit = copy(cpu.Memory, image)
}

// Size returns the size of the loaded image.
func (cpu *Cpu) Size() int {
	return cpu.limit
}

// Reset clears the registers and flags, and rewinds all ports.
// Memory is preserved.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	cpu.Status = FLAG_1
	cpu.Sp = 0
	cpu.Pc = 0
	cpu.Halted = false
	cpu.Ticks = 0

	for _, port := range cpu.port {
		if port != nil {
			port.Rewind()
		}
	}
}

// Pair returns the 16-bit value of a register pair, named by its high register.
func (cpu *Cpu) Pair(high Register) uint16 {
	return uint16(cpu.Register[high])<<8 | uint16(cpu.Register[high+1])
}

// Flag returns true if a status flag is set.
func (cpu *Cpu) Flag(flag byte) bool {
	return cpu.Status&flag != 0
}

// String returns the register file as text.
func (cpu *Cpu) String() (text string) {
	for _, reg := range []Register{REG_A, REG_B, REG_C, REG_D, REG_E, REG_H} {
		text += fmt.Sprintf("%v = %d, ", reg, cpu.Register[reg])
	}
	text += fmt.Sprintf("%v = %d\n", REG_L, cpu.Register[REG_L])
	text += fmt.Sprintf("BC = %d, DE = %d, HL = %d\n", cpu.Pair(REG_B), cpu.Pair(REG_D), cpu.Pair(REG_H))
	text += fmt.Sprintf("SP = %d, PC = %d\n", cpu.Sp, cpu.Pc)
	text += fmt.Sprintf("Status = %d\n", cpu.Status)
	return
}

func (cpu *Cpu) setFlag(flag byte, on bool) {
	if on {
		cpu.Status |= flag
	} else {
		cpu.Status &^= flag
	}
}

// setZSP sets the zero, sign and parity flags from a result.
func (cpu *Cpu) setZSP(value byte) {
	cpu.setFlag(FLAG_Z, value == 0)
	cpu.setFlag(FLAG_S, value&0x80 != 0)
	cpu.setFlag(FLAG_P, bits.OnesCount8(value)%2 == 0)
}

func (cpu *Cpu) get(reg Register) byte {
	if reg == REG_M {
		return cpu.Memory[cpu.Pair(REG_H)]
	}
	return cpu.Register[reg]
}

func (cpu *Cpu) set(reg Register, value byte) {
	if reg == REG_M {
		cpu.Memory[cpu.Pair(REG_H)] = value
		return
	}
	cpu.Register[reg] = value
}

// add returns a+b+carry, setting all flags.
func (cpu *Cpu) add(a, b, carry byte) byte {
	sum := uint16(a) + uint16(b) + uint16(carry)
	result := byte(sum)
	cpu.setFlag(FLAG_CY, sum > 0xff)
	cpu.setFlag(FLAG_AC, (a&0xf)+(b&0xf)+carry > 0xf)
	cpu.setZSP(result)
	return result
}

// sub returns a-b-borrow. The 8080 subtracts by adding the complement, so
// CY is the inverted adder carry and AC is the adder's half carry.
func (cpu *Cpu) sub(a, b, borrow byte) byte {
	result := cpu.add(a, ^b, 1-borrow)
	cpu.Status ^= FLAG_CY
	return result
}

// logic sets the flags of the AND, OR and XOR group.
func (cpu *Cpu) logic(result byte, ac bool) byte {
	cpu.setFlag(FLAG_CY, false)
	cpu.setFlag(FLAG_AC, ac)
	cpu.setZSP(result)
	return result
}

// alu applies an accumulator operation.
func (cpu *Cpu) alu(op Mnemonic, value byte) {
	a := cpu.Register[REG_A]
	var carry byte
	if cpu.Flag(FLAG_CY) {
		carry = 1
	}

	switch op {
	case OP_ADD, OP_ADI:
		a = cpu.add(a, value, 0)
	case OP_ADC, OP_ACI:
		a = cpu.add(a, value, carry)
	case OP_SUB, OP_SUI:
		a = cpu.sub(a, value, 0)
	case OP_SBB, OP_SBI:
		a = cpu.sub(a, value, carry)
	case OP_ANA, OP_ANI:
		a = cpu.logic(a&value, (a|value)&0x08 != 0)
	case OP_ORA, OP_ORI:
		a = cpu.logic(a|value, false)
	case OP_XRA, OP_XRI:
		a = cpu.logic(a^value, false)
	}

	cpu.Register[REG_A] = a
}

// Tick executes a single instruction.
func (cpu *Cpu) Tick() (err error) {
	if cpu.Halted {
		err = ErrHalted
		return
	}

	if int(cpu.Pc) >= cpu.limit {
		err = ErrPcRange
		return
	}

	end := min(int(cpu.Pc)+2, cpu.limit)
	inst, size, err := Decode(cpu.Memory[cpu.Pc:end])
	if err != nil {
		return
	}

	entry := decodeTable[cpu.Memory[cpu.Pc]]
	var imm byte
	if size > 1 {
		imm = cpu.Memory[cpu.Pc+1]
	}

	if cpu.Verbose {
		log.Printf("%04x: %v", cpu.Pc, inst)
	}

	next_pc := cpu.Pc + uint16(size)

	switch entry.Op {
	case OP_MOV:
		cpu.set(entry.Dst, cpu.get(entry.Src))
	case OP_MVI:
		cpu.set(entry.Dst, imm)
	case OP_ADD, OP_ADC, OP_SUB, OP_SBB, OP_ANA, OP_ORA, OP_XRA:
		cpu.alu(entry.Op, cpu.get(entry.Src))
	case OP_ADI, OP_ACI, OP_SUI, OP_SBI, OP_ANI, OP_ORI, OP_XRI:
		cpu.alu(entry.Op, imm)
	case OP_INR:
		value := cpu.get(entry.Dst)
		result := value + 1
		cpu.setFlag(FLAG_AC, value&0xf == 0xf)
		cpu.setZSP(result)
		cpu.set(entry.Dst, result)
	case OP_DCR:
		value := cpu.get(entry.Dst)
		result := value - 1
		cpu.setFlag(FLAG_AC, result&0xf != 0xf)
		cpu.setZSP(result)
		cpu.set(entry.Dst, result)
	case OP_OUT:
		port := cpu.port[imm]
		if port == nil {
			if cpu.Verbose {
				log.Printf("cpu: port %d not attached", imm)
			}
			break
		}
		err = port.Send(cpu.Register[REG_A])
		if err != nil {
			return
		}
	case OP_NOP:
	case OP_HLT:
		cpu.Halted = true
	}

	cpu.Pc = next_pc
	cpu.Ticks++

	return
}
