package cpu

// Register is a 3-bit 8080 register index.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_B = Register(0) // B
	REG_C = Register(1) // C
	REG_D = Register(2) // D
	REG_E = Register(3) // E
	REG_H = Register(4) // H
	REG_L = Register(5) // L
	REG_M = Register(6) // M
	REG_A = Register(7) // A
)

// REGISTER_COUNT is the size of the register index space.
const REGISTER_COUNT = 8

// registerMap maps register names to register indexes.
// M is memory addressed by the HL pair.
var registerMap = map[string]Register{
	"B": REG_B,
	"C": REG_C,
	"D": REG_D,
	"E": REG_E,
	"H": REG_H,
	"L": REG_L,
	"M": REG_M,
	"A": REG_A,
}

// ParseRegister resolves an upper case register name.
func ParseRegister(word string) (reg Register, err error) {
	reg, ok := registerMap[word]
	if !ok {
		err = ErrRegisterInvalid
	}
	return
}
