package cpu

// Mnemonic is an 8080 operation.
type Mnemonic int

//go:generate go tool stringer -linecomment -type=Mnemonic
const (
	OP_MOV = Mnemonic(0)  // MOV
	OP_MVI = Mnemonic(1)  // MVI
	OP_ADD = Mnemonic(2)  // ADD
	OP_ADI = Mnemonic(3)  // ADI
	OP_ADC = Mnemonic(4)  // ADC
	OP_ACI = Mnemonic(5)  // ACI
	OP_SUB = Mnemonic(6)  // SUB
	OP_SUI = Mnemonic(7)  // SUI
	OP_SBB = Mnemonic(8)  // SBB
	OP_SBI = Mnemonic(9)  // SBI
	OP_ANA = Mnemonic(10) // ANA
	OP_ANI = Mnemonic(11) // ANI
	OP_ORA = Mnemonic(12) // ORA
	OP_ORI = Mnemonic(13) // ORI
	OP_XRA = Mnemonic(14) // XRA
	OP_XRI = Mnemonic(15) // XRI
	OP_INR = Mnemonic(16) // INR
	OP_DCR = Mnemonic(17) // DCR
	OP_OUT = Mnemonic(18) // OUT
	OP_NOP = Mnemonic(19) // NOP
	OP_HLT = Mnemonic(20) // HLT
)

// MNEMONIC_COUNT is the number of supported mnemonics.
const MNEMONIC_COUNT = 21

// Rule is the way operands are merged into a base opcode.
type Rule int

//go:generate go tool stringer -linecomment -type=Rule
const (
	RULE_MOVE     = Rule(0) // dst<<3|src
	RULE_DEST_IMM = Rule(1) // dst<<3,imm8
	RULE_SOURCE   = Rule(2) // src
	RULE_IMM      = Rule(3) // imm8
	RULE_DEST     = Rule(4) // dst<<3
	RULE_FIXED    = Rule(5) // fixed
)

// Operands returns the number of operands the rule consumes.
func (rule Rule) Operands() int {
	switch rule {
	case RULE_MOVE, RULE_DEST_IMM:
		return 2
	case RULE_SOURCE, RULE_IMM, RULE_DEST:
		return 1
	default:
		return 0
	}
}

// Size returns the encoded size in bytes.
func (rule Rule) Size() int {
	switch rule {
	case RULE_DEST_IMM, RULE_IMM:
		return 2
	default:
		return 1
	}
}

// OpcodeDef is the encoding of a mnemonic.
type OpcodeDef struct {
	Base byte
	Rule Rule
}

const HALT = byte(0b01110110)

var opcodeTable = [MNEMONIC_COUNT]OpcodeDef{
	OP_MOV: {0b01000000, RULE_MOVE},
	OP_MVI: {0b00000110, RULE_DEST_IMM},
	OP_ADD: {0b10000000, RULE_SOURCE},
	OP_ADI: {0b11000110, RULE_IMM},
	OP_ADC: {0b10001000, RULE_SOURCE},
	OP_ACI: {0b11001110, RULE_IMM},
	OP_SUB: {0b10010000, RULE_SOURCE},
	OP_SUI: {0b11010110, RULE_IMM},
	OP_SBB: {0b10011000, RULE_SOURCE},
	OP_SBI: {0b11011110, RULE_IMM},
	OP_ANA: {0b10100000, RULE_SOURCE},
	OP_ANI: {0b11100110, RULE_IMM},
	OP_ORA: {0b10110000, RULE_SOURCE},
	OP_ORI: {0b11110110, RULE_IMM},
	OP_XRA: {0b10101000, RULE_SOURCE},
	OP_XRI: {0b11101110, RULE_IMM},
	OP_INR: {0b00000100, RULE_DEST},
	OP_DCR: {0b00000101, RULE_DEST},
	OP_OUT: {0b11010011, RULE_IMM},
	OP_NOP: {0b00000000, RULE_FIXED},
	OP_HLT: {HALT, RULE_FIXED},
}

// mnemonicMap maps upper case mnemonic names to mnemonics.
var mnemonicMap = func() map[string]Mnemonic {
	names := make(map[string]Mnemonic, MNEMONIC_COUNT)
	for op := range Mnemonic(MNEMONIC_COUNT) {
		names[op.String()] = op
	}
	return names
}()

// ParseMnemonic resolves an upper case mnemonic name.
func ParseMnemonic(word string) (op Mnemonic, err error) {
	op, ok := mnemonicMap[word]
	if !ok {
		err = ErrMnemonicInvalid
	}
	return
}

// Def returns the opcode definition of the mnemonic.
func (op Mnemonic) Def() OpcodeDef {
	return opcodeTable[op]
}
