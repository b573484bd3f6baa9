package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func encodeLine(t *testing.T, line string) ([]byte, error) {
	t.Helper()

	insts := parseLines(t, line)
	if !assert.Len(t, insts, 1, line) {
		t.FailNow()
	}

	asm := &Assembler{}
	return asm.Encode(insts[0])
}

func TestEncode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line string
		data []byte
	}){
		{"MOV A,B", []byte{0x78}},
		{"MOV B,A", []byte{0x47}},
		{"MOV M,A", []byte{0x77}},
		{"MOV A,M", []byte{0x7e}},
		{"MVI B,10", []byte{0x06, 0x0a}},
		{"MVI A,0xff", []byte{0x3e, 0xff}},
		{"MVI M,0", []byte{0x36, 0x00}},
		{"ADD C", []byte{0x81}},
		{"ADI 0x05", []byte{0xc6, 0x05}},
		{"ADC M", []byte{0x8e}},
		{"ACI 1", []byte{0xce, 0x01}},
		{"SUB A", []byte{0x97}},
		{"SUI 2", []byte{0xd6, 0x02}},
		{"SBB B", []byte{0x98}},
		{"SBI 3", []byte{0xde, 0x03}},
		{"ANA D", []byte{0xa2}},
		{"ANI 0x0f", []byte{0xe6, 0x0f}},
		{"ORA E", []byte{0xb3}},
		{"ORI 0x80", []byte{0xf6, 0x80}},
		{"XRA H", []byte{0xac}},
		{"XRI 0x55", []byte{0xee, 0x55}},
		{"INR A", []byte{0x3c}},
		{"INR M", []byte{0x34}},
		{"DCR B", []byte{0x05}},
		{"DCR L", []byte{0x2d}},
		{"OUT 1", []byte{0xd3, 0x01}},
		{"NOP", []byte{0x00}},
		{"HLT", []byte{0x76}},
	}

	for _, entry := range table {
		data, err := encodeLine(t, entry.line)
		assert.NoError(err, entry.line)
		assert.Equal(entry.data, data, entry.line)
	}
}

func TestEncodeRegisters(t *testing.T) {
	assert := assert.New(t)

	for name, reg := range registerMap {
		data, err := encodeLine(t, "INR "+name)
		assert.NoError(err)
		assert.Equal([]byte{0b00000100 | byte(reg)<<3}, data, name)

		data, err = encodeLine(t, "ADD "+name)
		assert.NoError(err)
		assert.Equal([]byte{0b10000000 | byte(reg)}, data, name)
	}
}

func TestEncodeCaseInsensitive(t *testing.T) {
	assert := assert.New(t)

	for _, pair := range [][2]string{
		{"mov a,b", "MOV A,B"},
		{"Mvi c, 0X1f", "MVI C, 0x1F"},
		{"hlt", "HLT"},
	} {
		lower, err := encodeLine(t, pair[0])
		assert.NoError(err)
		upper, err := encodeLine(t, pair[1])
		assert.NoError(err)
		assert.Equal(upper, lower, pair[0])
	}
}

func TestParseImmediate(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		word  string
		value byte
	}){
		{"0", 0},
		{"10", 10},
		{"0x0a", 10},
		{"0X0A", 10},
		{"010", 10},
		{"255", 255},
		{"0xff", 255},
		{"+7", 7},
		{"$(1 + 2)", 3},
		{"$(0X10 | 1)", 0x11},
		{"$(256 - 1)", 0xff},
		{"$(len([x for x in range(200)]))", 200},
	}

	for _, entry := range table {
		value, err := ParseImmediate(entry.word)
		assert.NoError(err, entry.word)
		assert.Equal(entry.value, value, entry.word)
	}
}

func TestParseImmediateRadixEquivalence(t *testing.T) {
	assert := assert.New(t)

	dec, err := encodeLine(t, "MVI A, 10")
	assert.NoError(err)
	hex, err := encodeLine(t, "MVI A, 0x0a")
	assert.NoError(err)

	assert.Equal(dec, hex)
}

func TestParseImmediateInvalid(t *testing.T) {
	assert := assert.New(t)

	for _, word := range []string{"", "0x", "0xg1", "ten", "256", "0x100", "-1", "-128", "-129", "99999999999", "1.5", "$(", "B"} {
		_, err := ParseImmediate(word)
		assert.ErrorIs(err, ErrValue, word)
		assert.ErrorIs(err, ErrParseNumber(word), word)
	}

	for _, word := range []string{"$(1/0)", "$(\"x\")", "$(1 +)", "$(300)", "$(-2)", "$(1 - 2)"} {
		_, err := ParseImmediate(word)
		assert.ErrorIs(err, ErrValue, word)
	}

	// Runaway expressions stop at the step limit.
	_, err := ParseImmediate("$(len([x for x in range(100000000)]) % 256)")
	assert.ErrorIs(err, ErrValue)
	assert.ErrorIs(err, ErrParseExpression("len([x for x in range(100000000)]) % 256"))
}

func TestEncodeErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line string
		err  error
	}){
		{"FOO A", ErrMnemonicInvalid},
		{"JMP 0x10", ErrMnemonicInvalid},
		{"MOV A,X", ErrRegisterInvalid},
		{"MOV BC,A", ErrRegisterInvalid},
		{"INR 1", ErrRegisterInvalid},
		{"MVI Q,1", ErrRegisterInvalid},
		{"MVI A,zz", ErrValue},
		{"ADI 300", ErrValue},
		{"MVI A,-1", ErrValue},
		{"OUT -128", ErrValue},
		{"OUT A", ErrValue},
		{"MOV A", ErrOperandMissing},
		{"MVI A", ErrOperandMissing},
		{"ADD", ErrOperandMissing},
		{"ADI", ErrOperandMissing},
		{"NOP A", ErrOperandExtra},
		{"HLT 0", ErrOperandExtra},
		{"INR A,B", ErrOperandExtra},
		{"MOV A,B,C", ErrOperandExtra},
		{"MVI A,$(1),$(2)", ErrOperandExtra},
		{"ADI $(1) $(2)", ErrOperandExtra},
	}

	for _, entry := range table {
		data, err := encodeLine(t, entry.line)
		assert.ErrorIs(err, entry.err, entry.line)
		assert.Nil(data, entry.line)
	}
}

func TestEncodeValueErrorIsDistinct(t *testing.T) {
	assert := assert.New(t)

	_, err := encodeLine(t, "MVI A, 0xzz")
	assert.ErrorIs(err, ErrValue)
	assert.False(errors.Is(err, ErrMnemonicInvalid))
	assert.False(errors.Is(err, ErrRegisterInvalid))

	var num ErrParseNumber
	assert.ErrorAs(err, &num)
	assert.Equal(ErrParseNumber("0XZZ"), num)

	_, err = encodeLine(t, "MVX A, 1")
	assert.ErrorIs(err, ErrMnemonicInvalid)
	assert.False(errors.Is(err, ErrValue))
}
