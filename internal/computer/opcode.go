package computer

import "fmt"

// Opcode identifies the operation an instruction word performs.
type Opcode int

// Operation codes as encoded in the two least-significant decimal digits of an
// instruction word.
const (
	Add           Opcode = 1
	Multiply      Opcode = 2
	Input         Opcode = 3
	Output        Opcode = 4
	JumpIfNonZero Opcode = 5
	JumpIfZero    Opcode = 6
	LessThan      Opcode = 7
	Equals        Opcode = 8
	Exit          Opcode = 99
)

// Opcodes lists all supported operation codes in encoding order.
var Opcodes = []Opcode{
	Add, Multiply, Input, Output, JumpIfNonZero, JumpIfZero, LessThan, Equals, Exit,
}

var opcodeNames = map[Opcode]string{
	Add:           "add",
	Multiply:      "mul",
	Input:         "in",
	Output:        "out",
	JumpIfNonZero: "jnz",
	JumpIfZero:    "jz",
	LessThan:      "lt",
	Equals:        "eq",
	Exit:          "exit",
}

// operand word counts following the opcode word.
var opcodeOperands = map[Opcode]int{
	Add:           3,
	Multiply:      3,
	Input:         1,
	Output:        1,
	JumpIfNonZero: 2,
	JumpIfZero:    2,
	LessThan:      3,
	Equals:        3,
	Exit:          0,
}

// OpcodeFromValue converts a numeric operation code to an Opcode.
func OpcodeFromValue(value int64) (Opcode, error) {
	op := Opcode(value)
	if _, ok := opcodeNames[op]; !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownOpcode, value)
	}
	return op, nil
}

// Operands returns the number of operand words that follow the opcode word.
func (o Opcode) Operands() int {
	return opcodeOperands[o]
}

// IsJump returns whether the opcode can overwrite the instruction pointer.
func (o Opcode) IsJump() bool {
	return o == JumpIfNonZero || o == JumpIfZero
}

func (o Opcode) String() string {
	if name, ok := opcodeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("opcode(%d)", int(o))
}
