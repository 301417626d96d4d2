// Package computer implements the virtual machine that executes programs
// stored as a flat memory image of signed 64-bit integer words.
// Code and data share the same address space.
package computer

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// Status describes the outcome of executing a single instruction.
type Status int

const (
	// Running means execution can continue with the next instruction.
	Running Status = iota
	// Emitted means an output instruction produced a value.
	Emitted
	// Halted means the exit instruction was executed.
	Halted
)

// Computer owns a memory image and an instruction pointer.
type Computer struct {
	logger  *log.Logger
	memory  []int64
	pointer int
	halted  bool
}

// New returns a computer with a private copy of the program loaded into
// memory and the instruction pointer set to address 0.
func New(logger *log.Logger, program []int64) *Computer {
	memory := make([]int64, len(program))
	copy(memory, program)
	return &Computer{
		logger: logger,
		memory: memory,
	}
}

// Clone returns an independent copy of the computer. Executing either
// instance never affects the other.
func (c *Computer) Clone() *Computer {
	clone := New(c.logger, c.memory)
	clone.pointer = c.pointer
	clone.halted = c.halted
	return clone
}

// Pointer returns the address of the next instruction word.
func (c *Computer) Pointer() int {
	return c.pointer
}

// Halted returns whether the exit instruction has been executed.
func (c *Computer) Halted() bool {
	return c.halted
}

// Memory returns a copy of the current memory image.
func (c *Computer) Memory() []int64 {
	memory := make([]int64, len(c.memory))
	copy(memory, c.memory)
	return memory
}

// Read returns the word stored at the given address.
func (c *Computer) Read(address int64) (int64, error) {
	index, err := c.address(address)
	if err != nil {
		return 0, err
	}
	return c.memory[index], nil
}

// Run executes instructions until an output instruction emits a non-zero
// value, which is returned, or the program exits, in which case the value
// stored at address 0 is returned. Outputs of zero are discarded.
// The inputs are consumed in order by input instructions.
func (c *Computer) Run(inputs ...int64) (int64, error) {
	queue := NewInputQueue(inputs...)

	for !c.halted {
		status, value, err := c.Step(queue)
		if err != nil {
			return 0, err
		}
		if status == Emitted && value != 0 {
			return value, nil
		}
	}

	return c.Read(0)
}

// Step fetches, decodes and executes the instruction at the instruction
// pointer. For output instructions the emitted value is returned together
// with the Emitted status.
func (c *Computer) Step(inputs *InputQueue) (Status, int64, error) {
	if c.halted {
		return Halted, 0, nil
	}

	address := c.pointer
	word, err := c.fetch()
	if err != nil {
		return Running, 0, err
	}
	op, modes, err := Decode(word)
	if err != nil {
		return Running, 0, fmt.Errorf("decoding instruction at address %d: %w", address, err)
	}

	c.logger.Debug("Executing instruction",
		log.Int("address", address),
		log.Stringer("opcode", op))

	status, value, err := c.execute(op, &modes, inputs)
	if err != nil {
		return Running, 0, fmt.Errorf("executing %s at address %d: %w", op, address, err)
	}
	return status, value, nil
}

// execute runs a decoded instruction. The mode queue belongs to this
// instruction only.
func (c *Computer) execute(op Opcode, modes *Modes, inputs *InputQueue) (Status, int64, error) {
	switch op {
	case Add, Multiply, LessThan, Equals:
		return Running, 0, c.executeBinary(op, modes)

	case Input:
		value, err := inputs.Pop()
		if err != nil {
			return Running, 0, err
		}
		return Running, 0, c.write(value)

	case Output:
		value, err := c.operand(modes)
		if err != nil {
			return Running, 0, err
		}
		return Emitted, value, nil

	case JumpIfNonZero, JumpIfZero:
		return Running, 0, c.executeJump(op, modes)

	case Exit:
		c.halted = true
		return Halted, 0, nil

	default:
		return Running, 0, fmt.Errorf("%w: %d", ErrUnknownOpcode, int(op))
	}
}

// executeBinary reads two operands and writes the combined result to the
// destination given by the third operand.
func (c *Computer) executeBinary(op Opcode, modes *Modes) error {
	first, err := c.operand(modes)
	if err != nil {
		return err
	}
	second, err := c.operand(modes)
	if err != nil {
		return err
	}

	var result int64
	switch op {
	case Add:
		result = first + second
	case Multiply:
		result = first * second
	case LessThan:
		result = boolWord(first < second)
	case Equals:
		result = boolWord(first == second)
	}
	return c.write(result)
}

func (c *Computer) executeJump(op Opcode, modes *Modes) error {
	condition, err := c.operand(modes)
	if err != nil {
		return err
	}
	target, err := c.operand(modes)
	if err != nil {
		return err
	}

	jump := condition != 0
	if op == JumpIfZero {
		jump = condition == 0
	}
	if !jump {
		return nil
	}

	index, err := c.address(target)
	if err != nil {
		return fmt.Errorf("jump target: %w", err)
	}
	c.logger.Debug("Jump taken",
		log.Stringer("opcode", op),
		log.Int("target", index))
	c.pointer = index
	return nil
}

// fetch returns the word at the instruction pointer and advances it.
func (c *Computer) fetch() (int64, error) {
	word, err := c.Read(int64(c.pointer))
	if err != nil {
		return 0, err
	}
	c.pointer++
	return word, nil
}

// operand resolves the next operand word using the next mode digit.
func (c *Computer) operand(modes *Modes) (int64, error) {
	mode, err := modes.Next()
	if err != nil {
		return 0, err
	}
	word, err := c.fetch()
	if err != nil {
		return 0, err
	}
	if mode == Direct {
		return word, nil
	}
	return c.Read(word)
}

// write stores the value at the address given by the next operand word.
// Destination operands do not consume a mode digit.
func (c *Computer) write(value int64) error {
	destination, err := c.fetch()
	if err != nil {
		return err
	}
	index, err := c.address(destination)
	if err != nil {
		return err
	}
	c.memory[index] = value
	return nil
}

func (c *Computer) address(address int64) (int, error) {
	if address < 0 || address >= int64(len(c.memory)) {
		return 0, fmt.Errorf("%w: %d", ErrAddressOutOfBounds, address)
	}
	return int(address), nil
}

func boolWord(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
