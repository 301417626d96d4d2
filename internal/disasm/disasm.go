// Package disasm produces an assembly style listing of a program memory
// image by decoding it linearly from address 0.
package disasm

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/phasechain/internal/computer"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// Line is a single decoded instruction or data word of the listing.
type Line struct {
	Address int
	Words   []int64
	Code    string
	Label   string
	Data    bool // word could not be decoded as an instruction

	opcode   computer.Opcode
	operands []string
	target   int // direct jump destination or -1
}

// Disasm implements a linear sweep disassembler for program memory images.
type Disasm struct {
	logger  *log.Logger
	program []int64
	lines   []*Line

	branchDestinations set.Set[int] // set of all addresses that are jumped to
	lineStarts         map[int]*Line
}

// New returns a new disassembler for the given program.
func New(logger *log.Logger, program []int64) *Disasm {
	return &Disasm{
		logger:             logger,
		program:            program,
		branchDestinations: set.New[int](),
		lineStarts:         map[int]*Line{},
	}
}

// Process disassembles the program and writes the listing to the writer.
func (dis *Disasm) Process(writer io.Writer) error {
	lines := dis.Lines()
	for _, line := range lines {
		if line.Label != "" {
			if _, err := fmt.Fprintf(writer, "%s:\n", line.Label); err != nil {
				return fmt.Errorf("writing label: %w", err)
			}
		}

		words := make([]string, len(line.Words))
		for i, word := range line.Words {
			words[i] = fmt.Sprint(word)
		}
		if _, err := fmt.Fprintf(writer, "  %-28s ; %04d: %s\n", line.Code, line.Address, strings.Join(words, " ")); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}
	return nil
}

// Lines returns the decoded lines of the program, disassembling it on first use.
func (dis *Disasm) Lines() []*Line {
	if dis.lines != nil {
		return dis.lines
	}

	dis.lines = []*Line{}
	for address := 0; address < len(dis.program); {
		line := dis.decodeLine(address)
		dis.lines = append(dis.lines, line)
		dis.lineStarts[address] = line
		address += len(line.Words)
	}

	dis.processJumpDestinations()

	for _, line := range dis.lines {
		line.Code = line.format()
	}
	return dis.lines
}

// decodeLine decodes the instruction at the given address. Words that do not
// form a complete valid instruction are returned as a single data word.
func (dis *Disasm) decodeLine(address int) *Line {
	word := dis.program[address]
	data := &Line{
		Address: address,
		Words:   []int64{word},
		Data:    true,
		target:  -1,
	}

	op, modes, err := computer.Decode(word)
	if err != nil {
		return data
	}
	end := address + 1 + op.Operands()
	if end > len(dis.program) {
		dis.logger.Debug("Instruction exceeds program end",
			log.Int("address", address),
			log.Stringer("opcode", op))
		return data
	}

	operands, err := formatOperands(op, &modes, dis.program[address+1:end])
	if err != nil {
		return data
	}

	line := &Line{
		Address:  address,
		Words:    dis.program[address:end],
		opcode:   op,
		operands: operands,
		target:   -1,
	}

	if op.IsJump() {
		dis.addJumpTarget(line, word)
	}
	return line
}

// addJumpTarget registers a jump destination if the target operand is
// encoded as a direct value.
func (dis *Disasm) addJumpTarget(line *Line, word int64) {
	_, modes, _ := computer.Decode(word)
	_, _ = modes.Next()
	mode, err := modes.Next()
	if err != nil || mode != computer.Direct {
		return
	}

	target := line.Words[2]
	if target < 0 || target >= int64(len(dis.program)) {
		return
	}
	line.target = int(target)
	dis.branchDestinations.Add(line.target)
}

func (l *Line) format() string {
	if l.Data {
		return fmt.Sprintf(".word %d", l.Words[0])
	}
	if len(l.operands) == 0 {
		return l.opcode.String()
	}
	return fmt.Sprintf("%s %s", l.opcode, strings.Join(l.operands, ", "))
}

// formatOperands formats the operand words of an instruction. Value operands
// consume a mode digit each, destinations are always addresses.
func formatOperands(op computer.Opcode, modes *computer.Modes, words []int64) ([]string, error) {
	values := len(words)
	switch op {
	case computer.Add, computer.Multiply, computer.LessThan, computer.Equals, computer.Input:
		values--
	}

	operands := make([]string, len(words))
	for i, word := range words {
		if i >= values {
			operands[i] = fmt.Sprintf("[%d]", word)
			continue
		}

		mode, err := modes.Next()
		if err != nil {
			return nil, err
		}
		if mode == computer.Direct {
			operands[i] = fmt.Sprintf("#%d", word)
		} else {
			operands[i] = fmt.Sprintf("[%d]", word)
		}
	}
	return operands, nil
}
