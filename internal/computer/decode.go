package computer

import "fmt"

const (
	opcodeDivisor = 100
	modeBase      = 10
)

// Modes is the queue of addressing mode digits of a single instruction word.
// Digits are consumed least-significant first, one per resolved operand.
// Once all digits are consumed every further operand defaults to Indirect.
type Modes struct {
	digits int64
}

// Next pops the next mode digit from the queue.
func (m *Modes) Next() (Mode, error) {
	digit := m.digits % modeBase
	m.digits /= modeBase
	return ModeFromDigit(digit)
}

// Decode splits an instruction word into its operation code and the queue of
// operand mode digits.
func Decode(word int64) (Opcode, Modes, error) {
	if word < 0 {
		return 0, Modes{}, fmt.Errorf("%w: %d", ErrUnknownOpcode, word)
	}

	op, err := OpcodeFromValue(word % opcodeDivisor)
	if err != nil {
		return 0, Modes{}, err
	}
	return op, Modes{digits: word / opcodeDivisor}, nil
}
