package computer

import "fmt"

// Mode defines how an operand word is resolved to a value.
type Mode int

const (
	// Indirect treats the operand as an address whose contents are the value.
	Indirect Mode = 0
	// Direct uses the operand word itself as the value.
	Direct Mode = 1
)

// ModeFromDigit converts a single mode digit to a Mode.
func ModeFromDigit(digit int64) (Mode, error) {
	switch digit {
	case 0:
		return Indirect, nil
	case 1:
		return Direct, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownMode, digit)
	}
}

func (m Mode) String() string {
	switch m {
	case Indirect:
		return "indirect"
	case Direct:
		return "direct"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}
