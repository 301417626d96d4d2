package computer

import "errors"

var (
	// ErrUnknownOpcode is returned when an instruction word does not encode a supported operation.
	ErrUnknownOpcode = errors.New("unrecognized opcode")
	// ErrUnknownMode is returned when an operand mode digit is neither 0 nor 1.
	ErrUnknownMode = errors.New("unrecognized reference type")
	// ErrAddressOutOfBounds is returned when an address lies outside of the memory image.
	ErrAddressOutOfBounds = errors.New("address out of bounds")
	// ErrInputExhausted is returned when an input instruction finds no queued value.
	ErrInputExhausted = errors.New("input queue is empty")
)
