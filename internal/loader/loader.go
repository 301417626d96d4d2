// Package loader handles program file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrMalformedProgram is returned when the program source is not a comma
// separated list of integers.
var ErrMalformedProgram = errors.New("malformed program")

// Loader handles loading program files from disk.
type Loader struct{}

// New creates a new program loader.
func New() *Loader {
	return &Loader{}
}

// Load reads and parses the program file at the given path.
func (l *Loader) Load(path string) ([]int64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	program, err := l.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return program, nil
}

// Parse reads a comma separated list of base 10 signed 64-bit integers.
// Whitespace around values is ignored.
func (l *Loader) Parse(reader io.Reader) ([]int64, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading program: %w", err)
	}

	source := strings.TrimSpace(string(data))
	if source == "" {
		return nil, fmt.Errorf("%w: empty program", ErrMalformedProgram)
	}

	tokens := strings.Split(source, ",")
	program := make([]int64, len(tokens))
	for i, token := range tokens {
		token = strings.TrimSpace(token)
		value, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid value '%s' at index %d", ErrMalformedProgram, token, i)
		}
		program[i] = value
	}
	return program, nil
}
