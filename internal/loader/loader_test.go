package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("load program file", func(t *testing.T) {
		tmpFile := createTempFile(t, "1002,4,3,4,33\n")

		loader := New()
		program, err := loader.Load(tmpFile)
		assert.NoError(t, err)
		assert.Equal(t, []int64{1002, 4, 3, 4, 33}, program)
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		loader := New()

		_, err := loader.Load("/nonexistent/inputs.txt")
		assert.Error(t, err)
	})

	t.Run("error on malformed file", func(t *testing.T) {
		tmpFile := createTempFile(t, "1,2,x")

		loader := New()
		_, err := loader.Load(tmpFile)
		assert.True(t, errors.Is(err, ErrMalformedProgram))
	})
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected []int64
	}{
		{"single value", "99", []int64{99}},
		{"negative values", "1101,-5,3,0,99", []int64{1101, -5, 3, 0, 99}},
		{"surrounding whitespace", "  3, 0 ,4,0,\t99\r\n", []int64{3, 0, 4, 0, 99}},
		{"large values", "9223372036854775807,-9223372036854775808", []int64{9223372036854775807, -9223372036854775808}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, err := New().Parse(strings.NewReader(tt.source))
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, program)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		message string
	}{
		{"empty", "", "empty program"},
		{"only whitespace", " \n", "empty program"},
		{"not a number", "1,two,3", "invalid value 'two' at index 1"},
		{"empty element", "1,,3", "invalid value '' at index 1"},
		{"trailing comma", "1,2,", "invalid value '' at index 2"},
		{"overflow", "9223372036854775808", "at index 0"},
		{"embedded space", "1 2,3", "invalid value '1 2' at index 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Parse(strings.NewReader(tt.source))
			assert.True(t, errors.Is(err, ErrMalformedProgram))
			assert.ErrorContains(t, err, tt.message)
		})
	}
}

func createTempFile(t *testing.T, data string) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "inputs.txt")
	if err := os.WriteFile(tmpFile, []byte(data), 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
