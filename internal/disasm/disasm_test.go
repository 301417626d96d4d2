package disasm

import (
	"bytes"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestLines(t *testing.T) {
	program := []int64{
		1105, 1, 7, // jnz #1, _label_0007
		3, 8, // in [8]
		104, 0, // out #0
		99, // exit
		42, // data
	}

	dis := New(log.NewTestLogger(t), program)
	lines := dis.Lines()
	assert.Len(t, lines, 5)

	expected := []struct {
		address int
		code    string
		label   string
		data    bool
	}{
		{0, "jnz #1, _label_0007", "", false},
		{3, "in [8]", "", false},
		{5, "out #0", "", false},
		{7, "exit", "_label_0007", false},
		{8, ".word 42", "", true},
	}
	for i, exp := range expected {
		assert.Equal(t, exp.address, lines[i].Address)
		assert.Equal(t, exp.code, lines[i].Code)
		assert.Equal(t, exp.label, lines[i].Label)
		assert.Equal(t, exp.data, lines[i].Data)
	}
}

func TestLinesOperandModes(t *testing.T) {
	tests := []struct {
		name  string
		words []int64
		code  string
	}{
		{"indirect add", []int64{1, 5, 6, 7}, "add [5], [6], [7]"},
		{"mixed multiply", []int64{1002, 4, 3, 4}, "mul [4], #3, [4]"},
		{"direct compare", []int64{1107, -1, 2, 0}, "lt #-1, #2, [0]"},
		{"equals", []int64{8, 1, 2, 3}, "eq [1], [2], [3]"},
		{"indirect jump", []int64{6, 0, 0}, "jz [0], [0]"},
		{"jump into instruction", []int64{1106, 0, 1}, "jz #0, #1"},
		{"jump out of bounds", []int64{1105, 1, 50}, "jnz #1, #50"},
		{"incomplete instruction", []int64{1101, 5}, ".word 1101"},
		{"invalid mode", []int64{201, 0, 0, 0}, ".word 201"},
		{"unknown opcode", []int64{12}, ".word 12"},
		{"unused invalid mode digit", []int64{21101, 1, 1, 0}, "add #1, #1, [0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dis := New(log.NewTestLogger(t), tt.words)
			lines := dis.Lines()
			assert.Equal(t, tt.code, lines[0].Code)
		})
	}
}

func TestProcess(t *testing.T) {
	program := []int64{1106, 0, 3, 99}
	dis := New(log.NewTestLogger(t), program)

	var buf bytes.Buffer
	assert.NoError(t, dis.Process(&buf))

	output := buf.String()
	assert.Contains(t, output, "  jz #0, _label_0003")
	assert.Contains(t, output, "_label_0003:\n  exit")
	assert.Contains(t, output, "; 0000: 1106 0 3\n")
	assert.Contains(t, output, "; 0003: 99\n")
}
