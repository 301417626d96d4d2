package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/phasechain/internal/chain"
	"github.com/retroenv/phasechain/internal/computer"
	"github.com/retroenv/phasechain/internal/loader"
	"github.com/retroenv/phasechain/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestExecute(t *testing.T) {
	tests := []struct {
		name       string
		source     string
		signal     int64
		phases     chain.Phases
		errTarget  error
		errContain string
	}{
		{
			name:   "pass through program",
			source: "3,11,3,12,1,11,12,13,4,13,99,0,0,0\n",
			signal: 13,
			phases: chain.Phases{0, 1, 2, 3, 4},
		},
		{
			name:   "exit only program",
			source: "99",
			signal: 99,
			phases: chain.Phases{0, 1, 2, 3, 4},
		},
		{
			name:       "malformed program",
			source:     "3,x",
			errTarget:  loader.ErrMalformedProgram,
			errContain: "loading program",
		},
		{
			name:       "unknown opcode",
			source:     "42",
			errTarget:  computer.ErrUnknownOpcode,
			errContain: "searching phases",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := filepath.Join(t.TempDir(), "inputs.txt")
			assert.NoError(t, os.WriteFile(input, []byte(tt.source), 0600))

			p := New(log.NewTestLogger(t))
			opts := options.Program{
				Parameters: options.Parameters{Input: input},
			}

			result, err := p.Execute(context.Background(), opts, &bytes.Buffer{})
			if tt.errTarget != nil {
				assert.True(t, errors.Is(err, tt.errTarget))
				assert.ErrorContains(t, err, tt.errContain)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.signal, result.Signal)
			assert.Equal(t, tt.phases, result.Phases)
			assert.Equal(t, 120, result.Evaluated)
		})
	}
}

func TestExecuteMissingFile(t *testing.T) {
	p := New(log.NewTestLogger(t))
	opts := options.Program{
		Parameters: options.Parameters{Input: filepath.Join(t.TempDir(), "missing.txt")},
	}

	_, err := p.Execute(context.Background(), opts, &bytes.Buffer{})
	assert.ErrorContains(t, err, "loading program")
}

func TestExecuteListing(t *testing.T) {
	input := filepath.Join(t.TempDir(), "inputs.txt")
	assert.NoError(t, os.WriteFile(input, []byte("1105,1,3,99"), 0600))

	p := New(log.NewTestLogger(t))
	opts := options.Program{
		Parameters: options.Parameters{Input: input},
		Flags:      options.Flags{Listing: true},
	}

	var buf bytes.Buffer
	result, err := p.Execute(context.Background(), opts, &buf)
	assert.NoError(t, err)
	assert.Equal(t, int64(1105), result.Signal)
	assert.Contains(t, buf.String(), "jnz #1, _label_0003")
	assert.Contains(t, buf.String(), "_label_0003:\n  exit")
}

func TestExecuteWithProgramCancelled(t *testing.T) {
	p := New(log.NewTestLogger(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.ExecuteWithProgram(ctx, []int64{99})
	assert.True(t, errors.Is(err, context.Canceled))
}
