// Package pipeline orchestrates the phase search workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/retroenv/phasechain/internal/chain"
	"github.com/retroenv/phasechain/internal/computer"
	"github.com/retroenv/phasechain/internal/disasm"
	"github.com/retroenv/phasechain/internal/loader"
	"github.com/retroenv/phasechain/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete phase search workflow.
type Pipeline struct {
	logger *log.Logger
	loader *loader.Loader
}

// New creates a new phase search pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(),
	}
}

// Execute loads the program file named in the options and runs the phase search.
// If a listing is requested it is written to the writer before searching.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, writer io.Writer) (chain.Result, error) {
	program, err := p.loader.Load(opts.Input)
	if err != nil {
		return chain.Result{}, fmt.Errorf("loading program: %w", err)
	}

	p.logger.Info("Processing program",
		log.String("file", opts.Input),
		log.Int("words", len(program)))

	if opts.Listing {
		dis := disasm.New(p.logger, program)
		if err := dis.Process(writer); err != nil {
			return chain.Result{}, fmt.Errorf("writing listing: %w", err)
		}
	}

	return p.ExecuteWithProgram(ctx, program)
}

// ExecuteWithProgram runs the phase search with an already loaded program.
// This is useful for testing and programmatic usage where the program is already in memory.
func (p *Pipeline) ExecuteWithProgram(ctx context.Context, program []int64) (chain.Result, error) {
	template := computer.New(p.logger, program)
	searcher := chain.New(p.logger, template)

	result, err := searcher.Search(ctx)
	if err != nil {
		return chain.Result{}, fmt.Errorf("searching phases: %w", err)
	}

	p.logger.Info("Max output",
		log.String("signal", strconv.FormatInt(result.Signal, 10)),
		log.Stringer("phases", result.Phases),
		log.Int("evaluated", result.Evaluated))

	return result, nil
}
