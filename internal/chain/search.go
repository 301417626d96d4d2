// Package chain searches for the phase setting permutation that produces the
// highest final signal when several computer instances are chained, each
// stage feeding its result as input into the next stage.
package chain

import (
	"context"
	"fmt"
	"strconv"

	"github.com/retroenv/phasechain/internal/computer"
	"github.com/retroenv/retrogolib/log"
)

// Stages is the number of chained computer instances.
const Stages = 5

// Result is the outcome of a permutation search.
type Result struct {
	Phases    Phases // first permutation that produced the maximum signal
	Signal    int64  // maximum final signal
	Evaluated int    // number of permutations evaluated
}

// Searcher evaluates phase permutations against a baseline program.
// The template computer is never executed, every stage runs on a clone.
type Searcher struct {
	logger   *log.Logger
	template *computer.Computer
	phases   []int64
	stages   int
}

// New returns a searcher for the given template computer that uses the
// default phase settings and stage count.
func New(logger *log.Logger, template *computer.Computer) *Searcher {
	return &Searcher{
		logger:   logger,
		template: template,
		phases:   DefaultPhases(),
		stages:   Stages,
	}
}

// Signal runs the chain for one permutation. The carried signal starts at 0
// and every stage runs a fresh clone of the template with the inputs
// phase and carried signal. The result of the last stage is returned.
func (s *Searcher) Signal(phases Phases) (int64, error) {
	var signal int64
	for stage, phase := range phases {
		value, err := s.template.Clone().Run(phase, signal)
		if err != nil {
			return 0, fmt.Errorf("running stage %d with phase %d: %w", stage, phase, err)
		}
		signal = value
	}
	return signal, nil
}

// Search evaluates all permutations of the phase settings and returns the
// maximum final signal. Any computer error aborts the search.
// The context is checked between permutations.
func (s *Searcher) Search(ctx context.Context) (Result, error) {
	permutations := Permutations(s.phases, s.stages)
	if len(permutations) == 0 {
		return Result{}, fmt.Errorf("no phase permutations for %d stages of %d phases", s.stages, len(s.phases))
	}

	var result Result
	for _, phases := range permutations {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("searching permutations: %w", err)
		}

		signal, err := s.Signal(phases)
		if err != nil {
			return Result{}, fmt.Errorf("evaluating phases %s: %w", phases, err)
		}
		s.logger.Info("Ordering",
			log.Stringer("phases", phases),
			log.String("signal", strconv.FormatInt(signal, 10)))

		if result.Evaluated == 0 || signal > result.Signal {
			result.Phases = phases
			result.Signal = signal
		}
		result.Evaluated++
	}

	return result, nil
}
