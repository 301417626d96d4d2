package chain

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrogolib/set"
)

// Phases is an ordered tuple of phase settings, one per chain stage.
type Phases []int64

func (p Phases) String() string {
	parts := make([]string, len(p))
	for i, phase := range p {
		parts[i] = fmt.Sprint(phase)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// DefaultPhases returns the phase setting domain 0 to 4.
func DefaultPhases() []int64 {
	return []int64{0, 1, 2, 3, 4}
}

// Permutations enumerates all ordered tuples of the given length drawn from
// values, in lexicographic order of value positions, keeping only the tuples
// whose elements are pairwise distinct.
func Permutations(values []int64, length int) []Phases {
	if length <= 0 || len(values) == 0 {
		return nil
	}

	var result []Phases
	indices := make([]int, length)

	for {
		if tuple, ok := distinctTuple(values, indices); ok {
			result = append(result, tuple)
		}

		if !nextIndices(indices, len(values)) {
			return result
		}
	}
}

// distinctTuple builds the tuple for the given value indices and reports
// whether all of its elements are different.
func distinctTuple(values []int64, indices []int) (Phases, bool) {
	tuple := make(Phases, len(indices))
	seen := set.New[int64]()
	for i, index := range indices {
		value := values[index]
		if seen.Contains(value) {
			return nil, false
		}
		seen.Add(value)
		tuple[i] = value
	}
	return tuple, true
}

// nextIndices advances the odometer of value indices and returns false once
// all combinations have been visited.
func nextIndices(indices []int, base int) bool {
	for i := len(indices) - 1; i >= 0; i-- {
		indices[i]++
		if indices[i] < base {
			return true
		}
		indices[i] = 0
	}
	return false
}
