package disasm

import (
	"fmt"
	"slices"

	"github.com/retroenv/retrogolib/log"
)

const labelNaming = "_label_%04d"

// processJumpDestinations names all jump destinations that start a line and
// updates the jumping instructions to reference the label.
func (dis *Disasm) processJumpDestinations() {
	branchDestinations := make([]int, 0, len(dis.branchDestinations))
	for dest := range dis.branchDestinations {
		branchDestinations = append(branchDestinations, dest)
	}
	slices.Sort(branchDestinations)

	for _, address := range branchDestinations {
		line, ok := dis.lineStarts[address]
		if !ok {
			// destination is inside the operands of an instruction
			dis.logger.Debug("Jump into instruction", log.Int("address", address))
			continue
		}
		if line.Label == "" {
			line.Label = fmt.Sprintf(labelNaming, address)
		}
	}

	for _, line := range dis.lines {
		if line.target < 0 {
			continue
		}
		if target, ok := dis.lineStarts[line.target]; ok && target.Label != "" {
			line.operands[1] = target.Label
		}
	}
}
