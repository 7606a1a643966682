package session

import (
	"github.com/bethropolis/tidesel/internal/highlight"
	"github.com/bethropolis/tidesel/internal/locate"
	"github.com/bethropolis/tidesel/internal/markup"
	"github.com/bethropolis/tidesel/internal/types"
)

// Frame is everything a presentation surface needs after one input.
type Frame struct {
	State       State
	Selector    string // As typed, untrimmed
	Status      string // "Ready", "Matches: N" or "Error: <message>"
	Description string // Plain-English reading of the selector, or "Oops! <message>"
	Flagged     bool   // Selector input should be marked as invalid
	Err         error  // The syntax error behind State == Error

	// Labels holds the opening tag of every matched node, including nodes
	// that did not resolve to a text range.
	Labels  []string
	Matches []locate.Match[markup.Element]

	Plan highlight.Plan

	// Structure is set only by Load: the tag coloring of the new text,
	// to be painted before Plan.
	Structure []highlight.Instruction
}

// Instructions returns the structural coloring (after a load), then the
// match clears, then the match paints.
func (f Frame) Instructions() []highlight.Instruction {
	plan := f.Plan.Instructions()
	if len(f.Structure) == 0 {
		return plan
	}
	out := make([]highlight.Instruction, 0, len(f.Structure)+len(plan))
	out = append(out, f.Structure...)
	return append(out, plan...)
}

// Ranges returns the text ranges of the resolved matches, in node order.
func (f Frame) Ranges() []types.Range {
	return locate.Ranges(f.Matches)
}
