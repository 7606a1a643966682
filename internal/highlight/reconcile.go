package highlight

import (
	"slices"

	"github.com/bethropolis/tidesel/internal/logger"
	"github.com/bethropolis/tidesel/internal/types"
)

// Reconcile returns what to clear and what to paint when the match set
// changes from previous to next. No diffing is done: a range present in
// both is cleared and then painted again, which is correct because every
// clear precedes every paint.
func Reconcile(previous, next []types.Range) (toUnhighlight, toHighlight []types.Range) {
	return slices.Clone(previous), slices.Clone(next)
}

// Plan is the outcome of one reconciliation.
type Plan struct {
	ToUnhighlight []types.Range
	ToHighlight   []types.Range
}

// Instructions returns every clear followed by every paint, on the match layer.
func (p Plan) Instructions() []Instruction {
	out := make([]Instruction, 0, len(p.ToUnhighlight)+len(p.ToHighlight))
	for _, r := range p.ToUnhighlight {
		out = append(out, Instruction{Layer: LayerMatch, Range: r, Style: StyleMatchClear})
	}
	for _, r := range p.ToHighlight {
		out = append(out, Instruction{Layer: LayerMatch, Range: r, Style: StyleMatch})
	}
	return out
}

// IsEmpty reports whether the plan changes nothing.
func (p Plan) IsEmpty() bool {
	return len(p.ToUnhighlight) == 0 && len(p.ToHighlight) == 0
}

// Reconciler remembers the match set currently painted on a surface.
// The zero value is ready to use and has nothing painted.
type Reconciler struct {
	previous []types.Range
}

// Apply plans the move to next and records next as painted.
func (r *Reconciler) Apply(next []types.Range) Plan {
	unhighlight, highlight := Reconcile(r.previous, next)
	r.previous = slices.Clone(next)
	plan := Plan{ToUnhighlight: unhighlight, ToHighlight: highlight}
	if !plan.IsEmpty() {
		logger.DebugTagf("highlight", "Reconciler: clear %d, paint %d", len(unhighlight), len(highlight))
	}
	return plan
}

// Reset forgets the painted set. Call it when the surface is reloaded,
// since its old ranges no longer exist.
func (r *Reconciler) Reset() {
	r.previous = nil
}

// Previous returns the match set currently painted.
func (r *Reconciler) Previous() []types.Range {
	return slices.Clone(r.previous)
}
