package highlight_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/tidesel/internal/highlight"
	"github.com/bethropolis/tidesel/internal/scanner"
	"github.com/bethropolis/tidesel/internal/types"
)

func rng(start, length int) types.Range {
	return types.Range{Start: start, Length: length}
}

func TestReconcile_NoDiffing(t *testing.T) {
	t.Parallel()

	prev := []types.Range{rng(0, 3), rng(5, 3)}
	next := []types.Range{rng(5, 3), rng(9, 4)}

	un, hi := highlight.Reconcile(prev, next)
	assert.Equal(t, prev, un)
	assert.Equal(t, next, hi)

	un[0] = rng(99, 1)
	assert.Equal(t, rng(0, 3), prev[0], "result does not alias input")
}

func TestReconciler_Sequence(t *testing.T) {
	t.Parallel()

	var r highlight.Reconciler
	assert.Empty(t, r.Previous())

	plan := r.Apply([]types.Range{rng(5, 3)})
	assert.Empty(t, plan.ToUnhighlight)
	assert.Equal(t, []types.Range{rng(5, 3)}, plan.ToHighlight)

	// Emptying the selector clears the single prior range and paints nothing.
	plan = r.Apply(nil)
	assert.Equal(t, []types.Range{rng(5, 3)}, plan.ToUnhighlight)
	assert.Empty(t, plan.ToHighlight)
	assert.Empty(t, r.Previous())

	r.Apply([]types.Range{rng(1, 1)})
	r.Reset()
	plan = r.Apply(nil)
	assert.True(t, plan.IsEmpty())
}

func TestPlan_InstructionsClearBeforePaint(t *testing.T) {
	t.Parallel()

	plan := highlight.Plan{
		ToUnhighlight: []types.Range{rng(0, 3), rng(5, 3)},
		ToHighlight:   []types.Range{rng(5, 3)},
	}
	got := plan.Instructions()
	require.Len(t, got, 3)
	assert.Equal(t, highlight.Instruction{Layer: highlight.LayerMatch, Range: rng(0, 3), Style: highlight.StyleMatchClear}, got[0])
	assert.Equal(t, highlight.StyleMatchClear, got[1].Style)
	assert.Equal(t, highlight.Instruction{Layer: highlight.LayerMatch, Range: rng(5, 3), Style: highlight.StyleMatch}, got[2])
}

func TestStructure(t *testing.T) {
	t.Parallel()

	text := `<a href="x">y</a>`
	var rec highlight.Recorder
	highlight.Paint(&rec, highlight.Structure(scanner.ScanAll(text)))

	var got []string
	for _, in := range rec.Instructions {
		assert.Equal(t, highlight.LayerStructure, in.Layer)
		got = append(got, in.Style+":"+in.Range.Slice(text))
	}
	assert.Equal(t, []string{
		"Tag:" + `<a href="x">`,
		"Tag.name:a",
		"Tag.attribute:href",
		"Tag:</a>",
		"Tag.name:a",
	}, got)
}
