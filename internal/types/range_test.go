package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bethropolis/tidesel/internal/types"
)

func TestRangeBounds(t *testing.T) {
	t.Parallel()

	r := types.Range{Start: 5, Length: 3}
	assert.Equal(t, 8, r.End())
	assert.True(t, r.Contains(5))
	assert.True(t, r.Contains(7))
	assert.False(t, r.Contains(8))
	assert.False(t, r.IsEmpty())
	assert.True(t, types.Range{Start: 2}.IsEmpty())
}

func TestRangeCovers(t *testing.T) {
	t.Parallel()

	a := types.Range{Start: 0, Length: 10}
	b := types.Range{Start: 3, Length: 2}
	c := types.Range{Start: 9, Length: 2}

	assert.True(t, a.Covers(b))
	assert.False(t, b.Covers(a))
	assert.False(t, a.Covers(c), "c runs past the end of a")
}

func TestRangeSlice(t *testing.T) {
	t.Parallel()

	text := "<div><p>x</p></div>"
	assert.Equal(t, "<p>", types.Range{Start: 5, Length: 3}.Slice(text))
	assert.Equal(t, "</div>", types.Range{Start: 13, Length: 100}.Slice(text))
	assert.Empty(t, types.Range{Start: 40, Length: 2}.Slice(text))
}

func TestPositionString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "3:14", types.Position{Line: 3, Col: 14}.String())
	assert.False(t, types.Position{}.IsValid())
}
