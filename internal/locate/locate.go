// Package locate maps matched document nodes back onto ranges of the raw
// markup text.
package locate

import (
	"sort"

	"github.com/bethropolis/tidesel/internal/buffer"
	"github.com/bethropolis/tidesel/internal/logger"
	"github.com/bethropolis/tidesel/internal/scanner"
	"github.com/bethropolis/tidesel/internal/types"
)

// Node is anything that knows where its opening tag starts.
type Node interface {
	Line() int         // 1-based
	LinePosition() int // 1-based byte column
}

// Match pairs a node with the text range of the tag it resolved to.
type Match[N Node] struct {
	Node  N
	Range types.Range
}

// Locate converts the node's position to an offset and returns the full
// range of the first tag starting at or after it. The two parsers need not
// agree on what a tag is, so the result is the nearest tag the scanner saw,
// not necessarily the one the node came from.
func Locate(node Node, lines *buffer.LineIndex, tags []scanner.TagOccurrence) (types.Range, bool) {
	pos := types.Position{Line: node.Line(), Col: node.LinePosition()}
	if !pos.IsValid() {
		return types.Range{}, false
	}
	offset, ok := lines.Offset(pos.Line, pos.Col)
	if !ok {
		return types.Range{}, false
	}
	i := sort.Search(len(tags), func(i int) bool {
		return tags[i].Full.Start >= offset
	})
	if i == len(tags) {
		return types.Range{}, false
	}
	return tags[i].Full, true
}

// LocateAll resolves nodes in order. Nodes that do not resolve are dropped.
func LocateAll[N Node](nodes []N, lines *buffer.LineIndex, tags []scanner.TagOccurrence) []Match[N] {
	matches := make([]Match[N], 0, len(nodes))
	for _, n := range nodes {
		r, ok := Locate(n, lines, tags)
		if !ok {
			continue
		}
		matches = append(matches, Match[N]{Node: n, Range: r})
	}
	if dropped := len(nodes) - len(matches); dropped > 0 {
		logger.DebugTagf("locate", "LocateAll: %d of %d nodes did not resolve to a tag", dropped, len(nodes))
	}
	return matches
}

// Ranges returns the ranges of matches in order.
func Ranges[N Node](matches []Match[N]) []types.Range {
	out := make([]types.Range, len(matches))
	for i, m := range matches {
		out[i] = m.Range
	}
	return out
}
