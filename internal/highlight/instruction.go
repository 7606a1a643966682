// Package highlight computes what a text surface must recolor: the
// structural tag coloring applied on load, and the selector match set
// reconciled against the previous one.
package highlight

import (
	"fmt"

	"github.com/bethropolis/tidesel/internal/types"
)

// Layer separates structural coloring from match coloring so that clearing
// matches never disturbs tag colors.
type Layer int

const (
	LayerStructure Layer = iota
	LayerMatch
)

func (l Layer) String() string {
	switch l {
	case LayerStructure:
		return "structure"
	case LayerMatch:
		return "match"
	}
	return fmt.Sprintf("Layer(%d)", int(l))
}

// Theme style names used by instructions.
const (
	StyleTag          = "Tag"
	StyleTagName      = "Tag.name"
	StyleTagAttribute = "Tag.attribute"
	StyleMatch        = "Match"
	StyleMatchClear   = "Match.clear"
)

// Instruction tells a surface to paint Range on Layer with Style.
type Instruction struct {
	Layer Layer
	Range types.Range
	Style string
}

func (in Instruction) String() string {
	return fmt.Sprintf("%s %s %s", in.Layer, in.Range, in.Style)
}
