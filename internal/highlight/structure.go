package highlight

import "github.com/bethropolis/tidesel/internal/scanner"

// Structure returns the structural coloring for tags: the whole tag, then
// its name, then each attribute name, tag by tag in scan order.
func Structure(tags []scanner.TagOccurrence) []Instruction {
	n := 0
	for _, t := range tags {
		n += 2 + len(t.Attributes)
	}
	out := make([]Instruction, 0, n)
	for _, t := range tags {
		out = append(out,
			Instruction{Layer: LayerStructure, Range: t.Full, Style: StyleTag},
			Instruction{Layer: LayerStructure, Range: t.Name, Style: StyleTagName},
		)
		for _, a := range t.Attributes {
			out = append(out, Instruction{Layer: LayerStructure, Range: a, Style: StyleTagAttribute})
		}
	}
	return out
}
