// internal/types/position.go
package types

import "fmt"

// Position is a location in the raw markup text.
// Line is 1-based and counts '\n' boundaries.
// Col is the 1-based byte column within that line, which is how both markup
// backends report element starts.
type Position struct {
	Line int
	Col  int
}

// IsValid reports whether both coordinates are positive.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Col > 0
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}
