// Package markup builds positioned document trees from raw markup text.
//
// The trees are ordinary *html.Node graphs so any x/net/html based selector
// engine can walk them; every element additionally remembers the line and
// column at which its opening tag starts in the source text.
package markup

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/bethropolis/tidesel/internal/types"
)

// Parser turns markup text into a Document. Implementations are best-effort:
// malformed markup yields a partial tree, not an error.
type Parser interface {
	Name() string
	Parse(ctx context.Context, text string) (*Document, error)
}

// Backend names accepted by NewParser.
const (
	BackendTokenizer  = "tokenizer"
	BackendTreeSitter = "tree-sitter"
)

// NewParser returns the parser backend called name. An empty name selects the tokenizer.
func NewParser(name string) (Parser, error) {
	switch name {
	case "", BackendTokenizer:
		return TokenizerParser{}, nil
	case BackendTreeSitter:
		return TreeSitterParser{}, nil
	default:
		return nil, fmt.Errorf("unknown markup parser %q (want %q or %q)", name, BackendTokenizer, BackendTreeSitter)
	}
}

// Document is a parsed tree plus the source position of each element.
type Document struct {
	Root      *html.Node
	Backend   string
	positions map[*html.Node]types.Position
}

func newDocument(backend string) *Document {
	return &Document{
		Root:      &html.Node{Type: html.DocumentNode},
		Backend:   backend,
		positions: make(map[*html.Node]types.Position),
	}
}

// Position returns where the opening tag of n starts.
func (d *Document) Position(n *html.Node) (types.Position, bool) {
	if d == nil {
		return types.Position{}, false
	}
	pos, ok := d.positions[n]
	return pos, ok
}

// Element wraps n with its source position. Nodes the document did not
// create get a zero position, which never resolves to a text range.
func (d *Document) Element(n *html.Node) Element {
	pos, _ := d.Position(n)
	return Element{Node: n, Pos: pos}
}

// ElementCount returns the number of positioned elements.
func (d *Document) ElementCount() int {
	if d == nil {
		return 0
	}
	return len(d.positions)
}

// Element is a matched node together with the position of its opening tag.
type Element struct {
	Node *html.Node
	Pos  types.Position
}

// Line returns the 1-based line of the opening tag.
func (e Element) Line() int { return e.Pos.Line }

// LinePosition returns the 1-based byte column of the opening tag's '<'.
func (e Element) LinePosition() int { return e.Pos.Col }

// BeginTag renders the opening tag, e.g. `<a href="x">`.
func (e Element) BeginTag() string {
	if e.Node == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(e.Node.Data)
	for _, attr := range e.Node.Attr {
		sb.WriteByte(' ')
		if attr.Namespace != "" {
			sb.WriteString(attr.Namespace)
			sb.WriteByte(':')
		}
		sb.WriteString(attr.Key)
		sb.WriteString(`="`)
		sb.WriteString(html.EscapeString(attr.Val))
		sb.WriteByte('"')
	}
	sb.WriteByte('>')
	return sb.String()
}

func (e Element) String() string {
	return fmt.Sprintf("%s@%s", e.BeginTag(), e.Pos)
}
