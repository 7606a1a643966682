package markup

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	tshtml "github.com/smacker/go-tree-sitter/html"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/bethropolis/tidesel/internal/logger"
	"github.com/bethropolis/tidesel/internal/types"
)

// TreeSitterParser builds trees from the tree-sitter HTML grammar. The
// grammar recovers from errors by wrapping unparsable spans in ERROR
// nodes; their children are kept in place.
type TreeSitterParser struct{}

// Name implements Parser.
func (TreeSitterParser) Name() string { return BackendTreeSitter }

// Parse implements Parser.
func (TreeSitterParser) Parse(ctx context.Context, text string) (*Document, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(tshtml.GetLanguage())

	src := []byte(text)
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse failed: %w", err)
	}
	defer tree.Close()

	doc := newDocument(BackendTreeSitter)
	b := &treeBuilder{doc: doc, src: src}
	b.children(tree.RootNode(), doc.Root)

	if tree.RootNode().HasError() {
		logger.DebugTagf("markup", "tree-sitter: document has syntax errors, tree is partial")
	}
	logger.DebugTagf("markup", "tree-sitter: %d elements from %d bytes", len(doc.positions), len(text))
	return doc, nil
}

type treeBuilder struct {
	doc *Document
	src []byte
}

// children converts every child of ts and appends the result to parent.
func (b *treeBuilder) children(ts *sitter.Node, parent *html.Node) {
	for i := 0; i < int(ts.ChildCount()); i++ {
		b.node(ts.Child(i), parent)
	}
}

func (b *treeBuilder) node(ts *sitter.Node, parent *html.Node) {
	switch ts.Type() {
	case "element", "script_element", "style_element":
		b.element(ts, parent)
	case "start_tag", "self_closing_tag":
		// Only reached for tags stranded inside ERROR nodes.
		parent.AppendChild(b.newElement(ts, ts))
	case "text", "raw_text":
		parent.AppendChild(&html.Node{Type: html.TextNode, Data: html.UnescapeString(ts.Content(b.src))})
	case "comment":
		content := strings.TrimSuffix(strings.TrimPrefix(ts.Content(b.src), "<!--"), "-->")
		parent.AppendChild(&html.Node{Type: html.CommentNode, Data: content})
	case "doctype":
		parent.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	case "ERROR":
		b.children(ts, parent)
	}
	// end_tag, erroneous_end_tag and punctuation carry nothing.
}

func (b *treeBuilder) element(ts *sitter.Node, parent *html.Node) {
	if ts.ChildCount() == 0 {
		return
	}
	tag := ts.Child(0)
	if t := tag.Type(); t != "start_tag" && t != "self_closing_tag" {
		b.children(ts, parent)
		return
	}

	n := b.newElement(ts, tag)
	parent.AppendChild(n)
	for i := 1; i < int(ts.ChildCount()); i++ {
		b.node(ts.Child(i), n)
	}
}

// newElement creates the element for ts whose opening tag is tag.
func (b *treeBuilder) newElement(ts, tag *sitter.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode}
	for i := 0; i < int(tag.NamedChildCount()); i++ {
		child := tag.NamedChild(i)
		switch child.Type() {
		case "tag_name":
			n.Data = strings.ToLower(child.Content(b.src))
			n.DataAtom = atom.Lookup([]byte(n.Data))
		case "attribute":
			n.Attr = append(n.Attr, b.attribute(child))
		}
	}

	start := ts.StartPoint()
	b.doc.positions[n] = types.Position{Line: int(start.Row) + 1, Col: int(start.Column) + 1}
	return n
}

func (b *treeBuilder) attribute(ts *sitter.Node) html.Attribute {
	var attr html.Attribute
	for i := 0; i < int(ts.NamedChildCount()); i++ {
		child := ts.NamedChild(i)
		switch child.Type() {
		case "attribute_name":
			attr.Key = strings.ToLower(child.Content(b.src))
		case "attribute_value":
			attr.Val = html.UnescapeString(child.Content(b.src))
		case "quoted_attribute_value":
			for j := 0; j < int(child.NamedChildCount()); j++ {
				if v := child.NamedChild(j); v.Type() == "attribute_value" {
					attr.Val = html.UnescapeString(v.Content(b.src))
				}
			}
		}
	}
	return attr
}
