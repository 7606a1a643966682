package markup

import (
	"context"
	"errors"
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/bethropolis/tidesel/internal/buffer"
	"github.com/bethropolis/tidesel/internal/logger"
)

// TokenizerParser builds trees with the x/net/html tokenizer. It applies only
// the implied end tags of HTML (an open li, p, dt, dd, td, th, tr or option
// closed by the start of a sibling); there are no implied html/head/body and
// no foster parenting, so the tree otherwise mirrors the tags actually written.
type TokenizerParser struct{}

// Name implements Parser.
func (TokenizerParser) Name() string { return BackendTokenizer }

// ctxCheckInterval is how many tokens are consumed between context checks.
const ctxCheckInterval = 1024

// Parse implements Parser.
func (TokenizerParser) Parse(ctx context.Context, text string) (*Document, error) {
	doc := newDocument(BackendTokenizer)
	lines := buffer.NewLineIndex(text)
	z := html.NewTokenizer(strings.NewReader(text))

	stack := []*html.Node{doc.Root}
	top := func() *html.Node { return stack[len(stack)-1] }

	offset := 0
	for count := 0; ; count++ {
		if count%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		tt := z.Next()
		start := offset
		offset += len(z.Raw())

		switch tt {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				logger.Warnf("markup: tokenizer stopped at offset %d: %v", start, err)
			}
			logger.DebugTagf("markup", "tokenizer: %d elements from %d bytes", len(doc.positions), len(text))
			return doc, nil

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			n := &html.Node{
				Type:     html.ElementNode,
				Data:     tok.Data,
				DataAtom: tok.DataAtom,
				Attr:     tok.Attr,
			}
			stack = closeImplied(stack, tok.DataAtom)
			top().AppendChild(n)
			doc.positions[n] = lines.Position(start)
			if tt == html.StartTagToken && !isVoid(tok.DataAtom) {
				stack = append(stack, n)
			}

		case html.EndTagToken:
			tok := z.Token()
			// Pop to the nearest open element with the same name; ignore strays.
			for i := len(stack) - 1; i > 0; i-- {
				if stack[i].Data == tok.Data {
					stack = stack[:i]
					break
				}
			}

		case html.TextToken:
			top().AppendChild(&html.Node{Type: html.TextNode, Data: string(z.Text())})

		case html.CommentToken:
			top().AppendChild(&html.Node{Type: html.CommentNode, Data: string(z.Text())})

		case html.DoctypeToken:
			top().AppendChild(&html.Node{Type: html.DoctypeNode, Data: string(z.Text())})
		}
	}
}

// isVoid reports whether elements of kind a never have content.
func isVoid(a atom.Atom) bool {
	switch a {
	case atom.Area, atom.Base, atom.Br, atom.Col, atom.Embed, atom.Hr, atom.Img,
		atom.Input, atom.Keygen, atom.Link, atom.Meta, atom.Param, atom.Source,
		atom.Track, atom.Wbr:
		return true
	}
	return false
}

// impliedEnd pops the nearest open element in closes, unless an element in
// stop is found first.
type impliedEnd struct {
	closes []atom.Atom
	stop   []atom.Atom
}

// Elements that bound the search for an open p (the HTML "button scope").
var scopeMarkers = []atom.Atom{
	atom.Applet, atom.Button, atom.Caption, atom.Html, atom.Marquee,
	atom.Object, atom.Table, atom.Td, atom.Template, atom.Th,
}

var (
	closeP        = impliedEnd{closes: []atom.Atom{atom.P}, stop: scopeMarkers}
	closeLi       = impliedEnd{closes: []atom.Atom{atom.Li}, stop: append([]atom.Atom{atom.Ul, atom.Ol, atom.Menu}, scopeMarkers...)}
	closeDtDd     = impliedEnd{closes: []atom.Atom{atom.Dt, atom.Dd}, stop: append([]atom.Atom{atom.Dl}, scopeMarkers...)}
	closeCell     = impliedEnd{closes: []atom.Atom{atom.Td, atom.Th}, stop: []atom.Atom{atom.Tr, atom.Table, atom.Html, atom.Template}}
	closeRow      = impliedEnd{closes: []atom.Atom{atom.Tr}, stop: []atom.Atom{atom.Tbody, atom.Thead, atom.Tfoot, atom.Table, atom.Html, atom.Template}}
	closeSection  = impliedEnd{closes: []atom.Atom{atom.Tbody, atom.Thead, atom.Tfoot}, stop: []atom.Atom{atom.Table, atom.Html, atom.Template}}
	closeOption   = impliedEnd{closes: []atom.Atom{atom.Option}, stop: []atom.Atom{atom.Select, atom.Datalist, atom.Optgroup}}
	closeOptgroup = impliedEnd{closes: []atom.Atom{atom.Optgroup}, stop: []atom.Atom{atom.Select}}
)

// impliedEnds lists, per start tag, the implied ends applied in order before
// the element is inserted.
var impliedEnds = map[atom.Atom][]impliedEnd{
	atom.Li:       {closeP, closeLi},
	atom.Dt:       {closeP, closeDtDd},
	atom.Dd:       {closeP, closeDtDd},
	atom.Td:       {closeCell},
	atom.Th:       {closeCell},
	atom.Tr:       {closeRow},
	atom.Tbody:    {closeSection},
	atom.Thead:    {closeSection},
	atom.Tfoot:    {closeSection},
	atom.Option:   {closeOption},
	atom.Optgroup: {closeOption, closeOptgroup},
}

// Start tags that close an open p.
var pClosers = []atom.Atom{
	atom.Address, atom.Article, atom.Aside, atom.Blockquote, atom.Center,
	atom.Details, atom.Dialog, atom.Dir, atom.Div, atom.Dl, atom.Fieldset,
	atom.Figcaption, atom.Figure, atom.Footer, atom.Form, atom.H1, atom.H2,
	atom.H3, atom.H4, atom.H5, atom.H6, atom.Header, atom.Hgroup, atom.Hr,
	atom.Main, atom.Menu, atom.Nav, atom.Ol, atom.P, atom.Pre, atom.Section,
	atom.Summary, atom.Table, atom.Ul,
}

func init() {
	for _, a := range pClosers {
		impliedEnds[a] = append([]impliedEnd{closeP}, impliedEnds[a]...)
	}
}

// closeImplied applies the implied ends of a start tag of kind a to the open
// element stack. stack[0] is the document and is never popped.
func closeImplied(stack []*html.Node, a atom.Atom) []*html.Node {
	for _, rule := range impliedEnds[a] {
		for i := len(stack) - 1; i > 0; i-- {
			kind := stack[i].DataAtom
			if slices.Contains(rule.closes, kind) {
				stack = stack[:i]
				break
			}
			if slices.Contains(rule.stop, kind) {
				break
			}
		}
	}
	return stack
}
