package selector

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// emitter walks the CSS token stream of an already validated selector group
// and reports its structure to a Sink.
type emitter struct {
	lex  *css.Lexer
	sink Sink

	peeked  bool
	peekTT  css.TokenType
	peekBuf []byte

	atStart bool        // Next compound part opens a new group member
	pending *Combinator // Combinator seen since the last compound part
}

func emit(text string, sink Sink) error {
	e := &emitter{
		lex:     css.NewLexer(parse.NewInputString(text)),
		sink:    sink,
		atStart: true,
	}
	sink.Begin()
	err := e.run()
	sink.End()
	return err
}

func (e *emitter) next() (css.TokenType, []byte) {
	if e.peeked {
		e.peeked = false
		return e.peekTT, e.peekBuf
	}
	tt, data := e.lex.Next()
	// The lexer reuses its buffer; keep our own copy.
	return tt, append([]byte(nil), data...)
}

func (e *emitter) peek() (css.TokenType, []byte) {
	if !e.peeked {
		e.peekTT, e.peekBuf = e.next()
		e.peeked = true
	}
	return e.peekTT, e.peekBuf
}

// nextSignificant skips whitespace and comments.
func (e *emitter) nextSignificant() (css.TokenType, []byte) {
	for {
		tt, data := e.next()
		if tt != css.WhitespaceToken && tt != css.CommentToken {
			return tt, data
		}
	}
}

// part is called before each simple selector of a compound.
func (e *emitter) part() {
	if e.atStart {
		e.sink.Selector()
		e.atStart = false
	}
	if e.pending != nil {
		e.sink.Combinator(*e.pending)
		e.pending = nil
	}
}

func (e *emitter) combinator(kind Combinator) {
	if e.pending == nil || *e.pending == Descendant {
		e.pending = &kind
	}
}

func (e *emitter) run() error {
	for {
		tt, data := e.next()
		switch tt {
		case css.ErrorToken:
			return nil

		case css.WhitespaceToken, css.CommentToken:
			if !e.atStart {
				e.combinator(Descendant)
			}

		case css.CommaToken:
			e.atStart = true
			e.pending = nil

		case css.IdentToken:
			e.part()
			e.sink.Type(strings.ToLower(unescape(data)))

		case css.HashToken:
			e.part()
			e.sink.ID(unescape(data[1:]))

		case css.DelimToken:
			if err := e.delim(data); err != nil {
				return err
			}

		case css.LeftBracketToken:
			e.part()
			if err := e.attribute(); err != nil {
				return err
			}

		case css.ColonToken:
			e.part()
			if err := e.pseudo(); err != nil {
				return err
			}

		default:
			return fmt.Errorf("unexpected %s %q", tt, data)
		}
	}
}

func (e *emitter) delim(data []byte) error {
	switch string(data) {
	case "*":
		e.part()
		if tt, d := e.peek(); tt == css.DelimToken && string(d) == "|" {
			return fmt.Errorf("namespaces are not supported")
		}
		e.sink.Universal()
	case ".":
		e.part()
		tt, name := e.next()
		if tt != css.IdentToken {
			return fmt.Errorf("expected class name, got %s", tt)
		}
		e.sink.Class(unescape(name))
	case ">":
		e.combinator(Child)
	case "+":
		e.combinator(Adjacent)
	case "~":
		e.combinator(Sibling)
	default:
		return fmt.Errorf("unexpected delimiter %q", data)
	}
	return nil
}

// attribute handles the tokens after '['.
func (e *emitter) attribute() error {
	tt, name := e.nextSignificant()
	if tt != css.IdentToken {
		return fmt.Errorf("expected attribute name, got %s", tt)
	}

	tt, data := e.nextSignificant()
	op := AttrExists
	switch tt {
	case css.RightBracketToken:
		e.sink.Attribute(strings.ToLower(unescape(name)), AttrExists, "")
		return nil
	case css.IncludeMatchToken:
		op = AttrIncludes
	case css.DashMatchToken:
		op = AttrDashMatch
	case css.PrefixMatchToken:
		op = AttrPrefix
	case css.SuffixMatchToken:
		op = AttrSuffix
	case css.SubstringMatchToken:
		op = AttrSubstring
	case css.DelimToken:
		switch string(data) {
		case "=":
			op = AttrEquals
		case "!", "#":
			if t2, d2 := e.next(); t2 != css.DelimToken || string(d2) != "=" {
				return fmt.Errorf("expected '=' after %q", data)
			}
			op = AttrNotEqual
			if string(data) == "#" {
				op = AttrRegexp
			}
		default:
			return fmt.Errorf("unexpected %q in attribute selector", data)
		}
	default:
		return fmt.Errorf("unexpected %s in attribute selector", tt)
	}

	tt, raw := e.nextSignificant()
	var value string
	switch tt {
	case css.StringToken:
		value = unquote(raw)
	case css.IdentToken, css.NumberToken, css.DimensionToken:
		value = unescape(raw)
	default:
		return fmt.Errorf("expected attribute value, got %s", tt)
	}

	// Optional case-sensitivity flag, then ']'.
	tt, _ = e.nextSignificant()
	if tt == css.IdentToken {
		tt, _ = e.nextSignificant()
	}
	if tt != css.RightBracketToken {
		return fmt.Errorf("expected ']', got %s", tt)
	}
	e.sink.Attribute(strings.ToLower(unescape(name)), op, value)
	return nil
}

// pseudo handles the tokens after ':'.
func (e *emitter) pseudo() error {
	tt, data := e.next()
	if tt == css.ColonToken {
		tt, data = e.next()
	}
	switch tt {
	case css.IdentToken:
		e.sink.Pseudo(strings.ToLower(unescape(data)), "")
		return nil
	case css.FunctionToken:
		name := strings.ToLower(unescape(data[:len(data)-1]))
		arg, err := e.arguments()
		if err != nil {
			return err
		}
		e.sink.Pseudo(name, arg)
		return nil
	}
	return fmt.Errorf("expected pseudo-class name, got %s", tt)
}

// arguments collects the raw text up to the ')' closing a function token.
func (e *emitter) arguments() (string, error) {
	var sb strings.Builder
	depth := 1
	for {
		tt, data := e.next()
		switch tt {
		case css.ErrorToken:
			return "", fmt.Errorf("unterminated pseudo-class arguments")
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth--
			if depth == 0 {
				return strings.TrimSpace(sb.String()), nil
			}
		}
		sb.Write(data)
	}
}

// unquote strips the quotes of a CSS string token and resolves escapes.
func unquote(raw []byte) string {
	if len(raw) >= 2 && (raw[0] == '"' || raw[0] == '\'') && raw[len(raw)-1] == raw[0] {
		raw = raw[1 : len(raw)-1]
	}
	return unescape(raw)
}

// unescape resolves CSS backslash escapes: up to six hex digits with one
// optional trailing space, or any other escaped character as itself.
func unescape(raw []byte) string {
	if !strings.ContainsRune(string(raw), '\\') {
		return string(raw)
	}
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 >= len(raw) {
			sb.WriteByte(raw[i])
			continue
		}
		j := i + 1
		for j < len(raw) && j-i <= 6 && isHex(raw[j]) {
			j++
		}
		if j == i+1 {
			sb.WriteByte(raw[j])
			i = j
			continue
		}
		code, err := strconv.ParseUint(string(raw[i+1:j]), 16, 32)
		if err != nil || code == 0 || code > 0x10FFFF {
			code = 0xFFFD
		}
		sb.WriteRune(rune(code))
		if j < len(raw) && raw[j] == ' ' {
			j++
		}
		i = j - 1
	}
	return sb.String()
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
