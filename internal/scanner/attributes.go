package scanner

import (
	"unicode"
	"unicode/utf8"

	"github.com/bethropolis/tidesel/internal/types"
)

// scanAttributes finds attribute names inside the text of one tag.
// A name is a letter-run starting at a word boundary and followed by
// optional space, '=', optional space and a double-quoted, single-quoted or
// bare value. Returned ranges are rebased by base into buffer coordinates.
func scanAttributes(tag string, base int) []types.Range {
	var names []types.Range
	p := 0
	for p < len(tag) {
		if !isLetter(tag[p]) || !atWordBoundary(tag, p) {
			p++
			continue
		}
		nameEnd := letterRun(tag, p)
		end, ok := attributeValueEnd(tag, nameEnd)
		if !ok {
			p++
			continue
		}
		names = append(names, types.Range{Start: base + p, Length: nameEnd - p})
		p = end
	}
	return names
}

// attributeValueEnd matches `\s*=\s*(?:"[^"]*"|'[^']*'|[^'">\s]+)` at i and
// returns the index just past the value.
func attributeValueEnd(tag string, i int) (int, bool) {
	i = skipSpace(tag, i)
	if i >= len(tag) || tag[i] != '=' {
		return 0, false
	}
	i = skipSpace(tag, i+1)
	if i >= len(tag) {
		return 0, false
	}

	switch c := tag[i]; c {
	case '"', '\'':
		closeAt := indexByteFrom(tag, i+1, c)
		if closeAt < 0 {
			return 0, false
		}
		return closeAt + 1, true
	}

	start := i
	for i < len(tag) {
		r, size := utf8.DecodeRuneInString(tag[i:])
		if r == '"' || r == '\'' || r == '>' || unicode.IsSpace(r) {
			break
		}
		i += size
	}
	return i, i > start
}

func skipSpace(s string, i int) int {
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	return i
}

// atWordBoundary reports whether the character before p is not a word character.
func atWordBoundary(s string, p int) bool {
	if p == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:p])
	return !(r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r))
}
