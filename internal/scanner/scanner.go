// Package scanner finds opening and closing tags in raw markup text.
//
// It is a lightweight presentation-layer recognizer, not a markup parser: a '<'
// that does not start a well-formed tag before the next '>' is simply invisible
// to it, and nothing it reports is authoritative for document structure.
package scanner

import (
	"iter"

	"github.com/bethropolis/tidesel/internal/types"
)

// TagOccurrence is one tag found in the text.
type TagOccurrence struct {
	Full       types.Range   // From '<' through '>'
	Name       types.Range   // Letter-run naming the tag
	Attributes []types.Range // Attribute names, left to right (opening tags only)
	Closing    bool
}

// Scan lazily yields every tag in text in ascending Full.Start order.
func Scan(text string) iter.Seq[TagOccurrence] {
	return func(yield func(TagOccurrence) bool) {
		pos := 0
		for {
			tag, ok := NextFrom(text, pos)
			if !ok {
				return
			}
			if !yield(tag) {
				return
			}
			pos = tag.Full.End()
		}
	}
}

// ScanAll returns every tag in text. The result is safe to cache for as long
// as the text is not modified.
func ScanAll(text string) []TagOccurrence {
	tags := make([]TagOccurrence, 0, 64)
	for tag := range Scan(text) {
		tags = append(tags, tag)
	}
	return tags
}

// NextFrom returns the first tag starting at or after offset.
func NextFrom(text string, offset int) (TagOccurrence, bool) {
	if offset < 0 {
		offset = 0
	}
	for i := offset; i < len(text); i++ {
		if text[i] != '<' {
			continue
		}
		if tag, ok := matchAt(text, i); ok {
			return tag, true
		}
	}
	return TagOccurrence{}, false
}

// matchAt tries to recognize a tag whose '<' is at text[start].
func matchAt(text string, start int) (TagOccurrence, bool) {
	i := start + 1
	if i >= len(text) {
		return TagOccurrence{}, false
	}

	// Closing tag: "</" letters ">" with nothing in between.
	if text[i] == '/' {
		nameEnd := letterRun(text, i+1)
		if nameEnd == i+1 || nameEnd >= len(text) || text[nameEnd] != '>' {
			return TagOccurrence{}, false
		}
		return TagOccurrence{
			Full:    types.Range{Start: start, Length: nameEnd + 1 - start},
			Name:    types.Range{Start: i + 1, Length: nameEnd - (i + 1)},
			Closing: true,
		}, true
	}

	nameEnd := letterRun(text, i)
	if nameEnd == i {
		return TagOccurrence{}, false
	}

	// Quoted strings may contain '>'; anything else up to '>' is tag body.
	j := nameEnd
	for j < len(text) {
		switch c := text[j]; c {
		case '>':
			full := types.Range{Start: start, Length: j + 1 - start}
			return TagOccurrence{
				Full:       full,
				Name:       types.Range{Start: i, Length: nameEnd - i},
				Attributes: scanAttributes(text[start:j+1], start),
			}, true
		case '"', '\'':
			closeAt := indexByteFrom(text, j+1, c)
			if closeAt < 0 {
				return TagOccurrence{}, false
			}
			j = closeAt + 1
		default:
			j++
		}
	}
	return TagOccurrence{}, false
}

// letterRun returns the index just past the run of ASCII letters starting at i.
func letterRun(text string, i int) int {
	for i < len(text) && isLetter(text[i]) {
		i++
	}
	return i
}

func indexByteFrom(text string, from int, c byte) int {
	for k := from; k < len(text); k++ {
		if text[k] == c {
			return k
		}
	}
	return -1
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
