// Package describe turns selector structure into an English sentence.
package describe

import (
	"fmt"
	"strings"

	"github.com/bethropolis/tidesel/internal/selector"
)

// Describer is a selector.Sink that accumulates a plain-English reading of
// the selector group, e.g. "Take all <p> elements with a class of 'x' and
// select them."
type Describer struct {
	sb strings.Builder
}

var _ selector.Sink = (*Describer)(nil)

// Text returns the description built so far.
func (d *Describer) Text() string {
	return d.sb.String()
}

// Reset clears the description.
func (d *Describer) Reset() {
	d.sb.Reset()
}

func (d *Describer) Begin() {
	d.sb.Reset()
}

func (d *Describer) Selector() {
	if d.sb.Len() == 0 {
		d.sb.WriteString("Take all")
		return
	}
	d.sb.WriteString(" and select them. Combined with previous, take all")
}

func (d *Describer) Type(name string) {
	fmt.Fprintf(&d.sb, " <%s> elements", name)
}

func (d *Describer) Universal() {
	d.sb.WriteString(" elements")
}

func (d *Describer) ID(id string) {
	fmt.Fprintf(&d.sb, " with an ID of '%s'", id)
}

func (d *Describer) Class(class string) {
	fmt.Fprintf(&d.sb, " with a class of '%s'", class)
}

func (d *Describer) Attribute(name string, op selector.AttrOp, value string) {
	switch op {
	case selector.AttrExists:
		fmt.Fprintf(&d.sb, " which have attribute %s defined", name)
	case selector.AttrEquals:
		fmt.Fprintf(&d.sb, " which have attribute %s with a value of '%s'", name, value)
	case selector.AttrIncludes:
		fmt.Fprintf(&d.sb, " which have attribute %s that includes the word '%s'", name, value)
	case selector.AttrDashMatch:
		fmt.Fprintf(&d.sb, " which have attribute %s with a hyphen separated value matching '%s'", name, value)
	case selector.AttrPrefix:
		fmt.Fprintf(&d.sb, " which have attribute %s whose value begins with '%s'", name, value)
	case selector.AttrSuffix:
		fmt.Fprintf(&d.sb, " which have attribute %s whose value ends with '%s'", name, value)
	case selector.AttrSubstring:
		fmt.Fprintf(&d.sb, " which have attribute %s whose value contains '%s'", name, value)
	case selector.AttrNotEqual:
		fmt.Fprintf(&d.sb, " which do not have attribute %s with a value of '%s'", name, value)
	case selector.AttrRegexp:
		fmt.Fprintf(&d.sb, " which have attribute %s whose value matches the pattern '%s'", name, value)
	}
}

func (d *Describer) Pseudo(name, arg string) {
	switch name {
	case "first-child":
		d.sb.WriteString(" which are the first child of their parent")
	case "last-child":
		d.sb.WriteString(" which are the last child of their parent")
	case "only-child":
		d.sb.WriteString(" where the element is the only child")
	case "first-of-type":
		d.sb.WriteString(" which are the first of their type among siblings")
	case "last-of-type":
		d.sb.WriteString(" which are the last of their type among siblings")
	case "only-of-type":
		d.sb.WriteString(" which are the only one of their type among siblings")
	case "empty":
		d.sb.WriteString(" where the element is empty")
	case "root":
		d.sb.WriteString(" which are the root of the document")
	case "nth-child":
		fmt.Fprintf(&d.sb, " where the element is child number %s of its parent", arg)
	case "nth-last-child":
		fmt.Fprintf(&d.sb, " where the element is child number %s of its parent, counting from the last", arg)
	case "not":
		fmt.Fprintf(&d.sb, " which do not match '%s'", arg)
	case "has":
		fmt.Fprintf(&d.sb, " which have descendants matching '%s'", arg)
	case "contains":
		fmt.Fprintf(&d.sb, " whose text contains %s", arg)
	default:
		if arg == "" {
			fmt.Fprintf(&d.sb, " which match :%s", name)
		} else {
			fmt.Fprintf(&d.sb, " which match :%s(%s)", name, arg)
		}
	}
}

func (d *Describer) Combinator(kind selector.Combinator) {
	switch kind {
	case selector.Descendant:
		d.sb.WriteString(", then take their descendants which are")
	case selector.Child:
		d.sb.WriteString(", then take their immediate children which are")
	case selector.Adjacent:
		d.sb.WriteString(", then take their immediate siblings which are")
	case selector.Sibling:
		d.sb.WriteString(", then take their siblings which are")
	}
}

func (d *Describer) End() {
	if d.sb.Len() > 0 {
		d.sb.WriteString(" and select them.")
	}
}

// Describe parses sel and returns its description.
func Describe(sel string) (string, error) {
	var d Describer
	if _, err := selector.Parse(sel, &d); err != nil {
		return "", err
	}
	return d.Text(), nil
}
