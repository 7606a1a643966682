package cli

import (
	"fmt"
	"io"

	"github.com/bethropolis/tidesel/internal/selector"
)

// traceSink prints selector events one per line.
type traceSink struct {
	w io.Writer
}

var _ selector.Sink = traceSink{}

func (t traceSink) printf(format string, args ...any) {
	fmt.Fprintf(t.w, format+"\n", args...)
}

func (t traceSink) Begin()           { t.printf("begin") }
func (t traceSink) Selector()        { t.printf("selector") }
func (t traceSink) Type(name string) { t.printf("type %s", name) }
func (t traceSink) Universal()       { t.printf("universal") }
func (t traceSink) ID(id string)     { t.printf("id %s", id) }
func (t traceSink) Class(cls string) { t.printf("class %s", cls) }
func (t traceSink) End()             { t.printf("end") }
func (t traceSink) Pseudo(name, arg string) {
	if arg == "" {
		t.printf("pseudo %s", name)
		return
	}
	t.printf("pseudo %s(%s)", name, arg)
}

func (t traceSink) Attribute(name string, op selector.AttrOp, value string) {
	t.printf("attribute %s %s %q", name, op, value)
}

func (t traceSink) Combinator(kind selector.Combinator) {
	t.printf("combinator %q", kind.String())
}
