package selector

// AttrOp is the operator of an attribute selector.
type AttrOp int

const (
	AttrExists    AttrOp = iota // [name]
	AttrEquals                  // [name=v]
	AttrIncludes                // [name~=v]
	AttrDashMatch               // [name|=v]
	AttrPrefix                  // [name^=v]
	AttrSuffix                  // [name$=v]
	AttrSubstring               // [name*=v]
	AttrNotEqual                // [name!=v]
	AttrRegexp                  // [name#=v]
)

var attrOpText = [...]string{"", "=", "~=", "|=", "^=", "$=", "*=", "!=", "#="}

func (op AttrOp) String() string {
	if op < 0 || int(op) >= len(attrOpText) {
		return "?"
	}
	return attrOpText[op]
}

// Combinator joins two compound selectors.
type Combinator int

const (
	Descendant Combinator = iota // whitespace
	Child                        // >
	Adjacent                     // +
	Sibling                      // ~
)

func (c Combinator) String() string {
	switch c {
	case Descendant:
		return " "
	case Child:
		return ">"
	case Adjacent:
		return "+"
	case Sibling:
		return "~"
	}
	return "?"
}

// Sink receives the structure of a parsed selector group, left to right.
// Begin and End bracket the whole group; Selector starts each member.
type Sink interface {
	Begin()
	Selector()
	Type(name string)
	Universal()
	ID(id string)
	Class(class string)
	Attribute(name string, op AttrOp, value string)
	Pseudo(name, arg string)
	Combinator(kind Combinator)
	End()
}

// Tee returns a Sink that forwards every event to each of sinks in order.
// Nil sinks are skipped.
func Tee(sinks ...Sink) Sink {
	var live multiSink
	for _, s := range sinks {
		if s != nil {
			live = append(live, s)
		}
	}
	return live
}

type multiSink []Sink

func (m multiSink) Begin() {
	for _, s := range m {
		s.Begin()
	}
}

func (m multiSink) Selector() {
	for _, s := range m {
		s.Selector()
	}
}

func (m multiSink) Type(name string) {
	for _, s := range m {
		s.Type(name)
	}
}

func (m multiSink) Universal() {
	for _, s := range m {
		s.Universal()
	}
}

func (m multiSink) ID(id string) {
	for _, s := range m {
		s.ID(id)
	}
}

func (m multiSink) Class(class string) {
	for _, s := range m {
		s.Class(class)
	}
}

func (m multiSink) Attribute(name string, op AttrOp, value string) {
	for _, s := range m {
		s.Attribute(name, op, value)
	}
}

func (m multiSink) Pseudo(name, arg string) {
	for _, s := range m {
		s.Pseudo(name, arg)
	}
}

func (m multiSink) Combinator(kind Combinator) {
	for _, s := range m {
		s.Combinator(kind)
	}
}

func (m multiSink) End() {
	for _, s := range m {
		s.End()
	}
}
