package session

// State is where the evaluation cycle stands.
type State int

const (
	Idle       State = iota // Blank selector; nothing evaluated
	Evaluating              // Selector being compiled and run
	Matched                 // Selector compiled; matches (possibly none) are current
	Error                   // Selector did not compile
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Evaluating:
		return "Evaluating"
	case Matched:
		return "Matched"
	case Error:
		return "Error"
	}
	return "State(?)"
}
