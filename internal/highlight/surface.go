package highlight

// Surface is anything that can recolor ranges of the displayed text.
type Surface interface {
	Apply(Instruction)
}

// Paint sends instructions to s in order.
func Paint(s Surface, instructions []Instruction) {
	for _, in := range instructions {
		s.Apply(in)
	}
}

// Recorder is a Surface that keeps every instruction it receives.
type Recorder struct {
	Instructions []Instruction
}

// Apply implements Surface.
func (r *Recorder) Apply(in Instruction) {
	r.Instructions = append(r.Instructions, in)
}
