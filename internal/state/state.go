package state

// State selects the mounted scene and the particle motion.
type State int

const (
	Idle State = iota
	SilentQuestion
	RitualSelection
	Transition
	Revelation

	count
)

// All lists every state in edge order.
var All = []State{Idle, SilentQuestion, RitualSelection, Transition, Revelation}

var names = [count]string{
	Idle:            "idle",
	SilentQuestion:  "silent_question",
	RitualSelection: "ritual_selection",
	Transition:      "transition",
	Revelation:      "revelation",
}

func (s State) Valid() bool {
	return s >= Idle && s < count
}

func (s State) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return names[s]
}

// Next returns the state reached by the single outgoing edge of s.
func (s State) Next() State {
	if s == Revelation || !s.Valid() {
		return Idle
	}
	return s + 1
}
