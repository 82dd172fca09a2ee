package fsm

// StateID is a unique identifier for a node
type StateID int

const StateNone StateID = 0

// Machine is a flat finite state machine driven by an explicit transition table
// T is the context passed to actions and guards, E is the event type
// The zero value of E is reserved for tick (automatic) transitions
type Machine[T any, E comparable] struct {
	// Graph data, immutable after build
	nodes map[StateID]*Node[T, E]

	InitialStateID StateID

	// Runtime state
	activeStateID StateID
	ticksInState  uint64
}

// Node represents a single state
type Node[T any, E comparable] struct {
	ID   StateID
	Name string

	OnEnter  []ActionFunc[T]
	OnUpdate []ActionFunc[T]
	OnExit   []ActionFunc[T]

	// Transitions in evaluation priority order
	Transitions []Transition[T, E]
}

// Transition defines a link between states
// A self-transition runs Action without exit/enter actions
type Transition[T any, E comparable] struct {
	Event    E            // zero value = tick
	Guard    GuardFunc[T] // nil = always true
	TargetID StateID
	Action   ActionFunc[T] // runs between exit and enter
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T)
