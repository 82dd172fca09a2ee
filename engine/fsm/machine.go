package fsm

import (
	"fmt"
)

// NewMachine creates a new FSM instance starting at initial once Init is called
func NewMachine[T any, E comparable](initial StateID) *Machine[T, E] {
	return &Machine[T, E]{
		nodes:          make(map[StateID]*Node[T, E]),
		InitialStateID: initial,
	}
}

// Init enters the initial state
func (m *Machine[T, E]) Init(ctx T) error {
	node, ok := m.nodes[m.InitialStateID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", m.InitialStateID)
	}

	m.activeStateID = node.ID
	m.ticksInState = 0
	for _, action := range node.OnEnter {
		action(ctx)
	}
	return nil
}

// Update runs OnUpdate actions of the active state, then evaluates tick transitions
func (m *Machine[T, E]) Update(ctx T) {
	node, ok := m.nodes[m.activeStateID]
	if !ok {
		return
	}

	m.ticksInState++
	for _, action := range node.OnUpdate {
		action(ctx)
	}

	// OnUpdate may have transitioned already
	if m.activeStateID != node.ID {
		return
	}

	var tick E
	m.fire(ctx, node, tick)
}

// HandleEvent routes an external event through the active state
// Returns true if a transition fired
func (m *Machine[T, E]) HandleEvent(ctx T, event E) bool {
	node, ok := m.nodes[m.activeStateID]
	if !ok {
		return false
	}
	var tick E
	if event == tick {
		return false
	}
	return m.fire(ctx, node, event)
}

// fire takes the first transition of node matching event whose guard passes
func (m *Machine[T, E]) fire(ctx T, node *Node[T, E], event E) bool {
	for _, trans := range node.Transitions {
		if trans.Event != event {
			continue
		}
		if trans.Guard != nil && !trans.Guard(ctx) {
			continue
		}
		m.transition(ctx, node, trans)
		return true
	}
	return false
}

// transition performs the state change: exit, transition action, enter
func (m *Machine[T, E]) transition(ctx T, from *Node[T, E], trans Transition[T, E]) {
	if from.ID == trans.TargetID {
		if trans.Action != nil {
			trans.Action(ctx)
		}
		return
	}

	target, ok := m.nodes[trans.TargetID]
	if !ok {
		panic(fmt.Sprintf("FSM: Attempted transition to unknown state ID %d from '%s'", trans.TargetID, from.Name))
	}

	for _, action := range from.OnExit {
		action(ctx)
	}
	if trans.Action != nil {
		trans.Action(ctx)
	}

	m.activeStateID = target.ID
	m.ticksInState = 0

	for _, action := range target.OnEnter {
		action(ctx)
	}
}

// State returns the active StateID, StateNone before Init
func (m *Machine[T, E]) State() StateID {
	return m.activeStateID
}

// StateName returns the active state's name
func (m *Machine[T, E]) StateName() string {
	if node, ok := m.nodes[m.activeStateID]; ok {
		return node.Name
	}
	return ""
}

// TicksInState returns the number of updates since the last state change
func (m *Machine[T, E]) TicksInState() uint64 {
	return m.ticksInState
}
