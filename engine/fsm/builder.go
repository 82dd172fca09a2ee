package fsm

import "fmt"

// AddState adds a node to the machine
func (m *Machine[T, E]) AddState(id StateID, name string) *Node[T, E] {
	node := &Node[T, E]{
		ID:          id,
		Name:        name,
		Transitions: make([]Transition[T, E], 0),
	}
	m.nodes[id] = node
	return node
}

// AddTransition appends a transition to a specific node
func (m *Machine[T, E]) AddTransition(sourceID StateID, t Transition[T, E]) {
	if node, ok := m.nodes[sourceID]; ok {
		node.Transitions = append(node.Transitions, t)
	}
}

// Validate checks that every transition targets a known state
// Must be called after all nodes are added and before Init
func (m *Machine[T, E]) Validate() error {
	if _, ok := m.nodes[m.InitialStateID]; !ok {
		return fmt.Errorf("initial state %d not defined", m.InitialStateID)
	}
	for id, node := range m.nodes {
		for i, t := range node.Transitions {
			if _, ok := m.nodes[t.TargetID]; !ok {
				return fmt.Errorf("state %s transition %d references missing state %d", m.nodes[id].Name, i, t.TargetID)
			}
		}
	}
	return nil
}
