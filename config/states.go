package config

import "fmt"

// GameState is the top-level mode of the game.
type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StatePaused
	StateDead
)

func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateDead:
		return "dead"
	}
	return fmt.Sprintf("GameState(%d)", int(s))
}

// transitions lists the legal successors of each state.
var transitions = map[GameState][]GameState{
	StateMenu:    {StatePlaying},
	StatePlaying: {StatePaused, StateDead},
	StatePaused:  {StatePlaying, StateMenu},
	StateDead:    {StatePlaying, StateMenu},
}

// CanTransition reports whether from -> to is a legal move.
func CanTransition(from, to GameState) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// StateMachine tracks the current GameState and rejects illegal moves.
type StateMachine struct {
	current  GameState
	previous GameState
}

// NewStateMachine starts in the given state.
func NewStateMachine(initial GameState) *StateMachine {
	return &StateMachine{current: initial, previous: initial}
}

func (m *StateMachine) Current() GameState  { return m.current }
func (m *StateMachine) Previous() GameState { return m.previous }

// Simulating reports whether movement, collision, hazards and camera run.
func (m *StateMachine) Simulating() bool {
	return m.current == StatePlaying
}

// Transition moves to the target state.
func (m *StateMachine) Transition(to GameState) error {
	if !CanTransition(m.current, to) {
		return fmt.Errorf("illegal state transition %s -> %s", m.current, to)
	}
	m.previous, m.current = m.current, to
	return nil
}
