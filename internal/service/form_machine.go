package service

import (
	"fmt"

	appErrors "github.com/noah-isme/pips-site-api/pkg/errors"
)

// FormState is a step in the lifecycle of one form submission.
type FormState string

const (
	StateIdle           FormState = "idle"
	StateValidating     FormState = "validating"
	StateInvalid        FormState = "invalid"
	StateValid          FormState = "valid"
	StateSubmitting     FormState = "submitting"
	StateSuccess        FormState = "success"
	StateError          FormState = "error"
	StateIdleWithErrors FormState = "idle-with-errors"
	StateIdleReset      FormState = "idle-reset"
	StateIdleWithBanner FormState = "idle-with-banner"
)

var formTransitions = map[FormState][]FormState{
	StateIdle:           {StateValidating},
	StateValidating:     {StateInvalid, StateValid},
	StateInvalid:        {StateIdleWithErrors},
	StateValid:          {StateSubmitting},
	StateSubmitting:     {StateSuccess, StateError},
	StateSuccess:        {StateIdleReset},
	StateError:          {StateIdleWithBanner},
	StateIdleWithErrors: {StateValidating},
	StateIdleReset:      {StateValidating},
	StateIdleWithBanner: {StateValidating},
}

// FormMachine tracks a submission through its states and keeps the path taken.
type FormMachine struct {
	state FormState
	trace []FormState
}

// NewFormMachine returns a machine resting in idle.
func NewFormMachine() *FormMachine {
	return &FormMachine{state: StateIdle, trace: []FormState{StateIdle}}
}

// State returns the current state.
func (m *FormMachine) State() FormState {
	return m.state
}

// Trace returns every state visited, starting with idle.
func (m *FormMachine) Trace() []FormState {
	out := make([]FormState, len(m.trace))
	copy(out, m.trace)
	return out
}

// Transition moves to next or returns ErrInvalidTransition, leaving the state unchanged.
func (m *FormMachine) Transition(next FormState) error {
	for _, allowed := range formTransitions[m.state] {
		if allowed == next {
			m.state = next
			m.trace = append(m.trace, next)
			return nil
		}
	}
	return appErrors.Clone(appErrors.ErrInvalidTransition, fmt.Sprintf("cannot move from %s to %s", m.state, next))
}

// Settled reports whether the machine rests in one of the idle states.
func (m *FormMachine) Settled() bool {
	switch m.state {
	case StateIdle, StateIdleWithErrors, StateIdleReset, StateIdleWithBanner:
		return true
	}
	return false
}
