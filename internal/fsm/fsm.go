// Package fsm holds the connection lifecycle state machine.
package fsm

import "fmt"

type State string

type Event string

const (
	StateConnecting State = "connecting"
	StateOpen       State = "open"
	StateClosed     State = "closed"
)

const (
	EventUpgraded Event = "upgraded"
	EventExchange Event = "exchange"
	EventFail     Event = "fail"
	EventClose    Event = "close"
)

// Transition returns the state reached from current on event.
// Closed is terminal: only fail and close are accepted there, and both keep it closed.
func Transition(current State, event Event) (State, error) {
	if event == EventFail || event == EventClose {
		switch current {
		case StateConnecting, StateOpen, StateClosed:
			return StateClosed, nil
		default:
			return current, fmt.Errorf("unknown state %q", current)
		}
	}

	switch current {
	case StateConnecting:
		switch event {
		case EventUpgraded:
			return StateOpen, nil
		default:
			return current, invalidTransition(current, event)
		}
	case StateOpen:
		switch event {
		case EventExchange:
			return StateOpen, nil
		default:
			return current, invalidTransition(current, event)
		}
	case StateClosed:
		return current, invalidTransition(current, event)
	default:
		return current, fmt.Errorf("unknown state %q", current)
	}
}

func invalidTransition(state State, event Event) error {
	return fmt.Errorf("invalid transition: %s --(%s)--> ?", state, event)
}
