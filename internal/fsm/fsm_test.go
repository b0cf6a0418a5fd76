package fsm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransitionHappyPath(t *testing.T) {
	s := StateConnecting

	next, err := Transition(s, EventUpgraded)
	require.NoError(t, err)
	require.Equal(t, StateOpen, next)

	next, err = Transition(next, EventExchange)
	require.NoError(t, err)
	require.Equal(t, StateOpen, next)

	next, err = Transition(next, EventClose)
	require.NoError(t, err)
	require.Equal(t, StateClosed, next)
}

func TestTransitionFailFromAnyStateGoesClosed(t *testing.T) {
	states := []State{StateConnecting, StateOpen, StateClosed}
	for _, state := range states {
		next, err := Transition(state, EventFail)
		require.NoError(t, err)
		require.Equal(t, StateClosed, next)
	}
}

func TestTransitionMatrixInvalidTransitions(t *testing.T) {
	tests := []struct {
		name    string
		state   State
		event   Event
		want    State
		wantErr bool
	}{
		{name: "connecting exchange invalid", state: StateConnecting, event: EventExchange, want: StateConnecting, wantErr: true},
		{name: "open upgraded invalid", state: StateOpen, event: EventUpgraded, want: StateOpen, wantErr: true},
		{name: "closed exchange invalid", state: StateClosed, event: EventExchange, want: StateClosed, wantErr: true},
		{name: "closed upgraded invalid", state: StateClosed, event: EventUpgraded, want: StateClosed, wantErr: true},
		{name: "closed close valid", state: StateClosed, event: EventClose, want: StateClosed, wantErr: false},
		{name: "connecting close valid", state: StateConnecting, event: EventClose, want: StateClosed, wantErr: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			next, err := Transition(tc.state, tc.event)
			require.Equal(t, tc.want, next)
			if tc.wantErr {
				require.Error(t, err)
				require.Contains(t, err.Error(), "invalid transition")
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestTransitionUnknownState(t *testing.T) {
	next, err := Transition(State("mystery"), EventExchange)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown state")
	require.Equal(t, State("mystery"), next)

	next, err = Transition(State("mystery"), EventFail)
	require.Error(t, err)
	require.Equal(t, State("mystery"), next)
}
