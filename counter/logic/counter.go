// Package logic is a minimal aggregate built on the angzarr core: a
// single int32 value with Increment/Decrement commands. It exists mainly
// to exercise CommandRouter and StateRouter end-to-end with the smallest
// possible state shape.
package logic

import (
	"google.golang.org/protobuf/types/known/anypb"

	"angzarr"
	angzarrpb "angzarr/proto/angzarr"
	"angzarr/proto/examples"
)

const Domain = "counter"

// State is the rebuilt aggregate state.
type State struct {
	Value  int32
	Exists bool
}

func newState() State { return State{} }

// NewStateRouter builds the counter's StateRouter.
func NewStateRouter() *angzarr.StateRouter[State] {
	r := angzarr.NewStateRouter(newState)
	r.WithSnapshot(func(state *State, snap *angzarrpb.Snapshot) {
		var s examples.CounterSnapshot
		if err := angzarr.UnpackAny(snap.GetState(), &s); err == nil {
			state.Value = s.Value
			state.Exists = s.Exists
		}
	})
	r.On("CounterCreated", func(state *State, _ *angzarrpb.EventPage) {
		state.Exists = true
	})
	r.On("Incremented", func(state *State, page *angzarrpb.EventPage) {
		var e examples.Incremented
		if err := angzarr.UnpackAny(page.GetEvent(), &e); err == nil {
			state.Value += e.By
		}
	})
	r.On("Decremented", func(state *State, page *angzarrpb.EventPage) {
		var e examples.Decremented
		if err := angzarr.UnpackAny(page.GetEvent(), &e); err == nil {
			state.Value -= e.By
		}
	})
	return r
}

// NewCommandRouter builds the counter's CommandRouter.
func NewCommandRouter(states *angzarr.StateRouter[State]) *angzarr.CommandRouter[State] {
	r := angzarr.NewCommandRouter(Domain, states)

	r.On("CreateCounter", func(cb *angzarrpb.CommandBook, _ *anypb.Any, state *State, seq uint32) (*angzarrpb.EventBook, error) {
		if state.Exists {
			return nil, angzarr.NewFailedPrecondition("counter already exists")
		}
		return angzarr.PackEvent(cb.GetCover(), "CounterCreated", examples.CounterCreated{}, seq)
	})

	r.On("Increment", func(cb *angzarrpb.CommandBook, cmdAny *anypb.Any, state *State, seq uint32) (*angzarrpb.EventBook, error) {
		if !state.Exists {
			return nil, angzarr.NewFailedPrecondition("counter does not exist")
		}
		var cmd examples.Increment
		if err := angzarr.UnpackAny(cmdAny, &cmd); err != nil {
			return nil, angzarr.NewInvalidArgument("malformed Increment command")
		}
		if err := angzarr.RequirePositive(cmd.By, "increment amount must be positive"); err != nil {
			return nil, err
		}
		return angzarr.PackEvent(cb.GetCover(), "Incremented", examples.Incremented{By: cmd.By}, seq)
	})

	r.On("Decrement", func(cb *angzarrpb.CommandBook, cmdAny *anypb.Any, state *State, seq uint32) (*angzarrpb.EventBook, error) {
		if !state.Exists {
			return nil, angzarr.NewFailedPrecondition("counter does not exist")
		}
		var cmd examples.Decrement
		if err := angzarr.UnpackAny(cmdAny, &cmd); err != nil {
			return nil, angzarr.NewInvalidArgument("malformed Decrement command")
		}
		if err := angzarr.RequirePositive(cmd.By, "decrement amount must be positive"); err != nil {
			return nil, err
		}
		if state.Value-cmd.By < 0 {
			return nil, angzarr.NewFailedPrecondition("counter cannot go negative")
		}
		return angzarr.PackEvent(cb.GetCover(), "Decremented", examples.Decremented{By: cmd.By}, seq)
	})

	return r
}
