package logic

import (
	"testing"

	"angzarr"
	angzarrpb "angzarr/proto/angzarr"
	"angzarr/proto/examples"
)

func dispatch(t *testing.T, router *angzarr.CommandRouter[State], prior *angzarrpb.EventBook, suffix string, payload any, seq uint32) (*angzarrpb.BusinessResponse, error) {
	t.Helper()
	cmdAny, err := angzarr.PackAny(suffix, payload)
	if err != nil {
		t.Fatalf("PackAny: %v", err)
	}
	ctx := &angzarrpb.ContextualCommand{
		Command: &angzarrpb.CommandBook{
			Cover: &angzarrpb.Cover{Domain: Domain},
			Pages: []*angzarrpb.CommandPage{{Sequence: seq, Command: cmdAny}},
		},
		Events: prior,
	}
	return router.Dispatch(ctx)
}

func TestCreateCounter(t *testing.T) {
	commands := NewCommandRouter(NewStateRouter())
	resp, err := dispatch(t, commands, nil, "CreateCounter", examples.CreateCounter{}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	events := resp.GetEvents()
	if events == nil || len(events.Pages) != 1 {
		t.Fatalf("expected one event, got %+v", events)
	}
	if got := angzarr.TypeSuffix(events.Pages[0].GetEvent().TypeUrl); got != "CounterCreated" {
		t.Fatalf("expected CounterCreated, got %s", got)
	}
}

func TestCreateCounterTwiceRejected(t *testing.T) {
	commands := NewCommandRouter(NewStateRouter())
	prior, err := angzarr.PackEvent(&angzarrpb.Cover{Domain: Domain}, "CounterCreated", examples.CounterCreated{}, 0)
	if err != nil {
		t.Fatalf("PackEvent: %v", err)
	}
	_, err = dispatch(t, commands, prior, "CreateCounter", examples.CreateCounter{}, 1)
	if !angzarr.IsPreconditionFailed(err) {
		t.Fatalf("expected precondition failure, got %v", err)
	}
}

func TestIncrementAccumulates(t *testing.T) {
	commands := NewCommandRouter(NewStateRouter())
	prior, err := angzarr.PackEvent(&angzarrpb.Cover{Domain: Domain}, "CounterCreated", examples.CounterCreated{}, 0)
	if err != nil {
		t.Fatalf("PackEvent: %v", err)
	}

	resp, err := dispatch(t, commands, prior, "Increment", examples.Increment{By: 5}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	events := resp.GetEvents()
	if got := events.Pages[0].GetSequence(); got != 1 {
		t.Fatalf("expected sequence 1, got %d", got)
	}

	states := NewStateRouter()
	merged := &angzarrpb.EventBook{
		Cover: prior.Cover,
		Pages: append(append([]*angzarrpb.EventPage{}, prior.Pages...), events.Pages...),
	}
	state := states.Fold(merged)
	if state.Value != 5 {
		t.Fatalf("expected value 5, got %d", state.Value)
	}
}

func TestDecrementBelowZeroRejected(t *testing.T) {
	commands := NewCommandRouter(NewStateRouter())
	prior, _ := angzarr.PackEvent(&angzarrpb.Cover{Domain: Domain}, "CounterCreated", examples.CounterCreated{}, 0)

	_, err := dispatch(t, commands, prior, "Decrement", examples.Decrement{By: 1}, 1)
	if !angzarr.IsPreconditionFailed(err) {
		t.Fatalf("expected precondition failure, got %v", err)
	}
}

func TestUnknownCommandIsInvalidArgument(t *testing.T) {
	commands := NewCommandRouter(NewStateRouter())
	_, err := dispatch(t, commands, nil, "Teleport", struct{}{}, 0)
	if !angzarr.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestSequenceMismatchIsRevoked(t *testing.T) {
	commands := NewCommandRouter(NewStateRouter())
	resp, err := dispatch(t, commands, nil, "CreateCounter", examples.CreateCounter{}, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.GetRevocation() == nil {
		t.Fatalf("expected a revocation response, got %+v", resp)
	}
}
