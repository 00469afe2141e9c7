package logic

import (
	"testing"

	"angzarr"
	angzarrpb "angzarr/proto/angzarr"
	"angzarr/proto/examples"
)

func contextualCommand(suffix string, payload interface{}, seq uint32, prior *angzarrpb.EventBook) *angzarrpb.ContextualCommand {
	cmdAny, _ := angzarr.PackAny(suffix, payload)
	return &angzarrpb.ContextualCommand{
		Command: &angzarrpb.CommandBook{
			Cover: &angzarrpb.Cover{Domain: Domain},
			Pages: []*angzarrpb.CommandPage{{Sequence: seq, Command: cmdAny}},
		},
		Events: prior,
	}
}

func dispatch(commands *angzarr.CommandRouter[State], suffix string, payload interface{}, seq uint32, prior *angzarrpb.EventBook) (*angzarrpb.BusinessResponse, error) {
	return commands.Dispatch(contextualCommand(suffix, payload, seq, prior))
}

func appendBook(prior, book *angzarrpb.EventBook) *angzarrpb.EventBook {
	if prior == nil {
		return book
	}
	if book == nil {
		return prior
	}
	return &angzarrpb.EventBook{
		Cover:        prior.Cover,
		Pages:        append(append([]*angzarrpb.EventPage{}, prior.Pages...), book.Pages...),
		NextSequence: book.NextSequence,
	}
}

func TestInitializeStock(t *testing.T) {
	commands := NewCommandRouter(NewStateRouter())
	resp, err := dispatch(commands, "InitializeStock", examples.InitializeStock{
		ProductId: "widget-1", InitialQuantity: 10, LowStockThreshold: 2,
	}, 0, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.GetEvents() == nil || len(resp.GetEvents().Pages) != 1 {
		t.Fatalf("expected one event, got %+v", resp)
	}
}

func TestReserveStockInsufficientIsRejected(t *testing.T) {
	commands := NewCommandRouter(NewStateRouter())
	init, _ := dispatch(commands, "InitializeStock", examples.InitializeStock{
		ProductId: "widget-1", InitialQuantity: 2, LowStockThreshold: 0,
	}, 0, nil)
	events := init.GetEvents()

	resp, err := dispatch(commands, "ReserveStock", examples.ReserveStock{
		Quantity: 5, OrderId: "order-1",
	}, 1, events)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.GetRevocation() == nil {
		t.Fatalf("expected revocation for insufficient stock, got %+v", resp)
	}
}

func TestReserveStockBelowThresholdEmitsAlert(t *testing.T) {
	commands := NewCommandRouter(NewStateRouter())
	init, _ := dispatch(commands, "InitializeStock", examples.InitializeStock{
		ProductId: "widget-1", InitialQuantity: 10, LowStockThreshold: 8,
	}, 0, nil)
	events := init.GetEvents()

	resp, err := dispatch(commands, "ReserveStock", examples.ReserveStock{
		Quantity: 5, OrderId: "order-1",
	}, 1, events)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pages := resp.GetEvents().GetPages()
	if len(pages) != 2 {
		t.Fatalf("expected StockReserved + LowStockAlert, got %d pages", len(pages))
	}
}

func TestCommitReservationRequiresExistingReservation(t *testing.T) {
	commands := NewCommandRouter(NewStateRouter())
	init, _ := dispatch(commands, "InitializeStock", examples.InitializeStock{
		ProductId: "widget-1", InitialQuantity: 10, LowStockThreshold: 0,
	}, 0, nil)
	events := init.GetEvents()

	_, err := dispatch(commands, "CommitReservation", examples.CommitReservation{OrderId: "no-such-order"}, 1, events)
	if err == nil {
		t.Fatalf("expected error committing a nonexistent reservation")
	}
}

func TestReserveThenCommitReducesOnHand(t *testing.T) {
	commands := NewCommandRouter(NewStateRouter())
	init, _ := dispatch(commands, "InitializeStock", examples.InitializeStock{
		ProductId: "widget-1", InitialQuantity: 10, LowStockThreshold: 0,
	}, 0, nil)
	events := init.GetEvents()

	reserved, err := dispatch(commands, "ReserveStock", examples.ReserveStock{Quantity: 3, OrderId: "order-1"}, 1, events)
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	events = appendBook(events, reserved.GetEvents())

	committed, err := dispatch(commands, "CommitReservation", examples.CommitReservation{OrderId: "order-1"}, 2, events)
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if committed.GetEvents() == nil {
		t.Fatalf("expected ReservationCommitted event")
	}
}
