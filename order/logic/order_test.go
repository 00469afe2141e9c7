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

// appendBook concatenates book's pages onto prior, for building up the
// fold history across a sequence of test dispatches.
func appendBook(prior *angzarrpb.EventBook, book *angzarrpb.EventBook) *angzarrpb.EventBook {
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

func TestCreateOrder(t *testing.T) {
	commands := NewCommandRouter(NewStateRouter())
	resp, err := dispatch(commands, "CreateOrder", examples.CreateOrder{
		CustomerId: "cust-1",
		Items:      []*examples.LineItem{{ProductId: "p1", Quantity: 2, UnitPriceCents: 500}},
	}, 0, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.GetEvents() == nil || len(resp.GetEvents().Pages) != 1 {
		t.Fatalf("expected one event, got %+v", resp)
	}
}

func TestCreateOrderMissingCustomerRejected(t *testing.T) {
	commands := NewCommandRouter(NewStateRouter())
	_, err := dispatch(commands, "CreateOrder", examples.CreateOrder{
		Items: []*examples.LineItem{{ProductId: "p1", Quantity: 1, UnitPriceCents: 100}},
	}, 0, nil)
	if err == nil {
		t.Fatalf("expected error for missing customer_id")
	}
}

func TestFullOrderLifecycle(t *testing.T) {
	states := NewStateRouter()
	commands := NewCommandRouter(states)

	created, err := dispatch(commands, "CreateOrder", examples.CreateOrder{
		CustomerId: "cust-1",
		Items:      []*examples.LineItem{{ProductId: "p1", Quantity: 1, UnitPriceCents: 1000}},
	}, 0, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	events := created.GetEvents()

	submitted, err := dispatch(commands, "SubmitPayment", examples.SubmitPayment{
		PaymentMethod: "card", AmountCents: 1000,
	}, 1, events)
	if err != nil {
		t.Fatalf("submit payment: %v", err)
	}
	events = appendBook(events, submitted.GetEvents())

	completed, err := dispatch(commands, "ConfirmPayment", examples.ConfirmPayment{
		PaymentReference: "ref-1",
	}, 2, events)
	if err != nil {
		t.Fatalf("confirm payment: %v", err)
	}
	if completed.GetEvents() == nil {
		t.Fatalf("expected completion event")
	}
}

func TestCancelCompletedOrderRejected(t *testing.T) {
	states := NewStateRouter()
	commands := NewCommandRouter(states)

	created, _ := dispatch(commands, "CreateOrder", examples.CreateOrder{
		CustomerId: "cust-1",
		Items:      []*examples.LineItem{{ProductId: "p1", Quantity: 1, UnitPriceCents: 500}},
	}, 0, nil)
	events := created.GetEvents()

	submitted, _ := dispatch(commands, "SubmitPayment", examples.SubmitPayment{AmountCents: 500}, 1, events)
	events = appendBook(events, submitted.GetEvents())

	completed, _ := dispatch(commands, "ConfirmPayment", examples.ConfirmPayment{}, 2, events)
	events = appendBook(events, completed.GetEvents())

	_, err := dispatch(commands, "CancelOrder", examples.CancelOrder{Reason: "changed mind"}, 3, events)
	if err == nil {
		t.Fatalf("expected error cancelling a completed order")
	}
}

func TestRejectedReservationCancelsOrder(t *testing.T) {
	commands := NewCommandRouter(NewStateRouter())
	rejectedCmd, _ := angzarr.PackAny("ReserveStock", struct{}{})
	rejection := &angzarrpb.RejectionNotification{
		RejectionReason: "insufficient stock",
		RejectedCommand: &angzarrpb.CommandBook{
			Cover: &angzarrpb.Cover{Domain: "inventory"},
			Pages: []*angzarrpb.CommandPage{{Command: rejectedCmd}},
		},
		SourceAggregate: &angzarrpb.Cover{Domain: Domain},
	}
	notifAny, _ := angzarr.PackAny("RejectionNotification", rejection)
	notification := &angzarrpb.Notification{Payload: notifAny}
	notifWrapperAny, _ := angzarr.PackAny("Notification", notification)

	resp, err := commands.Dispatch(&angzarrpb.ContextualCommand{
		Command: &angzarrpb.CommandBook{
			Cover: &angzarrpb.Cover{Domain: Domain},
			Pages: []*angzarrpb.CommandPage{{Command: notifWrapperAny}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.GetEvents() == nil || len(resp.GetEvents().Pages) != 1 {
		t.Fatalf("expected one compensating event, got %+v", resp)
	}
}
