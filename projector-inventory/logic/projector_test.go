package logic

import (
	"testing"

	"go.uber.org/zap"

	"angzarr"
	angzarrpb "angzarr/proto/angzarr"
	"angzarr/proto/examples"
)

func eventBook(suffix string, payload interface{}) *angzarrpb.EventBook {
	eventAny, _ := angzarr.PackAny(suffix, payload)
	return &angzarrpb.EventBook{
		Cover: &angzarrpb.Cover{Domain: SourceDomain},
		Pages: []*angzarrpb.EventPage{{Event: eventAny}},
	}
}

func TestHandleReturnsProjectionForEachEventType(t *testing.T) {
	logger := zap.NewNop()
	handle := NewHandler(logger)

	cases := []*angzarrpb.EventBook{
		eventBook("StockInitialized", examples.StockInitialized{ProductId: "p1", InitialQuantity: 10}),
		eventBook("StockReceived", examples.StockReceived{Quantity: 5, NewOnHand: 15}),
		eventBook("StockReserved", examples.StockReserved{OrderId: "o1", Quantity: 2}),
		eventBook("ReservationCommitted", examples.ReservationCommitted{OrderId: "o1", Quantity: 2}),
		eventBook("ReservationReleased", examples.ReservationReleased{OrderId: "o1", Quantity: 2}),
		eventBook("LowStockAlert", examples.LowStockAlert{ProductId: "p1", Available: 1}),
	}

	for _, book := range cases {
		proj, err := handle(book)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if proj.Name != Name {
			t.Fatalf("got %+v", proj)
		}
	}
}

func TestHandleIgnoresNilEvents(t *testing.T) {
	handle := NewHandler(zap.NewNop())
	book := &angzarrpb.EventBook{Pages: []*angzarrpb.EventPage{{Event: nil}}}
	if _, err := handle(book); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDescriptorReportsSourceDomain(t *testing.T) {
	handler := NewProjectorHandler(zap.NewNop())
	desc := handler.Descriptor()
	if desc.Name != Name {
		t.Fatalf("got %q", desc.Name)
	}
	inputs, _ := desc.Inputs.([]*angzarrpb.Subscription)
	if len(inputs) != 1 || inputs[0].Domain != SourceDomain {
		t.Fatalf("got inputs %+v", desc.Inputs)
	}
}
