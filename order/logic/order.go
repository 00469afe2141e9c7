// Package logic implements the order aggregate: creation, payment, and
// cancellation of a single order.
package logic

import (
	"time"

	"google.golang.org/protobuf/types/known/anypb"

	"angzarr"
	angzarrpb "angzarr/proto/angzarr"
	"angzarr/proto/examples"
)

const Domain = "order"

const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// State is the rebuilt order aggregate state.
type State struct {
	Exists        bool
	CustomerId    string
	Items         []*examples.LineItem
	SubtotalCents int32
	Status        string
}

func newState() State { return State{} }

// NewStateRouter builds the order's StateRouter.
func NewStateRouter() *angzarr.StateRouter[State] {
	r := angzarr.NewStateRouter(newState)
	r.WithSnapshot(func(state *State, snap *angzarrpb.Snapshot) {
		var s examples.OrderSnapshot
		if err := angzarr.UnpackAny(snap.GetState(), &s); err != nil {
			return
		}
		state.Exists = true
		state.CustomerId = s.CustomerId
		state.Items = s.Items
		state.SubtotalCents = s.SubtotalCents
		state.Status = s.Status
	})
	r.On("OrderCreated", func(state *State, page *angzarrpb.EventPage) {
		var e examples.OrderCreated
		if angzarr.UnpackAny(page.GetEvent(), &e) != nil {
			return
		}
		state.Exists = true
		state.CustomerId = e.CustomerId
		state.Items = e.Items
		state.SubtotalCents = e.SubtotalCents
		state.Status = StatusPending
	})
	r.On("PaymentSubmitted", func(state *State, _ *angzarrpb.EventPage) {
		state.Status = StatusPaid
	})
	r.On("OrderCompleted", func(state *State, _ *angzarrpb.EventPage) {
		state.Status = StatusCompleted
	})
	r.On("OrderCancelled", func(state *State, _ *angzarrpb.EventPage) {
		state.Status = StatusCancelled
	})
	return r
}

func subtotal(items []*examples.LineItem) int32 {
	var total int32
	for _, item := range items {
		total += item.UnitPriceCents * item.Quantity
	}
	return total
}

// NewCommandRouter builds the order's CommandRouter.
func NewCommandRouter(states *angzarr.StateRouter[State]) *angzarr.CommandRouter[State] {
	r := angzarr.NewCommandRouter(Domain, states)

	r.On("CreateOrder", func(cb *angzarrpb.CommandBook, cmdAny *anypb.Any, state *State, seq uint32) (*angzarrpb.EventBook, error) {
		if state.Exists {
			return nil, angzarr.NewFailedPrecondition("order already exists")
		}
		var cmd examples.CreateOrder
		if err := angzarr.UnpackAny(cmdAny, &cmd); err != nil {
			return nil, angzarr.NewInvalidArgument("malformed CreateOrder command")
		}
		if err := angzarr.RequireExists(cmd.CustomerId, "customer_id is required"); err != nil {
			return nil, err
		}
		if err := angzarr.RequireNotEmpty(cmd.Items, "order must have at least one item"); err != nil {
			return nil, err
		}
		return angzarr.PackEvent(cb.GetCover(), "OrderCreated", examples.OrderCreated{
			CustomerId:    cmd.CustomerId,
			Items:         cmd.Items,
			SubtotalCents: subtotal(cmd.Items),
			CreatedAt:     time.Now().UTC(),
		}, seq)
	})

	r.On("SubmitPayment", func(cb *angzarrpb.CommandBook, cmdAny *anypb.Any, state *State, seq uint32) (*angzarrpb.EventBook, error) {
		if err := angzarr.RequireStatus(state.Status, StatusPending, "order is not pending payment"); err != nil {
			return nil, err
		}
		var cmd examples.SubmitPayment
		if err := angzarr.UnpackAny(cmdAny, &cmd); err != nil {
			return nil, angzarr.NewInvalidArgument("malformed SubmitPayment command")
		}
		if err := angzarr.RequirePositive(cmd.AmountCents, "payment amount must be positive"); err != nil {
			return nil, err
		}
		return angzarr.PackEvent(cb.GetCover(), "PaymentSubmitted", examples.PaymentSubmitted{
			PaymentMethod: cmd.PaymentMethod,
			AmountCents:   cmd.AmountCents,
			SubmittedAt:   time.Now().UTC(),
		}, seq)
	})

	r.On("ConfirmPayment", func(cb *angzarrpb.CommandBook, cmdAny *anypb.Any, state *State, seq uint32) (*angzarrpb.EventBook, error) {
		if err := angzarr.RequireStatus(state.Status, StatusPaid, "order payment has not been submitted"); err != nil {
			return nil, err
		}
		var cmd examples.ConfirmPayment
		if err := angzarr.UnpackAny(cmdAny, &cmd); err != nil {
			return nil, angzarr.NewInvalidArgument("malformed ConfirmPayment command")
		}
		return angzarr.PackEvent(cb.GetCover(), "OrderCompleted", examples.OrderCompleted{
			FinalTotalCents:  state.SubtotalCents,
			PaymentReference: cmd.PaymentReference,
			CompletedAt:      time.Now().UTC(),
		}, seq)
	})

	r.On("CancelOrder", func(cb *angzarrpb.CommandBook, cmdAny *anypb.Any, state *State, seq uint32) (*angzarrpb.EventBook, error) {
		if err := angzarr.RequireStatusNot(state.Status, StatusCompleted, "a completed order cannot be cancelled"); err != nil {
			return nil, err
		}
		if err := angzarr.RequireStatusNot(state.Status, StatusCancelled, "order is already cancelled"); err != nil {
			return nil, err
		}
		var cmd examples.CancelOrder
		if err := angzarr.UnpackAny(cmdAny, &cmd); err != nil {
			return nil, angzarr.NewInvalidArgument("malformed CancelOrder command")
		}
		return angzarr.PackEvent(cb.GetCover(), "OrderCancelled", examples.OrderCancelled{
			Reason:      cmd.Reason,
			CancelledAt: time.Now().UTC(),
		}, seq)
	})

	// A compensating cancellation raised when a downstream ReserveStock
	// command this order's creation implicitly triggers (via the
	// order-inventory saga) is rejected for insufficient stock.
	r.OnRejected(Domain, "ReserveStock", func(rejection *angzarrpb.RejectionNotification, state *State) (*angzarrpb.EventBook, *angzarrpb.Notification, error) {
		cc, err := angzarr.NewCompensationContext(rejection)
		if err != nil {
			return nil, nil, err
		}
		events, err := angzarr.PackEvent(nil, "OrderCancelled", examples.OrderCancelled{
			Reason:      "inventory reservation failed: " + cc.RejectionReason(),
			CancelledAt: time.Now().UTC(),
		}, 0)
		return events, nil, err
	})

	return r
}
