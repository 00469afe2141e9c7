// Package logic implements the inventory aggregate: on-hand stock,
// per-order reservations, and the low-stock alert side-event.
package logic

import (
	"time"

	"google.golang.org/protobuf/types/known/anypb"

	"angzarr"
	angzarrpb "angzarr/proto/angzarr"
	"angzarr/proto/examples"
)

const Domain = "inventory"

// State is the rebuilt inventory aggregate state.
type State struct {
	Exists            bool
	ProductId         string
	OnHand            int32
	Reserved          int32
	LowStockThreshold int32
	Reservations      map[string]int32
}

func newState() State { return State{Reservations: map[string]int32{}} }

func (s *State) available() int32 { return s.OnHand - s.Reserved }

// NewStateRouter builds the inventory's StateRouter.
func NewStateRouter() *angzarr.StateRouter[State] {
	r := angzarr.NewStateRouter(newState)
	r.WithSnapshot(func(state *State, snap *angzarrpb.Snapshot) {
		var s examples.InventorySnapshot
		if err := angzarr.UnpackAny(snap.GetState(), &s); err != nil {
			return
		}
		state.Exists = true
		state.ProductId = s.ProductId
		state.OnHand = s.OnHand
		state.Reserved = s.Reserved
		state.LowStockThreshold = s.LowStockThreshold
		if s.Reservations != nil {
			state.Reservations = s.Reservations
		}
	})
	r.On("StockInitialized", func(state *State, page *angzarrpb.EventPage) {
		var e examples.StockInitialized
		if angzarr.UnpackAny(page.GetEvent(), &e) != nil {
			return
		}
		state.Exists = true
		state.ProductId = e.ProductId
		state.OnHand = e.InitialQuantity
		state.LowStockThreshold = e.LowStockThreshold
	})
	r.On("StockReserved", func(state *State, page *angzarrpb.EventPage) {
		var e examples.StockReserved
		if angzarr.UnpackAny(page.GetEvent(), &e) != nil {
			return
		}
		state.Reserved += e.Quantity
		state.Reservations[e.OrderId] += e.Quantity
	})
	r.On("ReservationCommitted", func(state *State, page *angzarrpb.EventPage) {
		var e examples.ReservationCommitted
		if angzarr.UnpackAny(page.GetEvent(), &e) != nil {
			return
		}
		state.OnHand -= e.Quantity
		state.Reserved -= e.Quantity
		delete(state.Reservations, e.OrderId)
	})
	r.On("ReservationReleased", func(state *State, page *angzarrpb.EventPage) {
		var e examples.ReservationReleased
		if angzarr.UnpackAny(page.GetEvent(), &e) != nil {
			return
		}
		state.Reserved -= e.Quantity
		delete(state.Reservations, e.OrderId)
	})
	r.On("StockReceived", func(state *State, page *angzarrpb.EventPage) {
		var e examples.StockReceived
		if angzarr.UnpackAny(page.GetEvent(), &e) != nil {
			return
		}
		state.OnHand = e.NewOnHand
	})
	return r
}

// NewCommandRouter builds the inventory's CommandRouter.
func NewCommandRouter(states *angzarr.StateRouter[State]) *angzarr.CommandRouter[State] {
	r := angzarr.NewCommandRouter(Domain, states)

	r.On("InitializeStock", func(cb *angzarrpb.CommandBook, cmdAny *anypb.Any, state *State, seq uint32) (*angzarrpb.EventBook, error) {
		if state.Exists {
			return nil, angzarr.NewFailedPrecondition("inventory already initialized")
		}
		var cmd examples.InitializeStock
		if err := angzarr.UnpackAny(cmdAny, &cmd); err != nil {
			return nil, angzarr.NewInvalidArgument("malformed InitializeStock command")
		}
		if err := angzarr.RequireExists(cmd.ProductId, "product_id is required"); err != nil {
			return nil, err
		}
		if err := angzarr.RequireNonNegative(cmd.InitialQuantity, "initial_quantity must not be negative"); err != nil {
			return nil, err
		}
		return angzarr.PackEvent(cb.GetCover(), "StockInitialized", examples.StockInitialized{
			ProductId:         cmd.ProductId,
			InitialQuantity:   cmd.InitialQuantity,
			LowStockThreshold: cmd.LowStockThreshold,
		}, seq)
	})

	// ReserveStock is the command most likely to be issued by an upstream
	// saga reacting to an order's creation. Insufficient stock rejects the
	// command rather than erroring, so the issuing saga's aggregate can be
	// notified through the compensation pipeline.
	r.On("ReserveStock", func(cb *angzarrpb.CommandBook, cmdAny *anypb.Any, state *State, seq uint32) (*angzarrpb.EventBook, error) {
		if !state.Exists {
			return nil, angzarr.NewFailedPrecondition("inventory does not exist")
		}
		var cmd examples.ReserveStock
		if err := angzarr.UnpackAny(cmdAny, &cmd); err != nil {
			return nil, angzarr.NewInvalidArgument("malformed ReserveStock command")
		}
		if err := angzarr.RequirePositive(cmd.Quantity, "reservation quantity must be positive"); err != nil {
			return nil, err
		}
		if err := angzarr.RequireExists(cmd.OrderId, "order_id is required"); err != nil {
			return nil, err
		}
		if state.available() < cmd.Quantity {
			return nil, angzarr.NewCommandRejected("insufficient stock to reserve")
		}
		newAvailable := state.available() - cmd.Quantity
		named := []angzarr.NamedEvent{
			{Suffix: "StockReserved", Payload: examples.StockReserved{
				Quantity:     cmd.Quantity,
				OrderId:      cmd.OrderId,
				NewAvailable: newAvailable,
				ReservedAt:   time.Now().UTC(),
			}},
		}
		if newAvailable < state.LowStockThreshold {
			named = append(named, angzarr.NamedEvent{Suffix: "LowStockAlert", Payload: examples.LowStockAlert{
				ProductId: state.ProductId,
				Available: newAvailable,
				Threshold: state.LowStockThreshold,
				AlertedAt: time.Now().UTC(),
			}})
		}
		return angzarr.PackEvents(cb.GetCover(), named, seq)
	})

	r.On("CommitReservation", func(cb *angzarrpb.CommandBook, cmdAny *anypb.Any, state *State, seq uint32) (*angzarrpb.EventBook, error) {
		var cmd examples.CommitReservation
		if err := angzarr.UnpackAny(cmdAny, &cmd); err != nil {
			return nil, angzarr.NewInvalidArgument("malformed CommitReservation command")
		}
		qty, ok := state.Reservations[cmd.OrderId]
		if !ok {
			return nil, angzarr.NewFailedPrecondition("no reservation found for order")
		}
		return angzarr.PackEvent(cb.GetCover(), "ReservationCommitted", examples.ReservationCommitted{
			OrderId:   cmd.OrderId,
			Quantity:  qty,
			Committed: time.Now().UTC(),
		}, seq)
	})

	r.On("ReleaseReservation", func(cb *angzarrpb.CommandBook, cmdAny *anypb.Any, state *State, seq uint32) (*angzarrpb.EventBook, error) {
		var cmd examples.ReleaseReservation
		if err := angzarr.UnpackAny(cmdAny, &cmd); err != nil {
			return nil, angzarr.NewInvalidArgument("malformed ReleaseReservation command")
		}
		qty, ok := state.Reservations[cmd.OrderId]
		if !ok {
			return nil, angzarr.NewFailedPrecondition("no reservation found for order")
		}
		return angzarr.PackEvent(cb.GetCover(), "ReservationReleased", examples.ReservationReleased{
			OrderId:  cmd.OrderId,
			Quantity: qty,
			Released: time.Now().UTC(),
		}, seq)
	})

	r.On("ReceiveStock", func(cb *angzarrpb.CommandBook, cmdAny *anypb.Any, state *State, seq uint32) (*angzarrpb.EventBook, error) {
		if !state.Exists {
			return nil, angzarr.NewFailedPrecondition("inventory does not exist")
		}
		var cmd examples.ReceiveStock
		if err := angzarr.UnpackAny(cmdAny, &cmd); err != nil {
			return nil, angzarr.NewInvalidArgument("malformed ReceiveStock command")
		}
		if err := angzarr.RequirePositive(cmd.Quantity, "received quantity must be positive"); err != nil {
			return nil, err
		}
		return angzarr.PackEvent(cb.GetCover(), "StockReceived", examples.StockReceived{
			Quantity:   cmd.Quantity,
			NewOnHand:  state.OnHand + cmd.Quantity,
			ReceivedAt: time.Now().UTC(),
		}, seq)
	})

	return r
}
