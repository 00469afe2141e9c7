// Package logic implements the order-to-inventory saga: reacts to a new
// order by reserving stock for each of its line items.
package logic

import (
	"encoding/hex"

	"google.golang.org/protobuf/types/known/anypb"

	"angzarr"
	angzarrpb "angzarr/proto/angzarr"
	"angzarr/proto/examples"
)

const (
	Name         = "saga-order-inventory"
	SourceDomain = "order"
	TargetDomain = "inventory"
)

func productRoot(productID string) *angzarrpb.UUID {
	return angzarr.ToProtoUUID(angzarr.ComputeRoot(TargetDomain, productID))
}

// handleOrderCreated reserves stock for each line item of a newly created
// order. One ReserveStock command is issued per line item. Needs
// no prefetched destination state, so destinations is unused.
func handleOrderCreated(cover *angzarrpb.Cover, event *anypb.Any, _ map[string]*angzarrpb.EventBook) []*angzarrpb.CommandBook {
	var evt examples.OrderCreated
	if err := angzarr.UnpackAny(event, &evt); err != nil {
		return nil
	}
	root := cover.GetRoot()
	if root == nil {
		return nil
	}
	orderID := hex.EncodeToString(root.GetValue())

	var commands []*angzarrpb.CommandBook
	for _, item := range evt.Items {
		cmdAny, err := angzarr.PackAny("ReserveStock", examples.ReserveStock{
			Quantity: item.Quantity,
			OrderId:  orderID,
		})
		if err != nil {
			continue
		}
		commands = append(commands, &angzarrpb.CommandBook{
			Cover: &angzarrpb.Cover{
				Domain:        TargetDomain,
				Root:          productRoot(item.ProductId),
				CorrelationId: cover.GetCorrelationId(),
			},
			Pages: []*angzarrpb.CommandPage{{Command: cmdAny}},
		})
	}
	return commands
}

// NewEventRouter builds the saga's EventRouter.
func NewEventRouter() *angzarr.EventRouter {
	r := angzarr.NewEventRouter(Name, SourceDomain)
	r.Output(TargetDomain)
	r.On("OrderCreated", handleOrderCreated)
	return r
}

// NewSagaHandler builds the saga's gRPC handler.
func NewSagaHandler() *angzarr.SagaHandler {
	return angzarr.NewSagaHandler(NewEventRouter())
}
