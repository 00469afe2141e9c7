// Package logic implements a read-model projector over inventory events:
// it logs each event structurally, standing in for whatever downstream
// store a deployment wires in (a view table, a search index, a cache).
package logic

import (
	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/anypb"

	"angzarr"
	angzarrpb "angzarr/proto/angzarr"
	"angzarr/proto/examples"
)

const (
	Name         = "projector-inventory"
	SourceDomain = "inventory"
)

// NewHandler builds the projector's handle function, logging through
// logger.
func NewHandler(logger *zap.Logger) func(book *angzarrpb.EventBook) (*angzarrpb.Projection, error) {
	return func(book *angzarrpb.EventBook) (*angzarrpb.Projection, error) {
		for _, page := range book.GetPages() {
			event := page.GetEvent()
			if event == nil {
				continue
			}
			processEvent(logger, event)
		}
		return &angzarrpb.Projection{Name: Name}, nil
	}
}

func processEvent(logger *zap.Logger, event *anypb.Any) {
	switch angzarr.TypeSuffix(event.TypeUrl) {
	case "StockInitialized":
		var e examples.StockInitialized
		if angzarr.UnpackAny(event, &e) == nil {
			logger.Info("inventory_projected",
				zap.String("event", "StockInitialized"),
				zap.String("product_id", e.ProductId),
				zap.Int32("initial_quantity", e.InitialQuantity),
				zap.Int32("threshold", e.LowStockThreshold),
			)
		}
	case "StockReceived":
		var e examples.StockReceived
		if angzarr.UnpackAny(event, &e) == nil {
			logger.Info("inventory_projected",
				zap.String("event", "StockReceived"),
				zap.Int32("quantity", e.Quantity),
				zap.Int32("new_on_hand", e.NewOnHand),
			)
		}
	case "StockReserved":
		var e examples.StockReserved
		if angzarr.UnpackAny(event, &e) == nil {
			logger.Info("inventory_projected",
				zap.String("event", "StockReserved"),
				zap.String("order_id", e.OrderId),
				zap.Int32("quantity", e.Quantity),
				zap.Int32("new_available", e.NewAvailable),
			)
		}
	case "ReservationCommitted":
		var e examples.ReservationCommitted
		if angzarr.UnpackAny(event, &e) == nil {
			logger.Info("inventory_projected",
				zap.String("event", "ReservationCommitted"),
				zap.String("order_id", e.OrderId),
				zap.Int32("quantity", e.Quantity),
			)
		}
	case "ReservationReleased":
		var e examples.ReservationReleased
		if angzarr.UnpackAny(event, &e) == nil {
			logger.Info("inventory_projected",
				zap.String("event", "ReservationReleased"),
				zap.String("order_id", e.OrderId),
				zap.Int32("quantity", e.Quantity),
			)
		}
	case "LowStockAlert":
		var e examples.LowStockAlert
		if angzarr.UnpackAny(event, &e) == nil {
			logger.Info("inventory_projected",
				zap.String("event", "LowStockAlert"),
				zap.String("product_id", e.ProductId),
				zap.Int32("available", e.Available),
				zap.Int32("threshold", e.Threshold),
			)
		}
	}
}

// NewProjectorHandler builds the gRPC projector handler.
func NewProjectorHandler(logger *zap.Logger) *angzarr.ProjectorHandler {
	return angzarr.NewProjectorHandler(Name, SourceDomain).WithHandle(NewHandler(logger))
}
