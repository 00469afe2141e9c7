package angzarr

import (
	"context"

	"google.golang.org/grpc"

	angzarrpb "angzarr/proto/angzarr"
)

// AggregateHandler implements the gRPC Aggregate service using a
// CommandRouter: construct a router, register command handlers, and pass
// it to RunAggregateServer.
type AggregateHandler[S any] struct {
	angzarrpb.UnimplementedAggregateServer
	router *CommandRouter[S]
}

// NewAggregateHandler creates an Aggregate gRPC handler backed by router.
func NewAggregateHandler[S any](router *CommandRouter[S]) *AggregateHandler[S] {
	return &AggregateHandler[S]{router: router}
}

// GetDescriptor returns the aggregate's component descriptor for service
// discovery.
func (h *AggregateHandler[S]) GetDescriptor(_ context.Context, _ *angzarrpb.GetDescriptorRequest) (*angzarrpb.ComponentDescriptor, error) {
	desc := h.router.Descriptor()
	return &desc, nil
}

// Handle dispatches a ContextualCommand through the router. Errors
// (including *CommandError) are mapped to gRPC status codes via
// MapCommandError.
func (h *AggregateHandler[S]) Handle(_ context.Context, req *angzarrpb.ContextualCommand) (*angzarrpb.BusinessResponse, error) {
	resp, err := h.router.Dispatch(req)
	if err != nil {
		return nil, MapCommandError(err)
	}
	return resp, nil
}

// Descriptor returns the component descriptor from the router.
func (h *AggregateHandler[S]) Descriptor() angzarrpb.ComponentDescriptor {
	return h.router.Descriptor()
}

// RunAggregateServer creates and runs a gRPC server for an aggregate.
func RunAggregateServer[S any](cfg ServerConfig, router *CommandRouter[S]) error {
	return RunServer(cfg, func(s *grpc.Server) {
		angzarrpb.RegisterAggregateServer(s, NewAggregateHandler(router))
	})
}
