package angzarr

import (
	"context"

	"google.golang.org/grpc"

	angzarrpb "angzarr/proto/angzarr"
)

// SagaPrepareFunc examines source events and returns destination covers
// the saga needs loaded before Execute runs. Return nil for sagas that
// never need destination state.
type SagaPrepareFunc func(source *angzarrpb.EventBook) []*angzarrpb.Cover

// SagaExecuteFunc processes source events alongside destination state and
// returns commands to issue.
type SagaExecuteFunc func(source *angzarrpb.EventBook, destinations []*angzarrpb.EventBook) []*angzarrpb.CommandBook

// SagaHandler implements the gRPC Saga service using an EventRouter.
//
// Simple mode (default): Prepare delegates to router.PrepareDestinations
// and Execute to router.Dispatch, so any handler registered with the
// router's own Prepare/On pair gets its destinations prefetched and
// passed through automatically. Use WithPrepare/WithExecute to bypass the
// router's table entirely for a saga whose destination logic can't be
// expressed per-event-suffix.
type SagaHandler struct {
	angzarrpb.UnimplementedSagaServer
	router  *EventRouter
	prepare SagaPrepareFunc
	execute SagaExecuteFunc
}

// NewSagaHandler creates a saga handler backed by router.
func NewSagaHandler(router *EventRouter) *SagaHandler {
	return &SagaHandler{router: router}
}

// WithPrepare overrides the default (router.PrepareDestinations) prepare
// behavior.
func (h *SagaHandler) WithPrepare(fn SagaPrepareFunc) *SagaHandler {
	h.prepare = fn
	return h
}

// WithExecute overrides the default (router.Dispatch) execute behavior.
func (h *SagaHandler) WithExecute(fn SagaExecuteFunc) *SagaHandler {
	h.execute = fn
	return h
}

// GetDescriptor returns the saga's component descriptor for service
// discovery.
func (h *SagaHandler) GetDescriptor(_ context.Context, _ *angzarrpb.GetDescriptorRequest) (*angzarrpb.ComponentDescriptor, error) {
	desc := h.router.Descriptor()
	return &desc, nil
}

// Prepare declares which destination aggregates this saga needs. Falls
// back to the router's own registered prepare callbacks when no override
// is set.
func (h *SagaHandler) Prepare(_ context.Context, req *angzarrpb.SagaPrepareRequest) (*angzarrpb.SagaPrepareResponse, error) {
	if h.prepare != nil {
		return &angzarrpb.SagaPrepareResponse{Destinations: h.prepare(req.GetSource())}, nil
	}
	return &angzarrpb.SagaPrepareResponse{Destinations: h.router.PrepareDestinations(req.GetSource())}, nil
}

// Execute produces commands given source events and destination state.
func (h *SagaHandler) Execute(_ context.Context, req *angzarrpb.SagaExecuteRequest) (*angzarrpb.SagaResponse, error) {
	if h.execute != nil {
		return &angzarrpb.SagaResponse{Commands: h.execute(req.GetSource(), req.GetDestinations())}, nil
	}
	destinations := DestinationsMap(req.GetDestinations())
	return &angzarrpb.SagaResponse{Commands: h.router.Dispatch(req.GetSource(), destinations)}, nil
}

// Descriptor returns the saga's component descriptor.
func (h *SagaHandler) Descriptor() angzarrpb.ComponentDescriptor {
	return h.router.Descriptor()
}

// RunSagaServer starts a gRPC server for a saga.
func RunSagaServer(cfg ServerConfig, handler *SagaHandler) error {
	return RunServer(cfg, func(s *grpc.Server) {
		angzarrpb.RegisterSagaServer(s, handler)
	})
}
