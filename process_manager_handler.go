package angzarr

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/anypb"

	angzarrpb "angzarr/proto/angzarr"
)

// PMPrepareFunc examines the triggering event book and the process
// manager's own state, returning additional destination covers needed
// before Handle runs.
type PMPrepareFunc func(trigger *angzarrpb.EventBook, processState *angzarrpb.EventBook) []*angzarrpb.Cover

// PMHandleFunc processes trigger + process state + destinations and
// returns commands to issue plus process-local events to persist.
type PMHandleFunc func(trigger *angzarrpb.EventBook, processState *angzarrpb.EventBook, destinations []*angzarrpb.EventBook) ([]*angzarrpb.CommandBook, *angzarrpb.EventBook)

// ProcessManagerHandler implements the gRPC ProcessManager service: a
// stateful coordinator across multiple aggregates, keyed by correlation_id
// Its subscription table is an EventRouter in
// correlation-required mode purely for descriptor/topology purposes —
// trigger dispatch itself is left to handleFn, since a process manager's
// own event-sourced state (processState) must be threaded through every
// decision, which a stateless EventRouter.Dispatch can't express.
type ProcessManagerHandler struct {
	angzarrpb.UnimplementedProcessManagerServer
	router    *EventRouter
	prepareFn PMPrepareFunc
	handleFn  PMHandleFunc
}

// NewProcessManagerHandler creates a process manager handler named name,
// subscribed to inputDomain.
func NewProcessManagerHandler(name, inputDomain string) *ProcessManagerHandler {
	return &ProcessManagerHandler{router: NewEventRouter(name, inputDomain).RequireCorrelation()}
}

// ListenTo subscribes to additional event types from domain.
func (h *ProcessManagerHandler) ListenTo(domain string, eventTypes ...string) *ProcessManagerHandler {
	h.router.Domain(domain)
	for _, t := range eventTypes {
		h.router.On(t, func(*angzarrpb.Cover, *anypb.Any, map[string]*angzarrpb.EventBook) []*angzarrpb.CommandBook { return nil })
	}
	return h
}

// WithPrepare sets the prepare callback.
func (h *ProcessManagerHandler) WithPrepare(fn PMPrepareFunc) *ProcessManagerHandler {
	h.prepareFn = fn
	return h
}

// WithHandle sets the handle callback.
func (h *ProcessManagerHandler) WithHandle(fn PMHandleFunc) *ProcessManagerHandler {
	h.handleFn = fn
	return h
}

// GetDescriptor returns the component descriptor.
func (h *ProcessManagerHandler) GetDescriptor(_ context.Context, _ *angzarrpb.GetDescriptorRequest) (*angzarrpb.ComponentDescriptor, error) {
	desc := h.router.Descriptor()
	return &desc, nil
}

// Prepare declares additional destinations needed beyond the trigger.
func (h *ProcessManagerHandler) Prepare(_ context.Context, req *angzarrpb.ProcessManagerPrepareRequest) (*angzarrpb.ProcessManagerPrepareResponse, error) {
	if h.prepareFn != nil {
		return &angzarrpb.ProcessManagerPrepareResponse{
			Destinations: h.prepareFn(req.GetTrigger(), req.GetProcessState()),
		}, nil
	}
	return &angzarrpb.ProcessManagerPrepareResponse{}, nil
}

// Handle processes trigger + process state + destinations.
func (h *ProcessManagerHandler) Handle(_ context.Context, req *angzarrpb.ProcessManagerHandleRequest) (*angzarrpb.ProcessManagerHandleResponse, error) {
	if h.handleFn != nil {
		commands, events := h.handleFn(req.GetTrigger(), req.GetProcessState(), req.GetDestinations())
		return &angzarrpb.ProcessManagerHandleResponse{Commands: commands, ProcessEvents: events}, nil
	}
	return &angzarrpb.ProcessManagerHandleResponse{}, nil
}

// Descriptor builds a component descriptor from registered inputs.
func (h *ProcessManagerHandler) Descriptor() angzarrpb.ComponentDescriptor {
	return h.router.Descriptor()
}

// RunProcessManagerServer starts a gRPC server for a process manager.
func RunProcessManagerServer(cfg ServerConfig, handler *ProcessManagerHandler) error {
	return RunServer(cfg, func(s *grpc.Server) {
		angzarrpb.RegisterProcessManagerServer(s, handler)
	})
}
