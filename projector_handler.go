package angzarr

import (
	"context"

	"google.golang.org/grpc"

	angzarrpb "angzarr/proto/angzarr"
)

// ProjectorHandleFunc processes an EventBook and returns a read-model
// Projection. Projection sinks (where it's written) are out of scope for
// this package.
type ProjectorHandleFunc func(book *angzarrpb.EventBook) (*angzarrpb.Projection, error)

// ProjectorHandler implements the gRPC Projector service.
type ProjectorHandler struct {
	angzarrpb.UnimplementedProjectorServer
	name     string
	domains  []string
	handleFn ProjectorHandleFunc
}

// NewProjectorHandler creates a projector handler named name, subscribed
// to domains.
func NewProjectorHandler(name string, domains ...string) *ProjectorHandler {
	return &ProjectorHandler{name: name, domains: domains}
}

// WithHandle sets the event handling callback.
func (h *ProjectorHandler) WithHandle(fn ProjectorHandleFunc) *ProjectorHandler {
	h.handleFn = fn
	return h
}

// GetDescriptor returns the component descriptor.
func (h *ProjectorHandler) GetDescriptor(_ context.Context, _ *angzarrpb.GetDescriptorRequest) (*angzarrpb.ComponentDescriptor, error) {
	desc := h.Descriptor()
	return &desc, nil
}

// Handle processes an EventBook and returns a Projection.
func (h *ProjectorHandler) Handle(_ context.Context, book *angzarrpb.EventBook) (*angzarrpb.Projection, error) {
	if h.handleFn != nil {
		return h.handleFn(book)
	}
	return &angzarrpb.Projection{}, nil
}

// Descriptor builds a component descriptor from registered domains.
func (h *ProjectorHandler) Descriptor() angzarrpb.ComponentDescriptor {
	inputs := make([]*angzarrpb.Subscription, len(h.domains))
	for i, d := range h.domains {
		inputs[i] = &angzarrpb.Subscription{Domain: d}
	}
	return angzarrpb.ComponentDescriptor{
		Name:          h.name,
		ComponentType: ComponentProjector,
		Inputs:        inputs,
	}
}

// RunProjectorServer starts a gRPC server for a projector.
func RunProjectorServer(cfg ServerConfig, handler *ProjectorHandler) error {
	return RunServer(cfg, func(s *grpc.Server) {
		angzarrpb.RegisterProjectorServer(s, handler)
	})
}
