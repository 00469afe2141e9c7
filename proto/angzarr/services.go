package angzarr

import (
	"context"

	"google.golang.org/grpc"
)

// The four service interfaces below are the transport contract the core
// merely consumes — their Handle/Prepare/Execute method shapes, not a
// generated wire codec. Each is paired with an
// Unimplemented*Server embed and a Register*Server helper built directly
// on grpc.ServiceDesc, the same mechanism protoc-gen-go-grpc emits,
// without requiring a protoc run (see DESIGN.md).

// AggregateServer is implemented by every aggregate's gRPC handler.
type AggregateServer interface {
	GetDescriptor(context.Context, *GetDescriptorRequest) (*ComponentDescriptor, error)
	Handle(context.Context, *ContextualCommand) (*BusinessResponse, error)
}

type UnimplementedAggregateServer struct{}

func (UnimplementedAggregateServer) GetDescriptor(context.Context, *GetDescriptorRequest) (*ComponentDescriptor, error) {
	return nil, errUnimplemented("GetDescriptor")
}
func (UnimplementedAggregateServer) Handle(context.Context, *ContextualCommand) (*BusinessResponse, error) {
	return nil, errUnimplemented("Handle")
}

func RegisterAggregateServer(s *grpc.Server, srv AggregateServer) {
	s.RegisterService(&aggregateServiceDesc, srv)
}

var aggregateServiceDesc = grpc.ServiceDesc{
	ServiceName: "angzarr.Aggregate",
	HandlerType: (*AggregateServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetDescriptor", Handler: unaryAggregateGetDescriptor},
		{MethodName: "Handle", Handler: unaryAggregateHandle},
	},
}

func unaryAggregateGetDescriptor(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDescriptorRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AggregateServer).GetDescriptor(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/angzarr.Aggregate/GetDescriptor"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AggregateServer).GetDescriptor(ctx, req.(*GetDescriptorRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func unaryAggregateHandle(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ContextualCommand)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AggregateServer).Handle(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/angzarr.Aggregate/Handle"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AggregateServer).Handle(ctx, req.(*ContextualCommand))
	}
	return interceptor(ctx, in, info, handler)
}

// SagaPrepareRequest/Response implement the saga two-phase protocol's
// first phase: declare destination covers needed for Execute.
type SagaPrepareRequest struct{ Source *EventBook }

func (r *SagaPrepareRequest) GetSource() *EventBook {
	if r == nil {
		return nil
	}
	return r.Source
}

type SagaPrepareResponse struct{ Destinations []*Cover }

type SagaExecuteRequest struct {
	Source       *EventBook
	Destinations []*EventBook
}

func (r *SagaExecuteRequest) GetSource() *EventBook {
	if r == nil {
		return nil
	}
	return r.Source
}
func (r *SagaExecuteRequest) GetDestinations() []*EventBook {
	if r == nil {
		return nil
	}
	return r.Destinations
}

type SagaResponse struct{ Commands []*CommandBook }

// SagaServer is implemented by every saga's gRPC handler.
type SagaServer interface {
	GetDescriptor(context.Context, *GetDescriptorRequest) (*ComponentDescriptor, error)
	Prepare(context.Context, *SagaPrepareRequest) (*SagaPrepareResponse, error)
	Execute(context.Context, *SagaExecuteRequest) (*SagaResponse, error)
}

type UnimplementedSagaServer struct{}

func (UnimplementedSagaServer) GetDescriptor(context.Context, *GetDescriptorRequest) (*ComponentDescriptor, error) {
	return nil, errUnimplemented("GetDescriptor")
}
func (UnimplementedSagaServer) Prepare(context.Context, *SagaPrepareRequest) (*SagaPrepareResponse, error) {
	return nil, errUnimplemented("Prepare")
}
func (UnimplementedSagaServer) Execute(context.Context, *SagaExecuteRequest) (*SagaResponse, error) {
	return nil, errUnimplemented("Execute")
}

func RegisterSagaServer(s *grpc.Server, srv SagaServer) {
	s.RegisterService(&sagaServiceDesc, srv)
}

var sagaServiceDesc = grpc.ServiceDesc{
	ServiceName: "angzarr.Saga",
	HandlerType: (*SagaServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetDescriptor", Handler: unarySagaGetDescriptor},
		{MethodName: "Prepare", Handler: unarySagaPrepare},
		{MethodName: "Execute", Handler: unarySagaExecute},
	},
}

func unarySagaGetDescriptor(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDescriptorRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SagaServer).GetDescriptor(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/angzarr.Saga/GetDescriptor"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SagaServer).GetDescriptor(ctx, req.(*GetDescriptorRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func unarySagaPrepare(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SagaPrepareRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SagaServer).Prepare(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/angzarr.Saga/Prepare"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SagaServer).Prepare(ctx, req.(*SagaPrepareRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func unarySagaExecute(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SagaExecuteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SagaServer).Execute(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/angzarr.Saga/Execute"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SagaServer).Execute(ctx, req.(*SagaExecuteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ProcessManagerPrepareRequest/Response and HandleRequest/Response
// implement the process manager's two-phase protocol: Prepare declares
// additional destinations beyond the trigger, Handle produces commands
// and process-local events.
type ProcessManagerPrepareRequest struct {
	Trigger      *EventBook
	ProcessState *EventBook
}

func (r *ProcessManagerPrepareRequest) GetTrigger() *EventBook {
	if r == nil {
		return nil
	}
	return r.Trigger
}
func (r *ProcessManagerPrepareRequest) GetProcessState() *EventBook {
	if r == nil {
		return nil
	}
	return r.ProcessState
}

type ProcessManagerPrepareResponse struct{ Destinations []*Cover }

type ProcessManagerHandleRequest struct {
	Trigger      *EventBook
	ProcessState *EventBook
	Destinations []*EventBook
}

func (r *ProcessManagerHandleRequest) GetTrigger() *EventBook {
	if r == nil {
		return nil
	}
	return r.Trigger
}
func (r *ProcessManagerHandleRequest) GetProcessState() *EventBook {
	if r == nil {
		return nil
	}
	return r.ProcessState
}
func (r *ProcessManagerHandleRequest) GetDestinations() []*EventBook {
	if r == nil {
		return nil
	}
	return r.Destinations
}

type ProcessManagerHandleResponse struct {
	Commands      []*CommandBook
	ProcessEvents *EventBook
}

// ProcessManagerServer is implemented by every process manager's gRPC
// handler.
type ProcessManagerServer interface {
	GetDescriptor(context.Context, *GetDescriptorRequest) (*ComponentDescriptor, error)
	Prepare(context.Context, *ProcessManagerPrepareRequest) (*ProcessManagerPrepareResponse, error)
	Handle(context.Context, *ProcessManagerHandleRequest) (*ProcessManagerHandleResponse, error)
}

type UnimplementedProcessManagerServer struct{}

func (UnimplementedProcessManagerServer) GetDescriptor(context.Context, *GetDescriptorRequest) (*ComponentDescriptor, error) {
	return nil, errUnimplemented("GetDescriptor")
}
func (UnimplementedProcessManagerServer) Prepare(context.Context, *ProcessManagerPrepareRequest) (*ProcessManagerPrepareResponse, error) {
	return nil, errUnimplemented("Prepare")
}
func (UnimplementedProcessManagerServer) Handle(context.Context, *ProcessManagerHandleRequest) (*ProcessManagerHandleResponse, error) {
	return nil, errUnimplemented("Handle")
}

func RegisterProcessManagerServer(s *grpc.Server, srv ProcessManagerServer) {
	s.RegisterService(&processManagerServiceDesc, srv)
}

var processManagerServiceDesc = grpc.ServiceDesc{
	ServiceName: "angzarr.ProcessManager",
	HandlerType: (*ProcessManagerServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetDescriptor", Handler: unaryPMGetDescriptor},
		{MethodName: "Prepare", Handler: unaryPMPrepare},
		{MethodName: "Handle", Handler: unaryPMHandle},
	},
}

func unaryPMGetDescriptor(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDescriptorRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProcessManagerServer).GetDescriptor(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/angzarr.ProcessManager/GetDescriptor"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProcessManagerServer).GetDescriptor(ctx, req.(*GetDescriptorRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func unaryPMPrepare(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessManagerPrepareRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProcessManagerServer).Prepare(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/angzarr.ProcessManager/Prepare"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProcessManagerServer).Prepare(ctx, req.(*ProcessManagerPrepareRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func unaryPMHandle(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessManagerHandleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProcessManagerServer).Handle(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/angzarr.ProcessManager/Handle"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProcessManagerServer).Handle(ctx, req.(*ProcessManagerHandleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ProjectorServer is implemented by every projector's gRPC handler.
type ProjectorServer interface {
	GetDescriptor(context.Context, *GetDescriptorRequest) (*ComponentDescriptor, error)
	Handle(context.Context, *EventBook) (*Projection, error)
}

type UnimplementedProjectorServer struct{}

func (UnimplementedProjectorServer) GetDescriptor(context.Context, *GetDescriptorRequest) (*ComponentDescriptor, error) {
	return nil, errUnimplemented("GetDescriptor")
}
func (UnimplementedProjectorServer) Handle(context.Context, *EventBook) (*Projection, error) {
	return nil, errUnimplemented("Handle")
}

func RegisterProjectorServer(s *grpc.Server, srv ProjectorServer) {
	s.RegisterService(&projectorServiceDesc, srv)
}

var projectorServiceDesc = grpc.ServiceDesc{
	ServiceName: "angzarr.Projector",
	HandlerType: (*ProjectorServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetDescriptor", Handler: unaryProjectorGetDescriptor},
		{MethodName: "Handle", Handler: unaryProjectorHandle},
	},
}

func unaryProjectorGetDescriptor(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDescriptorRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProjectorServer).GetDescriptor(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/angzarr.Projector/GetDescriptor"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProjectorServer).GetDescriptor(ctx, req.(*GetDescriptorRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func unaryProjectorHandle(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EventBook)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProjectorServer).Handle(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/angzarr.Projector/Handle"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ProjectorServer).Handle(ctx, req.(*EventBook))
	}
	return interceptor(ctx, in, info, handler)
}
