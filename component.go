package angzarr

// Component type names used in ComponentDescriptor.ComponentType.
const (
	ComponentAggregate      = "aggregate"
	ComponentSaga           = "saga"
	ComponentProcessManager = "process_manager"
	ComponentProjector      = "projector"
)
