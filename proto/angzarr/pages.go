package angzarr

import (
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// PayloadReference points at an off-heap event payload. Opaque to the
// core — whether handlers ever see an external-only page is left
// unresolved; this core's resolution is to skip it (see
// StateRouter.Fold and EventRouter.Dispatch).
type PayloadReference struct {
	Uri         string
	ContentType string
}

// isEventPageSequence is the oneof marker interface for EventPage.Sequence,
// following the same pattern protoc-gen-go emits for oneof fields.
type isEventPageSequence interface {
	isEventPageSequence()
}

// EventPageNum is the concrete sequence-number oneof variant.
type EventPageNum struct {
	Num uint32
}

func (*EventPageNum) isEventPageSequence() {}

// EventPage is a sequence-stamped event payload. Event and External are
// mutually exclusive; External is opaque to the core.
type EventPage struct {
	Sequence  isEventPageSequence
	Event     *anypb.Any
	External  *PayloadReference
	CreatedAt *timestamppb.Timestamp
}

func (p *EventPage) GetSequence() uint32 {
	if p == nil {
		return 0
	}
	if n, ok := p.Sequence.(*EventPageNum); ok {
		return n.Num
	}
	return 0
}

func (p *EventPage) GetEvent() *anypb.Any {
	if p == nil {
		return nil
	}
	return p.Event
}

func (p *EventPage) GetExternal() *PayloadReference {
	if p == nil {
		return nil
	}
	return p.External
}

func (p *EventPage) GetCreatedAt() *timestamppb.Timestamp {
	if p == nil {
		return nil
	}
	return p.CreatedAt
}

// MergeStrategy controls how a CommandPage is reconciled against a
// concurrent predecessor. The core records it on emission and surfaces it
// to transport/server components; it does not enforce merge logic itself.
type MergeStrategy int32

const (
	MergeStrategyStrict MergeStrategy = iota
	MergeStrategyCommutative
)

func (m MergeStrategy) String() string {
	if m == MergeStrategyCommutative {
		return "COMMUTATIVE"
	}
	return "STRICT"
}

// CommandPage is a sequence-stamped command payload.
type CommandPage struct {
	Sequence      uint32
	Command       *anypb.Any
	MergeStrategy MergeStrategy
}

func (p *CommandPage) GetSequence() uint32 {
	if p == nil {
		return 0
	}
	return p.Sequence
}

func (p *CommandPage) GetCommand() *anypb.Any {
	if p == nil {
		return nil
	}
	return p.Command
}

func (p *CommandPage) GetMergeStrategy() MergeStrategy {
	if p == nil {
		return MergeStrategyStrict
	}
	return p.MergeStrategy
}
