package angzarr

import (
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// isBusinessResponseResult is the oneof marker for BusinessResponse.Result.
type isBusinessResponseResult interface {
	isBusinessResponseResult()
}

type BusinessResponseEvents struct{ Events *EventBook }
type BusinessResponseRevocation struct{ Revocation *RevocationResponse }
type BusinessResponseNotification struct{ Notification *Notification }

func (*BusinessResponseEvents) isBusinessResponseResult()       {}
func (*BusinessResponseRevocation) isBusinessResponseResult()   {}
func (*BusinessResponseNotification) isBusinessResponseResult() {}

// BusinessResponse is the result of CommandRouter.Dispatch, discriminated
// by which field of Result is populated.
type BusinessResponse struct {
	Result isBusinessResponseResult
}

func (r *BusinessResponse) GetEvents() *EventBook {
	if r == nil {
		return nil
	}
	if e, ok := r.Result.(*BusinessResponseEvents); ok {
		return e.Events
	}
	return nil
}

func (r *BusinessResponse) GetRevocation() *RevocationResponse {
	if r == nil {
		return nil
	}
	if e, ok := r.Result.(*BusinessResponseRevocation); ok {
		return e.Revocation
	}
	return nil
}

func (r *BusinessResponse) GetNotification() *Notification {
	if r == nil {
		return nil
	}
	if e, ok := r.Result.(*BusinessResponseNotification); ok {
		return e.Notification
	}
	return nil
}

// NewEventsResponse wraps an EventBook as a BusinessResponse.
func NewEventsResponse(events *EventBook) *BusinessResponse {
	return &BusinessResponse{Result: &BusinessResponseEvents{Events: events}}
}

// NewRevocationResponse wraps a rejection reason as a BusinessResponse.
func NewRevocationResponse(reason string) *BusinessResponse {
	return &BusinessResponse{Result: &BusinessResponseRevocation{Revocation: &RevocationResponse{Reason: reason}}}
}

// NewNotificationResponse wraps a Notification (e.g. compensation ack) as
// a BusinessResponse.
func NewNotificationResponse(n *Notification) *BusinessResponse {
	return &BusinessResponse{Result: &BusinessResponseNotification{Notification: n}}
}

// RevocationResponse carries a rejection reason back to the caller.
type RevocationResponse struct {
	Reason string
}

func (r *RevocationResponse) GetReason() string {
	if r == nil {
		return ""
	}
	return r.Reason
}

// IssuerType names the kind of component that issued a rejected command.
type IssuerType int32

const (
	IssuerUnspecified IssuerType = iota
	IssuerSaga
	IssuerProcessManager
	IssuerAggregate
)

func (t IssuerType) String() string {
	switch t {
	case IssuerSaga:
		return "saga"
	case IssuerProcessManager:
		return "process_manager"
	case IssuerAggregate:
		return "aggregate"
	default:
		return "unspecified"
	}
}

// RejectionNotification is the payload carried by a Notification when a
// downstream command is rejected. SourceAggregate/SourceEventSequence
// identify the event that triggered the rejected command, so the
// original issuer can build a CompensationContext.
type RejectionNotification struct {
	RejectionReason     string
	RejectedCommand     *CommandBook
	IssuerName          string
	IssuerType          IssuerType
	SourceAggregate     *Cover
	SourceEventSequence uint32
}

func (n *RejectionNotification) GetRejectionReason() string {
	if n == nil {
		return ""
	}
	return n.RejectionReason
}

func (n *RejectionNotification) GetRejectedCommand() *CommandBook {
	if n == nil {
		return nil
	}
	return n.RejectedCommand
}

func (n *RejectionNotification) GetSourceAggregate() *Cover {
	if n == nil {
		return nil
	}
	return n.SourceAggregate
}

// Notification is an out-of-band message attached to a cover, e.g. a
// rejection notice routed back to an issuing saga/process manager.
type Notification struct {
	Cover   *Cover
	SentAt  *timestamppb.Timestamp
	Payload *anypb.Any
}

func (n *Notification) GetCover() *Cover {
	if n == nil {
		return nil
	}
	return n.Cover
}

func (n *Notification) GetPayload() *anypb.Any {
	if n == nil {
		return nil
	}
	return n.Payload
}
