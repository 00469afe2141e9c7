package angzarr

import angzarrpb "angzarr/proto/angzarr"

// CompensationContext gives a rejection handler structured access to why a
// command it issued was rejected, without re-parsing the notification
// payload itself. It is constructed from a RejectionNotification (for
// example one returned by UnwrapRejection) and checks the fields it needs.
type CompensationContext struct {
	notification *angzarrpb.RejectionNotification
}

// NewCompensationContext wraps a RejectionNotification. Returns an error
// if rejection is nil or missing the fields a compensation handler needs
// to act (the rejected command and its issuing aggregate).
func NewCompensationContext(rejection *angzarrpb.RejectionNotification) (*CompensationContext, error) {
	if rejection == nil {
		return nil, NewInvalidArgument("compensation context: nil rejection notification")
	}
	if rejection.GetRejectedCommand() == nil {
		return nil, NewInvalidArgument("compensation context: rejection notification has no rejected command")
	}
	if rejection.GetSourceAggregate() == nil {
		return nil, NewInvalidArgument("compensation context: rejection notification has no source aggregate")
	}
	return &CompensationContext{notification: rejection}, nil
}

// RejectionReason is the human-readable reason the downstream handler
// gave for rejecting the command.
func (c *CompensationContext) RejectionReason() string {
	return c.notification.GetRejectionReason()
}

// RejectedCommand is the command that was rejected.
func (c *CompensationContext) RejectedCommand() *angzarrpb.CommandBook {
	return c.notification.GetRejectedCommand()
}

// RejectedCommandSuffix is the type-suffix of the rejected command's
// first page, or "" if the command book is empty.
func (c *CompensationContext) RejectedCommandSuffix() string {
	pages := c.RejectedCommand().GetPages()
	if len(pages) == 0 || pages[0].GetCommand() == nil {
		return ""
	}
	return TypeSuffix(pages[0].GetCommand().TypeUrl)
}

// IssuerName is the name of the component that issued the rejected
// command (a saga or process manager instance).
func (c *CompensationContext) IssuerName() string {
	return c.notification.IssuerName
}

// IssuerType classifies the issuing component.
func (c *CompensationContext) IssuerType() angzarrpb.IssuerType {
	return c.notification.IssuerType
}

// SourceAggregate is the cover of the aggregate whose event triggered the
// rejected command — the aggregate a compensation handler's OnRejected
// callback belongs to.
func (c *CompensationContext) SourceAggregate() *angzarrpb.Cover {
	return c.notification.GetSourceAggregate()
}

// SourceEventSequence is the sequence of the event that triggered the
// rejected command, within SourceAggregate's history.
func (c *CompensationContext) SourceEventSequence() uint32 {
	return c.notification.SourceEventSequence
}

// CorrelationId is derived from the rejected command's own cover,
// threading this compensation back to the saga/process manager instance
// that issued it.
func (c *CompensationContext) CorrelationId() string {
	return c.RejectedCommand().GetCover().GetCorrelationId()
}
