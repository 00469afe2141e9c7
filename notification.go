package angzarr

import (
	"google.golang.org/protobuf/types/known/anypb"

	angzarrpb "angzarr/proto/angzarr"
)

// UnwrapRejection peels a command's Any down to a RejectionNotification,
// if that's what it actually carries: a Notification, whose own Payload
// is in turn a RejectionNotification. Any failure at either level — wrong
// suffix, absent payload, bad JSON — is reported as ok == false rather
// than an error, so callers can treat "not a rejection" as the ordinary
// case it is.
func UnwrapRejection(cmdAny *anypb.Any) (*angzarrpb.RejectionNotification, bool) {
	if cmdAny == nil || TypeSuffix(cmdAny.TypeUrl) != "Notification" {
		return nil, false
	}
	var notif angzarrpb.Notification
	if err := UnpackAny(cmdAny, &notif); err != nil {
		return nil, false
	}
	if notif.Payload == nil || TypeSuffix(notif.Payload.TypeUrl) != "RejectionNotification" {
		return nil, false
	}
	var rejection angzarrpb.RejectionNotification
	if err := UnpackAny(notif.Payload, &rejection); err != nil {
		return nil, false
	}
	return &rejection, true
}
