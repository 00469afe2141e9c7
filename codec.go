package angzarr

import (
	"encoding/json"

	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	angzarrpb "angzarr/proto/angzarr"
)

// PackAny encodes payload as JSON into an Any whose type_url is
// TypeURL(suffix). This module's own domain types are plain structs, not
// protoc-gen-go output (see DESIGN.md), so payloads ride as JSON under
// Value rather than protobuf wire bytes — the pm-fulfillment process
// manager elsewhere in this module already stores its own internal state the
// same way, as "JSON-encoded anypb.Any values".
func PackAny(suffix string, payload any) (*anypb.Any, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &anypb.Any{TypeUrl: TypeURL(suffix), Value: data}, nil
}

// UnpackAny decodes an Any packed by PackAny into out.
func UnpackAny(a *anypb.Any, out any) error {
	if a == nil {
		return nil
	}
	return json.Unmarshal(a.Value, out)
}

// PackEvent wraps a single JSON-encoded event into a single-page
// EventBook stamped with seq.
func PackEvent(cover *angzarrpb.Cover, suffix string, payload any, seq uint32) (*angzarrpb.EventBook, error) {
	eventAny, err := PackAny(suffix, payload)
	if err != nil {
		return nil, err
	}
	return &angzarrpb.EventBook{
		Cover: cover,
		Pages: []*angzarrpb.EventPage{
			{
				Sequence:  &angzarrpb.EventPageNum{Num: seq},
				Event:     eventAny,
				CreatedAt: timestamppb.Now(),
			},
		},
		NextSequence: seq + 1,
	}, nil
}

// NamedEvent pairs a payload with the type suffix it should be packed
// under, for use with PackEvents.
type NamedEvent struct {
	Suffix  string
	Payload any
}

// PackEvents wraps multiple JSON-encoded events into an EventBook with
// sequential numbering starting at startSeq.
func PackEvents(cover *angzarrpb.Cover, events []NamedEvent, startSeq uint32) (*angzarrpb.EventBook, error) {
	pages := make([]*angzarrpb.EventPage, 0, len(events))
	for i, e := range events {
		eventAny, err := PackAny(e.Suffix, e.Payload)
		if err != nil {
			return nil, err
		}
		pages = append(pages, &angzarrpb.EventPage{
			Sequence:  &angzarrpb.EventPageNum{Num: startSeq + uint32(i)},
			Event:     eventAny,
			CreatedAt: timestamppb.Now(),
		})
	}
	return &angzarrpb.EventBook{
		Cover:        cover,
		Pages:        pages,
		NextSequence: startSeq + uint32(len(events)),
	}, nil
}
