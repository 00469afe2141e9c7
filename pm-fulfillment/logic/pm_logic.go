// Package logic implements the order-fulfillment process manager: a
// fan-in coordinator that tracks two prerequisites (payment, inventory
// reservation) and issues a DispatchShipment command once both are
// complete.
//
// Prerequisite and dispatch markers are stored as JSON-encoded
// anypb.Any values in process manager state for replay, mirroring how
// this module's aggregates store their own events.
package logic

import (
	"encoding/hex"

	"angzarr"
	angzarrpb "angzarr/proto/angzarr"
	"angzarr/proto/examples"
)

const (
	Name          = "pm-fulfillment"
	InputDomain   = "order"
	FulfillDomain = "fulfillment"

	prereqPayment   = "payment"
	prereqInventory = "inventory"

	dispatchedMarker = "__dispatched__"
)

var allPrerequisites = []string{prereqPayment, prereqInventory}

// prerequisiteCompleted is recorded in process state when a prerequisite
// is satisfied.
type prerequisiteCompleted struct {
	Prerequisite string   `json:"prerequisite"`
	Completed    []string `json:"completed"`
	Remaining    []string `json:"remaining"`
}

// dispatchIssued is recorded in process state once both prerequisites
// are met, guarding against re-dispatch on replay.
type dispatchIssued struct {
	Completed []string `json:"completed"`
}

func contains(slice []string, val string) bool {
	for _, s := range slice {
		if s == val {
			return true
		}
	}
	return false
}

func difference(all, completed []string) []string {
	var result []string
	for _, a := range all {
		if !contains(completed, a) {
			result = append(result, a)
		}
	}
	return result
}

func copyStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func allComplete(completed []string) bool {
	for _, p := range allPrerequisites {
		if !contains(completed, p) {
			return false
		}
	}
	return true
}

func alreadyDispatched(completed []string) bool {
	return contains(completed, dispatchedMarker)
}

// classifyEvent maps a trigger event's type-suffix to the prerequisite it
// satisfies, or "" if the event isn't a prerequisite.
func classifyEvent(event *angzarrpb.EventPage) string {
	suffix := angzarr.TypeSuffix(event.GetEvent().GetTypeUrl())
	switch suffix {
	case "PaymentSubmitted":
		return prereqPayment
	case "StockReserved":
		return prereqInventory
	default:
		return ""
	}
}

// extractCompleted replays process state pages and returns the set of
// completed prerequisite names, including dispatchedMarker if dispatch
// already occurred.
func extractCompleted(processState *angzarrpb.EventBook) []string {
	var completed []string
	for _, page := range processState.GetPages() {
		event := page.GetEvent()
		if event == nil {
			continue
		}
		switch angzarr.TypeSuffix(event.TypeUrl) {
		case "PrerequisiteCompleted":
			var evt prerequisiteCompleted
			if angzarr.UnpackAny(event, &evt) != nil {
				continue
			}
			if !contains(completed, evt.Prerequisite) {
				completed = append(completed, evt.Prerequisite)
			}
		case "DispatchIssued":
			if !contains(completed, dispatchedMarker) {
				completed = append(completed, dispatchedMarker)
			}
		}
	}
	return completed
}

// Handle is the PMHandleFunc for the order-fulfillment process manager.
//
// It classifies the triggering event, replays process state to find
// which prerequisites are already satisfied, and emits a DispatchShipment
// command once both prerequisites are complete. A DispatchIssued marker
// already in state prevents a duplicate dispatch on replay.
func Handle(trigger *angzarrpb.EventBook, processState *angzarrpb.EventBook, _ []*angzarrpb.EventBook) ([]*angzarrpb.CommandBook, *angzarrpb.EventBook) {
	correlationID := trigger.GetCover().GetCorrelationId()
	if correlationID == "" {
		return nil, nil
	}

	completed := extractCompleted(processState)
	if alreadyDispatched(completed) {
		return nil, nil
	}

	var newPrereq string
	for _, page := range trigger.GetPages() {
		if page.GetEvent() == nil {
			continue
		}
		prereq := classifyEvent(page)
		if prereq == "" || contains(completed, prereq) {
			continue
		}
		completed = append(completed, prereq)
		newPrereq = prereq
	}
	if newPrereq == "" {
		return nil, nil
	}

	pmRoot := angzarr.ToProtoUUID(angzarr.ComputeRoot(Name, correlationID))
	nextSeq := angzarr.NextSequence(processState)

	remaining := difference(allPrerequisites, completed)
	prereqEvents := []angzarr.NamedEvent{{
		Suffix: "PrerequisiteCompleted",
		Payload: prerequisiteCompleted{
			Prerequisite: newPrereq,
			Completed:    copyStrings(completed),
			Remaining:    remaining,
		},
	}}

	var commands []*angzarrpb.CommandBook
	if allComplete(completed) {
		prereqEvents = append(prereqEvents, angzarr.NamedEvent{
			Suffix:  "DispatchIssued",
			Payload: dispatchIssued{Completed: copyStrings(completed)},
		})

		orderID := rootIDAsString(trigger.GetCover().GetRoot())
		shipAny, err := angzarr.PackAny("DispatchShipment", examples.DispatchShipment{
			Carrier: "auto-" + orderID,
			OrderId: orderID,
		})
		if err == nil {
			commands = append(commands, &angzarrpb.CommandBook{
				Cover: &angzarrpb.Cover{
					Domain:        FulfillDomain,
					Root:          trigger.GetCover().GetRoot(),
					CorrelationId: correlationID,
				},
				Pages: []*angzarrpb.CommandPage{{Command: shipAny}},
			})
		}
	}

	pmBook, err := angzarr.PackEvents(&angzarrpb.Cover{
		Domain:        Name,
		Root:          pmRoot,
		CorrelationId: correlationID,
	}, prereqEvents, nextSeq)
	if err != nil {
		return nil, nil
	}
	return commands, pmBook
}

func rootIDAsString(root *angzarrpb.UUID) string {
	if root == nil {
		return "unknown"
	}
	id, err := angzarr.FromProtoUUID(root)
	if err != nil {
		return "unknown"
	}
	return hex.EncodeToString(id[:])
}

// NewProcessManagerHandler builds the fulfillment PM's gRPC handler,
// subscribed to payment and inventory reservation events across both
// input domains.
func NewProcessManagerHandler() *angzarr.ProcessManagerHandler {
	h := angzarr.NewProcessManagerHandler(Name, InputDomain)
	h.ListenTo(InputDomain, "PaymentSubmitted")
	h.ListenTo("inventory", "StockReserved")
	h.WithHandle(Handle)
	return h
}
