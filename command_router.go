package angzarr

import (
	"fmt"

	"google.golang.org/protobuf/types/known/anypb"

	angzarrpb "angzarr/proto/angzarr"
)

// Error message constants used in the errors Dispatch returns.
const (
	ErrMsgUnknownCommand = "unknown command type"
	ErrMsgNoCommandPages = "no command pages"
)

// CommandHandler rebuilds nothing itself — it receives the already-built
// state, the command's raw Any, the originating CommandBook (for cover
// metadata), and the sequence its first emitted event must carry.
type CommandHandler[S any] func(cb *angzarrpb.CommandBook, cmd *anypb.Any, state *S, nextSeq uint32) (*angzarrpb.EventBook, error)

// RejectionHandler reacts to a rejected downstream command, given the
// rebuilt state of the issuing aggregate. It may emit compensating
// events, a notification, or both.
type RejectionHandler[S any] func(rejection *angzarrpb.RejectionNotification, state *S) (*angzarrpb.EventBook, *angzarrpb.Notification, error)

type commandEntry[S any] struct {
	suffix  string
	handler CommandHandler[S]
}

type rejectionKey struct {
	domain string
	suffix string
}

// CommandRouter orchestrates a single command dispatch: load → rebuild →
// guard → handle → sequence → emit, plus the rejection pipeline.
type CommandRouter[S any] struct {
	domain      string
	stateRouter *StateRouter[S]
	entries     []commandEntry[S]
	index       map[string]int
	rejections  map[rejectionKey]RejectionHandler[S]
}

// NewCommandRouter creates a command router for domain, rebuilding state
// via stateRouter.
func NewCommandRouter[S any](domain string, stateRouter *StateRouter[S]) *CommandRouter[S] {
	return &CommandRouter[S]{
		domain:      domain,
		stateRouter: stateRouter,
		index:       make(map[string]int),
		rejections:  make(map[rejectionKey]RejectionHandler[S]),
	}
}

// On registers a handler for a command type-suffix. Idempotent: a
// repeated suffix replaces the earlier handler.
func (r *CommandRouter[S]) On(suffix string, handler CommandHandler[S]) *CommandRouter[S] {
	if i, ok := r.index[suffix]; ok {
		r.entries[i].handler = handler
		return r
	}
	r.index[suffix] = len(r.entries)
	r.entries = append(r.entries, commandEntry[S]{suffix, handler})
	return r
}

// OnRejected registers a compensation handler invoked when a command of
// type sourceCommandSuffix was rejected downstream and the rejection's
// source aggregate (the aggregate whose event triggered that command) is
// in sourceDomain.
func (r *CommandRouter[S]) OnRejected(sourceDomain, sourceCommandSuffix string, handler RejectionHandler[S]) *CommandRouter[S] {
	r.rejections[rejectionKey{sourceDomain, sourceCommandSuffix}] = handler
	return r
}

// Dispatch runs the eight-step command dispatch sequence.
func (r *CommandRouter[S]) Dispatch(ctx *angzarrpb.ContextualCommand) (*angzarrpb.BusinessResponse, error) {
	cmdBook := ctx.GetCommand()
	priorEvents := ctx.GetEvents()

	// Step 1: command selection (fatal on malformed shape — programmer error).
	if cmdBook == nil || len(cmdBook.Pages) == 0 {
		return nil, fmt.Errorf("%s", ErrMsgNoCommandPages)
	}
	cmdAny := cmdBook.Pages[0].GetCommand()
	if cmdAny == nil {
		return nil, fmt.Errorf("%s", ErrMsgNoCommandPages)
	}

	// Step 2: rejection routing.
	if rejection, ok := UnwrapRejection(cmdAny); ok {
		return r.dispatchRejection(rejection, priorEvents)
	}

	// Step 3: sequence precondition.
	declaredSeq := cmdBook.Pages[0].GetSequence()
	expectedSeq := NextSequence(priorEvents)
	if declaredSeq != expectedSeq {
		return NewRevocationResponse(fmt.Sprintf(
			"sequence mismatch: command declared %d, expected %d", declaredSeq, expectedSeq)), nil
	}

	// Step 4: state rebuild.
	state := r.stateRouter.Fold(priorEvents)

	// Step 5: handler lookup.
	suffix := TypeSuffix(cmdAny.TypeUrl)
	i, ok := r.index[suffix]
	if !ok {
		return nil, NewInvalidArgument(fmt.Sprintf("%s: %s", ErrMsgUnknownCommand, suffix))
	}

	// Step 6: handler invocation.
	out, err := r.entries[i].handler(cmdBook, cmdAny, &state, expectedSeq)
	if err != nil {
		if ce, ok := err.(*CommandError); ok && ce.Kind == KindCommandRejected {
			return NewRevocationResponse(ce.Message), nil
		}
		return nil, err
	}

	// Step 7: sequence stamping.
	out = restamp(out, cmdBook.Cover, expectedSeq)

	// Step 8: return.
	return NewEventsResponse(out), nil
}

func (r *CommandRouter[S]) dispatchRejection(rejection *angzarrpb.RejectionNotification, priorEvents *angzarrpb.EventBook) (*angzarrpb.BusinessResponse, error) {
	source := rejection.GetSourceAggregate()
	rejectedCmd := rejection.GetRejectedCommand()
	if source == nil || rejectedCmd == nil || len(rejectedCmd.Pages) == 0 || rejectedCmd.Pages[0].GetCommand() == nil {
		return &angzarrpb.BusinessResponse{}, nil
	}
	key := rejectionKey{source.GetDomain(), TypeSuffix(rejectedCmd.Pages[0].GetCommand().TypeUrl)}
	handler, ok := r.rejections[key]
	if !ok {
		return &angzarrpb.BusinessResponse{}, nil
	}

	state := r.stateRouter.Fold(priorEvents)
	events, notification, err := handler(rejection, &state)
	if err != nil {
		return nil, err
	}
	events = restamp(events, eventsCoverOrNil(events, priorEvents), NextSequence(priorEvents))

	switch {
	case events != nil && notification != nil:
		// BusinessResponse is a one-of by construction, so it cannot carry
		// both; events take precedence and the notification is dropped.
		return NewEventsResponse(events), nil
	case events != nil:
		return NewEventsResponse(events), nil
	case notification != nil:
		return NewNotificationResponse(notification), nil
	default:
		return &angzarrpb.BusinessResponse{}, nil
	}
}

func eventsCoverOrNil(events *angzarrpb.EventBook, priorEvents *angzarrpb.EventBook) *angzarrpb.Cover {
	if events != nil && events.Cover != nil {
		return events.Cover
	}
	return priorEvents.GetCover()
}

// restamp verifies out's pages carry strictly increasing sequences
// starting at nextSeq; if not, it rewrites them to contiguous increments,
// preserving the order the handler returned them in.
// The returned book's cover is always set to cover.
func restamp(out *angzarrpb.EventBook, cover *angzarrpb.Cover, nextSeq uint32) *angzarrpb.EventBook {
	if out == nil {
		out = &angzarrpb.EventBook{}
	}
	out.Cover = cover

	want := nextSeq
	ok := true
	for _, page := range out.Pages {
		if page.GetSequence() != want {
			ok = false
			break
		}
		want++
	}
	if !ok {
		for idx, page := range out.Pages {
			page.Sequence = &angzarrpb.EventPageNum{Num: nextSeq + uint32(idx)}
		}
	}
	out.NextSequence = nextSeq + uint32(len(out.Pages))
	return out
}

// Domain returns the aggregate domain this router handles.
func (r *CommandRouter[S]) Domain() string { return r.domain }

// Types returns registered command type-suffixes, in registration order.
func (r *CommandRouter[S]) Types() []string {
	result := make([]string, len(r.entries))
	for i, e := range r.entries {
		result[i] = e.suffix
	}
	return result
}

// Descriptor builds a component descriptor from registered handlers.
func (r *CommandRouter[S]) Descriptor() angzarrpb.ComponentDescriptor {
	return angzarrpb.ComponentDescriptor{
		Name:          r.domain,
		ComponentType: ComponentAggregate,
		Inputs: []*angzarrpb.Subscription{
			{Domain: r.domain, EventTypes: r.Types()},
		},
	}
}
