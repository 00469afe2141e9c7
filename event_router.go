package angzarr

import (
	"google.golang.org/protobuf/types/known/anypb"

	angzarrpb "angzarr/proto/angzarr"
)

// EventHandler reacts to a single event given the cover it arrived under
// and the destination event books its prepare callback asked for (keyed
// by CoverKey), producing zero or more commands to issue elsewhere.
type EventHandler func(cover *angzarrpb.Cover, event *anypb.Any, destinations map[string]*angzarrpb.EventBook) []*angzarrpb.CommandBook

// PrepareHandler examines a single event and returns the destination
// covers its EventHandler intends to address, so the transport can
// prefetch their event books before Dispatch runs.
type PrepareHandler func(cover *angzarrpb.Cover, event *anypb.Any) []*angzarrpb.Cover

type eventEntry struct {
	suffix  string
	handler EventHandler
	prepare PrepareHandler
}

// EventRouter dispatches events from one or more input domains to
// handlers by type-suffix, collecting the commands they produce
// A single router can subscribe to several domains via
// repeated Domain calls; On registers against whichever domain is
// currently in scope.
type EventRouter struct {
	name               string
	componentType      string
	currentDomain      string
	domainOrder        []string
	domainIndex        map[string]map[string]int
	entries            map[string][]eventEntry
	outputDomains      []string
	requireCorrelation bool
}

// NewEventRouter creates an event router named name, initially scoped to
// inputDomain.
func NewEventRouter(name, inputDomain string) *EventRouter {
	r := &EventRouter{
		name:          name,
		componentType: ComponentSaga,
		domainIndex:   make(map[string]map[string]int),
		entries:       make(map[string][]eventEntry),
	}
	return r.Domain(inputDomain)
}

// Domain switches registration scope: subsequent On calls bind to domain.
// Calling Domain with a domain already seen just resumes registering into
// it; it never clears existing entries.
func (r *EventRouter) Domain(domain string) *EventRouter {
	if _, ok := r.domainIndex[domain]; !ok {
		r.domainIndex[domain] = make(map[string]int)
		r.domainOrder = append(r.domainOrder, domain)
	}
	r.currentDomain = domain
	return r
}

// Output declares a domain this router issues commands against, for
// topology discovery. Purely descriptive — Dispatch doesn't validate
// that emitted commands target a declared output domain.
func (r *EventRouter) Output(domain string) *EventRouter {
	r.outputDomains = append(r.outputDomains, domain)
	return r
}

// RequireCorrelation switches this router into process-manager mode: a
// book whose cover carries no correlation_id dispatches to nothing,
// since a process manager instance is keyed by correlation.
func (r *EventRouter) RequireCorrelation() *EventRouter {
	r.requireCorrelation = true
	r.componentType = ComponentProcessManager
	return r
}

// On registers handler for an event type-suffix under the current
// domain scope. Idempotent last-wins per (domain, suffix) pair; a prior
// Prepare registration for the same suffix is preserved.
func (r *EventRouter) On(suffix string, handler EventHandler) *EventRouter {
	i := r.entryIndex(suffix)
	r.entries[r.currentDomain][i].handler = handler
	return r
}

// Prepare registers a prepare callback for an event type-suffix under the
// current domain scope, returning the destination covers its handler
// intends to address. A prior On registration for the same suffix is
// preserved.
func (r *EventRouter) Prepare(suffix string, fn PrepareHandler) *EventRouter {
	i := r.entryIndex(suffix)
	r.entries[r.currentDomain][i].prepare = fn
	return r
}

// entryIndex returns the index of suffix's entry under the current
// domain, creating an empty one if this is its first registration
// (via either On or Prepare).
func (r *EventRouter) entryIndex(suffix string) int {
	domain := r.currentDomain
	idx := r.domainIndex[domain]
	entries := r.entries[domain]
	if i, ok := idx[suffix]; ok {
		return i
	}
	idx[suffix] = len(entries)
	r.entries[domain] = append(entries, eventEntry{suffix: suffix})
	return idx[suffix]
}

// Dispatch iterates book's pages and routes each to the handler
// registered for (book's cover domain, event type-suffix), collecting
// every command the handlers produce. destinations carries the event
// books a prior PrepareDestinations call asked the transport to prefetch,
// keyed by CoverKey; pass nil for handlers that never declare any. A book
// with no matching domain, or (in process-manager mode) no correlation_id,
// dispatches to nothing.
func (r *EventRouter) Dispatch(book *angzarrpb.EventBook, destinations map[string]*angzarrpb.EventBook) []*angzarrpb.CommandBook {
	if book == nil {
		return nil
	}
	cover := book.GetCover()
	if r.requireCorrelation && cover.GetCorrelationId() == "" {
		return nil
	}

	domain := cover.GetDomain()
	entries, ok := r.entries[domain]
	if !ok {
		return nil
	}
	idx := r.domainIndex[domain]

	var commands []*angzarrpb.CommandBook
	for _, page := range book.Pages {
		event := page.GetEvent()
		if event == nil {
			continue
		}
		suffix := TypeSuffix(event.TypeUrl)
		i, ok := idx[suffix]
		if !ok || entries[i].handler == nil {
			continue
		}
		commands = append(commands, entries[i].handler(cover, event, destinations)...)
	}
	return commands
}

// PrepareDestinations runs the prepare callback registered for each of
// book's matching pages and returns the union of destination covers they
// return, so a transport can prefetch those aggregates' event books and
// pass them into Dispatch.
func (r *EventRouter) PrepareDestinations(book *angzarrpb.EventBook) []*angzarrpb.Cover {
	if book == nil {
		return nil
	}
	cover := book.GetCover()
	domain := cover.GetDomain()
	entries, ok := r.entries[domain]
	if !ok {
		return nil
	}
	idx := r.domainIndex[domain]

	seen := make(map[string]bool)
	var destinations []*angzarrpb.Cover
	for _, page := range book.Pages {
		event := page.GetEvent()
		if event == nil {
			continue
		}
		suffix := TypeSuffix(event.TypeUrl)
		i, ok := idx[suffix]
		if !ok || entries[i].prepare == nil {
			continue
		}
		for _, d := range entries[i].prepare(cover, event) {
			key := CoverKey(d)
			if seen[key] {
				continue
			}
			seen[key] = true
			destinations = append(destinations, d)
		}
	}
	return destinations
}

// DestinationsMap indexes books by CoverKey for passing into Dispatch.
func DestinationsMap(books []*angzarrpb.EventBook) map[string]*angzarrpb.EventBook {
	if len(books) == 0 {
		return nil
	}
	m := make(map[string]*angzarrpb.EventBook, len(books))
	for _, b := range books {
		m[CoverKey(b.GetCover())] = b
	}
	return m
}

// Name returns the router's component name.
func (r *EventRouter) Name() string { return r.name }

// OutputDomains returns the domains declared via Output, in declaration
// order.
func (r *EventRouter) OutputDomains() []string { return r.outputDomains }

// Subscriptions returns one Subscription per input domain, in the order
// each was first seen, each listing its registered event type-suffixes
// in registration order.
func (r *EventRouter) Subscriptions() []*angzarrpb.Subscription {
	subs := make([]*angzarrpb.Subscription, 0, len(r.domainOrder))
	for _, d := range r.domainOrder {
		entries := r.entries[d]
		types := make([]string, len(entries))
		for i, e := range entries {
			types[i] = e.suffix
		}
		subs = append(subs, &angzarrpb.Subscription{Domain: d, EventTypes: types})
	}
	return subs
}

// Descriptor builds a component descriptor from registered handlers.
func (r *EventRouter) Descriptor() angzarrpb.ComponentDescriptor {
	return angzarrpb.ComponentDescriptor{
		Name:          r.name,
		ComponentType: r.componentType,
		Inputs:        r.Subscriptions(),
	}
}
