package angzarr

import (
	angzarrpb "angzarr/proto/angzarr"
)

// StateApplier mutates a freshly constructed state in place given an
// event page. Each applier owns decoding its own event type, mirroring
// CommandHandler's pattern where handlers decode commands themselves.
type StateApplier[S any] func(state *S, event *angzarrpb.EventPage)

// SnapshotLoader populates state from a snapshot payload.
type SnapshotLoader[S any] func(state *S, snapshot *angzarrpb.Snapshot)

type stateEntry[S any] struct {
	suffix string
	apply  StateApplier[S]
}

// StateRouter folds an event history (plus an optional snapshot baseline)
// into a typed state S. Registration is last-wins per
// suffix and must happen-before the first Fold call; after that,
// StateRouter is read-only and safe for concurrent Fold calls across
// independent inputs.
type StateRouter[S any] struct {
	newState       func() S
	snapshotLoader SnapshotLoader[S]
	entries        []stateEntry[S]
	index          map[string]int
}

// NewStateRouter creates a StateRouter for state type S. newState
// constructs the zero/default state Fold starts from.
func NewStateRouter[S any](newState func() S) *StateRouter[S] {
	return &StateRouter[S]{
		newState: newState,
		index:    make(map[string]int),
	}
}

// WithSnapshot sets the loader used to seed state from book.Snapshot.State
// before folding events. Optional — if unset, snapshots are ignored.
func (r *StateRouter[S]) WithSnapshot(loader SnapshotLoader[S]) *StateRouter[S] {
	r.snapshotLoader = loader
	return r
}

// Register binds an apply callback to an event type-suffix. Idempotent
// last-wins: registering the same suffix twice replaces the earlier
// handler.
func (r *StateRouter[S]) Register(suffix string, apply StateApplier[S]) *StateRouter[S] {
	if i, ok := r.index[suffix]; ok {
		r.entries[i].apply = apply
		return r
	}
	r.index[suffix] = len(r.entries)
	r.entries = append(r.entries, stateEntry[S]{suffix: suffix, apply: apply})
	return r
}

// On is an alias for Register, matching this module's fluent naming elsewhere.
func (r *StateRouter[S]) On(suffix string, apply StateApplier[S]) *StateRouter[S] {
	return r.Register(suffix, apply)
}

// Fold rebuilds S from book: a default S (or snapshot-seeded S if
// book.Snapshot is present), then every page past the snapshot baseline
// in sequence order. External-only pages and unregistered suffixes are
// skipped silently — unknown events are not errors, to tolerate a newer
// writer's event types.
//
// Fold is a pure function of its input: calling it twice on equal books
// yields equal states.
func (r *StateRouter[S]) Fold(book *angzarrpb.EventBook) S {
	state := r.newState()
	if book == nil {
		return state
	}

	hasSnapshot := book.Snapshot != nil
	var baseline uint32
	if hasSnapshot {
		baseline = book.Snapshot.GetSequence()
		if r.snapshotLoader != nil {
			r.snapshotLoader(&state, book.Snapshot)
		}
	}

	for _, page := range book.Pages {
		if hasSnapshot && page.GetSequence() <= baseline {
			continue
		}
		if page.GetEvent() == nil {
			continue
		}
		suffix := TypeSuffix(page.GetEvent().TypeUrl)
		if i, ok := r.index[suffix]; ok {
			r.entries[i].apply(&state, page)
		}
	}

	return state
}

// RebuildFunc returns Fold as a plain func(*EventBook) S value.
func (r *StateRouter[S]) RebuildFunc() func(*angzarrpb.EventBook) S {
	return r.Fold
}
