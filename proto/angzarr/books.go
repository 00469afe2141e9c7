package angzarr

import "google.golang.org/protobuf/types/known/anypb"

// RetentionPolicy describes how long a snapshot's predecessor events must
// be retained. The core never interprets this; it's forwarded to storage.
type RetentionPolicy int32

const (
	RetentionUnspecified RetentionPolicy = iota
	RetentionPrunePrior
	RetentionKeepAll
)

// Snapshot is a baseline state captured at some sequence, allowing
// StateRouter.Fold to skip folding prior history.
type Snapshot struct {
	Sequence  uint32
	State     *anypb.Any
	Retention RetentionPolicy
}

func (s *Snapshot) GetSequence() uint32 {
	if s == nil {
		return 0
	}
	return s.Sequence
}

func (s *Snapshot) GetState() *anypb.Any {
	if s == nil {
		return nil
	}
	return s.State
}

// EventBook is an ordered, sequence-stamped collection of event pages plus
// a cover and optional snapshot baseline.
//
// Invariant: page sequences are strictly increasing; if Snapshot is
// present every page has Sequence > Snapshot.Sequence; NextSequence (see
// sequence.go) is the sequence the next event must carry.
type EventBook struct {
	Cover        *Cover
	Snapshot     *Snapshot
	Pages        []*EventPage
	NextSequence uint32
}

func (b *EventBook) GetCover() *Cover {
	if b == nil {
		return nil
	}
	return b.Cover
}

func (b *EventBook) GetSnapshot() *Snapshot {
	if b == nil {
		return nil
	}
	return b.Snapshot
}

func (b *EventBook) GetPages() []*EventPage {
	if b == nil {
		return nil
	}
	return b.Pages
}

// CommandBook is an ordered collection of command pages plus a cover.
// CommandBooks delivered to CommandRouter carry exactly one CommandPage.
type CommandBook struct {
	Cover *Cover
	Pages []*CommandPage
}

func (b *CommandBook) GetCover() *Cover {
	if b == nil {
		return nil
	}
	return b.Cover
}

func (b *CommandBook) GetPages() []*CommandPage {
	if b == nil {
		return nil
	}
	return b.Pages
}

// ContextualCommand is the full input to CommandRouter.Dispatch: a command
// targeting an aggregate plus the aggregate's prior events.
type ContextualCommand struct {
	Command *CommandBook
	Events  *EventBook
}

func (c *ContextualCommand) GetCommand() *CommandBook {
	if c == nil {
		return nil
	}
	return c.Command
}

func (c *ContextualCommand) GetEvents() *EventBook {
	if c == nil {
		return nil
	}
	return c.Events
}
