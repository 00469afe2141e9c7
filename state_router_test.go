package angzarr

import (
	"testing"

	"google.golang.org/protobuf/types/known/anypb"

	angzarrpb "angzarr/proto/angzarr"
)

type counterState struct {
	value int32
}

func newCounterRouter() *StateRouter[counterState] {
	r := NewStateRouter(func() counterState { return counterState{} })
	r.On("Incremented", func(s *counterState, page *angzarrpb.EventPage) {
		s.value++
	})
	return r
}

func incrementedPage(seq uint32) *angzarrpb.EventPage {
	return &angzarrpb.EventPage{
		Sequence: &angzarrpb.EventPageNum{Num: seq},
		Event:    &anypb.Any{TypeUrl: TypeURL("Incremented")},
	}
}

func TestFoldNilBookReturnsZeroState(t *testing.T) {
	r := newCounterRouter()
	if got := r.Fold(nil); got.value != 0 {
		t.Fatalf("got %+v", got)
	}
}

func TestFoldIsPure(t *testing.T) {
	r := newCounterRouter()
	book := &angzarrpb.EventBook{Pages: []*angzarrpb.EventPage{incrementedPage(0)}}
	a := r.Fold(book)
	b := r.Fold(book)
	if a != b {
		t.Fatalf("Fold is not pure: %+v != %+v", a, b)
	}
}

func TestFoldSkipsPagesAtOrBeforeSnapshot(t *testing.T) {
	r := newCounterRouter()
	book := &angzarrpb.EventBook{
		Snapshot: &angzarrpb.Snapshot{Sequence: 1},
		Pages:    []*angzarrpb.EventPage{incrementedPage(0), incrementedPage(1), incrementedPage(2)},
	}
	got := r.Fold(book)
	if got.value != 1 {
		t.Fatalf("expected only sequence 2 folded, got value %d", got.value)
	}
}

func TestFoldWithoutSnapshotFoldsSequenceZero(t *testing.T) {
	r := newCounterRouter()
	book := &angzarrpb.EventBook{Pages: []*angzarrpb.EventPage{incrementedPage(0)}}
	got := r.Fold(book)
	if got.value != 1 {
		t.Fatalf("expected the first event (sequence 0) to fold when there's no snapshot, got %d", got.value)
	}
}

func TestFoldSkipsUnregisteredSuffix(t *testing.T) {
	r := newCounterRouter()
	book := &angzarrpb.EventBook{
		Pages: []*angzarrpb.EventPage{
			{Sequence: &angzarrpb.EventPageNum{Num: 0}, Event: &anypb.Any{TypeUrl: TypeURL("SomethingElse")}},
		},
	}
	got := r.Fold(book)
	if got.value != 0 {
		t.Fatalf("expected unregistered suffix to be ignored, got %d", got.value)
	}
}

func TestFoldUsesSnapshotLoader(t *testing.T) {
	r := NewStateRouter(func() counterState { return counterState{} }).
		WithSnapshot(func(s *counterState, snap *angzarrpb.Snapshot) {
			s.value = 100
		})
	book := &angzarrpb.EventBook{Snapshot: &angzarrpb.Snapshot{Sequence: 5}}
	got := r.Fold(book)
	if got.value != 100 {
		t.Fatalf("expected snapshot loader to seed state, got %d", got.value)
	}
}
