package angzarr

import (
	"testing"

	angzarrpb "angzarr/proto/angzarr"
)

func TestNextSequenceNilBook(t *testing.T) {
	if got := NextSequence(nil); got != 0 {
		t.Fatalf("got %d", got)
	}
}

func TestNextSequenceEmptyBook(t *testing.T) {
	if got := NextSequence(&angzarrpb.EventBook{}); got != 0 {
		t.Fatalf("got %d", got)
	}
}

func TestNextSequenceFollowsLastPage(t *testing.T) {
	book := &angzarrpb.EventBook{
		Pages: []*angzarrpb.EventPage{
			{Sequence: &angzarrpb.EventPageNum{Num: 0}},
			{Sequence: &angzarrpb.EventPageNum{Num: 1}},
		},
	}
	if got := NextSequence(book); got != 2 {
		t.Fatalf("got %d", got)
	}
}

func TestNextSequenceFollowsSnapshotWhenNoPages(t *testing.T) {
	book := &angzarrpb.EventBook{Snapshot: &angzarrpb.Snapshot{Sequence: 9}}
	if got := NextSequence(book); got != 10 {
		t.Fatalf("got %d", got)
	}
}

func TestNextSequencePrefersPagesOverSnapshot(t *testing.T) {
	book := &angzarrpb.EventBook{
		Snapshot: &angzarrpb.Snapshot{Sequence: 9},
		Pages:    []*angzarrpb.EventPage{{Sequence: &angzarrpb.EventPageNum{Num: 10}}},
	}
	if got := NextSequence(book); got != 11 {
		t.Fatalf("got %d", got)
	}
}
