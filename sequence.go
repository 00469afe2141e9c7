package angzarr

import angzarrpb "angzarr/proto/angzarr"

// NextSequence computes the sequence number the next event for this book
// must carry. All sequence validation and command emission
// in this package defer to this function.
//
//	if book is nil or (no snapshot and no pages): 0
//	elif pages non-empty:                         last page's sequence + 1
//	else:                                          snapshot.sequence + 1
func NextSequence(book *angzarrpb.EventBook) uint32 {
	if book == nil {
		return 0
	}
	if len(book.Pages) > 0 {
		return book.Pages[len(book.Pages)-1].GetSequence() + 1
	}
	if book.Snapshot != nil {
		return book.Snapshot.GetSequence() + 1
	}
	return 0
}
