// Package examples holds the domain payload types exercised by this
// module's example aggregates, sagas, and process managers. They are
// plain JSON-tagged Go structs rather than protoc-gen-go output — see
// DESIGN.md for why — packed into angzarr's anypb.Any envelopes by
// angzarr.PackAny/UnpackAny.
package examples

// CreateCounter initializes a counter aggregate at zero.
type CreateCounter struct{}

// Increment increases the counter by a positive delta.
type Increment struct {
	By int32 `json:"by"`
}

// Decrement decreases the counter by a positive delta.
type Decrement struct {
	By int32 `json:"by"`
}

// CounterCreated marks counter initialization.
type CounterCreated struct{}

// Incremented records a counter increase.
type Incremented struct {
	By int32 `json:"by"`
}

// Decremented records a counter decrease.
type Decremented struct {
	By int32 `json:"by"`
}

// CounterSnapshot is the snapshot payload for a counter aggregate.
type CounterSnapshot struct {
	Value  int32 `json:"value"`
	Exists bool  `json:"exists"`
}
