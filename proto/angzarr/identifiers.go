// Package angzarr holds the wire model shared by every Angzarr component:
// covers, books, pages, and the handful of service request/response shapes
// the core routers consume. It mirrors what protoc-gen-go would emit for
// angzarr.proto, hand-maintained here since no .proto sources were carried
// into this module (see DESIGN.md).
package angzarr

// UUID is a 16-byte identifier, rendered canonically as lowercase hex by
// github.com/google/uuid on the boundary. Angzarr carries it on the wire
// as raw bytes rather than a formatted string.
type UUID struct {
	Value []byte
}

func (u *UUID) GetValue() []byte {
	if u == nil {
		return nil
	}
	return u.Value
}

// Edition selects an alternate timeline (e.g. speculative execution) for
// a cover. Absent means the primary timeline.
type Edition struct {
	Name string
}

func (e *Edition) GetName() string {
	if e == nil {
		return ""
	}
	return e.Name
}

// Cover is the routing/identity envelope attached to every book and
// notification.
type Cover struct {
	Domain        string
	Root          *UUID
	CorrelationId string
	Edition       *Edition
}

func (c *Cover) GetDomain() string {
	if c == nil {
		return ""
	}
	return c.Domain
}

func (c *Cover) GetRoot() *UUID {
	if c == nil {
		return nil
	}
	return c.Root
}

func (c *Cover) GetCorrelationId() string {
	if c == nil {
		return ""
	}
	return c.CorrelationId
}

func (c *Cover) GetEdition() *Edition {
	if c == nil {
		return nil
	}
	return c.Edition
}
