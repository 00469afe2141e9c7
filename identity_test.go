package angzarr

import "testing"

func TestComputeRootIsDeterministic(t *testing.T) {
	a := ComputeRoot("order", "cust-123")
	b := ComputeRoot("order", "cust-123")
	if a != b {
		t.Fatalf("ComputeRoot is not deterministic: %v != %v", a, b)
	}
}

func TestComputeRootVariesByDomain(t *testing.T) {
	a := ComputeRoot("order", "cust-123")
	b := ComputeRoot("inventory", "cust-123")
	if a == b {
		t.Fatalf("expected different roots for different domains")
	}
}

func TestProtoUUIDRoundTrip(t *testing.T) {
	id := ComputeRoot("order", "cust-123")
	wire := ToProtoUUID(id)
	got, err := FromProtoUUID(wire)
	if err != nil {
		t.Fatalf("FromProtoUUID: %v", err)
	}
	if got != id {
		t.Fatalf("got %v, want %v", got, id)
	}
}
