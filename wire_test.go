package angzarr

import "testing"

func TestTypeSuffixDot(t *testing.T) {
	if got := TypeSuffix("type.googleapis.com/orders.v1.OrderCreated"); got != "OrderCreated" {
		t.Fatalf("got %q", got)
	}
}

func TestTypeSuffixSlash(t *testing.T) {
	if got := TypeSuffix("type.poker/examples.CardsDealt"); got != "CardsDealt" {
		t.Fatalf("got %q", got)
	}
}

func TestTypeSuffixBare(t *testing.T) {
	if got := TypeSuffix("Foo"); got != "Foo" {
		t.Fatalf("got %q", got)
	}
}

func TestTypeSuffixDoesNotOverMatch(t *testing.T) {
	// Foober must not be mistaken for a Foo match by any caller using
	// equality against the extracted suffix.
	if got := TypeSuffix("type.angzarr/examples.Foober"); got == "Foo" {
		t.Fatalf("suffix extraction conflated Foober with Foo")
	}
	if got := TypeSuffix("type.angzarr/examples.Foober"); got != "Foober" {
		t.Fatalf("got %q", got)
	}
}

func TestTypeSuffixPicksLaterDelimiter(t *testing.T) {
	if got := TypeSuffix("a.b/c.Foo"); got != "Foo" {
		t.Fatalf("got %q", got)
	}
}
