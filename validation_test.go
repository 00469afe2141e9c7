package angzarr

import "testing"

func TestRequireExists(t *testing.T) {
	if err := RequireExists("present", "missing"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := RequireExists("", "missing"); err == nil {
		t.Fatalf("expected error for empty field")
	}
}

func TestRequireNotExists(t *testing.T) {
	if err := RequireNotExists("", "already there"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := RequireNotExists("present", "already there"); err == nil {
		t.Fatalf("expected error for non-empty field")
	}
}

func TestRequirePositive(t *testing.T) {
	if err := RequirePositive(1, "must be positive"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := RequirePositive(0, "must be positive"); err == nil {
		t.Fatalf("expected error for zero")
	}
}

func TestRequireNonNegative(t *testing.T) {
	if err := RequireNonNegative(0, "must be non-negative"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := RequireNonNegative(-1, "must be non-negative"); err == nil {
		t.Fatalf("expected error for negative value")
	}
}

func TestRequireNotEmpty(t *testing.T) {
	if err := RequireNotEmpty([]int{1}, "must not be empty"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := RequireNotEmpty([]int{}, "must not be empty"); err == nil {
		t.Fatalf("expected error for empty slice")
	}
}

func TestRequireStatus(t *testing.T) {
	if err := RequireStatus("open", "open", "wrong status"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := RequireStatus("closed", "open", "wrong status"); err == nil {
		t.Fatalf("expected error for mismatched status")
	}
}

func TestRequireStatusNot(t *testing.T) {
	if err := RequireStatusNot("open", "closed", "forbidden status"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := RequireStatusNot("closed", "closed", "forbidden status"); err == nil {
		t.Fatalf("expected error for forbidden status")
	}
}
