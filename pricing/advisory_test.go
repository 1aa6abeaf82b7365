package pricing

import (
	"testing"
	"vsprice-server/catalog"
)

func TestSeatAdvisoryOverCeiling(t *testing.T) {
	cat := catalog.DefaultPricing()

	msg := SeatAdvisory(cat.Plans["basic"], cat.Plans, 2500)
	if msg == "" {
		t.Error("Expected advisory for 2500 seats on basic (ceiling 2000)")
	}

	msg = SeatAdvisory(cat.Plans["basic"], cat.Plans, 2000)
	if msg != "" {
		t.Errorf("Expected no advisory at exactly the ceiling, got %q", msg)
	}
}

func TestSeatAdvisoryUnlimitedSuggestsSmallerPlan(t *testing.T) {
	cat := catalog.DefaultPricing()

	msg := SeatAdvisory(cat.Plans["enterprise"], cat.Plans, 1500)
	if msg == "" {
		t.Error("Expected advisory suggesting a smaller plan for 1500 seats on enterprise")
	}

	// No limited plan covers 6000 seats, so enterprise is the right fit.
	msg = SeatAdvisory(cat.Plans["enterprise"], cat.Plans, 6000)
	if msg != "" {
		t.Errorf("Expected no advisory when only enterprise fits, got %q", msg)
	}
}

func TestSeatAdvisoryQuietCases(t *testing.T) {
	cat := catalog.DefaultPricing()

	if msg := SeatAdvisory(cat.Plans["free"], cat.Plans, 500); msg != "" {
		t.Errorf("Expected no advisory on the free tier, got %q", msg)
	}
	if msg := SeatAdvisory(cat.Plans["basic"], cat.Plans, 0); msg != "" {
		t.Errorf("Expected no advisory for zero seats, got %q", msg)
	}
	if msg := SeatAdvisory(cat.Plans["medium"], cat.Plans, 3000); msg != "" {
		t.Errorf("Expected no advisory for 3000 seats within medium's ceiling, got %q", msg)
	}
}
