package pricing

import (
	"math"
	"testing"
	"vsprice-server/catalog"
)

func testCatalog() catalog.PricingCatalog {
	return catalog.DefaultPricing()
}

func TestBasicPlanWithLabTax(t *testing.T) {
	// Basic plan: platform 125, lab 75. Lab on, 10 seats, nothing else.
	// Per-seat = 125 + 75 + 15 (20% tax) = 215, total 2150.
	cat := testCatalog()
	engine := NewEngine(DefaultPolicy())

	b := engine.ComputeBreakdown(cat.Plans["basic"], Selection{Seats: 10, UseLab: true}, cat.Addons, cat.OptionalFeatures)

	if b.LabTaxPerSeat != 15 {
		t.Errorf("Expected lab tax 15 (0.2 * 75), got %v", b.LabTaxPerSeat)
	}
	if b.PerSeatBase != 215 {
		t.Errorf("Expected per-seat base 215, got %v", b.PerSeatBase)
	}
	if b.PerSeatTotal != 215 {
		t.Errorf("Expected per-seat total 215, got %v", b.PerSeatTotal)
	}
	if b.GrandTotal != 2150 {
		t.Errorf("Expected grand total 2150, got %v", b.GrandTotal)
	}
}

func TestBasicPlanUntaxedPolicy(t *testing.T) {
	cat := testCatalog()
	engine := NewEngine(Policy{LabTaxRate: 0, IncludeAddons: true})

	b := engine.ComputeBreakdown(cat.Plans["basic"], Selection{Seats: 10, UseLab: true}, cat.Addons, cat.OptionalFeatures)

	if b.LabTaxPerSeat != 0 {
		t.Errorf("Expected no tax line, got %v", b.LabTaxPerSeat)
	}
	if b.PerSeatTotal != 200 {
		t.Errorf("Expected per-seat total 200, got %v", b.PerSeatTotal)
	}
	if b.GrandTotal != 2000 {
		t.Errorf("Expected grand total 2000, got %v", b.GrandTotal)
	}
}

func TestEnterpriseWithAIAgent(t *testing.T) {
	// Enterprise: platform 75, lab off, AI agent at 70/seat, 100 seats.
	cat := testCatalog()
	engine := NewEngine(DefaultPolicy())

	b := engine.ComputeBreakdown(cat.Plans["enterprise"], Selection{Seats: 100, AIAgentOn: true}, cat.Addons, cat.OptionalFeatures)

	if b.LabPerSeat != 0 || b.LabTaxPerSeat != 0 {
		t.Errorf("Expected zero lab contribution with lab off, got %v + %v", b.LabPerSeat, b.LabTaxPerSeat)
	}
	if b.PerSeatTotal != 145 {
		t.Errorf("Expected per-seat total 145, got %v", b.PerSeatTotal)
	}
	if b.GrandTotal != 14500 {
		t.Errorf("Expected grand total 14500, got %v", b.GrandTotal)
	}
}

func TestFreeTierZeroesEverything(t *testing.T) {
	cat := testCatalog()
	engine := NewEngine(DefaultPolicy())

	sel := Selection{
		Seats:     50,
		FreeTier:  true,
		AIAgentOn: true,
		ManagedOn: true,
		Addons:    map[string]bool{"d365": true, "security": true, "studio": true},
	}
	b := engine.ComputeBreakdown(cat.Plans["free"], sel, cat.Addons, cat.OptionalFeatures)

	if b.AddonsPerSeat != 0 {
		t.Errorf("Expected addons zeroed on free tier, got %v", b.AddonsPerSeat)
	}
	if b.OptionalsPerSeat != 0 {
		t.Errorf("Expected optionals zeroed on free tier, got %v", b.OptionalsPerSeat)
	}
	if b.GrandTotal != 0 {
		t.Errorf("Expected grand total 0, got %v", b.GrandTotal)
	}
}

func TestAddonSum(t *testing.T) {
	cat := testCatalog()
	engine := NewEngine(DefaultPolicy())

	sel := Selection{
		Seats:  1,
		Addons: map[string]bool{"d365": true, "security": true, "nonexistent": true},
	}
	b := engine.ComputeBreakdown(cat.Plans["medium"], sel, cat.Addons, cat.OptionalFeatures)

	// d365 150 + security 265; unknown keys contribute nothing.
	if b.AddonsPerSeat != 415 {
		t.Errorf("Expected addons per seat 415, got %v", b.AddonsPerSeat)
	}
}

func TestAddonsExcludedByPolicy(t *testing.T) {
	cat := testCatalog()
	engine := NewEngine(Policy{LabTaxRate: 0.20, IncludeAddons: false})

	sel := Selection{Seats: 1, Addons: map[string]bool{"d365": true}}
	b := engine.ComputeBreakdown(cat.Plans["basic"], sel, cat.Addons, cat.OptionalFeatures)

	if b.AddonsPerSeat != 0 {
		t.Errorf("Expected addons excluded by policy, got %v", b.AddonsPerSeat)
	}
}

func TestLinearInSeats(t *testing.T) {
	cat := testCatalog()
	engine := NewEngine(DefaultPolicy())

	sel := Selection{UseLab: true, AIAgentOn: true, Addons: map[string]bool{"studio": true}}
	for _, seats := range []int{0, 1, 7, 100, 5000} {
		sel.Seats = seats
		b := engine.ComputeBreakdown(cat.Plans["medium"], sel, cat.Addons, cat.OptionalFeatures)
		want := b.PerSeatTotal * float64(seats)
		if b.GrandTotal != want {
			t.Errorf("seats=%d: expected grand total %v, got %v", seats, want, b.GrandTotal)
		}
	}

	sel.Seats = 0
	b := engine.ComputeBreakdown(cat.Plans["medium"], sel, cat.Addons, cat.OptionalFeatures)
	if b.GrandTotal != 0 {
		t.Errorf("Expected zero total for zero seats, got %v", b.GrandTotal)
	}
}

func TestNegativeSeatsClamped(t *testing.T) {
	cat := testCatalog()
	engine := NewEngine(DefaultPolicy())

	b := engine.ComputeBreakdown(cat.Plans["basic"], Selection{Seats: -5, UseLab: true}, cat.Addons, cat.OptionalFeatures)
	if b.Seats != 0 {
		t.Errorf("Expected seats clamped to 0, got %d", b.Seats)
	}
	if b.GrandTotal != 0 {
		t.Errorf("Expected zero total for clamped seats, got %v", b.GrandTotal)
	}
}

func TestPerSeatBaseNonNegative(t *testing.T) {
	cat := testCatalog()
	engine := NewEngine(DefaultPolicy())

	for key, plan := range cat.Plans {
		for _, useLab := range []bool{true, false} {
			b := engine.ComputeBreakdown(plan, Selection{Seats: 1, UseLab: useLab}, cat.Addons, cat.OptionalFeatures)
			if b.PerSeatBase < 0 {
				t.Errorf("plan %s useLab=%v: negative per-seat base %v", key, useLab, b.PerSeatBase)
			}
		}
	}
}

func TestDeterministic(t *testing.T) {
	cat := testCatalog()
	engine := NewEngine(DefaultPolicy())

	sel := Selection{Seats: 42, UseLab: true, AIAgentOn: true, Addons: map[string]bool{"d365": true, "fabric": true}}
	first := engine.ComputeBreakdown(cat.Plans["enterprise"], sel, cat.Addons, cat.OptionalFeatures)
	for i := 0; i < 10; i++ {
		again := engine.ComputeBreakdown(cat.Plans["enterprise"], sel, cat.Addons, cat.OptionalFeatures)
		if again != first {
			t.Fatalf("Breakdown not deterministic: %+v vs %+v", first, again)
		}
	}
}

func TestClampSeats(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{10, 10},
		{0, 0},
		{-3, 0},
		{2.9, 2},
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{math.Inf(-1), 0},
	}
	for _, c := range cases {
		if got := ClampSeats(c.in); got != c.want {
			t.Errorf("ClampSeats(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}
