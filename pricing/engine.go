// SPDX-License-Identifier: GPL-3.0-only

// Package pricing computes quote breakdowns. It is pure: no I/O, no
// shared state, same inputs always produce the same breakdown.
package pricing

import (
	"math"
	"vsprice-server/catalog"
)

// Policy selects the active pricing formula. Earlier revisions of the
// calculator forked the formula across copies of the component; here the
// differences are configuration chosen once at construction.
type Policy struct {
	// LabTaxRate is the service tax applied to the lab per-seat cost
	// when lab usage is enabled. 0 disables the tax line.
	LabTaxRate float64
	// IncludeAddons controls whether enabled add-ons contribute to the
	// per-seat total.
	IncludeAddons bool
}

// DefaultPolicy is the active formula: 20% lab service tax, add-ons
// included.
func DefaultPolicy() Policy {
	return Policy{LabTaxRate: 0.20, IncludeAddons: true}
}

// Selection captures the visitor's choices. It is ephemeral and never
// persisted.
type Selection struct {
	Seats     int
	UseLab    bool
	FreeTier  bool
	Addons    map[string]bool
	AIAgentOn bool
	ManagedOn bool
}

// Breakdown itemizes every intermediate of the computation so callers
// can render a line-itemized summary without recomputing.
type Breakdown struct {
	PlatformPerSeat  float64 `json:"platformPerSeat"`
	LabPerSeat       float64 `json:"labPerSeat"`
	LabTaxPerSeat    float64 `json:"labTaxPerSeat"`
	PerSeatBase      float64 `json:"perSeatBase"`
	AddonsPerSeat    float64 `json:"addonsPerSeat"`
	OptionalsPerSeat float64 `json:"optionalsPerSeat"`
	PerSeatTotal     float64 `json:"perSeatTotal"`
	Seats            int     `json:"seats"`
	SeatSubtotal     float64 `json:"seatSubtotal"`
	GrandTotal       float64 `json:"grandTotal"`
}

type Engine struct {
	policy Policy
}

func NewEngine(policy Policy) *Engine {
	return &Engine{policy: policy}
}

// ClampSeats coerces raw numeric input to a usable seat count: negative
// and non-finite values become 0. Invalid input is never rejected; this
// is a quoting tool, not a ledger.
func ClampSeats(raw float64) int {
	if math.IsNaN(raw) || math.IsInf(raw, 0) || raw < 0 {
		return 0
	}
	return int(raw)
}

// ComputeBreakdown prices a selection against a plan and the catalog's
// add-on and optional-feature rates.
//
// The per-seat price is the plan's platform rate, plus the lab rate and
// its service tax when lab usage is enabled, plus enabled add-ons and
// optional features. The free tier zeroes add-on and optional
// contributions regardless of their toggles. The grand total is linear
// in seats; validity days are informational and never priced.
func (e *Engine) ComputeBreakdown(plan catalog.Plan, sel Selection, addons []catalog.Addon, features catalog.OptionalFeatures) Breakdown {
	seats := sel.Seats
	if seats < 0 {
		seats = 0
	}

	var labPerSeat, labTaxPerSeat float64
	if sel.UseLab {
		labPerSeat = plan.LabPerSeat
		labTaxPerSeat = plan.LabPerSeat * e.policy.LabTaxRate
	}
	perSeatBase := plan.PlatformPerSeat + labPerSeat + labTaxPerSeat

	var addonsPerSeat float64
	if e.policy.IncludeAddons && !sel.FreeTier {
		for _, a := range addons {
			if sel.Addons[a.Key] {
				addonsPerSeat += a.PerSeat
			}
		}
	}

	var optionalsPerSeat float64
	if !sel.FreeTier {
		if sel.AIAgentOn {
			optionalsPerSeat += features.AIAgent.PerSeat
		}
		if sel.ManagedOn {
			optionalsPerSeat += features.ManagedServices.PerSeat
		}
	}

	perSeatTotal := perSeatBase + addonsPerSeat + optionalsPerSeat
	seatSubtotal := perSeatTotal * float64(seats)

	return Breakdown{
		PlatformPerSeat:  plan.PlatformPerSeat,
		LabPerSeat:       labPerSeat,
		LabTaxPerSeat:    labTaxPerSeat,
		PerSeatBase:      perSeatBase,
		AddonsPerSeat:    addonsPerSeat,
		OptionalsPerSeat: optionalsPerSeat,
		PerSeatTotal:     perSeatTotal,
		Seats:            seats,
		SeatSubtotal:     seatSubtotal,
		GrandTotal:       seatSubtotal,
	}
}
