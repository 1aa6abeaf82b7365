// SPDX-License-Identifier: GPL-3.0-only

package pricing

import (
	"fmt"
	"vsprice-server/catalog"
)

// SeatAdvisory returns an editorial hint when the seat count sits
// outside the chosen plan's intended band. Bounds derive from the
// catalog's seat ceilings. The hint never alters the computed price and
// never blocks a quote; an empty string means the selection looks fine.
func SeatAdvisory(plan catalog.Plan, plans map[string]catalog.Plan, seats int) string {
	if seats <= 0 || plan.Free() {
		return ""
	}

	if !plan.Unlimited && plan.MaxUsers > 0 && seats > plan.MaxUsers {
		return fmt.Sprintf("%s supports up to %d users; consider a larger plan for %d seats.", plan.Name, plan.MaxUsers, seats)
	}

	if plan.Unlimited {
		// Suggest a smaller tier when a limited plan would already
		// cover the requested seats.
		bestCeiling := 0
		var bestName string
		for _, p := range plans {
			if p.Free() || p.Unlimited || p.Key == plan.Key {
				continue
			}
			if seats <= p.MaxUsers && (bestCeiling == 0 || p.MaxUsers < bestCeiling) {
				bestCeiling = p.MaxUsers
				bestName = p.Name
			}
		}
		if bestName != "" {
			return fmt.Sprintf("%s already covers %d seats; %s may not be necessary.", bestName, seats, plan.Name)
		}
	}

	return ""
}
