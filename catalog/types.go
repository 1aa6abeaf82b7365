// SPDX-License-Identifier: GPL-3.0-only

package catalog

// JSON field names mirror the persisted catalog documents, which predate
// this server; changing them would orphan existing stored catalogs.

const (
	FreePlanKey        = "free"
	DefaultPaidPlanKey = "basic"
)

// PaidPlanKeys is the display order for paid tiers.
var PaidPlanKeys = []string{"basic", "medium", "enterprise"}

const (
	StatusAvailable   = "Available"
	StatusMaintenance = "Maintenance"
	StatusComingSoon  = "Coming Soon"
)

type Plan struct {
	Key             string  `json:"key"`
	Name            string  `json:"name"`
	ValidityDays    int     `json:"validityDays"`
	MaxUsers        int     `json:"maxUsers"`
	Unlimited       bool    `json:"unlimited,omitempty"`
	PlatformPerSeat float64 `json:"platformPerSeat"`
	LabPerSeat      float64 `json:"labPerSeat"`
}

// Free reports whether this is the freemium tier. Exactly one plan in a
// well-formed catalog satisfies this.
func (p Plan) Free() bool {
	return p.Key == FreePlanKey
}

type Addon struct {
	Key     string  `json:"key"`
	Name    string  `json:"name"`
	PerSeat float64 `json:"perSeat"`
	Enabled bool    `json:"enabled"`
}

type OptionalFeature struct {
	Name    string  `json:"name"`
	PerSeat float64 `json:"perSeat"`
}

type OptionalFeatures struct {
	AIAgent         OptionalFeature `json:"aiAgent"`
	ManagedServices OptionalFeature `json:"managedServices"`
}

type Theme struct {
	AccentColor        string `json:"accentColor"`
	AccentColorDark    string `json:"accentColorDark"`
	AccentCyan         string `json:"accentCyan"`
	PrimaryGradient    string `json:"primaryGradient"`
	BackgroundGradient string `json:"backgroundGradient"`
}

type PricingCatalog struct {
	Plans            map[string]Plan  `json:"plans"`
	Addons           []Addon          `json:"addons"`
	OptionalFeatures OptionalFeatures `json:"optionalFeatures"`
	AIAgentFeatures  []string         `json:"aiAgentFeatures"`
	UI               Theme            `json:"ui"`
}

// Plan looks up a plan by key.
func (c PricingCatalog) Plan(key string) (Plan, bool) {
	p, ok := c.Plans[key]
	return p, ok
}

// PaidPlans returns the paid tiers in display order, skipping keys that
// have been removed from the catalog.
func (c PricingCatalog) PaidPlans() []Plan {
	plans := make([]Plan, 0, len(PaidPlanKeys))
	for _, key := range PaidPlanKeys {
		if p, ok := c.Plans[key]; ok {
			plans = append(plans, p)
		}
	}
	return plans
}

// Sanitize coerces invalid numeric fields to 0 instead of rejecting them,
// matching the calculator's treatment of bad form input.
func (c *PricingCatalog) Sanitize() {
	for key, p := range c.Plans {
		if p.PlatformPerSeat < 0 {
			p.PlatformPerSeat = 0
		}
		if p.LabPerSeat < 0 {
			p.LabPerSeat = 0
		}
		if p.ValidityDays < 0 {
			p.ValidityDays = 0
		}
		if p.MaxUsers < 0 {
			p.MaxUsers = 0
		}
		c.Plans[key] = p
	}
	for i := range c.Addons {
		if c.Addons[i].PerSeat < 0 {
			c.Addons[i].PerSeat = 0
		}
	}
	if c.OptionalFeatures.AIAgent.PerSeat < 0 {
		c.OptionalFeatures.AIAgent.PerSeat = 0
	}
	if c.OptionalFeatures.ManagedServices.PerSeat < 0 {
		c.OptionalFeatures.ManagedServices.PerSeat = 0
	}
}

type Lab struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Cost        string   `json:"cost"`
	Status      string   `json:"status"`
	Features    []string `json:"features"`
}

type PageConfig struct {
	Title                string `json:"title"`
	Subtitle             string `json:"subtitle"`
	CustomLabTitle       string `json:"customLabTitle"`
	CustomLabDescription string `json:"customLabDescription"`
	CustomLabButtonText  string `json:"customLabButtonText"`
}

type LabsCatalog struct {
	Labs       []Lab      `json:"labs"`
	PageConfig PageConfig `json:"pageConfig"`
}
