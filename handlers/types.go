// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"vsprice-server/catalog"
	"vsprice-server/pricing"
)

// swagger:model LoginRequest
type LoginRequest struct {
	// Admin password
	// required: true
	Password string `json:"password" example:"MySecretPassword@123"`
}

// swagger:model AuthResponse
type AuthResponse struct {
	// Authentication session token
	// Should be used in the Authorization header as a Bearer token.
	SessionToken string `json:"session_token" example:"sample_session_token"`
	// Message indicating successful operation
	Message string `json:"message" example:"Login successful"`
}

// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	// Current admin password
	CurrentPassword string `json:"current_password" example:"MySecretPassword@123"`
	// New admin password
	NewPassword string `json:"new_password" example:"MyNewSecretPassword@456"`
}

// swagger:model GenericResponse
type GenericResponse struct {
	// Message indicating the result of the operation
	Message string `json:"message"`
}

// swagger:model QuoteRequest
type QuoteRequest struct {
	// Active pricing tab, "free" or "paid"
	Tab string `json:"tab" example:"paid"`
	// Key of the selected plan
	PlanKey string `json:"plan_key" example:"basic"`
	// Seat count; negative values are treated as 0
	Seats float64 `json:"seats" example:"10"`
	// Whether lab usage is included in the per-seat price
	UseLab bool `json:"use_lab" example:"true"`
	// Enabled add-ons keyed by add-on key
	Addons map[string]bool `json:"addons"`
	// Whether the AI Agent optional feature is enabled
	AIAgentEnabled bool `json:"ai_agent_enabled" example:"false"`
	// Whether the Managed Services optional feature is enabled
	ManagedServicesEnabled bool `json:"managed_services_enabled" example:"false"`
}

// swagger:model BreakdownDisplay
type BreakdownDisplay struct {
	// Platform price per seat, formatted for display
	PlatformPerSeat string `json:"platform_per_seat" example:"$125.00"`
	// Lab price per seat
	LabPerSeat string `json:"lab_per_seat" example:"$75.00"`
	// Lab service tax per seat
	LabTaxPerSeat string `json:"lab_tax_per_seat" example:"$15.00"`
	// Add-ons total per seat
	AddonsPerSeat string `json:"addons_per_seat" example:"$0.00"`
	// Optional features total per seat
	OptionalsPerSeat string `json:"optionals_per_seat" example:"$0.00"`
	// Total per seat
	PerSeatTotal string `json:"per_seat_total" example:"$215.00"`
	// Seat cost subtotal
	SeatSubtotal string `json:"seat_subtotal" example:"$2,150.00"`
	// Grand total (monthly)
	GrandTotal string `json:"grand_total" example:"$2,150.00"`
}

// swagger:model QuoteResponse
type QuoteResponse struct {
	// Resolved plan key after tab normalization
	PlanKey string `json:"plan_key" example:"basic"`
	// Display name of the plan
	PlanName string `json:"plan_name" example:"Basic Plan"`
	// Validity period in days (informational, never priced)
	ValidityDays int `json:"validity_days" example:"45"`
	// Itemized numeric breakdown
	Breakdown pricing.Breakdown `json:"breakdown"`
	// Breakdown formatted for display
	Display BreakdownDisplay `json:"display"`
	// Non-blocking seat/plan advisory; empty when the selection fits
	Advisory string `json:"advisory,omitempty" example:""`
	// Message indicating successful computation
	Message string `json:"message" example:"Quote computed successfully"`
}

// swagger:model PlanOption
type PlanOption struct {
	// Plan key
	Key string `json:"key" example:"basic"`
	// Display name
	Name string `json:"name" example:"Basic Plan"`
	// Validity period in days
	ValidityDays int `json:"validity_days" example:"45"`
	// Maximum seat count
	MaxUsers int `json:"max_users" example:"2000"`
	// Whether the seat ceiling is advisory only
	Unlimited bool `json:"unlimited" example:"false"`
	// Platform price per seat
	PlatformPerSeat float64 `json:"platform_per_seat" example:"125"`
	// Lab price per seat
	LabPerSeat float64 `json:"lab_per_seat" example:"75"`
	// Formatted platform price per seat
	PlatformPerSeatDisplay string `json:"platform_per_seat_display" example:"$125.00"`
	// Formatted lab price per seat
	LabPerSeatDisplay string `json:"lab_per_seat_display" example:"$75.00"`
	// Whether this is the freemium tier
	Free bool `json:"free" example:"false"`
}

// swagger:model PlanListResponse
type PlanListResponse struct {
	// The freemium tier
	FreePlan *PlanOption `json:"free_plan"`
	// Paid tiers in display order
	PaidPlans []PlanOption `json:"paid_plans"`
	// Message indicating successful retrieval
	Message string `json:"message" example:"Plans retrieved successfully"`
}

// swagger:model PricingOptionsResponse
type PricingOptionsResponse struct {
	// Per-seat add-ons
	Addons []catalog.Addon `json:"addons"`
	// The two distinguished optional features
	OptionalFeatures catalog.OptionalFeatures `json:"optional_features"`
	// AI Agent feature tags
	AIAgentFeatures []string `json:"ai_agent_features"`
	// UI theme settings
	UI catalog.Theme `json:"ui"`
	// Message indicating successful retrieval
	Message string `json:"message" example:"Pricing options retrieved successfully"`
}

// swagger:model LabsResponse
type LabsResponse struct {
	// Lab environments
	Labs []catalog.Lab `json:"labs"`
	// Labs page display strings
	PageConfig catalog.PageConfig `json:"page_config"`
	// Number of labs currently available
	AvailableCount int `json:"available_count" example:"8"`
	// Message indicating successful retrieval
	Message string `json:"message" example:"Labs retrieved successfully"`
}

// swagger:model UpdatePlanRequest
type UpdatePlanRequest struct {
	// New display name
	Name *string `json:"name" example:"Basic Plan"`
	// New validity period in days
	ValidityDays *int `json:"validity_days" example:"45"`
	// New maximum seat count
	MaxUsers *int `json:"max_users" example:"2000"`
	// New platform price per seat
	PlatformPerSeat *float64 `json:"platform_per_seat" example:"125"`
	// New lab price per seat
	LabPerSeat *float64 `json:"lab_per_seat" example:"75"`
}

// swagger:model UpdateFeaturesRequest
type UpdateFeaturesRequest struct {
	// New AI Agent price per seat
	AIAgentPerSeat *float64 `json:"ai_agent_per_seat" example:"70"`
	// New Managed Services price per seat
	ManagedServicesPerSeat *float64 `json:"managed_services_per_seat" example:"0"`
}

// swagger:model CreateLabRequest
type CreateLabRequest struct {
	// Lab name
	// required: true
	Name string `json:"name" example:"Quantum Lab"`
	// Free-text description
	Description string `json:"description" example:"Qubit simulation environment."`
	// Cost display string, passed through verbatim
	Cost string `json:"cost" example:"$1.00/hour"`
	// Status, e.g. Available, Maintenance, Coming Soon
	Status string `json:"status" example:"Available"`
	// Ordered feature tags
	Features []string `json:"features"`
}

// swagger:model UpdateLabRequest
type UpdateLabRequest struct {
	// New lab name
	Name *string `json:"name"`
	// New description
	Description *string `json:"description"`
	// New cost display string
	Cost *string `json:"cost"`
	// New status
	Status *string `json:"status"`
	// New feature tags (replaces the list)
	Features *[]string `json:"features"`
}

// swagger:model LabResponse
type LabResponse struct {
	// The lab record
	Lab catalog.Lab `json:"lab"`
	// Message indicating the result of the operation
	Message string `json:"message"`
}

// swagger:model ReplaceLabsRequest
type ReplaceLabsRequest struct {
	// Replacement lab list; ids are reassigned sequentially from 1
	Labs []CreateLabRequest `json:"labs"`
	// Optional replacement page display strings
	PageConfig *catalog.PageConfig `json:"page_config"`
}

// swagger:model LabsCatalogResponse
type LabsCatalogResponse struct {
	// The full labs catalog
	Catalog catalog.LabsCatalog `json:"catalog"`
	// Message indicating the result of the operation
	Message string `json:"message"`
}

// swagger:model PricingCatalogResponse
type PricingCatalogResponse struct {
	// The full pricing catalog
	Catalog catalog.PricingCatalog `json:"catalog"`
	// Message indicating the result of the operation
	Message string `json:"message"`
}

// swagger:model ImportResponse
type ImportResponse struct {
	// Number of spreadsheet rows applied
	RowsApplied int `json:"rows_applied" example:"4"`
	// Message indicating the result of the operation
	Message string `json:"message"`
}
