// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"
	"strconv"
	"vsprice-server/catalog"
	"vsprice-server/commons"
	"vsprice-server/pricing"

	"github.com/labstack/echo/v4"
)

// ActivePolicy reads the pricing formula configuration. Unparsable
// values fall back to the default policy.
func ActivePolicy() pricing.Policy {
	policy := pricing.DefaultPolicy()
	if v := commons.GetEnv("PRICING_LAB_TAX_RATE"); v != "" {
		if rate, err := strconv.ParseFloat(v, 64); err == nil && rate >= 0 {
			policy.LabTaxRate = rate
		}
	}
	if v := commons.GetEnv("PRICING_INCLUDE_ADDONS"); v != "" {
		policy.IncludeAddons = v == "true"
	}
	return policy
}

// NormalizeQuoteRequest applies the tab/plan coupling rules: the free
// tab always quotes the free plan with lab usage off, and the paid tab
// never quotes the free plan.
func NormalizeQuoteRequest(req *QuoteRequest) {
	if req.Tab == "" {
		req.Tab = "paid"
	}
	if req.PlanKey == "" {
		req.PlanKey = catalog.DefaultPaidPlanKey
	}
	if req.Tab == "free" {
		req.PlanKey = catalog.FreePlanKey
		req.UseLab = false
	} else if req.PlanKey == catalog.FreePlanKey {
		req.PlanKey = catalog.DefaultPaidPlanKey
	}
}

// ComputeQuoteHandler godoc
// @Summary      Compute a price quote
// @Description  Prices a plan selection and returns an itemized per-seat and grand-total breakdown with a non-blocking seat advisory.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        quoteRequest  body  QuoteRequest  true  "Quote request payload"
// @Success      200 {object} QuoteResponse    "Quote computed successfully"
// @Failure      400 {object} echo.HTTPError   "Bad request"
// @Failure      404 {object} echo.HTTPError   "Unknown plan key"
// @Router       /v1/quotes [post]
func ComputeQuoteHandler(c echo.Context) error {
	logger := c.Logger()

	var req QuoteRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid quote request payload:", err)
		return echo.ErrBadRequest
	}

	NormalizeQuoteRequest(&req)

	cat := catalog.Repo.LoadPricing()
	plan, ok := cat.Plan(req.PlanKey)
	if !ok {
		logger.Errorf("Unknown plan key: %s", req.PlanKey)
		return &echo.HTTPError{
			Code:    http.StatusNotFound,
			Message: "Unknown plan key",
		}
	}

	sel := pricing.Selection{
		Seats:     pricing.ClampSeats(req.Seats),
		UseLab:    req.UseLab,
		FreeTier:  req.Tab == "free",
		Addons:    req.Addons,
		AIAgentOn: req.AIAgentEnabled,
		ManagedOn: req.ManagedServicesEnabled,
	}

	engine := pricing.NewEngine(ActivePolicy())
	breakdown := engine.ComputeBreakdown(plan, sel, cat.Addons, cat.OptionalFeatures)
	advisory := pricing.SeatAdvisory(plan, cat.Plans, sel.Seats)

	return c.JSON(http.StatusOK, QuoteResponse{
		PlanKey:      plan.Key,
		PlanName:     plan.Name,
		ValidityDays: plan.ValidityDays,
		Breakdown:    breakdown,
		Display: BreakdownDisplay{
			PlatformPerSeat:  commons.FormatUSD(breakdown.PlatformPerSeat),
			LabPerSeat:       commons.FormatUSD(breakdown.LabPerSeat),
			LabTaxPerSeat:    commons.FormatUSD(breakdown.LabTaxPerSeat),
			AddonsPerSeat:    commons.FormatUSD(breakdown.AddonsPerSeat),
			OptionalsPerSeat: commons.FormatUSD(breakdown.OptionalsPerSeat),
			PerSeatTotal:     commons.FormatUSD(breakdown.PerSeatTotal),
			SeatSubtotal:     commons.FormatUSD(breakdown.SeatSubtotal),
			GrandTotal:       commons.FormatUSD(breakdown.GrandTotal),
		},
		Advisory: advisory,
		Message:  "Quote computed successfully",
	})
}
