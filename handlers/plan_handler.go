// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"
	"vsprice-server/catalog"
	"vsprice-server/commons"

	"github.com/labstack/echo/v4"
)

func planOption(p catalog.Plan) PlanOption {
	return PlanOption{
		Key:                    p.Key,
		Name:                   p.Name,
		ValidityDays:           p.ValidityDays,
		MaxUsers:               p.MaxUsers,
		Unlimited:              p.Unlimited,
		PlatformPerSeat:        p.PlatformPerSeat,
		LabPerSeat:             p.LabPerSeat,
		PlatformPerSeatDisplay: commons.FormatUSD(p.PlatformPerSeat),
		LabPerSeatDisplay:      commons.FormatUSD(p.LabPerSeat),
		Free:                   p.Free(),
	}
}

// GetPlansHandler godoc
// @Summary      Get available plans
// @Description  Retrieves the freemium tier and the paid tiers in display order, with per-seat pricing for plan cards.
// @Tags         plans
// @Accept       json
// @Produce      json
// @Success      200 {object} PlanListResponse "Plans retrieved successfully"
// @Router       /v1/plans [get]
func GetPlansHandler(c echo.Context) error {
	cat := catalog.Repo.LoadPricing()

	var freePlan *PlanOption
	if p, ok := cat.Plan(catalog.FreePlanKey); ok {
		option := planOption(p)
		freePlan = &option
	}

	paidPlans := []PlanOption{}
	for _, p := range cat.PaidPlans() {
		paidPlans = append(paidPlans, planOption(p))
	}

	return c.JSON(http.StatusOK, PlanListResponse{
		FreePlan:  freePlan,
		PaidPlans: paidPlans,
		Message:   "Plans retrieved successfully",
	})
}

// GetPricingOptionsHandler godoc
// @Summary      Get pricing options
// @Description  Retrieves add-ons, optional features, AI Agent feature tags and theme settings for rendering the calculator.
// @Tags         plans
// @Accept       json
// @Produce      json
// @Success      200 {object} PricingOptionsResponse "Pricing options retrieved successfully"
// @Router       /v1/pricing/options [get]
func GetPricingOptionsHandler(c echo.Context) error {
	cat := catalog.Repo.LoadPricing()

	return c.JSON(http.StatusOK, PricingOptionsResponse{
		Addons:           cat.Addons,
		OptionalFeatures: cat.OptionalFeatures,
		AIAgentFeatures:  cat.AIAgentFeatures,
		UI:               cat.UI,
		Message:          "Pricing options retrieved successfully",
	})
}
