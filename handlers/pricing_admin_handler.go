// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"fmt"
	"net/http"
	"vsprice-server/catalog"
	"vsprice-server/events"
	"vsprice-server/spreadsheet"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
)

// GetPricingCatalogHandler godoc
// @Summary      Get the pricing catalog
// @Description  Retrieves the full pricing catalog for the admin panel.
// @Tags         admin-pricing
// @Accept       json
// @Produce      json
// @Success      200 {object} PricingCatalogResponse "Pricing catalog retrieved successfully"
// @Failure      401 {object} echo.HTTPError         "Unauthorized"
// @Router       /v1/admin/pricing [get]
func GetPricingCatalogHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, PricingCatalogResponse{
		Catalog: catalog.Repo.LoadPricing(),
		Message: "Pricing catalog retrieved successfully",
	})
}

// ReplacePricingCatalogHandler godoc
// @Summary      Replace the pricing catalog
// @Description  Overwrites the stored pricing catalog wholesale. Negative numeric fields are coerced to 0.
// @Tags         admin-pricing
// @Accept       json
// @Produce      json
// @Param        catalog  body  catalog.PricingCatalog  true  "Replacement pricing catalog"
// @Success      200 {object} PricingCatalogResponse "Pricing catalog updated successfully"
// @Failure      400 {object} echo.HTTPError         "Bad request"
// @Failure      401 {object} echo.HTTPError         "Unauthorized"
// @Failure      500 {object} echo.HTTPError         "Internal server error"
// @Router       /v1/admin/pricing [put]
func ReplacePricingCatalogHandler(c echo.Context) error {
	logger := c.Logger()

	var cat catalog.PricingCatalog
	if err := c.Bind(&cat); err != nil {
		logger.Error("Invalid pricing catalog payload:", err)
		return echo.ErrBadRequest
	}
	if len(cat.Plans) == 0 {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "catalog must contain at least one plan",
		}
	}

	cat.Sanitize()
	if err := catalog.Repo.SavePricing(cat); err != nil {
		logger.Errorf("Failed to save pricing catalog: %v", err)
		return echo.ErrInternalServerError
	}
	events.Publish(events.PricingUpdated, nil)

	return c.JSON(http.StatusOK, PricingCatalogResponse{
		Catalog: cat,
		Message: "Pricing catalog updated successfully",
	})
}

// UpdatePlanHandler godoc
// @Summary      Update one plan
// @Description  Applies a partial update to a single plan's fields. Omitted fields keep their stored value.
// @Tags         admin-pricing
// @Accept       json
// @Produce      json
// @Param        plan_key           path  string             true  "Plan key"
// @Param        updatePlanRequest  body  UpdatePlanRequest  true  "Plan update payload"
// @Success      200 {object} PricingCatalogResponse "Plan updated successfully"
// @Failure      400 {object} echo.HTTPError         "Bad request"
// @Failure      401 {object} echo.HTTPError         "Unauthorized"
// @Failure      404 {object} echo.HTTPError         "Unknown plan key"
// @Failure      500 {object} echo.HTTPError         "Internal server error"
// @Router       /v1/admin/pricing/plans/{plan_key} [patch]
func UpdatePlanHandler(c echo.Context) error {
	logger := c.Logger()

	var req UpdatePlanRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid plan update payload:", err)
		return echo.ErrBadRequest
	}

	cat := catalog.Repo.LoadPricing()
	key := c.Param("plan_key")
	plan, ok := cat.Plan(key)
	if !ok {
		return &echo.HTTPError{
			Code:    http.StatusNotFound,
			Message: "Unknown plan key",
		}
	}

	if req.Name != nil {
		plan.Name = *req.Name
	}
	if req.ValidityDays != nil {
		plan.ValidityDays = *req.ValidityDays
	}
	if req.MaxUsers != nil {
		plan.MaxUsers = *req.MaxUsers
	}
	if req.PlatformPerSeat != nil {
		plan.PlatformPerSeat = *req.PlatformPerSeat
	}
	if req.LabPerSeat != nil {
		plan.LabPerSeat = *req.LabPerSeat
	}
	cat.Plans[key] = plan

	cat.Sanitize()
	if err := catalog.Repo.SavePricing(cat); err != nil {
		logger.Errorf("Failed to save pricing catalog: %v", err)
		return echo.ErrInternalServerError
	}
	events.Publish(events.PricingUpdated, map[string]string{"plan_key": key})

	return c.JSON(http.StatusOK, PricingCatalogResponse{
		Catalog: cat,
		Message: "Plan updated successfully",
	})
}

// UpdateFeaturesHandler godoc
// @Summary      Update optional feature prices
// @Description  Updates the AI Agent and Managed Services per-seat prices. Omitted fields keep their stored value.
// @Tags         admin-pricing
// @Accept       json
// @Produce      json
// @Param        updateFeaturesRequest  body  UpdateFeaturesRequest  true  "Feature price payload"
// @Success      200 {object} PricingCatalogResponse "Features updated successfully"
// @Failure      400 {object} echo.HTTPError         "Bad request"
// @Failure      401 {object} echo.HTTPError         "Unauthorized"
// @Failure      500 {object} echo.HTTPError         "Internal server error"
// @Router       /v1/admin/pricing/features [put]
func UpdateFeaturesHandler(c echo.Context) error {
	logger := c.Logger()

	var req UpdateFeaturesRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid feature update payload:", err)
		return echo.ErrBadRequest
	}

	cat := catalog.Repo.LoadPricing()
	if req.AIAgentPerSeat != nil {
		cat.OptionalFeatures.AIAgent.PerSeat = *req.AIAgentPerSeat
	}
	if req.ManagedServicesPerSeat != nil {
		cat.OptionalFeatures.ManagedServices.PerSeat = *req.ManagedServicesPerSeat
	}

	cat.Sanitize()
	if err := catalog.Repo.SavePricing(cat); err != nil {
		logger.Errorf("Failed to save pricing catalog: %v", err)
		return echo.ErrInternalServerError
	}
	events.Publish(events.PricingUpdated, nil)

	return c.JSON(http.StatusOK, PricingCatalogResponse{
		Catalog: cat,
		Message: "Features updated successfully",
	})
}

// ResetPricingCatalogHandler godoc
// @Summary      Reset the pricing catalog
// @Description  Restores the static default pricing catalog.
// @Tags         admin-pricing
// @Accept       json
// @Produce      json
// @Success      200 {object} PricingCatalogResponse "Pricing catalog reset successfully"
// @Failure      401 {object} echo.HTTPError         "Unauthorized"
// @Failure      500 {object} echo.HTTPError         "Internal server error"
// @Router       /v1/admin/pricing/reset [post]
func ResetPricingCatalogHandler(c echo.Context) error {
	logger := c.Logger()

	cat, err := catalog.Repo.ResetPricing()
	if err != nil {
		logger.Errorf("Failed to reset pricing catalog: %v", err)
		return echo.ErrInternalServerError
	}
	events.Publish(events.PricingReset, nil)

	return c.JSON(http.StatusOK, PricingCatalogResponse{
		Catalog: cat,
		Message: "Pricing catalog reset successfully",
	})
}

// ImportPricingHandler godoc
// @Summary      Import pricing from a spreadsheet
// @Description  Reads an uploaded xlsx workbook and merges its plan rows into the pricing catalog. Rows with unknown plan keys are dropped. A malformed file leaves the catalog untouched.
// @Tags         admin-pricing
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Pricing workbook (.xlsx)"
// @Success      200 {object} ImportResponse  "Pricing updated successfully from spreadsheet"
// @Failure      400 {object} echo.HTTPError  "Missing or malformed file"
// @Failure      401 {object} echo.HTTPError  "Unauthorized"
// @Failure      500 {object} echo.HTTPError  "Internal server error"
// @Router       /v1/admin/pricing/import [post]
func ImportPricingHandler(c echo.Context) error {
	logger := c.Logger()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		logger.Error("Missing spreadsheet file:", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "file field is required",
		}
	}
	file, err := fileHeader.Open()
	if err != nil {
		logger.Errorf("Failed to open uploaded file: %v", err)
		return echo.ErrInternalServerError
	}
	defer file.Close()

	rows, err := spreadsheet.ReadRows(file)
	if err != nil {
		logger.Error("Failed to parse spreadsheet:", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Error reading Excel file. Please check the format.",
		}
	}

	cat := catalog.Repo.LoadPricing()
	applied := spreadsheet.ApplyPricingRows(&cat, rows)
	cat.Sanitize()
	if err := catalog.Repo.SavePricing(cat); err != nil {
		logger.Errorf("Failed to save pricing catalog: %v", err)
		return echo.ErrInternalServerError
	}
	events.Publish(events.PricingUpdated, map[string]int{"rows_applied": applied})

	return c.JSON(http.StatusOK, ImportResponse{
		RowsApplied: applied,
		Message:     "Pricing updated successfully from Excel file!",
	})
}

// PricingTemplateHandler godoc
// @Summary      Download the pricing template
// @Description  Returns an xlsx workbook with the import column order and example plan rows.
// @Tags         admin-pricing
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200 {file} file              "pricing_template.xlsx"
// @Failure      401 {object} echo.HTTPError  "Unauthorized"
// @Failure      500 {object} echo.HTTPError  "Internal server error"
// @Router       /v1/admin/pricing/template [get]
func PricingTemplateHandler(c echo.Context) error {
	logger := c.Logger()

	f, err := spreadsheet.PricingTemplate()
	if err != nil {
		logger.Errorf("Failed to build pricing template: %v", err)
		return echo.ErrInternalServerError
	}
	defer f.Close()

	return writeWorkbook(c, f, "pricing_template.xlsx")
}

func writeWorkbook(c echo.Context, f *excelize.File, filename string) error {
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response())
}
