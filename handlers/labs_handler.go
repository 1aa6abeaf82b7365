// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"
	"vsprice-server/catalog"

	"github.com/labstack/echo/v4"
)

// GetLabsHandler godoc
// @Summary      Get lab environments
// @Description  Retrieves the lab catalog with page display strings. An optional status query filters the list.
// @Tags         labs
// @Accept       json
// @Produce      json
// @Param        status  query  string  false  "Filter by status, e.g. Available"
// @Success      200 {object} LabsResponse "Labs retrieved successfully"
// @Router       /v1/labs [get]
func GetLabsHandler(c echo.Context) error {
	cat := catalog.Repo.LoadLabs()

	labs := cat.Labs
	if status := c.QueryParam("status"); status != "" {
		labs = catalog.Repo.LabsByStatus(status)
	}
	if labs == nil {
		labs = []catalog.Lab{}
	}

	available := 0
	for _, l := range cat.Labs {
		if l.Status == catalog.StatusAvailable {
			available++
		}
	}

	return c.JSON(http.StatusOK, LabsResponse{
		Labs:           labs,
		PageConfig:     cat.PageConfig,
		AvailableCount: available,
		Message:        "Labs retrieved successfully",
	})
}
