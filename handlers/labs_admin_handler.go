// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"
	"strconv"
	"vsprice-server/catalog"
	"vsprice-server/events"
	"vsprice-server/spreadsheet"

	"github.com/labstack/echo/v4"
)

// CreateLabHandler godoc
// @Summary      Create a lab environment
// @Description  Appends a lab to the catalog. The identifier is one greater than the current maximum.
// @Tags         admin-labs
// @Accept       json
// @Produce      json
// @Param        createLabRequest  body  CreateLabRequest  true  "New lab payload"
// @Success      201 {object} LabResponse     "Lab created successfully"
// @Failure      400 {object} echo.HTTPError  "Bad request"
// @Failure      401 {object} echo.HTTPError  "Unauthorized"
// @Failure      500 {object} echo.HTTPError  "Internal server error"
// @Router       /v1/admin/labs [post]
func CreateLabHandler(c echo.Context) error {
	logger := c.Logger()

	var req CreateLabRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid lab payload:", err)
		return echo.ErrBadRequest
	}
	if req.Name == "" {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "name field is required",
		}
	}

	lab, err := catalog.Repo.AddLab(catalog.Lab{
		Name:        req.Name,
		Description: req.Description,
		Cost:        req.Cost,
		Status:      req.Status,
		Features:    req.Features,
	})
	if err != nil {
		logger.Errorf("Failed to add lab: %v", err)
		return echo.ErrInternalServerError
	}
	events.Publish(events.LabCreated, map[string]int{"lab_id": lab.ID})

	return c.JSON(http.StatusCreated, LabResponse{
		Lab:     lab,
		Message: "Lab created successfully",
	})
}

// UpdateLabHandler godoc
// @Summary      Update a lab environment
// @Description  Applies a partial update to one lab. Omitted fields keep their stored value.
// @Tags         admin-labs
// @Accept       json
// @Produce      json
// @Param        lab_id            path  int               true  "Lab identifier"
// @Param        updateLabRequest  body  UpdateLabRequest  true  "Lab update payload"
// @Success      200 {object} LabResponse     "Lab updated successfully"
// @Failure      400 {object} echo.HTTPError  "Bad request"
// @Failure      401 {object} echo.HTTPError  "Unauthorized"
// @Failure      404 {object} echo.HTTPError  "Unknown lab identifier"
// @Failure      500 {object} echo.HTTPError  "Internal server error"
// @Router       /v1/admin/labs/{lab_id} [patch]
func UpdateLabHandler(c echo.Context) error {
	logger := c.Logger()

	labID, err := strconv.Atoi(c.Param("lab_id"))
	if err != nil {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "lab_id must be an integer",
		}
	}

	var req UpdateLabRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid lab update payload:", err)
		return echo.ErrBadRequest
	}

	lab, found, err := catalog.Repo.UpdateLab(labID, catalog.LabPatch{
		Name:        req.Name,
		Description: req.Description,
		Cost:        req.Cost,
		Status:      req.Status,
		Features:    req.Features,
	})
	if err != nil {
		logger.Errorf("Failed to update lab: %v", err)
		return echo.ErrInternalServerError
	}
	if !found {
		return &echo.HTTPError{
			Code:    http.StatusNotFound,
			Message: "Unknown lab identifier",
		}
	}
	events.Publish(events.LabUpdated, map[string]int{"lab_id": labID})

	return c.JSON(http.StatusOK, LabResponse{
		Lab:     lab,
		Message: "Lab updated successfully",
	})
}

// DeleteLabHandler godoc
// @Summary      Delete a lab environment
// @Description  Removes one lab from the catalog. Remaining identifiers are unchanged.
// @Tags         admin-labs
// @Accept       json
// @Produce      json
// @Param        lab_id  path  int  true  "Lab identifier"
// @Success      200 {object} GenericResponse "Lab deleted successfully"
// @Failure      400 {object} echo.HTTPError  "Bad request"
// @Failure      401 {object} echo.HTTPError  "Unauthorized"
// @Failure      404 {object} echo.HTTPError  "Unknown lab identifier"
// @Failure      500 {object} echo.HTTPError  "Internal server error"
// @Router       /v1/admin/labs/{lab_id} [delete]
func DeleteLabHandler(c echo.Context) error {
	logger := c.Logger()

	labID, err := strconv.Atoi(c.Param("lab_id"))
	if err != nil {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "lab_id must be an integer",
		}
	}

	found, err := catalog.Repo.DeleteLab(labID)
	if err != nil {
		logger.Errorf("Failed to delete lab: %v", err)
		return echo.ErrInternalServerError
	}
	if !found {
		return &echo.HTTPError{
			Code:    http.StatusNotFound,
			Message: "Unknown lab identifier",
		}
	}
	events.Publish(events.LabDeleted, map[string]int{"lab_id": labID})

	return c.JSON(http.StatusOK, GenericResponse{Message: "Lab deleted successfully"})
}

// ReplaceLabsHandler godoc
// @Summary      Replace the lab catalog
// @Description  Overwrites the lab list wholesale and reassigns identifiers sequentially from 1. Page display strings are kept unless the payload supplies new ones.
// @Tags         admin-labs
// @Accept       json
// @Produce      json
// @Param        replaceLabsRequest  body  ReplaceLabsRequest  true  "Replacement lab list"
// @Success      200 {object} LabsCatalogResponse "Labs replaced successfully"
// @Failure      400 {object} echo.HTTPError      "Bad request"
// @Failure      401 {object} echo.HTTPError      "Unauthorized"
// @Failure      500 {object} echo.HTTPError      "Internal server error"
// @Router       /v1/admin/labs [put]
func ReplaceLabsHandler(c echo.Context) error {
	logger := c.Logger()

	var req ReplaceLabsRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid labs payload:", err)
		return echo.ErrBadRequest
	}

	labs := make([]catalog.Lab, 0, len(req.Labs))
	for _, l := range req.Labs {
		labs = append(labs, catalog.Lab{
			Name:        l.Name,
			Description: l.Description,
			Cost:        l.Cost,
			Status:      l.Status,
			Features:    l.Features,
		})
	}

	cat, err := catalog.Repo.ReplaceLabs(labs)
	if err != nil {
		logger.Errorf("Failed to replace labs: %v", err)
		return echo.ErrInternalServerError
	}
	if req.PageConfig != nil {
		cat, err = catalog.Repo.UpdatePageConfig(*req.PageConfig)
		if err != nil {
			logger.Errorf("Failed to update page config: %v", err)
			return echo.ErrInternalServerError
		}
	}
	events.Publish(events.LabsReplaced, map[string]int{"count": len(cat.Labs)})

	return c.JSON(http.StatusOK, LabsCatalogResponse{
		Catalog: cat,
		Message: "Labs replaced successfully",
	})
}

// ResetLabsHandler godoc
// @Summary      Reset the lab catalog
// @Description  Restores the static default lab catalog and page display strings.
// @Tags         admin-labs
// @Accept       json
// @Produce      json
// @Success      200 {object} LabsCatalogResponse "Labs reset successfully"
// @Failure      401 {object} echo.HTTPError      "Unauthorized"
// @Failure      500 {object} echo.HTTPError      "Internal server error"
// @Router       /v1/admin/labs/reset [post]
func ResetLabsHandler(c echo.Context) error {
	logger := c.Logger()

	cat, err := catalog.Repo.ResetLabs()
	if err != nil {
		logger.Errorf("Failed to reset labs: %v", err)
		return echo.ErrInternalServerError
	}
	events.Publish(events.LabsReset, nil)

	return c.JSON(http.StatusOK, LabsCatalogResponse{
		Catalog: cat,
		Message: "Labs reset successfully",
	})
}

// ImportLabsHandler godoc
// @Summary      Import labs from a spreadsheet
// @Description  Reads an uploaded xlsx workbook and replaces the lab catalog with its rows. A malformed file leaves the catalog untouched.
// @Tags         admin-labs
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Labs workbook (.xlsx)"
// @Success      200 {object} ImportResponse  "Labs imported successfully"
// @Failure      400 {object} echo.HTTPError  "Missing or malformed file"
// @Failure      401 {object} echo.HTTPError  "Unauthorized"
// @Failure      500 {object} echo.HTTPError  "Internal server error"
// @Router       /v1/admin/labs/import [post]
func ImportLabsHandler(c echo.Context) error {
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

	labs := spreadsheet.ParseLabRows(rows)
	if len(labs) == 0 {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Workbook contains no valid lab rows",
		}
	}

	if _, err := catalog.Repo.ReplaceLabs(labs); err != nil {
		logger.Errorf("Failed to replace labs: %v", err)
		return echo.ErrInternalServerError
	}
	events.Publish(events.LabsReplaced, map[string]int{"count": len(labs)})

	return c.JSON(http.StatusOK, ImportResponse{
		RowsApplied: len(labs),
		Message:     "Labs imported successfully from Excel file!",
	})
}

// LabsTemplateHandler godoc
// @Summary      Download the labs template
// @Description  Returns an xlsx workbook with the import column order and example lab rows.
// @Tags         admin-labs
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200 {file} file              "labs_template.xlsx"
// @Failure      401 {object} echo.HTTPError  "Unauthorized"
// @Failure      500 {object} echo.HTTPError  "Internal server error"
// @Router       /v1/admin/labs/template [get]
func LabsTemplateHandler(c echo.Context) error {
	logger := c.Logger()

	f, err := spreadsheet.LabsTemplate()
	if err != nil {
		logger.Errorf("Failed to build labs template: %v", err)
		return echo.ErrInternalServerError
	}
	defer f.Close()

	return writeWorkbook(c, f, "labs_template.xlsx")
}
