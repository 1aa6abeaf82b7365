// SPDX-License-Identifier: GPL-3.0-only

// Package spreadsheet converts xlsx workbooks to and from catalog
// records. Import reads the first sheet positionally; malformed rows are
// skipped, never fatal.
package spreadsheet

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"vsprice-server/catalog"

	"github.com/xuri/excelize/v2"
)

const (
	PricingSheet = "Pricing"
	LabsSheet    = "Labs"
)

var (
	pricingHeader = []any{"Plan Key", "Plan Name", "Validity Days", "Max Users", "Platform Per Seat", "Lab Per Seat"}
	labsHeader    = []any{"Name", "Description", "Cost", "Status", "Features"}
)

// ReadRows opens a workbook and returns the cell rows of its first
// sheet, header row included.
func ReadRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

// ApplyPricingRows merges spreadsheet rows into the pricing catalog and
// reports how many rows were applied. Row 0 is the header. A row needs
// at least 6 cells and its lower-cased plan key must match an existing
// plan; unknown keys are dropped, not created. Empty, zero, or
// unparsable cells keep the stored field value.
func ApplyPricingRows(cat *catalog.PricingCatalog, rows [][]string) int {
	applied := 0
	for i, row := range rows {
		if i == 0 || len(row) < 6 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(row[0]))
		plan, ok := cat.Plans[key]
		if !ok {
			continue
		}
		if name := strings.TrimSpace(row[1]); name != "" {
			plan.Name = name
		}
		if v, err := strconv.Atoi(strings.TrimSpace(row[2])); err == nil && v != 0 {
			plan.ValidityDays = v
		}
		if v, err := strconv.Atoi(strings.TrimSpace(row[3])); err == nil && v != 0 {
			plan.MaxUsers = v
		}
		if v, err := strconv.ParseFloat(strings.TrimSpace(row[4]), 64); err == nil && v != 0 {
			plan.PlatformPerSeat = v
		}
		if v, err := strconv.ParseFloat(strings.TrimSpace(row[5]), 64); err == nil && v != 0 {
			plan.LabPerSeat = v
		}
		cat.Plans[key] = plan
		applied++
	}
	return applied
}

// ParseLabRows builds a replacement lab list from spreadsheet rows.
// Row 0 is the header; a row needs at least 5 cells. Ids are assigned
// sequentially from 1.
func ParseLabRows(rows [][]string) []catalog.Lab {
	labs := []catalog.Lab{}
	for i, row := range rows {
		if i == 0 || len(row) < 5 {
			continue
		}
		features := []string{}
		for _, feature := range strings.Split(row[4], ",") {
			if feature = strings.TrimSpace(feature); feature != "" {
				features = append(features, feature)
			}
		}
		labs = append(labs, catalog.Lab{
			ID:          len(labs) + 1,
			Name:        strings.TrimSpace(row[0]),
			Description: strings.TrimSpace(row[1]),
			Cost:        strings.TrimSpace(row[2]),
			Status:      strings.TrimSpace(row[3]),
			Features:    features,
		})
	}
	return labs
}

// PricingTemplate builds the authoring-aid workbook: the import column
// order with the default plans as example rows.
func PricingTemplate() (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", PricingSheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(PricingSheet, "A1", &pricingHeader); err != nil {
		return nil, err
	}
	cat := catalog.DefaultPricing()
	keys := append([]string{catalog.FreePlanKey}, catalog.PaidPlanKeys...)
	rowNum := 2
	for _, key := range keys {
		plan, ok := cat.Plans[key]
		if !ok {
			continue
		}
		row := []any{plan.Key, plan.Name, plan.ValidityDays, plan.MaxUsers, plan.PlatformPerSeat, plan.LabPerSeat}
		if err := f.SetSheetRow(PricingSheet, fmt.Sprintf("A%d", rowNum), &row); err != nil {
			return nil, err
		}
		rowNum++
	}
	if err := f.SetColWidth(PricingSheet, "A", "F", 16); err != nil {
		return nil, err
	}
	return f, nil
}

// LabsTemplate builds the labs authoring workbook from the default labs.
func LabsTemplate() (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", LabsSheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(LabsSheet, "A1", &labsHeader); err != nil {
		return nil, err
	}
	cat := catalog.DefaultLabs()
	for i, lab := range cat.Labs {
		row := []any{lab.Name, lab.Description, lab.Cost, lab.Status, strings.Join(lab.Features, ", ")}
		if err := f.SetSheetRow(LabsSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(LabsSheet, "A", "E", 28); err != nil {
		return nil, err
	}
	return f, nil
}
