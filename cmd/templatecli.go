// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"flag"
	"log"
	"path/filepath"
	"vsprice-server/spreadsheet"

	"github.com/xuri/excelize/v2"
)

func writeTemplate(build func() (*excelize.File, error), path string) {
	f, err := build()
	if err != nil {
		log.Fatalf("Template build failed: %v", err)
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		log.Fatalf("Template write failed: %v", err)
	}
	log.Printf("Wrote %s", path)
}

func main() {
	outDir := flag.String("out", ".", "Output directory")
	which := flag.String("type", "all", "Template to generate: pricing, labs or all")
	flag.Parse()

	switch *which {
	case "pricing":
		writeTemplate(spreadsheet.PricingTemplate, filepath.Join(*outDir, "pricing_template.xlsx"))
	case "labs":
		writeTemplate(spreadsheet.LabsTemplate, filepath.Join(*outDir, "labs_template.xlsx"))
	case "all":
		writeTemplate(spreadsheet.PricingTemplate, filepath.Join(*outDir, "pricing_template.xlsx"))
		writeTemplate(spreadsheet.LabsTemplate, filepath.Join(*outDir, "labs_template.xlsx"))
	default:
		log.Fatalf("Unknown template type: %s", *which)
	}
}

// go run ./cmd/templatecli.go -out ./templates
