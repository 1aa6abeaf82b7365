package spreadsheet

import (
	"bytes"
	"strings"
	"testing"
	"vsprice-server/catalog"
)

func TestApplyPricingRows(t *testing.T) {
	cat := catalog.DefaultPricing()
	rows := [][]string{
		{"Plan Key", "Plan Name", "Validity Days", "Max Users", "Platform Per Seat", "Lab Per Seat"},
		{"BASIC", "Starter Plan", "60", "3000", "130", "80"},
		{"unknownplan", "Ghost Plan", "30", "100", "10", "10"},
		{"short", "row"},
	}

	applied := ApplyPricingRows(&cat, rows)
	if applied != 1 {
		t.Errorf("Expected 1 applied row, got %d", applied)
	}

	basic := cat.Plans["basic"]
	if basic.Name != "Starter Plan" {
		t.Errorf("Expected renamed plan, got %s", basic.Name)
	}
	if basic.ValidityDays != 60 || basic.MaxUsers != 3000 {
		t.Errorf("Expected validity 60 and max users 3000, got %d / %d", basic.ValidityDays, basic.MaxUsers)
	}
	if basic.PlatformPerSeat != 130 || basic.LabPerSeat != 80 {
		t.Errorf("Expected prices 130/80, got %v / %v", basic.PlatformPerSeat, basic.LabPerSeat)
	}

	if _, ok := cat.Plans["unknownplan"]; ok {
		t.Error("Unknown plan keys must not create plans")
	}
	if len(cat.Plans) != 4 {
		t.Errorf("Expected 4 plans, got %d", len(cat.Plans))
	}
}

func TestApplyPricingRowsZeroKeepsExisting(t *testing.T) {
	cat := catalog.DefaultPricing()
	rows := [][]string{
		{"header"},
		{"basic", "", "0", "not-a-number", "0", ""},
	}

	applied := ApplyPricingRows(&cat, rows)
	if applied != 1 {
		t.Errorf("Expected row applied, got %d", applied)
	}

	basic := cat.Plans["basic"]
	if basic.Name != "Basic Plan" {
		t.Errorf("Expected name kept, got %s", basic.Name)
	}
	if basic.ValidityDays != 45 || basic.MaxUsers != 2000 {
		t.Errorf("Expected validity/max kept, got %d / %d", basic.ValidityDays, basic.MaxUsers)
	}
	if basic.PlatformPerSeat != 125 || basic.LabPerSeat != 75 {
		t.Errorf("Expected prices kept, got %v / %v", basic.PlatformPerSeat, basic.LabPerSeat)
	}
}

func TestParseLabRows(t *testing.T) {
	rows := [][]string{
		{"Name", "Description", "Cost", "Status", "Features"},
		{"Quantum Lab", "Qubits for rent.", "$1.00/hour", "Coming Soon", "Entanglement, Error Correction"},
		{"short"},
		{"Robotics Lab", "Arms and legs.", "$0.80/hour", "Available", ""},
	}

	labs := ParseLabRows(rows)
	if len(labs) != 2 {
		t.Fatalf("Expected 2 labs, got %d", len(labs))
	}
	if labs[0].ID != 1 || labs[1].ID != 2 {
		t.Errorf("Expected sequential ids from 1, got %d / %d", labs[0].ID, labs[1].ID)
	}
	if labs[0].Name != "Quantum Lab" || labs[0].Status != "Coming Soon" {
		t.Errorf("Unexpected first lab: %+v", labs[0])
	}
	if len(labs[0].Features) != 2 || labs[0].Features[1] != "Error Correction" {
		t.Errorf("Expected trimmed feature list, got %v", labs[0].Features)
	}
	if len(labs[1].Features) != 0 {
		t.Errorf("Expected empty feature list, got %v", labs[1].Features)
	}
}

func TestPricingTemplateRoundTrip(t *testing.T) {
	f, err := PricingTemplate()
	if err != nil {
		t.Fatalf("PricingTemplate failed: %v", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("Failed to write workbook: %v", err)
	}

	rows, err := ReadRows(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ReadRows failed: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("Expected header + 4 plan rows, got %d", len(rows))
	}
	if rows[0][0] != "Plan Key" {
		t.Errorf("Expected header row, got %v", rows[0])
	}
	if rows[1][0] != "free" || rows[2][0] != "basic" {
		t.Errorf("Expected free then basic rows, got %v / %v", rows[1][0], rows[2][0])
	}

	// The template must be importable as-is and change nothing.
	cat := catalog.DefaultPricing()
	if applied := ApplyPricingRows(&cat, rows); applied != 4 {
		t.Errorf("Expected all 4 template rows applied, got %d", applied)
	}
	if cat.Plans["basic"].PlatformPerSeat != 125 {
		t.Errorf("Template import should be a no-op, got %v", cat.Plans["basic"].PlatformPerSeat)
	}
}

func TestLabsTemplateRoundTrip(t *testing.T) {
	f, err := LabsTemplate()
	if err != nil {
		t.Fatalf("LabsTemplate failed: %v", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("Failed to write workbook: %v", err)
	}

	rows, err := ReadRows(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ReadRows failed: %v", err)
	}

	labs := ParseLabRows(rows)
	if len(labs) != 8 {
		t.Fatalf("Expected 8 labs from template, got %d", len(labs))
	}
	if labs[0].Name != "AI Research Lab" {
		t.Errorf("Unexpected first lab name: %s", labs[0].Name)
	}
	if labs[0].Cost != "$0.50/hour" {
		t.Errorf("Expected cost string passed through, got %s", labs[0].Cost)
	}
	if strings.Join(labs[0].Features, "|") != "GPU Clusters|ML Frameworks|Data Processing|Model Training" {
		t.Errorf("Unexpected features: %v", labs[0].Features)
	}
}

func TestReadRowsRejectsGarbage(t *testing.T) {
	if _, err := ReadRows(strings.NewReader("this is not a workbook")); err == nil {
		t.Error("Expected error for malformed workbook data")
	}
}
