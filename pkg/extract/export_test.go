package extract

import (
	"bytes"
	"encoding/json"
	"testing"
)

const exportFixture = `Division A
Part 1
Title of Part 1
Section 1.1
Title of Section 1.1
1.1.1
Title of Article 1.1.1
1.1.1.1
Title of Subarticle 1.1.1.1
1) Footings shall be not less than 200 mm thick.
`

func TestExport_Summary(t *testing.T) {
	doc := NewParser().ParseContent(exportFixture)
	export := doc.Export()

	if export.Summary.TotalDivisions != 1 {
		t.Errorf("total_divisions mismatch: got %d, want 1", export.Summary.TotalDivisions)
	}
	if export.Summary.TotalParts != 1 {
		t.Errorf("total_parts mismatch: got %d, want 1", export.Summary.TotalParts)
	}
	if export.Summary.TotalSections != 1 {
		t.Errorf("total_sections mismatch: got %d, want 1", export.Summary.TotalSections)
	}
	if export.Summary.TotalMeasurements != len(doc.Measurements) {
		t.Errorf("total_measurements mismatch: got %d, want %d",
			export.Summary.TotalMeasurements, len(doc.Measurements))
	}
	if export.Summary.TotalRequirements != len(doc.Requirements) {
		t.Errorf("total_requirements mismatch: got %d, want %d",
			export.Summary.TotalRequirements, len(doc.Requirements))
	}
}

// TestWriteJSON_Shape pins the exact field names and nesting of the export,
// which downstream consumers depend on.
func TestWriteJSON_Shape(t *testing.T) {
	doc := NewParser().ParseContent(exportFixture)

	var buf bytes.Buffer
	if err := doc.WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var export map[string]any
	if err := json.Unmarshal(buf.Bytes(), &export); err != nil {
		t.Fatalf("Export is not valid JSON: %v", err)
	}

	structure, ok := export["structure"].(map[string]any)
	if !ok {
		t.Fatal("Missing structure object")
	}
	summary, ok := export["summary"].(map[string]any)
	if !ok {
		t.Fatal("Missing summary object")
	}

	for _, key := range []string{"total_divisions", "total_parts", "total_sections",
		"total_measurements", "total_requirements"} {
		if _, ok := summary[key]; !ok {
			t.Errorf("Summary missing key %q", key)
		}
	}

	divisions, ok := structure["divisions"].([]any)
	if !ok || len(divisions) != 1 {
		t.Fatalf("Expected one division in structure, got %v", structure["divisions"])
	}
	division := divisions[0].(map[string]any)
	for _, key := range []string{"letter", "content", "parts"} {
		if _, ok := division[key]; !ok {
			t.Errorf("Division missing key %q", key)
		}
	}

	part := division["parts"].([]any)[0].(map[string]any)
	for _, key := range []string{"number", "title", "content", "sections"} {
		if _, ok := part[key]; !ok {
			t.Errorf("Part missing key %q", key)
		}
	}

	section := part["sections"].([]any)[0].(map[string]any)
	article := section["articles"].([]any)[0].(map[string]any)
	subarticle := article["subarticles"].([]any)[0].(map[string]any)
	clauses := subarticle["clauses"].([]any)
	if len(clauses) != 1 {
		t.Fatalf("Expected one clause, got %d", len(clauses))
	}
	clause := clauses[0].(map[string]any)
	for _, key := range []string{"number", "content", "sub_clauses"} {
		if _, ok := clause[key]; !ok {
			t.Errorf("Clause missing key %q", key)
		}
	}
	if _, ok := clause["sub_clauses"].([]any); !ok {
		t.Error("sub_clauses must serialize as a list, not null")
	}

	measurements, ok := structure["measurements"].([]any)
	if !ok || len(measurements) == 0 {
		t.Fatalf("Expected measurements in structure, got %v", structure["measurements"])
	}
	measurement := measurements[0].(map[string]any)
	for _, key := range []string{"value", "unit", "context", "full_match"} {
		if _, ok := measurement[key]; !ok {
			t.Errorf("Measurement missing key %q", key)
		}
	}

	requirements, ok := structure["requirements"].([]any)
	if !ok || len(requirements) == 0 {
		t.Fatalf("Expected requirements in structure, got %v", structure["requirements"])
	}
	if _, ok := requirements[0].(string); !ok {
		t.Errorf("Requirements must serialize as plain strings, got %T", requirements[0])
	}
}

func TestWriteJSON_EmptyDocument(t *testing.T) {
	doc := NewParser().ParseContent("")

	var buf bytes.Buffer
	if err := doc.WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var export map[string]any
	if err := json.Unmarshal(buf.Bytes(), &export); err != nil {
		t.Fatalf("Export is not valid JSON: %v", err)
	}
	structure := export["structure"].(map[string]any)
	if _, ok := structure["divisions"].([]any); !ok {
		t.Error("divisions must serialize as a list, not null")
	}
	if _, ok := structure["measurements"].([]any); !ok {
		t.Error("measurements must serialize as a list, not null")
	}
	if _, ok := structure["requirements"].([]any); !ok {
		t.Error("requirements must serialize as a list, not null")
	}
}
