package extract

import (
	"reflect"
	"testing"
)

func TestExtractRequirements_SingleCue(t *testing.T) {
	parser := NewParser()
	requirements := parser.ExtractRequirements("Walls shall be concrete.")

	want := []string{"shall be concrete."}
	if !reflect.DeepEqual(requirements, want) {
		t.Errorf("Requirements mismatch: got %v, want %v", requirements, want)
	}
}

func TestExtractRequirements_CaseInsensitive(t *testing.T) {
	parser := NewParser()
	requirements := parser.ExtractRequirements("The assembly SHALL resist fire.")

	want := []string{"SHALL resist fire."}
	if !reflect.DeepEqual(requirements, want) {
		t.Errorf("Requirements mismatch: got %v, want %v", requirements, want)
	}
}

func TestExtractRequirements_MultipleCuesOverlap(t *testing.T) {
	parser := NewParser()
	requirements := parser.ExtractRequirements("Doors must comply with the standard.")

	// "must" and "comply" each produce a fragment; overlapping content is
	// kept, not deduplicated.
	want := []string{
		"must comply with the standard.",
		"comply with the standard.",
	}
	if !reflect.DeepEqual(requirements, want) {
		t.Errorf("Requirements mismatch: got %v, want %v", requirements, want)
	}
}

func TestExtractRequirements_StopsAtPeriod(t *testing.T) {
	parser := NewParser()
	requirements := parser.ExtractRequirements("Beams shall be steel. They may be painted.")

	want := []string{"shall be steel."}
	if !reflect.DeepEqual(requirements, want) {
		t.Errorf("Requirements mismatch: got %v, want %v", requirements, want)
	}
}

func TestExtractRequirements_AllCues(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    string
	}{
		{"shall", "Stairs shall have handrails.", "shall have handrails."},
		{"must", "Exits must be marked.", "must be marked."},
		{"required", "Sprinklers are required in storage rooms.", "required in storage rooms."},
		{"mandatory", "Alarms are mandatory on every floor.", "mandatory on every floor."},
		{"conform", "Windows conform to the glazing standard.", "conform to the glazing standard."},
		{"comply", "Railings comply with the loading table.", "comply with the loading table."},
	}

	parser := NewParser()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			requirements := parser.ExtractRequirements(tc.content)
			found := false
			for _, req := range requirements {
				if req == tc.want {
					found = true
				}
			}
			if !found {
				t.Errorf("Expected %q among %v", tc.want, requirements)
			}
		})
	}
}

func TestExtractRequirements_NoCues(t *testing.T) {
	parser := NewParser()
	requirements := parser.ExtractRequirements("A plain descriptive sentence.")

	if len(requirements) != 0 {
		t.Errorf("Expected no requirements, got %v", requirements)
	}
}
