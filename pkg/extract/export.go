package extract

import (
	"encoding/json"
	"io"
)

// Summary holds the top-level counts included in every export. Field names
// are a compatibility contract with downstream consumers.
type Summary struct {
	TotalDivisions    int `json:"total_divisions"`
	TotalParts        int `json:"total_parts"`
	TotalSections     int `json:"total_sections"`
	TotalMeasurements int `json:"total_measurements"`
	TotalRequirements int `json:"total_requirements"`
}

// Export is the serialized form of a parsed document: the full structural
// snapshot plus summary counts.
type Export struct {
	Structure *Document `json:"structure"`
	Summary   Summary   `json:"summary"`
}

// Export builds the serializable snapshot of the document.
func (d *Document) Export() *Export {
	stats := d.Statistics()
	return &Export{
		Structure: d,
		Summary: Summary{
			TotalDivisions:    stats.Divisions,
			TotalParts:        stats.Parts,
			TotalSections:     stats.Sections,
			TotalMeasurements: stats.Measurements,
			TotalRequirements: stats.Requirements,
		},
	}
}

// WriteJSON writes the export to w as indented JSON.
func (d *Document) WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(d.Export())
}
