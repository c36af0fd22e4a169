package extract

import "strings"

// FindSectionByNumber returns the first section with the given number,
// scanning divisions and parts depth-first in document order, or nil if no
// section matches. Absence is a normal outcome, not an error.
func (d *Document) FindSectionByNumber(number string) *Section {
	for _, division := range d.Divisions {
		for _, part := range division.Parts {
			for _, section := range part.Sections {
				if section.Number == number {
					return section
				}
			}
		}
	}
	return nil
}

// MeasurementsByUnit returns all measurements carrying the given unit tag,
// in order of discovery.
func (d *Document) MeasurementsByUnit(unit Unit) []Measurement {
	matched := make([]Measurement, 0)
	for _, m := range d.Measurements {
		if m.Unit == unit {
			matched = append(matched, m)
		}
	}
	return matched
}

// RequirementsContaining returns all requirements containing the keyword,
// matched case-insensitively.
func (d *Document) RequirementsContaining(keyword string) []string {
	keyword = strings.ToLower(keyword)
	matched := make([]string, 0)
	for _, req := range d.Requirements {
		if strings.Contains(strings.ToLower(req), keyword) {
			matched = append(matched, req)
		}
	}
	return matched
}

// Statistics holds aggregate counts over a parsed document.
type Statistics struct {
	Divisions    int          `json:"divisions"`
	Parts        int          `json:"parts"`
	Sections     int          `json:"sections"`
	Articles     int          `json:"articles"`
	Subarticles  int          `json:"subarticles"`
	Clauses      int          `json:"clauses"`
	Measurements int          `json:"measurements"`
	Requirements int          `json:"requirements"`
	ByUnit       map[Unit]int `json:"measurements_by_unit"`
}

// Statistics returns aggregate counts for the document. Clause counts cover
// top-level clauses only, matching the summary the code's reporting surface
// has always printed.
func (d *Document) Statistics() Statistics {
	stats := Statistics{
		Divisions:    len(d.Divisions),
		Measurements: len(d.Measurements),
		Requirements: len(d.Requirements),
		ByUnit:       make(map[Unit]int),
	}

	for _, division := range d.Divisions {
		stats.Parts += len(division.Parts)
		for _, part := range division.Parts {
			stats.Sections += len(part.Sections)
			for _, section := range part.Sections {
				stats.Articles += len(section.Articles)
				for _, article := range section.Articles {
					stats.Subarticles += len(article.Subarticles)
					for _, subarticle := range article.Subarticles {
						stats.Clauses += len(subarticle.Clauses)
					}
				}
			}
		}
	}

	for _, m := range d.Measurements {
		stats.ByUnit[m.Unit]++
	}

	return stats
}
