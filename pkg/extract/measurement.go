package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Unit identifies a normalized physical unit for a mined measurement.
type Unit string

const (
	UnitFeet        Unit = "feet"
	UnitMeters      Unit = "meters"
	UnitInches      Unit = "inches"
	UnitMillimeters Unit = "millimeters"
	UnitCentimeters Unit = "centimeters"
	UnitKilopascals Unit = "kilopascals"
	UnitMegapascals Unit = "megapascals"
	UnitKilonewtons Unit = "kilonewtons"
	UnitKilograms   Unit = "kilograms"
	UnitUnknown     Unit = "unknown"
)

// Measurement is a mined quantity: a numeric value, its normalized unit, a
// context window of surrounding text, and the literal matched text.
type Measurement struct {
	Value     float64 `json:"value"`
	Unit      Unit    `json:"unit"`
	Context   string  `json:"context"`
	FullMatch string  `json:"full_match"`
}

// contextWindow is the number of characters of surrounding text captured on
// each side of a measurement match.
const contextWindow = 100

const unitAlternation = `(?:feet|ft|meters?|m|inches?|in|mm|cm|kPa|MPa|kN|kg)`

// compileMeasurementPatterns returns the measurement pattern families in
// their fixed scan order. The families overlap on purpose: a qualified match
// like "minimum 50 mm" is also found by the generic family and by the bare
// mm/cm family, so the same quantity can be emitted more than once with
// different matched literals. Downstream consumers rely on that value
// distribution, so the duplication is kept.
func compileMeasurementPatterns() []*regexp.Regexp {
	return []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*` + unitAlternation + `\b`),
		regexp.MustCompile(`(?i)minimum\s+(\d+(?:\.\d+)?)\s*` + unitAlternation + `\b`),
		regexp.MustCompile(`(?i)maximum\s+(\d+(?:\.\d+)?)\s*` + unitAlternation + `\b`),
		regexp.MustCompile(`(?i)not\s+less\s+than\s+(\d+(?:\.\d+)?)\s*` + unitAlternation + `\b`),
		regexp.MustCompile(`(?i)not\s+more\s+than\s+(\d+(?:\.\d+)?)\s*` + unitAlternation + `\b`),
		regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:kPa|MPa|kN|kg)\b`),
		regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:mm|cm)\b`),
	}
}

// ExtractMeasurements scans content for unit-bearing quantities and returns
// them in order of discovery. Candidates whose numeric portion does not
// parse as a float are dropped silently.
func (p *Parser) ExtractMeasurements(content string) []Measurement {
	measurements := make([]Measurement, 0)
	for _, re := range p.measurementPatterns {
		for _, m := range re.FindAllStringSubmatchIndex(content, -1) {
			full := content[m[0]:m[1]]
			value, err := strconv.ParseFloat(content[m[2]:m[3]], 64)
			if err != nil {
				continue
			}
			measurements = append(measurements, Measurement{
				Value:     value,
				Unit:      NormalizeUnit(full),
				Context:   matchContext(content, m[0], m[1]),
				FullMatch: full,
			})
		}
	}
	return measurements
}

var (
	meterToken = regexp.MustCompile(`\bm\b`)
	inchToken  = regexp.MustCompile(`\bin\b`)
)

// NormalizeUnit picks the unit tag for a matched literal by lowercase
// inspection, first matching family wins. The bare "m" and "in" spellings
// are matched as standalone tokens so "50 mm" normalizes to millimeters and
// "5 in" to inches.
func NormalizeUnit(match string) Unit {
	s := strings.ToLower(match)
	switch {
	case strings.Contains(s, "feet") || strings.Contains(s, "ft"):
		return UnitFeet
	case strings.Contains(s, "meter") || meterToken.MatchString(s):
		return UnitMeters
	case strings.Contains(s, "inch") || inchToken.MatchString(s):
		return UnitInches
	case strings.Contains(s, "mm"):
		return UnitMillimeters
	case strings.Contains(s, "cm"):
		return UnitCentimeters
	case strings.Contains(s, "kpa"):
		return UnitKilopascals
	case strings.Contains(s, "mpa"):
		return UnitMegapascals
	case strings.Contains(s, "kn"):
		return UnitKilonewtons
	case strings.Contains(s, "kg"):
		return UnitKilograms
	}
	return UnitUnknown
}

// matchContext returns up to contextWindow characters of text on each side
// of the match, clipped at the text boundaries and trimmed.
func matchContext(content string, start, end int) string {
	from := start - contextWindow
	if from < 0 {
		from = 0
	}
	to := end + contextWindow
	if to > len(content) {
		to = len(content)
	}
	return strings.TrimSpace(content[from:to])
}
