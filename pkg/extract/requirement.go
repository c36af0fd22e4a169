package extract

import (
	"regexp"
	"strings"
)

// requirementCues are the obligation cue words that open a requirement
// statement. Each cue captures from the cue word up to and including the
// next period.
var requirementCues = []string{
	"shall",
	"must",
	"required",
	"mandatory",
	"conform",
	"comply",
}

func compileRequirementPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(requirementCues))
	for _, cue := range requirementCues {
		patterns = append(patterns, regexp.MustCompile(`(?i)`+cue+`\s+[^.]*\.`))
	}
	return patterns
}

// ExtractRequirements scans content for obligation statements and returns
// the trimmed matched sentence fragments in order of discovery. A sentence
// containing several cues produces one fragment per cue; overlapping results
// are kept, not deduplicated.
func (p *Parser) ExtractRequirements(content string) []string {
	requirements := make([]string, 0)
	for _, re := range p.requirementPatterns {
		for _, match := range re.FindAllString(content, -1) {
			requirements = append(requirements, strings.TrimSpace(match))
		}
	}
	return requirements
}
