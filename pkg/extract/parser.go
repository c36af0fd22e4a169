// Package extract provides document parsing and structure extraction for
// building-code texts. It segments loosely formatted code text into the
// Division > Part > Section > Article > Subarticle > Clause hierarchy and
// mines measurement and requirement facts from each division.
package extract

import (
	"fmt"
	"io"
	"regexp"
	"sync"
)

// Document represents a fully parsed building-code document. It is built in
// one pass by Parser.ParseContent and never mutated afterwards; all query
// methods are pure reads.
type Document struct {
	Divisions    []*Division   `json:"divisions"`
	Measurements []Measurement `json:"measurements"`
	Requirements []string      `json:"requirements"`
}

// Division represents a lettered division of the code (Division A, B, C).
type Division struct {
	Letter  string  `json:"letter"`
	Content string  `json:"content"`
	Parts   []*Part `json:"parts"`
}

// Part represents a numbered part within a division.
type Part struct {
	Number   string     `json:"number"`
	Title    string     `json:"title"`
	Content  string     `json:"content"`
	Sections []*Section `json:"sections"`
}

// Section represents a section within a part (e.g. "9.1").
type Section struct {
	Number   string     `json:"number"`
	Title    string     `json:"title"`
	Content  string     `json:"content"`
	Articles []*Article `json:"articles"`
}

// Article represents an article within a section (e.g. "9.1.1").
type Article struct {
	Number      string        `json:"number"`
	Title       string        `json:"title"`
	Content     string        `json:"content"`
	Subarticles []*Subarticle `json:"subarticles"`
}

// Subarticle represents a subarticle within an article (e.g. "9.1.1.1").
type Subarticle struct {
	Number  string    `json:"number"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Clauses []*Clause `json:"clauses"`
}

// Clause represents a clause within a subarticle, or a sub-clause within
// another clause. The heading token keeps its closing parenthesis ("1)",
// "a)", "ii)"). Content covers the clause's whole span, including the text
// of any sub-clauses found inside it.
type Clause struct {
	Number     string    `json:"number"`
	Content    string    `json:"content"`
	SubClauses []*Clause `json:"sub_clauses"`
}

// Parser parses building-code text into structured form. A Parser carries
// only compiled patterns and is safe for concurrent use.
type Parser struct {
	division   levelGrammar
	part       levelGrammar
	section    levelGrammar
	article    levelGrammar
	subarticle levelGrammar
	clause     levelGrammar
	subClause  levelGrammar

	measurementPatterns []*regexp.Regexp
	requirementPatterns []*regexp.Regexp
}

// NewParser creates a new Parser with compiled patterns for the Ontario-style
// building-code hierarchy.
func NewParser() *Parser {
	return &Parser{
		division:   levelGrammar{name: "division", heading: regexp.MustCompile(`(?m)^Division[ \t]+([A-Z])[ \t]*$`)},
		part:       levelGrammar{name: "part", heading: regexp.MustCompile(`(?m)^Part[ \t]+(\d+)[ \t]*$`), hasTitle: true},
		section:    levelGrammar{name: "section", heading: regexp.MustCompile(`(?m)^Section[ \t]+(\d+\.\d+)\.?[ \t]*$`), hasTitle: true},
		article:    levelGrammar{name: "article", heading: regexp.MustCompile(`(?m)^(\d+\.\d+\.\d+)\.?[ \t]*$`), hasTitle: true},
		subarticle: levelGrammar{name: "subarticle", heading: regexp.MustCompile(`(?m)^(\d+\.\d+\.\d+\.\d+)\.?[ \t]*$`), hasTitle: true},

		// Clause headings mix numbering alphabets: digits, single lowercase
		// letters, and lowercase roman numerals. A run of letters drawn only
		// from {i,v,x} is treated as roman.
		clause:    levelGrammar{name: "clause", heading: regexp.MustCompile(`(?m)^(\d+\)|[a-z]\)|[ivx]+\))\s+`)},
		subClause: levelGrammar{name: "sub-clause", heading: regexp.MustCompile(`(?m)^([a-z]\)|[ivx]+\))\s+`)},

		measurementPatterns: compileMeasurementPatterns(),
		requirementPatterns: compileRequirementPatterns(),
	}
}

// Parse reads all text from r and parses it. The only error condition is a
// failing reader; any content, including empty content, parses successfully.
func (p *Parser) Parse(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return p.ParseContent(string(data)), nil
}

// ParseContent parses building-code text into a Document. Parsing is total:
// text with no recognizable structure yields a Document with empty divisions
// and fact lists. Divisions are parsed concurrently and reassembled in
// source order.
func (p *Parser) ParseContent(content string) *Document {
	doc := &Document{
		Divisions:    make([]*Division, 0),
		Measurements: make([]Measurement, 0),
		Requirements: make([]string, 0),
	}

	bounds := p.division.segments(content)
	if len(bounds) == 0 {
		return doc
	}

	type divisionResult struct {
		division     *Division
		measurements []Measurement
		requirements []string
	}

	// Each division's sub-tree and fact mining are independent of every
	// other division's, so they run in parallel; the indexed slice keeps
	// the final Document in source order.
	results := make([]divisionResult, len(bounds))
	var wg sync.WaitGroup
	for i, b := range bounds {
		wg.Add(1)
		go func(i int, b segment) {
			defer wg.Done()
			results[i] = divisionResult{
				division: &Division{
					Letter:  b.heading,
					Content: b.body,
					Parts:   p.parseParts(b.body),
				},
				measurements: p.ExtractMeasurements(b.body),
				requirements: p.ExtractRequirements(b.body),
			}
		}(i, b)
	}
	wg.Wait()

	for _, r := range results {
		doc.Divisions = append(doc.Divisions, r.division)
		doc.Measurements = append(doc.Measurements, r.measurements...)
		doc.Requirements = append(doc.Requirements, r.requirements...)
	}
	return doc
}

// parseParts parses parts within division content.
func (p *Parser) parseParts(content string) []*Part {
	bounds := p.part.segments(content)
	parts := make([]*Part, 0, len(bounds))
	for _, b := range bounds {
		parts = append(parts, &Part{
			Number:   b.heading,
			Title:    b.title,
			Content:  b.body,
			Sections: p.parseSections(b.body),
		})
	}
	return parts
}

// parseSections parses sections within part content.
func (p *Parser) parseSections(content string) []*Section {
	bounds := p.section.segments(content)
	sections := make([]*Section, 0, len(bounds))
	for _, b := range bounds {
		sections = append(sections, &Section{
			Number:   b.heading,
			Title:    b.title,
			Content:  b.body,
			Articles: p.parseArticles(b.body),
		})
	}
	return sections
}

// parseArticles parses articles within section content.
func (p *Parser) parseArticles(content string) []*Article {
	bounds := p.article.segments(content)
	articles := make([]*Article, 0, len(bounds))
	for _, b := range bounds {
		articles = append(articles, &Article{
			Number:      b.heading,
			Title:       b.title,
			Content:     b.body,
			Subarticles: p.parseSubarticles(b.body),
		})
	}
	return articles
}

// parseSubarticles parses subarticles within article content.
func (p *Parser) parseSubarticles(content string) []*Subarticle {
	bounds := p.subarticle.segments(content)
	subarticles := make([]*Subarticle, 0, len(bounds))
	for _, b := range bounds {
		subarticles = append(subarticles, &Subarticle{
			Number:  b.heading,
			Title:   b.title,
			Content: b.body,
			Clauses: p.parseClauses(b.body, p.clause),
		})
	}
	return subarticles
}

// parseClauses parses clauses using the given grammar and re-enters the
// sub-clause grammar on each clause body. Recursion reaches a fixed point
// when a body contains no further headings; a clause body never contains its
// own heading, so each level strictly shrinks.
func (p *Parser) parseClauses(content string, g levelGrammar) []*Clause {
	bounds := g.segments(content)
	clauses := make([]*Clause, 0, len(bounds))
	for _, b := range bounds {
		clauses = append(clauses, &Clause{
			Number:     b.heading,
			Content:    b.body,
			SubClauses: p.parseClauses(b.body, p.subClause),
		})
	}
	return clauses
}
