package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/coolbeans/buildcode/pkg/extract"
	"github.com/coolbeans/buildcode/pkg/source"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "buildcode",
		Short: "Building-code structure extractor",
		Long: `Buildcode parses building-code text into a navigable hierarchy
(divisions, parts, sections, articles, subarticles, clauses) and mines
measurements and requirement statements from it.

It produces:
  - A structural JSON snapshot with summary counts
  - Section lookup by number
  - Measurement listings filtered by unit
  - Requirement listings filtered by keyword`,
		Version: version,
	}

	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(sectionCmd())
	rootCmd.AddCommand(measurementsCmd())
	rootCmd.AddCommand(requirementsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadDocument reads and parses the source document for a subcommand.
func loadDocument(src string) (*extract.Document, error) {
	if src == "" {
		return nil, fmt.Errorf("--source flag is required")
	}
	text, err := source.Load(src)
	if err != nil {
		return nil, err
	}
	return extract.NewParser().ParseContent(text), nil
}

func parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse a building-code document",
		Long: `Parse a building-code text document and print summary statistics.

Example:
  buildcode parse --source building-code.txt
  buildcode parse --source building-code.txt --output parsed.json --stats`,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, _ := cmd.Flags().GetString("source")
			output, _ := cmd.Flags().GetString("output")
			showStats, _ := cmd.Flags().GetBool("stats")

			doc, err := loadDocument(src)
			if err != nil {
				return err
			}

			stats := doc.Statistics()
			fmt.Printf("Parsed %s: %d divisions, %d parts, %d sections\n",
				src, stats.Divisions, stats.Parts, stats.Sections)
			fmt.Printf("Mined %d measurements, %d requirements\n",
				stats.Measurements, stats.Requirements)

			if showStats {
				fmt.Println("\nDocument statistics:")
				fmt.Printf("  Divisions:    %d\n", stats.Divisions)
				fmt.Printf("  Parts:        %d\n", stats.Parts)
				fmt.Printf("  Sections:     %d\n", stats.Sections)
				fmt.Printf("  Articles:     %d\n", stats.Articles)
				fmt.Printf("  Subarticles:  %d\n", stats.Subarticles)
				fmt.Printf("  Clauses:      %d\n", stats.Clauses)
				fmt.Printf("  Measurements: %d\n", stats.Measurements)
				fmt.Printf("  Requirements: %d\n", stats.Requirements)

				fmt.Println("\nMeasurements by unit:")
				units := make([]string, 0, len(stats.ByUnit))
				for unit := range stats.ByUnit {
					units = append(units, string(unit))
				}
				sort.Strings(units)
				for _, unit := range units {
					fmt.Printf("  %-12s %d\n", unit, stats.ByUnit[extract.Unit(unit)])
				}
			}

			if output != "" {
				file, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer file.Close()
				if err := doc.WriteJSON(file); err != nil {
					return fmt.Errorf("failed to write export: %w", err)
				}
				fmt.Printf("\nExport saved to: %s\n", output)
			}

			return nil
		},
	}

	cmd.Flags().StringP("source", "s", "", "Source document path")
	cmd.Flags().StringP("output", "o", "", "Output file for the JSON export")
	cmd.Flags().Bool("stats", false, "Show detailed statistics")

	return cmd
}

func sectionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "section [number]",
		Short: "Look up a section by number",
		Long: `Look up a section by its dotted number (e.g. "9.1").

A section that does not exist is reported, not treated as a failure.

Example:
  buildcode section 9.1 --source building-code.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, _ := cmd.Flags().GetString("source")

			doc, err := loadDocument(src)
			if err != nil {
				return err
			}

			section := doc.FindSectionByNumber(args[0])
			if section == nil {
				fmt.Printf("Section %s not found\n", args[0])
				return nil
			}

			fmt.Printf("Section %s: %s\n", section.Number, section.Title)
			fmt.Printf("Articles: %d\n", len(section.Articles))
			for _, article := range section.Articles {
				fmt.Printf("  %s  %s\n", article.Number, article.Title)
			}
			return nil
		},
	}

	cmd.Flags().StringP("source", "s", "", "Source document path")

	return cmd
}

func measurementsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "measurements",
		Short: "List mined measurements",
		Long: `List measurements mined from a building-code document, optionally
filtered by normalized unit tag (feet, meters, inches, millimeters,
centimeters, kilopascals, megapascals, kilonewtons, kilograms).

Example:
  buildcode measurements --source building-code.txt --unit millimeters`,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, _ := cmd.Flags().GetString("source")
			unit, _ := cmd.Flags().GetString("unit")
			limit, _ := cmd.Flags().GetInt("limit")

			doc, err := loadDocument(src)
			if err != nil {
				return err
			}

			measurements := doc.Measurements
			if unit != "" {
				measurements = doc.MeasurementsByUnit(extract.Unit(unit))
			}

			fmt.Printf("%d measurement(s)\n", len(measurements))
			for i, m := range measurements {
				if limit > 0 && i >= limit {
					fmt.Printf("... and %d more\n", len(measurements)-limit)
					break
				}
				fmt.Printf("  %g %s  (%s)\n", m.Value, m.Unit, m.FullMatch)
			}
			return nil
		},
	}

	cmd.Flags().StringP("source", "s", "", "Source document path")
	cmd.Flags().StringP("unit", "u", "", "Filter by normalized unit tag")
	cmd.Flags().Int("limit", 20, "Maximum entries to print (0 = all)")

	return cmd
}

func requirementsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "requirements",
		Short: "List mined requirement statements",
		Long: `List requirement statements mined from a building-code document,
optionally filtered by a case-insensitive keyword.

Example:
  buildcode requirements --source building-code.txt --keyword concrete`,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, _ := cmd.Flags().GetString("source")
			keyword, _ := cmd.Flags().GetString("keyword")
			limit, _ := cmd.Flags().GetInt("limit")

			doc, err := loadDocument(src)
			if err != nil {
				return err
			}

			requirements := doc.Requirements
			if keyword != "" {
				requirements = doc.RequirementsContaining(keyword)
			}

			fmt.Printf("%d requirement(s)\n", len(requirements))
			for i, req := range requirements {
				if limit > 0 && i >= limit {
					fmt.Printf("... and %d more\n", len(requirements)-limit)
					break
				}
				fmt.Printf("  - %s\n", req)
			}
			return nil
		},
	}

	cmd.Flags().StringP("source", "s", "", "Source document path")
	cmd.Flags().StringP("keyword", "k", "", "Filter by keyword (case-insensitive)")
	cmd.Flags().Int("limit", 20, "Maximum entries to print (0 = all)")

	return cmd
}
