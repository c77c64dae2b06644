// Package output renders review reports for the console and for JSON and
// Markdown export. Formatters only read the report; all pass/fail state
// comes from the checker results and spans.
package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/dotcommander/copycheck/internal/check"
	"github.com/dotcommander/copycheck/internal/review"
)

// displayName maps checker identifiers to console headings.
var displayName = map[string]string{
	check.NameKeywords:      "Required keywords",
	check.NameForbidden:     "Forbidden words",
	check.NameSellingPoints: "Locked selling points",
	check.NameStructure:     "Structure",
	check.NameHashtags:      "Required hashtags",
}

// ConsoleFormatter formats a review report for terminal display
type ConsoleFormatter struct {
	quiet    bool
	verbose  bool
	colorize bool
}

// NewConsoleFormatter creates a new ConsoleFormatter
func NewConsoleFormatter(quiet, verbose bool) *ConsoleFormatter {
	return &ConsoleFormatter{
		quiet:    quiet,
		verbose:  verbose,
		colorize: true,
	}
}

// Format prints the report to stdout
func (f *ConsoleFormatter) Format(report *review.Report) error {
	if f.quiet {
		return nil
	}

	f.printHeader(report)
	for _, res := range report.Results {
		f.printResult(res)
	}
	f.printScores(report)
	return nil
}

func (f *ConsoleFormatter) printHeader(report *review.Report) {
	id := report.Identity
	if id.Subject != "" {
		fmt.Printf("@%s", id.Subject)
		if id.Version != "" {
			fmt.Printf(" %s", id.Version)
		}
		if id.Reviewer != "" {
			fmt.Printf(" (reviewed by %s)", id.Reviewer)
		}
		fmt.Println()
	}
	if report.Project.Name != "" {
		fmt.Printf("%s\n", f.style("8").Render(report.Project.Name))
	}
	fmt.Println()
}

func (f *ConsoleFormatter) printResult(res check.Result) {
	status := "✓"
	color := "10" // green
	if !res.Passed {
		status = "✗"
		color = "9" // red
	}

	heading := displayName[res.Name]
	if heading == "" {
		heading = res.Name
	}

	if res.Total > 0 {
		fmt.Printf("%s %s (%d/%d)\n", f.style(color).Render(status), heading, res.Found, res.Total)
	} else {
		fmt.Printf("%s %s (%d violations)\n", f.style(color).Render(status), heading, len(res.Issues))
	}

	for _, issue := range res.Issues {
		fmt.Printf("    %s %s\n", f.style("9").Render("✘"), issue)
	}

	if f.verbose {
		f.printDetails(res)
	}
}

// printDetails renders per-item verdicts, verbose mode only.
func (f *ConsoleFormatter) printDetails(res check.Result) {
	for _, d := range res.Details {
		switch v := d.(type) {
		case check.KeywordDetail:
			fmt.Printf("    %s %s [%s]\n", f.mark(v.Found), v.Keyword, v.Location)
		case check.ForbiddenDetail:
			fmt.Printf("    %s %s (%s) at %d-%d: ...%s... → %s\n",
				f.mark(false), v.Word, v.Category, v.Span.Start, v.Span.End, v.Context, v.Suggestion)
		case check.SellingPointDetail:
			fmt.Printf("    %s [%s] %s\n", f.mark(v.Found), v.Category, v.Phrase)
		case check.StructureDetail:
			fmt.Printf("    %s %s: %d (limit %d)\n", f.mark(v.OK), v.Item, v.Value, v.Limit)
		case check.HashtagDetail:
			fmt.Printf("    %s %s\n", f.mark(v.Found), v.Tag)
		}
	}
}

func (f *ConsoleFormatter) printScores(report *review.Report) {
	fmt.Println()
	fmt.Printf("objective %.1f · subjective %.1f · total %.1f\n",
		report.Scores.Objective, report.Scores.Subjective, report.Scores.Total)

	verdictColor := "9"
	switch report.Verdict {
	case "excellent", "good":
		verdictColor = "10"
	case "needs improvement":
		verdictColor = "3"
	}
	fmt.Printf("%s\n", f.style(verdictColor).Render(string(report.Verdict)))

	if len(report.GoodPoints) > 0 {
		fmt.Println()
		for _, p := range report.GoodPoints {
			fmt.Printf("  + %s\n", p)
		}
	}
}

func (f *ConsoleFormatter) mark(ok bool) string {
	if ok {
		return f.style("10").Render("✓")
	}
	return f.style("9").Render("✗")
}

func (f *ConsoleFormatter) style(color string) lipgloss.Style {
	if !f.colorize {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}
