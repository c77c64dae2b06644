package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dotcommander/copycheck/internal/check"
	"github.com/dotcommander/copycheck/internal/review"
)

// MarkdownFormatter formats a review report as Markdown, shaped like the
// downloadable report reviewers share with content authors.
type MarkdownFormatter struct {
	outputFile string
	now        func() time.Time
}

// NewMarkdownFormatter creates a new MarkdownFormatter. An empty outputFile
// writes to stdout.
func NewMarkdownFormatter(outputFile string) *MarkdownFormatter {
	return &MarkdownFormatter{outputFile: outputFile, now: time.Now}
}

// Format renders the report and writes it to the output file or stdout
func (f *MarkdownFormatter) Format(report *review.Report) error {
	content := f.Render(report)
	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, []byte(content), 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
		return nil
	}
	fmt.Print(content)
	return nil
}

// Render builds the Markdown report text.
func (f *MarkdownFormatter) Render(report *review.Report) string {
	var b strings.Builder

	b.WriteString("# Review Report\n\n")
	if report.Identity.Subject != "" {
		fmt.Fprintf(&b, "- Subject: @%s\n", report.Identity.Subject)
	}
	if report.Identity.Version != "" {
		fmt.Fprintf(&b, "- Version: %s\n", report.Identity.Version)
	}
	if report.Identity.Reviewer != "" {
		fmt.Fprintf(&b, "- Reviewer: %s\n", report.Identity.Reviewer)
	}
	if report.Project.Name != "" {
		fmt.Fprintf(&b, "- Campaign: %s\n", report.Project.Name)
	}
	fmt.Fprintf(&b, "- Reviewed: %s\n\n", f.now().Format("2006-01-02 15:04"))

	b.WriteString("## Scores\n\n")
	fmt.Fprintf(&b, "- Objective: %.1f\n", report.Scores.Objective)
	fmt.Fprintf(&b, "- Subjective: %.1f\n", report.Scores.Subjective)
	fmt.Fprintf(&b, "- Total: %.1f (%s)\n\n", report.Scores.Total, report.Verdict)

	b.WriteString("## Checks\n\n")
	for i, res := range report.Results {
		heading := displayName[res.Name]
		if heading == "" {
			heading = res.Name
		}
		if res.Total > 0 {
			fmt.Fprintf(&b, "### 1.%d %s (%d/%d)\n\n", i+1, heading, res.Found, res.Total)
		} else {
			fmt.Fprintf(&b, "### 1.%d %s\n\n", i+1, heading)
		}
		if res.Passed {
			b.WriteString("- ✅ passed\n")
		}
		for _, issue := range res.Issues {
			fmt.Fprintf(&b, "- ❌ %s\n", issue)
		}
		if res.Name == check.NameForbidden && !res.Passed {
			b.WriteString("\n")
			for _, d := range res.Details {
				if fd, ok := d.(check.ForbiddenDetail); ok {
					fmt.Fprintf(&b, "  - `%s` (%s), context: ...%s... → %s\n",
						fd.Word, fd.Category, fd.Context, fd.Suggestion)
				}
			}
		}
		b.WriteString("\n")
	}

	if len(report.GoodPoints) > 0 {
		b.WriteString("## Strengths\n\n")
		for _, p := range report.GoodPoints {
			fmt.Fprintf(&b, "- %s\n", p)
		}
		b.WriteString("\n")
	}

	return b.String()
}
