package output

import (
	"fmt"

	"github.com/dotcommander/copycheck/internal/config"
	"github.com/dotcommander/copycheck/internal/review"
)

// Outputter dispatches a report to the configured formatter
type Outputter struct {
	config *config.Config
}

// NewOutputter creates a new Outputter
func NewOutputter(config *config.Config) *Outputter {
	return &Outputter{config: config}
}

// Format renders the report using the configured format
func (o *Outputter) Format(report *review.Report) error {
	switch o.config.Format {
	case "console":
		return NewConsoleFormatter(o.config.Quiet, o.config.Verbose).Format(report)
	case "json":
		return NewJSONFormatter(true, o.config.Output).Format(report)
	case "markdown":
		return NewMarkdownFormatter(o.config.Output).Format(report)
	default:
		return fmt.Errorf("unsupported format: %s", o.config.Format)
	}
}
