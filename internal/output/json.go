package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dotcommander/copycheck/internal/review"
)

// JSONFormatter formats a review report as JSON
type JSONFormatter struct {
	pretty     bool
	outputFile string
}

// NewJSONFormatter creates a new JSONFormatter. An empty outputFile writes
// to stdout.
func NewJSONFormatter(pretty bool, outputFile string) *JSONFormatter {
	return &JSONFormatter{pretty: pretty, outputFile: outputFile}
}

// Format renders the report and writes it to the output file or stdout
func (f *JSONFormatter) Format(report *review.Report) error {
	data, err := f.Render(report)
	if err != nil {
		return err
	}
	if f.outputFile != "" {
		if err := os.WriteFile(f.outputFile, data, 0644); err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
		return nil
	}
	fmt.Println(string(data))
	return nil
}

// Render marshals the report.
func (f *JSONFormatter) Render(report *review.Report) ([]byte, error) {
	if f.pretty {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("error marshaling report: %w", err)
		}
		return data, nil
	}
	data, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("error marshaling report: %w", err)
	}
	return data, nil
}
