package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dotcommander/copycheck/internal/advice"
	"github.com/dotcommander/copycheck/internal/config"
	"github.com/dotcommander/copycheck/internal/discovery"
	"github.com/dotcommander/copycheck/internal/output"
	"github.com/dotcommander/copycheck/internal/review"
	"github.com/dotcommander/copycheck/internal/rules"
)

var reviewCmd = &cobra.Command{
	Use:   "review <draft-file|draft-dir>...",
	Short: "Review draft files against the rulebook",
	Long: `Review one or more draft files. Directory arguments are scanned
recursively for *.txt and *.md drafts. Each draft is reviewed independently
against the same rulebook.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReview(args)
	},
}

func init() {
	reviewCmd.Flags().StringVar(&subject, "subject", "", "Author/KOL name for the report header")
	reviewCmd.Flags().StringVar(&versionLabel, "draft-version", "", "Draft version label (e.g. V1, FINAL)")
	reviewCmd.Flags().StringVar(&reviewer, "reviewer", "", "Reviewer label")
	rootCmd.AddCommand(reviewCmd)
}

// runReview loads configuration and the rulebook, expands arguments into
// draft files, and reviews each one.
func runReview(args []string) error {
	cfg, err := config.LoadConfig(rulesFile)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	ruleSet, err := loadRules(cfg)
	if err != nil {
		return err
	}

	drafts, err := collectDrafts(args, cfg)
	if err != nil {
		return err
	}
	if len(drafts) == 0 {
		return errors.New("no draft files found")
	}

	outputter := output.NewOutputter(cfg)
	failed := 0
	for _, d := range drafts {
		report, err := review.Run(d.Contents, ruleSet, review.Identity{
			Subject:  subject,
			Version:  versionLabel,
			Reviewer: reviewer,
		})
		if err != nil {
			if errors.Is(err, review.ErrEmptyDraft) {
				return fmt.Errorf("%s: %w", d.Path, err)
			}
			return err
		}

		if !cfg.Quiet && len(drafts) > 1 {
			fmt.Printf("== %s ==\n", d.Path)
		}
		if err := outputter.Format(report); err != nil {
			return fmt.Errorf("error formatting output: %w", err)
		}

		if cfg.Verbose && !report.Passed() && cfg.Format == "console" {
			printAdvice(ruleSet, report)
		}

		if cfg.FailUnder > 0 && report.Scores.Total < cfg.FailUnder {
			failed++
			if !cfg.Quiet {
				fmt.Printf("score %.1f below threshold %.1f: %s\n", report.Scores.Total, cfg.FailUnder, d.Path)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d draft(s) scored below %.1f", failed, cfg.FailUnder)
	}
	return nil
}

// printAdvice asks the advice collaborator for fix suggestions. A failed
// collaborator is reported as its own condition, never as a clean review.
func printAdvice(rs *rules.RuleSet, report *review.Report) {
	gen := advice.NewStatic(rs)
	text, err := gen.Generate(context.Background(), report.Results)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", &advice.CollaboratorError{Collaborator: gen.Name(), Err: err})
		return
	}
	fmt.Printf("\nSuggested fixes:\n%s", text)
}

// loadRules returns the configured rulebook, or the embedded default when
// none is configured.
func loadRules(cfg *config.Config) (*rules.RuleSet, error) {
	if cfg.RulesFile == "" {
		return rules.Default(), nil
	}
	return rules.Load(cfg.RulesFile)
}

// collectDrafts expands file and directory arguments into draft files.
func collectDrafts(args []string, cfg *config.Config) ([]discovery.Draft, error) {
	var drafts []discovery.Draft
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", arg, err)
		}
		if info.IsDir() {
			found, err := discovery.New(arg, cfg.Exclude).Discover()
			if err != nil {
				return nil, err
			}
			drafts = append(drafts, found...)
			continue
		}
		data, err := os.ReadFile(arg)
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", arg, err)
		}
		drafts = append(drafts, discovery.Draft{Path: arg, AbsPath: arg, Contents: string(data)})
	}
	return drafts, nil
}
