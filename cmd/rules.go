package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dotcommander/copycheck/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect and validate rulebooks",
}

var rulesCheckCmd = &cobra.Command{
	Use:   "check <rulebook.yaml>",
	Short: "Validate a rulebook without running a review",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rs, err := rules.Load(args[0])
		if err != nil {
			return err
		}
		if !quiet {
			fmt.Printf("✓ %s is valid (%d keyword locations, %d forbidden categories, %d locked phrases, %d required hashtags)\n",
				args[0],
				len(rs.RequiredKeywords),
				len(rs.ForbiddenWords),
				countPhrases(rs.LockedSellingPoints),
				len(rs.RequiredHashtags))
		}
		return nil
	},
}

var rulesShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective rulebook as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		var rs *rules.RuleSet
		var err error
		if rulesFile == "" {
			rs = rules.Default()
		} else {
			rs, err = rules.Load(rulesFile)
			if err != nil {
				return err
			}
		}
		data, err := yaml.Marshal(rs)
		if err != nil {
			return fmt.Errorf("error marshaling rule set: %w", err)
		}
		fmt.Print(string(data))
		return nil
	},
}

func init() {
	rulesCmd.AddCommand(rulesCheckCmd)
	rulesCmd.AddCommand(rulesShowCmd)
	rootCmd.AddCommand(rulesCmd)
}

func countPhrases(points map[string][]string) int {
	n := 0
	for _, phrases := range points {
		n += len(phrases)
	}
	return n
}
