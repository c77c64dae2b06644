// Package cmd implements the copycheck command-line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	rulesFile    string
	quiet        bool
	verbose      bool
	outputFormat string
	outputFile   string
	failUnder    float64
	subject      string
	versionLabel string
	reviewer     string
)

var rootCmd = &cobra.Command{
	Use:   "copycheck",
	Short: "Compliance reviewer for influencer marketing drafts",
	Long: `Copycheck reviews a draft social-media post (title, body, hashtags)
against a campaign rulebook: required keywords, forbidden terms with
contextual exceptions, locked selling-point claims, structural limits, and
mandatory hashtags. It produces a weighted compliance score with actionable
fix suggestions.

Rulebooks are plain YAML so campaign teams can update keyword lists without
code changes. Without --rules, the embedded default rulebook is used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runReview(args)
	},
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&rulesFile, "rules", "r", "", "Rulebook file (YAML); embedded default rulebook if not set")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show per-item check details")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "console", "Output format for reports (console|json|markdown)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Output file for reports (requires --format)")
	rootCmd.PersistentFlags().Float64Var(&failUnder, "fail-under", 0, "Exit non-zero when total score is below this threshold")

	viper.BindPFlag("rulesFile", rootCmd.PersistentFlags().Lookup("rules"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("failUnder", rootCmd.PersistentFlags().Lookup("fail-under"))
}

func initConfig() {
	configPaths := []string{".copycheckrc.json", ".copycheckrc.yaml", ".copycheckrc.yml"}
	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			viper.SetConfigFile(path)
			if err := viper.ReadInConfig(); err != nil {
				fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
				os.Exit(1)
			}
			break
		}
	}
}
