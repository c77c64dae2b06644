package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the copycheck configuration
type Config struct {
	RulesFile string   `mapstructure:"rulesFile"`
	Format    string   `mapstructure:"format"`
	Output    string   `mapstructure:"output"`
	Quiet     bool     `mapstructure:"quiet"`
	Verbose   bool     `mapstructure:"verbose"`
	FailUnder float64  `mapstructure:"failUnder"`
	Exclude   []string `mapstructure:"exclude"`
}

// LoadConfig loads configuration from config files, environment variables,
// and bound flags. rulesFile overrides the configured rulebook path when
// non-empty.
func LoadConfig(rulesFile string) (*Config, error) {
	viper.SetDefault("rulesFile", "")
	viper.SetDefault("format", "console")
	viper.SetDefault("output", "")
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("failUnder", 0.0)

	// Config file locations
	configPaths := []string{".copycheckrc.json", ".copycheckrc.yaml", ".copycheckrc.yml"}
	for _, path := range configPaths {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err == nil {
			break
		}
	}

	// Environment variables
	viper.SetEnvPrefix("COPYCHECK")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if rulesFile != "" {
		config.RulesFile = rulesFile
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	if config.Format != "console" && config.Format != "json" && config.Format != "markdown" {
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', or 'markdown'", config.Format)
	}

	if config.FailUnder < 0 || config.FailUnder > 100 {
		return fmt.Errorf("fail-under must be between 0 and 100")
	}

	return nil
}
