// Package config loads tablediff CLI configuration from environment
// variables and an optional .env file.
package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/nao1215/tablediff/logger"
)

// Config holds all configuration for the CLI.
type Config struct {
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Report holds configuration for report output.
	Report ReportConfig `mapstructure:"report"`
}

// ReportConfig holds report output configuration.
type ReportConfig struct {
	// Output is the default path for the comparison report workbook.
	Output string `mapstructure:"output"`
}

// Load loads configuration from environment variables and a .env file
// located in the given directory. Environment variables map to nested
// keys with underscores, e.g. LOG_LEVEL -> log.level.
func Load(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}
	// Ignore error if the file doesn't exist.
	_ = godotenv.Overload(envPath)

	v := viper.New()
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("report.output", "comparison_report.xlsx")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}
