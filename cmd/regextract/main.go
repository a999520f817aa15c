// Command regextract extracts emails, URLs, phone numbers and other
// structured substrings from text, files and growing logs.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// vip holds merged configuration from flags, environment and config file.
var vip = viper.New()

var rootCmd = &cobra.Command{
	Use:   "regextract",
	Short: "Extract emails, URLs, phone numbers and more from text",
	Long: `regextract scans text for structured substrings using a fixed catalog
of patterns: emails, urls, phone_numbers, credit_cards, times_24_hour,
times_12_hour, html_tags, hashtags and currency_amounts.

Additional categories can be defined in YAML pattern files (--patterns).

Configuration is read from flags, REGEXTRACT_* environment variables and
an optional config file (./regextract.yaml or
~/.config/regextract/config.yaml), in that order of precedence.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cfgFile, _ := cmd.Flags().GetString("config")
		return readConfig(vip, cfgFile)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./regextract.yaml or ~/.config/regextract/config.yaml)")
	pf.BoolP("verbose", "v", false, "Enable debug logging")
	pf.String("log-file", "", "Write logs to this file (rotated) instead of stderr")
	pf.StringSliceP("patterns", "p", nil, "YAML pattern files defining extra categories (repeatable)")
	pf.StringP("format", "f", "text", "Output format: text, jsonl, yaml")
	pf.StringSliceP("types", "t", nil, "Categories to output (comma-separated, default all)")
	pf.Int("chunk-size", defaultChunkSize, "Maximum bytes per chunk when reading files")

	for key, flag := range map[string]string{
		"verbose":    "verbose",
		"log_file":   "log-file",
		"patterns":   "patterns",
		"format":     "format",
		"types":      "types",
		"chunk_size": "chunk-size",
	} {
		if err := vip.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	_ = rootCmd.RegisterFlagCompletionFunc("types", completeCategories)
	_ = rootCmd.RegisterFlagCompletionFunc("format", completeFormats)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
