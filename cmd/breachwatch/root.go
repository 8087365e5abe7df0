package breachwatch

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagJSON    bool
	flagNoColor bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the breachwatch CLI.
var rootCmd = &cobra.Command{
	Use:           "breachwatch",
	Short:         "Track breach and credential exposure in offline datasets",
	Long:          "Breachwatch searches an offline breach dataset for a domain or a list of emails, scores exposures by severity, and writes CSV, JSON and Markdown reports.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the breachwatch CLI. It should be called by the main
// package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.Version = version
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit the summary as JSON to stdout")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
}
