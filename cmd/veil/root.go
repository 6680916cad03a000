package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	veillog "github.com/veil-sh/veil/internal/log"
)

// Global flag values.
var (
	verbose bool
	quiet   bool
	noColor bool
)

// rootCmd is the base command for veil.
var rootCmd = &cobra.Command{
	Use:   "veil",
	Short: "Mask sensitive values in configuration files",
	Long: `Veil renders .env and JSON configuration files with their sensitive
values masked. Values stay hidden until deliberately revealed, so a
config file can sit open on a shared screen without leaking secrets.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		veillog.Setup(verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(maskCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(versionCmd)
}
