package cli

import (
	"github.com/spf13/cobra"
	"github.com/srt-tools/srtt/internal/logging"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "srtt",
	Short: "Modify SRT subtitle files easily",
	Long: `Srtt is a CLI tool for working with SRT subtitle files.

It parses a subtitle file, applies a transformation such as a uniform
time shift, and writes the result to a new file.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
}
