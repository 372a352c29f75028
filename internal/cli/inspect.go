package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/srt-tools/srtt/internal/srt"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [subtitle_file]",
	Short: "Parse an SRT file and print a summary",
	Long: `Parse an SRT file, validate its structure and print a short
summary: how many records it holds and the time span they cover.

Examples:
  srtt inspect movie.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]

	file, err := os.Open(subtitlePath)
	if err != nil {
		return fmt.Errorf("failed to open subtitle file: %w", err)
	}
	defer file.Close()

	subs, err := srt.Parse(file)
	if err != nil {
		return fmt.Errorf("failed to parse subtitle file: %w", err)
	}

	fmt.Printf("%s\n", subtitlePath)
	fmt.Printf("  Records: %d\n", len(subs))
	if len(subs) > 0 {
		fmt.Printf("  First:   %s\n", subs[0].Start)
		fmt.Printf("  Last:    %s\n", subs[len(subs)-1].End)
	}

	return nil
}
