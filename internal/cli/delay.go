package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/srt-tools/srtt/internal/config"
	"github.com/srt-tools/srtt/internal/srt"
)

var delayCmd = &cobra.Command{
	Use:   "delay [subtitle_file] [milliseconds]",
	Short: "Shift every subtitle in an SRT file by a fixed offset",
	Long: `Delay all the subtitles of an SRT file by the given number of
milliseconds and write the result to a new file prefixed with
'delayed_' (configurable).

The offset can be negative, in which case subtitles are advanced.
Subtitles advanced entirely before 00:00:00,000 are removed from the
output; surviving subtitles are renumbered from 1.

Examples:
  srtt delay movie.srt 1500
  srtt delay movie.srt -- -2000
  srtt delay movie.srt 500 -o fixed.srt`,
	Args: cobra.ExactArgs(2),
	RunE: runDelay,
}

func init() {
	rootCmd.AddCommand(delayCmd)

	delayCmd.Flags().
		BoolP("force", "f", false, "Overwrite the output file if it already exists")
}

func runDelay(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]

	offset, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("milliseconds must be an integer, got %q", args[1])
	}

	force, _ := cmd.Flags().GetBool("force")
	outputPath, _ := cmd.Flags().GetString("output")

	if _, err := os.Stat(subtitlePath); os.IsNotExist(err) {
		return fmt.Errorf("subtitle file not found: %s", subtitlePath)
	}

	ext := strings.ToLower(filepath.Ext(subtitlePath))
	if ext != ".srt" {
		return fmt.Errorf("unsupported subtitle format %q: only .srt is supported", ext)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if outputPath == "" {
		outputPath = defaultOutputPath(subtitlePath, cfg)
	}
	if !force && !cfg.Overwrite {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf(
				"output file already exists: %s (use --force to overwrite)",
				outputPath,
			)
		}
	}

	logger.Infow("Delaying subtitles",
		"input", subtitlePath,
		"output", outputPath,
		"offset_ms", offset,
	)

	file, err := os.Open(subtitlePath)
	if err != nil {
		return fmt.Errorf("failed to open subtitle file: %w", err)
	}
	defer file.Close()

	subs, err := srt.Parse(file)
	if err != nil {
		return fmt.Errorf("failed to parse subtitle file: %w", err)
	}

	logger.Infow("Parsed subtitle file", "records", len(subs))

	shifted, dropped := srt.Delay(subs, offset)
	for _, number := range dropped {
		logger.Warnw(
			"Subtitle removed: its end was advanced before 00:00:00,000",
			"number", number,
		)
	}

	if err := srt.WriteFile(outputPath, shifted); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Subtitles delayed successfully: %s\n", absOutput)
	fmt.Printf("  Records: %d\n", len(shifted))
	if len(dropped) > 0 {
		fmt.Printf("  Removed: %d\n", len(dropped))
	}

	return nil
}

func loadConfig() (*config.Config, error) {
	dir, err := config.DefaultDir()
	if err != nil {
		// no user config dir on this system, run on defaults
		logger.Debugw("No user config dir", "error", err)
		return config.Default(), nil
	}
	return config.Load(dir)
}

// defaultOutputPath prefixes the input file's base name, keeping its
// directory unless the config redirects output elsewhere.
func defaultOutputPath(inputPath string, cfg *config.Config) string {
	dir := filepath.Dir(inputPath)
	if cfg.OutputDir != "" {
		dir = cfg.OutputDir
	}
	return filepath.Join(dir, cfg.OutputPrefix+filepath.Base(inputPath))
}
