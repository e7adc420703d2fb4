package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rjalexa/phrasesplit/internal/config"
	"github.com/rjalexa/phrasesplit/internal/worker"

	"github.com/spf13/cobra"
)

var splitCmd = &cobra.Command{
	Use:   "split <input-file>",
	Short: "Split a transcript file into spaced phrases",
	Long: `Split reads a plain-text transcript (or stdin with "-"), segments it into
phrases and writes them separated by blank lines. By default the result goes
to <input>.phrases.txt; stdin input without --output goes to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: runSplit,
}

var (
	configPath string
	output     string
	rawOutput  bool
	saveStats  bool
	copyResult bool
)

func init() {
	defaults := config.Default()

	splitCmd.Flags().StringVar(&configPath, "config", "", "config file (default: "+config.DefaultFileName+" if present)")
	splitCmd.Flags().StringVarP(&output, "output", "o", "", "output path (default: <input>"+defaults.OutputSuffix+", \"-\" for stdout)")
	splitCmd.Flags().BoolVar(&rawOutput, "raw", defaults.RawOutput, "write the untouched transcript instead of spaced phrases")
	splitCmd.Flags().BoolVar(&saveStats, "stats", defaults.SaveStats, "save a phrase statistics JSON sidecar")
	splitCmd.Flags().BoolVar(&copyResult, "copy", defaults.CopyToClipboard, "copy the result to the system clipboard")

	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	inputPath, err := resolveInputPath(args[0])
	if err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Flags set on the command line win over the config file.
	if !cmd.Flags().Changed("raw") {
		rawOutput = cfg.RawOutput
	}
	if !cmd.Flags().Changed("stats") {
		saveStats = cfg.SaveStats
	}
	if !cmd.Flags().Changed("copy") {
		copyResult = cfg.CopyToClipboard
	}

	opts := worker.Options{
		InputPath:    inputPath,
		OutputPath:   output,
		OutputDir:    cfg.OutputDir,
		OutputSuffix: cfg.OutputSuffix,
		Raw:          rawOutput,
		SaveStats:    saveStats,
		Copy:         copyResult,
	}

	return worker.Run(opts)
}

// resolveInputPath validates the transcript argument and resolves it to an
// absolute path. "-" passes through and means stdin.
func resolveInputPath(arg string) (string, error) {
	if arg == worker.StdinPath {
		return arg, nil
	}

	absPath, err := filepath.Abs(arg)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return "", fmt.Errorf("file not found: %s", arg)
	}

	ext := strings.ToLower(filepath.Ext(absPath))
	validExts := map[string]bool{
		".txt": true, ".text": true, ".md": true, ".log": true,
	}
	if !validExts[ext] {
		return "", fmt.Errorf("unsupported file type: %s", ext)
	}

	return absPath, nil
}
