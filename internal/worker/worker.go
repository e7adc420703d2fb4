package worker

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/rjalexa/phrasesplit/internal/clipboard"
	"github.com/rjalexa/phrasesplit/internal/phrase"
)

// StdinPath is the pseudo-path requesting transcript input from stdin.
const StdinPath = "-"

// Options configures a single run.
type Options struct {
	InputPath    string
	OutputPath   string
	OutputDir    string
	OutputSuffix string
	Raw          bool
	SaveStats    bool
	Copy         bool
}

// Run reads a transcript, splits it into phrases and writes the result:
// blank-line-spaced phrases by default, the untouched transcript with Raw.
// Stdin input without an explicit output path writes to stdout.
func Run(opts Options) error {
	transcript, err := readInput(opts.InputPath)
	if err != nil {
		return err
	}

	slog.Info("splitting transcript", "input", displayName(opts.InputPath))

	phrases := phrase.Split(transcript)
	if len(phrases) == 0 {
		slog.Warn("transcript produced no phrases")
	} else {
		slog.Debug("split complete", "phrases", len(phrases))
	}

	content := phrase.FormatWithSpacing(phrases)
	if opts.Raw {
		content = transcript
	}

	outputPath := resolveOutputPath(opts)
	if err := writeOutput(outputPath, content); err != nil {
		return err
	}
	if outputPath != "" {
		slog.Info("phrases saved", "path", outputPath, "count", len(phrases))
	}

	if opts.SaveStats {
		statsPath := statsSidecarPath(outputPath)
		if statsPath == "" {
			slog.Warn("stats sidecar requires a file output, skipping")
		} else if err := saveStatsJSON(statsPath, phrase.GetStats(transcript)); err != nil {
			slog.Warn("failed to save stats JSON", "err", err)
		} else {
			slog.Info("stats JSON saved", "path", statsPath)
		}
	}

	if opts.Copy {
		if !clipboard.Available() {
			slog.Warn("clipboard not supported in this environment")
		} else if err := clipboard.WriteAll(content); err != nil {
			slog.Warn("clipboard copy failed", "err", err)
		} else {
			slog.Info("result copied to clipboard")
		}
	}

	return nil
}

// Stats reads a transcript and writes its phrase statistics as indented JSON
// to OutputPath, or stdout when OutputPath is empty.
func Stats(opts Options) error {
	transcript, err := readInput(opts.InputPath)
	if err != nil {
		return err
	}

	stats := phrase.GetStats(transcript)
	data, err := json.MarshalIndent(stats, "", "    ")
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}

	if opts.OutputPath == "" || opts.OutputPath == StdinPath {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(opts.OutputPath, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write stats file: %w", err)
	}
	slog.Info("stats JSON saved", "path", opts.OutputPath)
	return nil
}

func readInput(path string) (string, error) {
	if path == StdinPath {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}
	return string(data), nil
}

// resolveOutputPath returns the file to write, or "" for stdout.
func resolveOutputPath(opts Options) string {
	if opts.OutputPath == StdinPath {
		return ""
	}
	if opts.OutputPath != "" {
		return opts.OutputPath
	}
	if opts.InputPath == StdinPath {
		return ""
	}

	base := strings.TrimSuffix(filepath.Base(opts.InputPath), filepath.Ext(opts.InputPath))
	dir := filepath.Dir(opts.InputPath)
	if opts.OutputDir != "" {
		dir = opts.OutputDir
	}
	suffix := opts.OutputSuffix
	if suffix == "" {
		suffix = ".phrases.txt"
	}
	return filepath.Join(dir, base+suffix)
}

func writeOutput(path, content string) error {
	if path == "" {
		fmt.Println(content)
		return nil
	}
	if err := os.WriteFile(path, []byte(content+"\n"), 0644); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}
	return nil
}

func statsSidecarPath(outputPath string) string {
	if outputPath == "" {
		return ""
	}
	return strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + ".stats.json"
}

func saveStatsJSON(path string, stats phrase.Stats) error {
	data, err := json.MarshalIndent(stats, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

func displayName(path string) string {
	if path == StdinPath {
		return "stdin"
	}
	return filepath.Base(path)
}
