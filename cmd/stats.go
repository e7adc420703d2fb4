package cmd

import (
	"github.com/rjalexa/phrasesplit/internal/worker"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <input-file>",
	Short: "Report phrase statistics for a transcript",
	Long: `Stats reads a plain-text transcript (or stdin with "-") and prints the
phrase count, the total word count and the rounded average words per phrase
as JSON, together with the phrases themselves.`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

var statsOutput string

func init() {
	statsCmd.Flags().StringVarP(&statsOutput, "output", "o", "", "write JSON to file instead of stdout")

	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	inputPath, err := resolveInputPath(args[0])
	if err != nil {
		return err
	}

	return worker.Stats(worker.Options{
		InputPath:  inputPath,
		OutputPath: statsOutput,
	})
}
