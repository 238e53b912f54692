package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// collectionCmd analyzes a single designer collection directory.
var collectionCmd = &cobra.Command{
	Use:   "collection <dir>",
	Short: "Analyze the dominant colors of one designer collection",
	Long: `Analyze every image directly inside the given directory and print the
aggregated per-color statistics as JSON. Images that fail to decode are
logged and skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger()

		agg, err := newAggregator(cfg, logger)
		if err != nil {
			return err
		}

		result, err := agg.AnalyzeCollection(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(result.Stats, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}
