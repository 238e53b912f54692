package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/trendlens/runway-color/pkg/aggregate"
)

// dictionaryCmd builds the per-designer color dictionary of a season.
var dictionaryCmd = &cobra.Command{
	Use:   "dictionary <dir>",
	Short: "Build the per-designer color dictionary of a season",
	Long: `Analyze each designer subdirectory of the given season directory and write
a dictionary of the top-ranked colors per designer to color_dictionary.json
inside it.`,
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

		dict, err := agg.CreateColorDictionary(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		logger.Info("color dictionary built",
			"dir", args[0],
			"designers", len(dict),
			"output", filepath.Join(args[0], aggregate.ColorDictionaryFile))
		return nil
	},
}
