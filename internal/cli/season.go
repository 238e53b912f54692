package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/trendlens/runway-color/pkg/aggregate"
)

// seasonCmd analyzes every designer collection under a season directory.
var seasonCmd = &cobra.Command{
	Use:   "season <dir>",
	Short: "Analyze every designer collection of a season",
	Long: `Analyze each designer subdirectory of the given season directory and write
the merged statistics to color_analysis.json inside it. Designers whose
collection fails are logged and skipped.`,
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

		season, err := agg.AnalyzeSeason(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		logger.Info("season analyzed",
			"dir", args[0],
			"designers", len(season),
			"output", filepath.Join(args[0], aggregate.ColorAnalysisFile))
		return nil
	},
}
