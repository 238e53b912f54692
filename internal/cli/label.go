package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trendlens/runway-color/pkg/client"
	"github.com/trendlens/runway-color/pkg/labeling"
	"github.com/trendlens/runway-color/pkg/llamacpp"
	"github.com/trendlens/runway-color/pkg/ollama"
)

var (
	flagLabelBackend string
	flagLabelURL     string
	flagLabelModel   string
)

// labelCmd labels the garments of one collection via a vision model.
var labelCmd = &cobra.Command{
	Use:   "label <dir>",
	Short: "Label garment categories of one collection via a vision model",
	Long: `Send every image directly inside the given directory to a vision-model
backend (Ollama or a llama.cpp server) and write the aggregated garment
categories and attributes to label_analysis.json inside it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger()

		if flagLabelBackend != "" {
			cfg.Labeling.Backend = flagLabelBackend
		}
		if flagLabelURL != "" {
			cfg.Labeling.URL = flagLabelURL
		}
		if flagLabelModel != "" {
			cfg.Labeling.Model = flagLabelModel
		}

		var vc client.VisionClient
		switch cfg.Labeling.Backend {
		case "ollama":
			vc, err = ollama.NewClient(cfg.Labeling.URL)
		case "llamacpp":
			vc, err = llamacpp.NewClient(cfg.Labeling.URL)
		default:
			return fmt.Errorf("unknown labeling backend: %s", cfg.Labeling.Backend)
		}
		if err != nil {
			return err
		}

		lb := labeling.New(vc, logger, labeling.Options{
			Model:       cfg.Labeling.Model,
			SendSize:    cfg.Labeling.SendSize,
			SendQuality: cfg.Labeling.SendQuality,
			Workers:     cfg.Runtime.Workers,
		})

		stats, err := lb.LabelCollection(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		logger.Info("labeling finished", "dir", args[0], "labeled", stats.TotalImages)
		return nil
	},
}

func init() {
	labelCmd.Flags().StringVar(&flagLabelBackend, "backend", "", "vision backend: ollama or llamacpp (overrides config)")
	labelCmd.Flags().StringVar(&flagLabelURL, "url", "", "vision backend URL (overrides config)")
	labelCmd.Flags().StringVar(&flagLabelModel, "model", "", "vision model name (overrides config)")
}
