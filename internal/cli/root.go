// Package cli provides the command-line interface for runway-color.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/trendlens/runway-color/internal/config"
	"github.com/trendlens/runway-color/internal/version"
	"github.com/trendlens/runway-color/pkg/aggregate"
	"github.com/trendlens/runway-color/pkg/colors"
	"github.com/trendlens/runway-color/pkg/loader"
)

var (
	flagConfig   string
	flagLogLevel string
	flagNColors  int
	flagMinArea  float64
	flagWorkers  int
	flagResize   int

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "runway-color",
		Short: "Dominant-color analysis for runway collections",
		Long: `runway-color extracts the dominant garment colors from runway photographs
and aggregates them into per-designer and per-season statistics.

Skin tones are filtered out so the statistics describe the clothes, not the
models wearing them.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// A .env file is optional; environment beats nothing, flags beat both.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a JSON config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().IntVar(&flagNColors, "n-colors", 0, "maximum colors per image (overrides config)")
	rootCmd.PersistentFlags().Float64Var(&flagMinArea, "min-area", 0, "minimum cluster area percentage (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagWorkers, "workers", 0, "concurrent image workers (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagResize, "resize-size", 0, "longest image edge in pixels (overrides config)")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(collectionCmd)
	rootCmd.AddCommand(seasonCmd)
	rootCmd.AddCommand(dictionaryCmd)
	rootCmd.AddCommand(labelCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}

// newLogger builds the process logger from the --log-level flag.
func newLogger() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:  "runway-color",
		Level: hclog.LevelFromString(flagLogLevel),
	})
}

// loadConfig resolves the effective configuration: file (or defaults),
// environment, then flag overrides.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if flagConfig != "" {
		loaded, err := config.LoadFromFile(flagConfig)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if flagNColors > 0 {
		cfg.Colors.NColors = flagNColors
	}
	if flagMinArea > 0 {
		cfg.Colors.MinAreaPercentage = flagMinArea
	}
	if flagWorkers > 0 {
		cfg.Runtime.Workers = flagWorkers
	}
	if flagResize > 0 {
		cfg.Loader.ResizeSize = flagResize
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newAggregator wires the pipeline components from the effective config.
func newAggregator(cfg *config.Config, logger hclog.Logger) (*aggregate.Aggregator, error) {
	extractorCfg := colors.Config{
		NColors:           cfg.Colors.NColors,
		MinAreaPercentage: cfg.Colors.MinAreaPercentage,
		Seed:              cfg.Colors.Seed,
		MaxIterations:     cfg.Colors.MaxIterations,
		QuantizeStep:      cfg.Colors.QuantizeStep,
	}
	if err := extractorCfg.Validate(); err != nil {
		return nil, err
	}

	l := loader.NewWithConfig(loader.Config{ResizeSize: cfg.Loader.ResizeSize})
	e := colors.NewWithConfig(extractorCfg)

	return aggregate.New(l, e, logger, aggregate.Options{
		Workers:      cfg.Runtime.Workers,
		BatchSize:    cfg.Runtime.BatchSize,
		ImageTimeout: time.Duration(cfg.Runtime.ImageTimeoutSeconds) * time.Second,
		TopColors:    cfg.Colors.NColors,
	}), nil
}
