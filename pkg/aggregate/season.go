package aggregate

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/trendlens/runway-color/internal/utils"
	"github.com/trendlens/runway-color/pkg/types"
)

// AnalyzeSeason analyzes every designer collection under seasonDir and writes
// the merged statistics to color_analysis.json inside seasonDir. Designers
// whose collection fails (for example, an empty directory) are logged and
// skipped; the season fails only when no designer directories exist at all or
// the result cannot be persisted.
func (a *Aggregator) AnalyzeSeason(ctx context.Context, seasonDir string) (types.SeasonColorStats, error) {
	results, err := a.analyzeDesigners(ctx, seasonDir)
	if err != nil {
		return nil, err
	}

	season := make(types.SeasonColorStats, len(results))
	for _, result := range results {
		season[result.Designer] = result.Stats
	}

	outPath := filepath.Join(seasonDir, ColorAnalysisFile)
	if err := writeJSON(outPath, season); err != nil {
		return nil, err
	}
	a.logger.Info("season analysis written", "path", outPath, "designers", len(season))
	return season, nil
}

// CreateColorDictionary analyzes every designer collection under seasonDir
// and writes a per-designer dictionary of the top-ranked colors to
// color_dictionary.json inside seasonDir.
func (a *Aggregator) CreateColorDictionary(ctx context.Context, seasonDir string) (types.ColorDictionary, error) {
	results, err := a.analyzeDesigners(ctx, seasonDir)
	if err != nil {
		return nil, err
	}

	dict := make(types.ColorDictionary, len(results))
	for _, result := range results {
		ranked := result.Stats.Ranked()
		if len(ranked) > a.opts.TopColors {
			ranked = ranked[:a.opts.TopColors]
		}
		entry := types.DictionaryEntry{
			TotalImages: result.TotalImages,
			Colors:      make(map[string]types.DictionaryColor, len(ranked)),
		}
		for _, rc := range ranked {
			entry.Colors[rc.Color] = types.DictionaryColor{
				Count:      rc.Stat.Count,
				Percentage: rc.Stat.AveragePercentage,
			}
		}
		dict[result.Designer] = entry
	}

	outPath := filepath.Join(seasonDir, ColorDictionaryFile)
	if err := writeJSON(outPath, dict); err != nil {
		return nil, err
	}
	a.logger.Info("color dictionary written", "path", outPath, "designers", len(dict))
	return dict, nil
}

// analyzeDesigners runs AnalyzeCollection over each designer subdirectory.
// The collections share the aggregator's worker pool, so total concurrency
// stays bounded regardless of season size.
func (a *Aggregator) analyzeDesigners(ctx context.Context, seasonDir string) ([]*CollectionResult, error) {
	dirs, err := listDesignerDirs(seasonDir)
	if err != nil {
		return nil, err
	}

	results := make([]*CollectionResult, 0, len(dirs))
	for _, dir := range dirs {
		result, err := a.AnalyzeCollection(ctx, dir)
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			a.logger.Warn("skipping designer", "dir", dir, "reason", err)
			continue
		}
		results = append(results, result)
	}
	return results, nil
}

func listDesignerDirs(seasonDir string) ([]string, error) {
	dirs, err := utils.ListDesignerDirs(seasonDir)
	if err != nil {
		return nil, fmt.Errorf("list designer directories in %s: %w", seasonDir, err)
	}
	if len(dirs) == 0 {
		return nil, &NoDesignerDirectoriesError{Dir: seasonDir}
	}
	return dirs, nil
}
