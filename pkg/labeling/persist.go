package labeling

import (
	"encoding/json"
	"fmt"

	"github.com/trendlens/runway-color/internal/utils"
	"github.com/trendlens/runway-color/pkg/types"
)

func writeLabelStats(path string, stats *types.CollectionLabelStats) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("persist %s: %w", path, err)
	}
	if err := utils.WriteFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("persist %s: %w", path, err)
	}
	return nil
}
